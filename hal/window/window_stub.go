//go:build !cgo

package window

import (
	"errors"

	"shaderplay/hal"
)

func Run(_ func(hal.Device) (hal.Program, error)) error {
	return errors.New("window mode requires cgo (build/run with CGO_ENABLED=1)")
}
