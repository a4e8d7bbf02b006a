package main

import (
	"os"

	"shaderplay/hal/window"
	"shaderplay/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr, window.Run))
}
