package hal

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingProgram struct {
	frames, closes int
	frameErr       error
	closeErr       error
}

func (p *countingProgram) Frame() error {
	p.frames++
	return p.frameErr
}

func (p *countingProgram) Close() error {
	p.closes++
	return p.closeErr
}

func TestStepFramesUntilCloseRequested(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d := NewHeadless(ctx, HeadlessConfig{Unpaced: true})
	require.NoError(t, d.OpenSurface("x", Size{W: 4, H: 4}))

	errBusy := errors.New("busy")
	p := &countingProgram{frameErr: errBusy, closeErr: ErrNoSurface}

	done, err := Step(d, p)
	assert.False(t, done)
	assert.ErrorIs(t, err, errBusy)
	assert.Equal(t, 1, p.frames)
	assert.Zero(t, p.closes)

	cancel()
	done, err = Step(d, p)
	assert.True(t, done)
	assert.ErrorIs(t, err, ErrNoSurface)
	assert.Equal(t, 1, p.frames)
	assert.Equal(t, 1, p.closes)
}

func TestStepWithoutSurfaceCloses(t *testing.T) {
	d := NewHeadless(context.Background(), HeadlessConfig{Unpaced: true})
	p := &countingProgram{}

	done, err := Step(d, p)
	assert.True(t, done)
	assert.NoError(t, err)
	assert.Zero(t, p.frames)
	assert.Equal(t, 1, p.closes)
}
