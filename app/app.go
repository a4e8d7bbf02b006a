// Package app is the render demo: it builds the scene once, draws it every
// frame, and releases it on close.
package app

import (
	"errors"
	"fmt"
	"image"

	"shaderplay/hal"
	"shaderplay/render"
)

// ErrClosed is returned by Frame after Close.
var ErrClosed = errors.New("app closed")

// Overlay text origin.
const textX, textY = 20, 20

// App owns every resource of the demo for its whole lifetime.
type App struct {
	dev hal.Device
	cfg Config
	log hal.Logger

	camera render.Camera
	image  hal.Image
	tex    hal.Texture
	mesh   hal.Mesh
	mat    hal.Material
	target hal.RenderTarget

	// release holds one entry per acquired resource, in acquisition order.
	release []func() error
	closed  bool
}

// New opens the surface and creates every resource.
//
// On failure everything acquired so far is released in reverse order and
// the surface is closed.
func New(dev hal.Device, cfg Config, log hal.Logger) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = hal.Discard
	}
	a := &App{dev: dev, cfg: cfg, log: log}
	if err := a.setup(); err != nil {
		if cerr := a.Close(); cerr != nil {
			err = errors.Join(err, cerr)
		}
		return nil, err
	}
	return a, nil
}

func (a *App) acquired(release func() error) {
	a.release = append(a.release, release)
}

func (a *App) setup() error {
	d := a.dev
	size := a.cfg.OutputSize()

	if err := d.OpenSurface(a.cfg.Title, size); err != nil {
		return fmt.Errorf("open surface %dx%d: %w", size.W, size.H, err)
	}
	a.acquired(d.CloseSurface)

	a.camera = a.cfg.Camera()

	img, err := d.GenImageChecked(size, a.cfg.Tile, CheckerA, CheckerB)
	if err != nil {
		return fmt.Errorf("generate checker image: %w", err)
	}
	a.image = img
	a.acquired(func() error { return d.UnloadImage(img) })

	tex, err := d.LoadTextureFromImage(img)
	if err != nil {
		return fmt.Errorf("load texture: %w", err)
	}
	a.tex = tex
	a.acquired(func() error { return d.UnloadTexture(tex) })

	a.log.WriteLineString("Creating mesh...")
	w, l := a.cfg.MeshSize(tex.Width, tex.Height)
	mesh, err := d.GenMeshPlane(w, l, a.cfg.Subdivisions, a.cfg.Subdivisions)
	if err != nil {
		return fmt.Errorf("generate mesh: %w", err)
	}
	a.mesh = mesh
	a.acquired(func() error { return d.UnloadMesh(mesh) })
	a.log.WriteLineString("Mesh created...")

	mat, err := d.LoadMaterial(tex)
	if err != nil {
		return fmt.Errorf("load material: %w", err)
	}
	a.mat = mat
	a.acquired(func() error { return d.UnloadMaterial(mat) })

	target, err := d.LoadRenderTarget(size)
	if err != nil {
		return fmt.Errorf("load render target: %w", err)
	}
	a.target = target
	a.acquired(func() error { return d.UnloadRenderTarget(target) })

	d.SetTargetFPS(a.cfg.TargetFPS)
	a.log.WriteLineString("Starting render loop")
	return nil
}

// Camera returns the fixed scene camera.
func (a *App) Camera() render.Camera { return a.camera }

// Frame renders the mesh into the offscreen target, then presents the
// target with the overlay text.
func (a *App) Frame() error {
	if a.closed {
		return ErrClosed
	}
	d := a.dev

	d.BeginTarget(a.target)
	d.Clear(Background)
	d.DrawMesh(a.mesh, a.mat, a.camera, render.Mat4Identity())
	d.EndTarget()

	d.BeginFrame()
	d.Clear(Background)
	d.DrawTarget(a.target, image.Point{})
	fs := a.cfg.FontSize
	d.DrawText(a.cfg.Label, image.Pt(textX, textY), fs, TextColor)
	d.DrawText(fmt.Sprintf("FPS: %d", d.FPS()), image.Pt(textX, textY+fs), fs, TextColor)
	d.EndFrame()
	return nil
}

// Close releases every resource in reverse acquisition order and closes the
// surface last. Calling Close again is a no-op.
func (a *App) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true

	var errs []error
	for i := len(a.release) - 1; i >= 0; i-- {
		if err := a.release[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.release = nil
	return errors.Join(errs...)
}

// Run executes the demo until the device reports a close request.
func Run(dev hal.Device, cfg Config, log hal.Logger) error {
	a, err := New(dev, cfg, log)
	if err != nil {
		return err
	}
	for {
		done, err := hal.Step(dev, a)
		if done {
			return err
		}
		if err != nil {
			return errors.Join(err, a.Close())
		}
	}
}

var _ hal.Program = (*App)(nil)
