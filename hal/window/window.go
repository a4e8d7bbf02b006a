//go:build cgo

// Package window is the desktop Device backed by ebiten.
package window

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"shaderplay/hal"
	"shaderplay/render"
)

// Run opens the window, builds the program on the window device and drives
// it from the ebiten game loop. It blocks until the window closes.
func Run(newProgram func(hal.Device) (hal.Program, error)) error {
	d := newDevice()
	prog, err := newProgram(d)
	if err != nil {
		return err
	}

	g := &game{d: d, prog: prog}
	err = ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return g.closeErr
	}
	if err != nil && !g.closed {
		err = errors.Join(err, prog.Close())
	}
	return err
}

type game struct {
	d    *device
	prog hal.Program

	closed   bool
	closeErr error
}

func (g *game) Update() error {
	done, err := hal.Step(g.d, g.prog)
	if done {
		g.closed = true
		g.closeErr = err
		return ebiten.Termination
	}
	return err
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.d.back != nil {
		screen.DrawImage(g.d.back, nil)
	}
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.d.size.W, g.d.size.H
}

type material struct {
	albedo *ebiten.Image
	tint   color.RGBA
}

type device struct {
	size hal.Size
	open bool
	back *ebiten.Image
	dst  *ebiten.Image

	images    hal.Handles[*image.RGBA]
	textures  hal.Handles[*ebiten.Image]
	meshes    hal.Handles[*render.Mesh]
	materials hal.Handles[material]
	targets   hal.Handles[*ebiten.Image]

	face     text.Face
	proj     []render.ScreenVertex
	vertices []ebiten.Vertex
}

func newDevice() *device {
	return &device{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (d *device) OpenSurface(title string, size hal.Size) error {
	if d.open {
		return hal.ErrSurfaceOpen
	}
	if !size.Valid() {
		return fmt.Errorf("open surface %dx%d: %w", size.W, size.H, hal.ErrInvalidSize)
	}
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(size.W, size.H)
	ebiten.SetWindowClosingHandled(true)
	d.size = size
	d.back = ebiten.NewImage(size.W, size.H)
	d.open = true
	return nil
}

func (d *device) CloseSurface() error {
	if !d.open {
		return hal.ErrNoSurface
	}
	d.open = false
	d.dst = nil
	n := d.images.Len() + d.textures.Len() + d.meshes.Len() + d.materials.Len() + d.targets.Len()
	if n > 0 {
		return fmt.Errorf("close surface: %d resources still loaded", n)
	}
	return nil
}

func (d *device) SetTargetFPS(fps int) { ebiten.SetTPS(fps) }

func (d *device) FPS() int { return int(ebiten.ActualFPS() + 0.5) }

func (d *device) ShouldClose() bool {
	if !d.open {
		return true
	}
	return ebiten.IsWindowBeingClosed() || inpututil.IsKeyJustPressed(ebiten.KeyEscape)
}

func (d *device) GenImageChecked(size hal.Size, tile int, a, b color.RGBA) (hal.Image, error) {
	if !d.open {
		return hal.Image{}, hal.ErrNoSurface
	}
	if !size.Valid() {
		return hal.Image{}, fmt.Errorf("gen image %dx%d: %w", size.W, size.H, hal.ErrInvalidSize)
	}
	img := render.Checked(size.W, size.H, tile, tile, a, b)
	return hal.Image{ID: d.images.Add(img), Width: size.W, Height: size.H}, nil
}

func (d *device) UnloadImage(img hal.Image) error {
	_, err := d.images.Remove(img.ID)
	return err
}

func (d *device) LoadTextureFromImage(img hal.Image) (hal.Texture, error) {
	if !d.open {
		return hal.Texture{}, hal.ErrNoSurface
	}
	src, ok := d.images.Get(img.ID)
	if !ok {
		return hal.Texture{}, fmt.Errorf("load texture: %w: image %d", hal.ErrUnknownHandle, img.ID)
	}
	tex := ebiten.NewImageFromImage(src)
	w, h := tex.Bounds().Dx(), tex.Bounds().Dy()
	return hal.Texture{ID: d.textures.Add(tex), Width: w, Height: h}, nil
}

func (d *device) UnloadTexture(t hal.Texture) error {
	tex, err := d.textures.Remove(t.ID)
	if err != nil {
		return err
	}
	tex.Deallocate()
	return nil
}

func (d *device) GenMeshPlane(width, length float32, resX, resZ int) (hal.Mesh, error) {
	if !d.open {
		return hal.Mesh{}, hal.ErrNoSurface
	}
	m := render.GenMeshPlane(width, length, resX, resZ)
	return hal.Mesh{ID: d.meshes.Add(m), Vertices: len(m.Vertices), Triangles: m.Triangles()}, nil
}

func (d *device) UnloadMesh(m hal.Mesh) error {
	_, err := d.meshes.Remove(m.ID)
	return err
}

func (d *device) LoadMaterial(albedo hal.Texture) (hal.Material, error) {
	if !d.open {
		return hal.Material{}, hal.ErrNoSurface
	}
	tex, ok := d.textures.Get(albedo.ID)
	if !ok {
		return hal.Material{}, fmt.Errorf("load material: %w: texture %d", hal.ErrUnknownHandle, albedo.ID)
	}
	id := d.materials.Add(material{albedo: tex, tint: render.DefaultMaterial().Tint})
	return hal.Material{ID: id, Albedo: albedo}, nil
}

func (d *device) UnloadMaterial(m hal.Material) error {
	_, err := d.materials.Remove(m.ID)
	return err
}

func (d *device) LoadRenderTarget(size hal.Size) (hal.RenderTarget, error) {
	if !d.open {
		return hal.RenderTarget{}, hal.ErrNoSurface
	}
	if !size.Valid() {
		return hal.RenderTarget{}, fmt.Errorf("load render target %dx%d: %w", size.W, size.H, hal.ErrInvalidSize)
	}
	img := ebiten.NewImage(size.W, size.H)
	return hal.RenderTarget{ID: d.targets.Add(img), Width: size.W, Height: size.H}, nil
}

func (d *device) UnloadRenderTarget(t hal.RenderTarget) error {
	img, err := d.targets.Remove(t.ID)
	if err != nil {
		return err
	}
	img.Deallocate()
	return nil
}

func (d *device) BeginTarget(t hal.RenderTarget) { d.dst, _ = d.targets.Get(t.ID) }
func (d *device) EndTarget()                     { d.dst = nil }

// BeginFrame draws into a back buffer; ebiten copies it to the screen in
// Draw and paces Update at the TPS set by SetTargetFPS.
func (d *device) BeginFrame() { d.dst = d.back }
func (d *device) EndFrame()   { d.dst = nil }

func (d *device) Clear(c color.RGBA) {
	if d.dst == nil {
		return
	}
	d.dst.Fill(c)
}

func (d *device) DrawMesh(m hal.Mesh, mat hal.Material, cam render.Camera, model render.Mat4) {
	if d.dst == nil {
		return
	}
	mesh, ok := d.meshes.Get(m.ID)
	if !ok {
		return
	}
	mt, ok := d.materials.Get(mat.ID)
	if !ok {
		return
	}
	b := d.dst.Bounds()
	w, h := b.Dx(), b.Dy()
	d.proj = render.Project(d.proj, mesh, render.MVP(cam, model, w, h), w, h)
	for _, v := range d.proj {
		// ebiten has no clipping against the eye plane.
		if !v.Visible {
			return
		}
	}

	tb := mt.albedo.Bounds()
	tw, th := float32(tb.Dx()), float32(tb.Dy())
	cr, cg, cb, ca := float32(mt.tint.R)/255, float32(mt.tint.G)/255, float32(mt.tint.B)/255, float32(mt.tint.A)/255

	d.vertices = d.vertices[:0]
	for _, v := range d.proj {
		d.vertices = append(d.vertices, ebiten.Vertex{
			DstX:   v.X,
			DstY:   v.Y,
			SrcX:   v.U * tw,
			SrcY:   v.V * th,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}
	d.dst.DrawTriangles(d.vertices, mesh.Indices, mt.albedo, nil)
}

func (d *device) DrawTarget(t hal.RenderTarget, at image.Point) {
	if d.dst == nil {
		return
	}
	src, ok := d.targets.Get(t.ID)
	if !ok || src == d.dst {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	d.dst.DrawImage(src, op)
}

func (d *device) DrawText(s string, at image.Point, size int, c color.RGBA) {
	if d.dst == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	scale := float64(size) / float64(basicfont.Face7x13.Height)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(at.X), float64(at.Y))
	op.ColorScale.ScaleWithColor(c)
	text.Draw(d.dst, s, d.face, op)
}

var _ hal.Device = (*device)(nil)
