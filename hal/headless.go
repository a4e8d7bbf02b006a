package hal

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"time"

	xdraw "golang.org/x/image/draw"

	"shaderplay/render"
)

// HeadlessConfig controls the no-window device.
type HeadlessConfig struct {
	Enabled bool
	// Frames stops the device after N presented frames (0 = run until the
	// context is done).
	Frames uint64
	// Unpaced disables the frame-rate ceiling wait.
	Unpaced   bool
	Wireframe bool
	// Clock feeds the FPS counter (time.Now if nil).
	Clock func() time.Time
}

type headlessMaterial struct {
	albedo ID
	mat    render.Material
}

// Headless is a Device that renders in software into memory.
//
// It is used for smoke runs without a display and for snapshotting frames.
type Headless struct {
	ctx context.Context
	cfg HeadlessConfig

	title  string
	screen *image.RGBA
	open   bool

	images    Handles[*image.RGBA]
	textures  Handles[*image.RGBA]
	meshes    Handles[*render.Mesh]
	materials Handles[headlessMaterial]
	targets   Handles[*image.RGBA]

	r   *render.Renderer
	dst *image.RGBA

	ticker *time.Ticker
	fps    *FPSCounter
	frames uint64
}

// NewHeadless returns a headless device. ctx cancellation is observed as a
// close request.
func NewHeadless(ctx context.Context, cfg HeadlessConfig) *Headless {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Headless{
		ctx: ctx,
		cfg: cfg,
		fps: NewFPSCounter(cfg.Clock),
	}
}

// Screen returns the visible surface as of the last presented frame.
func (h *Headless) Screen() *image.RGBA { return h.screen }

// Title returns the surface title.
func (h *Headless) Title() string { return h.title }

// Frames returns the number of presented frames.
func (h *Headless) Frames() uint64 { return h.frames }

func (h *Headless) OpenSurface(title string, size Size) error {
	if h.open {
		return ErrSurfaceOpen
	}
	if !size.Valid() {
		return fmt.Errorf("open surface %dx%d: %w", size.W, size.H, ErrInvalidSize)
	}
	h.title = title
	h.screen = image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	h.r = render.NewRenderer(size.W, size.H, true)
	if h.cfg.Wireframe {
		h.r.SetRenderMode(render.RenderWireframe)
	}
	h.open = true
	return nil
}

func (h *Headless) CloseSurface() error {
	if !h.open {
		return ErrNoSurface
	}
	h.open = false
	h.dst = nil
	if h.ticker != nil {
		h.ticker.Stop()
		h.ticker = nil
	}
	if n := h.live(); n > 0 {
		return fmt.Errorf("close surface: %d resources still loaded", n)
	}
	return nil
}

func (h *Headless) live() int {
	return h.images.Len() + h.textures.Len() + h.meshes.Len() + h.materials.Len() + h.targets.Len()
}

func (h *Headless) SetTargetFPS(fps int) {
	if h.ticker != nil {
		h.ticker.Stop()
		h.ticker = nil
	}
	if fps <= 0 || h.cfg.Unpaced {
		return
	}
	h.ticker = time.NewTicker(time.Second / time.Duration(fps))
}

func (h *Headless) FPS() int { return h.fps.FPS() }

func (h *Headless) ShouldClose() bool {
	if !h.open {
		return true
	}
	if h.ctx.Err() != nil {
		return true
	}
	return h.cfg.Frames > 0 && h.frames >= h.cfg.Frames
}

func (h *Headless) GenImageChecked(size Size, tile int, a, b color.RGBA) (Image, error) {
	if !h.open {
		return Image{}, ErrNoSurface
	}
	if !size.Valid() {
		return Image{}, fmt.Errorf("gen image %dx%d: %w", size.W, size.H, ErrInvalidSize)
	}
	img := render.Checked(size.W, size.H, tile, tile, a, b)
	return Image{ID: h.images.Add(img), Width: size.W, Height: size.H}, nil
}

func (h *Headless) UnloadImage(img Image) error {
	_, err := h.images.Remove(img.ID)
	return err
}

func (h *Headless) LoadTextureFromImage(img Image) (Texture, error) {
	if !h.open {
		return Texture{}, ErrNoSurface
	}
	src, ok := h.images.Get(img.ID)
	if !ok {
		return Texture{}, fmt.Errorf("load texture: %w: image %d", ErrUnknownHandle, img.ID)
	}
	tex := image.NewRGBA(src.Rect)
	copy(tex.Pix, src.Pix)
	return Texture{ID: h.textures.Add(tex), Width: src.Rect.Dx(), Height: src.Rect.Dy()}, nil
}

func (h *Headless) UnloadTexture(t Texture) error {
	_, err := h.textures.Remove(t.ID)
	return err
}

func (h *Headless) GenMeshPlane(width, length float32, resX, resZ int) (Mesh, error) {
	if !h.open {
		return Mesh{}, ErrNoSurface
	}
	m := render.GenMeshPlane(width, length, resX, resZ)
	return Mesh{ID: h.meshes.Add(m), Vertices: len(m.Vertices), Triangles: m.Triangles()}, nil
}

func (h *Headless) UnloadMesh(m Mesh) error {
	_, err := h.meshes.Remove(m.ID)
	return err
}

func (h *Headless) LoadMaterial(albedo Texture) (Material, error) {
	if !h.open {
		return Material{}, ErrNoSurface
	}
	tex, ok := h.textures.Get(albedo.ID)
	if !ok {
		return Material{}, fmt.Errorf("load material: %w: texture %d", ErrUnknownHandle, albedo.ID)
	}
	mat := render.DefaultMaterial()
	mat.Albedo = tex
	id := h.materials.Add(headlessMaterial{albedo: albedo.ID, mat: mat})
	return Material{ID: id, Albedo: albedo}, nil
}

func (h *Headless) UnloadMaterial(m Material) error {
	_, err := h.materials.Remove(m.ID)
	return err
}

func (h *Headless) LoadRenderTarget(size Size) (RenderTarget, error) {
	if !h.open {
		return RenderTarget{}, ErrNoSurface
	}
	if !size.Valid() {
		return RenderTarget{}, fmt.Errorf("load render target %dx%d: %w", size.W, size.H, ErrInvalidSize)
	}
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	return RenderTarget{ID: h.targets.Add(img), Width: size.W, Height: size.H}, nil
}

func (h *Headless) UnloadRenderTarget(t RenderTarget) error {
	_, err := h.targets.Remove(t.ID)
	return err
}

func (h *Headless) BeginTarget(t RenderTarget) {
	h.dst, _ = h.targets.Get(t.ID)
}

func (h *Headless) EndTarget() { h.dst = nil }

func (h *Headless) BeginFrame() { h.dst = h.screen }

func (h *Headless) EndFrame() {
	h.dst = nil
	h.frames++
	if h.ticker != nil {
		select {
		case <-h.ticker.C:
		case <-h.ctx.Done():
		}
	}
	h.fps.Tick()
}

func (h *Headless) Clear(c color.RGBA) {
	if h.dst == nil {
		return
	}
	h.r.Clear(render.RGBATarget{Img: h.dst}, c)
}

func (h *Headless) DrawMesh(m Mesh, mat Material, cam render.Camera, model render.Mat4) {
	if h.dst == nil {
		return
	}
	mesh, ok := h.meshes.Get(m.ID)
	if !ok {
		return
	}
	hm, ok := h.materials.Get(mat.ID)
	if !ok {
		return
	}
	h.r.DrawMesh(render.RGBATarget{Img: h.dst}, cam, mesh, hm.mat, model)
}

func (h *Headless) DrawTarget(t RenderTarget, at image.Point) {
	if h.dst == nil {
		return
	}
	src, ok := h.targets.Get(t.ID)
	if !ok || src == h.dst {
		return
	}
	r := src.Rect.Sub(src.Rect.Min).Add(at)
	xdraw.Draw(h.dst, r, src, src.Rect.Min, xdraw.Over)
}

func (h *Headless) DrawText(s string, at image.Point, size int, c color.RGBA) {
	if h.dst == nil {
		return
	}
	drawTextRGBA(h.dst, s, at, size, c)
}

var _ Device = (*Headless)(nil)
