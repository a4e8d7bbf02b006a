package hal

import (
	"errors"
	"image"
	"image/color"

	"shaderplay/render"
)

var (
	// ErrNoSurface is returned when a resource is requested before
	// OpenSurface or after CloseSurface.
	ErrNoSurface = errors.New("no surface")
	// ErrSurfaceOpen is returned by a second OpenSurface.
	ErrSurfaceOpen = errors.New("surface already open")
	// ErrUnknownHandle is returned when releasing a handle that was never
	// created by the device or was already released.
	ErrUnknownHandle = errors.New("unknown handle")
	// ErrInvalidSize is returned for non-positive extents.
	ErrInvalidSize = errors.New("invalid size")
)

// Size is a 2D integer extent in pixels.
type Size struct {
	W, H int
}

// Valid reports whether both axes are positive.
func (s Size) Valid() bool { return s.W > 0 && s.H > 0 }

// ID identifies a device resource. Zero is never a live handle.
type ID uint32

// Image is a CPU-side bitmap owned by the device.
type Image struct {
	ID     ID
	Width  int
	Height int
}

// Texture is an image uploaded for sampling.
type Texture struct {
	ID     ID
	Width  int
	Height int
}

// Mesh is uploaded geometry.
type Mesh struct {
	ID        ID
	Vertices  int
	Triangles int
}

// Material is a default-shaded material with an albedo map.
type Material struct {
	ID     ID
	Albedo Texture
}

// RenderTarget is an offscreen color buffer.
type RenderTarget struct {
	ID     ID
	Width  int
	Height int
}

// Device is the rendering and windowing capability used by the app.
//
// Resources are created once and must be released exactly once before
// CloseSurface. Draw calls are only valid between BeginTarget/EndTarget or
// BeginFrame/EndFrame; outside a pass they are ignored.
type Device interface {
	OpenSurface(title string, size Size) error
	CloseSurface() error
	SetTargetFPS(fps int)
	FPS() int
	// ShouldClose reports the host's close request. It is checked once
	// per frame, before the frame is drawn.
	ShouldClose() bool

	GenImageChecked(size Size, tile int, a, b color.RGBA) (Image, error)
	UnloadImage(Image) error
	LoadTextureFromImage(Image) (Texture, error)
	UnloadTexture(Texture) error
	GenMeshPlane(width, length float32, resX, resZ int) (Mesh, error)
	UnloadMesh(Mesh) error
	LoadMaterial(albedo Texture) (Material, error)
	UnloadMaterial(Material) error
	LoadRenderTarget(size Size) (RenderTarget, error)
	UnloadRenderTarget(RenderTarget) error

	BeginTarget(RenderTarget)
	EndTarget()
	// BeginFrame starts drawing to the visible surface. EndFrame presents
	// the frame and waits for the frame-rate ceiling.
	BeginFrame()
	EndFrame()

	Clear(c color.RGBA)
	DrawMesh(m Mesh, mat Material, cam render.Camera, model render.Mat4)
	DrawTarget(t RenderTarget, at image.Point)
	DrawText(s string, at image.Point, size int, c color.RGBA)
}

// Program is a frame-stepped application a host can drive when it owns the
// main loop.
type Program interface {
	Frame() error
	Close() error
}

// Step runs one iteration of p on d: it closes p when d asks to close and
// renders a frame otherwise. done reports that p was closed; err is then the
// result of Close.
func Step(d Device, p Program) (done bool, err error) {
	if d.ShouldClose() {
		return true, p.Close()
	}
	return false, p.Frame()
}
