package app

import (
	"errors"
	"fmt"
	"image"
	"image/color"

	"shaderplay/hal"
	"shaderplay/render"
)

var errInjected = errors.New("injected failure")

// recorder is a hal.Device that records every call.
type recorder struct {
	calls []string

	// failOn makes the named method return errInjected.
	failOn string
	// closeAfter is the number of frames before ShouldClose reports true.
	closeAfter int

	next   hal.ID
	live   map[hal.ID]string
	frames int
	open   bool
	camera render.Camera
	fps    int
}

func newRecorder() *recorder {
	return &recorder{live: make(map[hal.ID]string), fps: 60}
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

func (r *recorder) create(kind string) (hal.ID, error) {
	r.record("%s", kind)
	if r.failOn == kind {
		return 0, errInjected
	}
	r.next++
	r.live[r.next] = kind
	return r.next, nil
}

func (r *recorder) destroy(kind string, id hal.ID) error {
	r.record("%s", kind)
	if _, ok := r.live[id]; !ok {
		return hal.ErrUnknownHandle
	}
	delete(r.live, id)
	return nil
}

func (r *recorder) OpenSurface(title string, size hal.Size) error {
	r.record("OpenSurface %s %dx%d", title, size.W, size.H)
	if r.failOn == "OpenSurface" {
		return errInjected
	}
	r.open = true
	return nil
}

func (r *recorder) CloseSurface() error {
	r.record("CloseSurface")
	r.open = false
	if len(r.live) > 0 {
		return fmt.Errorf("%d resources still loaded", len(r.live))
	}
	return nil
}

func (r *recorder) SetTargetFPS(fps int) { r.record("SetTargetFPS %d", fps) }
func (r *recorder) FPS() int             { return r.fps }
func (r *recorder) ShouldClose() bool    { return r.frames >= r.closeAfter }

func (r *recorder) GenImageChecked(size hal.Size, tile int, a, b color.RGBA) (hal.Image, error) {
	id, err := r.create("GenImageChecked")
	return hal.Image{ID: id, Width: size.W, Height: size.H}, err
}

func (r *recorder) UnloadImage(img hal.Image) error { return r.destroy("UnloadImage", img.ID) }

func (r *recorder) LoadTextureFromImage(img hal.Image) (hal.Texture, error) {
	id, err := r.create("LoadTextureFromImage")
	return hal.Texture{ID: id, Width: img.Width, Height: img.Height}, err
}

func (r *recorder) UnloadTexture(t hal.Texture) error { return r.destroy("UnloadTexture", t.ID) }

func (r *recorder) GenMeshPlane(width, length float32, resX, resZ int) (hal.Mesh, error) {
	id, err := r.create("GenMeshPlane")
	if err == nil {
		r.calls[len(r.calls)-1] = fmt.Sprintf("GenMeshPlane %.1fx%.1f %dx%d", width, length, resX, resZ)
	}
	return hal.Mesh{ID: id}, err
}

func (r *recorder) UnloadMesh(m hal.Mesh) error { return r.destroy("UnloadMesh", m.ID) }

func (r *recorder) LoadMaterial(albedo hal.Texture) (hal.Material, error) {
	id, err := r.create("LoadMaterial")
	return hal.Material{ID: id, Albedo: albedo}, err
}

func (r *recorder) UnloadMaterial(m hal.Material) error { return r.destroy("UnloadMaterial", m.ID) }

func (r *recorder) LoadRenderTarget(size hal.Size) (hal.RenderTarget, error) {
	id, err := r.create("LoadRenderTarget")
	return hal.RenderTarget{ID: id, Width: size.W, Height: size.H}, err
}

func (r *recorder) UnloadRenderTarget(t hal.RenderTarget) error {
	return r.destroy("UnloadRenderTarget", t.ID)
}

func (r *recorder) BeginTarget(hal.RenderTarget) { r.record("BeginTarget") }
func (r *recorder) EndTarget()                   { r.record("EndTarget") }
func (r *recorder) BeginFrame()                  { r.record("BeginFrame") }

func (r *recorder) EndFrame() {
	r.record("EndFrame")
	r.frames++
}

func (r *recorder) Clear(c color.RGBA) { r.record("Clear %v", c) }

func (r *recorder) DrawMesh(m hal.Mesh, mat hal.Material, cam render.Camera, model render.Mat4) {
	r.camera = cam
	identity := model == render.Mat4Identity()
	r.record("DrawMesh identity=%v", identity)
}

func (r *recorder) DrawTarget(t hal.RenderTarget, at image.Point) {
	r.record("DrawTarget %v", at)
}

func (r *recorder) DrawText(s string, at image.Point, size int, c color.RGBA) {
	r.record("DrawText %q %v %d", s, at, size)
}

var _ hal.Device = (*recorder)(nil)
