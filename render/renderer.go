package render

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Renderer is a fixed-pipeline software rasterizer.
//
// Create it once and reuse it to avoid allocations.
type Renderer struct {
	Mode  RenderMode
	Depth bool

	depthBuf []float32
	depthW   int
	proj     []ScreenVertex
}

// NewRenderer creates a renderer for a given maximum target size.
//
// If enableDepth is true, a depth buffer of size w*h is allocated.
func NewRenderer(w, h int, enableDepth bool) *Renderer {
	r := &Renderer{Mode: RenderTextured}
	r.EnableDepth(enableDepth, w, h)
	return r
}

func (r *Renderer) SetRenderMode(m RenderMode) { r.Mode = m }

func (r *Renderer) EnableDepth(on bool, w, h int) {
	r.Depth = on
	if !on || w <= 0 || h <= 0 {
		r.depthBuf = nil
		r.depthW = 0
		return
	}
	if cap(r.depthBuf) < w*h {
		r.depthBuf = make([]float32, w*h)
	} else {
		r.depthBuf = r.depthBuf[:w*h]
	}
	r.depthW = w
	r.clearDepth()
}

func (r *Renderer) clearDepth() {
	for i := range r.depthBuf {
		r.depthBuf[i] = math32.MaxFloat32
	}
}

// Clear fills the target with c and resets the depth buffer.
func (r *Renderer) Clear(t Target, c color.RGBA) {
	if t == nil {
		return
	}
	t.Clear(c)
	if r.Depth {
		w, h := t.Size()
		r.EnableDepth(true, w, h)
	}
}

// DrawMesh rasterizes m with material mat into t.
func (r *Renderer) DrawMesh(t Target, cam Camera, m *Mesh, mat Material, model Mat4) {
	if r == nil || t == nil || m == nil {
		return
	}
	if len(m.Vertices) == 0 || len(m.Indices) < 3 {
		return
	}
	w, h := t.Size()
	if w <= 0 || h <= 0 {
		return
	}
	if r.Depth && len(r.depthBuf) != w*h {
		r.EnableDepth(true, w, h)
	}

	r.proj = Project(r.proj, m, MVP(cam, model, w, h), w, h)

	for i := 0; i+2 < len(m.Indices); i += 3 {
		i0 := int(m.Indices[i+0])
		i1 := int(m.Indices[i+1])
		i2 := int(m.Indices[i+2])
		if i0 >= len(r.proj) || i1 >= len(r.proj) || i2 >= len(r.proj) {
			continue
		}
		a, b, c := r.proj[i0], r.proj[i1], r.proj[i2]

		// Trivial clip: drop triangles touching the eye plane.
		if !a.Visible || !b.Visible || !c.Visible {
			continue
		}

		switch r.Mode {
		case RenderWireframe:
			col := mat.Tint
			r.drawLine(t, a, b, col)
			r.drawLine(t, b, c, col)
			r.drawLine(t, c, a, col)
		default:
			r.fillTriangle(t, w, h, a, b, c, mat)
		}
	}
}

func (r *Renderer) depthTest(x, y int, z float32) bool {
	if !r.Depth || r.depthBuf == nil {
		return true
	}
	idx := y*r.depthW + x
	if x < 0 || y < 0 || x >= r.depthW || idx >= len(r.depthBuf) {
		return false
	}
	// NDC z is in [-1,1]. Map to [0,1].
	d := clampF32(z*0.5+0.5, 0, 1)
	if d >= r.depthBuf[idx] {
		return false
	}
	r.depthBuf[idx] = d
	return true
}

func (r *Renderer) fillTriangle(t Target, w, h int, a, b, c ScreenVertex, mat Material) {
	minX := max(0, int(math32.Floor(min(a.X, b.X, c.X))))
	maxX := min(w-1, int(math32.Ceil(max(a.X, b.X, c.X))))
	minY := max(0, int(math32.Floor(min(a.Y, b.Y, c.Y))))
	maxY := min(h-1, int(math32.Ceil(max(a.Y, b.Y, c.Y))))
	if minX > maxX || minY > maxY {
		return
	}

	area := edgeFn(a, b, c.X, c.Y)
	if area == 0 {
		return
	}
	invArea := 1 / area

	// Pre-divide attributes for perspective-correct interpolation.
	au, av := a.U*a.InvW, a.V*a.InvW
	bu, bv := b.U*b.InvW, b.V*b.InvW
	cu, cv := c.U*c.InvW, c.V*c.InvW

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5
			l0 := edgeFn(b, c, px, py) * invArea
			l1 := edgeFn(c, a, px, py) * invArea
			l2 := edgeFn(a, b, px, py) * invArea
			if l0 < 0 || l1 < 0 || l2 < 0 {
				continue
			}
			z := l0*a.Z + l1*b.Z + l2*c.Z
			if !r.depthTest(x, y, z) {
				continue
			}
			iw := l0*a.InvW + l1*b.InvW + l2*c.InvW
			if iw == 0 {
				continue
			}
			u := (l0*au + l1*bu + l2*cu) / iw
			v := (l0*av + l1*bv + l2*cv) / iw
			t.SetPixel(x, y, mat.Sample(u, v))
		}
	}
}

func (r *Renderer) drawLine(t Target, a, b ScreenVertex, c color.RGBA) {
	x0, y0 := int(a.X), int(a.Y)
	x1, y1 := int(b.X), int(b.Y)
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

func edgeFn(a, b ScreenVertex, x, y float32) float32 {
	return (x-a.X)*(b.Y-a.Y) - (y-a.Y)*(b.X-a.X)
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func clampF32(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
