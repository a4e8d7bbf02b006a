package render

import (
	"image"
	"image/color"
)

// Vertex is a mesh vertex.
type Vertex struct {
	Pos    Vec3
	Normal Vec3
	UV     Vec2
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint16
}

// Triangles returns the number of complete triangles in the index list.
func (m *Mesh) Triangles() int {
	if m == nil {
		return 0
	}
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned extent of the mesh vertices.
func (m *Mesh) Bounds() (lo, hi Vec3) {
	if m == nil || len(m.Vertices) == 0 {
		return Vec3{}, Vec3{}
	}
	lo = m.Vertices[0].Pos
	hi = lo
	for _, v := range m.Vertices[1:] {
		lo.X, hi.X = min(lo.X, v.Pos.X), max(hi.X, v.Pos.X)
		lo.Y, hi.Y = min(lo.Y, v.Pos.Y), max(hi.Y, v.Pos.Y)
		lo.Z, hi.Z = min(lo.Z, v.Pos.Z), max(hi.Z, v.Pos.Z)
	}
	return lo, hi
}

// GenMeshPlane builds a flat plane on y=0 centred on the origin.
//
// The plane spans width along X and length along Z and is split into
// resX×resZ quads, so it has (resX+1)*(resZ+1) vertices. UVs run from 0 to 1
// across each axis and every normal points up (+Y).
func GenMeshPlane(width, length float32, resX, resZ int) *Mesh {
	if resX < 1 {
		resX = 1
	}
	if resZ < 1 {
		resZ = 1
	}
	vx := resX + 1
	vz := resZ + 1

	m := &Mesh{
		Vertices: make([]Vertex, 0, vx*vz),
		Indices:  make([]uint16, 0, resX*resZ*6),
	}
	for z := 0; z < vz; z++ {
		fz := float32(z) / float32(resZ)
		for x := 0; x < vx; x++ {
			fx := float32(x) / float32(resX)
			m.Vertices = append(m.Vertices, Vertex{
				Pos:    V3((fx-0.5)*width, 0, (fz-0.5)*length),
				Normal: V3(0, 1, 0),
				UV:     V2(fx, fz),
			})
		}
	}
	for z := 0; z < resZ; z++ {
		for x := 0; x < resX; x++ {
			i := uint16(z*vx + x)
			row := uint16(vx)
			m.Indices = append(m.Indices,
				i+row, i+1, i,
				i+row, i+row+1, i+1,
			)
		}
	}
	return m
}

// Material describes how a mesh surface is shaded.
//
// Shading is unlit: the albedo texel is multiplied by Tint.
type Material struct {
	Albedo *image.RGBA
	Tint   color.RGBA
}

var whiteTexel = func() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	img.Pix[0], img.Pix[1], img.Pix[2], img.Pix[3] = 0xFF, 0xFF, 0xFF, 0xFF
	return img
}()

// DefaultMaterial returns a white, untextured material.
func DefaultMaterial() Material {
	return Material{Albedo: whiteTexel, Tint: color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}}
}

// Sample returns the tinted albedo texel at uv using nearest filtering.
func (m Material) Sample(u, v float32) color.RGBA {
	tex := m.Albedo
	if tex == nil {
		tex = whiteTexel
	}
	b := tex.Rect
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 {
		return m.Tint
	}
	x := clampInt(int(u*float32(w)), 0, w-1)
	y := clampInt(int(v*float32(h)), 0, h-1)
	off := tex.PixOffset(b.Min.X+x, b.Min.Y+y)
	p := tex.Pix[off : off+4 : off+4]
	return color.RGBA{
		R: mul8(p[0], m.Tint.R),
		G: mul8(p[1], m.Tint.G),
		B: mul8(p[2], m.Tint.B),
		A: mul8(p[3], m.Tint.A),
	}
}

func mul8(a, b uint8) uint8 { return uint8((uint16(a) * uint16(b)) / 255) }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
