package render

import (
	"image"
	"image/color"
)

// Target is a minimal pixel target for software rendering.
//
// Implementations should clip out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c color.RGBA)
	Clear(c color.RGBA)
}

// RGBATarget renders into an *image.RGBA.
type RGBATarget struct {
	Img *image.RGBA
}

func (t RGBATarget) Size() (w, h int) {
	if t.Img == nil {
		return 0, 0
	}
	return t.Img.Rect.Dx(), t.Img.Rect.Dy()
}

func (t RGBATarget) Clear(c color.RGBA) {
	if t.Img == nil {
		return
	}
	b := t.Img.Rect
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := t.Img.PixOffset(b.Min.X, y)
		row := t.Img.Pix[off : off+b.Dx()*4]
		for i := 0; i < len(row); i += 4 {
			row[i+0] = c.R
			row[i+1] = c.G
			row[i+2] = c.B
			row[i+3] = c.A
		}
	}
}

func (t RGBATarget) SetPixel(x, y int, c color.RGBA) {
	if t.Img == nil {
		return
	}
	b := t.Img.Rect
	x += b.Min.X
	y += b.Min.Y
	if x < b.Min.X || y < b.Min.Y || x >= b.Max.X || y >= b.Max.Y {
		return
	}
	off := t.Img.PixOffset(x, y)
	p := t.Img.Pix[off : off+4 : off+4]
	p[0] = c.R
	p[1] = c.G
	p[2] = c.B
	p[3] = c.A
}

// RenderMode selects the rasterization mode.
type RenderMode uint8

const (
	RenderTextured RenderMode = iota
	RenderWireframe
)
