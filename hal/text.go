package hal

import (
	"image"
	"image/color"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
)

// overlayFaces are the headless overlay faces, smallest first.
var overlayFaces = []*tinyfont.Font{
	&freemono.Regular9pt7b,
	&freemono.Regular12pt7b,
	&freemono.Regular18pt7b,
	&freemono.Regular24pt7b,
}

// overlayFace returns the face whose line height is closest to size pixels.
func overlayFace(size int) *tinyfont.Font {
	best := overlayFaces[0]
	for _, f := range overlayFaces[1:] {
		if absInt(int(f.YAdvance)-size) < absInt(int(best.YAdvance)-size) {
			best = f
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// rgbaDisplay adapts an *image.RGBA to tinyfont.Displayer.
type rgbaDisplay struct {
	img *image.RGBA
}

func (d rgbaDisplay) Size() (x, y int16) {
	if d.img == nil {
		return 0, 0
	}
	return int16(d.img.Rect.Dx()), int16(d.img.Rect.Dy())
}

func (d rgbaDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.img == nil {
		return
	}
	p := image.Pt(int(x), int(y)).Add(d.img.Rect.Min)
	if !p.In(d.img.Rect) {
		return
	}
	d.img.SetRGBA(p.X, p.Y, c)
}

func (d rgbaDisplay) Display() error { return nil }

func drawTextRGBA(img *image.RGBA, s string, at image.Point, size int, c color.RGBA) {
	if img == nil || s == "" {
		return
	}
	// tinyfont draws from the baseline; at is the top-left corner.
	tinyfont.WriteLine(rgbaDisplay{img: img}, overlayFace(size), int16(at.X), int16(at.Y+size), s, c)
}
