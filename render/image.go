package render

import (
	"image"
	"image/color"
)

// Checked generates a w×h checkerboard.
//
// Pixel (x, y) is a when (x/tileX + y/tileY) is even and b otherwise.
// Non-positive sizes yield an empty image; non-positive tiles are treated as 1.
func Checked(w, h, tileX, tileY int, a, b color.RGBA) *image.RGBA {
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	if tileX <= 0 {
		tileX = 1
	}
	if tileY <= 0 {
		tileY = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			c := b
			if (x/tileX+y/tileY)%2 == 0 {
				c = a
			}
			j := x * 4
			row[j+0] = c.R
			row[j+1] = c.G
			row[j+2] = c.B
			row[j+3] = c.A
		}
	}
	return img
}
