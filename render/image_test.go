package render

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testBlue   = color.RGBA{R: 0, G: 121, B: 241, A: 255}
	testPurple = color.RGBA{R: 112, G: 31, B: 126, A: 255}
)

func TestCheckedBlocks(t *testing.T) {
	img := Checked(20, 20, 10, 10, testBlue, testPurple)
	require.Equal(t, 20, img.Rect.Dx())
	require.Equal(t, 20, img.Rect.Dy())

	tests := []struct {
		x0, y0 int
		want   color.RGBA
	}{
		{0, 0, testBlue},
		{10, 0, testPurple},
		{0, 10, testPurple},
		{10, 10, testBlue},
	}
	for _, tt := range tests {
		for y := tt.y0; y < tt.y0+10; y++ {
			for x := tt.x0; x < tt.x0+10; x++ {
				if got := img.RGBAAt(x, y); got != tt.want {
					t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got, tt.want)
				}
			}
		}
	}
}

func TestCheckedParity(t *testing.T) {
	const tile = 3
	img := Checked(17, 11, tile, tile, testBlue, testPurple)
	for y := 0; y < 11; y++ {
		for x := 0; x < 17; x++ {
			want := testPurple
			if (x/tile+y/tile)%2 == 0 {
				want = testBlue
			}
			assert.Equal(t, want, img.RGBAAt(x, y), "pixel (%d,%d)", x, y)
		}
	}
}

func TestCheckedDegenerate(t *testing.T) {
	img := Checked(-4, 5, 0, 0, testBlue, testPurple)
	assert.Equal(t, 0, img.Rect.Dx())

	img = Checked(2, 1, 0, 0, testBlue, testPurple)
	assert.Equal(t, testBlue, img.RGBAAt(0, 0))
	assert.Equal(t, testPurple, img.RGBAAt(1, 0))
}
