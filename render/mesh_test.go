package render

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenMeshPlaneFootprint(t *testing.T) {
	m := GenMeshPlane(1536*0.1, 864*0.1, 2, 2)
	require.Len(t, m.Vertices, 9)
	require.Equal(t, 8, m.Triangles())

	lo, hi := m.Bounds()
	assert.InDelta(t, 153.6, hi.X-lo.X, 1e-3)
	assert.InDelta(t, 86.4, hi.Z-lo.Z, 1e-3)
	assert.Zero(t, hi.Y-lo.Y)
	assert.InDelta(t, 0, lo.X+hi.X, 1e-4)
	assert.InDelta(t, 0, lo.Z+hi.Z, 1e-4)
}

func TestGenMeshPlaneAttributes(t *testing.T) {
	m := GenMeshPlane(4, 2, 3, 1)
	require.Len(t, m.Vertices, 8)
	for i, v := range m.Vertices {
		assert.Equal(t, V3(0, 1, 0), v.Normal, "vertex %d", i)
		assert.True(t, v.UV.X >= 0 && v.UV.X <= 1, "vertex %d u=%v", i, v.UV.X)
		assert.True(t, v.UV.Y >= 0 && v.UV.Y <= 1, "vertex %d v=%v", i, v.UV.Y)
	}
	assert.Equal(t, V2(0, 0), m.Vertices[0].UV)
	assert.Equal(t, V2(1, 1), m.Vertices[len(m.Vertices)-1].UV)
	for _, idx := range m.Indices {
		assert.Less(t, int(idx), len(m.Vertices))
	}
}

func TestGenMeshPlaneClampsResolution(t *testing.T) {
	m := GenMeshPlane(1, 1, 0, -3)
	assert.Len(t, m.Vertices, 4)
	assert.Equal(t, 2, m.Triangles())
}

func TestMaterialSample(t *testing.T) {
	tex := image.NewRGBA(image.Rect(0, 0, 2, 1))
	tex.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})
	tex.SetRGBA(1, 0, color.RGBA{G: 255, A: 255})

	mat := DefaultMaterial()
	mat.Albedo = tex
	assert.Equal(t, color.RGBA{R: 255, A: 255}, mat.Sample(0.1, 0.5))
	assert.Equal(t, color.RGBA{G: 255, A: 255}, mat.Sample(0.9, 0.5))
	// Out-of-range UVs clamp to the edge texels.
	assert.Equal(t, color.RGBA{G: 255, A: 255}, mat.Sample(1.5, 2))

	mat.Tint = color.RGBA{R: 255, G: 255, B: 255, A: 0}
	assert.Zero(t, mat.Sample(0, 0).A)
}

func TestDefaultMaterialIsWhite(t *testing.T) {
	assert.Equal(t, color.RGBA{R: 255, G: 255, B: 255, A: 255}, DefaultMaterial().Sample(0.3, 0.7))
}
