package render

// ScreenVertex is a mesh vertex projected into target pixel space.
//
// X and Y are continuous pixel coordinates with the origin at the top-left
// corner. Z is NDC depth in [-1, 1]. InvW is 1/w of the clip-space position
// and is kept for perspective-correct interpolation.
type ScreenVertex struct {
	X, Y, Z float32
	InvW    float32
	U, V    float32

	// Visible is false when the vertex lies on or behind the eye plane.
	Visible bool
}

// Project transforms every vertex of m by mvp and maps it onto a w×h target.
//
// dst is reused when it has enough capacity.
func Project(dst []ScreenVertex, m *Mesh, mvp Mat4, w, h int) []ScreenVertex {
	dst = dst[:0]
	if m == nil {
		return dst
	}
	fw, fh := float32(w), float32(h)
	for _, v := range m.Vertices {
		p := Mat4MulV4(mvp, Vec4{X: v.Pos.X, Y: v.Pos.Y, Z: v.Pos.Z, W: 1})
		sv := ScreenVertex{U: v.UV.X, V: v.UV.Y}
		if p.W > 0 {
			inv := 1 / p.W
			sv.X = (p.X*inv*0.5 + 0.5) * fw
			sv.Y = (1 - (p.Y*inv*0.5 + 0.5)) * fh
			sv.Z = p.Z * inv
			sv.InvW = inv
			sv.Visible = true
		}
		dst = append(dst, sv)
	}
	return dst
}

// MVP returns the model-view-projection matrix for drawing with cam into a
// w×h target.
func MVP(cam Camera, model Mat4, w, h int) Mat4 {
	if model == (Mat4{}) {
		model = Mat4Identity()
	}
	return Mat4Mul(cam.ViewProjection(w, h), model)
}
