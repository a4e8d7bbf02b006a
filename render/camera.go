package render

// Projection selects the camera projection.
type Projection uint8

const (
	ProjectionPerspective Projection = iota
	ProjectionOrthographic
)

// Default clip planes.
const (
	DefaultNear float32 = 0.01
	DefaultFar  float32 = 1000
)

// Camera describes the viewing transform.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3

	// FovY is the vertical field of view in degrees for perspective
	// cameras and the view height in world units for orthographic ones.
	FovY       float32
	Projection Projection

	// Zero means DefaultNear / DefaultFar.
	Near float32
	Far  float32
}

// View returns the camera view matrix.
func (c Camera) View() Mat4 {
	up := c.Up
	if up == (Vec3{}) {
		up = V3(0, 1, 0)
	}
	return Mat4LookAt(c.Position, c.Target, up)
}

// ProjectionMatrix returns the projection matrix for a target aspect.
func (c Camera) ProjectionMatrix(aspect float32) Mat4 {
	near, far := c.Near, c.Far
	if near == 0 {
		near = DefaultNear
	}
	if far == 0 {
		far = DefaultFar
	}
	fovy := c.FovY
	if fovy == 0 {
		fovy = 45
	}
	switch c.Projection {
	case ProjectionOrthographic:
		top := fovy / 2
		right := top * aspect
		return Mat4Ortho(-right, right, -top, top, near, far)
	default:
		return Mat4Perspective(DegToRad(fovy), aspect, near, far)
	}
}

// ViewProjection returns Projection*View for a target of w×h pixels.
func (c Camera) ViewProjection(w, h int) Mat4 {
	aspect := float32(1)
	if h != 0 {
		aspect = float32(w) / float32(h)
	}
	return Mat4Mul(c.ProjectionMatrix(aspect), c.View())
}
