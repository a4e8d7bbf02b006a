package render

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestMat4MulIdentity(t *testing.T) {
	a := Mat4Identity()
	b := Mat4Translate(V3(1, 2, 3))
	if got := Mat4Mul(a, b); got != b {
		t.Fatalf("identity*a mismatch")
	}
	if got := Mat4Mul(b, a); got != b {
		t.Fatalf("a*identity mismatch")
	}
}

func TestLookAtNotIdentity(t *testing.T) {
	m := Mat4LookAt(V3(0, 0, 3), V3(0, 0, 0), V3(0, 1, 0))
	if m == Mat4Identity() {
		t.Fatalf("lookAt unexpectedly identity")
	}
}

func TestLookAtMapsEyeToOrigin(t *testing.T) {
	eye := V3(0, 10, 0)
	m := Mat4LookAt(eye, V3(0, 0, 0), V3(0, 0, 1))
	p := Mat4MulV4(m, Vec4{X: eye.X, Y: eye.Y, Z: eye.Z, W: 1})
	assert.InDelta(t, 0, p.X, 1e-5)
	assert.InDelta(t, 0, p.Y, 1e-5)
	assert.InDelta(t, 0, p.Z, 1e-5)

	// The target sits straight ahead, down the -Z view axis.
	o := Mat4MulV4(m, Vec4{W: 1})
	assert.InDelta(t, -10, o.Z, 1e-5)
}

func TestScaleThenTranslate(t *testing.T) {
	m := Mat4Mul(Mat4Translate(V3(1, 1, 1)), Mat4Scale(V3(2, 3, 4)))
	p := Mat4MulV4(m, Vec4{X: 1, Y: 1, Z: 1, W: 1})
	assert.Equal(t, Vec4{X: 3, Y: 4, Z: 5, W: 1}, p)
}

func TestNormalizeZero(t *testing.T) {
	assert.Equal(t, Vec3{}, Normalize(Vec3{}))
	assert.InDelta(t, 1, Len(Normalize(V3(3, 4, 12))), 1e-6)
}

func TestDegToRad(t *testing.T) {
	assert.InDelta(t, math32.Pi/4, DegToRad(45), 1e-7)
}
