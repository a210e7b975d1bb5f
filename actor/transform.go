package actor

import "github.com/go-gl/mathgl/mgl32"

// Transform represents a placement in the plane
type Transform struct {
	Position mgl32.Vec2
	// Rotation angle in radians, counter-clockwise
	Rotation float32
}

// NewTransform creates an identity transform
func NewTransform() Transform {
	return Transform{
		Position: mgl32.Vec2{0, 0},
		Rotation: 0,
	}
}

// Apply maps a local point to world space: rotation first, then translation
func (t Transform) Apply(point mgl32.Vec2) mgl32.Vec2 {
	if t.Rotation == 0 {
		return point.Add(t.Position)
	}
	return mgl32.Rotate2D(t.Rotation).Mul2x1(point).Add(t.Position)
}
