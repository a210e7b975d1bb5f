package gjk

import "github.com/go-gl/mathgl/mgl32"

// Negate returns -v.
func Negate(v mgl32.Vec2) mgl32.Vec2 {
	return mgl32.Vec2{-v[0], -v[1]}
}

// Cross2 returns the z component of the 3D cross product of a and b lifted to the plane z=0.
// Positive when b is counter-clockwise from a.
func Cross2(a, b mgl32.Vec2) float32 {
	return a[0]*b[1] - a[1]*b[0]
}

// TripleProduct computes (a × b) × c in the plane.
//
// The result is perpendicular to c, and its orientation follows the sign of Cross2(a, b).
// GJK uses it as TripleProduct(edge, toPoint, edge) to get the normal of an edge that
// faces a reference point.
func TripleProduct(a, b, c mgl32.Vec2) mgl32.Vec2 {
	z := Cross2(a, b)
	return mgl32.Vec2{-z * c[1], z * c[0]}
}
