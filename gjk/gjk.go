// Package gjk implements the Gilbert-Johnson-Keerthi (GJK) algorithm for 2D overlap tests.
//
// GJK detects whether two convex polygons overlap by testing if their Minkowski difference
// contains the origin. The difference is never built: the algorithm only samples it through
// support points, growing a simplex (point, segment, triangle) that converges toward the origin.
//
// Shapes are plain vertex sets. Convexity is a precondition and is not checked: a concave set
// is tested as its convex hull.
//
// Boundary policy: shapes that only touch (shared vertex or edge) are reported as overlapping.
// Every region test uses a strict "> 0", so an exact zero keeps the origin inside.
//
// References:
//   - Gilbert, Johnson, Keerthi: "A Fast Procedure for Computing the Distance Between
//     Complex Objects in Three-Dimensional Space" (1988)
//   - Van den Bergen: "Collision Detection in Interactive 3D Environments" (2003)
package gjk

import (
	"errors"
	"fmt"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// MaxIterations bounds the refinement loop. Valid convex inputs converge in a handful of
// iterations; the limit only guards degenerate inputs (duplicate or collinear vertices, NaN).
const MaxIterations = 32

var (
	// ErrInvalidInput is returned when a shape has no vertices.
	ErrInvalidInput = errors.New("shape must contain at least one point")
	// ErrNonConvergent is returned when the loop exhausts MaxIterations without a verdict.
	ErrNonConvergent = errors.New("gjk did not converge")
)

// Any non-zero vector works, the first support point is then pulled back toward the origin.
var seedDirection = mgl32.Vec2{0, 1}

// Simplex represents a set of 1-3 points in the Minkowski difference space.
// Points[0] is the oldest point, Points[Count-1] the most recent one.
// Size progression: 1 point → 2 points (segment) → 3 points (triangle)
type Simplex struct {
	Points [3]mgl32.Vec2
	Count  int
}

func (s *Simplex) Reset() {
	s.Count = 0
}

func (s *Simplex) push(point mgl32.Vec2) {
	s.Points[s.Count] = point
	s.Count++
}

var SimplexPool = sync.Pool{
	New: func() interface{} {
		return &Simplex{}
	},
}

// Intersects reports whether the convex shapes a and b overlap, touching included.
//
// It is safe to call concurrently: all state lives on the caller's stack.
// An empty shape returns ErrInvalidInput. ErrNonConvergent comes with a false verdict.
func Intersects(a, b []mgl32.Vec2) (bool, error) {
	var simplex Simplex
	return GJK(a, b, &simplex)
}

// GJK performs the overlap test between two convex vertex sets.
//
// Algorithm overview:
//  1. Get a first support point from an arbitrary direction
//  2. Search toward the origin from it
//  3. If the new support point does not pass the origin → no overlap
//  4. Otherwise add it and reduce the simplex to the feature closest to the origin
//  5. If the triangle encloses the origin → overlap
//
// The simplex is modified in place. On overlap it holds the enclosing triangle, or the
// point/segment the origin lies on.
func GJK(a, b []mgl32.Vec2, simplex *Simplex) (bool, error) {
	return run(a, b, simplex, MaxIterations)
}

func run(a, b []mgl32.Vec2, simplex *Simplex, maxIterations int) (bool, error) {
	if len(a) == 0 || len(b) == 0 {
		return false, fmt.Errorf("gjk: %w", ErrInvalidInput)
	}

	simplex.Reset()
	simplex.push(support(a, b, seedDirection))

	// New direction towards the origin from this first point
	direction := Negate(simplex.Points[0])

	// The first support point is the origin: shapes are touching
	if isZero(direction) {
		return true, nil
	}

	for i := 0; i < maxIterations; i++ {
		newPoint := support(a, b, direction)

		// The new point does not reach the origin along direction:
		// direction is a separating axis.
		if newPoint.Dot(direction) < 0 {
			return false, nil
		}

		simplex.push(newPoint)

		if containsOrigin(simplex, &direction) {
			return true, nil
		}
	}

	return false, fmt.Errorf("gjk: %w after %d iterations", ErrNonConvergent, maxIterations)
}

// containsOrigin tests if the simplex contains the origin and refines the simplex.
//
// Behavior by simplex size:
//   - 2 points (segment): keep the segment or reduce to its newest point
//   - 3 points (triangle): reduce to the edge facing the origin, or report containment
//
// Returns:
//   - true: the origin is on or inside the simplex → overlap
//   - false: simplex and direction updated for next iteration
func containsOrigin(simplex *Simplex, direction *mgl32.Vec2) bool {
	switch simplex.Count {
	case 2:
		return line(simplex, direction)
	case 3:
		return triangle(simplex, direction)
	}
	return false
}

// line handles the segment case (2 points: A newest, B previous).
//
//   - Region AB: the origin projects between the endpoints → keep [B, A], search along the
//     edge normal facing the origin
//   - Region A: otherwise → keep [A], search from A toward the origin
//
// A zero search direction means the origin lies on the simplex: touching.
func line(simplex *Simplex, direction *mgl32.Vec2) bool {
	a := simplex.Points[1]
	b := simplex.Points[0]
	ab := b.Sub(a)
	ao := Negate(a)

	if ab.Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = TripleProduct(ab, ao, ab)
	} else {
		simplex.Points[0] = a
		simplex.Count = 1
		*direction = ao
	}

	return isZero(*direction)
}

// triangle handles the triangle case (3 points: A newest, B, C oldest).
//
// The origin cannot be beyond edge BC: A was found searching from BC toward the origin.
// Only the two edges through A are tested:
//   - Region AC: outside AC, away from B → keep [C, A]
//   - Region AB: outside AB, away from C → keep [B, A]
//   - Otherwise the origin is enclosed
func triangle(simplex *Simplex, direction *mgl32.Vec2) bool {
	a := simplex.Points[2] // Most recent point
	b := simplex.Points[1]
	c := simplex.Points[0]

	ab := b.Sub(a)
	ac := c.Sub(a)
	ao := Negate(a)

	// Region AC (edge)
	acPerp := TripleProduct(ab, ac, ac)
	if acPerp.Dot(ao) > 0 {
		simplex.Points[0] = c
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = acPerp
		return false
	}

	// Region AB (edge)
	abPerp := TripleProduct(ac, ab, ab)
	if abPerp.Dot(ao) > 0 {
		simplex.Points[0] = b
		simplex.Points[1] = a
		simplex.Count = 2
		*direction = abPerp
		return false
	}

	return true
}

func isZero(v mgl32.Vec2) bool {
	return v[0] == 0 && v[1] == 0
}
