package gjk

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// FurthestPoint returns the point of points with the largest projection on direction.
//
// When several points share the maximum, the first one in collection order wins.
// An empty collection returns ErrInvalidInput.
func FurthestPoint(points []mgl32.Vec2, direction mgl32.Vec2) (mgl32.Vec2, error) {
	if len(points) == 0 {
		return mgl32.Vec2{}, fmt.Errorf("furthest point: %w", ErrInvalidInput)
	}
	return furthestPoint(points, direction), nil
}

// furthestPoint expects a non-empty collection.
func furthestPoint(points []mgl32.Vec2, direction mgl32.Vec2) mgl32.Vec2 {
	best := points[0]
	bestDot := best.Dot(direction)

	for _, point := range points[1:] {
		// Strict comparison: equal projections keep the earlier point
		if value := point.Dot(direction); bestDot < value {
			best = point
			bestDot = value
		}
	}

	return best
}

// Support computes a support point of the Minkowski difference (A - B).
//
// Returns:
//
//	furthestPoint(A, direction) - furthestPoint(B, -direction)
//
// The result lies on the boundary of A - B in the given direction. A and B overlap
// exactly when A - B contains the origin, which is what GJK searches for.
func Support(a, b []mgl32.Vec2, direction mgl32.Vec2) (mgl32.Vec2, error) {
	if len(a) == 0 || len(b) == 0 {
		return mgl32.Vec2{}, fmt.Errorf("support: %w", ErrInvalidInput)
	}
	return support(a, b, direction), nil
}

func support(a, b []mgl32.Vec2, direction mgl32.Vec2) mgl32.Vec2 {
	return furthestPoint(a, direction).Sub(furthestPoint(b, Negate(direction)))
}
