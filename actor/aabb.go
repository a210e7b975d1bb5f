package actor

import "github.com/go-gl/mathgl/mgl32"

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// ContainsPoint checks if a point is inside the AABB, boundary included
func (a AABB) ContainsPoint(point mgl32.Vec2) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y()
}

// Overlaps checks if two AABBs overlap.
// Touching boxes overlap, so that touching shapes still reach the narrow phase.
func (a AABB) Overlaps(other AABB) bool {
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y()
}
