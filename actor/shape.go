package actor

import (
	"fmt"

	"github.com/akmonengine/feather2d/gjk"
	"github.com/go-gl/mathgl/mgl32"
)

// Polygon is a convex collision shape given by its vertices in local space.
//
// Vertex order does not matter and convexity is not checked: overlap tests see the
// convex hull of the vertices. A Polygon caches its world-space vertices for the
// transform of the body owning it, so it must not be shared between bodies.
type Polygon struct {
	Vertices []mgl32.Vec2

	world []mgl32.Vec2
	aabb  AABB
}

// NewPolygon copies the vertices into a new polygon.
// It returns gjk.ErrInvalidInput when no vertex is given.
func NewPolygon(vertices ...mgl32.Vec2) (*Polygon, error) {
	if len(vertices) == 0 {
		return nil, fmt.Errorf("polygon: %w", gjk.ErrInvalidInput)
	}

	return &Polygon{
		Vertices: append([]mgl32.Vec2(nil), vertices...),
	}, nil
}

// Rectangle creates an axis-aligned rectangle centered on the local origin
func Rectangle(halfExtents mgl32.Vec2) *Polygon {
	hx, hy := halfExtents.X(), halfExtents.Y()

	return &Polygon{
		Vertices: []mgl32.Vec2{
			{-hx, -hy},
			{+hx, -hy},
			{+hx, +hy},
			{-hx, +hy},
		},
	}
}

// ComputeAABB transforms the vertices to world space and updates the bounding box
func (p *Polygon) ComputeAABB(transform Transform) {
	if len(p.Vertices) == 0 {
		p.world = p.world[:0]
		p.aabb = AABB{}
		return
	}

	if cap(p.world) < len(p.Vertices) {
		p.world = make([]mgl32.Vec2, len(p.Vertices))
	}
	p.world = p.world[:len(p.Vertices)]

	for i, vertex := range p.Vertices {
		p.world[i] = transform.Apply(vertex)
	}

	lower := p.world[0]
	upper := p.world[0]
	for _, vertex := range p.world[1:] {
		lower[0] = min(lower[0], vertex[0])
		lower[1] = min(lower[1], vertex[1])

		upper[0] = max(upper[0], vertex[0])
		upper[1] = max(upper[1], vertex[1])
	}

	p.aabb = AABB{Min: lower, Max: upper}
}

func (p *Polygon) GetAABB() AABB {
	return p.aabb
}

// WorldVertices returns the vertices placed by the last ComputeAABB call.
// The slice is owned by the polygon.
func (p *Polygon) WorldVertices() []mgl32.Vec2 {
	return p.world
}

// Support returns the world vertex furthest along direction
func (p *Polygon) Support(direction mgl32.Vec2) (mgl32.Vec2, error) {
	return gjk.FurthestPoint(p.world, direction)
}
