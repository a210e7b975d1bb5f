package actor

import "github.com/go-gl/mathgl/mgl32"

// BodyType represents the type of body
type BodyType int

const (
	// BodyTypeDynamic bodies are expected to move between steps
	BodyTypeDynamic BodyType = iota

	// BodyTypeStatic bodies never move (e.g., ground, walls)
	// Two static bodies are never tested against each other
	BodyTypeStatic
)

// Body places a convex polygon in the world
type Body struct {
	// Caller-defined identifier, reported back in events and logs
	Id any

	Transform Transform
	BodyType  BodyType

	// Trigger bodies report trigger events instead of overlap events
	IsTrigger bool

	// Collision shape
	Shape *Polygon
}

// NewBody creates a body and places its shape at the given transform
func NewBody(transform Transform, shape *Polygon, bodyType BodyType) *Body {
	body := &Body{
		Transform: transform,
		Shape:     shape,
		BodyType:  bodyType,
	}
	body.Shape.ComputeAABB(body.Transform)

	return body
}

// SetTransform moves the body and refreshes its world geometry
func (b *Body) SetTransform(transform Transform) {
	b.Transform = transform
	b.Shape.ComputeAABB(b.Transform)
}

// Translate moves the body by offset
func (b *Body) Translate(offset mgl32.Vec2) {
	b.Transform.Position = b.Transform.Position.Add(offset)
	b.Shape.ComputeAABB(b.Transform)
}

// Vertices returns the world-space vertices of the shape
func (b *Body) Vertices() []mgl32.Vec2 {
	return b.Shape.WorldVertices()
}
