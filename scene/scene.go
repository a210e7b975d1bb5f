// Package scene describes a set of polygon bodies in YAML and builds worlds from it.
package scene

import (
	"errors"
	"fmt"
	"io"

	"github.com/akmonengine/feather2d"
	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl32"
	"gopkg.in/yaml.v3"
)

var ErrInvalidScene = errors.New("invalid scene")

// Scene is the file format read by LoadYAML
type Scene struct {
	// Number of overlap queries run by the demo
	Iterations int          `yaml:"iterations"`
	Workers    int          `yaml:"workers,omitempty"`
	CellSize   float32      `yaml:"cellSize,omitempty"`
	Bodies     []BodyConfig `yaml:"bodies"`
}

type BodyConfig struct {
	Name     string       `yaml:"name"`
	Position [2]float32   `yaml:"position,flow"`
	Rotation float32      `yaml:"rotation,omitempty"`
	Static   bool         `yaml:"static,omitempty"`
	Trigger  bool         `yaml:"trigger,omitempty"`
	Vertices [][2]float32 `yaml:"vertices,flow"`
}

// Default is the reference pair: a triangle and a quad that come close without touching
func Default() *Scene {
	return &Scene{
		Iterations: 10000,
		Bodies: []BodyConfig{
			{
				Name:     "triangle",
				Vertices: [][2]float32{{4, 11}, {4, 5}, {9, 9}},
			},
			{
				Name:     "quad",
				Vertices: [][2]float32{{7, 7}, {122, 7}, {7, 3}, {10, 2}},
			},
		},
	}
}

// LoadYAML loads a scene from a YAML reader and validates it.
func LoadYAML(r io.Reader) (*Scene, error) {
	var s Scene
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode scene: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scene) Validate() error {
	if s.Iterations <= 0 {
		return fmt.Errorf("%w: iterations must be positive, got %d", ErrInvalidScene, s.Iterations)
	}
	if s.Workers < 0 {
		return fmt.Errorf("%w: workers must not be negative, got %d", ErrInvalidScene, s.Workers)
	}
	if s.CellSize < 0 {
		return fmt.Errorf("%w: cellSize must not be negative, got %v", ErrInvalidScene, s.CellSize)
	}
	if len(s.Bodies) < 2 {
		return fmt.Errorf("%w: at least two bodies are required, got %d", ErrInvalidScene, len(s.Bodies))
	}
	for i, b := range s.Bodies {
		if len(b.Vertices) == 0 {
			return fmt.Errorf("%w: body %d (%q) has no vertices", ErrInvalidScene, i, b.Name)
		}
	}
	return nil
}

func (b BodyConfig) transform() actor.Transform {
	return actor.Transform{
		Position: mgl32.Vec2(b.Position),
		Rotation: b.Rotation,
	}
}

func (b BodyConfig) body() (*actor.Body, error) {
	vertices := make([]mgl32.Vec2, len(b.Vertices))
	for i, v := range b.Vertices {
		vertices[i] = mgl32.Vec2(v)
	}

	polygon, err := actor.NewPolygon(vertices...)
	if err != nil {
		return nil, fmt.Errorf("body %q: %w", b.Name, err)
	}

	bodyType := actor.BodyTypeDynamic
	if b.Static {
		bodyType = actor.BodyTypeStatic
	}

	body := actor.NewBody(b.transform(), polygon, bodyType)
	body.Id = b.Name
	body.IsTrigger = b.Trigger

	return body, nil
}

// Build creates a world holding one body per entry, named after it
func (s *Scene) Build() (*feather2d.World, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	world := feather2d.NewWorld()
	world.Workers = max(feather2d.DEFAULT_WORKERS, s.Workers)
	if s.CellSize > 0 {
		world.SpatialGrid = feather2d.NewSpatialGrid(s.CellSize, feather2d.DEFAULT_NUM_CELLS)
	}

	for _, b := range s.Bodies {
		body, err := b.body()
		if err != nil {
			return nil, err
		}
		world.AddBody(body)
	}

	return world, nil
}

// Shapes returns the world-space vertices of every body, in file order
func (s *Scene) Shapes() [][]mgl32.Vec2 {
	shapes := make([][]mgl32.Vec2, len(s.Bodies))
	for i, b := range s.Bodies {
		t := b.transform()
		shapes[i] = make([]mgl32.Vec2, len(b.Vertices))
		for j, v := range b.Vertices {
			shapes[i][j] = t.Apply(mgl32.Vec2(v))
		}
	}
	return shapes
}
