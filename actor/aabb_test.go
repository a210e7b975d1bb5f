package actor

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

// =============================================================================
// AABB Utility Function Tests
// =============================================================================

func TestAABBOverlaps_Separated(t *testing.T) {
	tests := []struct {
		name  string
		aabb1 AABB
		aabb2 AABB
	}{
		{
			name:  "Separated on X axis (positive)",
			aabb1: AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
			aabb2: AABB{Min: mgl32.Vec2{2, 0}, Max: mgl32.Vec2{3, 1}},
		},
		{
			name:  "Separated on X axis (negative)",
			aabb1: AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
			aabb2: AABB{Min: mgl32.Vec2{-2, 0}, Max: mgl32.Vec2{-1, 1}},
		},
		{
			name:  "Separated on Y axis (positive)",
			aabb1: AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
			aabb2: AABB{Min: mgl32.Vec2{0, 2}, Max: mgl32.Vec2{1, 3}},
		},
		{
			name:  "Separated diagonally",
			aabb1: AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
			aabb2: AABB{Min: mgl32.Vec2{1.5, 1.5}, Max: mgl32.Vec2{2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.aabb1.Overlaps(tt.aabb2) {
				t.Errorf("AABBs should not overlap")
			}
			// Test symmetry
			if tt.aabb2.Overlaps(tt.aabb1) {
				t.Errorf("AABBs should not overlap (symmetry test)")
			}
		})
	}
}

func TestAABBOverlaps_Overlapping(t *testing.T) {
	tests := []struct {
		name  string
		aabb1 AABB
		aabb2 AABB
	}{
		{
			name:  "Complete overlap (identical)",
			aabb1: AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
			aabb2: AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
		},
		{
			name:  "Partial overlap",
			aabb1: AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{2, 2}},
			aabb2: AABB{Min: mgl32.Vec2{1, 1}, Max: mgl32.Vec2{3, 3}},
		},
		{
			name:  "Contained",
			aabb1: AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{4, 4}},
			aabb2: AABB{Min: mgl32.Vec2{1, 1}, Max: mgl32.Vec2{2, 2}},
		},
		{
			name:  "Touching edges",
			aabb1: AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
			aabb2: AABB{Min: mgl32.Vec2{1, 0}, Max: mgl32.Vec2{2, 1}},
		},
		{
			name:  "Touching corners",
			aabb1: AABB{Min: mgl32.Vec2{0, 0}, Max: mgl32.Vec2{1, 1}},
			aabb2: AABB{Min: mgl32.Vec2{1, 1}, Max: mgl32.Vec2{2, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !tt.aabb1.Overlaps(tt.aabb2) {
				t.Errorf("AABBs should overlap")
			}
			if !tt.aabb2.Overlaps(tt.aabb1) {
				t.Errorf("AABBs should overlap (symmetry test)")
			}
		})
	}
}

func TestAABBContainsPoint(t *testing.T) {
	aabb := AABB{Min: mgl32.Vec2{-1, -1}, Max: mgl32.Vec2{1, 1}}

	tests := []struct {
		name     string
		point    mgl32.Vec2
		expected bool
	}{
		{"center", mgl32.Vec2{0, 0}, true},
		{"corner", mgl32.Vec2{1, 1}, true},
		{"on edge", mgl32.Vec2{-1, 0.5}, true},
		{"outside x", mgl32.Vec2{1.5, 0}, false},
		{"outside y", mgl32.Vec2{0, -2}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := aabb.ContainsPoint(tt.point); result != tt.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tt.point, result, tt.expected)
			}
		})
	}
}
