package feather2d

import (
	"math"
	"sort"
	"sync"

	"github.com/akmonengine/feather2d/actor"
	"github.com/go-gl/mathgl/mgl32"
)

// ============================================================================
// Types
// ============================================================================

// CellKey - Coordinates of a cell in the plane
type CellKey struct {
	X, Y int
}

// Cell - Indices of the bodies overlapping a cell
type Cell struct {
	bodyIndices []int
}

// Pair - Two bodies that may overlap
type Pair struct {
	BodyA *actor.Body
	BodyB *actor.Body
}

// SpatialGrid - Uniform hashed grid for the broad phase
//
// Cells are hashed into a fixed power-of-two table, so distant cells may share a
// bucket. Collisions in the table only cost extra AABB tests, never missed pairs.
type SpatialGrid struct {
	cellSize float32
	cells    []Cell
	cellMask int
}

// ============================================================================
// Constructor
// ============================================================================

// NewSpatialGrid - Creates a grid of numCells buckets (rounded up to a power of two).
// A cellSize that is not positive falls back to DEFAULT_CELL_SIZE.
func NewSpatialGrid(cellSize float32, numCells int) *SpatialGrid {
	if !(cellSize > 0) {
		cellSize = DEFAULT_CELL_SIZE
	}
	numCells = nextPowerOfTwo(numCells)

	cells := make([]Cell, numCells)
	for i := range cells {
		cells[i].bodyIndices = make([]int, 0, 8)
	}

	return &SpatialGrid{
		cellSize: cellSize,
		cells:    cells,
		cellMask: numCells - 1,
	}
}

// nextPowerOfTwo - Rounds up to the next power of two
func nextPowerOfTwo(n int) int {
	if n <= 0 {
		return 1
	}
	n--
	n |= n >> 1
	n |= n >> 2
	n |= n >> 4
	n |= n >> 8
	n |= n >> 16
	n++
	return n
}

// Insert - Registers a body in every cell its AABB covers
func (sg *SpatialGrid) Insert(bodyIndex int, body *actor.Body) {
	aabb := body.Shape.GetAABB()
	minCell := sg.worldToCell(aabb.Min)
	maxCell := sg.worldToCell(aabb.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			cellIdx := sg.hashCell(CellKey{x, y})

			sg.cells[cellIdx].bodyIndices = append(
				sg.cells[cellIdx].bodyIndices,
				bodyIndex,
			)
		}
	}
}

func (sg *SpatialGrid) Clear() {
	for i := range sg.cells {
		sg.cells[i].bodyIndices = sg.cells[i].bodyIndices[:0]
	}
}

func (sg *SpatialGrid) SortCells() {
	for i := range sg.cells {
		if len(sg.cells[i].bodyIndices) > 1 {
			sort.Ints(sg.cells[i].bodyIndices)
		}
	}
}

// FindPairs - Sequential version
func (sg *SpatialGrid) FindPairs(bodies []*actor.Body) []Pair {
	pairs := make([]Pair, 0, len(bodies)/2)

	seen := make([]bool, len(bodies))
	for bodyIdx := range bodies {
		clear(seen)
		sg.pairsOf(bodyIdx, bodies, seen, func(pair Pair) {
			pairs = append(pairs, pair)
		})
	}

	return pairs
}

// FindPairsParallel - Parallel version, bodies are split in contiguous ranges per worker.
// The channel is closed once every worker is done.
func (sg *SpatialGrid) FindPairsParallel(bodies []*actor.Body, numWorkers int) <-chan Pair {
	numWorkers = max(1, numWorkers)

	var wg sync.WaitGroup
	pairsChan := make(chan Pair, numWorkers*10)

	bodiesPerWorker := len(bodies) / numWorkers
	if bodiesPerWorker == 0 {
		bodiesPerWorker = 1
	}

	for w := 0; w < numWorkers; w++ {
		startIdx := min(w*bodiesPerWorker, len(bodies))
		endIdx := min(startIdx+bodiesPerWorker, len(bodies))
		if w == numWorkers-1 {
			endIdx = len(bodies)
		}

		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()

			seen := make([]bool, len(bodies))
			for bodyIdx := start; bodyIdx < end; bodyIdx++ {
				clear(seen)
				sg.pairsOf(bodyIdx, bodies, seen, func(pair Pair) {
					pairsChan <- pair
				})
			}
		}(startIdx, endIdx)
	}

	go func() {
		wg.Wait()
		close(pairsChan)
	}()

	return pairsChan
}

// pairsOf emits the pairs (bodyIdx, other) with other > bodyIdx, once each.
// seen must be cleared by the caller for every bodyIdx.
func (sg *SpatialGrid) pairsOf(bodyIdx int, bodies []*actor.Body, seen []bool, emit func(Pair)) {
	bodyA := bodies[bodyIdx]
	aabbA := bodyA.Shape.GetAABB()

	minCell := sg.worldToCell(aabbA.Min)
	maxCell := sg.worldToCell(aabbA.Max)

	for x := minCell.X; x <= maxCell.X; x++ {
		for y := minCell.Y; y <= maxCell.Y; y++ {
			cellIdx := sg.hashCell(CellKey{x, y})

			for _, otherIdx := range sg.cells[cellIdx].bodyIndices {
				// Deterministic order: (A,B) only, and once even when sharing many cells
				if otherIdx <= bodyIdx || seen[otherIdx] {
					continue
				}
				seen[otherIdx] = true

				bodyB := bodies[otherIdx]
				if bodyA.BodyType == actor.BodyTypeStatic && bodyB.BodyType == actor.BodyTypeStatic {
					continue
				}

				if aabbA.Overlaps(bodyB.Shape.GetAABB()) {
					emit(Pair{BodyA: bodyA, BodyB: bodyB})
				}
			}
		}
	}
}

// worldToCell - Converts a world position to cell coordinates
func (sg *SpatialGrid) worldToCell(pos mgl32.Vec2) CellKey {
	return CellKey{
		X: int(math.Floor(float64(pos.X() / sg.cellSize))),
		Y: int(math.Floor(float64(pos.Y() / sg.cellSize))),
	}
}

// hashCell - Hashes a cell to an index in the table
func (sg *SpatialGrid) hashCell(key CellKey) int {
	h := (key.X * 73856093) ^ (key.Y * 19349663)
	return h & sg.cellMask
}
