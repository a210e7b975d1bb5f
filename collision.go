package feather2d

import (
	"sync"

	"github.com/akmonengine/feather2d/actor"
	"github.com/akmonengine/feather2d/gjk"
	"go.uber.org/zap"
)

// BroadPhase rebuilds the grid from bodies and streams the pairs whose AABBs overlap.
// Bodies are indexed by their position in the slice.
func BroadPhase(spatialGrid *SpatialGrid, bodies []*actor.Body, workersCount int) <-chan Pair {
	spatialGrid.Clear()
	for i, body := range bodies {
		spatialGrid.Insert(i, body)
	}
	spatialGrid.SortCells()

	return spatialGrid.FindPairsParallel(bodies, workersCount)
}

// NarrowPhase runs GJK on every candidate pair and returns the overlapping ones.
// A pair GJK cannot decide is logged and counted as separated.
func NarrowPhase(pairs <-chan Pair, workersCount int, logger *zap.Logger) []Pair {
	overlaps := make([]Pair, 0)
	for pair := range GJK(pairs, workersCount, logger) {
		overlaps = append(overlaps, pair)
	}

	return overlaps
}

// GJK consumes candidate pairs with workersCount workers and streams the overlapping ones.
func GJK(pairChan <-chan Pair, workersCount int, logger *zap.Logger) <-chan Pair {
	workersCount = max(1, workersCount)
	if logger == nil {
		logger = zap.NewNop()
	}
	overlapChan := make(chan Pair, workersCount)

	go func() {
		var wg sync.WaitGroup
		defer close(overlapChan)

		for range workersCount {
			wg.Add(1)
			go func() {
				defer wg.Done()

				simplex := gjk.SimplexPool.Get().(*gjk.Simplex)
				defer gjk.SimplexPool.Put(simplex)

				for p := range pairChan {
					overlap, err := gjk.GJK(p.BodyA.Vertices(), p.BodyB.Vertices(), simplex)
					if err != nil {
						logger.Warn("narrow phase test failed",
							zap.Any("bodyA", p.BodyA.Id),
							zap.Any("bodyB", p.BodyB.Id),
							zap.Error(err),
						)
						continue
					}

					if overlap {
						overlapChan <- p
					}
				}
			}()
		}
		wg.Wait()
	}()

	return overlapChan
}
