package smoketest

import (
	"fmt"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

func checkDimensions(points []vectordb.Point, dim int) error {
	for _, p := range points {
		if len(p.Vector) != dim {
			return fmt.Errorf("%w: point %d has %d components, want %d", ErrDimensionMismatch, p.ID, len(p.Vector), dim)
		}
	}
	return nil
}

// verifyResults checks what Qdrant promises for a nearest-neighbour query:
// no more than limit hits, every hit one of the inserted IDs 0..inserted-1,
// and scores that never increase.
func verifyResults(results []vectordb.SearchResult, limit, inserted int) error {
	if len(results) > limit {
		return fmt.Errorf("%w: got %d, limit %d", ErrResultCount, len(results), limit)
	}

	for i, r := range results {
		if r.ID >= uint64(inserted) {
			return fmt.Errorf("%w: id %d", ErrUnknownPoint, r.ID)
		}
		if i > 0 && r.Score > results[i-1].Score {
			return fmt.Errorf("%w: position %d score %.4f > %.4f", ErrResultOrder, i, r.Score, results[i-1].Score)
		}
	}
	return nil
}
