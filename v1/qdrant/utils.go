package qdrant

import (
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

// validateSearchInput validates common search parameters
func validateSearchInput(collectionName string, vector []float32, topK int) error {
	if collectionName == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if len(vector) == 0 {
		return fmt.Errorf("vector cannot be empty")
	}
	if topK <= 0 {
		return fmt.Errorf("topK must be greater than 0")
	}
	return nil
}

func validateCollectionSpec(spec vectordb.CollectionSpec) error {
	if spec.Name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if spec.VectorSize == 0 {
		return fmt.Errorf("vector size must be greater than 0")
	}
	return nil
}

// toQdrantDistance maps a vectordb.Distance onto the SDK enum.
// An empty distance means cosine.
func toQdrantDistance(d vectordb.Distance) (qdrant.Distance, error) {
	switch d {
	case vectordb.DistanceCosine, "":
		return qdrant.Distance_Cosine, nil
	case vectordb.DistanceDot:
		return qdrant.Distance_Dot, nil
	case vectordb.DistanceEuclid:
		return qdrant.Distance_Euclid, nil
	case vectordb.DistanceManhattan:
		return qdrant.Distance_Manhattan, nil
	default:
		return qdrant.Distance_UnknownDistance, fmt.Errorf("[Qdrant] unsupported distance %q", d)
	}
}

func toPointStructs(points []vectordb.Point) []*qdrant.PointStruct {
	out := make([]*qdrant.PointStruct, 0, len(points))
	for _, p := range points {
		out = append(out, &qdrant.PointStruct{
			Id:      qdrant.NewIDNum(p.ID),
			Vectors: qdrant.NewVectors(p.Vector...),
		})
	}
	return out
}

// parseScoredPoints converts a Qdrant query response into search results.
// Only numeric point IDs are accepted since the smoke test never writes UUIDs.
func parseScoredPoints(resp []*qdrant.ScoredPoint) ([]vectordb.SearchResult, error) {
	results := make([]vectordb.SearchResult, 0, len(resp))
	for _, r := range resp {
		if r.GetId() == nil {
			return nil, fmt.Errorf("[Qdrant] scored point without id")
		}

		switch v := r.GetId().GetPointIdOptions().(type) {
		case *qdrant.PointId_Num:
			results = append(results, vectordb.SearchResult{
				ID:    v.Num,
				Score: r.GetScore(),
			})
		default:
			return nil, fmt.Errorf("[Qdrant] unexpected PointId type: %T", v)
		}
	}
	return results, nil
}

// ──────────────────────────────────────────────────────────────
// extractVectorDetails
// ──────────────────────────────────────────────────────────────
//
// extractVectorDetails safely extracts the vector size and distance metric
// from a Qdrant `CollectionInfo` object, walking the nested "oneof"
// wrappers of the protobuf structure.
//
// If any nested field is missing or of an unexpected type, the function
// returns (0, "").
func extractVectorDetails(info *qdrant.CollectionInfo) (int, string) {
	if info == nil ||
		info.Config == nil ||
		info.Config.Params == nil ||
		info.Config.Params.VectorsConfig == nil ||
		info.Config.Params.VectorsConfig.Config == nil {
		return 0, ""
	}

	if cfg, ok := info.Config.Params.VectorsConfig.Config.(*qdrant.VectorsConfig_Params); ok && cfg.Params != nil {
		return int(cfg.Params.Size), cfg.Params.Distance.String()
	}

	return 0, ""
}

// derefUint64 safely dereferences a *uint64 pointer.
// If the pointer is nil, it returns 0 instead of panicking.
func derefUint64(v *uint64) uint64 {
	if v != nil {
		return *v
	}
	return 0
}
