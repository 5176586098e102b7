package qdrant

import (
	"context"
	"fmt"

	qdrant "github.com/qdrant/go-client/qdrant"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/logger"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

// Adapter implements vectordb.Service on top of the Qdrant SDK client.
type Adapter struct {
	api *qdrant.Client
	log logger.Logger
}

var _ vectordb.Service = (*Adapter)(nil)

// NewAdapter wraps an SDK client obtained from QdrantClient.Client().
func NewAdapter(api *qdrant.Client, log logger.Logger) *Adapter {
	return &Adapter{api: api, log: log}
}

// ──────────────────────────────────────────────────────────────
// RecreateCollection
// ──────────────────────────────────────────────────────────────
//
// RecreateCollection deletes the collection if it already exists and then
// creates it with the requested vector size and distance. Running it twice
// leaves exactly one empty collection.
func (a *Adapter) RecreateCollection(ctx context.Context, spec vectordb.CollectionSpec) error {
	if err := validateCollectionSpec(spec); err != nil {
		return err
	}

	distance, err := toQdrantDistance(spec.Distance)
	if err != nil {
		return err
	}

	exists, err := a.api.CollectionExists(ctx, spec.Name)
	if err != nil {
		return fmt.Errorf("[Qdrant] failed to check collection '%s': %w", spec.Name, err)
	}

	if exists {
		a.log.DebugWithContext(ctx, "[Qdrant] Dropping existing collection", nil, map[string]interface{}{
			"collection": spec.Name,
		})
		if err := a.api.DeleteCollection(ctx, spec.Name); err != nil {
			return fmt.Errorf("[Qdrant] failed to drop collection '%s': %w", spec.Name, err)
		}
	}

	req := &qdrant.CreateCollection{
		CollectionName: spec.Name,
		VectorsConfig: qdrant.NewVectorsConfig(&qdrant.VectorParams{
			Size:     spec.VectorSize,
			Distance: distance,
		}),
	}

	if err := a.api.CreateCollection(ctx, req); err != nil {
		return fmt.Errorf("[Qdrant] failed to create collection '%s': %w", spec.Name, err)
	}

	a.log.InfoWithContext(ctx, "[Qdrant] Collection recreated", nil, map[string]interface{}{
		"collection":  spec.Name,
		"vector_size": spec.VectorSize,
		"distance":    string(spec.Distance),
		"replaced":    exists,
	})
	return nil
}

// ──────────────────────────────────────────────────────────────
// Upsert
// ──────────────────────────────────────────────────────────────
//
// Upsert writes points in chunks of defaultBatchSize, so anything up to
// that size goes out as a single request. Each request blocks (Wait=true)
// until Qdrant has applied it.
func (a *Adapter) Upsert(ctx context.Context, collection string, points []vectordb.Point) error {
	if collection == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if len(points) == 0 {
		return nil
	}

	for start := 0; start < len(points); start += defaultBatchSize {
		end := min(start+defaultBatchSize, len(points))

		req := &qdrant.UpsertPoints{
			CollectionName: collection,
			Points:         toPointStructs(points[start:end]),
			Wait:           qdrant.PtrOf(true),
		}

		if _, err := a.api.Upsert(ctx, req); err != nil {
			return fmt.Errorf("[Qdrant] upsert failed at [%d:%d]: %w", start, end, err)
		}

		a.log.DebugWithContext(ctx, "[Qdrant] Upserted batch", nil, map[string]interface{}{
			"collection": collection,
			"start":      start,
			"end":        end,
		})
	}

	a.log.InfoWithContext(ctx, "[Qdrant] Upsert completed", nil, map[string]interface{}{
		"collection": collection,
		"points":     len(points),
	})
	return nil
}

// Count returns the exact number of points in the collection.
func (a *Adapter) Count(ctx context.Context, collection string) (uint64, error) {
	if collection == "" {
		return 0, fmt.Errorf("collection name cannot be empty")
	}

	n, err := a.api.Count(ctx, &qdrant.CountPoints{
		CollectionName: collection,
		Exact:          qdrant.PtrOf(true),
	})
	if err != nil {
		return 0, fmt.Errorf("[Qdrant] failed to count points in '%s': %w", collection, err)
	}
	return n, nil
}

// ──────────────────────────────────────────────────────────────
// Search
// ──────────────────────────────────────────────────────────────
//
// Search runs a nearest-neighbour query and returns at most req.TopK hits
// in the order Qdrant produced them (descending score).
func (a *Adapter) Search(ctx context.Context, req vectordb.SearchRequest) ([]vectordb.SearchResult, error) {
	if err := validateSearchInput(req.CollectionName, req.Vector, req.TopK); err != nil {
		return nil, err
	}

	limit := uint64(req.TopK)
	resp, err := a.api.Query(ctx, &qdrant.QueryPoints{
		CollectionName: req.CollectionName,
		Query:          qdrant.NewQuery(req.Vector...),
		Limit:          &limit,
	})
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] search failed: %w", err)
	}

	results, err := parseScoredPoints(resp)
	if err != nil {
		return nil, err
	}

	a.log.InfoWithContext(ctx, "[Qdrant] Search completed", nil, map[string]interface{}{
		"collection": req.CollectionName,
		"results":    len(results),
	})
	return results, nil
}

// ──────────────────────────────────────────────────────────────
// GetCollection
// ──────────────────────────────────────────────────────────────
//
// GetCollection retrieves metadata about a collection and returns it as a
// vectordb.Collection, hiding qdrant.CollectionInfo from callers.
func (a *Adapter) GetCollection(ctx context.Context, name string) (*vectordb.Collection, error) {
	if name == "" {
		return nil, fmt.Errorf("collection name cannot be empty")
	}

	info, err := a.api.GetCollectionInfo(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("[Qdrant] failed to get collection '%s': %w", name, err)
	}

	size, distance := extractVectorDetails(info)

	return &vectordb.Collection{
		Name:        name,
		Status:      info.GetStatus().String(),
		VectorSize:  size,
		Distance:    distance,
		VectorCount: derefUint64(info.IndexedVectorsCount),
		PointCount:  derefUint64(info.PointsCount),
	}, nil
}

// CollectionExists reports whether the named collection exists.
func (a *Adapter) CollectionExists(ctx context.Context, name string) (bool, error) {
	if name == "" {
		return false, fmt.Errorf("collection name cannot be empty")
	}

	exists, err := a.api.CollectionExists(ctx, name)
	if err != nil {
		return false, fmt.Errorf("[Qdrant] failed to check collection '%s': %w", name, err)
	}
	return exists, nil
}

// DeleteCollection removes the collection and all of its points.
func (a *Adapter) DeleteCollection(ctx context.Context, name string) error {
	if name == "" {
		return fmt.Errorf("collection name cannot be empty")
	}

	if err := a.api.DeleteCollection(ctx, name); err != nil {
		return fmt.Errorf("[Qdrant] failed to delete collection '%s': %w", name, err)
	}

	a.log.InfoWithContext(ctx, "[Qdrant] Collection deleted", nil, map[string]interface{}{
		"collection": name,
	})
	return nil
}
