package vectordb

import "context"

// Service is the set of vector database operations the smoke test needs.
// Implementations must block until the server acknowledged each call.
//
// Example usage:
//
//	func NewRunner(db vectordb.Service) *Runner {
//	    return &Runner{db: db}
//	}
//
//go:generate mockgen -source=interface.go -destination=mock_service.go -package=vectordb
type Service interface {
	// RecreateCollection drops the collection if it exists and creates it
	// again from spec. Any data previously stored is discarded.
	RecreateCollection(ctx context.Context, spec CollectionSpec) error

	// Upsert writes all points in a single batch.
	Upsert(ctx context.Context, collection string, points []Point) error

	// Count returns the exact number of points stored in the collection.
	Count(ctx context.Context, collection string) (uint64, error)

	// Search returns at most req.TopK nearest points ordered by descending score.
	Search(ctx context.Context, req SearchRequest) ([]SearchResult, error)

	// GetCollection retrieves metadata about a collection.
	GetCollection(ctx context.Context, name string) (*Collection, error)

	// CollectionExists reports whether a collection with this name exists.
	CollectionExists(ctx context.Context, name string) (bool, error)

	// DeleteCollection removes the collection and all of its points.
	DeleteCollection(ctx context.Context, name string) error
}
