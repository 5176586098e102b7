package vectordb

import "fmt"

// Distance is the similarity metric a collection is created with.
type Distance string

const (
	DistanceCosine    Distance = "Cosine"
	DistanceDot       Distance = "Dot"
	DistanceEuclid    Distance = "Euclid"
	DistanceManhattan Distance = "Manhattan"
)

// ParseDistance maps a case-sensitive metric name onto a Distance.
func ParseDistance(s string) (Distance, error) {
	switch d := Distance(s); d {
	case DistanceCosine, DistanceDot, DistanceEuclid, DistanceManhattan:
		return d, nil
	default:
		return "", fmt.Errorf("unknown distance %q", s)
	}
}

// CollectionSpec describes the collection to create.
type CollectionSpec struct {
	// Name is the unique identifier of the collection
	Name string `json:"name"`

	// VectorSize is the dimension every stored vector must have
	VectorSize uint64 `json:"vectorSize"`

	// Distance is the similarity metric used for search
	Distance Distance `json:"distance"`
}

// Point is a single (id, vector) pair written to a collection.
type Point struct {
	// ID is the numeric identifier of the point
	ID uint64 `json:"id"`

	// Vector is the dense vector stored for this point
	Vector []float32 `json:"vector"`
}

// SearchRequest represents a single similarity search query.
type SearchRequest struct {
	// CollectionName is the target collection to search in
	CollectionName string `json:"collectionName"`

	// Vector is the query vector to find neighbours for
	Vector []float32 `json:"vector"`

	// TopK is the maximum number of results to return
	TopK int `json:"maxResults"`
}

// SearchResult represents a single search hit with its similarity score.
type SearchResult struct {
	// ID is the identifier of the matched point
	ID uint64 `json:"id"`

	// Score is the similarity score (higher = more similar for cosine)
	Score float32 `json:"score"`
}

// Collection contains metadata about a vector collection.
type Collection struct {
	// Name is the unique identifier of the collection
	Name string `json:"name"`

	// Status indicates the operational state (e.g., "Green", "Yellow")
	Status string `json:"status"`

	// VectorSize is the dimension of vectors in this collection
	VectorSize int `json:"vectorSize"`

	// Distance is the similarity metric (e.g., "Cosine", "Dot", "Euclid")
	Distance string `json:"distance"`

	// VectorCount is the number of indexed vectors
	VectorCount uint64 `json:"vectorCount"`

	// PointCount is the number of stored points
	PointCount uint64 `json:"pointCount"`
}
