package smoketest

import (
	"fmt"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

const (
	DefaultCollection = "test_collection"
	DefaultDimension  = 4
	DefaultPoints     = 10
	DefaultLimit      = 3
)

// Config describes one smoke-test run.
type Config struct {
	// Collection is created, filled, searched and deleted by the run.
	// Whatever it held before the run is lost.
	Collection string `yaml:"collection" envconfig:"SMOKETEST_COLLECTION"`

	// Dimension is the vector size of the collection and of every vector.
	Dimension int `yaml:"dimension" envconfig:"SMOKETEST_DIMENSION"`

	// Distance is the collection metric.
	Distance vectordb.Distance `yaml:"distance" envconfig:"SMOKETEST_DISTANCE"`

	// Points is the number of random vectors inserted, with IDs 0..Points-1.
	Points int `yaml:"points" envconfig:"SMOKETEST_POINTS"`

	// Limit caps the number of search results.
	Limit int `yaml:"limit" envconfig:"SMOKETEST_LIMIT"`

	// Seed makes vector generation reproducible. Zero picks a random seed.
	Seed uint64 `yaml:"seed" envconfig:"SMOKETEST_SEED"`

	// Verify enables the point count, result and deletion checks.
	Verify bool `yaml:"verify" envconfig:"SMOKETEST_VERIFY"`
}

// DefaultConfig returns the classic run: 10 random 4-d vectors in a cosine
// collection named test_collection, top 3 results, with verification.
func DefaultConfig() Config {
	return Config{
		Collection: DefaultCollection,
		Dimension:  DefaultDimension,
		Distance:   vectordb.DistanceCosine,
		Points:     DefaultPoints,
		Limit:      DefaultLimit,
		Verify:     true,
	}
}

// Validate rejects configurations the run cannot execute.
func (c Config) Validate() error {
	if c.Collection == "" {
		return fmt.Errorf("collection name cannot be empty")
	}
	if c.Dimension <= 0 {
		return fmt.Errorf("dimension must be greater than 0, got %d", c.Dimension)
	}
	if c.Points <= 0 {
		return fmt.Errorf("points must be greater than 0, got %d", c.Points)
	}
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be greater than 0, got %d", c.Limit)
	}
	if _, err := vectordb.ParseDistance(string(c.Distance)); err != nil {
		return err
	}
	return nil
}

func (c Config) collectionSpec() vectordb.CollectionSpec {
	return vectordb.CollectionSpec{
		Name:       c.Collection,
		VectorSize: uint64(c.Dimension),
		Distance:   c.Distance,
	}
}
