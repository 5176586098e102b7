// Package vectordb provides a database-agnostic abstraction over the vector
// database operations used by the smoke test.
//
// # Overview
//
// This package defines the [Service] interface and the plain types that flow
// through it. The smoke-test runner depends only on this package, so the
// Qdrant implementation can be replaced by [MockService] in unit tests.
//
// # Architecture
//
//	┌─────────────────────────────────────────────────────────────┐
//	│                   smoketest.Runner                          │
//	│        (uses vectordb.Service - no DB-specific imports)     │
//	└──────────────────────────┬──────────────────────────────────┘
//	                           │
//	                           ▼
//	┌─────────────────────────────────────────────────────────────┐
//	│                    vectordb.Service                         │
//	│          (common interface + DB-agnostic types)             │
//	└──────────────────────────┬──────────────────────────────────┘
//	                           │
//	               ┌───────────┴───────────┐
//	               ▼                       ▼
//	       ┌───────────────┐       ┌───────────────┐
//	       │ qdrant.Adapter│       │  MockService  │
//	       │  (implements) │       │   (gomock)    │
//	       └───────────────┘       └───────────────┘
//
// # Usage
//
//	var db vectordb.Service = qdrant.NewAdapter(client.Client())
//
//	err := db.RecreateCollection(ctx, vectordb.CollectionSpec{
//	    Name:       "test_collection",
//	    VectorSize: 4,
//	    Distance:   vectordb.DistanceCosine,
//	})
//
//	err = db.Upsert(ctx, "test_collection", []vectordb.Point{
//	    {ID: 0, Vector: []float32{0.1, 0.2, 0.3, 0.4}},
//	})
//
//	results, err := db.Search(ctx, vectordb.SearchRequest{
//	    CollectionName: "test_collection",
//	    Vector:         []float32{0.4, 0.3, 0.2, 0.1},
//	    TopK:           3,
//	})
//
// # Thread Safety
//
// Implementations are expected to be safe for concurrent use; the generated
// mock is safe as long as the gomock controller is.
package vectordb
