// Package qdrant provides a dependency-injected client for the Qdrant vector
// database and an [Adapter] implementing [vectordb.Service].
//
// # Core Features
//
//   - Managed Qdrant client lifecycle with Fx integration
//   - Config struct supporting YAML loading and builder-style overrides
//   - Automatic health check on client initialization
//   - Idempotent collection recreation (drop if present, then create)
//   - Blocking batched upserts with numeric point IDs
//   - Exact point counts, nearest-neighbour search, collection metadata
//
// # Basic Usage
//
//	import (
//	    "github.com/Aleph-Alpha/qdrant-smoketest/v1/logger"
//	    "github.com/Aleph-Alpha/qdrant-smoketest/v1/qdrant"
//	    "github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
//	)
//
//	log := logger.NewLoggerClient(logger.Config{Level: logger.Info})
//
//	client, err := qdrant.NewQdrantClient(qdrant.QdrantParams{
//	    Config: qdrant.DefaultConfig(),
//	    Logger: log,
//	})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	adapter := qdrant.NewAdapter(client.Client(), log)
//
//	err = adapter.RecreateCollection(ctx, vectordb.CollectionSpec{
//	    Name:       "test_collection",
//	    VectorSize: 4,
//	    Distance:   vectordb.DistanceCosine,
//	})
//
//	err = adapter.Upsert(ctx, "test_collection", []vectordb.Point{
//	    {ID: 0, Vector: []float32{0.12, 0.43, 0.85, 0.07}},
//	})
//
//	results, err := adapter.Search(ctx, vectordb.SearchRequest{
//	    CollectionName: "test_collection",
//	    Vector:         []float32{0.10, 0.40, 0.80, 0.10},
//	    TopK:           3,
//	})
//
// # FX Module Integration
//
//	app := fx.New(
//	    fx.Supply(logger.Config{Level: logger.Info}),
//	    fx.Supply(qdrant.DefaultConfig()),
//	    logger.FXModule,
//	    qdrant.FXModule,
//	    fx.Invoke(func(db vectordb.Service) {
//	        // use db
//	    }),
//	)
//
// # Configuration
//
// The Go SDK talks gRPC, so Port is the gRPC port (6334 by default), not the
// REST port 6333.
//
//	cfg := qdrant.FromEndpoint("qdrant.internal").
//	    WithPort(6334).
//	    WithApiKey(os.Getenv("QDRANT_API_KEY")).
//	    WithTLS(true)
//
// # Errors
//
// Every method returns wrapped errors ("[Qdrant] ...: %w"), so gRPC status
// errors from the SDK remain reachable with errors.As or status.FromError.
//
// # Testing
//
// Unit tests cover the conversion helpers. The integration test starts a
// Qdrant container through testcontainers and is skipped with -short:
//
//	go test -short ./v1/qdrant/...
//
// # Package Layout
//
//	qdrant/
//	├── client.go        // QdrantClient: connect, health check, close
//	├── operations.go    // Adapter: vectordb.Service implementation
//	├── configs.go       // Config and builder helpers
//	├── utils.go         // validation and SDK conversions
//	└── fx_module.go     // Fx wiring and lifecycle hooks
package qdrant
