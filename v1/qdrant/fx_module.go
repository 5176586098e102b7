package qdrant

import (
	"context"

	"go.uber.org/fx"

	"github.com/Aleph-Alpha/qdrant-smoketest/v1/logger"
	"github.com/Aleph-Alpha/qdrant-smoketest/v1/vectordb"
)

// FXModule defines the Fx module for the Qdrant client.
//
// The module:
//  1. Provides the NewQdrantClient factory, which connects and health-checks.
//  2. Provides vectordb.Service backed by an Adapter over that client.
//  3. Invokes RegisterQdrantLifecycle to close the connection on shutdown.
//
// Usage:
//
//	app := fx.New(
//	    logger.FXModule,
//	    qdrant.FXModule,
//	    // other modules...
//	)
//
// Dependencies required by this module:
// - A *qdrant.Config instance must be available in the dependency injection container.
// - A logger.Logger, usually from logger.FXModule.
var FXModule = fx.Module("qdrant",
	fx.Provide(
		NewQdrantClient,
		NewService,
	),
	fx.Invoke(RegisterQdrantLifecycle),
)

// QdrantParams defines dependencies needed to construct the Qdrant client.
type QdrantParams struct {
	fx.In
	Config *Config
	Logger logger.Logger
}

// NewService exposes the client through the database-agnostic interface.
func NewService(client *QdrantClient) vectordb.Service {
	return NewAdapter(client.Client(), client.log)
}

// RegisterQdrantLifecycle closes the Qdrant connection when the app stops.
func RegisterQdrantLifecycle(lc fx.Lifecycle, client *QdrantClient) {
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})
}
