package db

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/bespoke-cakes/backend/internal/config"
)

const connectTimeout = 5 * time.Second

// Connect opens the MongoDB database named by cfg. An empty DATABASE_URL is
// not an error: it returns a nil handle and the caller serves the static
// fallback catalog instead.
func Connect(ctx context.Context, cfg *config.Config) (*mongo.Database, error) {
	if cfg.DatabaseURL == "" {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
	if err != nil {
		return nil, err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}

	return client.Database(cfg.DatabaseName), nil
}
