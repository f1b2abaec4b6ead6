package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/bespoke-cakes/backend/internal/config"
	"github.com/bespoke-cakes/backend/internal/db"
	"github.com/bespoke-cakes/backend/internal/seed"
	"github.com/bespoke-cakes/backend/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	ctx := context.Background()

	// The catalog must stay up without a store, so connection and seeding
	// failures are logged and the process carries on in fallback mode.
	database, err := db.Connect(ctx, cfg)
	if err != nil {
		log.Printf("db connect error, serving fallback catalog: %v", err)
		database = nil
	}
	if err := seed.Ensure(ctx, database); err != nil {
		log.Printf("seed error: %v", err)
	}

	srv := server.New(database)

	addr := ":" + cfg.Port
	log.Printf("starting server on %s", addr)
	if err := srv.Start(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
