package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"github.com/bespoke-cakes/backend/internal/config"
	"github.com/bespoke-cakes/backend/internal/db"
	"github.com/bespoke-cakes/backend/internal/seed"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return errors.New("DATABASE_URL is not set")
	}

	database, err := db.Connect(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}

	if err := seed.Ensure(ctx, database); err != nil {
		return err
	}

	log.Printf("seed complete: %q collection holds the sample catalog", seed.CollectionName)
	return nil
}
