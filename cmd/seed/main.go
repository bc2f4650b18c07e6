package main

import (
	"context"
	"log"
	"os"

	"storefront-backend/internal/config"
	"storefront-backend/internal/db"
	"storefront-backend/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[seed] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	ctx := context.Background()
	pool, err := db.Connect(ctx, cfg.DBConnString)
	if err != nil {
		logger.Fatalf("connect db: %v", err)
	}
	defer pool.Close()

	if err := seed.Apply(ctx, pool); err != nil {
		logger.Fatalf("apply seed: %v", err)
	}

	logger.Println("seed data applied")
}
