package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"

	"github.com/noah-isme/backend-quotes/internal/db"
	"github.com/noah-isme/backend-quotes/internal/quote"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if err := db.Migrate(dbURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("Failed to open DB: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("Failed to ping DB: %v", err)
	}

	store := quote.NewStore(pool)
	sample := quote.SampleQuote()
	sample.Itinerary = quote.MaterializeItinerary(&sample)

	id, err := store.Insert(ctx, sample)
	if err != nil {
		log.Fatalf("Failed to seed sample quote: %v", err)
	}
	log.Printf("Seeded sample quote %q with id %s", sample.Name, id)

	for _, warning := range quote.Warnings(&sample) {
		log.Printf("Fixture warning: %s", warning)
	}

	log.Println("Seeding completed successfully!")
}
