package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/dheerendra45/news-analyzer/internal/app"
	"github.com/dheerendra45/news-analyzer/internal/config"
)

func main() {
	// A missing .env is fine; the config file and environment carry defaults.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if err := app.Run(cfg); err != nil {
		log.Fatalf("app: %v", err)
	}
}
