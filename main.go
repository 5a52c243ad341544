package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"pdfmeta/cmd"
	"pdfmeta/internal/config"
	"pdfmeta/internal/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Printf("Warning: Could not load configuration: %v", err)
		if err := logger.Setup(logger.DefaultConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	} else {
		if err := logger.Setup(cfg.GetLoggerConfig()); err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
	}

	log := logger.WithComponent("main")
	log.Info().Msg("Starting pdfmeta CLI")

	cmd.Execute()

	log.Info().Msg("pdfmeta CLI shutdown")
	os.Exit(0)
}
