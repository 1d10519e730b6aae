package main

import (
	"log"

	"contaudit/internal/config"
	"contaudit/ui"

	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	server := ui.NewServer(appConfig)
	if err := server.Run(); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
