package main

import (
	"log"

	"github.com/vlatan/transcript-gateway/internal/server"

	"github.com/joho/godotenv"
)

func main() {

	// Load the .env file if present.
	// The real environment takes precedence in production.
	_ = godotenv.Load()

	// Create and run new server
	server := server.New()
	if err := server.Run(); err != nil {
		log.Fatalf("http server error: %v", err)
	}
}
