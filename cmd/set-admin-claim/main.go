package main

import (
	"context"
	"log"

	"admin-claims/internal/cli"
	"admin-claims/internal/config"
)

func main() {
	if err := config.LoadDotenv(); err != nil {
		log.Printf("warning: failed to load .env: %v", err)
	}

	// Failures are reported on stdout; the exit status stays 0.
	cli.Run(context.Background(), cli.Options{Config: config.Load()})
}
