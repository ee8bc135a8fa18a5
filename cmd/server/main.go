package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/iudanet/accounts/internal/server"
	"github.com/iudanet/accounts/internal/server/config"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Show version and exit if requested.
	// Остальные флаги разбирает пакет config.
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" {
			printVersion()
			os.Exit(0)
		}
	}

	cfg := config.LoadConfig()

	ctx := context.Background()

	app, err := server.NewApp(ctx, cfg, Version)
	if err != nil {
		log.Fatalf("failed to initialize server: %v", err)
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server stopped with error: %v", err)
	}
}

func printVersion() {
	fmt.Printf("Accounts Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
