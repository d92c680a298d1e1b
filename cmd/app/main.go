package main

import (
	"flag"
	"log"
	"os"

	"QuoteFrame/internal/di"
	"QuoteFrame/pkg/config"
)

func main() {
	configPath := flag.String("config", "config/config.yaml", "config file path")
	flag.Parse()

	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s provider=%s port=%d", cfg.Environment, cfg.Provider.Type, cfg.Server.Port)

	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}

	// Run blocks until SIGINT or SIGTERM.
	if err := app.Run(); err != nil {
		log.Printf("app error: %v", err)
		os.Exit(1)
	}
}
