package main

import (
	"log"

	"resume-checker/internal/bootstrap"
	"resume-checker/internal/shared/config"
	"resume-checker/internal/shared/server"
	"resume-checker/internal/shared/telemetry"
)

func main() {
	cfg := config.Load()
	defer telemetry.Sync()

	app, err := bootstrap.Build(cfg)
	if err != nil {
		log.Fatalf("bootstrap: %v", err)
	}

	addr := server.Addr(cfg.Port)
	log.Printf("Starting API server on %s", addr)

	if err := app.Router.Run(addr); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
