// Package bootstrap wires configuration into a ready-to-serve application.
package bootstrap

import (
	"strings"

	"github.com/gin-gonic/gin"

	"resume-checker/internal/analyses"
	"resume-checker/internal/analyzer"
	"resume-checker/internal/shared/config"
	"resume-checker/internal/shared/server"
)

// App holds shared dependencies. The engine is stateless, so a single
// instance serves all requests without coordination.
type App struct {
	Config   config.Config
	Router   *gin.Engine
	Analyzer *analyzer.Analyzer
}

// Build prepares the engine, handlers, and router.
func Build(cfg config.Config) (*App, error) {
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}

	engine := analyzer.New()
	handler := analyses.NewHandler(engine, cfg.MaxUploadBytes)
	router := server.NewRouter(server.RouterDeps{
		Config:          cfg,
		AnalysisHandler: handler,
	})

	return &App{Config: cfg, Router: router, Analyzer: engine}, nil
}
