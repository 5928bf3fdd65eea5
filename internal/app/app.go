package app

import (
	"passforge/internal/domain"
	hardensvc "passforge/internal/services/harden"
	recoverysvc "passforge/internal/services/recovery"
	"passforge/internal/store"
)

// App bundles the services used by the CLI.
type App struct {
	Hardener domain.HardenService
	Recovery domain.RecoveryService

	File       string
	Iterations int
}

// New constructs the dependency graph from cfg.
func New(cfg Config) *App {
	st := store.NewRecoveryFileStore(cfg.File)
	hardener := hardensvc.New()

	iterations := cfg.Iterations
	if iterations == 0 {
		iterations = domain.DefaultIterations
	}

	return &App{
		Hardener:   hardener,
		Recovery:   recoverysvc.New(st, hardener),
		File:       st.Path(),
		Iterations: iterations,
	}
}
