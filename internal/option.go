package internal

import (
	"log/slog"

	"github.com/starford/coderecents/internal/launcher"
)

// Option is a functional option for configuring the plugin state.
type Option func(*application)

type application struct {
	config  *Config
	logger  *slog.Logger
	spawner launcher.Spawner
}

// WithConfig sets the configuration, bypassing the settings document.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(logger *slog.Logger) Option {
	return func(a *application) {
		a.logger = logger
	}
}

// WithSpawner sets how launch command lines are executed.
func WithSpawner(s launcher.Spawner) Option {
	return func(a *application) {
		a.spawner = s
	}
}
