// Package internal provides the plugin state and its host-facing operations:
// initialization, matching and launching.
package internal

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/starford/coderecents/internal/apperr"
	"github.com/starford/coderecents/internal/index"
	"github.com/starford/coderecents/internal/launcher"
	"github.com/starford/coderecents/internal/models"
	"github.com/starford/coderecents/internal/plugin"
	"github.com/starford/coderecents/internal/storage"
)

// Plugin identity reported to hosts.
const (
	PluginName = "VSCode Recents"
	PluginIcon = "com.visualstudio.code"
)

// MaxMatches caps the matches returned per query.
const MaxMatches = 5

// State is the plugin context built once by Init and read-only afterwards.
type State struct {
	config  *Config
	index   index.ProjectIndex
	spawner launcher.Spawner
	logger  *slog.Logger
}

// Verify *State satisfies plugin.Plugin at compile time.
var _ plugin.Plugin = (*State)(nil)

// Init loads the configuration from configDir and scans the workspace
// storage once. It never fails: configuration problems fall back to
// defaults and scan problems leave the project list empty.
func Init(configDir string, opts ...Option) *State {
	app := &application{}
	for _, opt := range opts {
		opt(app)
	}

	logger := app.logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(os.Stderr, nil))
	}
	cfg := app.config
	if cfg == nil {
		cfg = LoadConfig(configDir, logger)
	}
	spawner := app.spawner
	if spawner == nil {
		spawner = launcher.NewShell(launcher.DefaultShell)
	}

	root := cfg.WorkspacePath()
	logger.Debug("Configuration loaded",
		slog.String("config_dir", configDir),
		slog.String("workspace", root),
		slog.String("command", cfg.Command),
		slog.String("match", cfg.Match))

	return &State{
		config:  cfg,
		index:   scan(root, logger),
		spawner: spawner,
		logger:  logger,
	}
}

func scan(root string, logger *slog.Logger) index.ProjectIndex {
	store, err := storage.NewFS(root)
	if err != nil {
		logger.Warn("Error listing vscode projects", slog.String("error", err.Error()))
		return index.New()
	}
	ix, err := index.Build(store, logger)
	if err != nil {
		logger.Warn("Error listing vscode projects", slog.String("error", err.Error()))
		return index.New()
	}
	return ix
}

// Config returns the active configuration.
func (s *State) Config() *Config {
	return s.config
}

// Projects returns the scanned projects in scan order.
func (s *State) Projects() []models.Project {
	return s.index.Projects()
}

// Info returns the plugin identity.
func (s *State) Info() plugin.Info {
	return plugin.Info{Name: PluginName, Icon: PluginIcon}
}

// GetMatches returns up to MaxMatches projects for query.
func (s *State) GetMatches(query string) []plugin.Match {
	if query == "" {
		return nil
	}
	if p := s.config.Prefix; p != nil {
		if !strings.HasPrefix(query, *p) {
			return nil
		}
		query = strings.Replace(query, *p, "", 1)
	}

	projects := s.index.Search(query, s.config.Strategy(), MaxMatches)
	matches := make([]plugin.Match, 0, len(projects))
	for _, p := range projects {
		matches = append(matches, plugin.Match{
			Title:       s.config.Label + ": " + p.ShortName,
			Icon:        s.config.Icon,
			Description: p.FullPath,
			ID:          plugin.SelectionID(p.ID),
		})
	}
	return matches
}

// HandleSelection launches the editor for the selected match. Failures are
// logged only; the host is always told to close.
func (s *State) HandleSelection(selection plugin.Match) plugin.HandleResult {
	if err := s.launch(selection); err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			s.logger.Error("handle selection: unknown match", slog.String("error", err.Error()))
		} else {
			s.logger.Error("Error running vscode", slog.String("error", err.Error()))
		}
	}
	return plugin.Close
}

func (s *State) launch(selection plugin.Match) error {
	if selection.ID == nil {
		return fmt.Errorf("selection %q carries no id: %w", selection.Title, apperr.ErrNotFound)
	}
	project, err := s.index.Lookup(*selection.ID)
	if err != nil {
		return err
	}
	line := launcher.CommandLine(s.config.Command, project.FullPath, s.config.QuotePath)
	if err := s.spawner.Spawn(line); err != nil {
		return err
	}
	s.logger.Info("launched", slog.String("path", project.FullPath), slog.String("command", s.config.Command))
	return nil
}
