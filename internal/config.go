package internal

import (
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/starford/coderecents/internal/index"
	"github.com/starford/coderecents/internal/pathutil"
	pkgconfig "github.com/starford/coderecents/pkg/config"
)

// ConfigFileNames are tried in order inside the config directory.
var ConfigFileNames = []string{"vscode.yaml", "vscode.yml", "vscode.toml"}

// RONConfigFile is the settings file other launchers read. It is never parsed.
const RONConfigFile = "vscode.ron"

// Defaults.
const (
	DefaultCommand = "code"
	DefaultIcon    = "com.visualstudio.code"
	DefaultLabel   = "VSCode"
	DefaultMatch   = string(index.StrategySubstring)
)

// Config represents the plugin configuration.
type Config struct {
	// Prefix, when set, must lead every query; it is removed before matching.
	Prefix    *string `yaml:"prefix" toml:"prefix"`
	Command   string  `yaml:"command" toml:"command"`
	Icon      string  `yaml:"icon" toml:"icon"`
	Workspace string  `yaml:"workspace" toml:"workspace"`
	Label     string  `yaml:"label" toml:"label"`
	Match     string  `yaml:"match" toml:"match"`
	// QuotePath shell-quotes the project path in the launch command.
	QuotePath bool `yaml:"quote_path" toml:"quote_path"`
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Command, validation.Required),
		validation.Field(&c.Icon, validation.Required),
		validation.Field(&c.Workspace, validation.Required),
		validation.Field(&c.Label, validation.Required),
		validation.Field(&c.Match, validation.Required, validation.In(
			string(index.StrategySubstring),
			string(index.StrategyDistance),
			string(index.StrategyFuzzy),
		)),
	)
}

// WorkspacePath returns the workspace-storage root with $VAR references and
// a leading ~ expanded. No other key is expanded.
func (c *Config) WorkspacePath() string {
	return filepath.Clean(pathutil.ExpandUser(os.ExpandEnv(c.Workspace)))
}

// Strategy returns the configured ranking strategy.
func (c *Config) Strategy() index.Strategy {
	return index.Strategy(c.Match)
}

// DefaultWorkspace returns the editor's workspace-storage directory for goos.
func DefaultWorkspace(goos string) string {
	switch goos {
	case "darwin":
		return "~/Library/Application Support/Code/User/workspaceStorage"
	case "windows":
		return "~/AppData/Roaming/Code/User/workspaceStorage"
	default:
		return "~/.config/Code/User/workspaceStorage"
	}
}

// NewDefaultConfig returns a new Config with sensible default values.
func NewDefaultConfig() *Config {
	return &Config{
		Command:   DefaultCommand,
		Icon:      DefaultIcon,
		Workspace: DefaultWorkspace(runtime.GOOS),
		Label:     DefaultLabel,
		Match:     DefaultMatch,
	}
}

// LoadConfig reads the settings document from dir. Keys missing from the
// document keep their defaults. A missing, unreadable, malformed or invalid
// document is logged and replaced by NewDefaultConfig as a whole.
func LoadConfig(dir string, logger *slog.Logger) *Config {
	path, err := pkgconfig.FindFirst(dir, ConfigFileNames...)
	if err != nil {
		if ron := filepath.Join(dir, RONConfigFile); fileExists(ron) {
			logger.Error("config: RON settings are not supported, move them to vscode.yaml; using defaults",
				slog.String("path", ron))
			return NewDefaultConfig()
		}
		logger.Warn("config: using defaults", slog.String("error", err.Error()))
		return NewDefaultConfig()
	}

	cfg := NewDefaultConfig()
	if err := pkgconfig.Load(path, cfg); err != nil {
		logger.Error("Error parsing config", slog.String("path", path), slog.String("error", err.Error()))
		return NewDefaultConfig()
	}
	return cfg
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
