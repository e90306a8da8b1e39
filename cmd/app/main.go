package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v3"

	"github.com/starford/coderecents/internal"
	"github.com/starford/coderecents/internal/logging"
	"github.com/starford/coderecents/internal/mcpserver"
	"github.com/starford/coderecents/internal/picker"
	"github.com/starford/coderecents/internal/plugin"
)

func defaultConfigDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, "anyrun")
}

// load builds the logger and the plugin state from the global flags.
// quiet discards logs unless a log file was requested.
func load(cmd *cli.Command, quiet bool) (*internal.State, func() error, error) {
	logger, closeLog, err := logging.New(logging.Options{
		Level:   cmd.String("log-level"),
		Format:  cmd.String("log-format"),
		File:    cmd.String("log-file"),
		Discard: quiet,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to set up logging: %w", err)
	}
	st := internal.Init(cmd.String("config-dir"), internal.WithLogger(logger))
	return st, closeLog, nil
}

func runInfo(ctx context.Context, cmd *cli.Command) error {
	st, closeLog, err := load(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	info := st.Info()
	fmt.Printf("%s\t%s\n", info.Name, info.Icon)
	return nil
}

func runQuery(ctx context.Context, cmd *cli.Command) error {
	st, closeLog, err := load(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	matches := st.GetMatches(strings.Join(cmd.Args().Slice(), " "))
	if cmd.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if matches == nil {
			matches = []plugin.Match{}
		}
		return enc.Encode(matches)
	}
	for _, m := range matches {
		fmt.Printf("%d\t%s\t%s\n", *m.ID, m.Title, m.Description)
	}
	return nil
}

func runOpen(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return errors.New("open: expected exactly one project id")
	}
	id, err := strconv.ParseUint(cmd.Args().First(), 10, 64)
	if err != nil {
		return fmt.Errorf("open: invalid id %q: %w", cmd.Args().First(), err)
	}

	st, closeLog, err := load(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	st.HandleSelection(plugin.Match{ID: plugin.SelectionID(id)})
	return nil
}

func runMCP(ctx context.Context, cmd *cli.Command) error {
	st, closeLog, err := load(cmd, false)
	if err != nil {
		return err
	}
	defer closeLog()

	if err := mcpserver.New(st).ServeStdio(); err != nil {
		return fmt.Errorf("mcp server error: %w", err)
	}
	return nil
}

func runPick(ctx context.Context, cmd *cli.Command) error {
	st, closeLog, err := load(cmd, true)
	if err != nil {
		return err
	}
	defer closeLog()

	sel, ok, err := picker.Run(st)
	if err != nil {
		return err
	}
	if ok {
		fmt.Println(sel.Description)
	}
	return nil
}

func main() {
	cmd := &cli.Command{
		Name:  "coderecents",
		Usage: "Search and reopen recently used VS Code workspaces",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config-dir",
				Aliases: []string{"c"},
				Usage:   "Directory holding vscode.yaml or vscode.toml",
				Value:   defaultConfigDir(),
				Sources: cli.EnvVars("CODERECENTS_CONFIG_DIR"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level: debug, info, warn, error",
				Value:   "info",
				Sources: cli.EnvVars("CODERECENTS_LOG_LEVEL"),
			},
			&cli.StringFlag{
				Name:    "log-format",
				Usage:   "Log format: json or text",
				Value:   logging.FormatJSON,
				Sources: cli.EnvVars("CODERECENTS_LOG_FORMAT"),
			},
			&cli.StringFlag{
				Name:    "log-file",
				Usage:   "Write logs to a rotated file instead of stderr",
				Sources: cli.EnvVars("CODERECENTS_LOG_FILE"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "info",
				Usage:  "Print the plugin name and icon",
				Action: runInfo,
			},
			{
				Name:      "query",
				Usage:     "List matches for a query",
				ArgsUsage: "<query...>",
				Action:    runQuery,
				Flags: []cli.Flag{
					&cli.BoolFlag{Name: "json", Usage: "Print matches as JSON"},
				},
			},
			{
				Name:      "open",
				Usage:     "Launch the editor for a project id",
				ArgsUsage: "<id>",
				Action:    runOpen,
			},
			{
				Name:   "mcp",
				Usage:  "Serve search and open tools over MCP stdio",
				Action: runMCP,
			},
			{
				Name:   "pick",
				Usage:  "Interactive terminal picker",
				Action: runPick,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("application error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
