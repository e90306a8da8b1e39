// Package launcher starts the configured editor for a project path.
package launcher

import (
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// DefaultShell interprets launch command lines.
const DefaultShell = "sh"

// Spawner runs a shell command line without waiting for it.
type Spawner interface {
	Spawn(commandLine string) error
}

// Shell is a Spawner that hands the command line to "<shell> -c".
type Shell struct {
	path string
}

// NewShell returns a Shell using the given interpreter, or DefaultShell when empty.
func NewShell(path string) *Shell {
	if path == "" {
		path = DefaultShell
	}
	return &Shell{path: path}
}

// Spawn starts the command line and releases the child immediately.
// The child's stdio is not inherited and its exit status is never collected.
func (s *Shell) Spawn(commandLine string) error {
	cmd := exec.Command(s.path, "-c", commandLine)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launcher: start %s: %w", s.path, err)
	}
	if err := cmd.Process.Release(); err != nil {
		return fmt.Errorf("launcher: release: %w", err)
	}
	return nil
}

// CommandLine joins the editor command and the project path into one shell
// string. Without quote the path is appended verbatim, so shell
// metacharacters in it are interpreted by the shell.
func CommandLine(command, path string, quote bool) string {
	if quote {
		path = shellquote.Join(path)
	}
	return command + " " + path
}
