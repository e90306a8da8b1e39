package launcher

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// eventually polls fn every tick until it returns true or timeout elapses.
func eventually(t *testing.T, timeout, tick time.Duration, fn func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if fn() {
			return
		}
		time.Sleep(tick)
	}
	t.Error(msg)
}

func TestCommandLine_Verbatim(t *testing.T) {
	got := CommandLine("code", "/home/me/my proj", false)
	if got != "code /home/me/my proj" {
		t.Errorf("got %q", got)
	}
}

func TestCommandLine_Quoted(t *testing.T) {
	got := CommandLine("code --new-window", "/home/me/my proj", true)
	if got != "code --new-window '/home/me/my proj'" {
		t.Errorf("got %q", got)
	}
	if got := CommandLine("code", "/plain/path", true); got != "code /plain/path" {
		t.Errorf("plain path got %q", got)
	}
}

func TestShellSpawn_RunsDetached(t *testing.T) {
	if _, err := os.Stat("/bin/sh"); err != nil {
		t.Skip("no /bin/sh")
	}
	marker := filepath.Join(t.TempDir(), "opened")
	if err := NewShell("").Spawn(CommandLine("touch", marker, true)); err != nil {
		t.Fatalf("Spawn: %v", err)
	}
	eventually(t, 5*time.Second, 20*time.Millisecond, func() bool {
		_, err := os.Stat(marker)
		return err == nil
	}, "spawned command never ran")
}

func TestShellSpawn_MissingShell(t *testing.T) {
	s := NewShell(filepath.Join(t.TempDir(), "no-such-shell"))
	if err := s.Spawn("true"); err == nil {
		t.Error("expected error for missing shell")
	}
}
