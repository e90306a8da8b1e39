package internal

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/starford/coderecents/internal/plugin"
	"github.com/starford/coderecents/internal/testutil"
)

type fakeSpawner struct {
	lines []string
	err   error
}

func (f *fakeSpawner) Spawn(line string) error {
	f.lines = append(f.lines, line)
	return f.err
}

func strPtr(s string) *string { return &s }

// testState builds a State over a temporary workspace storage holding folders.
func testState(t *testing.T, cfg *Config, folders ...string) (*State, *fakeSpawner) {
	t.Helper()
	root := t.TempDir()
	for i, f := range folders {
		testutil.WriteWorkspace(t, root, fmt.Sprintf("ws%02d", i), "file://"+f)
	}
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	cfg.Workspace = root
	sp := &fakeSpawner{}
	st := Init(t.TempDir(), WithConfig(cfg), WithLogger(discardLogger()), WithSpawner(sp))
	return st, sp
}

func TestInit_LoadsConfigFromDir(t *testing.T) {
	root := t.TempDir()
	testutil.WriteWorkspace(t, root, "a", "file:///src/harbor")
	dir := testutil.TestConfigDir(t, "vscode.yaml", "command: codium\nworkspace: "+root+"\n")

	st := Init(dir, WithLogger(discardLogger()))
	if st.Config().Command != "codium" {
		t.Errorf("command = %q, want %q", st.Config().Command, "codium")
	}
	if len(st.Projects()) != 1 {
		t.Errorf("projects = %d, want 1", len(st.Projects()))
	}
}

func TestInit_MissingWorkspaceRoot(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Workspace = filepath.Join(t.TempDir(), "nope")
	st := Init(t.TempDir(), WithConfig(cfg), WithLogger(discardLogger()))
	if len(st.Projects()) != 0 {
		t.Errorf("projects = %d, want 0", len(st.Projects()))
	}
	if got := st.GetMatches("x"); len(got) != 0 {
		t.Errorf("matches = %v, want none", got)
	}
}

func TestInfo(t *testing.T) {
	st, _ := testState(t, nil)
	info := st.Info()
	if info.Name != "VSCode Recents" || info.Icon != "com.visualstudio.code" {
		t.Errorf("info = %+v", info)
	}
}

func TestGetMatches_EmptyQuery(t *testing.T) {
	st, _ := testState(t, nil, "/foo/bar")
	if got := st.GetMatches(""); len(got) != 0 {
		t.Errorf("matches = %v, want none", got)
	}
}

func TestGetMatches_SingleResult(t *testing.T) {
	st, _ := testState(t, nil, "foo/bar", "foo/baz")
	got := st.GetMatches("bar")
	if len(got) != 1 {
		t.Fatalf("len = %d, want 1", len(got))
	}
	m := got[0]
	if m.Description != "foo/bar" {
		t.Errorf("description = %q, want %q", m.Description, "foo/bar")
	}
	if m.Title != "VSCode: bar" {
		t.Errorf("title = %q, want %q", m.Title, "VSCode: bar")
	}
	if m.Icon != DefaultIcon {
		t.Errorf("icon = %q, want %q", m.Icon, DefaultIcon)
	}
	if m.ID == nil {
		t.Fatal("match has no id")
	}
}

func TestGetMatches_Prefix(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Prefix = strPtr("vs:")
	st, _ := testState(t, cfg, "/foo/bar", "/foo/baz")

	if got := st.GetMatches("hello"); len(got) != 0 {
		t.Errorf("unprefixed query matched: %v", got)
	}
	if got := st.GetMatches("bar"); len(got) != 0 {
		t.Errorf("unprefixed query matched: %v", got)
	}
	got := st.GetMatches("vs:bar")
	if len(got) != 1 || got[0].Description != "/foo/bar" {
		t.Errorf("matches = %v, want only /foo/bar", got)
	}
}

func TestGetMatches_PrefixRemovedOnce(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Prefix = strPtr("x")
	st, _ := testState(t, cfg, "/src/xbox", "/src/box")
	got := st.GetMatches("xxbox")
	if len(got) != 1 || got[0].Description != "/src/xbox" {
		t.Errorf("matches = %v, want only /src/xbox", got)
	}
}

func TestGetMatches_CappedAtFive(t *testing.T) {
	var folders []string
	for i := 0; i < 9; i++ {
		folders = append(folders, fmt.Sprintf("/src/app%d", i))
	}
	for _, strategy := range []string{"substring", "distance", "fuzzy"} {
		cfg := NewDefaultConfig()
		cfg.Match = strategy
		st, _ := testState(t, cfg, folders...)
		if got := st.GetMatches("app"); len(got) != MaxMatches {
			t.Errorf("%s: len = %d, want %d", strategy, len(got), MaxMatches)
		}
	}
}

func TestGetMatches_CustomLabelAndIcon(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Label = "Codium"
	cfg.Icon = "vscodium"
	st, _ := testState(t, cfg, "/src/harbor")
	got := st.GetMatches("harbor")
	if len(got) != 1 || got[0].Title != "Codium: harbor" || got[0].Icon != "vscodium" {
		t.Errorf("matches = %+v", got)
	}
}

func TestHandleSelection_RoundTrip(t *testing.T) {
	st, sp := testState(t, nil, "/src/alpha", "/src/beta", "/src/gamma")
	for _, m := range st.GetMatches("a") {
		if res := st.HandleSelection(m); res != plugin.Close {
			t.Errorf("result = %v, want close", res)
		}
		want := "code " + m.Description
		if got := sp.lines[len(sp.lines)-1]; got != want {
			t.Errorf("command line = %q, want %q", got, want)
		}
	}
	if len(sp.lines) != 3 {
		t.Errorf("spawned %d times, want 3", len(sp.lines))
	}
}

func TestHandleSelection_QuotedPath(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.QuotePath = true
	st, sp := testState(t, cfg, "/src/my app")
	st.HandleSelection(st.GetMatches("app")[0])
	if len(sp.lines) != 1 || sp.lines[0] != "code '/src/my app'" {
		t.Errorf("lines = %q", sp.lines)
	}
}

func TestHandleSelection_UnknownID(t *testing.T) {
	st, sp := testState(t, nil, "/src/alpha")
	res := st.HandleSelection(plugin.Match{Title: "ghost", ID: plugin.SelectionID(42)})
	if res != plugin.Close {
		t.Errorf("result = %v, want close", res)
	}
	if len(sp.lines) != 0 {
		t.Errorf("unexpected spawn: %q", sp.lines)
	}
}

func TestHandleSelection_MissingID(t *testing.T) {
	st, sp := testState(t, nil, "/src/alpha")
	if res := st.HandleSelection(plugin.Match{Title: "no id"}); res != plugin.Close {
		t.Errorf("result = %v, want close", res)
	}
	if len(sp.lines) != 0 {
		t.Errorf("unexpected spawn: %q", sp.lines)
	}
}

func TestHandleSelection_SpawnFailureStillCloses(t *testing.T) {
	st, sp := testState(t, nil, "/src/alpha")
	sp.err = errors.New("exec: not found")
	if res := st.HandleSelection(st.GetMatches("alpha")[0]); res != plugin.Close {
		t.Errorf("result = %v, want close", res)
	}
	if len(sp.lines) != 1 {
		t.Errorf("spawn attempts = %d, want 1", len(sp.lines))
	}
}
