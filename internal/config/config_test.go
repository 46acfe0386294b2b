package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cgpipe/bakenamer/internal/fsops"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Scene != "scene.yaml" {
		t.Errorf("Scene = %q, want scene.yaml", cfg.Scene)
	}
	if !cfg.Settings.CheckConflicts {
		t.Error("CheckConflicts default = false, want true")
	}
	if !cfg.Settings.AutoUniqueNames {
		t.Error("AutoUniqueNames default = false, want true")
	}
	if !cfg.Settings.ShowMessages {
		t.Error("ShowMessages default = false, want true")
	}
}

func TestLoadMissingDefaultFile(t *testing.T) {
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer func() { _ = os.Chdir(wd) }()

	cfg, err := Load(fsops.NewRealFS(), "")
	if err != nil {
		t.Fatalf("Load with no config file error: %v", err)
	}
	if cfg.Scene != "scene.yaml" {
		t.Errorf("Scene = %q, want default", cfg.Scene)
	}
}

func TestLoadMissingExplicitFile(t *testing.T) {
	if _, err := Load(fsops.NewRealFS(), filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Error("Load with missing explicit path error = nil, want error")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bakenamer.toml")
	doc := `scene = "assets/props.yaml"

[settings]
check_conflicts = true
auto_unique_names = false
show_messages = false

[suffixes]
extra = ["_proxy", "decal"]
`
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(fsops.NewRealFS(), path)
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if cfg.Scene != "assets/props.yaml" {
		t.Errorf("Scene = %q, want assets/props.yaml", cfg.Scene)
	}
	if cfg.Settings.AutoUniqueNames {
		t.Error("AutoUniqueNames = true, want false")
	}
	if len(cfg.Suffixes.Extra) != 2 {
		t.Errorf("len(Suffixes.Extra) = %d, want 2", len(cfg.Suffixes.Extra))
	}
}

func TestLoadBadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bakenamer.toml")
	if err := os.WriteFile(path, []byte("scene = ["), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(fsops.NewRealFS(), path); err == nil {
		t.Error("Load of malformed file error = nil, want error")
	}
}
