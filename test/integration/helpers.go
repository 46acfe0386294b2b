package integration

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/cgpipe/bakenamer/internal/clock"
	"github.com/cgpipe/bakenamer/internal/engine"
	"github.com/cgpipe/bakenamer/internal/fsops"
	"github.com/cgpipe/bakenamer/internal/logging"
	"github.com/cgpipe/bakenamer/internal/scene"
	"github.com/cgpipe/bakenamer/internal/suffix"
)

// writeScene writes a scene document to a temp file and returns its path.
func writeScene(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scene.yaml")
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		t.Fatalf("writing scene file: %v", err)
	}
	return path
}

// openEngine loads a scene file and builds an engine over it, the same way
// the CLI does.
func openEngine(t *testing.T, path string, settings engine.Settings, extraSuffixes ...string) (*engine.Engine, *scene.MemoryGraph, fsops.FS) {
	t.Helper()
	fs := fsops.NewRealFS()
	graph, err := scene.LoadFile(fs, path)
	if err != nil {
		t.Fatalf("LoadFile(%s): %v", path, err)
	}
	policy := suffix.NewPolicy(graph.IsValidName, extraSuffixes...)
	clk := clock.NewFakeClock(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))
	eng := engine.New(graph, policy, clk, settings, logging.NewNop())
	return eng, graph, fs
}

// requireOK fails the test when the result is not OK.
func requireOK(t *testing.T, res *engine.Result) *engine.Result {
	t.Helper()
	if !res.OK {
		t.Fatalf("operation failed: %s", res.Message)
	}
	return res
}
