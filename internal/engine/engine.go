// Package engine orchestrates rename operations against the scene graph.
//
// The engine is the API surface the CLI (and the shell session) calls. It
// coordinates the suffix policy, conflict resolution, the undo history, and
// the low/high alternator, and talks to the scene only through the
// scene.Graph collaborator interface.
//
// Every public operation returns a *Result. Error conditions are converted
// to Result{OK: false} at this boundary; nothing here is fatal to the
// calling process.
package engine

import (
	"log/slog"

	"github.com/cgpipe/bakenamer/internal/alternator"
	"github.com/cgpipe/bakenamer/internal/clock"
	"github.com/cgpipe/bakenamer/internal/history"
	"github.com/cgpipe/bakenamer/internal/scene"
	"github.com/cgpipe/bakenamer/internal/suffix"
)

// Engine applies baking-suffix renames to the scene.
// Construct one per tool session and discard it when the session ends; the
// undo history and alternator state live only as long as the engine.
type Engine struct {
	graph      scene.Graph
	policy     *suffix.Policy
	history    *history.Stack
	alternator *alternator.Alternator
	settings   Settings
	clock      clock.Clock
	log        *slog.Logger
}

// New creates an Engine over the given scene graph.
func New(graph scene.Graph, policy *suffix.Policy, clk clock.Clock, settings Settings, log *slog.Logger) *Engine {
	return &Engine{
		graph:      graph,
		policy:     policy,
		history:    history.NewStack(),
		alternator: alternator.New(),
		settings:   settings,
		clock:      clk,
		log:        log,
	}
}

// Settings returns the current settings.
func (e *Engine) Settings() Settings {
	return e.settings
}

// SetSettings replaces the current settings.
func (e *Engine) SetSettings(s Settings) {
	e.settings = s
}

// HistoryLen returns the number of undoable renames.
func (e *Engine) HistoryLen() int {
	return e.history.Len()
}

// RecentHistory returns up to n recorded renames, most recent first.
// n <= 0 returns all of them.
func (e *Engine) RecentHistory(n int) []history.RenameAction {
	return e.history.Recent(n)
}

// Phase returns the suffix the automatic rename mode will apply next.
func (e *Engine) Phase() alternator.Phase {
	return e.alternator.Phase()
}
