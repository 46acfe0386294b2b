package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/cgpipe/bakenamer/internal/clock"
	"github.com/cgpipe/bakenamer/internal/config"
	"github.com/cgpipe/bakenamer/internal/engine"
	"github.com/cgpipe/bakenamer/internal/fsops"
	"github.com/cgpipe/bakenamer/internal/logging"
	"github.com/cgpipe/bakenamer/internal/scene"
	"github.com/cgpipe/bakenamer/internal/suffix"
)

// session wires a scene file to an engine for the duration of one command
// (or one interactive shell). History and alternator state live inside the
// engine and are discarded with the session.
type session struct {
	cfg   *config.Config
	fs    fsops.FS
	graph *scene.MemoryGraph
	eng   *engine.Engine
	path  string
	log   *slog.Logger
}

// newSession loads config and scene and builds the engine over them.
func newSession() (*session, error) {
	log := logging.New(verbose)

	fs := fsops.NewRealFS()
	cfg, err := config.Load(fs, configPath)
	if err != nil {
		return nil, err
	}

	path := scenePath
	if path == "" {
		path = cfg.Scene
	}

	graph, err := scene.LoadFile(fs, path)
	if err != nil {
		return nil, err
	}

	if len(selectNames) > 0 {
		if err := graph.Select(selectNames...); err != nil {
			return nil, fmt.Errorf("--select: %w", err)
		}
	}

	settings := engine.Settings{
		CheckConflicts:  cfg.Settings.CheckConflicts,
		AutoUniqueNames: cfg.Settings.AutoUniqueNames,
		ShowMessages:    cfg.Settings.ShowMessages,
	}
	if noConflictCheck {
		settings.CheckConflicts = false
	}
	if noAutoUnique {
		settings.AutoUniqueNames = false
	}
	if quiet {
		settings.ShowMessages = false
	}

	policy := suffix.NewPolicy(graph.IsValidName, cfg.Suffixes.Extra...)
	eng := engine.New(graph, policy, &clock.RealClock{}, settings, log)

	log.Debug("session opened", "scene", path, "nodes", len(graph.TransformNodes()))
	return &session{cfg: cfg, fs: fs, graph: graph, eng: eng, path: path, log: log}, nil
}

// save writes the scene file back out.
func (s *session) save() error {
	return scene.SaveFile(s.fs, s.path, s.graph)
}

// finish saves the scene when the operation touched it, then reports the
// result. Failed operations still save: a partial batch keeps its applied
// prefix by design.
func (s *session) finish(res *engine.Result) error {
	if res.AffectedCount > 0 {
		if err := s.save(); err != nil {
			return err
		}
	}
	return printResult(res)
}

// printResult renders a result and maps OK:false onto a non-zero exit.
func printResult(res *engine.Result) error {
	if jsonOutput {
		if err := outputJSON(res); err != nil {
			return err
		}
		if !res.OK {
			os.Exit(1)
		}
		return nil
	}

	for _, r := range res.Renames {
		PrintInfo(fmt.Sprintf("  %s -> %s", r.OldName, r.NewName))
	}
	if !res.OK {
		return errors.New(res.Message)
	}
	if res.Message != "" {
		PrintSuccess(res.Message)
	}
	return nil
}

// outputJSON outputs a value as JSON to stdout.
func outputJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
