package engine

import (
	"fmt"

	"github.com/cgpipe/bakenamer/internal/suffix"
)

// BatchRename applies the suffix pipeline to every transform node in the
// scene, not just the selection. Conflict and history semantics are the
// same as for selection renames: one history entry per renamed node, and a
// mid-scene failure keeps the already-applied prefix renamed and undoable.
//
// This is the most destructive operation the engine offers. Callers are
// responsible for explicit user confirmation before invoking it; the engine
// performs no scene-wide safety check beyond per-node conflict resolution.
func (e *Engine) BatchRename(sfx string) *Result {
	nodes := e.graph.TransformNodes()
	if len(nodes) == 0 {
		return e.success("scene has no transform nodes", nil)
	}
	renames, err := e.renameNodes(nodes, suffix.Normalize(sfx))
	if err != nil {
		return e.failure(err, renames)
	}
	return e.success(fmt.Sprintf("renamed %d of %d scene objects with %s", len(renames), len(nodes), suffix.Normalize(sfx)), renames)
}
