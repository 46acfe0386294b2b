package engine

import (
	"fmt"

	"github.com/cgpipe/bakenamer/internal/conflict"
	"github.com/cgpipe/bakenamer/internal/scene"
	"github.com/cgpipe/bakenamer/internal/suffix"
)

// RenameToLow retags the current selection with the low suffix.
func (e *Engine) RenameToLow() *Result {
	return e.renameSelection(suffix.Low)
}

// RenameToHigh retags the current selection with the high suffix.
func (e *Engine) RenameToHigh() *Result {
	return e.renameSelection(suffix.High)
}

// RenameWithSuffix retags the current selection with a user-supplied
// suffix. A missing leading underscore is added. An empty suffix is
// rejected here; removing suffixes is StripSuffixes' job.
func (e *Engine) RenameWithSuffix(sfx string) *Result {
	sfx = suffix.Normalize(sfx)
	if sfx == "" || sfx == "_" {
		return e.failure(&suffix.InvalidSuffixError{Suffix: sfx, Reason: "suffix is empty"}, nil)
	}
	return e.renameSelection(sfx)
}

// StripSuffixes removes recognized baking suffixes from the current
// selection. Nodes whose name does not change are skipped, so every history
// entry remains a meaningful undo step.
func (e *Engine) StripSuffixes() *Result {
	nodes := e.graph.SelectedNodes()
	if len(nodes) == 0 {
		return e.success("nothing selected", nil)
	}
	renames, err := e.renameNodes(nodes, "")
	if err != nil {
		return e.failure(err, renames)
	}
	return e.success(fmt.Sprintf("stripped suffixes from %d of %d selected objects", len(renames), len(nodes)), renames)
}

// renameSelection runs the suffix pipeline over the current selection.
// An empty selection is a no-op status, not an error.
func (e *Engine) renameSelection(sfx string) *Result {
	nodes := e.graph.SelectedNodes()
	if len(nodes) == 0 {
		return e.success("nothing selected", nil)
	}
	renames, err := e.renameNodes(nodes, sfx)
	if err != nil {
		return e.failure(err, renames)
	}
	return e.success(fmt.Sprintf("renamed %d of %d selected objects with %s", len(renames), len(nodes), sfx), renames)
}

// renameNodes applies the per-node pipeline: strip recognized suffixes,
// append sfx (none when empty), resolve conflicts against the node's
// current siblings, rename through the collaborator, record history.
//
// The first error stops the walk. Renames already applied stay applied and
// recorded; they are returned alongside the error so callers can report the
// partial prefix.
func (e *Engine) renameNodes(nodes []scene.Node, sfx string) ([]Rename, error) {
	var renames []Rename
	for _, node := range nodes {
		target := e.policy.StripKnown(node.Name)
		if sfx != "" {
			var err error
			target, err = e.policy.WithSuffix(target, sfx)
			if err != nil {
				return renames, err
			}
		}
		if target == node.Name {
			continue
		}

		// Renames applied earlier in this walk are already visible in the
		// sibling set, so intra-batch collisions resolve like any other.
		final, err := conflict.Resolve(target, e.graph.SiblingNames(node.Ref), e.settings.conflict())
		if err != nil {
			return renames, err
		}
		if final == node.Name {
			continue
		}

		if err := e.graph.Rename(node.Ref, final); err != nil {
			return renames, &CollaboratorError{Node: node.Name, Err: err}
		}
		e.history.Push(node.Ref, node.Name, final, e.clock.Now())
		renames = append(renames, Rename{OldName: node.Name, NewName: final})
		e.log.Debug("renamed node", "from", node.Name, "to", final)
	}
	return renames, nil
}
