package engine

import "fmt"

// UndoLastRename reverses the most recent recorded rename.
//
// If the collaborator rejects the reverse rename (the node is gone, or its
// old name slot was reused by a later rename), the action is discarded and
// reported as stale rather than retried; the history must not wedge on an
// entry that can never be restored.
func (e *Engine) UndoLastRename() *Result {
	action, ok := e.history.Pop()
	if !ok {
		return e.failure(ErrEmptyHistory, nil)
	}

	if err := e.graph.Rename(action.Node, action.OldName); err != nil {
		e.log.Debug("discarding stale undo entry", "old", action.OldName, "new", action.NewName, "err", err)
		return &Result{
			OK:      false,
			Message: fmt.Sprintf("stale undo: cannot restore %q from %q: %v", action.OldName, action.NewName, err),
		}
	}

	return e.success(
		fmt.Sprintf("restored %q (was %q)", action.OldName, action.NewName),
		[]Rename{{OldName: action.NewName, NewName: action.OldName}},
	)
}

// ClearHistory unconditionally drops every recorded rename. Irreversible.
func (e *Engine) ClearHistory() *Result {
	n := e.history.Len()
	e.history.Clear()
	return e.success(fmt.Sprintf("cleared %d history entries", n), nil)
}
