package engine

import (
	"errors"
	"fmt"
)

// ErrEmptyHistory indicates an undo with nothing to undo. The message is
// the error-kind name so results stay machine-checkable.
var ErrEmptyHistory = errors.New("EmptyHistoryError")

// CollaboratorError reports a rename the host scene graph rejected, e.g. a
// locked node or a reference that no longer resolves.
type CollaboratorError struct {
	// Node is the name of the node whose rename was rejected.
	Node string

	// Err is the collaborator's reason.
	Err error
}

func (e *CollaboratorError) Error() string {
	return fmt.Sprintf("CollaboratorFailure: rename of %q rejected: %v", e.Node, e.Err)
}

func (e *CollaboratorError) Unwrap() error {
	return e.Err
}
