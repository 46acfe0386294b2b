// Package history keeps the ordered record of applied renames that backs
// undo. The stack is in-memory only and lives exactly as long as the tool
// session that created it.
package history

import (
	"time"

	"github.com/cgpipe/bakenamer/internal/scene"
)

// RenameAction records one applied rename. Immutable once pushed.
type RenameAction struct {
	// Node is the renamed node's reference.
	Node scene.NodeRef

	// OldName is the name before the rename.
	OldName string

	// NewName is the name after the rename.
	NewName string

	// Seq orders actions causally within the session, starting at 1.
	Seq int

	// At is when the rename was applied.
	At time.Time
}

// Stack is an ordered sequence of rename actions, most-recent-last.
type Stack struct {
	actions []RenameAction
	nextSeq int
}

// NewStack creates an empty history stack.
func NewStack() *Stack {
	return &Stack{nextSeq: 1}
}

// Push appends an action, assigning its sequence number.
func (s *Stack) Push(node scene.NodeRef, oldName, newName string, at time.Time) RenameAction {
	action := RenameAction{
		Node:    node,
		OldName: oldName,
		NewName: newName,
		Seq:     s.nextSeq,
		At:      at,
	}
	s.nextSeq++
	s.actions = append(s.actions, action)
	return action
}

// Pop removes and returns the most recent action. ok is false when the
// stack is empty.
func (s *Stack) Pop() (action RenameAction, ok bool) {
	if len(s.actions) == 0 {
		return RenameAction{}, false
	}
	action = s.actions[len(s.actions)-1]
	s.actions = s.actions[:len(s.actions)-1]
	return action, true
}

// Len returns the number of recorded actions.
func (s *Stack) Len() int {
	return len(s.actions)
}

// Clear drops every recorded action. Sequence numbering continues, so
// actions recorded after a clear still sort after the dropped ones.
func (s *Stack) Clear() {
	s.actions = nil
}

// Recent returns up to n actions, most recent first. n <= 0 returns all.
func (s *Stack) Recent(n int) []RenameAction {
	if n <= 0 || n > len(s.actions) {
		n = len(s.actions)
	}
	out := make([]RenameAction, 0, n)
	for i := len(s.actions) - 1; i >= len(s.actions)-n; i-- {
		out = append(out, s.actions[i])
	}
	return out
}
