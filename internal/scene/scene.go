// Package scene defines the collaborator contract the rename engine consumes
// and the bundled scene-graph implementations.
//
// In the host application the scene graph is owned by the application itself;
// the engine only ever sees it through the Graph interface. The in-memory and
// file-backed graphs in this package exist so the CLI works standalone and so
// the engine can be tested without a host.
package scene

import "errors"

// NodeRef is an opaque identifier for a scene-graph node. The engine carries
// it between collaborator calls and never inspects its contents.
type NodeRef string

// Node pairs a node reference with its name at the time of the query.
type Node struct {
	Ref  NodeRef
	Name string
}

// Graph is the scene-graph contract the rename engine consumes.
type Graph interface {
	// SelectedNodes returns the current selection in selection order.
	SelectedNodes() []Node

	// SiblingNames returns the names sharing the node's naming scope,
	// excluding the node's own name.
	SiblingNames(ref NodeRef) map[string]struct{}

	// Rename renames the node. The returned error describes why the host
	// rejected the rename (unknown node, locked node, name in use, ...).
	Rename(ref NodeRef, newName string) error

	// TransformNodes enumerates every transform node in the scene, for
	// batch operations.
	TransformNodes() []Node

	// IsValidName reports whether candidate is legal in the host's node
	// naming grammar.
	IsValidName(candidate string) bool
}

// Errors the bundled graphs return from Rename. Hosts may return their own;
// the engine treats any Rename error as a collaborator failure.
var (
	// ErrUnknownNode indicates the node reference no longer resolves.
	ErrUnknownNode = errors.New("unknown node")

	// ErrNameTaken indicates another node already holds the target name.
	ErrNameTaken = errors.New("name already in use")

	// ErrNodeLocked indicates the node is locked against renames.
	ErrNodeLocked = errors.New("node is locked")

	// ErrIllegalName indicates the target name fails the naming grammar.
	ErrIllegalName = errors.New("illegal node name")
)
