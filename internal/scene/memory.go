package scene

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// nodeNamePattern is the naming grammar shared by common DCC hosts: a
// leading letter or underscore followed by letters, digits, underscores.
var nodeNamePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

type memoryNode struct {
	ref    NodeRef
	name   string
	locked bool
}

// MemoryGraph is an in-memory scene graph with a single flat naming scope.
// It stands in for the host application's scene during tests and backs the
// file-based scene documents used by the CLI.
type MemoryGraph struct {
	order     []NodeRef
	nodes     map[NodeRef]*memoryNode
	byName    map[string]NodeRef
	selection []NodeRef
}

// NewMemoryGraph creates an empty scene graph.
func NewMemoryGraph() *MemoryGraph {
	return &MemoryGraph{
		nodes:  make(map[NodeRef]*memoryNode),
		byName: make(map[string]NodeRef),
	}
}

// AddTransform adds a transform node. Names must be unique within the graph.
func (g *MemoryGraph) AddTransform(name string) (Node, error) {
	if !g.IsValidName(name) {
		return Node{}, fmt.Errorf("%w: %q", ErrIllegalName, name)
	}
	if _, taken := g.byName[name]; taken {
		return Node{}, fmt.Errorf("%w: %q", ErrNameTaken, name)
	}
	ref := NodeRef(uuid.NewString())
	g.nodes[ref] = &memoryNode{ref: ref, name: name}
	g.byName[name] = ref
	g.order = append(g.order, ref)
	return Node{Ref: ref, Name: name}, nil
}

// Lock marks the named node as locked; renames against it fail.
func (g *MemoryGraph) Lock(name string) error {
	ref, ok := g.byName[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNode, name)
	}
	g.nodes[ref].locked = true
	return nil
}

// Select replaces the current selection, in the order given.
func (g *MemoryGraph) Select(names ...string) error {
	selection := make([]NodeRef, 0, len(names))
	for _, name := range names {
		ref, ok := g.byName[name]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownNode, name)
		}
		selection = append(selection, ref)
	}
	g.selection = selection
	return nil
}

// ClearSelection empties the selection.
func (g *MemoryGraph) ClearSelection() {
	g.selection = nil
}

// SelectedNodes returns the current selection with current names.
func (g *MemoryGraph) SelectedNodes() []Node {
	out := make([]Node, 0, len(g.selection))
	for _, ref := range g.selection {
		if n, ok := g.nodes[ref]; ok {
			out = append(out, Node{Ref: ref, Name: n.name})
		}
	}
	return out
}

// SiblingNames returns every name in the graph except the node's own.
func (g *MemoryGraph) SiblingNames(ref NodeRef) map[string]struct{} {
	out := make(map[string]struct{}, len(g.byName))
	for name, owner := range g.byName {
		if owner == ref {
			continue
		}
		out[name] = struct{}{}
	}
	return out
}

// Rename renames the node, enforcing the naming grammar, uniqueness, and
// lock state the way a host scene graph would.
func (g *MemoryGraph) Rename(ref NodeRef, newName string) error {
	n, ok := g.nodes[ref]
	if !ok {
		return ErrUnknownNode
	}
	if n.locked {
		return fmt.Errorf("%w: %q", ErrNodeLocked, n.name)
	}
	if !g.IsValidName(newName) {
		return fmt.Errorf("%w: %q", ErrIllegalName, newName)
	}
	if newName == n.name {
		return nil
	}
	if _, taken := g.byName[newName]; taken {
		return fmt.Errorf("%w: %q", ErrNameTaken, newName)
	}
	delete(g.byName, n.name)
	n.name = newName
	g.byName[newName] = ref
	return nil
}

// TransformNodes enumerates every node in creation order.
func (g *MemoryGraph) TransformNodes() []Node {
	out := make([]Node, 0, len(g.order))
	for _, ref := range g.order {
		if n, ok := g.nodes[ref]; ok {
			out = append(out, Node{Ref: ref, Name: n.name})
		}
	}
	return out
}

// IsValidName reports whether candidate fits the node naming grammar.
func (g *MemoryGraph) IsValidName(candidate string) bool {
	return nodeNamePattern.MatchString(candidate)
}

// NameOf returns the node's current name, for display and tests.
func (g *MemoryGraph) NameOf(ref NodeRef) (string, bool) {
	n, ok := g.nodes[ref]
	if !ok {
		return "", false
	}
	return n.name, true
}

// Names returns every node name, for display and tests.
func (g *MemoryGraph) Names() []string {
	out := make([]string, 0, len(g.order))
	for _, n := range g.TransformNodes() {
		out = append(out, n.Name)
	}
	return out
}

// SelectionNames returns the current selection's names, in order.
func (g *MemoryGraph) SelectionNames() []string {
	out := make([]string, 0, len(g.selection))
	for _, n := range g.SelectedNodes() {
		out = append(out, n.Name)
	}
	return out
}

// locked reports the node's lock flag, for document round-tripping.
func (g *MemoryGraph) lockedNode(ref NodeRef) bool {
	n, ok := g.nodes[ref]
	return ok && n.locked
}
