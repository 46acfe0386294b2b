package scene

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/cgpipe/bakenamer/internal/fsops"
)

// Document is the YAML form of a scene file. It carries names only; node
// references are assigned fresh on every load, since refs are transient
// host-side handles rather than stable identity.
type Document struct {
	Nodes     []NodeSpec `yaml:"nodes"`
	Selection []string   `yaml:"selection,omitempty"`
}

// NodeSpec describes one transform node in a scene document.
type NodeSpec struct {
	Name   string `yaml:"name"`
	Locked bool   `yaml:"locked,omitempty"`
}

// LoadFile reads a scene document and builds a MemoryGraph from it.
func LoadFile(fs fsops.FS, path string) (*MemoryGraph, error) {
	data, err := fs.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse scene file %s: %w", path, err)
	}

	graph := NewMemoryGraph()
	for _, spec := range doc.Nodes {
		if _, err := graph.AddTransform(spec.Name); err != nil {
			return nil, fmt.Errorf("scene file %s: %w", path, err)
		}
		if spec.Locked {
			if err := graph.Lock(spec.Name); err != nil {
				return nil, fmt.Errorf("scene file %s: %w", path, err)
			}
		}
	}
	if len(doc.Selection) > 0 {
		if err := graph.Select(doc.Selection...); err != nil {
			return nil, fmt.Errorf("scene file %s: selection: %w", path, err)
		}
	}
	return graph, nil
}

// SaveFile writes the graph back out as a scene document, atomically.
func SaveFile(fs fsops.FS, path string, graph *MemoryGraph) error {
	doc := Document{
		Nodes:     make([]NodeSpec, 0, len(graph.order)),
		Selection: graph.SelectionNames(),
	}
	for _, node := range graph.TransformNodes() {
		doc.Nodes = append(doc.Nodes, NodeSpec{
			Name:   node.Name,
			Locked: graph.lockedNode(node.Ref),
		})
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("failed to marshal scene document: %w", err)
	}
	if err := fs.AtomicWrite(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write scene file: %w", err)
	}
	return nil
}
