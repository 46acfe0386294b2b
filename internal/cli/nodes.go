package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var nodesCmd = &cobra.Command{
	Use:   "nodes",
	Short: "List the scene's transform nodes",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}

		nodes := s.graph.TransformNodes()
		if jsonOutput {
			names := make([]string, 0, len(nodes))
			for _, n := range nodes {
				names = append(names, n.Name)
			}
			return outputJSON(map[string]interface{}{
				"nodes":     names,
				"selection": s.graph.SelectionNames(),
			})
		}

		if len(nodes) == 0 {
			PrintEmptyState("scene has no transform nodes")
			return nil
		}

		selected := make(map[string]struct{})
		for _, name := range s.graph.SelectionNames() {
			selected[name] = struct{}{}
		}
		for _, n := range nodes {
			marker := " "
			if _, ok := selected[n.Name]; ok {
				marker = "*"
			}
			PrintInfo(fmt.Sprintf("  %s %s", marker, n.Name))
		}
		PrintInfo("")
		PrintInfo(fmt.Sprintf("  %s, %d selected", PrintCount(len(nodes), "node", "nodes"), len(selected)))
		return nil
	},
}
