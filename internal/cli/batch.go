package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var batchYes bool

var batchCmd = &cobra.Command{
	Use:   "batch <suffix>",
	Short: "Tag every transform node in the scene with a suffix",
	Long: `Apply the suffix pipeline to every transform node in the scene, not just
the selection. This is the most destructive operation bakenamer offers, so
it refuses to run without --yes.

If a node fails mid-scene, the renames already applied are kept (each one
individually undoable) and the failing node is named in the error.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !batchYes {
			return fmt.Errorf("batch renames the whole scene; re-run with --yes to confirm")
		}
		s, err := newSession()
		if err != nil {
			return err
		}
		return s.finish(s.eng.BatchRename(args[0]))
	},
}

func init() {
	batchCmd.Flags().BoolVar(&batchYes, "yes", false, "Confirm renaming every transform node in the scene")
}
