package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCount int

var undoCmd = &cobra.Command{
	Use:   "undo",
	Short: "Undo the most recent rename",
	Long: `Undo the most recent recorded rename by restoring the node's previous
name.

Rename history lives inside one tool session and is never persisted, so
undo is only meaningful inside 'bakenamer shell'. A one-shot invocation
starts with an empty history and reports EmptyHistoryError.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return s.finish(s.eng.UndoLastRename())
	},
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent renames from this session",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		actions := s.eng.RecentHistory(historyCount)
		if jsonOutput {
			return outputJSON(actions)
		}
		if len(actions) == 0 {
			PrintEmptyState("no renames recorded in this session")
			return nil
		}
		for _, a := range actions {
			PrintInfo(fmt.Sprintf("  #%d  %s -> %s", a.Seq, a.OldName, a.NewName))
		}
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear the session's rename history",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return s.finish(s.eng.ClearHistory())
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyCount, "count", "n", 0, "Limit to the n most recent entries (0 = all)")
	historyCmd.AddCommand(historyClearCmd)
}
