package cli

import (
	"github.com/spf13/cobra"
)

var autoCmd = &cobra.Command{
	Use:   "auto",
	Short: "Alternate low/high tagging by selection group",
	Long: `Tag the current selection with the suffix the alternating mode expects
next: the first group gets _low, the next gets _high, then _low again.

The alternation state lives inside one tool session, so this mode is only
useful inside 'bakenamer shell'. A one-shot invocation always starts at the
low phase.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return s.finish(s.eng.AutoRename())
	},
}

var autoResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the alternating mode to the low phase",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return s.finish(s.eng.ResetAuto())
	},
}

func init() {
	autoCmd.Flags().StringSliceVar(&selectNames, "select", nil, "Override the scene's selection for this run")
	autoCmd.AddCommand(autoResetCmd)
}
