package cli

import (
	"github.com/spf13/cobra"
)

var lowCmd = &cobra.Command{
	Use:   "low",
	Short: "Tag the selected objects with the _low suffix",
	Long: `Strip any recognized baking suffix from each selected object's name and
append _low. Conflicting names are resolved with a numeric counter unless
conflict handling is disabled.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return s.finish(s.eng.RenameToLow())
	},
}

var highCmd = &cobra.Command{
	Use:   "high",
	Short: "Tag the selected objects with the _high suffix",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return s.finish(s.eng.RenameToHigh())
	},
}

var suffixCmd = &cobra.Command{
	Use:   "suffix <suffix>",
	Short: "Tag the selected objects with a custom suffix",
	Long: `Strip any recognized baking suffix from each selected object's name and
append the given suffix. A missing leading underscore is added, so
'bakenamer suffix cage' and 'bakenamer suffix _cage' are equivalent.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return s.finish(s.eng.RenameWithSuffix(args[0]))
	},
}

var stripCmd = &cobra.Command{
	Use:   "strip",
	Short: "Remove recognized baking suffixes from the selected objects",
	Long: `Remove the recognized baking suffixes (_low, _high, _cage, _bake, _LP,
_HP, plus any configured extras) from each selected object. Objects whose
name does not change are skipped and leave no history entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		return s.finish(s.eng.StripSuffixes())
	},
}

func init() {
	for _, cmd := range []*cobra.Command{lowCmd, highCmd, suffixCmd, stripCmd} {
		cmd.Flags().StringSliceVar(&selectNames, "select", nil, "Override the scene's selection for this run")
	}
}
