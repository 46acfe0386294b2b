package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	scenePath       string
	configPath      string
	selectNames     []string
	jsonOutput      bool
	verbose         bool
	noConflictCheck bool
	noAutoUnique    bool
	quiet           bool
)

// rootCmd is the root command for bakenamer.
var rootCmd = &cobra.Command{
	Use:     "bakenamer",
	Version: "dev",
	Short:   "Low/high baking-suffix renamer for scene objects",
	Long: `bakenamer tags scene objects with _low, _high, or custom suffixes to
support a low-poly/high-poly baking workflow.

One-shot commands operate on a scene file and save it back. The 'shell'
command opens an interactive session where undo history and the automatic
low/high alternation persist between operations.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	CompletionOptions: cobra.CompletionOptions{
		DisableDefaultCmd: true,
	},
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	rootCmd.Version = v
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&scenePath, "scene", "s", "", "Scene file to operate on (default from config, else scene.yaml)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Config file (default bakenamer.toml if present)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output results in JSON format")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&noConflictCheck, "no-conflict-check", false, "Disable name conflict checking")
	rootCmd.PersistentFlags().BoolVar(&noAutoUnique, "no-auto-unique", false, "Fail on conflicts instead of counter-suffixing")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress success messages")

	rootCmd.AddGroup(&cobra.Group{
		ID:    "rename-operations",
		Title: "Rename Operations:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "history",
		Title: "History:",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "session",
		Title: "Session & Inspection:",
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print the bakenamer version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(os.Stdout, rootCmd.Version)
		},
	}
	rootCmd.AddCommand(versionCmd)

	lowCmd.GroupID = "rename-operations"
	highCmd.GroupID = "rename-operations"
	suffixCmd.GroupID = "rename-operations"
	stripCmd.GroupID = "rename-operations"
	autoCmd.GroupID = "rename-operations"
	batchCmd.GroupID = "rename-operations"
	rootCmd.AddCommand(lowCmd)
	rootCmd.AddCommand(highCmd)
	rootCmd.AddCommand(suffixCmd)
	rootCmd.AddCommand(stripCmd)
	rootCmd.AddCommand(autoCmd)
	rootCmd.AddCommand(batchCmd)

	undoCmd.GroupID = "history"
	historyCmd.GroupID = "history"
	rootCmd.AddCommand(undoCmd)
	rootCmd.AddCommand(historyCmd)

	shellCmd.GroupID = "session"
	nodesCmd.GroupID = "session"
	rootCmd.AddCommand(shellCmd)
	rootCmd.AddCommand(nodesCmd)
}

// Execute executes the root command.
func Execute() error {
	return rootCmd.Execute()
}
