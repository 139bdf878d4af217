package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"gcpctl/pkg/logging"
)

var debugMode bool

// rootCmd represents the base command when called without any subcommands.
// Bare `gcpctl` runs the full switch chain, like the `switch` subcommand.
var rootCmd = &cobra.Command{
	Use:   "gcpctl",
	Short: "Switch GCP account, project, GKE cluster, and kubectl context",
	Long: `gcpctl interactively switches between authenticated GCP accounts,
projects, GKE clusters, and kubectl contexts, chaining the selections
into one flow instead of juggling gcloud and kubectl invocations by hand.`,
	// SilenceUsage is set to true to prevent printing usage message on errors
	// handled by us (e.g. cancelled prompts, failed gcloud calls)
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := logging.LevelInfo
		if debugMode {
			level = logging.LevelDebug
		}
		logging.Init(level, os.Stderr)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSwitch(cmd, switcherOptions{entry: entryAccount, chain: true})
	},
}

// SetVersion sets the version for the root command.
func SetVersion(v string) {
	rootCmd.Version = v
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "gcpctl version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		// Cobra prints the error, we just exit non-zero
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(newSwitchCmd())
	rootCmd.AddCommand(newAccountCmd())
	rootCmd.AddCommand(newProjectCmd())
	rootCmd.AddCommand(newClusterCmd())
	rootCmd.AddCommand(newContextCmd())
	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newSelfUpdateCmd())
	rootCmd.AddCommand(newVersionCmd())
}
