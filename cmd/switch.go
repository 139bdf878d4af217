package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gcpctl/internal/config"
	"gcpctl/internal/gcloud"
	"gcpctl/internal/kube"
	"gcpctl/internal/selector"
	"gcpctl/internal/switcher"
)

// Entry stage aliases so command definitions read naturally.
const (
	entryAccount = switcher.StageAccount
	entryProject = switcher.StageProject
	entryCluster = switcher.StageCluster
	entryContext = switcher.StageContext
)

type switcherOptions struct {
	entry  switcher.Stage
	chain  bool
	verify bool
}

var verifyCluster bool

func newSwitchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "switch",
		Short: "Run the full chain: account, project, cluster, context",
		Long: `Runs all four switch stages in order. Each stage lists its candidates,
prompts for a selection, and applies it before the next stage starts.
Cancelling a prompt aborts the run; stages already applied stay applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd, switcherOptions{entry: entryAccount, chain: true, verify: verifyCluster})
		},
	}
	cmd.Flags().BoolVar(&verifyCluster, "verify", false, "Probe node readiness after fetching cluster credentials")
	return cmd
}

func newAccountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "account",
		Short: "Select the active GCP account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd, switcherOptions{entry: entryAccount})
		},
	}
}

func newProjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "project",
		Short: "Select the active GCP project",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd, switcherOptions{entry: entryProject})
		},
	}
}

func newClusterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cluster",
		Short: "Select a GKE cluster and fetch its credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd, switcherOptions{entry: entryCluster, verify: verifyCluster})
		},
	}
	cmd.Flags().BoolVar(&verifyCluster, "verify", false, "Probe node readiness after fetching cluster credentials")
	return cmd
}

func newContextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "context",
		Short: "Select the kubectl current-context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSwitch(cmd, switcherOptions{entry: entryContext})
		},
	}
}

// runSwitch builds the orchestrator from configuration and drives the
// requested stage range. It is the only caller of the orchestrator.
func runSwitch(cmd *cobra.Command, opts switcherOptions) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	gateway := gcloud.NewGateway(gcloud.NewRunner(), cfg.GcloudBinary)

	var probe switcher.HealthProber
	if opts.verify || cfg.VerifyCluster {
		probe = kube.ProbeNodes
	}

	orchestrator := switcher.New(gateway, kube.ConfigAccess{}, selector.Run, probe)

	sc, err := orchestrator.Run(cmd.Context(), opts.entry, opts.chain)
	if err != nil {
		printPartial(cmd, sc)
		return err
	}

	printSwitchResult(cmd, sc)
	return nil
}

func printSwitchResult(cmd *cobra.Command, sc *switcher.SwitchContext) {
	for _, line := range switchContextLines(sc) {
		fmt.Fprintln(cmd.OutOrStdout(), line)
	}
}

// printPartial shows which stages already applied before an abort, so
// the user knows what external state actually changed.
func printPartial(cmd *cobra.Command, sc *switcher.SwitchContext) {
	lines := switchContextLines(sc)
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(cmd.ErrOrStderr(), "Applied before abort:")
	for _, line := range lines {
		fmt.Fprintln(cmd.ErrOrStderr(), line)
	}
}

func switchContextLines(sc *switcher.SwitchContext) []string {
	var lines []string
	if sc.Account != "" {
		lines = append(lines, fmt.Sprintf("  account: %s", sc.Account))
	}
	if sc.Project != "" {
		lines = append(lines, fmt.Sprintf("  project: %s", sc.Project))
	}
	if sc.Cluster != nil {
		lines = append(lines, fmt.Sprintf("  cluster: %s (%s)", sc.Cluster.Name, sc.Cluster.Location))
	}
	if sc.KubeContext != "" {
		lines = append(lines, fmt.Sprintf("  context: %s", sc.KubeContext))
	}
	return lines
}
