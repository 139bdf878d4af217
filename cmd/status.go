package cmd

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"gcpctl/internal/config"
	"gcpctl/internal/gcloud"
	"gcpctl/internal/kube"
	"gcpctl/internal/switcher"
)

var statusCopy bool

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the active account, project, and kubectl context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			gateway := gcloud.NewGateway(gcloud.NewRunner(), cfg.GcloudBinary)
			reporter := switcher.NewStatusReporter(gateway, kube.ConfigAccess{})
			status := reporter.Report(cmd.Context())

			fmt.Fprintln(cmd.OutOrStdout(), status.Render())

			if statusCopy {
				if status.KubeContext == "" {
					return fmt.Errorf("no kubectl context set, nothing to copy")
				}
				if err := clipboard.WriteAll(status.KubeContext); err != nil {
					return fmt.Errorf("failed to copy context to clipboard: %w", err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Context copied to clipboard")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&statusCopy, "copy", false, "Copy the current kubectl context name to the clipboard")
	return cmd
}
