package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"gcpctl/internal/config"
	"gcpctl/internal/gcloud"
	"gcpctl/internal/kube"
	"gcpctl/internal/mcpserver"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve gcpctl's operations as MCP tools over stdio",
		Long: `Starts an MCP (Model Context Protocol) server on stdin/stdout exposing
gcpctl's discovery and switch operations as tools, so AI assistants can
inspect and change the active account, project, cluster credentials,
and kubectl context. Interactive prompts are never shown in this mode.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			gateway := gcloud.NewGateway(gcloud.NewRunner(), cfg.GcloudBinary)
			server := mcpserver.New(rootCmd.Version, gateway, kube.ConfigAccess{})
			return server.ServeStdio()
		},
	}
}
