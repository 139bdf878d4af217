package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"gcpctl/internal/config"
	"gcpctl/internal/gcloud"
	"gcpctl/internal/kube"
	"gcpctl/internal/output"
)

var (
	listFormat  string
	listNoColor bool
)

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:       "list <accounts|projects|clusters|contexts>",
		Short:     "List candidates without switching anything",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{"accounts", "projects", "clusters", "contexts"},
		RunE:      runList,
	}
	cmd.Flags().StringVarP(&listFormat, "output", "o", "", "Output format: table or json (default from config)")
	cmd.Flags().BoolVar(&listNoColor, "no-color", false, "Disable colored output")
	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format := listFormat
	if format == "" {
		format = cfg.Output.Format
	}
	noColor := listNoColor || cfg.Output.NoColor

	gateway := gcloud.NewGateway(gcloud.NewRunner(), cfg.GcloudBinary)
	kubecfg := kube.ConfigAccess{}
	ctx := cmd.Context()

	switch args[0] {
	case "accounts":
		return listAccounts(ctx, gateway, format, noColor, cmd)
	case "projects":
		return listProjects(ctx, gateway, format, noColor, cmd)
	case "clusters":
		return listClusters(ctx, gateway, format, noColor, cmd)
	case "contexts":
		return listContexts(kubecfg, format, noColor, cmd)
	default:
		return fmt.Errorf("unknown listing %q, expected accounts, projects, clusters, or contexts", args[0])
	}
}

func listAccounts(ctx context.Context, gateway *gcloud.Gateway, format string, noColor bool, cmd *cobra.Command) error {
	accounts, err := gateway.ListAccounts(ctx)
	if err != nil {
		return err
	}
	if format == "json" {
		return output.RenderJSON(cmd.OutOrStdout(), accounts)
	}
	rows := make([][]string, 0, len(accounts))
	for _, a := range accounts {
		rows = append(rows, []string{a.Account, a.Status})
	}
	output.RenderTable(cmd.OutOrStdout(), []string{"ACCOUNT", "STATUS"}, rows, noColor)
	return nil
}

func listProjects(ctx context.Context, gateway *gcloud.Gateway, format string, noColor bool, cmd *cobra.Command) error {
	projects, err := gateway.ListProjects(ctx)
	if err != nil {
		return err
	}
	if format == "json" {
		return output.RenderJSON(cmd.OutOrStdout(), projects)
	}
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		rows = append(rows, []string{p.ProjectID, p.Name})
	}
	output.RenderTable(cmd.OutOrStdout(), []string{"PROJECT ID", "NAME"}, rows, noColor)
	return nil
}

func listClusters(ctx context.Context, gateway *gcloud.Gateway, format string, noColor bool, cmd *cobra.Command) error {
	clusters, err := gateway.ListClusters(ctx)
	if err != nil {
		return err
	}
	if format == "json" {
		return output.RenderJSON(cmd.OutOrStdout(), clusters)
	}
	rows := make([][]string, 0, len(clusters))
	for _, c := range clusters {
		placement := "zonal"
		if c.Regional() {
			placement = "regional"
		}
		rows = append(rows, []string{c.Name, c.Place(), placement, c.Status})
	}
	output.RenderTable(cmd.OutOrStdout(), []string{"NAME", "LOCATION", "PLACEMENT", "STATUS"}, rows, noColor)
	return nil
}

func listContexts(kubecfg kube.ConfigAccess, format string, noColor bool, cmd *cobra.Command) error {
	contexts, err := kubecfg.ListContexts()
	if err != nil {
		return err
	}
	current, err := kubecfg.CurrentContext()
	if err != nil {
		current = ""
	}
	if format == "json" {
		return output.RenderJSON(cmd.OutOrStdout(), contexts)
	}
	rows := make([][]string, 0, len(contexts))
	for _, name := range contexts {
		active := ""
		if name == current {
			active = "*"
		}
		rows = append(rows, []string{active, name})
	}
	output.RenderTable(cmd.OutOrStdout(), []string{"CURRENT", "NAME"}, rows, noColor)
	return nil
}
