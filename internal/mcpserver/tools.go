package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"gcpctl/internal/gcloud"
)

func (s *Server) registerTools() {
	s.mcp.AddTool(mcp.NewTool("gcp_status",
		mcp.WithDescription("Get the currently active GCP account, project, and kubectl context"),
	), s.handleStatus)

	s.mcp.AddTool(mcp.NewTool("gcp_list_accounts",
		mcp.WithDescription("List authenticated GCP accounts"),
	), s.handleListAccounts)

	s.mcp.AddTool(mcp.NewTool("gcp_list_projects",
		mcp.WithDescription("List GCP projects accessible to the active account"),
	), s.handleListProjects)

	s.mcp.AddTool(mcp.NewTool("gcp_list_clusters",
		mcp.WithDescription("List GKE clusters in the active project"),
	), s.handleListClusters)

	s.mcp.AddTool(mcp.NewTool("gcp_list_contexts",
		mcp.WithDescription("List kubectl contexts from the kubeconfig"),
	), s.handleListContexts)

	s.mcp.AddTool(mcp.NewTool("gcp_switch_account",
		mcp.WithDescription("Set the active GCP account"),
		mcp.WithString("account",
			mcp.Required(),
			mcp.Description("Account email to activate"),
		),
	), s.handleSwitchAccount)

	s.mcp.AddTool(mcp.NewTool("gcp_switch_project",
		mcp.WithDescription("Set the active GCP project"),
		mcp.WithString("project",
			mcp.Required(),
			mcp.Description("Project ID to activate"),
		),
	), s.handleSwitchProject)

	s.mcp.AddTool(mcp.NewTool("gcp_get_credentials",
		mcp.WithDescription("Fetch kubeconfig credentials for a GKE cluster"),
		mcp.WithString("cluster",
			mcp.Required(),
			mcp.Description("Cluster name"),
		),
		mcp.WithString("location",
			mcp.Required(),
			mcp.Description("Cluster zone or region"),
		),
	), s.handleGetCredentials)

	s.mcp.AddTool(mcp.NewTool("gcp_switch_context",
		mcp.WithDescription("Switch the kubectl current-context"),
		mcp.WithString("context",
			mcp.Required(),
			mcp.Description("Context name to activate"),
		),
	), s.handleSwitchContext)
}

// jsonResult marshals v for the tool response.
func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to format result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

func (s *Server) handleStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	account, _ := s.gateway.ActiveAccount(ctx)
	project, _ := s.gateway.ActiveProject(ctx)
	kubeContext, _ := s.kube.CurrentContext()

	return jsonResult(map[string]string{
		"account":     account,
		"project":     project,
		"kubeContext": kubeContext,
	})
}

func (s *Server) handleListAccounts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	accounts, err := s.gateway.ListAccounts(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list accounts: %v", err)), nil
	}
	if len(accounts) == 0 {
		return mcp.NewToolResultText("No authenticated accounts"), nil
	}
	return jsonResult(accounts)
}

func (s *Server) handleListProjects(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects, err := s.gateway.ListProjects(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list projects: %v", err)), nil
	}
	if len(projects) == 0 {
		return mcp.NewToolResultText("No accessible projects"), nil
	}
	return jsonResult(projects)
}

func (s *Server) handleListClusters(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	clusters, err := s.gateway.ListClusters(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list clusters: %v", err)), nil
	}
	if len(clusters) == 0 {
		return mcp.NewToolResultText("No clusters in the active project"), nil
	}
	type clusterInfo struct {
		Name     string `json:"name"`
		Location string `json:"location"`
		Status   string `json:"status"`
		Regional bool   `json:"regional"`
	}
	infos := make([]clusterInfo, 0, len(clusters))
	for _, c := range clusters {
		infos = append(infos, clusterInfo{
			Name:     c.Name,
			Location: c.Place(),
			Status:   c.Status,
			Regional: c.Regional(),
		})
	}
	return jsonResult(infos)
}

func (s *Server) handleListContexts(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	contexts, err := s.kube.ListContexts()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to list contexts: %v", err)), nil
	}
	if len(contexts) == 0 {
		return mcp.NewToolResultText("No kubectl contexts"), nil
	}
	return jsonResult(contexts)
}

func (s *Server) handleSwitchAccount(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	account, err := request.RequireString("account")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.gateway.SetActiveAccount(ctx, account); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to switch account: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Active account set to %s", account)), nil
}

func (s *Server) handleSwitchProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	project, err := request.RequireString("project")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.gateway.SetActiveProject(ctx, project); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to switch project: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Active project set to %s", project)), nil
}

func (s *Server) handleGetCredentials(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cluster, err := request.RequireString("cluster")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	location, err := request.RequireString("location")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	regional := gcloud.IsRegionalLocation(location)
	if err := s.gateway.FetchClusterCredentials(ctx, cluster, location, regional); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to fetch credentials: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("Credentials fetched for %s (%s)", cluster, location)), nil
}

func (s *Server) handleSwitchContext(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := request.RequireString("context")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if err := s.kube.SwitchContext(name); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to switch context: %v", err)), nil
	}
	return mcp.NewToolResultText(fmt.Sprintf("kubectl context set to %s", name)), nil
}
