package mcpserver

import (
	"context"
	"errors"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gcpctl/internal/gcloud"
)

type fakeGateway struct {
	accounts []gcloud.Account
	projects []gcloud.Project
	clusters []gcloud.Cluster

	activeAccount string
	activeProject string

	listErr error
	setErr  error

	calls []string
}

func (f *fakeGateway) ListAccounts(ctx context.Context) ([]gcloud.Account, error) {
	return f.accounts, f.listErr
}

func (f *fakeGateway) SetActiveAccount(ctx context.Context, account string) error {
	f.calls = append(f.calls, "SetActiveAccount("+account+")")
	return f.setErr
}

func (f *fakeGateway) TriggerLogin(ctx context.Context) error { return nil }

func (f *fakeGateway) ListProjects(ctx context.Context) ([]gcloud.Project, error) {
	return f.projects, f.listErr
}

func (f *fakeGateway) SetActiveProject(ctx context.Context, projectID string) error {
	f.calls = append(f.calls, "SetActiveProject("+projectID+")")
	return f.setErr
}

func (f *fakeGateway) ListClusters(ctx context.Context) ([]gcloud.Cluster, error) {
	return f.clusters, f.listErr
}

func (f *fakeGateway) FetchClusterCredentials(ctx context.Context, name, location string, regional bool) error {
	flag := "--zone"
	if regional {
		flag = "--region"
	}
	f.calls = append(f.calls, "FetchClusterCredentials("+name+" "+flag+" "+location+")")
	return f.setErr
}

func (f *fakeGateway) ActiveAccount(ctx context.Context) (string, error) {
	return f.activeAccount, nil
}

func (f *fakeGateway) ActiveProject(ctx context.Context) (string, error) {
	return f.activeProject, nil
}

type fakeKube struct {
	contexts []string
	current  string
	err      error

	calls []string
}

func (f *fakeKube) ListContexts() ([]string, error)  { return f.contexts, f.err }
func (f *fakeKube) CurrentContext() (string, error)  { return f.current, nil }
func (f *fakeKube) ClearCurrentContext() error       { return f.err }
func (f *fakeKube) SwitchContext(name string) error {
	f.calls = append(f.calls, "SwitchContext("+name+")")
	return f.err
}

func toolRequest(name string, args map[string]interface{}) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      name,
			Arguments: args,
		},
	}
}

func resultText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(mcp.TextContent)
	require.True(t, ok, "expected text content")
	return text.Text
}

func TestHandleStatus(t *testing.T) {
	gw := &fakeGateway{activeAccount: "a@x.com", activeProject: "proj-1"}
	kubecfg := &fakeKube{current: "gke_ctx"}
	s := New("test", gw, kubecfg)

	result, err := s.handleStatus(context.Background(), toolRequest("gcp_status", nil))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, "a@x.com")
	assert.Contains(t, text, "proj-1")
	assert.Contains(t, text, "gke_ctx")
}

func TestHandleListAccounts(t *testing.T) {
	gw := &fakeGateway{accounts: []gcloud.Account{{Account: "a@x.com", Status: "ACTIVE"}}}
	s := New("test", gw, &fakeKube{})

	result, err := s.handleListAccounts(context.Background(), toolRequest("gcp_list_accounts", nil))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Contains(t, resultText(t, result), "a@x.com")
}

func TestHandleListAccountsEmpty(t *testing.T) {
	s := New("test", &fakeGateway{}, &fakeKube{})

	result, err := s.handleListAccounts(context.Background(), toolRequest("gcp_list_accounts", nil))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, "No authenticated accounts", resultText(t, result))
}

func TestHandleListAccountsFailureIsToolError(t *testing.T) {
	gw := &fakeGateway{listErr: errors.New("gcloud exploded")}
	s := New("test", gw, &fakeKube{})

	result, err := s.handleListAccounts(context.Background(), toolRequest("gcp_list_accounts", nil))

	// Tool failures are reported in-band, never as a Go error.
	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "gcloud exploded")
}

func TestHandleListClustersResolvesPlacement(t *testing.T) {
	gw := &fakeGateway{clusters: []gcloud.Cluster{
		{Name: "prod", Location: "europe-west4", Status: "RUNNING"},
		{Name: "dev", Zone: "us-east1-b", Status: "RUNNING"},
	}}
	s := New("test", gw, &fakeKube{})

	result, err := s.handleListClusters(context.Background(), toolRequest("gcp_list_clusters", nil))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	text := resultText(t, result)
	assert.Contains(t, text, `"location": "europe-west4"`)
	assert.Contains(t, text, `"regional": true`)
	assert.Contains(t, text, `"location": "us-east1-b"`)
	assert.Contains(t, text, `"regional": false`)
}

func TestHandleSwitchAccount(t *testing.T) {
	gw := &fakeGateway{}
	s := New("test", gw, &fakeKube{})

	result, err := s.handleSwitchAccount(context.Background(),
		toolRequest("gcp_switch_account", map[string]interface{}{"account": "b@y.com"}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, []string{"SetActiveAccount(b@y.com)"}, gw.calls)
}

func TestHandleSwitchAccountMissingArgument(t *testing.T) {
	gw := &fakeGateway{}
	s := New("test", gw, &fakeKube{})

	result, err := s.handleSwitchAccount(context.Background(),
		toolRequest("gcp_switch_account", map[string]interface{}{}))

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Empty(t, gw.calls)
}

func TestHandleGetCredentialsInfersRegional(t *testing.T) {
	gw := &fakeGateway{}
	s := New("test", gw, &fakeKube{})

	result, err := s.handleGetCredentials(context.Background(),
		toolRequest("gcp_get_credentials", map[string]interface{}{
			"cluster":  "prod",
			"location": "europe-west4",
		}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, []string{"FetchClusterCredentials(prod --region europe-west4)"}, gw.calls)

	gw.calls = nil
	result, err = s.handleGetCredentials(context.Background(),
		toolRequest("gcp_get_credentials", map[string]interface{}{
			"cluster":  "dev",
			"location": "us-east1-b",
		}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, []string{"FetchClusterCredentials(dev --zone us-east1-b)"}, gw.calls)
}

func TestHandleSwitchContext(t *testing.T) {
	kubecfg := &fakeKube{contexts: []string{"ctx-a"}}
	s := New("test", &fakeGateway{}, kubecfg)

	result, err := s.handleSwitchContext(context.Background(),
		toolRequest("gcp_switch_context", map[string]interface{}{"context": "ctx-a"}))

	require.NoError(t, err)
	assert.False(t, result.IsError)
	assert.Equal(t, []string{"SwitchContext(ctx-a)"}, kubecfg.calls)
}

func TestHandleSwitchContextFailure(t *testing.T) {
	kubecfg := &fakeKube{err: errors.New("context 'nope' does not exist in kubeconfig")}
	s := New("test", &fakeGateway{}, kubecfg)

	result, err := s.handleSwitchContext(context.Background(),
		toolRequest("gcp_switch_context", map[string]interface{}{"context": "nope"}))

	require.NoError(t, err)
	assert.True(t, result.IsError)
	assert.Contains(t, resultText(t, result), "does not exist")
}
