package gcloud

import (
	"context"
	"encoding/json"
	"sort"
	"strings"

	"gcpctl/pkg/logging"
)

// Account is one entry of `gcloud auth list`.
type Account struct {
	Account string `json:"account"`
	Status  string `json:"status"`
}

// Active reports whether this is the account gcloud currently uses.
func (a Account) Active() bool {
	return a.Status == "ACTIVE"
}

// Project is one entry of `gcloud projects list`.
type Project struct {
	ProjectID string `json:"projectId"`
	Name      string `json:"name"`
}

// Cluster is one entry of `gcloud container clusters list`. Older
// gcloud versions report the placement under "zone", newer ones under
// "location"; both are kept and Place resolves them.
type Cluster struct {
	Name     string `json:"name"`
	Zone     string `json:"zone"`
	Location string `json:"location"`
	Status   string `json:"status"`
}

// Place returns the cluster's zone or region.
func (c Cluster) Place() string {
	if c.Location != "" {
		return c.Location
	}
	return c.Zone
}

// Regional reports whether the cluster's placement is a region rather
// than a zone. Zones carry a trailing single-letter suffix
// ("us-east1-b"); regions do not ("us-east1").
func (c Cluster) Regional() bool {
	return IsRegionalLocation(c.Place())
}

// IsRegionalLocation distinguishes a GCP region from a zone by the
// trailing location segment.
func IsRegionalLocation(location string) bool {
	parts := strings.Split(location, "-")
	if len(parts) < 3 {
		return true
	}
	return len(parts[len(parts)-1]) > 1
}

// Gateway invokes the gcloud CLI and decodes its JSON output. It holds
// no state beyond the binary name; every operation is an independent
// external call with no retries.
type Gateway struct {
	runner Runner
	binary string
}

// NewGateway builds a Gateway around the given runner. An empty binary
// falls back to "gcloud" on PATH.
func NewGateway(runner Runner, binary string) *Gateway {
	if binary == "" {
		binary = "gcloud"
	}
	return &Gateway{runner: runner, binary: binary}
}

// decodeList decodes gcloud's --format=json output. Fully empty output
// is a valid empty listing; anything else must be well-formed JSON.
func decodeList(command string, out []byte, v interface{}) error {
	if len(strings.TrimSpace(string(out))) == 0 {
		return nil
	}
	if err := json.Unmarshal(out, v); err != nil {
		return &MalformedOutputError{Command: command, Err: err}
	}
	return nil
}

// ListAccounts returns the authenticated gcloud accounts.
func (g *Gateway) ListAccounts(ctx context.Context) ([]Account, error) {
	out, err := g.runner.Run(ctx, g.binary, "auth", "list", "--format=json")
	if err != nil {
		return nil, err
	}
	var accounts []Account
	if err := decodeList(g.binary+" auth list", out, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// SetActiveAccount makes the given account the active gcloud account.
func (g *Gateway) SetActiveAccount(ctx context.Context, account string) error {
	_, err := g.runner.Run(ctx, g.binary, "config", "set", "account", account)
	return err
}

// TriggerLogin runs the interactive `gcloud auth login` flow. It
// blocks until the browser flow finishes or the user cancels it.
func (g *Gateway) TriggerLogin(ctx context.Context) error {
	logging.Info("gcloud", "Opening browser for authentication...")
	return g.runner.RunInteractive(ctx, g.binary, "auth", "login")
}

// ListProjects returns the projects the active account can access,
// sorted by project ID.
func (g *Gateway) ListProjects(ctx context.Context) ([]Project, error) {
	out, err := g.runner.Run(ctx, g.binary, "projects", "list", "--format=json")
	if err != nil {
		return nil, err
	}
	var projects []Project
	if err := decodeList(g.binary+" projects list", out, &projects); err != nil {
		return nil, err
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].ProjectID < projects[j].ProjectID
	})
	return projects, nil
}

// SetActiveProject makes the given project the active gcloud project.
func (g *Gateway) SetActiveProject(ctx context.Context, projectID string) error {
	_, err := g.runner.Run(ctx, g.binary, "config", "set", "project", projectID)
	return err
}

// ListClusters returns the GKE clusters of the active project.
func (g *Gateway) ListClusters(ctx context.Context) ([]Cluster, error) {
	out, err := g.runner.Run(ctx, g.binary, "container", "clusters", "list", "--format=json")
	if err != nil {
		return nil, err
	}
	var clusters []Cluster
	if err := decodeList(g.binary+" container clusters list", out, &clusters); err != nil {
		return nil, err
	}
	return clusters, nil
}

// FetchClusterCredentials fetches kubeconfig credentials for the given
// cluster, which also sets the kubectl current-context.
func (g *Gateway) FetchClusterCredentials(ctx context.Context, name, location string, regional bool) error {
	locationFlag := "--zone"
	if regional {
		locationFlag = "--region"
	}
	_, err := g.runner.Run(ctx, g.binary, "container", "clusters", "get-credentials", name, locationFlag, location)
	return err
}

// ActiveAccount returns the account gcloud currently uses, or "" when
// none is configured.
func (g *Gateway) ActiveAccount(ctx context.Context) (string, error) {
	return g.configGetValue(ctx, "account")
}

// ActiveProject returns the project gcloud currently uses, or "" when
// none is configured.
func (g *Gateway) ActiveProject(ctx context.Context) (string, error) {
	return g.configGetValue(ctx, "project")
}

func (g *Gateway) configGetValue(ctx context.Context, key string) (string, error) {
	out, err := g.runner.Run(ctx, g.binary, "config", "get-value", key)
	if err != nil {
		return "", err
	}
	value := strings.TrimSpace(string(out))
	// gcloud prints "(unset)" for keys that have no value.
	if value == "(unset)" {
		value = ""
	}
	return value, nil
}
