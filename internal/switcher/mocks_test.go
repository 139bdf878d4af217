package switcher

import (
	"context"
	"fmt"

	"gcpctl/internal/gcloud"
	"gcpctl/internal/selector"
)

// fakeGateway scripts gateway responses and records every call in
// order, so tests can assert which external operations ran.
type fakeGateway struct {
	accounts     [][]gcloud.Account // consumed per ListAccounts call
	projects     []gcloud.Project
	clusters     []gcloud.Cluster
	activeAcct   string
	activeProj   string
	listAcctErr  error
	listProjErr  error
	listClustErr error
	setAcctErr   error
	setProjErr   error
	loginErr     error
	fetchErr     error

	calls []string
}

func (f *fakeGateway) record(format string, args ...interface{}) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeGateway) ListAccounts(ctx context.Context) ([]gcloud.Account, error) {
	f.record("ListAccounts")
	if f.listAcctErr != nil {
		return nil, f.listAcctErr
	}
	if len(f.accounts) == 0 {
		return nil, nil
	}
	accounts := f.accounts[0]
	if len(f.accounts) > 1 {
		f.accounts = f.accounts[1:]
	}
	return accounts, nil
}

func (f *fakeGateway) SetActiveAccount(ctx context.Context, account string) error {
	f.record("SetActiveAccount(%s)", account)
	return f.setAcctErr
}

func (f *fakeGateway) TriggerLogin(ctx context.Context) error {
	f.record("TriggerLogin")
	return f.loginErr
}

func (f *fakeGateway) ListProjects(ctx context.Context) ([]gcloud.Project, error) {
	f.record("ListProjects")
	if f.listProjErr != nil {
		return nil, f.listProjErr
	}
	return f.projects, nil
}

func (f *fakeGateway) SetActiveProject(ctx context.Context, projectID string) error {
	f.record("SetActiveProject(%s)", projectID)
	return f.setProjErr
}

func (f *fakeGateway) ListClusters(ctx context.Context) ([]gcloud.Cluster, error) {
	f.record("ListClusters")
	if f.listClustErr != nil {
		return nil, f.listClustErr
	}
	return f.clusters, nil
}

func (f *fakeGateway) FetchClusterCredentials(ctx context.Context, name, location string, regional bool) error {
	f.record("FetchClusterCredentials(%s,%s,%v)", name, location, regional)
	return f.fetchErr
}

func (f *fakeGateway) ActiveAccount(ctx context.Context) (string, error) {
	return f.activeAcct, nil
}

func (f *fakeGateway) ActiveProject(ctx context.Context) (string, error) {
	return f.activeProj, nil
}

// fakeKube scripts the kubeconfig half of the boundary.
type fakeKube struct {
	contexts  []string
	current   string
	switchErr error
	listErr   error

	calls []string
}

func (f *fakeKube) ListContexts() ([]string, error) {
	f.calls = append(f.calls, "ListContexts")
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.contexts, nil
}

func (f *fakeKube) CurrentContext() (string, error) {
	return f.current, nil
}

func (f *fakeKube) SwitchContext(name string) error {
	f.calls = append(f.calls, "SwitchContext("+name+")")
	if f.switchErr != nil {
		return f.switchErr
	}
	f.current = name
	return nil
}

func (f *fakeKube) ClearCurrentContext() error {
	f.calls = append(f.calls, "ClearCurrentContext")
	f.current = ""
	return nil
}

// scriptedPrompter replays selections in order and records prompt
// titles. Selections beyond the script cancel.
type scriptedPrompter struct {
	selections []selector.SelectionResult
	titles     []string
	seen       [][]selector.Candidate
}

// choose resolves the next prompt with the candidate whose value
// matches.
func choose(value string) selector.SelectionResult {
	return selector.SelectionResult{
		Kind:      selector.SelectionChosen,
		Candidate: selector.Candidate{Label: value, Value: value},
	}
}

var cancelled = selector.SelectionResult{Kind: selector.SelectionCancelled}

func (p *scriptedPrompter) prompt(title string, items []selector.Candidate, current string) (selector.SelectionResult, error) {
	p.titles = append(p.titles, title)
	p.seen = append(p.seen, items)
	if len(p.selections) == 0 {
		return cancelled, nil
	}
	next := p.selections[0]
	p.selections = p.selections[1:]
	if next.Kind == selector.SelectionChosen {
		// Resolve against the real candidate so Value-derived lookups
		// (cluster location) work.
		for _, item := range items {
			if item.Value == next.Candidate.Value || item.Label == next.Candidate.Label {
				return selector.SelectionResult{Kind: selector.SelectionChosen, Candidate: item}, nil
			}
		}
	}
	return next, nil
}
