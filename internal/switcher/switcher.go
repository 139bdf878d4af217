package switcher

import (
	"context"
	"fmt"

	"gcpctl/internal/gcloud"
	"gcpctl/internal/kube"
	"gcpctl/internal/selector"
	"gcpctl/pkg/logging"
)

// Stage is one step of the switch chain.
type Stage int

const (
	StageAccount Stage = iota
	StageProject
	StageCluster
	StageContext
)

func (s Stage) String() string {
	switch s {
	case StageAccount:
		return "account"
	case StageProject:
		return "project"
	case StageCluster:
		return "cluster"
	case StageContext:
		return "context"
	default:
		return "unknown"
	}
}

// Gateway is the gcloud half of the external boundary the orchestrator
// drives. Implemented by *gcloud.Gateway; narrowed here so tests can
// substitute a fake.
type Gateway interface {
	ListAccounts(ctx context.Context) ([]gcloud.Account, error)
	SetActiveAccount(ctx context.Context, account string) error
	TriggerLogin(ctx context.Context) error
	ListProjects(ctx context.Context) ([]gcloud.Project, error)
	SetActiveProject(ctx context.Context, projectID string) error
	ListClusters(ctx context.Context) ([]gcloud.Cluster, error)
	FetchClusterCredentials(ctx context.Context, name, location string, regional bool) error
	ActiveAccount(ctx context.Context) (string, error)
	ActiveProject(ctx context.Context) (string, error)
}

// KubeConfig is the kubectl-context half of the external boundary.
type KubeConfig interface {
	ListContexts() ([]string, error)
	CurrentContext() (string, error)
	SwitchContext(name string) error
	ClearCurrentContext() error
}

// Prompter presents candidates and blocks until the user chooses or
// cancels. current marks the entry that is active right now.
type Prompter func(title string, items []selector.Candidate, current string) (selector.SelectionResult, error)

// HealthProber verifies cluster reachability after a credentials
// fetch. An empty context name means the current kubeconfig context.
type HealthProber func(ctx context.Context, kubeContext string) (kube.NodeHealth, error)

// Orchestrator sequences the switch stages: list candidates, prompt,
// apply the choice, record it, advance. It owns a single SwitchContext
// for the duration of one Run and nothing else; there is no rollback
// of stages that already applied when a later stage fails.
type Orchestrator struct {
	gateway Gateway
	kube    KubeConfig
	prompt  Prompter
	probe   HealthProber // nil disables post-fetch verification
}

// New builds an orchestrator. probe may be nil.
func New(gateway Gateway, kubecfg KubeConfig, prompt Prompter, probe HealthProber) *Orchestrator {
	return &Orchestrator{
		gateway: gateway,
		kube:    kubecfg,
		prompt:  prompt,
		probe:   probe,
	}
}

// Run drives the chain from the entry stage. With chain false it stops
// after the entry stage completes. The returned SwitchContext is
// always non-nil; on error it holds the decisions made before the
// abort, for diagnostic display.
func (o *Orchestrator) Run(ctx context.Context, entry Stage, chain bool) (*SwitchContext, error) {
	sc := &SwitchContext{}
	for stage := entry; stage <= StageContext; stage++ {
		if err := o.runStage(ctx, stage, sc); err != nil {
			return sc, err
		}
		if !chain {
			break
		}
	}
	return sc, nil
}

// stageSpec captures what differs between stages; runStage supplies
// the shared algorithm.
type stageSpec struct {
	plural string
	title  string

	// list returns the candidates and the currently active value.
	list func(ctx context.Context) ([]selector.Candidate, string, error)
	// apply performs the stage's mutating call for the chosen entry.
	apply func(ctx context.Context, chosen selector.Candidate) error
	// record writes the chosen value into the SwitchContext.
	record func(sc *SwitchContext, chosen selector.Candidate)
	// onEmpty, when set, runs once on an empty listing. retry true
	// re-runs the listing; a returned error aborts immediately.
	onEmpty func(ctx context.Context) (retry bool, err error)
	// alwaysApply forces apply even when the choice equals the
	// currently active value.
	alwaysApply bool
}

func (o *Orchestrator) runStage(ctx context.Context, stage Stage, sc *SwitchContext) error {
	spec := o.stageSpec(stage)

	for attempt := 0; ; attempt++ {
		items, current, err := spec.list(ctx)
		if err != nil {
			return abort(stage, fmt.Sprintf("listing %s failed: %v", spec.plural, err), err)
		}

		if len(items) == 0 {
			if spec.onEmpty != nil && attempt == 0 {
				retry, emptyErr := spec.onEmpty(ctx)
				if emptyErr != nil {
					return emptyErr
				}
				if retry {
					continue
				}
			}
			return abort(stage, fmt.Sprintf("no %s available", spec.plural), ErrNoCandidates)
		}

		result, err := o.prompt(spec.title, items, current)
		if err != nil {
			return abort(stage, fmt.Sprintf("prompt failed: %v", err), err)
		}
		if result.Kind != selector.SelectionChosen {
			// SelectionEmpty cannot occur here since the listing was
			// non-empty; treat it like a cancellation if it does.
			return abort(stage, "cancelled by user", ErrUserCancelled)
		}

		chosen := result.Candidate
		if spec.alwaysApply || chosen.Value != current {
			if err := spec.apply(ctx, chosen); err != nil {
				return abort(stage, fmt.Sprintf("switching to %s failed: %v", chosen.Label, err), err)
			}
		} else {
			logging.Debug("switcher", "%s already set to %s, skipping apply", stage, chosen.Value)
		}

		spec.record(sc, chosen)
		logging.Info("switcher", "%s set to %s", stage, chosen.Label)
		return nil
	}
}

func (o *Orchestrator) stageSpec(stage Stage) stageSpec {
	switch stage {
	case StageAccount:
		return o.accountStage()
	case StageProject:
		return o.projectStage()
	case StageCluster:
		return o.clusterStage()
	default:
		return o.contextStage()
	}
}

func (o *Orchestrator) accountStage() stageSpec {
	return stageSpec{
		plural: "accounts",
		title:  "Select account",
		list: func(ctx context.Context) ([]selector.Candidate, string, error) {
			accounts, err := o.gateway.ListAccounts(ctx)
			if err != nil {
				return nil, "", err
			}
			items := make([]selector.Candidate, 0, len(accounts))
			current := ""
			for _, acc := range accounts {
				items = append(items, selector.Candidate{Label: acc.Account, Value: acc.Account})
				if acc.Active() {
					current = acc.Account
				}
			}
			return items, current, nil
		},
		apply: func(ctx context.Context, chosen selector.Candidate) error {
			return o.gateway.SetActiveAccount(ctx, chosen.Value)
		},
		record: func(sc *SwitchContext, chosen selector.Candidate) {
			sc.Account = chosen.Value
		},
		onEmpty: o.offerLogin,
	}
}

// offerLogin handles an empty account listing: offer the interactive
// gcloud login once, then have the caller retry the listing.
func (o *Orchestrator) offerLogin(ctx context.Context) (bool, error) {
	items := []selector.Candidate{
		{Label: "Log in with a new account", Value: "login"},
	}
	result, err := o.prompt("No authenticated accounts", items, "")
	if err != nil {
		return false, abort(StageAccount, fmt.Sprintf("prompt failed: %v", err), err)
	}
	if result.Kind != selector.SelectionChosen {
		return false, nil
	}
	if err := o.gateway.TriggerLogin(ctx); err != nil {
		return false, abort(StageAccount, fmt.Sprintf("login failed: %v", err), err)
	}
	return true, nil
}

func (o *Orchestrator) projectStage() stageSpec {
	return stageSpec{
		plural: "projects",
		title:  "Select project",
		list: func(ctx context.Context) ([]selector.Candidate, string, error) {
			projects, err := o.gateway.ListProjects(ctx)
			if err != nil {
				return nil, "", err
			}
			current, err := o.gateway.ActiveProject(ctx)
			if err != nil {
				logging.Debug("switcher", "could not read active project: %v", err)
				current = ""
			}
			items := make([]selector.Candidate, 0, len(projects))
			for _, p := range projects {
				secondary := ""
				if p.Name != "" && p.Name != p.ProjectID {
					secondary = p.Name
				}
				items = append(items, selector.Candidate{
					Label:     p.ProjectID,
					Value:     p.ProjectID,
					Secondary: secondary,
				})
			}
			return items, current, nil
		},
		apply: func(ctx context.Context, chosen selector.Candidate) error {
			return o.gateway.SetActiveProject(ctx, chosen.Value)
		},
		record: func(sc *SwitchContext, chosen selector.Candidate) {
			sc.Project = chosen.Value
		},
	}
}

func (o *Orchestrator) clusterStage() stageSpec {
	clustersByValue := make(map[string]gcloud.Cluster)

	return stageSpec{
		plural: "clusters",
		title:  "Select GKE cluster",
		list: func(ctx context.Context) ([]selector.Candidate, string, error) {
			clusters, err := o.gateway.ListClusters(ctx)
			if err != nil {
				return nil, "", err
			}
			items := make([]selector.Candidate, 0, len(clusters))
			for _, c := range clusters {
				value := c.Name + "/" + c.Place()
				clustersByValue[value] = c
				items = append(items, selector.Candidate{
					Label:     c.Name,
					Value:     value,
					Secondary: c.Place(),
				})
			}
			return items, "", nil
		},
		apply: func(ctx context.Context, chosen selector.Candidate) error {
			cluster := clustersByValue[chosen.Value]
			if err := o.gateway.FetchClusterCredentials(ctx, cluster.Name, cluster.Place(), cluster.Regional()); err != nil {
				return err
			}
			o.verifyCluster(ctx, cluster.Name)
			return nil
		},
		record: func(sc *SwitchContext, chosen selector.Candidate) {
			cluster := clustersByValue[chosen.Value]
			sc.Cluster = &ClusterRef{
				Name:     cluster.Name,
				Location: cluster.Place(),
				Regional: cluster.Regional(),
			}
		},
		onEmpty: func(ctx context.Context) (bool, error) {
			// A project without clusters leaves kubectl pointing at a
			// cluster from a previous project; drop the context.
			if err := o.kube.ClearCurrentContext(); err != nil {
				logging.Warn("switcher", "could not clear kubectl context: %v", err)
			}
			return false, nil
		},
		alwaysApply: true,
	}
}

// verifyCluster probes node readiness after a credentials fetch. It
// degrades to a warning and never fails the stage.
func (o *Orchestrator) verifyCluster(ctx context.Context, name string) {
	if o.probe == nil {
		return
	}
	health, err := o.probe(ctx, "")
	if err != nil {
		logging.Warn("switcher", "cluster %s not verified: %v", name, err)
		return
	}
	logging.Info("switcher", "cluster %s reachable, %d/%d nodes ready", name, health.Ready, health.Total)
}

func (o *Orchestrator) contextStage() stageSpec {
	return stageSpec{
		plural: "kubectl contexts",
		title:  "Select kubectl context",
		list: func(ctx context.Context) ([]selector.Candidate, string, error) {
			names, err := o.kube.ListContexts()
			if err != nil {
				return nil, "", err
			}
			current, err := o.kube.CurrentContext()
			if err != nil {
				logging.Debug("switcher", "could not read current context: %v", err)
				current = ""
			}
			items := make([]selector.Candidate, 0, len(names))
			for _, name := range names {
				items = append(items, selector.Candidate{Label: name, Value: name})
			}
			return items, current, nil
		},
		apply: func(ctx context.Context, chosen selector.Candidate) error {
			return o.kube.SwitchContext(chosen.Value)
		},
		record: func(sc *SwitchContext, chosen selector.Candidate) {
			sc.KubeContext = chosen.Value
		},
	}
}
