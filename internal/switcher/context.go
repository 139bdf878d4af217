package switcher

// ClusterRef identifies a GKE cluster by name and placement.
type ClusterRef struct {
	Name     string
	Location string
	Regional bool
}

// SwitchContext accumulates the decisions of one orchestrator run.
// Each field is written by exactly one stage and never reset by a
// later one. It is created empty per run and discarded afterwards;
// the durable state lives in gcloud's and kubectl's own configuration.
type SwitchContext struct {
	Account     string
	Project     string
	Cluster     *ClusterRef
	KubeContext string
}
