package kube

// ConfigAccess bundles the kubeconfig operations behind a value type
// so callers can depend on an interface instead of package functions.
type ConfigAccess struct{}

func (ConfigAccess) ListContexts() ([]string, error) { return ListContexts() }

func (ConfigAccess) CurrentContext() (string, error) { return CurrentContext() }

func (ConfigAccess) SwitchContext(name string) error { return SwitchContext(name) }

func (ConfigAccess) ClearCurrentContext() error { return ClearCurrentContext() }
