package kube

import (
	"path/filepath"
	"reflect"
	"testing"

	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

// writeTestKubeconfig writes a kubeconfig with the given contexts and
// points KUBECONFIG at it for the duration of the test.
func writeTestKubeconfig(t *testing.T, current string, contexts ...string) string {
	t.Helper()

	config := api.NewConfig()
	config.Clusters["test-cluster"] = &api.Cluster{Server: "https://127.0.0.1:6443"}
	config.AuthInfos["test-user"] = &api.AuthInfo{Token: "dummy"}
	for _, name := range contexts {
		config.Contexts[name] = &api.Context{Cluster: "test-cluster", AuthInfo: "test-user"}
	}
	config.CurrentContext = current

	path := filepath.Join(t.TempDir(), "kubeconfig")
	if err := clientcmd.WriteToFile(*config, path); err != nil {
		t.Fatalf("failed to write test kubeconfig: %v", err)
	}
	t.Setenv("KUBECONFIG", path)
	return path
}

func TestListContextsSorted(t *testing.T) {
	writeTestKubeconfig(t, "", "zeta", "alpha", "mid")

	names, err := ListContexts()
	if err != nil {
		t.Fatalf("ListContexts failed: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("expected %v, got %v", want, names)
	}
}

func TestCurrentContext(t *testing.T) {
	writeTestKubeconfig(t, "alpha", "alpha", "beta")

	current, err := CurrentContext()
	if err != nil {
		t.Fatalf("CurrentContext failed: %v", err)
	}
	if current != "alpha" {
		t.Errorf("expected current context 'alpha', got '%s'", current)
	}
}

func TestSwitchContext(t *testing.T) {
	writeTestKubeconfig(t, "alpha", "alpha", "beta")

	if err := SwitchContext("beta"); err != nil {
		t.Fatalf("SwitchContext failed: %v", err)
	}

	current, err := CurrentContext()
	if err != nil {
		t.Fatalf("CurrentContext failed: %v", err)
	}
	if current != "beta" {
		t.Errorf("expected current context 'beta' after switch, got '%s'", current)
	}
}

func TestSwitchContextUnknownName(t *testing.T) {
	writeTestKubeconfig(t, "alpha", "alpha")

	if err := SwitchContext("nonexistent"); err == nil {
		t.Error("expected error for unknown context name, got nil")
	}

	current, _ := CurrentContext()
	if current != "alpha" {
		t.Errorf("current context should be unchanged, got '%s'", current)
	}
}

func TestClearCurrentContext(t *testing.T) {
	writeTestKubeconfig(t, "alpha", "alpha", "beta")

	if err := ClearCurrentContext(); err != nil {
		t.Fatalf("ClearCurrentContext failed: %v", err)
	}

	current, err := CurrentContext()
	if err != nil {
		t.Fatalf("CurrentContext failed: %v", err)
	}
	if current != "" {
		t.Errorf("expected empty current context, got '%s'", current)
	}
}

func TestClearCurrentContextAlreadyUnset(t *testing.T) {
	writeTestKubeconfig(t, "", "alpha")

	if err := ClearCurrentContext(); err != nil {
		t.Fatalf("ClearCurrentContext on unset context failed: %v", err)
	}
}

func TestConfigAccessDelegates(t *testing.T) {
	writeTestKubeconfig(t, "alpha", "alpha", "beta")

	access := ConfigAccess{}

	names, err := access.ListContexts()
	if err != nil {
		t.Fatalf("ListContexts failed: %v", err)
	}
	if len(names) != 2 {
		t.Errorf("expected 2 contexts, got %d", len(names))
	}

	if err := access.SwitchContext("beta"); err != nil {
		t.Fatalf("SwitchContext failed: %v", err)
	}
	current, err := access.CurrentContext()
	if err != nil {
		t.Fatalf("CurrentContext failed: %v", err)
	}
	if current != "beta" {
		t.Errorf("expected 'beta', got '%s'", current)
	}
}
