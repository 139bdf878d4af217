package kube

import (
	"fmt"
	"sort"

	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/tools/clientcmd/api"
)

// CurrentContext retrieves the name of the currently active Kubernetes
// context, or "" when none is set.
var CurrentContext = func() (string, error) {
	config, err := startingConfig()
	if err != nil {
		return "", err
	}
	return config.CurrentContext, nil
}

// ListContexts returns all context names known to the kubeconfig,
// sorted alphabetically for a stable listing.
var ListContexts = func() ([]string, error) {
	config, err := startingConfig()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(config.Contexts))
	for name := range config.Contexts {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// SwitchContext changes the active Kubernetes context to the specified
// context name and persists the change to the kubeconfig file.
var SwitchContext = func(contextName string) error {
	pathOptions := clientcmd.NewDefaultPathOptions()
	config, err := pathOptions.GetStartingConfig()
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	if _, exists := config.Contexts[contextName]; !exists {
		return fmt.Errorf("context '%s' does not exist in kubeconfig", contextName)
	}
	config.CurrentContext = contextName
	return writeConfig(pathOptions, config)
}

// ClearCurrentContext unsets the kubeconfig current-context. Used when
// the selected project has no clusters, so kubectl does not keep
// pointing at a cluster from a previous project.
var ClearCurrentContext = func() error {
	pathOptions := clientcmd.NewDefaultPathOptions()
	config, err := pathOptions.GetStartingConfig()
	if err != nil {
		return fmt.Errorf("failed to load kubeconfig: %w", err)
	}
	if config.CurrentContext == "" {
		return nil
	}
	config.CurrentContext = ""
	return writeConfig(pathOptions, config)
}

func startingConfig() (*api.Config, error) {
	pathOptions := clientcmd.NewDefaultPathOptions()
	if pathOptions == nil {
		return nil, fmt.Errorf("failed to get default kubeconfig path options")
	}
	config, err := pathOptions.GetStartingConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to get starting kubeconfig: %w", err)
	}
	return config, nil
}

func writeConfig(pathOptions *clientcmd.PathOptions, config *api.Config) error {
	kubeconfigFilePath := pathOptions.GetDefaultFilename()
	if pathOptions.IsExplicitFile() {
		kubeconfigFilePath = pathOptions.GetExplicitFile()
	}
	if err := clientcmd.WriteToFile(*config, kubeconfigFilePath); err != nil {
		return fmt.Errorf("failed to write updated kubeconfig to '%s': %w", kubeconfigFilePath, err)
	}
	return nil
}
