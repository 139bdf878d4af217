package kube

import (
	"context"
	"fmt"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
	_ "k8s.io/client-go/plugin/pkg/client/auth" // auth providers (gcp, oidc, ...)
	"k8s.io/client-go/tools/clientcmd"
)

// NodeHealth summarizes node readiness of a cluster.
type NodeHealth struct {
	Ready int
	Total int
}

// ProbeNodes checks that the cluster behind the given kubeconfig
// context is reachable and counts its ready nodes. An empty context
// name uses the current context.
var ProbeNodes = func(ctx context.Context, contextName string) (NodeHealth, error) {
	loadingRules := clientcmd.NewDefaultClientConfigLoadingRules()
	configOverrides := &clientcmd.ConfigOverrides{}
	if contextName != "" {
		configOverrides.CurrentContext = contextName
	}
	kubeConfig := clientcmd.NewNonInteractiveDeferredLoadingClientConfig(loadingRules, configOverrides)

	restConfig, err := kubeConfig.ClientConfig()
	if err != nil {
		return NodeHealth{}, fmt.Errorf("failed to get Kubernetes client config for context '%s': %w", contextName, err)
	}

	clientset, err := kubernetes.NewForConfig(restConfig)
	if err != nil {
		return NodeHealth{}, fmt.Errorf("failed to create Kubernetes clientset for context '%s': %w", contextName, err)
	}

	nodes, err := clientset.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		return NodeHealth{}, fmt.Errorf("failed to list nodes for context '%s': %w", contextName, err)
	}

	health := NodeHealth{Total: len(nodes.Items)}
	for _, node := range nodes.Items {
		if nodeIsReady(node) {
			health.Ready++
		}
	}
	return health, nil
}

func nodeIsReady(node corev1.Node) bool {
	for _, cond := range node.Status.Conditions {
		if cond.Type == corev1.NodeReady {
			return cond.Status == corev1.ConditionTrue
		}
	}
	return false
}
