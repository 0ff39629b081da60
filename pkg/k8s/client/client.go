// Package client builds Kubernetes clients from the usual kubeconfig
// discovery chain and defines the error taxonomy the commands map onto exit
// codes.
package client

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/agnivade/levenshtein"
	"k8s.io/client-go/kubernetes"
	"k8s.io/client-go/rest"
	"k8s.io/client-go/tools/clientcmd"
	"k8s.io/client-go/util/homedir"
)

// maxSuggestDistance caps how far a context name may be from the input before
// a "did you mean" suggestion is considered noise.
const maxSuggestDistance = 3

// BuildKubeClient creates a Kubernetes client.
//
// kubeconfig may be empty, in which case discovery falls back to the
// KUBECONFIG environment variable, then ~/.kube/config, then the in-cluster
// service account. contextName selects a named kubeconfig context; empty
// means the file's current context.
func BuildKubeClient(kubeconfig, contextName string) (*kubernetes.Clientset, *rest.Config, error) {
	path := ResolveKubeconfig(kubeconfig)

	var config *rest.Config
	var err error
	if contextName == "" {
		config, err = clientcmd.BuildConfigFromFlags("", path)
	} else {
		config, err = buildConfigForContext(path, contextName)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrNoCredentials, err)
	}

	clientSet, err := kubernetes.NewForConfig(config)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create kubernetes client: %w", err)
	}

	return clientSet, config, nil
}

// ResolveKubeconfig applies the discovery chain for the kubeconfig path. An
// empty result means "use in-cluster configuration".
func ResolveKubeconfig(kubeconfig string) string {
	if kubeconfig != "" {
		return kubeconfig
	}
	if env := os.Getenv(clientcmd.RecommendedConfigPathEnvVar); env != "" {
		return env
	}
	path := filepath.Join(homedir.HomeDir(), ".kube", "config")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return ""
	}
	return path
}

// CurrentContext returns the kubeconfig's current context name, used as the
// best-effort cluster label in report headers. Returns an empty string when
// no kubeconfig is usable (e.g. in-cluster).
func CurrentContext(kubeconfig string) string {
	rules := loadingRules(ResolveKubeconfig(kubeconfig))
	raw, err := rules.Load()
	if err != nil {
		return ""
	}
	return raw.CurrentContext
}

func buildConfigForContext(path, contextName string) (*rest.Config, error) {
	rules := loadingRules(path)
	raw, err := rules.Load()
	if err != nil {
		return nil, err
	}

	if _, ok := raw.Contexts[contextName]; !ok {
		names := make([]string, 0, len(raw.Contexts))
		for name := range raw.Contexts {
			names = append(names, name)
		}
		if suggestion := closestName(contextName, names); suggestion != "" {
			return nil, fmt.Errorf("unknown context %q (did you mean %q?)", contextName, suggestion)
		}
		return nil, fmt.Errorf("unknown context %q", contextName)
	}

	overrides := &clientcmd.ConfigOverrides{CurrentContext: contextName}
	return clientcmd.NewNonInteractiveDeferredLoadingClientConfig(rules, overrides).ClientConfig()
}

func loadingRules(path string) *clientcmd.ClientConfigLoadingRules {
	rules := clientcmd.NewDefaultClientConfigLoadingRules()
	if path != "" {
		rules.ExplicitPath = path
	}
	return rules
}

// closestName picks the candidate with the smallest edit distance from name,
// or an empty string when nothing is close enough to be a plausible typo.
func closestName(name string, candidates []string) string {
	sort.Strings(candidates)

	best := ""
	bestDistance := maxSuggestDistance + 1
	for _, candidate := range candidates {
		if d := levenshtein.ComputeDistance(name, candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best
}
