package policy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	networkingv1 "k8s.io/api/networking/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	fakeclient "k8s.io/client-go/kubernetes/fake"
)

func newPolicy(name, namespace string) *networkingv1.NetworkPolicy {
	return &networkingv1.NetworkPolicy{
		ObjectMeta: metav1.ObjectMeta{
			Name:      name,
			Namespace: namespace,
		},
		Spec: networkingv1.NetworkPolicySpec{
			PolicyTypes: []networkingv1.PolicyType{networkingv1.PolicyTypeIngress},
		},
	}
}

func TestCollector_AllNamespaces(t *testing.T) {
	clientSet := fakeclient.NewClientset(
		newPolicy("deny-all", "prod"),
		newPolicy("allow-dns", "kube-system"),
	)
	collector := &Collector{ClientSet: clientSet}

	policies, err := collector.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, policies, 2)

	names := []string{policies[0].Name, policies[1].Name}
	assert.ElementsMatch(t, []string{"deny-all", "allow-dns"}, names)
	assert.Equal(t, []string{"Ingress"}, policies[0].PolicyTypes)
}

func TestCollector_EmptyCluster(t *testing.T) {
	collector := &Collector{ClientSet: fakeclient.NewClientset()}

	policies, err := collector.Collect(context.Background())
	require.NoError(t, err)
	assert.Empty(t, policies)
}

func TestCollector_ExplicitNamespaceOrder(t *testing.T) {
	clientSet := fakeclient.NewClientset(
		newPolicy("a-policy", "alpha"),
		newPolicy("b-policy", "beta"),
		newPolicy("c-policy", "gamma"),
	)
	// Requested order deliberately differs from lexicographic order; the
	// result must follow the request, not the store.
	collector := &Collector{
		ClientSet:  clientSet,
		Namespaces: []string{"gamma", "alpha"},
	}

	policies, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, policies, 2)
	assert.Equal(t, "c-policy", policies[0].Name)
	assert.Equal(t, "a-policy", policies[1].Name)
}

func TestCollector_MissingNamespaceIsEmptyNotError(t *testing.T) {
	collector := &Collector{
		ClientSet:  fakeclient.NewClientset(newPolicy("deny-all", "prod")),
		Namespaces: []string{"prod", "no-such-namespace"},
	}

	policies, err := collector.Collect(context.Background())
	require.NoError(t, err)
	assert.Len(t, policies, 1)
}

func TestCollector_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	collector := &Collector{ClientSet: fakeclient.NewClientset()}
	policies, err := collector.Collect(ctx)
	assert.Error(t, err)
	assert.Nil(t, policies)
	assert.Equal(t, context.Canceled, err)
}
