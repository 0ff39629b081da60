package resources

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	fakeclient "k8s.io/client-go/kubernetes/fake"
)

func newPod(name, namespace string, containers ...corev1.Container) *corev1.Pod {
	return &corev1.Pod{
		ObjectMeta: metav1.ObjectMeta{Name: name, Namespace: namespace},
		Spec:       corev1.PodSpec{Containers: containers},
		Status:     corev1.PodStatus{Phase: corev1.PodRunning},
	}
}

func container(name, cpuReq, cpuLim, memReq, memLim string) corev1.Container {
	c := corev1.Container{
		Name: name,
		Resources: corev1.ResourceRequirements{
			Requests: corev1.ResourceList{},
			Limits:   corev1.ResourceList{},
		},
	}
	if cpuReq != "" {
		c.Resources.Requests[corev1.ResourceCPU] = resource.MustParse(cpuReq)
	}
	if cpuLim != "" {
		c.Resources.Limits[corev1.ResourceCPU] = resource.MustParse(cpuLim)
	}
	if memReq != "" {
		c.Resources.Requests[corev1.ResourceMemory] = resource.MustParse(memReq)
	}
	if memLim != "" {
		c.Resources.Limits[corev1.ResourceMemory] = resource.MustParse(memLim)
	}
	return c
}

func TestCollector_SumsContainerResources(t *testing.T) {
	clientSet := fakeclient.NewClientset(
		newPod("web-0", "prod",
			container("main", "250m", "500m", "128Mi", "256Mi"),
			container("sidecar", "100m", "", "64Mi", "")),
	)
	collector := &Collector{ClientSet: clientSet}

	infos, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 1)

	info := infos[0]
	assert.Equal(t, "prod", info.Namespace)
	assert.Equal(t, "Running", info.Phase)
	assert.Equal(t, int64(350), info.CPURequest)
	assert.Equal(t, int64(500), info.CPULimit)
	assert.Equal(t, int64(192), info.MemoryRequest)
	assert.Equal(t, int64(256), info.MemoryLimit)
}

func TestCollector_WholeCoreAndGiUnits(t *testing.T) {
	clientSet := fakeclient.NewClientset(
		newPod("db-0", "prod", container("main", "2", "4", "1Gi", "2Gi")),
	)
	collector := &Collector{ClientSet: clientSet}

	infos, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 1)

	info := infos[0]
	assert.Equal(t, int64(2000), info.CPURequest)
	assert.Equal(t, int64(4000), info.CPULimit)
	assert.Equal(t, int64(1024), info.MemoryRequest)
	assert.Equal(t, int64(2048), info.MemoryLimit)
}

func TestCollector_NoRequirementsIsZero(t *testing.T) {
	clientSet := fakeclient.NewClientset(
		newPod("bare", "dev", corev1.Container{Name: "main"}),
	)
	collector := &Collector{ClientSet: clientSet}

	infos, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 1)

	info := infos[0]
	assert.Zero(t, info.CPURequest)
	assert.Zero(t, info.CPULimit)
	assert.Zero(t, info.MemoryRequest)
	assert.Zero(t, info.MemoryLimit)
}

func TestCollector_SortedByNamespaceThenName(t *testing.T) {
	clientSet := fakeclient.NewClientset(
		newPod("zeta", "prod", container("main", "100m", "", "", "")),
		newPod("alpha", "prod", container("main", "100m", "", "", "")),
		newPod("any", "dev", container("main", "100m", "", "", "")),
	)
	collector := &Collector{ClientSet: clientSet}

	infos, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 3)
	assert.Equal(t, "dev", infos[0].Namespace)
	assert.Equal(t, "alpha", infos[1].Name)
	assert.Equal(t, "zeta", infos[2].Name)
}

func TestCollector_NamespaceScoped(t *testing.T) {
	clientSet := fakeclient.NewClientset(
		newPod("a", "prod", container("main", "100m", "", "", "")),
		newPod("b", "dev", container("main", "100m", "", "", "")),
	)
	collector := &Collector{ClientSet: clientSet, Namespace: "dev"}

	infos, err := collector.Collect(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 1)
	assert.Equal(t, "b", infos[0].Name)
}

func TestCollector_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	collector := &Collector{ClientSet: fakeclient.NewClientset()}
	_, err := collector.Collect(ctx)
	assert.Equal(t, context.Canceled, err)
}
