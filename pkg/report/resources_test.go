package report

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/netpol-report/pkg/collector/resources"
)

func TestBuildResources(t *testing.T) {
	infos := []resources.Info{
		{
			Namespace:     "prod",
			Name:          "web-0",
			Phase:         "Running",
			CPURequest:    350,
			CPULimit:      500,
			MemoryRequest: 192,
			MemoryLimit:   256,
		},
		{
			Namespace:     "prod",
			Name:          "db-0",
			Phase:         "Running",
			CPURequest:    2000,
			MemoryRequest: 1024,
		},
		{
			Namespace: "dev",
			Name:      "bare",
			Phase:     "Pending",
		},
	}

	out := BuildResources(infos, testOpts)

	assert.Contains(t, out, "# Pod Resource Report")
	assert.Contains(t, out, "Cluster: test-cluster")
	assert.Contains(t, out, "Total pods: 3")
	assert.Contains(t, out, "web-0")

	assert.Contains(t, out, "- Pending: 1 pod(s)")
	assert.Contains(t, out, "- Running: 2 pod(s)")

	assert.Contains(t, out, "- CPU requests: 2350m (2.35 cores)")
	assert.Contains(t, out, "- CPU limits: 500m (0.50 cores)")
	assert.Contains(t, out, "- Memory requests: 1216 Mi (1.19 Gi)")
	assert.Contains(t, out, "- Memory limits: 256 Mi (0.25 Gi)")
}

func TestBuildResources_Empty(t *testing.T) {
	out := BuildResources(nil, Options{GeneratedAt: "now"})

	assert.Contains(t, out, "Total pods: 0")
	assert.Contains(t, out, "Cluster: Unknown")
	assert.NotContains(t, out, "|")
	assert.Contains(t, out, "Pods by status:")
	assert.NotContains(t, out, "Pods by status:\n-")
	assert.Contains(t, out, "- CPU requests: 0m (0.00 cores)")
}

func TestDashIfZero(t *testing.T) {
	assert.Equal(t, "-", dashIfZero(0))
	assert.Equal(t, "350", dashIfZero(350))
}
