// Package resources aggregates per-pod CPU and memory requests and limits
// for the resources inspection command.
package resources

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

const bytesPerMi = 1024 * 1024

// Info is the per-pod resource summary the report renders. CPU values are
// millicores, memory values are Mi; zero means the pod's containers declare
// nothing for that dimension.
type Info struct {
	Namespace     string
	Name          string
	Phase         string
	CPURequest    int64
	CPULimit      int64
	MemoryRequest int64
	MemoryLimit   int64
	CreatedAt     time.Time
}

// Collector lists pods and sums the resource requirements of their
// containers, across all namespaces by default.
type Collector struct {
	ClientSet kubernetes.Interface
	Namespace string
}

// Collect retrieves pods and aggregates their container requests and limits.
// Results are sorted by namespace then name so the report reads grouped.
func (c *Collector) Collect(ctx context.Context) ([]Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	namespace := c.Namespace
	if namespace == "" {
		namespace = metav1.NamespaceAll
	}
	list, err := c.ClientSet.CoreV1().Pods(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list pods: %w", err)
	}

	infos := make([]Info, 0, len(list.Items))
	for i := range list.Items {
		infos = append(infos, podResources(&list.Items[i]))
	}
	sort.Slice(infos, func(i, j int) bool {
		if infos[i].Namespace != infos[j].Namespace {
			return infos[i].Namespace < infos[j].Namespace
		}
		return infos[i].Name < infos[j].Name
	})

	slog.Debug("collected pod resources", slog.Int("count", len(infos)))
	return infos, nil
}

func podResources(pod *corev1.Pod) Info {
	info := Info{
		Namespace: pod.Namespace,
		Name:      pod.Name,
		Phase:     string(pod.Status.Phase),
		CreatedAt: pod.CreationTimestamp.Time,
	}

	for _, container := range pod.Spec.Containers {
		if cpu, ok := container.Resources.Requests[corev1.ResourceCPU]; ok {
			info.CPURequest += cpu.MilliValue()
		}
		if cpu, ok := container.Resources.Limits[corev1.ResourceCPU]; ok {
			info.CPULimit += cpu.MilliValue()
		}
		if mem, ok := container.Resources.Requests[corev1.ResourceMemory]; ok {
			info.MemoryRequest += mem.Value() / bytesPerMi
		}
		if mem, ok := container.Resources.Limits[corev1.ResourceMemory]; ok {
			info.MemoryLimit += mem.Value() / bytesPerMi
		}
	}
	return info
}
