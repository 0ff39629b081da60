// Package pods enumerates pods across a cluster for the pods inspection
// command.
package pods

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// Info is the subset of pod state the inspection report renders.
type Info struct {
	Namespace string
	Name      string
	Phase     string
	Ready     string
	Restarts  int32
	Node      string
	CreatedAt time.Time
}

// Collector lists pods, optionally restricted to those created within the
// Since window (the original use case was "pods created in the last 12
// hours"). Now is injectable for tests and defaults to time.Now.
type Collector struct {
	ClientSet kubernetes.Interface
	Namespace string
	Since     time.Duration
	Now       func() time.Time
}

// Collect retrieves pods in API order, filtered by the Since window when one
// is configured.
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

	now := time.Now()
	if c.Now != nil {
		now = c.Now()
	}
	cutoff := time.Time{}
	if c.Since > 0 {
		cutoff = now.Add(-c.Since)
	}

	infos := make([]Info, 0, len(list.Items))
	for i := range list.Items {
		pod := &list.Items[i]
		if !cutoff.IsZero() && pod.CreationTimestamp.Time.Before(cutoff) {
			continue
		}
		infos = append(infos, podInfo(pod))
	}

	slog.Debug("collected pods",
		slog.Int("count", len(infos)),
		slog.Int("total", len(list.Items)))
	return infos, nil
}

func podInfo(pod *corev1.Pod) Info {
	ready := 0
	restarts := int32(0)
	for _, status := range pod.Status.ContainerStatuses {
		if status.Ready {
			ready++
		}
		restarts += status.RestartCount
	}

	return Info{
		Namespace: pod.Namespace,
		Name:      pod.Name,
		Phase:     string(pod.Status.Phase),
		Ready:     fmt.Sprintf("%d/%d", ready, len(pod.Spec.Containers)),
		Restarts:  restarts,
		Node:      pod.Spec.NodeName,
		CreatedAt: pod.CreationTimestamp.Time,
	}
}
