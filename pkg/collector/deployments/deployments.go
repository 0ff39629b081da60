// Package deployments enumerates deployments across a cluster for the
// deployments inspection command.
package deployments

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"
)

// Info is the subset of deployment state the inspection report renders.
type Info struct {
	Namespace string
	Name      string
	Replicas  int32
	Ready     int32
	Available int32
	CreatedAt time.Time
}

// Collector lists deployments, across all namespaces by default.
type Collector struct {
	ClientSet kubernetes.Interface
	Namespace string
}

// Collect retrieves deployments in API order.
func (c *Collector) Collect(ctx context.Context) ([]Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	namespace := c.Namespace
	if namespace == "" {
		namespace = metav1.NamespaceAll
	}
	list, err := c.ClientSet.AppsV1().Deployments(namespace).List(ctx, metav1.ListOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}

	infos := make([]Info, 0, len(list.Items))
	for i := range list.Items {
		d := &list.Items[i]
		replicas := int32(0)
		if d.Spec.Replicas != nil {
			replicas = *d.Spec.Replicas
		}
		infos = append(infos, Info{
			Namespace: d.Namespace,
			Name:      d.Name,
			Replicas:  replicas,
			Ready:     d.Status.ReadyReplicas,
			Available: d.Status.AvailableReplicas,
			CreatedAt: d.CreationTimestamp.Time,
		})
	}

	slog.Debug("collected deployments", slog.Int("count", len(infos)))
	return infos, nil
}
