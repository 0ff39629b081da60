// Package cluster probes basic reachability of a cluster's API server.
package cluster

import (
	"context"
	"fmt"
	"log/slog"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/NVIDIA/netpol-report/pkg/k8s/client"
)

// Info summarizes the probe result.
type Info struct {
	Version  string
	Platform string
	Nodes    int
}

// Collector verifies the API server answers and gathers version and node
// count. A failed version call is classified onto the connectivity sentinel
// so callers can map it to an exit code.
type Collector struct {
	ClientSet kubernetes.Interface
}

// Collect probes the API server.
func (c *Collector) Collect(ctx context.Context) (*Info, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	serverVersion, err := c.ClientSet.Discovery().ServerVersion()
	if err != nil {
		return nil, fmt.Errorf("failed to reach API server: %w", client.Classify(err))
	}

	info := &Info{
		Version:  serverVersion.GitVersion,
		Platform: serverVersion.Platform,
	}

	nodes, err := c.ClientSet.CoreV1().Nodes().List(ctx, metav1.ListOptions{})
	if err != nil {
		// Version answered, so the cluster is reachable; node count is
		// best effort (it may be forbidden for restricted credentials).
		slog.Warn("failed to list nodes", slog.String("error", err.Error()))
		return info, nil
	}
	info.Nodes = len(nodes.Items)

	slog.Debug("probed cluster",
		slog.String("version", info.Version),
		slog.Int("nodes", info.Nodes))
	return info, nil
}
