// Package policy collects NetworkPolicy objects from a cluster and hands
// them to the report builder as the in-memory model. Collection is the only
// place that talks to the policy-listing API; everything downstream is pure.
package policy

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/client-go/kubernetes"

	"github.com/NVIDIA/netpol-report/pkg/netpol"
)

// maxConcurrentLists bounds parallelism when listing an explicit set of
// namespaces.
const maxConcurrentLists = 4

// Collector lists NetworkPolicy objects. With an empty Namespaces list it
// issues a single all-namespaces call and keeps the API server's item order;
// with an explicit list it queries each namespace and returns results in the
// requested namespace order regardless of call completion order.
type Collector struct {
	ClientSet  kubernetes.Interface
	Namespaces []string

	// Limiter optionally paces per-namespace List calls. Nil means no
	// client-side pacing beyond client-go's own throttling.
	Limiter *rate.Limiter
}

// Collect retrieves and converts policies. The returned slice preserves
// collection order so the report's detail section mirrors the API response.
func (c *Collector) Collect(ctx context.Context) ([]netpol.NetworkPolicy, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(c.Namespaces) == 0 {
		list, err := c.ClientSet.NetworkingV1().NetworkPolicies(metav1.NamespaceAll).List(ctx, metav1.ListOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to list network policies: %w", err)
		}
		policies := netpol.FromAPIList(list)
		slog.Debug("collected network policies", slog.Int("count", len(policies)))
		return policies, nil
	}

	results := make([][]netpol.NetworkPolicy, len(c.Namespaces))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentLists)

	for i, ns := range c.Namespaces {
		g.Go(func() error {
			if c.Limiter != nil {
				if err := c.Limiter.Wait(gctx); err != nil {
					return err
				}
			}
			list, err := c.ClientSet.NetworkingV1().NetworkPolicies(ns).List(gctx, metav1.ListOptions{})
			if err != nil {
				return fmt.Errorf("failed to list network policies in namespace %q: %w", ns, err)
			}
			results[i] = netpol.FromAPIList(list)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var policies []netpol.NetworkPolicy
	for _, chunk := range results {
		policies = append(policies, chunk...)
	}
	slog.Debug("collected network policies",
		slog.Int("count", len(policies)),
		slog.Int("namespaces", len(c.Namespaces)))
	return policies, nil
}
