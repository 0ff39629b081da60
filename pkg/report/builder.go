// Package report renders collected NetworkPolicy data as a human-readable
// Markdown document. Build is a pure function over the in-memory policy
// list: it performs no I/O, samples no clocks and never fails, so callers
// can invoke it repeatedly and concurrently. Degenerate input renders as
// degenerate text rather than an error; partial output beats no output in a
// reporting tool.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/NVIDIA/netpol-report/pkg/netpol"
)

// UnknownCluster is the cluster label used when the caller could not
// determine one.
const UnknownCluster = "Unknown"

// Options carries the caller-supplied header fields. GeneratedAt is a
// preformatted timestamp; keeping the clock outside Build keeps the function
// deterministic and testable.
type Options struct {
	GeneratedAt string
	Cluster     string
}

// Build renders the full report: header, one section per policy in input
// order, and aggregate statistics. The input slice is never mutated and the
// detail section preserves the order in which policies were received.
func Build(policies []netpol.NetworkPolicy, opts Options) string {
	md := markdown.NewMarkdown(io.Discard)

	writeHeader(md, len(policies), opts)
	for i := range policies {
		writePolicy(md, &policies[i])
	}
	writeStatistics(md, policies)

	return md.String()
}

func writeHeader(md *markdown.Markdown, count int, opts Options) {
	cluster := opts.Cluster
	if cluster == "" {
		cluster = UnknownCluster
	}

	md.H1("NetworkPolicy Report")
	md.PlainText("")
	md.PlainText("Generated: " + opts.GeneratedAt)
	md.PlainText("Cluster: " + cluster)
	md.PlainTextf("Total policies: %d", count)
	md.PlainText("")
	md.HorizontalRule()
}

func writePolicy(md *markdown.Markdown, p *netpol.NetworkPolicy) {
	md.PlainText("")
	md.H2(fmt.Sprintf("%s (namespace: %s)", p.Name, p.Namespace))
	md.PlainText("")
	md.PlainText("Created: " + p.CreatedAt)

	if len(p.Labels) > 0 {
		md.PlainText("Labels: " + p.Labels.String())
	}

	if len(p.PodSelector) > 0 {
		md.PlainText("Pod Selector:")
		for _, pair := range p.PodSelector {
			md.PlainText("- " + pair.Key + ": " + pair.Value)
		}
	} else {
		md.PlainText("All pods in namespace")
	}

	md.PlainText("Policy Types: " + strings.Join(p.PolicyTypes, ", "))

	// A nil rule slice means the field was absent on the API object; the
	// block heading only appears when the field was present, even if the
	// rule list itself is empty.
	if p.IngressRules != nil {
		md.PlainText("")
		md.PlainText("Ingress Rules:")
		writeRules(md, p.IngressRules, "From", "All sources")
	}
	if p.EgressRules != nil {
		md.PlainText("")
		md.PlainText("Egress Rules:")
		writeRules(md, p.EgressRules, "To", "All destinations")
	}

	md.PlainText("")
	md.HorizontalRule()
}

func writeRules(md *markdown.Markdown, rules []netpol.Rule, direction, allPeers string) {
	for i, rule := range rules {
		md.PlainText("")
		md.PlainTextf("Rule %d:", i+1)

		if len(rule.Peers) == 0 {
			md.PlainText("  " + direction + ": " + allPeers)
		} else {
			md.PlainText("  " + direction + ":")
			for _, peer := range rule.Peers {
				writePeer(md, peer)
			}
		}

		if len(rule.Ports) == 0 {
			md.PlainText("  Ports: All ports")
		} else {
			md.PlainText("  Ports:")
			for _, port := range rule.Ports {
				md.PlainText("    " + formatPort(port))
			}
		}
	}
}

// writePeer emits one line per populated variant, in a fixed check order.
// API objects populate exactly one, but nothing is enforced here: a peer
// with several variants renders several lines, a peer with none renders
// nothing.
func writePeer(md *markdown.Markdown, peer netpol.Peer) {
	if peer.PodSelector != nil {
		md.PlainText("    Pod Selector: " + peer.PodSelector.String())
	}
	if peer.NamespaceSelector != nil {
		md.PlainText("    Namespace Selector: " + peer.NamespaceSelector.String())
	}
	if peer.IPBlock != nil {
		line := "    IP Block: " + peer.IPBlock.CIDR
		if len(peer.IPBlock.Except) > 0 {
			line += " (except: " + strings.Join(peer.IPBlock.Except, ", ") + ")"
		}
		md.PlainText(line)
	}
}

func formatPort(port netpol.PortSpec) string {
	if port.Port == "" {
		return port.Protocol
	}
	return port.Protocol + "/" + port.Port
}

// writeStatistics renders the aggregate tables. Unlike the detail section,
// groups are sorted lexicographically so the statistics are deterministic
// regardless of API ordering.
func writeStatistics(md *markdown.Markdown, policies []netpol.NetworkPolicy) {
	byNamespace := make(map[string]int)
	byType := make(map[string]int)
	for _, p := range policies {
		byNamespace[p.Namespace]++
		for _, t := range p.PolicyTypes {
			byType[t]++
		}
	}

	md.PlainText("")
	md.H2("Statistics")
	md.PlainText("")
	md.PlainText("Policies by namespace:")
	writeCountGroup(md, byNamespace)
	md.PlainText("")
	md.PlainText("Policies by type:")
	writeCountGroup(md, byType)
}

func writeCountGroup(md *markdown.Markdown, counts map[string]int) {
	if len(counts) == 0 {
		return
	}
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	items := make([]string, 0, len(keys))
	for _, k := range keys {
		items = append(items, fmt.Sprintf("%s: %d policies", k, counts[k]))
	}
	md.BulletList(items...)
}
