package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"time"

	"github.com/nao1215/markdown"

	"github.com/NVIDIA/netpol-report/pkg/collector/deployments"
	"github.com/NVIDIA/netpol-report/pkg/collector/pods"
)

// BuildPods renders the pod inventory as Markdown. Like Build it is pure:
// the reference time for age calculation comes from the caller.
func BuildPods(infos []pods.Info, opts Options, now time.Time) string {
	md := markdown.NewMarkdown(io.Discard)

	md.H1("Pod Report")
	md.PlainText("")
	md.PlainText("Generated: " + opts.GeneratedAt)
	md.PlainText("Cluster: " + clusterOrUnknown(opts))
	md.PlainTextf("Total pods: %d", len(infos))
	md.PlainText("")

	if len(infos) > 0 {
		rows := make([][]string, 0, len(infos))
		for _, info := range infos {
			rows = append(rows, []string{
				info.Namespace,
				info.Name,
				info.Ready,
				info.Phase,
				strconv.FormatInt(int64(info.Restarts), 10),
				formatAge(now.Sub(info.CreatedAt)),
				info.Node,
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Namespace", "Name", "Ready", "Status", "Restarts", "Age", "Node"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.PlainText("Pods by namespace:")
	writeNamespaceCounts(md, podNamespaces(infos), "pod(s)")

	return md.String()
}

// BuildDeployments renders the deployment inventory as Markdown.
func BuildDeployments(infos []deployments.Info, opts Options, now time.Time) string {
	md := markdown.NewMarkdown(io.Discard)

	md.H1("Deployment Report")
	md.PlainText("")
	md.PlainText("Generated: " + opts.GeneratedAt)
	md.PlainText("Cluster: " + clusterOrUnknown(opts))
	md.PlainTextf("Total deployments: %d", len(infos))
	md.PlainText("")

	if len(infos) > 0 {
		rows := make([][]string, 0, len(infos))
		for _, info := range infos {
			rows = append(rows, []string{
				info.Namespace,
				info.Name,
				strconv.FormatInt(int64(info.Replicas), 10),
				strconv.FormatInt(int64(info.Ready), 10),
				strconv.FormatInt(int64(info.Available), 10),
				formatAge(now.Sub(info.CreatedAt)),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Namespace", "Name", "Replicas", "Ready", "Available", "Age"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	md.PlainText("Deployments by namespace:")
	counts := make(map[string]int)
	for _, info := range infos {
		counts[info.Namespace]++
	}
	writeNamespaceCounts(md, counts, "deployment(s)")

	return md.String()
}

func clusterOrUnknown(opts Options) string {
	if opts.Cluster == "" {
		return UnknownCluster
	}
	return opts.Cluster
}

func podNamespaces(infos []pods.Info) map[string]int {
	counts := make(map[string]int)
	for _, info := range infos {
		counts[info.Namespace]++
	}
	return counts
}

func writeNamespaceCounts(md *markdown.Markdown, counts map[string]int, noun string) {
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
		items = append(items, fmt.Sprintf("%s: %d %s", k, counts[k], noun))
	}
	md.BulletList(items...)
}

// formatAge buckets a duration the way kubectl-style listings do: days and
// hours, then hours and minutes, then minutes alone.
func formatAge(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	minutes := int(d.Minutes()) % 60
	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh", days, hours)
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	default:
		return fmt.Sprintf("%dm", minutes)
	}
}
