package report

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/NVIDIA/netpol-report/pkg/collector/resources"
)

// BuildResources renders the pod resource report: per-pod CPU and memory
// requests and limits summed over container specs, followed by phase counts
// and cluster-wide totals. Like Build it is pure and never fails.
func BuildResources(infos []resources.Info, opts Options) string {
	md := markdown.NewMarkdown(io.Discard)

	md.H1("Pod Resource Report")
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
				info.Phase,
				dashIfZero(info.CPURequest),
				dashIfZero(info.CPULimit),
				dashIfZero(info.MemoryRequest),
				dashIfZero(info.MemoryLimit),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Namespace", "Name", "Status", "CPU Req (m)", "CPU Lim (m)", "Mem Req (Mi)", "Mem Lim (Mi)"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	writePhaseCounts(md, infos)
	writeResourceTotals(md, infos)

	return md.String()
}

func writePhaseCounts(md *markdown.Markdown, infos []resources.Info) {
	counts := make(map[string]int)
	for _, info := range infos {
		counts[info.Phase]++
	}
	md.PlainText("Pods by status:")
	if len(counts) == 0 {
		return
	}

	phases := make([]string, 0, len(counts))
	for phase := range counts {
		phases = append(phases, phase)
	}
	sort.Strings(phases)

	items := make([]string, 0, len(phases))
	for _, phase := range phases {
		items = append(items, fmt.Sprintf("%s: %d pod(s)", phase, counts[phase]))
	}
	md.BulletList(items...)
}

func writeResourceTotals(md *markdown.Markdown, infos []resources.Info) {
	var cpuReq, cpuLim, memReq, memLim int64
	for _, info := range infos {
		cpuReq += info.CPURequest
		cpuLim += info.CPULimit
		memReq += info.MemoryRequest
		memLim += info.MemoryLimit
	}

	md.PlainText("")
	md.PlainText("Cluster totals:")
	md.BulletList(
		fmt.Sprintf("CPU requests: %dm (%.2f cores)", cpuReq, float64(cpuReq)/1000),
		fmt.Sprintf("CPU limits: %dm (%.2f cores)", cpuLim, float64(cpuLim)/1000),
		fmt.Sprintf("Memory requests: %d Mi (%.2f Gi)", memReq, float64(memReq)/1024),
		fmt.Sprintf("Memory limits: %d Mi (%.2f Gi)", memLim, float64(memLim)/1024),
	)
}

// dashIfZero renders unset requirements the way resource listings usually
// do, so sparse clusters stay readable.
func dashIfZero(v int64) string {
	if v == 0 {
		return "-"
	}
	return strconv.FormatInt(v, 10)
}
