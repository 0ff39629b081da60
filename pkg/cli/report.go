/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"
	"time"

	"github.com/urfave/cli/v3"
	"golang.org/x/time/rate"

	"github.com/NVIDIA/netpol-report/pkg/collector/cluster"
	"github.com/NVIDIA/netpol-report/pkg/collector/policy"
	"github.com/NVIDIA/netpol-report/pkg/k8s/client"
	"github.com/NVIDIA/netpol-report/pkg/report"
	"github.com/NVIDIA/netpol-report/pkg/serializer"
)

// listRate paces per-namespace List calls when an explicit namespace set is
// requested, so wide criteria files do not hammer the API server.
const (
	listRate  = rate.Limit(10)
	listBurst = 4
)

func reportCmd() *cli.Command {
	return &cli.Command{
		Name:                  "report",
		EnableShellCompletion: true,
		Usage:                 "Generate a NetworkPolicy report for a cluster",
		Description: `Collects NetworkPolicy objects from the configured cluster and renders a
Markdown report: one section per policy (selectors, policy types, ingress and
egress rules) followed by per-namespace and per-type statistics.

# Examples

Report on every namespace, written to stdout:
  npolctl report

Report on selected namespaces, written to a file:
  npolctl report -n prod -n staging -o netpol-report.md

Emit the collected policy model instead of the rendered document:
  npolctl report --format yaml

Drive the report from a criteria file, overriding its output path:
  npolctl report --criteria criteria.yaml -o /tmp/report.md`,
		Flags: []cli.Flag{
			kubeconfigFlag,
			contextFlag,
			&cli.StringSliceFlag{
				Name:    "namespace",
				Aliases: []string{"n"},
				Usage:   "Restrict the report to the given namespace (repeatable; default: all namespaces)",
			},
			&cli.StringFlag{
				Name:  "cluster-label",
				Usage: "Cluster name shown in the report header (default: current kubeconfig context)",
			},
			&cli.StringFlag{
				Name:    "criteria",
				Aliases: []string{"c"},
				Usage:   "Path to a reportCriteria YAML/JSON file; individual flags override file values",
			},
			outputFlag,
			formatFlag,
		},
		Action: runReport,
	}
}

// reportSettings is the merged view of criteria file and flags.
type reportSettings struct {
	Namespaces []string
	Cluster    string
	Output     string
	Format     serializer.Format
}

func runReport(ctx context.Context, cmd *cli.Command) error {
	settings, err := resolveReportSettings(cmd)
	if err != nil {
		return err
	}

	clientSet, err := buildClientSet(cmd)
	if err != nil {
		return err
	}

	// Fail before collecting anything if the cluster cannot be reached.
	probe := &cluster.Collector{ClientSet: clientSet}
	if _, err := probe.Collect(ctx); err != nil {
		return err
	}

	collector := &policy.Collector{
		ClientSet:  clientSet,
		Namespaces: settings.Namespaces,
		Limiter:    rate.NewLimiter(listRate, listBurst),
	}
	policies, err := collector.Collect(ctx)
	if err != nil {
		return client.Classify(err)
	}
	slog.Info("collected network policies", slog.Int("count", len(policies)))

	writer, err := serializer.NewFileWriterOrStdout(settings.Format, settings.Output)
	if err != nil {
		return err
	}
	defer closeWriter(writer)

	if settings.Format != serializer.FormatMarkdown {
		return writer.Serialize(policies)
	}

	doc := report.Build(policies, report.Options{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Cluster:     settings.Cluster,
	})
	return writer.Serialize(doc)
}

// resolveReportSettings loads the criteria file when one is given, then lets
// explicitly-set flags override its values.
func resolveReportSettings(cmd *cli.Command) (*reportSettings, error) {
	settings := &reportSettings{Format: serializer.FormatMarkdown}

	if path := cmd.String("criteria"); path != "" {
		criteria, err := report.LoadCriteria(path)
		if err != nil {
			return nil, err
		}
		slog.Debug("loaded report criteria",
			slog.String("path", path),
			slog.String("name", criteria.Metadata.Name))

		settings.Namespaces = criteria.Spec.Namespaces
		settings.Cluster = criteria.Spec.Cluster
		settings.Output = criteria.Spec.Output
		if criteria.Spec.Format != "" {
			format, err := parseOutputFormat(criteria.Spec.Format)
			if err != nil {
				return nil, err
			}
			settings.Format = format
		}
	}

	if namespaces := cmd.StringSlice("namespace"); len(namespaces) > 0 {
		settings.Namespaces = namespaces
	}
	if label := cmd.String("cluster-label"); label != "" {
		settings.Cluster = label
	}
	if output := cmd.String("output"); output != "" {
		settings.Output = output
	}
	if cmd.IsSet("format") {
		format, err := parseOutputFormat(cmd.String("format"))
		if err != nil {
			return nil, err
		}
		settings.Format = format
	}

	if settings.Cluster == "" {
		settings.Cluster = clusterLabel(cmd)
	}
	return settings, nil
}
