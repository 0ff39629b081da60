/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/netpol-report/pkg/collector/resources"
	"github.com/NVIDIA/netpol-report/pkg/k8s/client"
	"github.com/NVIDIA/netpol-report/pkg/report"
	"github.com/NVIDIA/netpol-report/pkg/serializer"
)

func resourcesCmd() *cli.Command {
	return &cli.Command{
		Name:                  "resources",
		EnableShellCompletion: true,
		Usage:                 "Report pod CPU and memory requests and limits",
		Description: `Sums the CPU and memory requests and limits declared by each pod's
containers and renders a per-pod table with per-status counts and
cluster-wide totals. Values come from pod specs; live usage would need a
metrics-server and is not queried.

# Examples

Resource report for the whole cluster:
  npolctl resources

One namespace, written to a file:
  npolctl resources -n prod -o resources.md`,
		Flags: []cli.Flag{
			kubeconfigFlag,
			contextFlag,
			&cli.StringFlag{
				Name:    "namespace",
				Aliases: []string{"n"},
				Usage:   "Restrict the report to one namespace (default: all namespaces)",
			},
			outputFlag,
		},
		Action: runResources,
	}
}

func runResources(ctx context.Context, cmd *cli.Command) error {
	clientSet, err := buildClientSet(cmd)
	if err != nil {
		return err
	}

	collector := &resources.Collector{
		ClientSet: clientSet,
		Namespace: cmd.String("namespace"),
	}
	infos, err := collector.Collect(ctx)
	if err != nil {
		return client.Classify(err)
	}

	writer, err := serializer.NewFileWriterOrStdout(serializer.FormatMarkdown, cmd.String("output"))
	if err != nil {
		return err
	}
	defer closeWriter(writer)

	doc := report.BuildResources(infos, report.Options{
		GeneratedAt: time.Now().UTC().Format(time.RFC3339),
		Cluster:     clusterLabel(cmd),
	})
	return writer.Serialize(doc)
}
