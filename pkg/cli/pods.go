/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/netpol-report/pkg/collector/pods"
	"github.com/NVIDIA/netpol-report/pkg/k8s/client"
	"github.com/NVIDIA/netpol-report/pkg/report"
	"github.com/NVIDIA/netpol-report/pkg/serializer"
)

func podsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "pods",
		EnableShellCompletion: true,
		Usage:                 "Inventory pods across namespaces",
		Description: `Lists pods with readiness, restarts, node placement and age.

# Examples

All pods in the cluster:
  npolctl pods

Pods created in the last 12 hours:
  npolctl pods --since 12h

Pods in one namespace, written to a file:
  npolctl pods -n prod -o pods.md`,
		Flags: []cli.Flag{
			kubeconfigFlag,
			contextFlag,
			&cli.StringFlag{
				Name:    "namespace",
				Aliases: []string{"n"},
				Usage:   "Restrict the listing to one namespace (default: all namespaces)",
			},
			&cli.DurationFlag{
				Name:  "since",
				Usage: "Only show pods created within this window (e.g. 12h)",
			},
			outputFlag,
		},
		Action: runPods,
	}
}

func runPods(ctx context.Context, cmd *cli.Command) error {
	clientSet, err := buildClientSet(cmd)
	if err != nil {
		return err
	}

	collector := &pods.Collector{
		ClientSet: clientSet,
		Namespace: cmd.String("namespace"),
		Since:     cmd.Duration("since"),
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

	now := time.Now().UTC()
	doc := report.BuildPods(infos, report.Options{
		GeneratedAt: now.Format(time.RFC3339),
		Cluster:     clusterLabel(cmd),
	}, now)
	return writer.Serialize(doc)
}
