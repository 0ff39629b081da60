/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/netpol-report/pkg/collector/deployments"
	"github.com/NVIDIA/netpol-report/pkg/k8s/client"
	"github.com/NVIDIA/netpol-report/pkg/report"
	"github.com/NVIDIA/netpol-report/pkg/serializer"
)

func deploymentsCmd() *cli.Command {
	return &cli.Command{
		Name:                  "deployments",
		EnableShellCompletion: true,
		Usage:                 "Inventory deployments across namespaces",
		Description: `Lists deployments with replica, readiness and availability counts, plus a
per-namespace summary.

# Examples

All deployments in the cluster:
  npolctl deployments

Deployments in one namespace, written to a file:
  npolctl deployments -n prod -o deployments.md`,
		Flags: []cli.Flag{
			kubeconfigFlag,
			contextFlag,
			&cli.StringFlag{
				Name:    "namespace",
				Aliases: []string{"n"},
				Usage:   "Restrict the listing to one namespace (default: all namespaces)",
			},
			outputFlag,
		},
		Action: runDeployments,
	}
}

func runDeployments(ctx context.Context, cmd *cli.Command) error {
	clientSet, err := buildClientSet(cmd)
	if err != nil {
		return err
	}

	collector := &deployments.Collector{
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

	now := time.Now().UTC()
	doc := report.BuildDeployments(infos, report.Options{
		GeneratedAt: now.Format(time.RFC3339),
		Cluster:     clusterLabel(cmd),
	}, now)
	return writer.Serialize(doc)
}
