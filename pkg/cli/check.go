/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/netpol-report/pkg/collector/cluster"
)

func checkCmd() *cli.Command {
	return &cli.Command{
		Name:                  "check",
		EnableShellCompletion: true,
		Usage:                 "Verify the cluster API server is reachable",
		Description: `Probes the API server with the configured credentials and prints the
server version, platform and node count. Exits non-zero when the cluster
cannot be reached.`,
		Flags: []cli.Flag{
			kubeconfigFlag,
			contextFlag,
		},
		Action: runCheck,
	}
}

func runCheck(ctx context.Context, cmd *cli.Command) error {
	clientSet, err := buildClientSet(cmd)
	if err != nil {
		return err
	}

	collector := &cluster.Collector{ClientSet: clientSet}
	info, err := collector.Collect(ctx)
	if err != nil {
		return err
	}

	out := io.Writer(os.Stdout)
	if cmd.Writer != nil {
		out = cmd.Writer
	}
	fmt.Fprintln(out, "Cluster reachable")
	fmt.Fprintf(out, "Server version: %s\n", info.Version)
	fmt.Fprintf(out, "Platform: %s\n", info.Platform)
	fmt.Fprintf(out, "Nodes: %d\n", info.Nodes)
	return nil
}
