/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/NVIDIA/netpol-report/pkg/logging"
	"github.com/NVIDIA/netpol-report/pkg/version"
)

// Root builds the npolctl command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name:                  "npolctl",
		Usage:                 "Kubernetes NetworkPolicy reporting and cluster inspection",
		Version:               version.Version(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
			&cli.BoolFlag{
				Name:  "log-json",
				Usage: "Output logs in JSON format",
			},
		},
		Before: setupLogging,
		Commands: []*cli.Command{
			reportCmd(),
			podsCmd(),
			deploymentsCmd(),
			resourcesCmd(),
			checkCmd(),
		},
	}
}

// setupLogging configures the default logger before any command runs and
// tags every record with a per-run id so overlapping invocations can be told
// apart in aggregated logs.
func setupLogging(ctx context.Context, cmd *cli.Command) (context.Context, error) {
	logging.Setup(cmd.Bool("debug"), cmd.Bool("log-json"))
	slog.SetDefault(slog.Default().With(slog.String("run_id", uuid.NewString())))
	return ctx, nil
}
