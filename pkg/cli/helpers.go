/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"
	"k8s.io/client-go/kubernetes"

	"github.com/NVIDIA/netpol-report/pkg/k8s/client"
	"github.com/NVIDIA/netpol-report/pkg/serializer"
)

// Flags shared by the cluster-facing commands.
var (
	kubeconfigFlag = &cli.StringFlag{
		Name:  "kubeconfig",
		Usage: "Path to kubeconfig file (default: $KUBECONFIG, then ~/.kube/config, then in-cluster)",
	}
	contextFlag = &cli.StringFlag{
		Name:  "context",
		Usage: "Kubeconfig context to use (default: the file's current context)",
	}
	outputFlag = &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "Output file path (default: stdout)",
	}
	formatFlag = &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"t"},
		Value:   string(serializer.FormatMarkdown),
		Usage:   "Output format (markdown, json, yaml)",
	}
)

// parseOutputFormat validates a format value from a flag or criteria file.
func parseOutputFormat(value string) (serializer.Format, error) {
	f := serializer.Format(value)
	if f.IsUnknown() {
		return "", fmt.Errorf("unknown output format: %q, valid formats are: markdown, json, yaml", value)
	}
	return f, nil
}

// buildClientSet creates the Kubernetes client from the command's kubeconfig
// and context flags.
func buildClientSet(cmd *cli.Command) (*kubernetes.Clientset, error) {
	clientSet, _, err := client.BuildKubeClient(cmd.String("kubeconfig"), cmd.String("context"))
	if err != nil {
		return nil, err
	}
	return clientSet, nil
}

// clusterLabel picks the best-effort cluster name for report headers: the
// --context flag when given, otherwise the kubeconfig's current context.
func clusterLabel(cmd *cli.Command) string {
	if name := cmd.String("context"); name != "" {
		return name
	}
	return client.CurrentContext(cmd.String("kubeconfig"))
}

func closeWriter(w *serializer.Writer) {
	if err := w.Close(); err != nil {
		slog.Warn("failed to close output writer", slog.String("error", err.Error()))
	}
}
