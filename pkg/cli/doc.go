/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the command-line interface for the npolctl tool.
//
// # Commands
//
// report - Generate a NetworkPolicy report:
//
//	npolctl report [--namespace NS]... [--output FILE] [--format markdown|json|yaml]
//	npolctl report --criteria criteria.yaml
//
// Collects NetworkPolicy objects from the configured cluster and renders a
// Markdown report with per-policy detail and aggregate statistics. JSON and
// YAML formats emit the collected policy model instead of the rendered
// document.
//
// pods - Inventory pods across namespaces:
//
//	npolctl pods [--namespace NS] [--since 12h] [--output FILE]
//
// deployments - Inventory deployments across namespaces:
//
//	npolctl deployments [--namespace NS] [--output FILE]
//
// resources - Report pod CPU and memory requests and limits:
//
//	npolctl resources [--namespace NS] [--output FILE]
//
// Sums each pod's container requests and limits and renders per-pod rows
// with cluster-wide totals. Values come from pod specs, not a metrics-server.
//
// check - Verify cluster reachability:
//
//	npolctl check
//
// Exits non-zero when the API server cannot be reached, for use in scripts
// and pipelines.
//
// # Criteria File Mode
//
// The --criteria/-c flag of the report command reads parameters from a
// Kubernetes-style resource file instead of individual flags:
//
//	kind: reportCriteria
//	apiVersion: npolctl.nvidia.com/v1alpha1
//	metadata:
//	  name: prod-weekly
//	spec:
//	  namespaces: [prod, staging]
//	  cluster: prod-east
//	  output: netpol-report.md
//
// Individual CLI flags override criteria file values.
//
// # Global Flags
//
//	--debug      Enable debug logging
//	--log-json   Output logs in JSON format
//
// # Environment Variables
//
//	LOG_LEVEL    Set logging verbosity (debug, info, warn, error)
//	KUBECONFIG   Path to kubeconfig file
//
// # Exit Codes
//
//	0  Success
//	1  General error (invalid arguments, unreachable cluster, execution failure)
//	2  Context canceled or timeout
package cli
