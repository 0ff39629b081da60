/*
Copyright © 2025 NVIDIA Corporation
SPDX-License-Identifier: Apache-2.0
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "canceled", err: context.Canceled, want: 2},
		{name: "deadline exceeded", err: context.DeadlineExceeded, want: 2},
		{name: "wrapped canceled", err: fmt.Errorf("collect: %w", context.Canceled), want: 2},
		{name: "wrapped deadline", err: fmt.Errorf("collect: %w", context.DeadlineExceeded), want: 2},
		{name: "other error", err: errors.New("boom"), want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.err); got != tt.want {
				t.Errorf("exitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
