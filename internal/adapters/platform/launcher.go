// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package platform

import (
	"context"
	"strings"

	"github.com/janderssonse/freshstart/internal/console"
	"github.com/janderssonse/freshstart/internal/domain"
)

// NewLauncher returns the elevated launcher of this platform, or a launcher
// that only prints the commands when dryRun is set.
func NewLauncher(dryRun bool, out *console.OutputState) domain.Launcher {
	if dryRun {
		return NewDryRunLauncher(out)
	}

	return newSystemLauncher()
}

// DryRunLauncher prints commands instead of running them.
type DryRunLauncher struct {
	out *console.OutputState
}

// NewDryRunLauncher creates a dry-run launcher reporting through out.
func NewDryRunLauncher(out *console.OutputState) *DryRunLauncher {
	return &DryRunLauncher{out: out}
}

// Launch prints the command and reports success.
func (l *DryRunLauncher) Launch(_ context.Context, exe, args string) (int, error) {
	l.out.Mutedf("  DRY RUN: %s", strings.TrimSpace(exe+" "+args))

	return 0, nil
}
