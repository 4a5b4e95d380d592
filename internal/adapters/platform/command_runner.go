// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

// Package platform provides process execution and elevated launching for the host OS.
package platform

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/janderssonse/freshstart/internal/console"
)

// CommandRunner implements the CommandRunner port for real system commands.
// It only runs read-only queries, so it ignores dry-run mode.
type CommandRunner struct {
	out *console.OutputState
}

// NewCommandRunner creates a new command runner reporting through out.
func NewCommandRunner(out *console.OutputState) *CommandRunner {
	return &CommandRunner{out: out}
}

// ExecuteWithOutput runs a command and returns the output.
func (r *CommandRunner) ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error) {
	r.out.Progressf("Executing (with output): %s %s", name, strings.Join(args, " "))

	cmd := exec.CommandContext(ctx, name, args...)

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("command failed: %w (stderr: %s)", err, strings.TrimSpace(string(exitErr.Stderr)))
		}

		return "", fmt.Errorf("command failed: %w", err)
	}

	return string(output), nil
}

// CommandExists checks if a command is available on the system.
func (r *CommandRunner) CommandExists(name string) bool {
	_, err := exec.LookPath(name)

	return err == nil
}
