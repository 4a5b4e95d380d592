// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"context"
)

// Launcher defines the interface for starting external programs with elevated privileges.
// Implemented by platform adapters (ShellExecute on Windows, sudo elsewhere).
type Launcher interface {
	// Launch starts exe with the raw argument string, blocks until it exits and
	// returns its exit code. A non-nil error means the process never ran.
	Launch(ctx context.Context, exe, args string) (int, error)
}

// CommandRunner defines the interface for querying system commands.
type CommandRunner interface {
	// ExecuteWithOutput runs a command and returns its standard output.
	ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error)

	// CommandExists checks if a command is available on the system.
	CommandExists(name string) bool
}
