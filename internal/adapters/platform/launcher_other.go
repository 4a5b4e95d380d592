// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build !windows

package platform

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/janderssonse/freshstart/internal/domain"
)

// SudoLauncher runs commands through sudo unless the process is already root.
type SudoLauncher struct {
	Elevate bool
	Stdin   io.Reader
	Stdout  io.Writer
	Stderr  io.Writer
}

func newSystemLauncher() domain.Launcher {
	return &SudoLauncher{
		Elevate: os.Geteuid() != 0,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Launch runs exe with args and waits for it to exit.
// The context is not used to stop a running program.
func (l *SudoLauncher) Launch(_ context.Context, exe, args string) (int, error) {
	path, err := exec.LookPath(exe)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", domain.ErrExecutableNotFound, exe, err)
	}

	name, argv := path, strings.Fields(args)
	if l.Elevate {
		name, argv = "sudo", append([]string{path}, argv...)
	}

	// #nosec G204 - Running the stored uninstall or install command is the purpose
	cmd := exec.Command(name, argv...) //nolint:noctx
	cmd.Stdin = l.Stdin
	cmd.Stdout = l.Stdout
	cmd.Stderr = l.Stderr

	err = cmd.Run()

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}

	if errors.Is(err, fs.ErrPermission) {
		return 0, fmt.Errorf("%w: %w", domain.ErrPermissionDenied, err)
	}

	if err != nil {
		return 0, fmt.Errorf("%w: %w", domain.ErrLaunchFailed, err)
	}

	return 0, nil
}
