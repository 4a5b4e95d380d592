// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package domain_test

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/janderssonse/freshstart/internal/domain"
)

func TestExitErrorFormatting(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name            string
		exitError       *domain.ExitError
		expectedCode    int
		expectedMessage string
	}{
		{
			name:            "exit error with underlying error",
			exitError:       domain.NewExitError(1, "Operation failed", errors.New("permission denied")),
			expectedCode:    1,
			expectedMessage: "Operation failed: permission denied",
		},
		{
			name:            "exit error without underlying error",
			exitError:       domain.NewExitError(2, "Invalid configuration", nil),
			expectedCode:    2,
			expectedMessage: "Invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expectedCode, tt.exitError.Code)
			assert.Equal(t, tt.expectedMessage, tt.exitError.Error())
		})
	}
}

func TestExitErrorUnwrap(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("outer: %w", domain.NewExitError(2, "Interactive mode requires a terminal", domain.ErrTerminalRequired))

	var exitErr *domain.ExitError
	assert.ErrorAs(t, err, &exitErr)
	assert.ErrorIs(t, err, domain.ErrTerminalRequired)
}

func TestGetErrorInfo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		err     error
		message string
		suggest bool
	}{
		{"elevation sentinel", fmt.Errorf("launch: %w", domain.ErrElevationCancelled), "Elevation was cancelled", true},
		{"elevation text", errors.New("The operation was canceled by the user."), "Elevation was cancelled", true},
		{"missing executable", fmt.Errorf("msiexec: %w", exec.ErrNotFound), "Executable not found", true},
		{"missing file", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrNotExist}, "Executable not found", true},
		{"permission sentinel", fmt.Errorf("run: %w", domain.ErrPermissionDenied), "Permission denied", true},
		{"access denied text", errors.New("Access is denied."), "Permission denied", true},
		{"unknown", errors.New("boom"), "Could not start the program", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			info := domain.GetErrorInfo(tt.err, false)

			assert.Equal(t, tt.message, info.Message)
			assert.Equal(t, tt.suggest, info.Suggestion != "")
		})
	}
}

func TestGetErrorInfoNil(t *testing.T) {
	t.Parallel()

	assert.Equal(t, domain.ErrorInfo{}, domain.GetErrorInfo(nil, true))
}

func TestFormatLaunchError(t *testing.T) {
	t.Parallel()

	notFound := fmt.Errorf("uninstall.exe: %w", domain.ErrExecutableNotFound)

	tests := []struct {
		name     string
		err      error
		verbose  bool
		expected string
	}{
		{
			name:     "known error with suggestion",
			err:      notFound,
			expected: "Executable not found (The program may already have been removed)",
		},
		{
			name:     "known error verbose shows details",
			err:      notFound,
			verbose:  true,
			expected: "Executable not found: uninstall.exe: executable not found",
		},
		{
			name:     "unknown error always shows details",
			err:      errors.New("boom"),
			expected: "Could not start the program: boom",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, domain.FormatLaunchError(tt.err, tt.verbose))
		})
	}
}
