// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
)

// Common domain errors.
var (
	ErrLaunchFailed         = errors.New("launch failed")
	ErrPermissionDenied     = errors.New("permission denied")
	ErrElevationCancelled   = errors.New("elevation cancelled")
	ErrExecutableNotFound   = errors.New("executable not found")
	ErrSourceUnavailable    = errors.New("inventory source unavailable")
	ErrTerminalRequired     = errors.New("interactive mode requires a terminal")
	ErrUnknownInventoryRoot = errors.New("unknown inventory root")
)

// ExitError carries a process exit code to the CLI boundary.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// NewExitError creates an ExitError with the specified code and message.
func NewExitError(code int, message string, err error) *ExitError {
	return &ExitError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}

	return e.Message
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// ErrorInfo provides user-friendly error information.
type ErrorInfo struct {
	Message     string // User-friendly message
	Suggestion  string // Actionable suggestion, may be empty
	ShowDetails bool   // Whether to show technical details
}

type errorMatcher struct {
	targets  []error
	patterns []string
	info     ErrorInfo
}

func getErrorMatchers() []errorMatcher {
	return []errorMatcher{
		{
			targets:  []error{ErrElevationCancelled},
			patterns: []string{"cancelled by the user", "canceled by the user"},
			info: ErrorInfo{
				Message:    "Elevation was cancelled",
				Suggestion: "Accept the administrator prompt to continue",
			},
		},
		{
			targets:  []error{ErrExecutableNotFound, exec.ErrNotFound, fs.ErrNotExist},
			patterns: []string{"not found", "cannot find", "no such file"},
			info: ErrorInfo{
				Message:    "Executable not found",
				Suggestion: "The program may already have been removed",
			},
		},
		{
			targets:  []error{ErrPermissionDenied, fs.ErrPermission},
			patterns: []string{"permission", "denied", "access is denied"},
			info: ErrorInfo{
				Message:    "Permission denied",
				Suggestion: "Check that your user has admin privileges",
			},
		},
	}
}

// GetErrorInfo analyzes a launch error and returns user-friendly information.
func GetErrorInfo(err error, verbose bool) ErrorInfo {
	if err == nil {
		return ErrorInfo{}
	}

	errStr := strings.ToLower(err.Error())

	for _, matcher := range getErrorMatchers() {
		if matchesAny(err, errStr, matcher) {
			info := matcher.info
			info.ShowDetails = verbose

			return info
		}
	}

	// Unknown failures always carry the underlying text
	return ErrorInfo{
		Message:     "Could not start the program",
		ShowDetails: true,
	}
}

func matchesAny(err error, errStr string, matcher errorMatcher) bool {
	for _, target := range matcher.targets {
		if errors.Is(err, target) {
			return true
		}
	}

	for _, pattern := range matcher.patterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}

	return false
}

// FormatLaunchError formats a launch error for a single status line.
func FormatLaunchError(err error, verbose bool) string {
	info := GetErrorInfo(err, verbose)

	var result strings.Builder

	result.WriteString(info.Message)

	if info.ShowDetails && err != nil {
		result.WriteString(": ")
		result.WriteString(err.Error())
	}

	if info.Suggestion != "" && !verbose {
		result.WriteString(" (")
		result.WriteString(info.Suggestion)
		result.WriteString(")")
	}

	return result.String()
}
