// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

// Package testutil holds testify mocks shared across package tests.
package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/janderssonse/freshstart/internal/inventory"
)

// MockCommandRunner is a mock implementation of CommandRunner port.
type MockCommandRunner struct {
	mock.Mock
}

// ExecuteWithOutput mocks command execution with output.
func (m *MockCommandRunner) ExecuteWithOutput(ctx context.Context, name string, args ...string) (string, error) {
	// Convert variadic args to interface slice for mock.Called
	callArgs := make([]any, 0, len(args)+2)

	callArgs = append(callArgs, ctx, name)
	for _, arg := range args {
		callArgs = append(callArgs, arg)
	}

	returnArgs := m.Called(callArgs...)

	return returnArgs.String(0), returnArgs.Error(1)
}

// CommandExists mocks checking if a command exists.
func (m *MockCommandRunner) CommandExists(name string) bool {
	args := m.Called(name)
	return args.Bool(0)
}

// MockLauncher is a mock implementation of the Launcher port.
type MockLauncher struct {
	mock.Mock
}

// Launch mocks an elevated process launch.
func (m *MockLauncher) Launch(ctx context.Context, exe, args string) (int, error) {
	returnArgs := m.Called(ctx, exe, args)
	return returnArgs.Int(0), returnArgs.Error(1)
}

// MockSource is a mock inventory source.
type MockSource struct {
	mock.Mock
}

// Roots mocks the root listing.
func (m *MockSource) Roots() []string {
	args := m.Called()
	if roots, ok := args.Get(0).([]string); ok {
		return roots
	}

	return nil
}

// Entries mocks reading one root.
func (m *MockSource) Entries(ctx context.Context, root string) ([]inventory.Entry, error) {
	args := m.Called(ctx, root)
	if result := args.Get(0); result != nil {
		entries, ok := result.([]inventory.Entry)
		if !ok {
			return nil, args.Error(1)
		}

		return entries, args.Error(1)
	}

	return nil, args.Error(1)
}
