// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build !windows

package platform_test

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/janderssonse/freshstart/internal/adapters/platform"
	"github.com/janderssonse/freshstart/internal/console"
)

func quietRunner() *platform.CommandRunner {
	return platform.NewCommandRunner(console.New(&bytes.Buffer{}))
}

func TestCommandRunner_ExecuteWithOutput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		cmd        string
		args       []string
		wantOutput string
		wantErr    bool
	}{
		{
			name:       "capture echo output",
			cmd:        "echo",
			args:       []string{"test output"},
			wantOutput: "test output",
		},
		{
			name:       "capture multiline output",
			cmd:        "sh",
			args:       []string{"-c", "echo line1; echo line2"},
			wantOutput: "line1\nline2",
		},
		{
			name:    "command not found",
			cmd:     "nonexistent_command_xyz",
			wantErr: true,
		},
		{
			name:    "non-zero exit",
			cmd:     "sh",
			args:    []string{"-c", "echo oops >&2; exit 1"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			output, err := quietRunner().ExecuteWithOutput(context.Background(), tt.cmd, tt.args...)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantOutput, strings.TrimSpace(output))
			}
		})
	}
}

func TestCommandRunner_StderrInError(t *testing.T) {
	t.Parallel()

	_, err := quietRunner().ExecuteWithOutput(context.Background(), "sh", "-c", "echo broken db >&2; exit 2")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken db")
}

func TestCommandRunner_VerboseEcho(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer

	out := console.New(&buf)
	out.SetMode(true, true)

	_, err := platform.NewCommandRunner(out).ExecuteWithOutput(context.Background(), "echo", "hi")

	require.NoError(t, err)
	assert.Equal(t, "Executing (with output): echo hi\n", buf.String())
}

func TestCommandRunner_ContextCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := quietRunner().ExecuteWithOutput(ctx, "sleep", "10")

	require.Error(t, err, "cancelled command should return error")
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestCommandRunner_CommandExists(t *testing.T) {
	t.Parallel()

	cr := quietRunner()

	tests := []struct {
		name   string
		cmd    string
		expect bool
	}{
		{"echo exists", "echo", true},
		{"sh exists", "sh", true},
		{"nonexistent command", "nonexistent_xyz", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expect, cr.CommandExists(tt.cmd))
		})
	}
}
