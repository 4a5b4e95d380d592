// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package runner_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/janderssonse/freshstart/internal/console"
	"github.com/janderssonse/freshstart/internal/domain"
	"github.com/janderssonse/freshstart/internal/runner"
	"github.com/janderssonse/freshstart/internal/testutil"
)

func plainOutput() (*console.OutputState, *bytes.Buffer) {
	var buf bytes.Buffer

	out := console.New(&buf)
	out.SetMode(false, true)

	return out, &buf
}

func TestRunClassifiesEveryOutcomeAndContinues(t *testing.T) {
	t.Parallel()

	launcher := &testutil.MockLauncher{}
	launcher.On("Launch", mock.Anything, "ok.exe", "/S").Return(0, nil).Once()
	launcher.On("Launch", mock.Anything, "warn.exe", "").Return(1603, nil).Once()
	launcher.On("Launch", mock.Anything, "gone.exe", "/S").
		Return(0, fmt.Errorf("%w: gone.exe", domain.ErrExecutableNotFound)).Once()
	launcher.On("Launch", mock.Anything, "last.exe", "").Return(0, nil).Once()

	out, buf := plainOutput()

	summary := runner.New(launcher, out).Run(context.Background(), []runner.Action{
		{Label: "Failing", Executable: "gone.exe", Args: "/S", SuccessText: "Uninstall succeeded."},
		{Label: "Ghost", NoCommand: true},
		{Label: "Good", Executable: "ok.exe", Args: "/S", SuccessText: "Uninstall succeeded."},
		{Label: "Shaky", Executable: "warn.exe", SuccessText: "Uninstall succeeded."},
		{Label: "Last", Executable: "last.exe", SuccessText: "Installed successfully."},
	})

	require.Len(t, summary.Results, 5)
	assert.Equal(t, runner.Errored, summary.Results[0].Outcome)
	require.ErrorIs(t, summary.Results[0].Err, domain.ErrExecutableNotFound)
	assert.Equal(t, runner.Skipped, summary.Results[1].Outcome)
	assert.Equal(t, runner.Succeeded, summary.Results[2].Outcome)
	assert.Equal(t, runner.MayHaveFailed, summary.Results[3].Outcome)
	assert.Equal(t, 1603, summary.Results[3].ExitCode)
	assert.Equal(t, runner.Succeeded, summary.Results[4].Outcome)

	assert.Equal(t, 2, summary.Count(runner.Succeeded))
	assert.Equal(t, 1, summary.Count(runner.MayHaveFailed))
	assert.Equal(t, 1, summary.Count(runner.Errored))
	assert.Equal(t, 1, summary.Count(runner.Skipped))

	launcher.AssertExpectations(t)
	launcher.AssertNumberOfCalls(t, "Launch", 4)

	expected := "Failing\n" +
		"  Running: gone.exe /S\n" +
		"  error: Executable not found (The program may already have been removed)\n" +
		"Ghost\n" +
		"  skipped: No uninstall command, skipped.\n" +
		"Good\n" +
		"  Running: ok.exe /S\n" +
		"  ok: Uninstall succeeded.\n" +
		"Shaky\n" +
		"  Running: warn.exe\n" +
		"  warning: Exit code 1603, may have failed.\n" +
		"Last\n" +
		"  Running: last.exe\n" +
		"  ok: Installed successfully.\n"
	assert.Equal(t, expected, buf.String())
}

func TestRunSkippedItemIsNeverLaunched(t *testing.T) {
	t.Parallel()

	launcher := &testutil.MockLauncher{}
	out, _ := plainOutput()

	actions := runner.NewUninstallStrategy().PlanAll([]domain.InstalledApp{
		{DisplayName: "No command"},
		{DisplayName: "Blank command", UninstallCommand: "  "},
	})

	summary := runner.New(launcher, out).Run(context.Background(), actions)

	assert.Equal(t, 2, summary.Count(runner.Skipped))
	launcher.AssertNotCalled(t, "Launch", mock.Anything, mock.Anything, mock.Anything)
}

func TestRunEmptyQuotedCommandIsLaunchedAndFails(t *testing.T) {
	t.Parallel()

	launcher := &testutil.MockLauncher{}
	launcher.On("Launch", mock.Anything, "", "").
		Return(0, fmt.Errorf("%w: empty path", domain.ErrExecutableNotFound)).Once()

	out, buf := plainOutput()

	actions := runner.NewUninstallStrategy().PlanAll([]domain.InstalledApp{
		{DisplayName: "Broken", UninstallCommand: `""`},
	})

	summary := runner.New(launcher, out).Run(context.Background(), actions)

	assert.Equal(t, 1, summary.Count(runner.Errored))
	assert.Zero(t, summary.Count(runner.Skipped))
	assert.Contains(t, buf.String(), "  error: Executable not found")
	assert.NotContains(t, buf.String(), "skipped:")
	launcher.AssertExpectations(t)
}

func TestRunLaunchErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		verbose  bool
		expected string
	}{
		{
			name:     "cancelled elevation",
			err:      domain.ErrElevationCancelled,
			expected: "  error: Elevation was cancelled (Accept the administrator prompt to continue)\n",
		},
		{
			name:     "lookup failure",
			err:      &exec.Error{Name: "winget", Err: exec.ErrNotFound},
			expected: "  error: Executable not found (The program may already have been removed)\n",
		},
		{
			name:     "unknown failure shows details",
			err:      errors.New("bad exe format"),
			expected: "  error: Could not start the program: bad exe format\n",
		},
		{
			name:     "verbose permission error shows details",
			err:      domain.ErrPermissionDenied,
			verbose:  true,
			expected: "  error: Permission denied: permission denied\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			launcher := &testutil.MockLauncher{}
			launcher.On("Launch", mock.Anything, "app.exe", "").Return(0, tt.err)

			var buf bytes.Buffer

			out := console.New(&buf)
			out.SetMode(tt.verbose, true)

			summary := runner.New(launcher, out).Run(context.Background(), []runner.Action{
				{Label: "App", Executable: "app.exe"},
			})

			assert.Equal(t, runner.Errored, summary.Results[0].Outcome)
			assert.Contains(t, buf.String(), tt.expected)
		})
	}
}

func TestRunVerbosePrintsSummary(t *testing.T) {
	t.Parallel()

	launcher := &testutil.MockLauncher{}
	launcher.On("Launch", mock.Anything, "winget", mock.Anything).Return(0, nil)

	var buf bytes.Buffer

	out := console.New(&buf)
	out.SetMode(true, true)

	runner.New(launcher, out).Run(context.Background(),
		runner.NewInstallStrategy("winget").PlanAll([]domain.InstallOption{{ID: "a", Name: "A"}}))

	assert.Contains(t, buf.String(), "1 succeeded, 0 may have failed, 0 errors, 0 skipped\n")
}

func TestOutcomeString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "succeeded", runner.Succeeded.String())
	assert.Equal(t, "may have failed", runner.MayHaveFailed.String())
	assert.Equal(t, "error", runner.Errored.String())
	assert.Equal(t, "skipped", runner.Skipped.String())
}
