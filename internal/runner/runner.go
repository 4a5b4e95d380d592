// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

// Package runner executes confirmed install and uninstall batches.
package runner

import (
	"context"

	"github.com/janderssonse/freshstart/internal/console"
	"github.com/janderssonse/freshstart/internal/domain"
)

// Outcome classifies how one action ended.
type Outcome int

// Action outcomes.
const (
	Succeeded Outcome = iota
	MayHaveFailed
	Errored
	Skipped
)

func (o Outcome) String() string {
	switch o {
	case Succeeded:
		return "succeeded"
	case MayHaveFailed:
		return "may have failed"
	case Errored:
		return "error"
	case Skipped:
		return "skipped"
	default:
		return "unknown"
	}
}

// Result records the outcome of one action.
type Result struct {
	Label    string
	Outcome  Outcome
	ExitCode int
	Err      error
}

// Summary holds the per-item results of a batch, in run order.
type Summary struct {
	Results []Result
}

// Count returns how many results ended with outcome.
func (s Summary) Count(outcome Outcome) int {
	count := 0

	for _, result := range s.Results {
		if result.Outcome == outcome {
			count++
		}
	}

	return count
}

// Runner launches actions one at a time and reports each outcome.
type Runner struct {
	launcher domain.Launcher
	out      *console.OutputState
}

// New creates a runner launching through launcher and reporting to out.
func New(launcher domain.Launcher, out *console.OutputState) *Runner {
	return &Runner{launcher: launcher, out: out}
}

// Run executes every action in order. A failed item never stops the batch.
func (r *Runner) Run(ctx context.Context, actions []Action) Summary {
	summary := Summary{Results: make([]Result, 0, len(actions))}

	for _, action := range actions {
		summary.Results = append(summary.Results, r.runOne(ctx, action))
	}

	r.out.Progressf("%d succeeded, %d may have failed, %d errors, %d skipped",
		summary.Count(Succeeded), summary.Count(MayHaveFailed),
		summary.Count(Errored), summary.Count(Skipped))

	return summary
}

func (r *Runner) runOne(ctx context.Context, action Action) Result {
	result := Result{Label: action.Label}

	r.out.Stepf("%s", action.Label)

	if action.Skipped() {
		r.out.Skippedf("No uninstall command, skipped.")

		result.Outcome = Skipped

		return result
	}

	r.out.Commandf(action.Executable, action.Args)

	code, err := r.launcher.Launch(ctx, action.Executable, action.Args)
	if err != nil {
		r.out.Errorf("%s", domain.FormatLaunchError(err, r.out.Verbose))

		result.Outcome = Errored
		result.Err = err

		return result
	}

	result.ExitCode = code

	if code != 0 {
		r.out.Warningf("Exit code %d, may have failed.", code)

		result.Outcome = MayHaveFailed

		return result
	}

	r.out.Successf("%s", action.SuccessText)

	result.Outcome = Succeeded

	return result
}
