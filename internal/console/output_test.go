// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newBuffered(plain, verbose bool) (*OutputState, *bytes.Buffer) {
	var buf bytes.Buffer

	out := New(&buf)
	out.SetMode(verbose, plain)

	return out, &buf
}

func TestOutputStateSetMode(t *testing.T) {
	t.Parallel()

	o := &OutputState{}

	o.SetMode(true, false)
	assert.True(t, o.Verbose)
	assert.False(t, o.Plain)

	o.SetMode(false, true)
	assert.False(t, o.Verbose)
	assert.True(t, o.Plain)
}

func TestItemLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		plain    bool
		write    func(o *OutputState)
		expected string
	}{
		{
			name:     "success with symbol",
			write:    func(o *OutputState) { o.Successf("Uninstall succeeded.") },
			expected: "  ✓ Uninstall succeeded.",
		},
		{
			name:     "success plain",
			plain:    true,
			write:    func(o *OutputState) { o.Successf("Installed successfully.") },
			expected: "  ok: Installed successfully.\n",
		},
		{
			name:     "warning with symbol",
			write:    func(o *OutputState) { o.Warningf("Exit code %d, may have failed.", 3) },
			expected: "  ✗ Exit code 3, may have failed.",
		},
		{
			name:     "warning plain",
			plain:    true,
			write:    func(o *OutputState) { o.Warningf("Exit code %d, may have failed.", 3) },
			expected: "  warning: Exit code 3, may have failed.\n",
		},
		{
			name:     "error",
			write:    func(o *OutputState) { o.Errorf("%s", "boom") },
			expected: "  Error: boom",
		},
		{
			name:     "error plain",
			plain:    true,
			write:    func(o *OutputState) { o.Errorf("%s", "boom") },
			expected: "  error: boom\n",
		},
		{
			name:     "skipped plain",
			plain:    true,
			write:    func(o *OutputState) { o.Skippedf("No uninstall command, skipped.") },
			expected: "  skipped: No uninstall command, skipped.\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			out, buf := newBuffered(tt.plain, false)
			tt.write(out)

			if tt.plain {
				assert.Equal(t, tt.expected, buf.String())
			} else {
				assert.Contains(t, buf.String(), tt.expected)
			}
		})
	}
}

func TestStepAndCommand(t *testing.T) {
	t.Parallel()

	out, buf := newBuffered(true, false)

	out.Stepf("%s", "Google Chrome")
	out.Commandf("winget", "install --id Google.Chrome")
	out.Commandf("setup.exe", "")

	assert.Equal(t,
		"Google Chrome\n  Running: winget install --id Google.Chrome\n  Running: setup.exe\n",
		buf.String())

	fancy, fancyBuf := newBuffered(false, false)
	fancy.Stepf("%s", "VLC")
	assert.Contains(t, fancyBuf.String(), "→ VLC")
}

func TestProgressfOnlyInVerbose(t *testing.T) {
	t.Parallel()

	quiet, quietBuf := newBuffered(true, false)
	quiet.Progressf("3 succeeded")
	assert.Empty(t, quietBuf.String())

	loud, loudBuf := newBuffered(true, true)
	loud.Progressf("%d succeeded", 3)
	assert.Equal(t, "3 succeeded\n", loudBuf.String())
}

func TestTitlesAndLists(t *testing.T) {
	t.Parallel()

	out, buf := newBuffered(true, false)

	out.Headerf("Welcome")
	out.Titlef(ToneDanger, "Remove")
	out.Noticef("Operation cancelled.")
	out.Mutedf("hint")
	out.PlainList([]string{"a", "b"})
	out.Println("done")

	assert.Equal(t, "Welcome\nRemove\nOperation cancelled.\nhint\na\nb\ndone\n", buf.String())
}

func TestClearSkipsNonTerminal(t *testing.T) {
	t.Parallel()

	out, buf := newBuffered(false, false)
	out.Clear()

	assert.Empty(t, buf.String())
}
