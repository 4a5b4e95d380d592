// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

package runner

import (
	"strings"
)

// SplitCommand splits a stored command line into executable and argument string.
// A leading double quote marks a quoted executable path; everything after the
// closing quote is the argument string. Otherwise the split is on the first space.
func SplitCommand(command string) (exe, args string) {
	command = strings.TrimSpace(command)

	if rest, ok := strings.CutPrefix(command, `"`); ok {
		if end := strings.Index(rest, `"`); end >= 0 {
			return rest[:end], strings.TrimSpace(rest[end+1:])
		}
	}

	exe, args, _ = strings.Cut(command, " ")

	return exe, strings.TrimSpace(args)
}

// baseName returns the file name of an executable path without a .exe suffix.
// Both path separators are accepted.
func baseName(exe string) string {
	if i := strings.LastIndexAny(exe, `\/`); i >= 0 {
		exe = exe[i+1:]
	}

	if len(exe) > len(".exe") && strings.EqualFold(exe[len(exe)-len(".exe"):], ".exe") {
		exe = exe[:len(exe)-len(".exe")]
	}

	return exe
}
