// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

// Package inventory enumerates the applications installed on the host.
package inventory

import (
	"context"
	"sort"
	"strings"

	"github.com/janderssonse/freshstart/internal/domain"
)

// Record is the small value set read for one installed program.
type Record struct {
	Name             string
	UninstallCommand string
}

// Entry pairs a record with the opaque key it was read from.
type Entry struct {
	Key    string
	Record Record
}

// Source is a host-specific installed-software store.
// Roots are walked in the order returned.
type Source interface {
	Roots() []string
	Entries(ctx context.Context, root string) ([]Entry, error)
}

// Reader scans a Source and produces the flat installed app list.
type Reader struct {
	source Source
}

// NewReader creates a reader over source.
func NewReader(source Source) *Reader {
	return &Reader{source: source}
}

// Installed returns the deduplicated, sorted list of installed apps.
// Roots that cannot be read are skipped.
func (r *Reader) Installed(ctx context.Context) []domain.InstalledApp {
	var entries []Entry

	for _, root := range r.source.Roots() {
		if ctx.Err() != nil {
			break
		}

		found, err := r.source.Entries(ctx, root)
		if err != nil {
			continue
		}

		entries = append(entries, found...)
	}

	return Collect(entries)
}

// Collect turns raw entries into InstalledApps. Blank names are dropped,
// duplicates by case-insensitive name keep the first occurrence, and the
// result is sorted case-insensitively by name.
func Collect(entries []Entry) []domain.InstalledApp {
	apps := make([]domain.InstalledApp, 0, len(entries))
	seen := make(map[string]struct{}, len(entries))

	for _, entry := range entries {
		name := strings.TrimSpace(entry.Record.Name)
		if name == "" {
			continue
		}

		key := strings.ToUpper(name)
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}

		apps = append(apps, domain.InstalledApp{
			DisplayName:      name,
			UninstallCommand: strings.TrimSpace(entry.Record.UninstallCommand),
		})
	}

	// Ordinal comparison of the uppercased names, so "_tool" sorts after "abc".
	sort.SliceStable(apps, func(i, j int) bool {
		return strings.ToUpper(apps[i].DisplayName) < strings.ToUpper(apps[j].DisplayName)
	})

	return apps
}
