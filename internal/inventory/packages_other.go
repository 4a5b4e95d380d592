// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

//go:build !windows

package inventory

import (
	"context"
	"fmt"

	"github.com/janderssonse/freshstart/internal/domain"
)

// packageSource reads installed packages from dpkg and flatpak.
type packageSource struct {
	runner domain.CommandRunner
}

// NewSystemSource returns the installed-software source of this platform.
func NewSystemSource(runner domain.CommandRunner) Source {
	return &packageSource{runner: runner}
}

func (s *packageSource) Roots() []string {
	return []string{RootDpkg, RootFlatpak}
}

func (s *packageSource) Entries(ctx context.Context, root string) ([]Entry, error) {
	var (
		name  string
		args  []string
		parse func(string) []Entry
	)

	switch root {
	case RootDpkg:
		name, args, parse = "dpkg-query", []string{"-W", "-f", "${Package}\t${db:Status-Abbrev}\n"}, ParseDpkg
	case RootFlatpak:
		name, args, parse = "flatpak", []string{"list", "--app", "--columns=name,application"}, ParseFlatpak
	default:
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownInventoryRoot, root)
	}

	if !s.runner.CommandExists(name) {
		return nil, fmt.Errorf("%w: %s not installed", domain.ErrSourceUnavailable, name)
	}

	output, err := s.runner.ExecuteWithOutput(ctx, name, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSourceUnavailable, err)
	}

	return parse(output), nil
}
