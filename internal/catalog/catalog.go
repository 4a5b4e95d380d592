// SPDX-FileCopyrightText: 2025 The Freshstart Authors
// SPDX-License-Identifier: EUPL-1.2

// Package catalog defines the curated list of installable applications.
package catalog

import (
	"strings"

	"github.com/janderssonse/freshstart/internal/domain"
)

// BaselineGroup tags the default bundle installed together.
const BaselineGroup = "baseline"

// defaultOptions is the built-in catalog, in display order.
var defaultOptions = []domain.InstallOption{ //nolint:gochecknoglobals
	// Baseline bundle
	{ID: BaselineGroup, Name: "Baseline (7zip, VLC, Chrome)", Group: BaselineGroup},
	{ID: "7zip.7zip", Name: "7-Zip", Group: BaselineGroup},
	{ID: "VideoLAN.VLC", Name: "VLC media player", Group: BaselineGroup},
	{ID: "Google.Chrome", Name: "Google Chrome", Group: BaselineGroup},

	// Everything else
	{ID: "Valve.Steam", Name: "Steam"},
	{ID: "Discord.Discord", Name: "Discord"},
	{ID: "Blizzard.Battle.net", Name: "Battle.net"},
	{ID: "Signal.Signal", Name: "Signal"},
	{ID: "HWiNFO.HWiNFO", Name: "HWiNFO64"},
	{ID: "Ubisoft.UbisoftConnect", Name: "Ubisoft Connect"},
	{ID: "Parsec.Parsec", Name: "Parsec"},
	{ID: "NVIDIA.GeForceExperience", Name: "NVIDIA GeForce Experience"},
	{ID: "Spotify.Spotify", Name: "Spotify"},
	{ID: "CPUID.CPU-Z", Name: "CPU-Z"},
	{ID: "1Password.1Password", Name: "1Password"},
}

// Catalog is an ordered list of install options plus its group table.
type Catalog struct {
	Options []domain.InstallOption
	// Groups maps a group tag to the IDs of its members, in catalog order.
	Groups map[string][]string
}

// Default returns the built-in catalog.
func Default() *Catalog {
	return New(defaultOptions)
}

// New builds a catalog over options. An option whose ID equals its Group is
// the meta-option of that group; the other options carrying the tag are its members.
func New(options []domain.InstallOption) *Catalog {
	opts := make([]domain.InstallOption, len(options))
	copy(opts, options)

	groups := make(map[string][]string)

	for _, opt := range opts {
		if opt.IsGrouped() && isMeta(opt) {
			groups[opt.Group] = []string{}
		}
	}

	for _, opt := range opts {
		members, ok := groups[opt.Group]
		if !ok || isMeta(opt) {
			continue
		}

		groups[opt.Group] = append(members, opt.ID)
	}

	return &Catalog{Options: opts, Groups: groups}
}

// IsMeta reports whether opt stands for a whole group.
func (c *Catalog) IsMeta(opt domain.InstallOption) bool {
	_, ok := c.Groups[opt.ID]
	return ok && isMeta(opt)
}

// Expand replaces selected meta-options with their members and keeps the
// other selected options. The result is deduplicated by case-insensitive ID,
// first occurrence wins.
func (c *Catalog) Expand(selected []domain.InstallOption) []domain.InstallOption {
	result := make([]domain.InstallOption, 0, len(selected))
	seen := make(map[string]struct{}, len(selected))

	add := func(opt domain.InstallOption) {
		key := strings.ToLower(opt.ID)
		if _, dup := seen[key]; dup {
			return
		}

		seen[key] = struct{}{}

		result = append(result, opt)
	}

	for _, opt := range selected {
		if !c.IsMeta(opt) {
			add(opt)

			continue
		}

		for _, id := range c.Groups[opt.ID] {
			if member, ok := c.Find(id); ok {
				add(member)
			}
		}
	}

	return result
}

// Find looks an option up by case-insensitive ID.
func (c *Catalog) Find(id string) (domain.InstallOption, bool) {
	for _, opt := range c.Options {
		if strings.EqualFold(opt.ID, id) {
			return opt, true
		}
	}

	return domain.InstallOption{}, false
}

func isMeta(opt domain.InstallOption) bool {
	return opt.ID == opt.Group
}
