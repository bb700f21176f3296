// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package cleanup

import (
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"

	"github.com/autobrr/radarr-cleanup/internal/types"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	dryRunColor  = color.New(color.FgCyan, color.Bold)
)

func dryRunTag() string {
	return dryRunColor.Sprint("[DRY RUN]")
}

// describe renders "Title (Year) - 95min [1.4 GiB]"
func describe(m types.RadarrMovie) string {
	s := fmt.Sprintf("%s (%d) - %dmin", m.Title, m.Year, m.Runtime)
	if m.SizeOnDisk > 0 {
		s += fmt.Sprintf(" [%s]", formatSize(m.SizeOnDisk))
	}
	return s
}

func totalSize(movies []types.RadarrMovie) int64 {
	var total int64
	for _, m := range movies {
		total += m.SizeOnDisk
	}
	return total
}

func formatSize(size int64) string {
	if size <= 0 {
		return "0 B"
	}
	return humanize.IBytes(uint64(size))
}
