// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package diskusage

const gib = 1 << 30

// Usage is a snapshot of a filesystem's capacity in bytes
type Usage struct {
	Total uint64
	Used  uint64
	Free  uint64
}

// TotalGiB returns the total size in whole gibibytes
func (u Usage) TotalGiB() uint64 { return u.Total / gib }

// UsedGiB returns the used space in whole gibibytes
func (u Usage) UsedGiB() uint64 { return u.Used / gib }

// FreeGiB returns the free space in whole gibibytes
func (u Usage) FreeGiB() uint64 { return u.Free / gib }

// Stat reports usage of the filesystem holding path
func Stat(path string) (Usage, error) {
	return stat(path)
}
