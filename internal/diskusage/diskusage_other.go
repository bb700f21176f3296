// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

//go:build !linux && !darwin && !freebsd && !windows

package diskusage

import (
	"fmt"
	"runtime"
)

func stat(path string) (Usage, error) {
	return Usage{}, fmt.Errorf("disk usage is not supported on %s", runtime.GOOS)
}
