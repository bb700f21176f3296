// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

//go:build windows

package diskusage

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

func stat(path string) (Usage, error) {
	p, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return Usage{}, errors.Wrapf(err, "invalid path %s", path)
	}

	var freeToCaller, total, totalFree uint64
	if err := windows.GetDiskFreeSpaceEx(p, &freeToCaller, &total, &totalFree); err != nil {
		return Usage{}, errors.Wrapf(err, "disk usage %s", path)
	}

	return Usage{Total: total, Used: total - totalFree, Free: freeToCaller}, nil
}
