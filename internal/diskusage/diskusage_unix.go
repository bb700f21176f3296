// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

//go:build linux || darwin || freebsd

package diskusage

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

func stat(path string) (Usage, error) {
	var fs unix.Statfs_t
	if err := unix.Statfs(path, &fs); err != nil {
		return Usage{}, errors.Wrapf(err, "statfs %s", path)
	}

	bsize := uint64(fs.Bsize)
	total := uint64(fs.Blocks) * bsize
	free := uint64(fs.Bavail) * bsize
	used := total - uint64(fs.Bfree)*bsize

	return Usage{Total: total, Used: used, Free: free}, nil
}
