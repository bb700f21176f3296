// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package diskusage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStat(t *testing.T) {
	usage, err := Stat(t.TempDir())
	require.NoError(t, err)

	assert.Greater(t, usage.Total, uint64(0))
	assert.LessOrEqual(t, usage.Used, usage.Total)
	assert.LessOrEqual(t, usage.Free, usage.Total)
}

func TestStatMissingPath(t *testing.T) {
	_, err := Stat(filepath.Join(t.TempDir(), "does", "not", "exist"))
	assert.Error(t, err)
}

func TestGiB(t *testing.T) {
	u := Usage{Total: 10*gib + gib/2, Used: 3 * gib, Free: gib - 1}

	assert.Equal(t, uint64(10), u.TotalGiB())
	assert.Equal(t, uint64(3), u.UsedGiB())
	assert.Equal(t, uint64(0), u.FreeGiB())
}
