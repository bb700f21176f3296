// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package prompt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsYes(t *testing.T) {
	for _, answer := range []string{"y", "Y", " y ", "y\n"} {
		assert.True(t, IsYes(answer), "answer %q", answer)
	}
	for _, answer := range []string{"", "n", "yes", "yy", "ja", "1"} {
		assert.False(t, IsYes(answer), "answer %q", answer)
	}
}
