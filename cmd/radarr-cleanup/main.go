// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"fmt"
	"os"

	"github.com/autobrr/radarr-cleanup/internal/commands"
	"github.com/autobrr/radarr-cleanup/internal/logger"
)

func init() {
	logger.Init()
}

func main() {
	if err := commands.CleanupCommand().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
