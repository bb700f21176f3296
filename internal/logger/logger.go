// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package logger

import (
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var colors = map[string]string{
	"trace": "\033[36m", // Cyan
	"debug": "\033[33m", // Yellow
	"info":  "\033[34m", // Blue
	"warn":  "\033[33m", // Yellow
	"error": "\033[31m", // Red
	"fatal": "\033[35m", // Magenta
	"panic": "\033[35m", // Magenta
}

// Init initializes the global logger with colored output on stderr.
// Stdout is reserved for the interactive listings and prompts.
func Init() {
	InitWithWriter(os.Stderr, os.Getenv("LOG_LEVEL"))
}

// InitWithWriter configures the global logger to write to out at the given level.
// Every event carries a per-run id so interleaved runs can be told apart.
func InitWithWriter(out io.Writer, level string) {
	output := zerolog.ConsoleWriter{
		Out:     out,
		NoColor: false,
		FormatLevel: func(i interface{}) string {
			level, ok := i.(string)
			if !ok {
				return "???"
			}
			color := colors[level]
			if color == "" {
				color = "\033[37m" // Default to white
			}
			return color + strings.ToUpper(level) + "\033[0m"
		},
	}

	log.Logger = zerolog.New(output).
		Level(ParseLevel(level)).
		With().
		Timestamp().
		Str("run", uuid.NewString()).
		Logger()
}

// ParseLevel maps a level name to a zerolog level, defaulting to info
func ParseLevel(level string) zerolog.Level {
	if level == "" {
		return zerolog.InfoLevel
	}
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}
