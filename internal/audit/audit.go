// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package audit

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/autobrr/radarr-cleanup/internal/diskusage"
)

const (
	appName  = "RadarrCleanup"
	fileName = "radarr_cleanup.log"

	timeLayout = "2006-01-02 15:04:05"
)

// Entry is one run's audit record
type Entry struct {
	Time    time.Time
	Deleted int
	Disk    *diskusage.Usage // nil when usage could not be read
}

// String renders the entry as the block appended to the log file
func (e Entry) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Deletion initiated at %s\n", e.Time.Format(timeLayout))
	fmt.Fprintf(&b, "Movies deleted: %d\n", e.Deleted)
	if e.Disk != nil {
		fmt.Fprintf(&b, "Total disk space: %d GB\n", e.Disk.TotalGiB())
		fmt.Fprintf(&b, "Used disk space: %d GB\n", e.Disk.UsedGiB())
		fmt.Fprintf(&b, "Free disk space: %d GB\n", e.Disk.FreeGiB())
	} else {
		b.WriteString("Disk usage: unavailable\n")
	}
	b.WriteString("\n")
	return b.String()
}

// Log appends entries to a text file. Existing content is never rewritten.
type Log struct {
	path string
}

// New returns a log writing to path
func New(path string) *Log {
	return &Log{path: path}
}

// Path returns the log file location
func (l *Log) Path() string {
	return l.path
}

// Append writes entry at the end of the log file, creating it when needed
func (l *Log) Append(entry Entry) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return errors.Wrap(err, "could not create log directory")
	}

	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrap(err, "could not open log file")
	}
	defer f.Close()

	if _, err := f.WriteString(entry.String()); err != nil {
		return errors.Wrap(err, "could not write log entry")
	}

	return nil
}

// Dir returns the platform log directory below home
func Dir(goos, home string) string {
	switch goos {
	case "windows":
		return filepath.Join(home, "AppData", "Local", appName)
	case "darwin":
		return filepath.Join(home, "Library", "Logs", appName)
	default:
		return filepath.Join(home, ".radarr_cleanup", "logs")
	}
}

// DefaultPath returns the log file location for the current user
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(err, "could not resolve home directory")
	}
	return filepath.Join(Dir(runtime.GOOS, home), fileName), nil
}
