// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/autobrr/radarr-cleanup/internal/audit"
	"github.com/autobrr/radarr-cleanup/internal/cleanup"
	"github.com/autobrr/radarr-cleanup/internal/config"
	"github.com/autobrr/radarr-cleanup/internal/prompt"
	"github.com/autobrr/radarr-cleanup/internal/services/radarr"
)

// runOptions carries everything a run needs from the outside world
type runOptions struct {
	configDir string
	auditPath string // empty selects the platform default
	dryRun    bool
	prompter  prompt.Prompter
	out       io.Writer
}

func CleanupCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "radarr-cleanup",
		Short: "Remove short movies from Radarr",
		Long: `Remove movies shorter than a runtime threshold from Radarr.

Connection settings are read from config.json (or config.toml / config.yaml)
in the working directory. RADARR_IP, RADARR_PORT and RADARR_API_KEY override
them, also when set in a .env file.`,
		Example: `  radarr-cleanup
  radarr-cleanup --dry-run`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	var dryRun bool
	command.Flags().BoolVar(&dryRun, "dry-run", false, "Simulate deletion without making changes")

	command.RunE = func(cmd *cobra.Command, args []string) error {
		_, err := runCleanup(cmd.Context(), runOptions{
			configDir: ".",
			dryRun:    dryRun,
			prompter:  prompt.NewSurvey(),
			out:       cmd.OutOrStdout(),
		})
		return err
	}

	return command
}

func runCleanup(ctx context.Context, opts runOptions) (*cleanup.Result, error) {
	path, err := config.Find(opts.configDir)
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration in %s: %w", path, err)
	}

	log.Debug().Str("config", path).Str("url", cfg.BaseURL()).Msg("Configuration loaded")

	var auditLog cleanup.AuditLog
	auditPath := opts.auditPath
	if auditPath == "" {
		auditPath, err = audit.DefaultPath()
		if err != nil {
			log.Warn().Err(err).Msg("Audit log disabled")
		}
	}
	if auditPath != "" {
		auditLog = audit.New(auditPath)
	}

	if opts.dryRun {
		fmt.Fprintln(opts.out, "DRY RUN MODE: no changes will be made")
	}

	client := radarr.NewClient(cfg.BaseURL(), cfg.RadarrAPIKey)
	workflow := cleanup.New(client, opts.prompter, cleanup.Options{
		DryRun: opts.dryRun,
		Out:    opts.out,
		Audit:  auditLog,
	})

	result, err := workflow.Run(ctx)
	if err != nil {
		return nil, err
	}

	log.Info().
		Str("outcome", result.Outcome.String()).
		Int("attempted", len(result.Attempted)).
		Int("failed", len(result.Failed)).
		Int("excluded", result.Excluded).
		Bool("dry_run", opts.dryRun).
		Msg("Cleanup finished")

	return result, nil
}
