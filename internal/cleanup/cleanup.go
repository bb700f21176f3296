// Copyright (c) 2024, s0up and the autobrr contributors.
// SPDX-License-Identifier: GPL-2.0-or-later

package cleanup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/autobrr/radarr-cleanup/internal/audit"
	"github.com/autobrr/radarr-cleanup/internal/diskusage"
	"github.com/autobrr/radarr-cleanup/internal/prompt"
	"github.com/autobrr/radarr-cleanup/internal/selection"
	"github.com/autobrr/radarr-cleanup/internal/types"
)

// ZeroPrefix marks indices of the zero-runtime listing
const ZeroPrefix = "Z"

// ErrFetchMovies is returned when the movie collection cannot be retrieved
var ErrFetchMovies = errors.New("failed to fetch movies")

// MovieService is the subset of the Radarr API the workflow needs
type MovieService interface {
	GetMovies(ctx context.Context) ([]types.RadarrMovie, error)
	DeleteMovie(ctx context.Context, movieID int) error
	AddImportExclusion(ctx context.Context, movie types.RadarrMovie) error
}

// AuditLog records one entry per run
type AuditLog interface {
	Append(entry audit.Entry) error
}

// Outcome describes how a run ended
type Outcome int

const (
	// OutcomeCompleted means deletions were executed or simulated
	OutcomeCompleted Outcome = iota
	// OutcomeNothingToDelete means no movie was a candidate or none was selected
	OutcomeNothingToDelete
	// OutcomeAborted means the operator declined the final confirmation
	OutcomeAborted
)

func (o Outcome) String() string {
	switch o {
	case OutcomeCompleted:
		return "completed"
	case OutcomeNothingToDelete:
		return "nothing_to_delete"
	case OutcomeAborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// Result summarises a run
type Result struct {
	Outcome   Outcome
	Threshold int
	Attempted []types.RadarrMovie // final delete set
	Failed    []int               // ids whose delete call failed
	Verified  int                 // attempted ids missing from the re-fetched collection
	Excluded  int                 // import exclusions registered, or that would be in dry-run
}

// Options configures a Workflow. Zero values are replaced by defaults.
type Options struct {
	DryRun    bool
	Out       io.Writer
	Audit     AuditLog
	DiskUsage func() (diskusage.Usage, error)
	Now       func() time.Time
}

// Workflow drives one interactive cleanup run
type Workflow struct {
	service  MovieService
	prompter prompt.Prompter
	dryRun   bool
	out      io.Writer
	audit    AuditLog
	disk     func() (diskusage.Usage, error)
	now      func() time.Time
}

// New builds a workflow around the given API client and prompter
func New(service MovieService, prompter prompt.Prompter, opts Options) *Workflow {
	w := &Workflow{
		service:  service,
		prompter: prompter,
		dryRun:   opts.DryRun,
		out:      opts.Out,
		audit:    opts.Audit,
		disk:     opts.DiskUsage,
		now:      opts.Now,
	}

	if w.out == nil {
		w.out = os.Stdout
	}
	if w.disk == nil {
		w.disk = homeDiskUsage
	}
	if w.now == nil {
		w.now = time.Now
	}

	return w
}

// Partition splits movies shorter than threshold into those with a
// missing (zero) runtime and those with a real one. Movies at or above
// the threshold are dropped. Input order is kept within each group.
func Partition(movies []types.RadarrMovie, threshold int) (zero, short []types.RadarrMovie) {
	candidates := lo.Filter(movies, func(m types.RadarrMovie, _ int) bool {
		return m.Runtime < threshold
	})

	zero = lo.Filter(candidates, func(m types.RadarrMovie, _ int) bool {
		return m.Runtime == 0
	})
	short = lo.Reject(candidates, func(m types.RadarrMovie, _ int) bool {
		return m.Runtime == 0
	})

	return zero, short
}

// Run executes the workflow. Only a failed collection fetch is returned as
// an error; per-movie failures are reported and recorded in the result.
func (w *Workflow) Run(ctx context.Context) (*Result, error) {
	threshold, err := w.askThreshold()
	if err != nil {
		return w.aborted(0, err), nil
	}

	result := &Result{Threshold: threshold}

	movies, err := w.service.GetMovies(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFetchMovies, err)
	}

	log.Info().Int("movies", len(movies)).Int("threshold", threshold).Msg("Fetched movie collection")

	zero, short := Partition(movies, threshold)
	if len(zero) == 0 && len(short) == 0 {
		fmt.Fprintf(w.out, "\nNo movies found with a runtime under %d minutes.\n", threshold)
		result.Outcome = OutcomeNothingToDelete
		return result, nil
	}

	zeroDelete, err := w.reviewZeroRuntime(zero)
	if err != nil {
		return w.aborted(threshold, err), nil
	}

	shortDelete, err := w.reviewShort(short, threshold)
	if err != nil {
		return w.aborted(threshold, err), nil
	}

	toDelete := append(append([]types.RadarrMovie{}, shortDelete...), zeroDelete...)
	if len(toDelete) == 0 {
		fmt.Fprintln(w.out, "\nNo movies selected for deletion.")
		result.Outcome = OutcomeNothingToDelete
		return result, nil
	}

	confirmed, err := w.confirmFinal(toDelete, zeroDelete)
	if err != nil || !confirmed {
		fmt.Fprintln(w.out, "Deletion cancelled.")
		return w.aborted(threshold, err), nil
	}

	result.Outcome = OutcomeCompleted
	result.Attempted = toDelete
	result.Failed = w.execute(ctx, toDelete)

	w.report(len(toDelete))

	result.Verified = VerifyDeletions(ctx, w.service, lo.Map(toDelete, func(m types.RadarrMovie, _ int) int {
		return m.ID
	}))
	log.Debug().Int("verified", result.Verified).Int("attempted", len(toDelete)).Msg("Verified deletions")

	result.Excluded = w.excludeFromImport(ctx, toDelete, result.Failed)

	return result, nil
}

// VerifyDeletions re-fetches the collection and counts how many of ids are
// gone. A failed fetch counts as zero.
func VerifyDeletions(ctx context.Context, service MovieService, ids []int) int {
	movies, err := service.GetMovies(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Could not verify deletions")
		return 0
	}

	remaining := make(map[int]struct{}, len(movies))
	for _, m := range movies {
		remaining[m.ID] = struct{}{}
	}

	gone := 0
	for _, id := range lo.Uniq(ids) {
		if _, ok := remaining[id]; !ok {
			gone++
		}
	}
	return gone
}

func (w *Workflow) aborted(threshold int, err error) *Result {
	if err != nil && !errors.Is(err, prompt.ErrInterrupted) {
		log.Warn().Err(err).Msg("Prompt failed, aborting without changes")
	}
	return &Result{Outcome: OutcomeAborted, Threshold: threshold}
}

func (w *Workflow) ask(message string) (string, error) {
	answer, err := w.prompter.Ask(message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (w *Workflow) confirm(message string) (bool, error) {
	answer, err := w.ask(message)
	if err != nil {
		return false, err
	}
	return prompt.IsYes(answer), nil
}

func (w *Workflow) askThreshold() (int, error) {
	for {
		answer, err := w.ask("Enter the runtime threshold in minutes (movies shorter than this are candidates):")
		if err != nil {
			return 0, err
		}

		if answer == "" {
			fmt.Fprintln(w.out, "A threshold is required.")
			continue
		}

		threshold, err := strconv.Atoi(answer)
		if err != nil {
			fmt.Fprintln(w.out, "Please enter a whole number of minutes.")
			continue
		}
		if threshold <= 0 {
			fmt.Fprintln(w.out, "The threshold must be greater than zero.")
			continue
		}

		return threshold, nil
	}
}

// reviewZeroRuntime returns the zero-runtime movies the operator chose to
// delete. Here the operator names what to remove, not what to keep.
func (w *Workflow) reviewZeroRuntime(zero []types.RadarrMovie) ([]types.RadarrMovie, error) {
	if len(zero) == 0 {
		return nil, nil
	}

	fmt.Fprintf(w.out, "\nMOVIES WITH MISSING RUNTIME (%d):\n", len(zero))
	for i, m := range zero {
		fmt.Fprintf(w.out, "[%s%d] %s\n", ZeroPrefix, i+1, describe(m))
	}

	review, err := w.confirm("Review movies with missing runtime for deletion? (y/n)")
	if err != nil || !review {
		return nil, err
	}

	input, err := w.ask(fmt.Sprintf("Enter %s-numbers or titles to DELETE (comma-separated):", ZeroPrefix))
	if err != nil {
		return nil, err
	}

	picked := selection.Select(zero, selection.Parse(selection.Split(input), zero, ZeroPrefix))
	if len(picked) == 0 {
		fmt.Fprintln(w.out, "No movies with missing runtime selected.")
		return nil, nil
	}

	fmt.Fprintln(w.out, "\nSelected movies with missing runtime:")
	for _, m := range picked {
		fmt.Fprintf(w.out, "- %s\n", describe(m))
	}

	ok, err := w.confirm("Delete these movies with missing runtime? (y/n)")
	if err != nil || !ok {
		return nil, err
	}

	return picked, nil
}

// reviewShort returns the movies with a known runtime to delete. The
// operator either takes the whole group or names the ones to keep.
func (w *Workflow) reviewShort(short []types.RadarrMovie, threshold int) ([]types.RadarrMovie, error) {
	if len(short) == 0 {
		return nil, nil
	}

	fmt.Fprintf(w.out, "\nMOVIES UNDER %d MINUTES (%d):\n", threshold, len(short))
	for i, m := range short {
		fmt.Fprintf(w.out, "[%d] %s\n", i+1, describe(m))
	}

	all, err := w.confirm("Delete all of these movies? (y/n)")
	if err != nil {
		return nil, err
	}
	if all {
		return short, nil
	}

	input, err := w.ask("Enter numbers or titles to KEEP (comma-separated):")
	if err != nil {
		return nil, err
	}

	return selection.Exclude(short, selection.Parse(selection.Split(input), short, "")), nil
}

func (w *Workflow) confirmFinal(toDelete, zeroDelete []types.RadarrMovie) (bool, error) {
	// match by id, two records may share every displayed field
	zeroIDs := make(map[int]struct{}, len(zeroDelete))
	for _, m := range zeroDelete {
		zeroIDs[m.ID] = struct{}{}
	}

	fmt.Fprintln(w.out, "\nMOVIES TO DELETE:")
	for i, m := range toDelete {
		line := fmt.Sprintf("%d. %s", i+1, describe(m))
		if _, ok := zeroIDs[m.ID]; ok {
			line += " " + warnColor.Sprint("[missing runtime]")
		}
		fmt.Fprintln(w.out, line)
	}
	fmt.Fprintf(w.out, "Space to reclaim: %s\n", formatSize(totalSize(toDelete)))

	return w.confirm(fmt.Sprintf("Confirm deletion of %d movies? (y/n)", len(toDelete)))
}

func (w *Workflow) execute(ctx context.Context, toDelete []types.RadarrMovie) []int {
	var failed []int

	for _, m := range toDelete {
		if w.dryRun {
			fmt.Fprintf(w.out, "%s Would delete %s\n", dryRunTag(), describe(m))
			continue
		}

		if err := w.service.DeleteMovie(ctx, m.ID); err != nil {
			log.Error().Err(err).Int("id", m.ID).Str("title", m.Title).Msg("Failed to delete movie")
			fmt.Fprintf(w.out, "%s %s: %v\n", errorColor.Sprint("Failed to delete"), m.Title, err)
			failed = append(failed, m.ID)
			continue
		}

		log.Info().Int("id", m.ID).Str("title", m.Title).Msg("Deleted movie")
		fmt.Fprintf(w.out, "%s %s\n", successColor.Sprint("Deleted"), describe(m))
	}

	return failed
}

// report prints disk usage and appends the audit entry. It runs after every
// execution, in dry-run too, and never fails the run.
func (w *Workflow) report(attempted int) {
	entry := audit.Entry{Time: w.now(), Deleted: attempted}

	usage, err := w.disk()
	if err != nil {
		log.Warn().Err(err).Msg("Could not read disk usage")
		fmt.Fprintln(w.out, "\nDisk usage: unavailable")
	} else {
		entry.Disk = &usage
		fmt.Fprintf(w.out, "\nDisk usage - Total: %d GB, Used: %d GB, Free: %d GB\n",
			usage.TotalGiB(), usage.UsedGiB(), usage.FreeGiB())
	}

	if w.audit == nil {
		return
	}
	if err := w.audit.Append(entry); err != nil {
		log.Error().Err(err).Msg("Failed to write audit log")
		return
	}
	log.Debug().Int("deleted", attempted).Msg("Audit log updated")
}

// excludeFromImport registers import exclusions for the deleted movies and
// returns how many were (or in dry-run, would be) registered.
func (w *Workflow) excludeFromImport(ctx context.Context, attempted []types.RadarrMovie, failed []int) int {
	deleted := lo.Reject(attempted, func(m types.RadarrMovie, _ int) bool {
		return lo.Contains(failed, m.ID)
	})
	if len(deleted) == 0 {
		return 0
	}

	ok, err := w.confirm("Add the deleted movies to the import exclusion list? (y/n)")
	if err != nil || !ok {
		return 0
	}

	if w.dryRun {
		fmt.Fprintf(w.out, "%s Would add %d movies to the import exclusion list\n", dryRunTag(), len(deleted))
		return len(deleted)
	}

	excluded := 0
	for _, m := range deleted {
		if err := w.service.AddImportExclusion(ctx, m); err != nil {
			log.Error().Err(err).Int("tmdb_id", m.TmdbId).Str("title", m.Title).Msg("Failed to add import exclusion")
			fmt.Fprintf(w.out, "%s %s: %v\n", errorColor.Sprint("Failed to exclude"), m.Title, err)
			continue
		}
		excluded++
		fmt.Fprintf(w.out, "%s %s\n", successColor.Sprint("Excluded"), describe(m))
	}

	return excluded
}

func homeDiskUsage() (diskusage.Usage, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return diskusage.Usage{}, err
	}
	return diskusage.Stat(home)
}
