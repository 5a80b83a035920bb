package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"autostart/internal/history"
	"autostart/internal/launch"
	"autostart/internal/logging"
	"autostart/internal/probe"
	"autostart/internal/queue"
	"autostart/internal/scan"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Scan autostart directories and launch the queued applications",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			lock := flock.New(lockPath())
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire run lock: %w", err)
			}
			if !locked {
				return errors.New("another autostart run is already in progress")
			}
			defer func() { _ = lock.Unlock() }()

			runID := uuid.NewString()
			logger = logger.With(slog.String(logging.FieldRunID, runID))
			startedAt := time.Now().UTC()

			q := queue.New()
			scanner := scan.New(cfg, q, probe.New(), logger)
			scanner.ScanAll(scan.Dirs())

			launcher := launch.New(cfg, logger)
			result := launcher.LaunchAll(q)

			if cfg.History.Enabled {
				recordRun(cmd.Context(), logger, cfg.History.Path, history.Run{
					ID:         runID,
					StartedAt:  startedAt,
					FinishedAt: time.Now().UTC(),
					Total:      result.Total,
					Succeeded:  result.Succeeded,
					Failed:     result.Failed,
				}, result.Outcomes)
			}

			if result.Failed > 0 {
				return fmt.Errorf("%d of %d applications failed to launch", result.Failed, result.Total)
			}
			return nil
		},
	}
}

func recordRun(ctx context.Context, logger *slog.Logger, path string, run history.Run, outcomes []launch.Outcome) {
	store, err := history.Open(path)
	if err != nil {
		logger.Warn("history store unavailable", logging.Error(err))
		return
	}
	defer func() { _ = store.Close() }()

	entries := make([]history.Entry, 0, len(outcomes))
	for _, outcome := range outcomes {
		entries = append(entries, history.Entry{
			Name:     outcome.Name,
			Exec:     outcome.Exec,
			Launched: outcome.Launched,
		})
	}
	if err := store.RecordRun(ctx, run, entries); err != nil {
		logger.Warn("record launch history", logging.Error(err))
	}
}

// lockPath places the run lock in the session runtime directory so it
// disappears with the session.
func lockPath() string {
	dir := os.Getenv("XDG_RUNTIME_DIR")
	if dir == "" {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "autostart-launcher.lock")
}
