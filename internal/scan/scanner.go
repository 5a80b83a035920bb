package scan

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"

	"autostart/internal/config"
	"autostart/internal/desktop"
	"autostart/internal/logging"
	"autostart/internal/policy"
	"autostart/internal/queue"
)

// Summary reports one directory's scan outcome. Found counts every
// .desktop file seen; Skipped covers policy skips and unparsable files, so
// Found == Queued + Skipped always holds.
type Summary struct {
	Dir     string
	Found   int
	Queued  int
	Skipped int
}

// Event describes one descriptor file's fate during a scan. Skipped files
// carry the reason; queued files leave it empty.
type Event struct {
	Dir    string
	File   string
	Name   string
	Queued bool
	Reason string
}

// Option configures the scanner.
type Option func(*Scanner)

// WithObserver registers a callback invoked once per descriptor file seen.
func WithObserver(observer func(Event)) Option {
	return func(s *Scanner) {
		s.observer = observer
	}
}

// Scanner walks autostart directories, parses descriptors, applies the
// admission policy, and appends survivors to the launch queue.
type Scanner struct {
	cfg      *config.Config
	queue    *queue.Queue
	prober   policy.Prober
	logger   *slog.Logger
	locale   string
	observer func(Event)
}

// New constructs a scanner writing admitted entries into q.
func New(cfg *config.Config, q *queue.Queue, prober policy.Prober, logger *slog.Logger, opts ...Option) *Scanner {
	scanner := &Scanner{
		cfg:    cfg,
		queue:  q,
		prober: prober,
		logger: logging.WithComponent(logger, "scanner"),
		locale: desktop.SessionLocale(),
	}
	for _, opt := range opts {
		opt(scanner)
	}
	return scanner
}

func (s *Scanner) notify(event Event) {
	if s.observer != nil {
		s.observer(event)
	}
}

// ScanAll scans the given directories in priority order and returns one
// summary per directory.
func (s *Scanner) ScanAll(dirs []string) []Summary {
	summaries := make([]Summary, 0, len(dirs))
	for _, dir := range dirs {
		summaries = append(summaries, s.Scan(dir))
	}
	return summaries
}

// Scan processes a single directory. A missing directory is a warning, not
// an error; a directory blocked by configuration is never opened.
func (s *Scanner) Scan(dir string) Summary {
	summary := Summary{Dir: dir}

	if s.cfg.DirBlocked(dir) {
		s.logger.Info("directory blocked by config", slog.String(logging.FieldDirectory, dir))
		return summary
	}

	items, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.logger.Warn("autostart directory does not exist", slog.String(logging.FieldDirectory, dir))
		} else {
			s.logger.Warn("cannot read autostart directory", slog.String(logging.FieldDirectory, dir), logging.Error(err))
		}
		return summary
	}

	s.logger.Info("scanning directory", slog.String(logging.FieldDirectory, dir))

	for _, item := range items {
		if item.IsDir() || filepath.Ext(item.Name()) != ".desktop" {
			continue
		}
		summary.Found++

		path := filepath.Join(dir, item.Name())
		entry, err := desktop.Parse(path)
		if err != nil {
			if errors.Is(err, desktop.ErrNotApplication) {
				s.logger.Debug("skipped non-application descriptor", slog.String("path", path))
				s.notify(Event{Dir: dir, File: item.Name(), Reason: "not an application"})
			} else {
				s.logger.Warn("unreadable descriptor", slog.String("path", path), logging.Error(err))
				s.notify(Event{Dir: dir, File: item.Name(), Reason: "unreadable"})
			}
			continue
		}
		if !entry.Valid {
			s.logger.Debug("skipped invalid descriptor", slog.String("path", path))
			s.notify(Event{Dir: dir, File: item.Name(), Name: entry.Name, Reason: "incomplete descriptor"})
			continue
		}

		display := entry.DisplayName(s.locale)
		decision := policy.Admit(entry, s.cfg.FindApp(entry.Name), s.prober)
		if !decision.Admit {
			s.logger.Info("skipped",
				slog.String(logging.FieldEntry, display),
				slog.String(logging.FieldReason, string(decision.Reason)))
			s.notify(Event{Dir: dir, File: item.Name(), Name: display, Reason: string(decision.Reason)})
			continue
		}

		s.queue.Append(*entry)
		summary.Queued++
		s.logger.Info("queued", slog.String(logging.FieldEntry, display))
		s.notify(Event{Dir: dir, File: item.Name(), Name: display, Queued: true})
	}

	summary.Skipped = summary.Found - summary.Queued
	s.logger.Info("directory summary",
		slog.String(logging.FieldDirectory, dir),
		slog.Int("found", summary.Found),
		slog.Int("queued", summary.Queued),
		slog.Int("skipped", summary.Skipped))
	return summary
}
