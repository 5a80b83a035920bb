package launch

import (
	"log/slog"
	"time"

	"autostart/internal/config"
	"autostart/internal/desktop"
	"autostart/internal/logging"
	"autostart/internal/queue"
)

// Outcome records one entry's launch attempt. Launched reflects process
// creation only; what the program does afterwards is not tracked.
type Outcome struct {
	Name     string
	Exec     string
	Launched bool
}

// Result aggregates a launch pass. Total == Succeeded + Failed.
type Result struct {
	Total     int
	Succeeded int
	Failed    int
	Outcomes  []Outcome
}

// Option configures the launcher.
type Option func(*Launcher)

// WithRunner injects a custom process runner (primarily for tests).
func WithRunner(runner Runner) Option {
	return func(l *Launcher) {
		if runner != nil {
			l.runner = runner
		}
	}
}

// WithSleep replaces the delay function (primarily for tests).
func WithSleep(sleep func(time.Duration)) Option {
	return func(l *Launcher) {
		if sleep != nil {
			l.sleep = sleep
		}
	}
}

// Launcher drains the launch queue sequentially, applying the staggered
// delay policy and creating one detached process per entry.
type Launcher struct {
	cfg    *config.Config
	logger *slog.Logger
	runner Runner
	sleep  func(time.Duration)
	locale string
}

// New constructs a launcher.
func New(cfg *config.Config, logger *slog.Logger, opts ...Option) *Launcher {
	launcher := &Launcher{
		cfg:    cfg,
		logger: logging.WithComponent(logger, "launcher"),
		runner: shellRunner{logger: logging.WithComponent(logger, "launcher")},
		sleep:  time.Sleep,
		locale: desktop.SessionLocale(),
	}
	for _, opt := range opts {
		opt(launcher)
	}
	return launcher
}

// LaunchAll processes the queue strictly in order. Each entry's delay is
// slept before its launch, measured from the previous entry's launch
// completing. Per-entry failures are recorded and do not stop the pass.
func (l *Launcher) LaunchAll(q *queue.Queue) Result {
	if q.Len() == 0 {
		l.logger.Info("no applications to launch")
		return Result{}
	}

	entries := q.Entries()
	result := Result{Total: len(entries), Outcomes: make([]Outcome, 0, len(entries))}

	l.logger.Info("launching applications",
		slog.Int("count", len(entries)),
		slog.Int("delay_ms", l.cfg.Launch.DelayMS),
		slog.Int("startup_delay_ms", l.cfg.Launch.StartupDelayMS))

	for i, entry := range entries {
		l.sleep(l.delayFor(i, entry.Name))

		command := desktop.StripFieldCodes(entry.Exec)
		err := l.runner.Start(command, entry.WorkingDir)
		outcome := Outcome{Name: entry.Name, Exec: command, Launched: err == nil}
		result.Outcomes = append(result.Outcomes, outcome)

		attrs := []any{
			slog.String(logging.FieldEntry, entry.DisplayName(l.locale)),
			slog.Int("position", i+1),
			slog.Int("of", len(entries)),
		}
		if err != nil {
			result.Failed++
			l.logger.Warn("launch failed", append(attrs, logging.Error(err))...)
			continue
		}
		result.Succeeded++
		l.logger.Info("launched", attrs...)
	}

	l.logger.Info("launch completed",
		slog.Int("total", result.Total),
		slog.Int("succeeded", result.Succeeded),
		slog.Int("failed", result.Failed))
	return result
}

// delayFor computes the sleep before launching the entry at index. A
// per-application override wins everywhere, including the first slot;
// otherwise the first entry gets the startup delay and the rest the
// inter-application delay.
func (l *Launcher) delayFor(index int, name string) time.Duration {
	if ms, ok := l.cfg.FindApp(name).DelayOverride(); ok {
		return time.Duration(ms) * time.Millisecond
	}
	if index == 0 {
		return time.Duration(l.cfg.Launch.StartupDelayMS) * time.Millisecond
	}
	return time.Duration(l.cfg.Launch.DelayMS) * time.Millisecond
}
