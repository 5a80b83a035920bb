package launch

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"strings"
	"syscall"
)

// Runner starts a detached process for a shell command line.
type Runner interface {
	Start(command, workdir string) error
}

// shellRunner hands the command line to sh -c in a fresh session with the
// standard streams pointed at /dev/null, so the child survives the
// launcher and never writes to its terminal.
type shellRunner struct {
	logger *slog.Logger
}

func (r shellRunner) Start(command, workdir string) error {
	if strings.TrimSpace(command) == "" {
		return errors.New("empty command")
	}

	cmd := exec.Command("sh", "-c", command)
	cmd.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	// Nil std streams attach the child to /dev/null.

	if workdir != "" {
		if info, err := os.Stat(workdir); err != nil || !info.IsDir() {
			// Launch proceeds from the inherited directory.
			r.logger.Warn("working directory unavailable",
				slog.String("workdir", workdir),
				slog.String("command", command))
		} else {
			cmd.Dir = workdir
		}
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start %q: %w", command, err)
	}

	// Reap the child when it exits so no zombies accumulate while the
	// launcher is still running. The goroutine dies with the process.
	go func() { _ = cmd.Wait() }()
	return nil
}
