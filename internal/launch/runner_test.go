package launch

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"autostart/internal/logging"
)

func TestShellRunnerRejectsEmptyCommand(t *testing.T) {
	runner := shellRunner{logger: logging.NewNop()}
	if err := runner.Start("", ""); err == nil {
		t.Fatal("expected error for empty command")
	}
	if err := runner.Start("   ", ""); err == nil {
		t.Fatal("expected error for whitespace command")
	}
}

func TestShellRunnerStartsDetachedProcess(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "marker")

	runner := shellRunner{logger: logging.NewNop()}
	if err := runner.Start("touch "+marker, ""); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	waitForFile(t, marker)
}

func TestShellRunnerSupportsShellOperators(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "combined")

	runner := shellRunner{logger: logging.NewNop()}
	if err := runner.Start("true && touch "+marker, ""); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	waitForFile(t, marker)
}

func TestShellRunnerMissingWorkdirStillLaunches(t *testing.T) {
	dir := t.TempDir()
	marker := filepath.Join(dir, "fallback")

	runner := shellRunner{logger: logging.NewNop()}
	missing := filepath.Join(dir, "does-not-exist")
	if err := runner.Start("touch "+marker, missing); err != nil {
		t.Fatalf("Start should proceed without the workdir, got %v", err)
	}

	waitForFile(t, marker)
}

func TestShellRunnerUsesWorkdir(t *testing.T) {
	dir := t.TempDir()

	runner := shellRunner{logger: logging.NewNop()}
	if err := runner.Start("touch relative-marker", dir); err != nil {
		t.Fatalf("Start returned error: %v", err)
	}

	waitForFile(t, filepath.Join(dir, "relative-marker"))
}

func waitForFile(t *testing.T, path string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if _, err := os.Stat(path); err == nil {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("file %s never appeared", path)
}
