package launch_test

import (
	"errors"
	"testing"
	"time"

	"autostart/internal/config"
	"autostart/internal/desktop"
	"autostart/internal/launch"
	"autostart/internal/logging"
	"autostart/internal/queue"
)

type recordingRunner struct {
	commands []string
	workdirs []string
	failOn   map[string]bool
}

func (r *recordingRunner) Start(command, workdir string) error {
	r.commands = append(r.commands, command)
	r.workdirs = append(r.workdirs, workdir)
	if r.failOn[command] {
		return errors.New("spawn refused")
	}
	return nil
}

func launcherFor(cfg *config.Config, runner launch.Runner, sleeps *[]time.Duration) *launch.Launcher {
	return launch.New(cfg, logging.NewNop(),
		launch.WithRunner(runner),
		launch.WithSleep(func(d time.Duration) { *sleeps = append(*sleeps, d) }))
}

func queueOf(names ...string) *queue.Queue {
	q := queue.New()
	for _, name := range names {
		q.Append(desktop.Entry{Name: name, Exec: name + "-cmd", Valid: true})
	}
	return q
}

func TestLaunchAllEmptyQueue(t *testing.T) {
	cfg := config.Default()
	runner := &recordingRunner{}
	var sleeps []time.Duration

	result := launcherFor(&cfg, runner, &sleeps).LaunchAll(queue.New())

	if result.Total != 0 || result.Succeeded != 0 || result.Failed != 0 {
		t.Fatalf("empty queue should be a no-op, got %+v", result)
	}
	if len(runner.commands) != 0 || len(sleeps) != 0 {
		t.Fatal("nothing should run or sleep for an empty queue")
	}
}

func TestLaunchAllDelaySchedule(t *testing.T) {
	cfg := config.Default()
	cfg.Launch.StartupDelayMS = 1000
	cfg.Launch.DelayMS = 200
	runner := &recordingRunner{}
	var sleeps []time.Duration

	result := launcherFor(&cfg, runner, &sleeps).LaunchAll(queueOf("a", "b", "c"))

	want := []time.Duration{1000 * time.Millisecond, 200 * time.Millisecond, 200 * time.Millisecond}
	if len(sleeps) != len(want) {
		t.Fatalf("expected %d sleeps, got %v", len(want), sleeps)
	}
	for i := range want {
		if sleeps[i] != want[i] {
			t.Fatalf("sleep %d = %v, want %v", i, sleeps[i], want[i])
		}
	}
	if result.Total != 3 || result.Succeeded != 3 || result.Failed != 0 {
		t.Fatalf("unexpected result: %+v", result)
	}
}

func TestLaunchAllPerAppDelayOverride(t *testing.T) {
	cfg := config.Default()
	cfg.Launch.StartupDelayMS = 1000
	cfg.Launch.DelayMS = 200
	overrideFirst := 50
	overrideLater := 5000
	cfg.Apps = []config.AppRule{
		{Name: "a", DelayMS: &overrideFirst},
		{Name: "c", DelayMS: &overrideLater},
	}
	runner := &recordingRunner{}
	var sleeps []time.Duration

	launcherFor(&cfg, runner, &sleeps).LaunchAll(queueOf("a", "b", "c"))

	// The override wins in every position, including the first slot where
	// it replaces the startup delay.
	want := []time.Duration{50 * time.Millisecond, 200 * time.Millisecond, 5000 * time.Millisecond}
	for i := range want {
		if sleeps[i] != want[i] {
			t.Fatalf("sleep %d = %v, want %v (all: %v)", i, sleeps[i], want[i], sleeps)
		}
	}
}

func TestLaunchAllStripsFieldCodes(t *testing.T) {
	cfg := config.Default()
	cfg.Launch.DelayMS = 0
	runner := &recordingRunner{}
	var sleeps []time.Duration

	q := queue.New()
	q.Append(desktop.Entry{Name: "A", Exec: "app %f --flag %u", Valid: true})
	launcherFor(&cfg, runner, &sleeps).LaunchAll(q)

	if len(runner.commands) != 1 || runner.commands[0] != "app  --flag " {
		t.Fatalf("field codes not stripped: %q", runner.commands)
	}
}

func TestLaunchAllCountsFailuresAndContinues(t *testing.T) {
	cfg := config.Default()
	runner := &recordingRunner{failOn: map[string]bool{"b-cmd": true}}
	var sleeps []time.Duration

	result := launcherFor(&cfg, runner, &sleeps).LaunchAll(queueOf("a", "b", "c"))

	if result.Total != 3 || result.Succeeded != 2 || result.Failed != 1 {
		t.Fatalf("unexpected result: %+v", result)
	}
	if result.Total != result.Succeeded+result.Failed {
		t.Fatalf("total != succeeded + failed: %+v", result)
	}
	if len(runner.commands) != 3 {
		t.Fatalf("a failed launch must not stop the pass, ran %v", runner.commands)
	}
	if result.Outcomes[1].Launched || !result.Outcomes[0].Launched || !result.Outcomes[2].Launched {
		t.Fatalf("unexpected outcomes: %+v", result.Outcomes)
	}
}

func TestLaunchAllPassesWorkingDirectory(t *testing.T) {
	cfg := config.Default()
	cfg.Launch.DelayMS = 0
	runner := &recordingRunner{}
	var sleeps []time.Duration

	q := queue.New()
	q.Append(desktop.Entry{Name: "A", Exec: "app", WorkingDir: "/opt/app", Valid: true})
	launcherFor(&cfg, runner, &sleeps).LaunchAll(q)

	if runner.workdirs[0] != "/opt/app" {
		t.Fatalf("working directory not forwarded: %q", runner.workdirs[0])
	}
}
