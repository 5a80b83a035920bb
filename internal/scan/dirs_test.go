package scan_test

import (
	"path/filepath"
	"testing"

	"autostart/internal/scan"
)

func TestDirsPriorityOrder(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	dirs := scan.Dirs()
	if len(dirs) != 3 {
		t.Fatalf("expected 3 directories, got %v", dirs)
	}
	if dirs[0] != filepath.Join(home, ".config", "autostart") {
		t.Fatalf("user directory must come first, got %q", dirs[0])
	}
	if dirs[1] != "/etc/xdg/autostart" || dirs[2] != "/usr/share/autostart" {
		t.Fatalf("unexpected system directories: %v", dirs)
	}
}

func TestDirsFallsBackWhenHomeUnset(t *testing.T) {
	t.Setenv("HOME", "")

	dirs := scan.Dirs()
	// The password database supplies a home for the current user; the two
	// system directories always close the list.
	if len(dirs) < 2 {
		t.Fatalf("expected at least the system directories, got %v", dirs)
	}
	last := dirs[len(dirs)-1]
	if last != "/usr/share/autostart" {
		t.Fatalf("unexpected final directory: %q", last)
	}
}
