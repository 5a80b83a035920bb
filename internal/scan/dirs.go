package scan

import (
	"os"
	"os/user"
	"path/filepath"
)

// System autostart directories, scanned after the user directory.
var systemDirs = []string{
	"/etc/xdg/autostart",
	"/usr/share/autostart",
}

// Dirs returns the autostart directories in scan priority order: the user
// directory first, then the system directories. Scan order becomes launch
// order, so this list is a contract.
func Dirs() []string {
	dirs := make([]string, 0, len(systemDirs)+1)
	if home := homeDir(); home != "" {
		dirs = append(dirs, filepath.Join(home, ".config", "autostart"))
	}
	return append(dirs, systemDirs...)
}

// homeDir resolves $HOME, falling back to the password database when the
// environment does not carry it.
func homeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if u, err := user.Current(); err == nil {
		return u.HomeDir
	}
	return ""
}
