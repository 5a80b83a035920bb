package desktop

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotApplication reports a descriptor whose Type is not "Application".
// Parsing stops at the offending line; no partial entry is returned.
var ErrNotApplication = errors.New("descriptor is not an application")

const desktopEntrySection = "[Desktop Entry]"

// Parse reads a descriptor file into an Entry. It returns ErrNotApplication
// for non-application descriptors and a wrapped I/O error when the file
// cannot be read. The returned entry may still be invalid (Valid == false)
// when required keys are missing.
func Parse(path string) (*Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open descriptor: %w", err)
	}
	defer file.Close()

	entry := &Entry{SourcePath: path}
	inDesktopEntry := false
	typeIsApplication := false

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "[") {
			inDesktopEntry = line == desktopEntrySection
			continue
		}
		if !inDesktopEntry {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		switch key {
		case "Type":
			if value != "Application" {
				return nil, fmt.Errorf("%w: type %q", ErrNotApplication, value)
			}
			typeIsApplication = true
		case "Name":
			entry.Name = truncate(value, maxNameLen)
		case "Exec":
			entry.Exec = truncate(value, maxExecLen)
		case "TryExec":
			entry.TryExec = truncate(value, maxTryExecLen)
		case "Path":
			entry.WorkingDir = truncate(value, maxPathLen)
		case "Icon":
			entry.Icon = truncate(value, maxIconLen)
		case "Terminal":
			entry.Terminal = value == "true"
		case "Hidden":
			entry.Hidden = value == "true"
		case "NoDisplay":
			entry.NoDisplay = value == "true"
		default:
			if locale, ok := localizedNameKey(key); ok {
				if entry.LocalizedNames == nil {
					entry.LocalizedNames = make(map[string]string)
				}
				entry.LocalizedNames[locale] = truncate(value, maxNameLen)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read descriptor: %w", err)
	}

	entry.Valid = typeIsApplication && entry.Name != "" && entry.Exec != ""
	return entry, nil
}

// localizedNameKey extracts the locale from a Name[locale] key.
func localizedNameKey(key string) (string, bool) {
	if !strings.HasPrefix(key, "Name[") || !strings.HasSuffix(key, "]") {
		return "", false
	}
	locale := key[len("Name[") : len(key)-1]
	if locale == "" {
		return "", false
	}
	return locale, true
}
