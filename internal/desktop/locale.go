package desktop

import (
	"os"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// SessionLocale returns the message locale of the calling session, following
// the usual LC_ALL > LC_MESSAGES > LANG precedence. Empty when none is set.
func SessionLocale() string {
	for _, name := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if value := strings.TrimSpace(os.Getenv(name)); value != "" && value != "C" && value != "POSIX" {
			return value
		}
	}
	return ""
}

// DisplayName returns the Name variant best matching the given locale,
// falling back to the unlocalized Name when nothing matches. Admission
// decisions never use this; rule keys match the plain Name.
func (e *Entry) DisplayName(locale string) string {
	if len(e.LocalizedNames) == 0 || locale == "" {
		return e.Name
	}
	want, err := language.Parse(normalizeLocale(locale))
	if err != nil {
		return e.Name
	}

	// Sorted for deterministic matcher construction.
	locales := make([]string, 0, len(e.LocalizedNames))
	for key := range e.LocalizedNames {
		locales = append(locales, key)
	}
	sort.Strings(locales)

	tags := make([]language.Tag, 0, len(locales)+1)
	tags = append(tags, language.Und)
	candidates := make([]string, 0, len(locales))
	for _, key := range locales {
		tag, err := language.Parse(normalizeLocale(key))
		if err != nil {
			continue
		}
		tags = append(tags, tag)
		candidates = append(candidates, key)
	}
	if len(candidates) == 0 {
		return e.Name
	}

	_, index, confidence := language.NewMatcher(tags).Match(want)
	if index == 0 || confidence == language.No {
		return e.Name
	}
	return e.LocalizedNames[candidates[index-1]]
}

// normalizeLocale converts POSIX locale spellings (de_DE.UTF-8@euro) into
// BCP 47 ones (de-DE).
func normalizeLocale(locale string) string {
	if i := strings.IndexByte(locale, '.'); i >= 0 {
		locale = locale[:i]
	}
	if i := strings.IndexByte(locale, '@'); i >= 0 {
		locale = locale[:i]
	}
	return strings.ReplaceAll(locale, "_", "-")
}
