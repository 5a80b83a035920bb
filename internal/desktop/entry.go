package desktop

// Field length ceilings carried over from the descriptor contract. Values
// longer than these are truncated, never rejected.
const (
	maxNameLen    = 255
	maxExecLen    = 1023
	maxTryExecLen = 255
	maxIconLen    = 255
	maxPathLen    = 1023
)

// Entry is one parsed autostart descriptor. Entries are immutable after
// parsing; the scan phase copies them by value into the launch queue.
type Entry struct {
	// Name is the unlocalized display name. Admission rules match on it.
	Name string
	// LocalizedNames holds Name[locale] variants keyed by the raw locale
	// string from the descriptor (e.g. "de", "pt_BR").
	LocalizedNames map[string]string
	// Exec is the raw command line, field codes included.
	Exec string
	// TryExec gates eligibility via an executable-presence probe.
	TryExec string
	// WorkingDir is the directory to launch from; empty inherits ours.
	WorkingDir string
	// Icon is recorded but otherwise unused.
	Icon string

	Terminal  bool
	Hidden    bool
	NoDisplay bool

	// Valid reports whether the descriptor declared Type=Application and
	// carries both a Name and an Exec line.
	Valid bool

	// SourcePath is the descriptor file this entry was parsed from.
	SourcePath string
}

func truncate(value string, limit int) string {
	if len(value) <= limit {
		return value
	}
	return value[:limit]
}
