package policy

import (
	"autostart/internal/config"
	"autostart/internal/desktop"
)

// Reason explains why an entry was not admitted. The strings are part of
// the console report contract.
type Reason string

const (
	ReasonHidden         Reason = "hidden/no-display"
	ReasonDisallowed     Reason = "disallowed by config"
	ReasonTryExecMissing Reason = "TryExec not found"
)

// Decision is the outcome of the admission checks for one entry.
type Decision struct {
	Admit  bool
	Reason Reason
}

// Prober reports whether an executable can be resolved. Satisfied by
// probe.Prober; tests substitute fakes.
type Prober interface {
	Available(command string) bool
}

// Admit runs the ordered admission checks against a parsed entry. The
// check order is a contract: it determines which skip reason is reported
// when several would apply. Invalid entries must be filtered out before
// this point.
func Admit(entry *desktop.Entry, rule *config.AppRule, prober Prober) Decision {
	if entry.Hidden || entry.NoDisplay {
		return Decision{Reason: ReasonHidden}
	}
	if !rule.Allowed() {
		return Decision{Reason: ReasonDisallowed}
	}
	if entry.TryExec != "" && !prober.Available(entry.TryExec) {
		return Decision{Reason: ReasonTryExecMissing}
	}
	return Decision{Admit: true}
}
