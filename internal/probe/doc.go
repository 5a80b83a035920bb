// Package probe answers "does this executable exist" for TryExec gating.
package probe
