package probe

import (
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sys/unix"
)

// Prober resolves TryExec executable availability. Results are cached for
// the lifetime of one scan-and-launch pass; PATH does not change mid-run.
type Prober struct {
	mu   sync.Mutex
	seen map[string]bool
}

// New constructs an empty prober.
func New() *Prober {
	return &Prober{seen: make(map[string]bool)}
}

// Available reports whether the named executable can be resolved. Bare
// names are resolved through PATH; names containing a path separator are
// checked for execute permission directly. An empty name always passes,
// matching the "no TryExec means always eligible" contract.
func (p *Prober) Available(command string) bool {
	command = strings.TrimSpace(command)
	if command == "" {
		return true
	}

	p.mu.Lock()
	cached, ok := p.seen[command]
	p.mu.Unlock()
	if ok {
		return cached
	}

	available := lookup(command)

	p.mu.Lock()
	p.seen[command] = available
	p.mu.Unlock()
	return available
}

func lookup(command string) bool {
	if strings.ContainsRune(command, '/') {
		return unix.Access(command, unix.X_OK) == nil
	}
	_, err := exec.LookPath(command)
	return err == nil
}
