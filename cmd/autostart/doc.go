// Command autostart scans XDG autostart directories for desktop entries
// and launches them with staggered delays. Subcommands preview the scan,
// inspect launch history, and manage configuration.
package main
