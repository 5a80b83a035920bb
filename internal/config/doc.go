// Package config loads, validates, and defaults the launcher configuration.
//
// Configuration lives in a single TOML file. Rule lookups used by the scan
// pipeline (FindApp, DirBlocked) are plain linear scans over the decoded
// tables; the rule sets are small and read-only once loaded.
package config
