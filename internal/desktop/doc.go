// Package desktop parses XDG desktop entry descriptors into validated
// records and implements the Exec field-code stripping contract.
//
// Only the [Desktop Entry] section is interpreted; everything else in a
// descriptor file is ignored. Descriptors whose Type is not "Application"
// are rejected outright rather than partially parsed.
package desktop
