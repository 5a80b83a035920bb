// Package history persists launch runs in a SQLite database so past
// sessions can be inspected after the fact.
package history
