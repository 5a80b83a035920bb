// Package logging wraps log/slog with the launcher's console and JSON
// handlers and the standardized attribute keys shared across the pipeline.
package logging
