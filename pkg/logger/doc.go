// Package logger provides slog attribute helpers shared by the userkit
// packages. Helpers return an empty Attr for nil values so call sites can
// pass through optional data without guarding.
package logger
