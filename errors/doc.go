// Package errors provides the structured error type shared by every knife
// package. Errors carry a machine-readable code so callers can tell an
// exhausted source from a bad callable without matching on strings.
package errors
