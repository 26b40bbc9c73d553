package service

import (
	"errors"
	"sort"
	"strings"
)

var (
	// ErrNotFound marks a request for something that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrInvalid marks a request the caller has to fix.
	ErrInvalid = errors.New("invalid request")
	// ErrUnavailable marks a request that may succeed when retried later.
	ErrUnavailable = errors.New("temporarily unavailable")
)

// ValidationError lists the offending fields of a request.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = k + ": " + e.Fields[k]
	}
	return "service: invalid request: " + strings.Join(parts, "; ")
}

// Unwrap lets callers match ErrInvalid.
func (e *ValidationError) Unwrap() error { return ErrInvalid }
