// SPDX-License-Identifier: MIT
// Package store: error model.
// ErrIO marks filesystem failures (the *fs.PathError stays reachable through
// errors.As); ErrParse marks content that is not a valid input, result or CSV
// file and is always carried by a *ParseError naming the file.

package store

import (
	"errors"
	"fmt"
)

var (
	// ErrIO wraps every failure to read, create or write a file.
	ErrIO = errors.New("store: i/o failure")

	// ErrParse is matched by every *ParseError.
	ErrParse = errors.New("store: malformed file")
)

// ParseError reports a file whose content violates the expected format.
type ParseError struct {
	Path   string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("store: parse %s: %s", e.Path, e.Reason)
}

// Unwrap lets errors.Is(err, ErrParse) match.
func (e *ParseError) Unwrap() error { return ErrParse }

func parseErrorf(path, format string, args ...any) error {
	return &ParseError{Path: path, Reason: fmt.Sprintf(format, args...)}
}

// ioErrorf tags a filesystem error with op and ErrIO, keeping both matchable.
func ioErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}

// storeErrorf wraps err with an operation tag, preserving it for errors.Is/As.
func storeErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
