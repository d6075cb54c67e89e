// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable is the single outward kind for any failure to fetch
	// or parse the document at a path. Match it with errors.Is.
	ErrSourceUnavailable = errors.New("config source unavailable")

	// ErrMissingKey is returned when reading a key the Config does not hold.
	ErrMissingKey = errors.New("missing config key")

	// ErrWrongType is returned by the typed getters when the stored value has
	// a different type. Values are never coerced.
	ErrWrongType = errors.New("config value has wrong type")
)

// SourceError reports that the document at Path could not be fetched or
// parsed. The underlying cause is kept in Err.
type SourceError struct {
	Path string
	Err  error
}

// NewSourceError wraps err as a SourceError for path. An err that already is a
// SourceError for the same path is returned unchanged.
func NewSourceError(path string, err error) *SourceError {
	var se *SourceError
	if errors.As(err, &se) && se.Path == path {
		return se
	}
	return &SourceError{Path: path, Err: err}
}

func (e *SourceError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("error opening %s", e.Path)
	}
	return fmt.Sprintf("error opening %s: %v", e.Path, e.Err)
}

// Unwrap exposes the original cause.
func (e *SourceError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrSourceUnavailable.
func (e *SourceError) Is(target error) bool {
	return target == ErrSourceUnavailable
}
