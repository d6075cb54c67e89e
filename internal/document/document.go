// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"errors"
	"path/filepath"
	"strings"
)

// ErrMalformedDocument is returned for input that is not a valid document or
// whose top level is not a key/value mapping.
var ErrMalformedDocument = errors.New("malformed document")

// Parser turns bytes into a mapping from string keys to values.
type Parser interface {
	Parse(data []byte) (map[string]any, error)
}

// ForPath picks a Parser from the path's extension.
func ForPath(path string) Parser {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return HCL{Filename: path}
	default:
		return YAML{}
	}
}
