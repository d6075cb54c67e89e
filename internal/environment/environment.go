// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package environment

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/tfctl/cfgctl/internal/log"
)

// Known indicator values.
const (
	Test = "test"
	Prod = "prod"
)

// DefaultFile is the descriptor file read when no other path is configured.
const DefaultFile = "env"

// ErrEnvironmentUnavailable is returned when the indicator cannot be read.
var ErrEnvironmentUnavailable = errors.New("environment indicator unavailable")

// Resolver returns the trimmed environment indicator.
type Resolver interface {
	Resolve() (string, error)
}

// FileResolver reads the indicator from a descriptor file.
type FileResolver struct {
	Path string
}

// NewFileResolver returns a FileResolver for path, or for DefaultFile when
// path is empty.
func NewFileResolver(path string) *FileResolver {
	if path == "" {
		path = DefaultFile
	}
	return &FileResolver{Path: path}
}

// Resolve reads the descriptor file and returns its trimmed contents.
func (r *FileResolver) Resolve() (string, error) {
	data, err := os.ReadFile(r.Path)
	if err != nil {
		log.Debugf("env file read err: path=%s err=%v", r.Path, err)
		return "", fmt.Errorf("%w: %s: %w", ErrEnvironmentUnavailable, r.Path, err)
	}

	env := strings.TrimSpace(string(data))
	log.Debugf("env file read: path=%s env=%q", r.Path, env)
	return env, nil
}

// Static is a Resolver that always returns the same indicator.
type Static string

// Resolve returns the trimmed value.
func (s Static) Resolve() (string, error) {
	return strings.TrimSpace(string(s)), nil
}
