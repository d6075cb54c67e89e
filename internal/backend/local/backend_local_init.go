// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"os"
	"path/filepath"

	"github.com/tfctl/cfgctl/internal/log"
)

type BackendLocalOption = func(ctx context.Context, be *BackendLocal) error

// NewBackendLocal returns a BackendLocal object that implements the Backend
// interface.
func NewBackendLocal(ctx context.Context, options ...BackendLocalOption) (*BackendLocal, error) {
	options = append([]BackendLocalOption{WithDefaults()}, options...)

	be := &BackendLocal{}

	for _, opt := range options {
		if err := opt(ctx, be); err != nil {
			return nil, err
		}
	}

	return be, nil
}

func WithDefaults() BackendLocalOption {
	return func(ctx context.Context, be *BackendLocal) error {
		be.BaseDir = ""
		return nil
	}
}

// FromBaseDir resolves relative document paths against baseDir. A relative
// baseDir is made absolute against the working directory; an empty baseDir
// keeps paths relative to the working directory at fetch time.
func FromBaseDir(baseDir string) BackendLocalOption {
	return func(ctx context.Context, be *BackendLocal) error {
		if baseDir == "" {
			return nil
		}

		// Is baseDir a relative or absolute path?
		if filepath.IsAbs(baseDir) {
			be.BaseDir = baseDir
		} else {
			cwd, err := os.Getwd()
			if err != nil {
				return err
			}
			be.BaseDir = filepath.Join(cwd, baseDir)
		}

		log.Debugf("NewBackendLocal FromBaseDir(): baseDir = %s", be.BaseDir)
		return nil
	}
}
