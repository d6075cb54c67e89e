// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tfctl/cfgctl/internal/config"
	"github.com/tfctl/cfgctl/internal/log"
)

// BackendLocal reads configuration documents from the local filesystem.
type BackendLocal struct {
	BaseDir string
}

// Fetch implements backend.Backend. Not found, permission and I/O failures
// are all reported as a *config.SourceError carrying path.
func (be *BackendLocal) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, config.NewSourceError(path, err)
	}

	full := be.resolve(path)
	log.Debugf("local fetch: path=%s file=%s", path, full)

	data, err := os.ReadFile(full)
	if err != nil {
		return nil, config.NewSourceError(path, fmt.Errorf("failed to read config file: %w", err))
	}

	return data, nil
}

func (be *BackendLocal) resolve(path string) string {
	if be.BaseDir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(be.BaseDir, path)
}

func (be *BackendLocal) String() string {
	if be.BaseDir == "" {
		return "local"
	}
	return "local:" + be.BaseDir
}

func (be *BackendLocal) Type() string {
	return "local"
}
