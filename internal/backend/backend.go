// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/tfctl/cfgctl/internal/backend/local"
	"github.com/tfctl/cfgctl/internal/backend/s3"
	"github.com/tfctl/cfgctl/internal/environment"
	"github.com/tfctl/cfgctl/internal/log"
	"github.com/tfctl/cfgctl/internal/settings"
)

// ErrUnknownEnvironment is returned when the indicator matches no backend.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Backend fetches the raw bytes of a configuration document.
type Backend interface {
	// Fetch returns the document at path. Failures are *config.SourceError.
	Fetch(ctx context.Context, path string) ([]byte, error)
	String() string
	Type() string
}

// NewBackend returns the Backend for the environment indicator. Matching is
// exact: "test" selects local, "prod" selects s3.
func NewBackend(ctx context.Context, indicator string, s settings.Settings) (Backend, error) {
	log.Debugf("NewBackend: indicator=%q settings=%+v", indicator, s)

	var result Backend
	var err error
	switch indicator {
	case environment.Test:
		result, err = local.NewBackendLocal(ctx,
			local.FromBaseDir(s.BaseDir),
		)
	case environment.Prod:
		result, err = s3.NewBackendS3(ctx,
			s3.WithBucket(s.Bucket),
			s3.WithRegion(s.Region),
			s3.WithProfile(s.Profile),
			s3.WithEndpoint(s.Endpoint, s.PathStyle),
		)
	default:
		return nil, fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownEnvironment, indicator, environment.Test, environment.Prod)
	}
	if err != nil {
		return nil, err
	}

	log.Debugf("backend selected: %s", result)
	return result, nil
}
