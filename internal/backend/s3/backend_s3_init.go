// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"

	"github.com/tfctl/cfgctl/internal/log"
	"github.com/tfctl/cfgctl/internal/settings"
)

type BackendS3Option = func(ctx context.Context, be *BackendS3) error

// NewBackendS3 returns a BackendS3 object that implements the Backend
// interface. The S3 client itself is created on first Fetch unless one is
// injected with WithClient.
func NewBackendS3(ctx context.Context, options ...BackendS3Option) (*BackendS3, error) {
	options = append([]BackendS3Option{WithDefaults()}, options...)

	be := &BackendS3{}

	for _, opt := range options {
		if err := opt(ctx, be); err != nil {
			return nil, err
		}
	}

	log.Debugf("NewBackendS3: bucket=%s region=%s endpoint=%s", be.Bucket, be.Region, be.Endpoint)
	return be, nil
}

func WithDefaults() BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		be.Bucket = settings.DefaultBucket
		return nil
	}
}

// WithBucket sets the bucket. An empty name keeps the default.
func WithBucket(bucket string) BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		if bucket != "" {
			be.Bucket = bucket
		}
		return nil
	}
}

func WithRegion(region string) BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		be.Region = region
		return nil
	}
}

func WithProfile(profile string) BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		be.Profile = profile
		return nil
	}
}

// WithEndpoint targets an S3-compatible endpoint, optionally with path-style
// addressing.
func WithEndpoint(endpoint string, pathStyle bool) BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		be.Endpoint = endpoint
		be.PathStyle = pathStyle
		return nil
	}
}

// WithClient injects the object getter, bypassing AWS config loading.
func WithClient(client ObjectGetter) BackendS3Option {
	return func(ctx context.Context, be *BackendS3) error {
		be.svc = client
		return nil
	}
}
