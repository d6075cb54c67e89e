// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package s3

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"

	awsx "github.com/tfctl/cfgctl/internal/aws"
	"github.com/tfctl/cfgctl/internal/config"
	"github.com/tfctl/cfgctl/internal/log"
)

// ObjectGetter is the part of the S3 API the backend uses. *s3v2.Client
// satisfies it.
type ObjectGetter interface {
	GetObject(ctx context.Context, params *s3v2.GetObjectInput, optFns ...func(*s3v2.Options)) (*s3v2.GetObjectOutput, error)
}

// BackendS3 reads configuration documents as objects of a single bucket.
type BackendS3 struct {
	Bucket    string
	Region    string
	Profile   string
	Endpoint  string
	PathStyle bool

	mu  sync.Mutex
	svc ObjectGetter
}

// Fetch implements backend.Backend. path is the object key. Missing keys,
// network and auth failures are all reported as a *config.SourceError.
func (be *BackendS3) Fetch(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, config.NewSourceError(path, errors.New("empty object key"))
	}

	svc, err := be.client(ctx)
	if err != nil {
		return nil, config.NewSourceError(path, fmt.Errorf("failed to load AWS config: %w", err))
	}

	log.Debugf("s3 fetch: bucket=%s key=%s", be.Bucket, path)
	result, err := svc.GetObject(ctx, &s3v2.GetObjectInput{
		Bucket: awsv2.String(be.Bucket),
		Key:    awsv2.String(path),
	})
	if err != nil {
		return nil, config.NewSourceError(path, fmt.Errorf("failed to get S3 object s3://%s/%s: %w", be.Bucket, path, err))
	}
	defer result.Body.Close()

	data, err := io.ReadAll(result.Body)
	if err != nil {
		return nil, config.NewSourceError(path, fmt.Errorf("failed to read S3 object body: %w", err))
	}

	return data, nil
}

// client returns the injected getter or builds an S3 client from the
// backend's AWS settings on first use.
func (be *BackendS3) client(ctx context.Context) (ObjectGetter, error) {
	be.mu.Lock()
	defer be.mu.Unlock()

	if be.svc != nil {
		return be.svc, nil
	}

	var cfgOpts []awsx.Option
	if be.Region != "" {
		cfgOpts = append(cfgOpts, awsx.WithRegion(be.Region))
	}
	if be.Profile != "" {
		cfgOpts = append(cfgOpts, awsx.WithProfile(be.Profile))
	}
	cfg, err := awsx.LoadAWSConfig(ctx, cfgOpts...)
	if err != nil {
		return nil, err
	}

	be.svc = awsx.NewS3(cfg,
		awsx.WithBaseEndpoint(be.Endpoint),
		awsx.WithPathStyle(be.PathStyle),
	)
	return be.svc, nil
}

func (be *BackendS3) String() string {
	return "s3://" + be.Bucket
}

func (be *BackendS3) Type() string {
	return "s3"
}
