// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package aws

import (
	"context"
	"testing"

	awsv2 "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/aws/retry"
	s3v2 "github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestOptions verifies that option functions populate the options struct.
func TestOptions(t *testing.T) {
	var opts options
	WithProfile("ops")(&opts)
	WithRegion("ap-southeast-1")(&opts)
	WithRetryer(func() awsv2.Retryer { return retry.NewStandard() })(&opts)

	assert.Equal(t, "ops", opts.profile)
	assert.Equal(t, "ap-southeast-1", opts.region)
	require.NotNil(t, opts.retryer)
	assert.NotNil(t, opts.retryer())
}

// TestLoadAWSConfig_WithRegion verifies that region option is applied
// during config loading.
func TestLoadAWSConfig_WithRegion(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-west-2"))

	require.NoError(t, err)
	assert.Equal(t, "us-west-2", cfg.Region)
}

// TestLoadAWSConfig_OptionsOrder verifies that later options override
// earlier ones.
func TestLoadAWSConfig_OptionsOrder(t *testing.T) {
	cfg, err := LoadAWSConfig(
		context.Background(),
		WithRegion("us-east-1"),
		WithRegion("eu-west-1"),
	)

	require.NoError(t, err)
	assert.Equal(t, "eu-west-1", cfg.Region)
}

// TestLoadAWSConfig_MissingProfile verifies an unknown shared profile is an
// error rather than a silent fallback.
func TestLoadAWSConfig_MissingProfile(t *testing.T) {
	t.Setenv("AWS_CONFIG_FILE", "testdata/does-not-exist")
	t.Setenv("AWS_SHARED_CREDENTIALS_FILE", "testdata/does-not-exist")

	_, err := LoadAWSConfig(context.Background(), WithProfile("cfgctl-no-such-profile"))
	assert.Error(t, err)
}

// TestNewS3_Options verifies endpoint and addressing options reach the
// client.
func TestNewS3_Options(t *testing.T) {
	cfg, err := LoadAWSConfig(context.Background(), WithRegion("us-east-1"))
	require.NoError(t, err)

	client := NewS3(cfg, WithBaseEndpoint("http://localhost:4566"), WithPathStyle(true))
	require.NotNil(t, client)

	o := client.Options()
	require.NotNil(t, o.BaseEndpoint)
	assert.Equal(t, "http://localhost:4566", *o.BaseEndpoint)
	assert.True(t, o.UsePathStyle)
}

// TestWithBaseEndpoint_Empty verifies an empty endpoint leaves the default.
func TestWithBaseEndpoint_Empty(t *testing.T) {
	var o s3v2.Options
	WithBaseEndpoint("")(&o)
	assert.Nil(t, o.BaseEndpoint)
}
