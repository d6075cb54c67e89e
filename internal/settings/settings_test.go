// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package settings

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, name := range []string{
		"CFGCTL_ENV_FILE", "CFGCTL_BASE_DIR", "CFGCTL_BUCKET", "CFGCTL_S3_REGION",
		"CFGCTL_S3_PROFILE", "CFGCTL_S3_ENDPOINT", "CFGCTL_S3_PATH_STYLE",
	} {
		// Setenv registers the restore; Unsetenv makes the variable absent.
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}

	s, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, Default(), s)
}

func TestFromEnv_AllFields(t *testing.T) {
	t.Setenv("CFGCTL_ENV_FILE", "/etc/app/env")
	t.Setenv("CFGCTL_BASE_DIR", "/srv/conf")
	t.Setenv("CFGCTL_BUCKET", "other-configs")
	t.Setenv("CFGCTL_S3_REGION", "eu-west-1")
	t.Setenv("CFGCTL_S3_PROFILE", "ops")
	t.Setenv("CFGCTL_S3_ENDPOINT", "http://localhost:4566")
	t.Setenv("CFGCTL_S3_PATH_STYLE", "true")

	s, err := FromEnv()
	require.NoError(t, err)

	assert.Equal(t, Settings{
		EnvFile:   "/etc/app/env",
		BaseDir:   "/srv/conf",
		Bucket:    "other-configs",
		Region:    "eu-west-1",
		Profile:   "ops",
		Endpoint:  "http://localhost:4566",
		PathStyle: true,
	}, s)
}

func TestFromEnv_BadBool(t *testing.T) {
	t.Setenv("CFGCTL_S3_PATH_STYLE", "sometimes")

	_, err := FromEnv()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env settings")
}

func TestDefault(t *testing.T) {
	s := Default()
	assert.Equal(t, "env", s.EnvFile)
	assert.Equal(t, DefaultBucket, s.Bucket)
}

func TestMerge(t *testing.T) {
	base := Settings{EnvFile: "env", Bucket: "configs", Region: "us-east-1"}

	got, err := Merge(base,
		Settings{Bucket: "from-flag"},
		Settings{Endpoint: "http://minio:9000", PathStyle: true},
	)
	require.NoError(t, err)

	assert.Equal(t, Settings{
		EnvFile:   "env",
		Bucket:    "from-flag",
		Region:    "us-east-1",
		Endpoint:  "http://minio:9000",
		PathStyle: true,
	}, got)

	// base is a value and must be untouched.
	assert.Equal(t, "configs", base.Bucket)
}

func TestMerge_NoOverrides(t *testing.T) {
	got, err := Merge(Default())
	require.NoError(t, err)
	assert.Equal(t, Default(), got)
}
