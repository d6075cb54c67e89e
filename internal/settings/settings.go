// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package settings

import (
	"fmt"

	"dario.cat/mergo"
	"github.com/caarlos0/env/v11"
)

// DefaultBucket is the object-store bucket used by the prod backend.
const DefaultBucket = "configs"

// Settings configures backend selection and the backends themselves.
//
// Struct tags:
//   - env: variable name, all prefixed with CFGCTL_.
//   - envDefault: value used when the variable is unset.
type Settings struct {
	// EnvFile is the path of the environment descriptor file.
	EnvFile string `env:"ENV_FILE" envDefault:"env"`

	// BaseDir resolves relative paths for the local backend. Empty means the
	// working directory.
	BaseDir string `env:"BASE_DIR"`

	// Bucket is the object-store bucket for the prod backend.
	Bucket string `env:"BUCKET" envDefault:"configs"`

	// Region, Profile: AWS overrides. Empty inherits the shared config chain.
	Region  string `env:"S3_REGION"`
	Profile string `env:"S3_PROFILE"`

	// Endpoint points the S3 client at an S3-compatible service.
	Endpoint string `env:"S3_ENDPOINT"`

	// PathStyle forces path-style addressing, usually with Endpoint.
	PathStyle bool `env:"S3_PATH_STYLE"`
}

// Default returns Settings with only the built-in defaults applied.
func Default() Settings {
	return Settings{
		EnvFile: "env",
		Bucket:  DefaultBucket,
	}
}

// FromEnv parses CFGCTL_* environment variables on top of the defaults.
func FromEnv() (Settings, error) {
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Prefix: "CFGCTL_"}); err != nil {
		return Settings{}, fmt.Errorf("error getting env settings: %w", err)
	}
	return s, nil
}

// Merge layers each override onto base in order. Only non-zero override
// fields replace base values, so a flag left unset keeps the env value.
func Merge(base Settings, overrides ...Settings) (Settings, error) {
	merged := base
	for _, o := range overrides {
		if err := mergo.Merge(&merged, o, mergo.WithOverride); err != nil {
			return Settings{}, fmt.Errorf("error merging settings: %w", err)
		}
	}
	return merged, nil
}
