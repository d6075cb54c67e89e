// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/cfgctl/internal/loader"
	"github.com/tfctl/cfgctl/internal/log"
	"github.com/tfctl/cfgctl/internal/meta"
	"github.com/tfctl/cfgctl/internal/settings"
)

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// Writer returns the root command's writer, defaulting to stdout.
func Writer(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// BuildSettings layers the backend flags over the CFGCTL_* environment.
func BuildSettings(cmd *cli.Command) (settings.Settings, error) {
	envSettings, err := settings.FromEnv()
	if err != nil {
		return settings.Settings{}, err
	}

	flagSettings := settings.Settings{
		EnvFile:   cmd.String("env-file"),
		BaseDir:   cmd.String("base-dir"),
		Bucket:    cmd.String("bucket"),
		Region:    cmd.String("region"),
		Profile:   cmd.String("profile"),
		Endpoint:  cmd.String("endpoint"),
		PathStyle: cmd.Bool("path-style"),
	}

	merged, err := settings.Merge(envSettings, flagSettings)
	if err != nil {
		return settings.Settings{}, err
	}

	// Merge skips zero values, so an explicit false has to be applied here.
	if cmd.IsSet("path-style") {
		merged.PathStyle = cmd.Bool("path-style")
	}
	return merged, nil
}

// NewLoader returns the process loader built from the command's flags.
func NewLoader(cmd *cli.Command) (*loader.Loader, error) {
	s, err := BuildSettings(cmd)
	if err != nil {
		return nil, err
	}

	defaults, err := ParseDefaults(cmd.StringSlice("default"))
	if err != nil {
		return nil, err
	}
	log.Debugf("cli defaults: %v", defaults)

	opts := []loader.Option{loader.WithSettings(s)}
	if files := cmd.StringSlice("dotenv"); len(files) > 0 {
		environ, err := DotenvEnviron(files)
		if err != nil {
			return nil, err
		}
		opts = append(opts, loader.WithEnviron(environ))
	}

	return loader.New(defaults, opts...)
}

// DotenvEnviron reads the dotenv files once and returns an environ function
// that lists their pairs ahead of the process environment, so real variables
// win. The process environment is not modified.
func DotenvEnviron(files []string) (func() []string, error) {
	extra, err := godotenv.Read(files...)
	if err != nil {
		return nil, fmt.Errorf("failed to read dotenv: %w", err)
	}
	log.Debugf("dotenv: files=%v vars=%d", files, len(extra))

	return func() []string {
		pairs := make([]string, 0, len(extra))
		for k, v := range extra {
			pairs = append(pairs, k+"="+v)
		}
		return append(pairs, os.Environ()...)
	}, nil
}

// ParseDefaults turns KEY=VALUE pairs into a defaults map. Scalar values are
// typed the way a YAML document would type them; anything else stays a
// string.
func ParseDefaults(pairs []string) (map[string]any, error) {
	defaults := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid default %q: want KEY=VALUE", pair)
		}
		defaults[key] = scalar(value)
	}
	return defaults, nil
}

func scalar(value string) any {
	if value == "" {
		return value
	}

	var v any
	if err := yaml.Unmarshal([]byte(value), &v); err != nil {
		return value
	}

	switch v.(type) {
	case int, float64, bool, string:
		return v
	default:
		return value
	}
}
