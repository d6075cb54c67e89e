// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgctl/internal/output"
)

// NewGlobalFlags returns the flags shared by every subcommand. Values are
// taken from the command line, then the named environment variable, then the
// settings file, first under the ns key and then at the top level.
func NewGlobalFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "config document path or object key",
			Sources: NameSpacedValueChain(ns, "config", path, "CFGCTL_CONFIG"),
			Value:   "config.yaml",
		},
		&cli.StringSliceFlag{
			Name:    "default",
			Aliases: []string{"d"},
			Usage:   "default value as KEY=VALUE, may be repeated",
			Sources: cli.NewValueSourceChain(cli.EnvVar("CFGCTL_DEFAULTS")),
		},
		&cli.StringSliceFlag{
			Name:  "dotenv",
			Usage: "dotenv file whose variables join the env overlay, may be repeated",
		},
		&cli.StringFlag{
			Name:    "env-file",
			Usage:   "environment descriptor file",
			Sources: NameSpacedValueChain(ns, "env-file", path, "CFGCTL_ENV_FILE"),
		},
		&cli.StringFlag{
			Name:    "base-dir",
			Usage:   "directory relative local paths are resolved against",
			Sources: NameSpacedValueChain(ns, "base-dir", path, "CFGCTL_BASE_DIR"),
		},
		&cli.StringFlag{
			Name:    "bucket",
			Usage:   "bucket holding prod config documents",
			Sources: NameSpacedValueChain(ns, "bucket", path, "CFGCTL_BUCKET"),
		},
		&cli.StringFlag{
			Name:    "region",
			Usage:   "AWS region override",
			Sources: NameSpacedValueChain(ns, "region", path, "CFGCTL_S3_REGION"),
		},
		&cli.StringFlag{
			Name:    "profile",
			Usage:   "AWS shared config profile",
			Sources: NameSpacedValueChain(ns, "profile", path, "CFGCTL_S3_PROFILE"),
		},
		&cli.StringFlag{
			Name:    "endpoint",
			Usage:   "S3-compatible endpoint URL",
			Sources: NameSpacedValueChain(ns, "endpoint", path, "CFGCTL_S3_ENDPOINT"),
		},
		&cli.BoolFlag{
			Name:        "path-style",
			Usage:       "use path-style S3 addressing",
			Sources:     NameSpacedValueChain(ns, "path-style", path, "CFGCTL_S3_PATH_STYLE"),
			HideDefault: true,
		},
	}
}

// NewOutputFlags returns the rendering flags used by dump.
func NewOutputFlags(ns string, path string) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "color",
			Usage:   "colorize text output: auto, always or never",
			Sources: NameSpacedValueChain(ns, "color", path),
			Value:   output.ColorAuto,
			Validator: func(value string) error {
				return FlagValidators(value, ColorValidator)
			},
		},
		&cli.BoolFlag{
			Name:        "origin",
			Usage:       "show which layer supplied each value",
			Sources:     NameSpacedValueChain(ns, "origin", path),
			HideDefault: true,
		},
		&cli.StringFlag{
			Name:    "filter",
			Aliases: []string{"f"},
			Usage:   "comma-separated filters on key, value or origin",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "output format",
			Sources: NameSpacedValueChain(ns, "output", path),
			Value:   output.FormatText,
			Validator: func(value string) error {
				return FlagValidators(value, OutputValidator)
			},
		},
		&cli.IntFlag{
			Name:    "padding",
			Usage:   "spaces between text columns",
			Sources: NameSpacedValueChain(ns, "padding", path),
			Value:   output.DefaultPadding,
		},
		&cli.StringFlag{
			Name:    "query",
			Aliases: []string{"q"},
			Usage:   "gjson path selecting part of the config",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated columns to sort text output by",
			Sources: NameSpacedValueChain(ns, "sort", path),
			Value:   output.ColKey,
		},
		&cli.BoolFlag{
			Name:        "titles",
			Aliases:     []string{"t"},
			Usage:       "show titles with text output",
			Sources:     NameSpacedValueChain(ns, "titles", path),
			HideDefault: true,
		},
	}
}

// NameSpacedValueChain builds a source chain of the given environment
// variables followed by the namespaced and global keys of the settings file.
func NameSpacedValueChain(ns string, name string, path string, envVars ...string) cli.ValueSourceChain {
	var sources []cli.ValueSource
	for _, e := range envVars {
		sources = append(sources, cli.EnvVar(e))
	}

	if path != "" {
		if ns != "" {
			sources = append(sources, yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)))
		}
		sources = append(sources, yaml.YAML(name, altsrc.StringSourcer(path)))
	}

	return cli.NewValueSourceChain(sources...)
}
