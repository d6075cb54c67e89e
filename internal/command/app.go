// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"os"
	"path/filepath"
	"sort"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgctl/internal/log"
	"github.com/tfctl/cfgctl/internal/meta"
)

// InitApp builds the root command. Every subcommand carries the global flags,
// each of which may also be sourced from the settings file.
func InitApp(ctx context.Context, args []string) (*cli.Command, error) {
	sd, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	meta := meta.Meta{
		Args:         args,
		Context:      ctx,
		SettingsFile: SettingsFile(),
		StartingDir:  sd,
	}
	log.Debugf("settings file: %s", meta.SettingsFile)

	app := &cli.Command{
		Name:  "cfgctl",
		Usage: "Resolve environment-aware configuration",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "cfgctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		getCommandBuilder(meta),
		dumpCommandBuilder(meta),
		envCommandBuilder(meta),
		diffCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}

// SettingsFile returns the YAML file flag values are read from:
// CFGCTL_SETTINGS if set, else cfgctl.yaml in the user config dir.
func SettingsFile() string {
	if p := os.Getenv("CFGCTL_SETTINGS"); p != "" {
		return p
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cfgctl.yaml")
}
