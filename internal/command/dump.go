// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgctl/internal/meta"
	"github.com/tfctl/cfgctl/internal/output"
)

func dumpCommandAction(ctx context.Context, cmd *cli.Command) error {
	ld, err := NewLoader(cmd)
	if err != nil {
		return err
	}

	cfg, err := ld.Load(ctx, cmd.String("config"))
	if err != nil {
		return err
	}

	w := Writer(cmd)
	color, err := output.ColorEnabled(cmd.String("color"), w)
	if err != nil {
		return err
	}

	return output.Spit(w, cfg, output.Options{
		Format:  cmd.String("output"),
		Query:   cmd.String("query"),
		Filter:  cmd.String("filter"),
		Sort:    cmd.String("sort"),
		Origin:  cmd.Bool("origin"),
		Titles:  cmd.Bool("titles"),
		Color:   color,
		Padding: cmd.Int("padding"),
	})
}

func dumpCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "print the resolved config",
		UsageText: "cfgctl dump [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(NewGlobalFlags("dump", meta.SettingsFile),
			NewOutputFlags("dump", meta.SettingsFile)...),
		Action: dumpCommandAction,
	}
}
