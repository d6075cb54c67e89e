// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgctl/internal/differ"
	"github.com/tfctl/cfgctl/internal/meta"
	"github.com/tfctl/cfgctl/internal/output"
)

// diffCommandAction loads --config, resets the loader and loads OTHER, then
// diffs the two resolved configs. Both go through the same overlays.
func diffCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}
	other := cmd.Args().First()

	ld, err := NewLoader(cmd)
	if err != nil {
		return err
	}

	left, err := ld.Load(ctx, cmd.String("config"))
	if err != nil {
		return err
	}

	ld.Reset()
	right, err := ld.Load(ctx, other)
	if err != nil {
		return err
	}

	w := Writer(cmd)
	color, err := output.ColorEnabled(cmd.String("color"), w)
	if err != nil {
		return err
	}

	_, err = differ.Diff(w, left.Values(), right.Values(), differ.Options{
		Ignore: cmd.StringSlice("ignore"),
		Color:  color,
	})
	return err
}

func diffCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "diff",
		Usage:     "compare the resolved config with another document",
		UsageText: "cfgctl diff [options] OTHER",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(NewGlobalFlags("diff", meta.SettingsFile),
			&cli.StringSliceFlag{
				Name:  "ignore",
				Usage: "top-level keys left out of the comparison",
			},
			&cli.StringFlag{
				Name:  "color",
				Usage: "colorize the diff: auto, always or never",
				Value: output.ColorAuto,
				Validator: func(value string) error {
					return FlagValidators(value, ColorValidator)
				},
			},
		),
		Action: diffCommandAction,
	}
}
