// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgctl/internal/meta"
	"github.com/tfctl/cfgctl/internal/output"
)

func getCommandAction(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("usage: %s", cmd.UsageText)
	}
	key := cmd.Args().First()

	ld, err := NewLoader(cmd)
	if err != nil {
		return err
	}

	cfg, err := ld.Load(ctx, cmd.String("config"))
	if err != nil {
		return err
	}

	var value any
	if cmd.IsSet("fallback") {
		value = cfg.GetOrDefault(key, cmd.String("fallback"))
	} else if value, err = cfg.Get(key); err != nil {
		return err
	}

	_, err = fmt.Fprintln(Writer(cmd), output.ValueToString(value))
	return err
}

func getCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "get",
		Usage:     "print one config value",
		UsageText: "cfgctl get [options] KEY",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags: append(NewGlobalFlags("get", meta.SettingsFile),
			&cli.StringFlag{
				Name:  "fallback",
				Usage: "value printed when KEY is absent",
			},
		),
		Action: getCommandAction,
	}
}
