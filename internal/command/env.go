// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tfctl/cfgctl/internal/meta"
)

func envCommandAction(ctx context.Context, cmd *cli.Command) error {
	ld, err := NewLoader(cmd)
	if err != nil {
		return err
	}

	w := Writer(cmd)
	fmt.Fprintf(w, "%-12s%s\n", "environment", ld.Environment())
	fmt.Fprintf(w, "%-12s%s\n", "backend", ld.Backend())
	fmt.Fprintf(w, "%-12s%s\n", "settings", describeFile(GetMeta(cmd).SettingsFile))

	return nil
}

// describeFile names path with its size and age, or notes it is absent.
func describeFile(path string) string {
	if path == "" {
		return "-"
	}

	info, err := os.Stat(path)
	if err != nil {
		return path + " (not found)"
	}

	return fmt.Sprintf("%s (%s, modified %s)", path,
		humanize.Bytes(uint64(info.Size())), humanize.Time(info.ModTime()))
}

func envCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "env",
		Usage:     "show the environment and the backend it selects",
		UsageText: "cfgctl env [options]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Flags:  NewGlobalFlags("env", meta.SettingsFile),
		Action: envCommandAction,
	}
}
