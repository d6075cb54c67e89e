// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

import (
	"context"
)

// Meta contains runtime metadata shared by commands. It carries the CLI
// arguments, the context, the settings file flags may be sourced from and
// the starting working directory.
type Meta struct {
	Args         []string
	Context      context.Context
	SettingsFile string
	StartingDir  string
}
