// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package settings holds cfgctl's own knobs: where the environment descriptor
// lives and how to reach the object-store bucket. These come from CFGCTL_*
// environment variables and may be overridden by command-line flags.
package settings
