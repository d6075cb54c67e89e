// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package output renders a resolved config as a table, JSON or YAML, with
// optional gjson queries, sorting and color.
package output
