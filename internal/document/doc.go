// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package document turns raw configuration bytes into a flat key/value
// mapping. YAML is the default format; files ending in .hcl are read as HCL
// attribute lists.
package document
