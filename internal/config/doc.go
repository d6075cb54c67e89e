// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config holds the resolved configuration value handed back to
// callers, together with the error kinds shared by the loading pipeline.
//
// A Config is immutable: it is built once from the merged key/value mapping and
// the path or object key it was loaded from. Reads go through explicit
// accessors; asking for an absent key is an ErrMissingKey error rather than a
// zero value. Defaults are applied while merging, never at read time, except
// where a caller passes its own fallback to GetOrDefault or a typed getter.
package config
