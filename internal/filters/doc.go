// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters selects rows of a rendered config with --filter
// expressions.
//
// Filters are key-operator-target expressions joined by a delimiter (default
// comma, override with CFGCTL_FILTER_DELIM). The key names a row column:
// key, value or origin. A row is kept only if it matches every filter.
//
// Operators, each negated with a leading "!":
//
//   - = : exact match, numeric when both sides are numbers
//   - ~ : case-insensitive match
//   - ^ : prefix match
//   - < : less than
//   - > : greater than
//   - @ : substring, list element or map key
//   - / : regular expression match
//
// A bare key keeps rows whose column is not empty.
//
// Examples:
//
//   - "key^DB_" : keys starting with DB_
//   - "origin!=document" : values supplied by the environment or defaults
//   - "value>1024" : numeric values above 1024
package filters
