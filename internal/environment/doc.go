// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package environment reports which deployment environment is active. The
// indicator is a short string ("test" or "prod") read once at loader
// construction, normally from a one-line descriptor file named env.
package environment
