// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package backend selects where configuration documents are fetched from. The
// "test" environment reads the local filesystem; "prod" reads objects from an
// S3 bucket. Any other environment indicator is rejected.
package backend
