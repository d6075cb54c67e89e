// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package overlay layers process environment variables and caller defaults on
// top of a parsed configuration document. Environment values only replace keys
// the document already has; defaults only fill keys that are still absent.
package overlay
