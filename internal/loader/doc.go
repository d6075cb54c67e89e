// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package loader ties the pipeline together: it resolves the environment
// indicator once, picks the matching backend once, and then fetches, parses
// and overlays a configuration document on demand.
//
// There is one Loader per process. The first call to New fixes the defaults
// and the backend; later calls return the same instance and ignore their
// arguments. The first successful Load is memoized and returned to every later
// caller regardless of the path they pass, until Reset clears it.
//
//	ld, err := loader.New(map[string]any{"LOG_LEVEL": "info"})
//	if err != nil {
//		return err
//	}
//	cfg, err := ld.Load(ctx, "service/config.yaml")
//	level, _ := cfg.GetString("LOG_LEVEL")
package loader
