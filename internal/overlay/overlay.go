// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package overlay

import (
	"strings"
)

// Origin names the layer that supplied a resolved value.
type Origin string

const (
	// OriginDocument is a value taken unchanged from the parsed document.
	OriginDocument Origin = "document"
	// OriginEnv is a document value replaced by an environment variable.
	OriginEnv Origin = "env"
	// OriginDefault is a value filled in from the caller's defaults.
	OriginDefault Origin = "default"
)

// Apply returns base with the environment overlay and the defaults fill-in
// applied. None of the inputs are modified.
func Apply(base map[string]any, env map[string]string, defaults map[string]any) map[string]any {
	values, _ := Resolve(base, env, defaults)
	return values
}

// Resolve is Apply that also reports, for every key of the result, which layer
// its value came from.
//
// The result's key set is keys(base) plus keys(defaults) not in base. Keys that
// appear only in env are never introduced.
func Resolve(base map[string]any, env map[string]string, defaults map[string]any) (map[string]any, map[string]Origin) {
	values := make(map[string]any, len(base)+len(defaults))
	origins := make(map[string]Origin, len(base)+len(defaults))

	for key, value := range base {
		if envValue, ok := env[key]; ok {
			values[key] = envValue
			origins[key] = OriginEnv
			continue
		}
		values[key] = value
		origins[key] = OriginDocument
	}

	for key, value := range defaults {
		if _, ok := values[key]; ok {
			continue
		}
		values[key] = value
		origins[key] = OriginDefault
	}

	return values, origins
}

// Environ converts os.Environ style KEY=VALUE pairs into a map. Entries
// without a separator are skipped; for repeated names the last one wins.
func Environ(pairs []string) map[string]string {
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			continue
		}
		env[key] = value
	}
	return env
}
