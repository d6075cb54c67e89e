// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApply(t *testing.T) {
	tests := []struct {
		name     string
		base     map[string]any
		env      map[string]string
		defaults map[string]any
		want     map[string]any
	}{
		{
			name:     "env overrides, defaults fill, stray env ignored",
			base:     map[string]any{"A": "x", "B": "y"},
			env:      map[string]string{"A": "env_x", "Z": "stray"},
			defaults: map[string]any{"B": "def_y", "C": "def_z"},
			want:     map[string]any{"A": "env_x", "B": "y", "C": "def_z"},
		},
		{
			name:     "env beats default on same key",
			base:     map[string]any{"A": "x"},
			env:      map[string]string{"A": "env_x"},
			defaults: map[string]any{"A": "def_x"},
			want:     map[string]any{"A": "env_x"},
		},
		{
			name:     "present empty and nil values are not defaulted",
			base:     map[string]any{"A": "", "B": nil},
			defaults: map[string]any{"A": "def_a", "B": "def_b"},
			want:     map[string]any{"A": "", "B": nil},
		},
		{
			name:     "env replaces non-string value with string",
			base:     map[string]any{"PORT": 8080},
			env:      map[string]string{"PORT": "9090"},
			want:     map[string]any{"PORT": "9090"},
		},
		{
			name: "empty env value still overrides",
			base: map[string]any{"A": "x"},
			env:  map[string]string{"A": ""},
			want: map[string]any{"A": ""},
		},
		{
			name:     "nil base yields defaults only",
			base:     nil,
			env:      map[string]string{"A": "env_a"},
			defaults: map[string]any{"B": 2},
			want:     map[string]any{"B": 2},
		},
		{
			name: "all nil",
			want: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Apply(tt.base, tt.env, tt.defaults)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApply_DoesNotMutateInputs(t *testing.T) {
	base := map[string]any{"A": "x", "B": "y"}
	env := map[string]string{"A": "env_x"}
	defaults := map[string]any{"C": "def_z"}

	got := Apply(base, env, defaults)
	got["D"] = "added later"

	assert.Equal(t, map[string]any{"A": "x", "B": "y"}, base)
	assert.Equal(t, map[string]string{"A": "env_x"}, env)
	assert.Equal(t, map[string]any{"C": "def_z"}, defaults)
}

func TestResolve_Origins(t *testing.T) {
	_, origins := Resolve(
		map[string]any{"A": "x", "B": "y"},
		map[string]string{"A": "env_x"},
		map[string]any{"B": "def_y", "C": "def_z"},
	)

	assert.Equal(t, map[string]Origin{
		"A": OriginEnv,
		"B": OriginDocument,
		"C": OriginDefault,
	}, origins)
}

func TestApply_Deterministic(t *testing.T) {
	base := map[string]any{"A": "x", "B": "y", "C": "z"}
	env := map[string]string{"B": "env_b"}
	defaults := map[string]any{"D": "d"}

	first := Apply(base, env, defaults)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, Apply(base, env, defaults))
	}
}

func TestEnviron(t *testing.T) {
	tests := []struct {
		name  string
		pairs []string
		want  map[string]string
	}{
		{
			name:  "simple",
			pairs: []string{"A=1", "B=two"},
			want:  map[string]string{"A": "1", "B": "two"},
		},
		{
			name:  "value containing separator",
			pairs: []string{"DSN=user=bob;pass=x"},
			want:  map[string]string{"DSN": "user=bob;pass=x"},
		},
		{
			name:  "empty value kept",
			pairs: []string{"EMPTY="},
			want:  map[string]string{"EMPTY": ""},
		},
		{
			name:  "malformed skipped and last wins",
			pairs: []string{"NOSEP", "=nokey", "A=1", "A=2"},
			want:  map[string]string{"A": "2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Environ(tt.pairs))
		})
	}
}
