// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package filters

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

// testBuildFiltersCase represents a single test case for TestBuildFilters.
type testBuildFiltersCase struct {
	Name      string   `yaml:"name"`
	Spec      string   `yaml:"spec"`
	Delimiter string   `yaml:"delimiter"`
	Want      []Filter `yaml:"want"`
	WantCount int      `yaml:"wantCount"`
}

// testCheckStringOperandCase represents a single test case for
// TestCheckStringOperand.
type testCheckStringOperandCase struct {
	Name   string `yaml:"name"`
	Value  string `yaml:"value"`
	Filter Filter `yaml:"filter"`
	Want   bool   `yaml:"want"`
}

// testFilterRowsCase represents a single test case for TestFilterRows.
type testFilterRowsCase struct {
	Name     string   `yaml:"name"`
	Spec     string   `yaml:"spec"`
	WantKeys []string `yaml:"wantKeys"`
}

// loadTestData loads test data from embedded YAML files.
func loadTestData(filename string, v any) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func rows() []map[string]any {
	return []map[string]any{
		{"key": "DB_HOST", "value": "localhost", "origin": "document"},
		{"key": "DB_PORT", "value": 5432, "origin": "document"},
		{"key": "DEBUG", "value": true, "origin": "env"},
		{"key": "EMPTY", "value": "", "origin": "document"},
		{"key": "HOSTS", "value": []any{"a", "b"}, "origin": "document"},
		{"key": "LOG_LEVEL", "value": "info", "origin": "default"},
	}
}

func TestBuildFilters(t *testing.T) {
	var tests []testBuildFiltersCase
	require.NoError(t, loadTestData("build_filters.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			if tt.Delimiter != "" {
				t.Setenv("CFGCTL_FILTER_DELIM", tt.Delimiter)
			}

			got := BuildFilters(tt.Spec)
			require.Len(t, got, tt.WantCount)
			for i, filter := range tt.Want {
				assert.Equal(t, filter.Key, got[i].Key)
				assert.Equal(t, filter.Operand, got[i].Operand)
				assert.Equal(t, filter.Value, got[i].Value)
				assert.Equal(t, filter.Negate, got[i].Negate)
			}
		})
	}
}

func TestCheckStringOperand(t *testing.T) {
	var tests []testCheckStringOperandCase
	require.NoError(t, loadTestData("check_string_operand.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Want, checkStringOperand(tt.Value, tt.Filter))
		})
	}
}

func TestCheckNumericOperand(t *testing.T) {
	tests := []struct {
		name   string
		value  float64
		filter Filter
		want   bool
	}{
		{name: "equals", value: 5, filter: Filter{Operand: "=", Value: "5"}, want: true},
		{name: "not equals", value: 5, filter: Filter{Operand: "=", Value: "5", Negate: true}, want: false},
		{name: "greater", value: 8080, filter: Filter{Operand: ">", Value: "1024"}, want: true},
		{name: "less", value: 0.5, filter: Filter{Operand: "<", Value: "1"}, want: true},
		{name: "non numeric target", value: 42, filter: Filter{Operand: "^", Value: "4"}, want: true},
		{name: "regex on number", value: 8080, filter: Filter{Operand: "/", Value: "^80"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, checkNumericOperand(tt.value, tt.filter))
		})
	}
}

func TestCheckContainsOperand(t *testing.T) {
	assert.True(t, checkContainsOperand([]any{"a", 1}, Filter{Operand: "@", Value: "1"}))
	assert.False(t, checkContainsOperand([]any{"a"}, Filter{Operand: "@", Value: "a", Negate: true}))
	assert.True(t, checkContainsOperand(map[string]any{"k": 1}, Filter{Operand: "@", Value: "k"}))
	assert.True(t, checkContainsOperand(map[string]any{"k": 1}, Filter{Operand: "@", Value: "x", Negate: true}))
	assert.False(t, checkContainsOperand([]any{"a"}, Filter{Operand: "=", Value: "a"}))
}

func TestFilterRows(t *testing.T) {
	var tests []testFilterRowsCase
	require.NoError(t, loadTestData("filter_rows.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			got := FilterRows(rows(), tt.Spec)

			keys := []string{}
			for _, row := range got {
				keys = append(keys, row["key"].(string))
			}
			assert.Equal(t, tt.WantKeys, keys)
		})
	}
}
