// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package output

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tfctl/cfgctl/internal/config"
	"github.com/tfctl/cfgctl/internal/overlay"
)

func sampleConfig() *config.Config {
	return config.New(map[string]any{
		"A":  "env_x",
		"B":  "y",
		"C":  "def_z",
		"db": map[string]any{"host": "localhost", "port": 5432},
	}, "config.yaml", map[string]overlay.Origin{
		"A":  overlay.OriginEnv,
		"B":  overlay.OriginDocument,
		"C":  overlay.OriginDefault,
		"db": overlay.OriginDocument,
	})
}

func TestValueToString(t *testing.T) {
	tests := []struct {
		name  string
		value any
		empty []string
		want  string
	}{
		{name: "nil", value: nil, want: ""},
		{name: "nil with empty value", value: nil, empty: []string{"-"}, want: "-"},
		{name: "empty string with empty value", value: "", empty: []string{"-"}, want: "-"},
		{name: "string", value: "abc", want: "abc"},
		{name: "int", value: 42, want: "42"},
		{name: "int64", value: int64(-7), want: "-7"},
		{name: "whole float", value: 2.0, want: "2"},
		{name: "fractional float", value: 30.5, want: "30.5"},
		{name: "false is not empty", value: false, empty: []string{"-"}, want: "false"},
		{name: "zero is not empty", value: 0, empty: []string{"-"}, want: "0"},
		{name: "list", value: []any{"a", 1}, want: `["a",1]`},
		{name: "map", value: map[string]any{"k": "v"}, want: `{"k":"v"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValueToString(tt.value, tt.empty...))
		})
	}
}

func TestSortRows(t *testing.T) {
	rows := func() []map[string]any {
		return []map[string]any{
			{"key": "zebra", "value": 3, "origin": "env"},
			{"key": "Alpha", "value": 10, "origin": "document"},
			{"key": "beta", "value": 2.5, "origin": "document"},
		}
	}

	tests := []struct {
		name      string
		spec      string
		wantOrder []string
	}{
		{name: "no spec keeps order", spec: "", wantOrder: []string{"zebra", "Alpha", "beta"}},
		{name: "ascending by key", spec: "key", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "descending by key", spec: "-key", wantOrder: []string{"zebra", "beta", "Alpha"}},
		{name: "case sensitive", spec: "!key", wantOrder: []string{"Alpha", "beta", "zebra"}},
		{name: "numeric value", spec: "value", wantOrder: []string{"beta", "zebra", "Alpha"}},
		{name: "multiple fields", spec: "origin,-key", wantOrder: []string{"beta", "Alpha", "zebra"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := rows()
			SortRows(data, tt.spec)

			var got []string
			for _, r := range data {
				got = append(got, r["key"].(string))
			}
			assert.Equal(t, tt.wantOrder, got)
		})
	}
}

func TestSpit_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.New(map[string]any{"B": 1, "A": "x"}, "c.yaml", nil)

	require.NoError(t, Spit(&buf, cfg, Options{Format: FormatJSON}))
	assert.Equal(t, "{\n  \"A\": \"x\",\n  \"B\": 1\n}\n", buf.String())
}

func TestSpit_YAML(t *testing.T) {
	var buf bytes.Buffer
	cfg := config.New(map[string]any{"B": 1, "A": "x"}, "c.yaml", nil)

	require.NoError(t, Spit(&buf, cfg, Options{Format: FormatYAML}))
	assert.Equal(t, "A: x\nB: 1\n", buf.String())
}

func TestSpit_Text(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Spit(&buf, sampleConfig(), Options{Format: FormatText}))
	out := buf.String()

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "A")
	assert.Contains(t, lines[0], "env_x")
	assert.Contains(t, lines[3], `{"host":"localhost","port":5432}`)
	assert.NotContains(t, out, "document")
	assert.NotContains(t, out, "\x1b[")
}

func TestSpit_TextWithOriginAndTitles(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Spit(&buf, sampleConfig(), Options{Origin: true, Titles: true, Sort: "-key"}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], ColKey)
	assert.Contains(t, lines[0], ColOrigin)
	assert.Contains(t, lines[1], "db")
	assert.Contains(t, lines[4], "env")
}

func TestSpit_TextPadding(t *testing.T) {
	valueColumn := func(padding int) int {
		var buf bytes.Buffer
		require.NoError(t, Spit(&buf, sampleConfig(), Options{Format: FormatText, Padding: padding}))
		first, _, _ := strings.Cut(buf.String(), "\n")
		return strings.Index(first, "env_x")
	}

	none := valueColumn(0)
	require.Positive(t, none)
	assert.Equal(t, none+DefaultPadding, valueColumn(DefaultPadding))
	assert.Equal(t, none+5, valueColumn(5))
	assert.Equal(t, none, valueColumn(-3))
}

func TestSpit_TextEmpty(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Spit(&buf, config.New(nil, "c.yaml", nil), Options{}))
	assert.Empty(t, buf.String())
}

func TestSpit_Query(t *testing.T) {
	tests := []struct {
		name   string
		query  string
		format string
		want   string
	}{
		{name: "scalar text", query: "A", want: "env_x\n"},
		{name: "nested text", query: "db.port", want: "5432\n"},
		{name: "nested json", query: "db", format: FormatJSON, want: "{\n  \"host\": \"localhost\",\n  \"port\": 5432\n}\n"},
		{name: "nested yaml", query: "db.host", format: FormatYAML, want: "localhost\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Spit(&buf, sampleConfig(), Options{Query: tt.query, Format: tt.format}))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSpit_QueryNoMatch(t *testing.T) {
	var buf bytes.Buffer

	err := Spit(&buf, sampleConfig(), Options{Query: "nope.nothing"})
	assert.ErrorIs(t, err, ErrNoMatch)
	assert.Empty(t, buf.String())
}

func TestSpit_InvalidFormat(t *testing.T) {
	err := Spit(&bytes.Buffer{}, sampleConfig(), Options{Format: "raw"})
	assert.ErrorContains(t, err, "invalid output format")
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer

	got, err := ColorEnabled(ColorAlways, &buf)
	require.NoError(t, err)
	assert.True(t, got)

	got, err = ColorEnabled(ColorNever, os.Stdout)
	require.NoError(t, err)
	assert.False(t, got)

	got, err = ColorEnabled(ColorAuto, &buf)
	require.NoError(t, err)
	assert.False(t, got, "a buffer is never a terminal")

	t.Setenv("NO_COLOR", "1")
	got, err = ColorEnabled(ColorAuto, os.Stdout)
	require.NoError(t, err)
	assert.False(t, got)

	_, err = ColorEnabled("sometimes", &buf)
	assert.Error(t, err)
}

func TestSpit_Filter(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, Spit(&buf, sampleConfig(), Options{Format: FormatJSON, Filter: "origin!=document"}))
	assert.JSONEq(t, `{"A":"env_x","C":"def_z"}`, buf.String())

	buf.Reset()
	require.NoError(t, Spit(&buf, sampleConfig(), Options{Filter: "key=B"}))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "y")

	buf.Reset()
	err := Spit(&buf, sampleConfig(), Options{Filter: "key=B", Query: "A"})
	assert.ErrorIs(t, err, ErrNoMatch)
}
