// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"

	"github.com/tfctl/cfgctl/internal/config"
	"github.com/tfctl/cfgctl/internal/filters"
	"github.com/tfctl/cfgctl/internal/log"
)

// Output formats accepted by --output.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// Formats lists the accepted --output values.
var Formats = []string{FormatText, FormatJSON, FormatYAML}

// ErrNoMatch is returned when a query selects nothing.
var ErrNoMatch = errors.New("query matched nothing")

// Options controls how a Config is rendered.
type Options struct {
	Format  string
	Query   string
	Filter  string
	Sort    string
	Origin  bool
	Titles  bool
	Color   bool
	Padding int
}

// DefaultPadding is the --padding default between text columns.
const DefaultPadding = 2

// Columns of a text row.
const (
	ColKey    = "key"
	ColValue  = "value"
	ColOrigin = "origin"
)

// Spit renders cfg to w according to opts. If w is nil, os.Stdout is used.
func Spit(w io.Writer, cfg *config.Config, opts Options) error {
	if w == nil {
		w = os.Stdout
	}

	if opts.Query != "" {
		return spitQuery(w, cfg, opts)
	}

	rows := filters.FilterRows(Rows(cfg, opts.Sort), opts.Filter)

	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, values(rows))
	case FormatYAML:
		return writeYAML(w, values(rows))
	case FormatText, "":
		TableWriter(w, rows, opts)
		return nil
	}
	return fmt.Errorf("invalid output format %q: must be one of %v", opts.Format, Formats)
}

// spitQuery evaluates opts.Query as a gjson path over the JSON rendering of
// cfg and writes the match.
func spitQuery(w io.Writer, cfg *config.Config, opts Options) error {
	rows := filters.FilterRows(Rows(cfg, ""), opts.Filter)
	doc, err := json.Marshal(values(rows))
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	result := gjson.GetBytes(doc, opts.Query)
	if !result.Exists() {
		return fmt.Errorf("%w: %s", ErrNoMatch, opts.Query)
	}
	log.Debugf("query %q matched type=%s", opts.Query, result.Type)

	switch opts.Format {
	case FormatJSON:
		return writeJSON(w, result.Value())
	case FormatYAML:
		return writeYAML(w, result.Value())
	default:
		_, err := fmt.Fprintln(w, result.String())
		return err
	}
}

func writeJSON(w io.Writer, v any) error {
	jsonOutput, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(jsonOutput))
	return err
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to marshal yaml: %w", err)
	}
	return enc.Close()
}

// Rows flattens cfg into key/value/origin rows ordered by spec. An empty spec
// keeps key order.
func Rows(cfg *config.Config, spec string) []map[string]any {
	rows := make([]map[string]any, 0, cfg.Len())
	for _, key := range cfg.Keys() {
		value, _ := cfg.Get(key)
		origin, _ := cfg.Origin(key)
		rows = append(rows, map[string]any{
			ColKey:    key,
			ColValue:  value,
			ColOrigin: string(origin),
		})
	}
	SortRows(rows, spec)
	return rows
}

// values folds rows back into a key/value mapping.
func values(rows []map[string]any) map[string]any {
	out := make(map[string]any, len(rows))
	for _, row := range rows {
		out[row[ColKey].(string)] = row[ColValue]
	}
	return out
}

// TableWriter renders rows as an aligned, borderless table honoring the
// color, titles, origin and padding options.
func TableWriter(w io.Writer, rows []map[string]any, opts Options) {
	if w == nil {
		w = os.Stdout
	}

	// We return early if there are no results to display.
	if len(rows) == 0 {
		return
	}

	cols := []string{ColKey, ColValue}
	if opts.Origin {
		cols = append(cols, ColOrigin)
	}

	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	if opts.Color {
		headerColor, evenColor, oddColor := getColors()

		headerStyle = headerStyle.Bold(true).Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	var cells [][]string
	for _, row := range rows {
		cell := make([]string, 0, len(cols))
		for _, c := range cols {
			cell = append(cell, ValueToString(row[c], "-"))
		}
		cells = append(cells, cell)
	}

	pad := max(opts.Padding, 0)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(cells...)

	if opts.Titles {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(cols...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)
}
