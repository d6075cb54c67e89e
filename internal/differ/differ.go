// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tfctl/cfgctl/internal/log"
)

// Identical is written when there is no difference.
const Identical = "The configs are identical."

// Options controls the rendering of a diff.
type Options struct {
	// Ignore lists top-level keys dropped from both sides before comparing.
	Ignore []string
	// Color enables ANSI coloring of added and removed lines.
	Color bool
}

// Diff compares two flat configurations and writes an ASCII diff of left to
// right to w. It reports whether the two differ.
func Diff(w io.Writer, left, right map[string]any, opts Options) (bool, error) {
	left = without(left, opts.Ignore)
	right = without(right, opts.Ignore)

	leftJSON, err := json.Marshal(left)
	if err != nil {
		return false, fmt.Errorf("failed to marshal left config: %w", err)
	}
	rightJSON, err := json.Marshal(right)
	if err != nil {
		return false, fmt.Errorf("failed to marshal right config: %w", err)
	}

	log.Debugf("diff sizes: left=%d right=%d", len(leftJSON), len(rightJSON))

	delta, err := gojsondiff.New().Compare(leftJSON, rightJSON)
	if err != nil {
		return false, fmt.Errorf("failed to compare configs: %w", err)
	}

	if !delta.Modified() {
		fmt.Fprintln(w, Identical)
		return false, nil
	}

	// The formatter walks the left document, so it needs the JSON-decoded
	// form rather than the typed Go values.
	var jdoc map[string]any
	if err := json.Unmarshal(leftJSON, &jdoc); err != nil {
		return false, fmt.Errorf("failed to unmarshal left config: %w", err)
	}

	f := formatter.NewAsciiFormatter(jdoc, formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       opts.Color,
	})
	diffString, err := f.Format(delta)
	if err != nil {
		return false, err
	}

	fmt.Fprint(w, diffString)
	return true, nil
}

func without(m map[string]any, keys []string) map[string]any {
	if len(keys) == 0 {
		return m
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = v
	}
	for _, k := range keys {
		delete(out, k)
	}
	return out
}
