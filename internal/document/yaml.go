// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// YAML parses YAML documents. JSON flow documents are valid YAML and are
// accepted too.
type YAML struct{}

// Parse decodes data into a map. An empty document yields an empty map. A
// stream holding more than one non-empty document is malformed.
func (YAML) Parse(data []byte) (map[string]any, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var values map[string]any
	if err := dec.Decode(&values); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	}

	var extra any
	err := dec.Decode(&extra)
	switch {
	case errors.Is(err, io.EOF):
	case err != nil:
		return nil, fmt.Errorf("%w: %w", ErrMalformedDocument, err)
	case extra != nil:
		return nil, fmt.Errorf("%w: multiple documents in stream", ErrMalformedDocument)
	}

	if values == nil {
		values = map[string]any{}
	}
	return values, nil
}
