// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package document

import (
	"fmt"
	"math"
	"math/big"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// HCL parses the top-level attributes of an HCL file. Expressions are
// evaluated without variables or functions, so only literal values are
// allowed. Blocks are rejected because the result is a flat mapping.
type HCL struct {
	// Filename is only used in diagnostics.
	Filename string
}

// Parse evaluates every top-level attribute and converts it to a Go value.
func (p HCL) Parse(data []byte) (map[string]any, error) {
	file, diags := hclsyntax.ParseConfig(data, p.Filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("%w: %s", ErrMalformedDocument, diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected body type %T", ErrMalformedDocument, file.Body)
	}

	if len(body.Blocks) > 0 {
		b := body.Blocks[0]
		return nil, fmt.Errorf("%w: block %q at %s not allowed", ErrMalformedDocument, b.Type, b.TypeRange)
	}

	values := make(map[string]any, len(body.Attributes))
	for name, attr := range body.Attributes {
		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, fmt.Errorf("%w: %s", ErrMalformedDocument, diags.Error())
		}
		values[name] = ctyValueToGo(val)
	}

	return values, nil
}

// ctyValueToGo converts cty values to Go values
func ctyValueToGo(val cty.Value) any {
	if val.IsNull() || !val.IsKnown() {
		return nil
	}

	ty := val.Type()
	switch {
	case ty == cty.Bool:
		return val.True()
	case ty == cty.Number:
		bf := val.AsBigFloat()
		if bf.IsInt() {
			if i, acc := bf.Int64(); acc == big.Exact && i >= math.MinInt && i <= math.MaxInt {
				return int(i)
			}
		}
		f, _ := bf.Float64()
		return f
	case ty == cty.String:
		return val.AsString()
	case ty.IsTupleType() || ty.IsListType() || ty.IsSetType():
		result := make([]any, 0)
		for it := val.ElementIterator(); it.Next(); {
			_, elemVal := it.Element()
			result = append(result, ctyValueToGo(elemVal))
		}
		return result
	case ty.IsObjectType() || ty.IsMapType():
		result := make(map[string]any)
		for it := val.ElementIterator(); it.Next(); {
			keyVal, elemVal := it.Element()
			result[keyVal.AsString()] = ctyValueToGo(elemVal)
		}
		return result
	default:
		return fmt.Sprintf("%#v", val)
	}
}
