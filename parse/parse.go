// Package parse decodes JSON and YAML documents into the generic value form
// the transforms work on: map[string]any, []any and scalars.
package parse

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/goccy/go-yaml"
	"github.com/shapetools/go-shape/format"
)

type parseOpts struct {
	format    format.Format
	formatSet bool
}

type ParseOption func(*parseOpts)

func ParseJSON() ParseOption {
	return ParseFormat(format.JSONFormat)
}
func ParseYAML() ParseOption {
	return ParseFormat(format.YAMLFormat)
}
func ParseFormat(f format.Format) ParseOption {
	return func(o *parseOpts) {
		o.format = f
		o.formatSet = true
	}
}

// Parse decodes d into map[string]any/[]any/scalar form. Without an explicit
// ParseFormat option the format is sniffed: documents whose first
// non-whitespace byte opens a JSON value parse as JSON, everything else as
// YAML.
func Parse(d []byte, opts ...ParseOption) (any, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	fmat := pOpts.format
	if !pOpts.formatSet {
		fmat = sniff(d)
	}
	switch fmat {
	case format.JSONFormat:
		var v any
		dec := json.NewDecoder(bytes.NewReader(d))
		if err := dec.Decode(&v); err != nil {
			return nil, fmt.Errorf("error decoding json: %w", err)
		}
		return v, nil
	case format.YAMLFormat:
		var v any
		if err := yaml.Unmarshal(d, &v); err != nil {
			return nil, fmt.Errorf("error decoding yaml: %w", err)
		}
		return v, nil
	default:
		return nil, format.ErrBadFormat
	}
}

func sniff(d []byte) format.Format {
	for _, b := range d {
		switch b {
		case ' ', '\t', '\r', '\n':
			continue
		case '{', '[', '"':
			return format.JSONFormat
		default:
			return format.YAMLFormat
		}
	}
	return format.JSONFormat
}
