// Package encode renders generic values (map[string]any, []any, scalars)
// as JSON or YAML, optionally colorized for terminals.
package encode

import (
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/goccy/go-yaml"
	"github.com/shapetools/go-shape/format"
)

type EncState struct {
	format format.Format
	indent string
	Color  *Colors
}

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

func EncodeIndent(s string) EncodeOption {
	return func(es *EncState) { es.indent = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

func Encode(v any, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: "  "}
	for _, f := range opts {
		f(es)
	}
	switch es.format {
	case format.YAMLFormat:
		d, err := yaml.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding yaml: %w", err)
		}
		_, err = w.Write(d)
		return err
	case format.JSONFormat:
		if es.Color != nil {
			if err := es.encodeColorJSON(w, v, 0); err != nil {
				return err
			}
			_, err := io.WriteString(w, "\n")
			return err
		}
		d, err := json.MarshalIndent(v, "", es.indent)
		if err != nil {
			return fmt.Errorf("error encoding json: %w", err)
		}
		d = append(d, '\n')
		_, err = w.Write(d)
		return err
	default:
		return format.ErrBadFormat
	}
}

func (es *EncState) encodeColorJSON(w io.Writer, v any, depth int) error {
	c := es.Color
	pad := func(n int) string {
		s := ""
		for i := 0; i < n; i++ {
			s += es.indent
		}
		return s
	}
	switch x := v.(type) {
	case map[string]any:
		if len(x) == 0 {
			_, err := io.WriteString(w, c.Punct("{}"))
			return err
		}
		if _, err := io.WriteString(w, c.Punct("{")+"\n"); err != nil {
			return err
		}
		keys := slices.Sorted(maps.Keys(x))
		for i, key := range keys {
			kd, err := json.Marshal(key)
			if err != nil {
				return err
			}
			if _, err := io.WriteString(w, pad(depth+1)+c.Field("%s", kd)+c.Punct(":")+" "); err != nil {
				return err
			}
			if err := es.encodeColorJSON(w, x[key], depth+1); err != nil {
				return err
			}
			if i < len(keys)-1 {
				if _, err := io.WriteString(w, c.Punct(",")); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, pad(depth)+c.Punct("}"))
		return err
	case []any:
		if len(x) == 0 {
			_, err := io.WriteString(w, c.Punct("[]"))
			return err
		}
		if _, err := io.WriteString(w, c.Punct("[")+"\n"); err != nil {
			return err
		}
		for i, ev := range x {
			if _, err := io.WriteString(w, pad(depth+1)); err != nil {
				return err
			}
			if err := es.encodeColorJSON(w, ev, depth+1); err != nil {
				return err
			}
			if i < len(x)-1 {
				if _, err := io.WriteString(w, c.Punct(",")); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, "\n"); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, pad(depth)+c.Punct("]"))
		return err
	default:
		d, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("error encoding json leaf: %w", err)
		}
		_, err = io.WriteString(w, c.leaf(v)("%s", d))
		return err
	}
}
