package encode

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shapetools/go-shape/format"
	"github.com/shapetools/go-shape/parse"
)

func TestEncode_JSONRoundTrip(t *testing.T) {
	doc := map[string]any{
		"a": float64(1),
		"b": []any{"x", map[string]any{"c": true}},
		"n": nil,
	}
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	back, err := parse.Parse(buf.Bytes(), parse.ParseJSON())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if d := cmp.Diff(doc, back); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}

func TestEncode_YAML(t *testing.T) {
	doc := map[string]any{"a": "hello"}
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	if !strings.Contains(buf.String(), "a: hello") {
		t.Errorf("yaml output %q misses expected content", buf.String())
	}
}

func TestEncode_ColorJSONParsable(t *testing.T) {
	// with colors forced off at the ANSI layer, the colorized encoder must
	// still emit valid json
	colors := &Colors{}
	plain := func(f string, args ...any) string { return fmt.Sprintf(f, args...) }
	colors.Field, colors.String, colors.Number = plain, plain, plain
	colors.Bool, colors.Null, colors.Punct = plain, plain, plain

	doc := map[string]any{
		"s":  "x",
		"n":  float64(3),
		"b":  false,
		"z":  nil,
		"xs": []any{"a", map[string]any{"k": "v"}, []any{}},
		"m":  map[string]any{},
	}
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeFormat(format.JSONFormat), EncodeColors(colors)); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	back, err := parse.Parse(buf.Bytes(), parse.ParseJSON())
	if err != nil {
		t.Fatalf("colorized output is not valid json: %v\n%s", err, buf.String())
	}
	if d := cmp.Diff(doc, back); d != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", d)
	}
}
