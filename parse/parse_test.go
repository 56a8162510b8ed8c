package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shapetools/go-shape/format"
)

func TestParse_JSON(t *testing.T) {
	out, err := Parse([]byte(`{"a": 1, "b": ["x", "y"]}`), ParseJSON())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	want := map[string]any{"a": float64(1), "b": []any{"x", "y"}}
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("Parse() mismatch (-want +got):\n%s", d)
	}
}

func TestParse_YAML(t *testing.T) {
	src := []byte("a: hello\nb:\n  - x\n  - y\n")
	out, err := Parse(src, ParseYAML())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	m, ok := out.(map[string]any)
	if !ok {
		t.Fatalf("Parse() type = %T, want map[string]any", out)
	}
	if m["a"] != "hello" {
		t.Errorf(`m["a"] = %v, want "hello"`, m["a"])
	}
	if xs, ok := m["b"].([]any); !ok || len(xs) != 2 {
		t.Errorf(`m["b"] = %v, want 2-element sequence`, m["b"])
	}
}

func TestParse_Sniff(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want format.Format
	}{
		{"json object", `  {"a": 1}`, format.JSONFormat},
		{"json array", `["a"]`, format.JSONFormat},
		{"yaml doc", "a: 1\n", format.YAMLFormat},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sniff([]byte(tt.src)); got != tt.want {
				t.Errorf("sniff(%q) = %v, want %v", tt.src, got, tt.want)
			}
			if _, err := Parse([]byte(tt.src)); err != nil {
				t.Errorf("Parse(%q) error = %v", tt.src, err)
			}
		})
	}
}

func TestParse_BadInput(t *testing.T) {
	if _, err := Parse([]byte(`{"a":`), ParseJSON()); err == nil {
		t.Error("expected error for truncated json")
	}
}
