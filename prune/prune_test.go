package prune

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	shape "github.com/shapetools/go-shape"
)

func TestPrune_Correctness(t *testing.T) {
	doc := map[string]any{
		"id":            4,
		"last_modified": nil,
		"sections": []any{
			map[string]any{"content": "x", "class": "textile"},
			map[string]any{"content": "y", "class": ""},
		},
	}
	out, err := Prune(doc)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	want := map[string]any{
		"id": 4,
		"sections": []any{
			map[string]any{"content": "x", "class": "textile"},
			map[string]any{"content": "y"},
		},
	}
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("Prune() mismatch (-want +got):\n%s", d)
	}
}

func TestPrune_KeepEmptyStrings(t *testing.T) {
	doc := map[string]any{"a": "", "b": nil, "c": "x"}
	out, err := Prune(doc, PruneEmptyStrings(false))
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	want := map[string]any{"a": "", "c": "x"}
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("Prune() mismatch (-want +got):\n%s", d)
	}
}

func TestPrune_EmptySubMapKept(t *testing.T) {
	doc := map[string]any{"a": map[string]any{"b": nil, "c": ""}}
	out, err := Prune(doc)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	// only leaf-level emptiness deletes; a sub-map pruned to nothing stays
	want := map[string]any{"a": map[string]any{}}
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("Prune() mismatch (-want +got):\n%s", d)
	}
}

func TestPrune_ArrayCollapse(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want any
	}{
		{
			name: "scalar array collapses to empty string",
			in:   map[string]any{"xs": []any{"a", "b", 3}},
			want: map[string]any{"xs": ""},
		},
		{
			name: "top-level scalar array collapses",
			in:   []any{"a", "b", 3},
			want: "",
		},
		{
			name: "mixed array prunes empty leaf elements",
			in:   []any{"a", "", nil, map[string]any{"k": "v"}},
			want: []any{"a", map[string]any{"k": "v"}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Prune(tt.in)
			if err != nil {
				t.Fatalf("Prune() error = %v", err)
			}
			if d := cmp.Diff(tt.want, out); d != "" {
				t.Errorf("Prune() mismatch (-want +got):\n%s", d)
			}
		})
	}
}

func TestPrune_NonStringLeavesKept(t *testing.T) {
	doc := map[string]any{"zero": 0, "no": false, "f": 0.0}
	out, err := Prune(doc)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	want := map[string]any{"zero": 0, "no": false, "f": 0.0}
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("Prune() mismatch (-want +got):\n%s", d)
	}
}

func TestPrune_TopLevelRejection(t *testing.T) {
	tests := []struct {
		name string
		in   any
	}{
		{"nil", nil},
		{"leaf string", "hello"},
		{"leaf number", 42},
		{"struct", struct{ A int }{A: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Prune(tt.in)
			if err == nil {
				t.Fatal("expected error for invalid top-level input")
			}
			var uerr *shape.UnsupportedInputError
			if !errors.As(err, &uerr) {
				t.Fatalf("error type = %T, want *shape.UnsupportedInputError", err)
			}
			if !strings.Contains(err.Error(), "either a map or a slice") {
				t.Errorf("error message %q misses expected fragment", err)
			}
		})
	}
}

func TestPrune_NonMutation(t *testing.T) {
	doc := map[string]any{
		"id":   4,
		"gone": nil,
		"xs":   []any{map[string]any{"a": "", "b": "x"}},
	}
	snapshot := map[string]any{
		"id":   4,
		"gone": nil,
		"xs":   []any{map[string]any{"a": "", "b": "x"}},
	}
	if _, err := Prune(doc); err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if d := cmp.Diff(snapshot, doc); d != "" {
		t.Errorf("input mutated by Prune (-want +got):\n%s", d)
	}
}

func TestPrune_CycleSafety(t *testing.T) {
	m := map[string]any{"name": "root"}
	s := []any{m}
	m["list"] = s

	out, err := Prune(m)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	want := map[string]any{
		"name": "root",
		"list": []any{},
	}
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("Prune() mismatch (-want +got):\n%s", d)
	}
}

func TestPrune_SymmetricCycles(t *testing.T) {
	t.Run("cyclic map of maps", func(t *testing.T) {
		a := map[string]any{}
		a["self"] = a
		out, err := Prune(a)
		if err != nil {
			t.Fatalf("Prune() error = %v", err)
		}
		if d := cmp.Diff(map[string]any{}, out); d != "" {
			t.Errorf("Prune() mismatch (-want +got):\n%s", d)
		}
	})
	t.Run("cyclic slice of slices", func(t *testing.T) {
		s := make([]any, 1)
		s[0] = s
		out, err := Prune(s)
		if err != nil {
			t.Fatalf("Prune() error = %v", err)
		}
		if d := cmp.Diff([]any{}, out); d != "" {
			t.Errorf("Prune() mismatch (-want +got):\n%s", d)
		}
	})
}

func TestPrune_AliasedSubslices(t *testing.T) {
	// overlapping subslices of one backing array share a base pointer but
	// are distinct nodes; neither may be mistaken for the other by the
	// cycle guard. The shared first element is still a shared node and is
	// processed once per call.
	base := []any{
		map[string]any{"k": "v"},
		map[string]any{"k2": "v2"},
	}
	in := []any{base[0:1], base[0:2]}
	out, err := Prune(in)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	want := []any{
		[]any{map[string]any{"k": "v"}},
		[]any{map[string]any{"k2": "v2"}},
	}
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("Prune() mismatch (-want +got):\n%s", d)
	}
}

func TestPrune_SharedNodeSkippedOnceSeen(t *testing.T) {
	// the seen set is per call: the same document pruned twice gives the
	// same result both times
	inner := map[string]any{"k": "v", "e": ""}
	doc := map[string]any{"a": inner}
	first, err := Prune(doc)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	second, err := Prune(doc)
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	if d := cmp.Diff(first, second); d != "" {
		t.Errorf("seen set leaked across calls (-first +second):\n%s", d)
	}
	want := map[string]any{"a": map[string]any{"k": "v"}}
	if d := cmp.Diff(want, first); d != "" {
		t.Errorf("Prune() mismatch (-want +got):\n%s", d)
	}
}

func TestPrune_DropLeafFunc(t *testing.T) {
	var paths []string
	doc := map[string]any{
		"keep": "x",
		"drop": "secret",
		"xs":   []any{"secret", "y", map[string]any{"inner": "secret"}},
	}
	out, err := Prune(doc, DropLeafFunc(func(path string, v any) bool {
		paths = append(paths, path)
		s, ok := v.(string)
		return ok && s == "secret"
	}))
	if err != nil {
		t.Fatalf("Prune() error = %v", err)
	}
	want := map[string]any{
		"keep": "x",
		"xs":   []any{"y", map[string]any{}},
	}
	if d := cmp.Diff(want, out); d != "" {
		t.Errorf("Prune() mismatch (-want +got):\n%s", d)
	}
	for _, p := range paths {
		switch p {
		case "keep", "drop", "xs[0]", "xs[1]", "xs[2].inner":
		default:
			t.Errorf("unexpected leaf path %q", p)
		}
	}
}
