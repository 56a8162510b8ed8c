package libdiff

import (
	"strings"
	"testing"
)

func TestPlain(t *testing.T) {
	from := "{\n  \"a\": 1,\n  \"gone\": \"\"\n}\n"
	to := "{\n  \"a\": 1\n}\n"
	out := Plain(from, to)
	if !strings.Contains(out, "[-") {
		t.Errorf("Plain() = %q, expected a deletion marker", out)
	}
	if !strings.Contains(out, "gone") {
		t.Errorf("Plain() = %q, expected deleted key in output", out)
	}
}

func TestPlain_Equal(t *testing.T) {
	if out := Plain("same", "same"); out != "same" {
		t.Errorf("Plain() = %q, want %q", out, "same")
	}
}
