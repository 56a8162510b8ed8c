package shape

import (
	"strings"
	"testing"
)

func TestUnsupportedInputError(t *testing.T) {
	err := &UnsupportedInputError{
		Op:   "prune",
		Got:  "string",
		Want: "either a map or a slice",
	}
	msg := err.Error()
	for _, frag := range []string{"prune", "string", "either a map or a slice"} {
		if !strings.Contains(msg, frag) {
			t.Errorf("error message %q misses %q", msg, frag)
		}
	}
	noType := &UnsupportedInputError{Op: "deflesh", Want: "something"}
	if strings.Contains(noType.Error(), "unsupported input type") {
		t.Errorf("error message %q should omit the type clause", noType.Error())
	}
}
