package shape

import "fmt"

// UnsupportedInputError reports a top-level argument whose kind a transform
// cannot work on. It is the only error kind the transforms return: malformed
// nested values never fail, they fall through each transform's per-kind
// dispatch rules instead.
type UnsupportedInputError struct {
	Op   string // transform name, "deflesh" or "prune"
	Got  string // the rejected type, as reported by reflect
	Want string // description of the acceptable kinds
}

func (e *UnsupportedInputError) Error() string {
	if e.Got == "" {
		return fmt.Sprintf("%s: you need to pass %s", e.Op, e.Want)
	}
	return fmt.Sprintf("%s: unsupported input type %s: you need to pass %s", e.Op, e.Got, e.Want)
}
