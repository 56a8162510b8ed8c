package prune

import (
	"fmt"
	"reflect"

	shape "github.com/shapetools/go-shape"
	"github.com/shapetools/go-shape/debug"
)

// Prune returns a copy of v with nil and (by default) empty-string entries
// removed, recursively. The top-level value must be a string-keyed map or a
// slice or array; anything else returns *shape.UnsupportedInputError.
func Prune(v any, opts ...Option) (any, error) {
	p := &pruner{
		opts: newPruneOpts(opts...),
		seen: map[ref]string{},
	}
	val := concrete(reflect.ValueOf(v))
	switch {
	case isStringMap(val):
		p.record(val, "")
		return p.pruneMap(val, ""), nil
	case isSequence(val):
		p.record(val, "")
		return p.pruneSeq(val, ""), nil
	}
	got := "nil"
	if val.IsValid() {
		got = val.Type().String()
	}
	return nil, &shape.UnsupportedInputError{
		Op:   "prune",
		Got:  got,
		Want: "either a map or a slice",
	}
}

// pruner carries the state of one Prune call. The seen set maps the identity
// of every map and slice entered so far to the path where it was first
// entered; it exists for this call only.
type pruner struct {
	opts *pruneOpts
	seen map[ref]string
}

// skip reports whether val was already entered during this call and, if not,
// records it. Identity is the container's reference, never its contents:
// structurally equal but distinct containers are different entries.
func (p *pruner) skip(val reflect.Value, path string) bool {
	r, ok := identity(val)
	if !ok {
		return false
	}
	if prev, seen := p.seen[r]; seen {
		if p.opts.debug {
			debug.Logf("prune: already saw %q at %q, skipping\n", path, prev)
		}
		return true
	}
	p.seen[r] = path
	return false
}

func (p *pruner) record(val reflect.Value, path string) {
	if r, ok := identity(val); ok {
		p.seen[r] = path
	}
}

func (p *pruner) pruneMap(val reflect.Value, path string) map[string]any {
	out := make(map[string]any, val.Len())
	iter := val.MapRange()
	for iter.Next() {
		key := iter.Key().String()
		keyPath := fieldPath(path, key)
		ev := concrete(iter.Value())
		switch {
		case !ev.IsValid():
			p.logDrop(keyPath, "undefined")
		case isStringMap(ev):
			if p.skip(ev, keyPath) {
				continue
			}
			// a sub-map that prunes to empty is kept; only
			// leaf-level emptiness deletes
			out[key] = p.pruneMap(ev, keyPath)
		case isSequence(ev):
			if p.skip(ev, keyPath) {
				continue
			}
			out[key] = p.pruneSeq(ev, keyPath)
		case p.dropLeaf(ev, keyPath):
		default:
			out[key] = iter.Value().Interface()
		}
	}
	return out
}

// pruneSeq applies the sequence rule, then prunes surviving elements. A
// sequence with no container elements collapses to "" as a unit.
func (p *pruner) pruneSeq(val reflect.Value, path string) any {
	n := val.Len()
	structured := false
	for i := 0; i < n; i++ {
		if isContainer(concrete(val.Index(i))) {
			structured = true
			break
		}
	}
	if !structured {
		return ""
	}
	out := make([]any, 0, n)
	for i := 0; i < n; i++ {
		elemPath := fmt.Sprintf("%s[%d]", path, i)
		ev := concrete(val.Index(i))
		switch {
		case !ev.IsValid():
			p.logDrop(elemPath, "undefined")
		case isStringMap(ev):
			if p.skip(ev, elemPath) {
				continue
			}
			out = append(out, p.pruneMap(ev, elemPath))
		case isSequence(ev):
			if p.skip(ev, elemPath) {
				continue
			}
			out = append(out, p.pruneSeq(ev, elemPath))
		case p.dropLeaf(ev, elemPath):
		default:
			out = append(out, val.Index(i).Interface())
		}
	}
	return out
}

// dropLeaf applies the leaf rules to a defined, non-container value.
func (p *pruner) dropLeaf(ev reflect.Value, path string) bool {
	if ev.Kind() == reflect.String && ev.String() == "" {
		if p.opts.pruneEmpty {
			p.logDrop(path, "empty string")
			return true
		}
		return false
	}
	if p.opts.dropLeaf != nil && p.opts.dropLeaf(path, ev.Interface()) {
		p.logDrop(path, "drop-leaf predicate")
		return true
	}
	return false
}

func (p *pruner) logDrop(path, why string) {
	if p.opts.debug {
		debug.Logf("prune: dropping %q: %s\n", path, why)
	}
}

func fieldPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
