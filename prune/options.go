package prune

import "github.com/shapetools/go-shape/debug"

type pruneOpts struct {
	pruneEmpty bool
	debug      bool
	dropLeaf   func(path string, v any) bool
}

type Option func(*pruneOpts)

// PruneEmptyStrings controls whether empty-string values are deleted along
// with nil ones. The default is true.
func PruneEmptyStrings(v bool) Option {
	return func(o *pruneOpts) { o.pruneEmpty = v }
}

// Debug turns cycle-skip diagnostics on or off for one call, overriding the
// SHAPE_DEBUG_PRUNE environment setting.
func Debug(v bool) Option {
	return func(o *pruneOpts) { o.debug = v }
}

// DropLeafFunc installs an extra predicate consulted for every defined,
// non-container value that survives the built-in rules. Returning true
// deletes the key or element. The path uses the a.b[0] notation, rooted at
// the empty string.
func DropLeafFunc(f func(path string, v any) bool) Option {
	return func(o *pruneOpts) { o.dropLeaf = f }
}

func newPruneOpts(opts ...Option) *pruneOpts {
	o := &pruneOpts{pruneEmpty: true, debug: debug.Prune()}
	for _, f := range opts {
		f(o)
	}
	return o
}
