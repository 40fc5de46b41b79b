package colortree

import (
	"github.com/npillmayer/colortree/tags"
)

// Element is a handle for a run of elements within a tree, as returned by
// Add and Get. The zero Element is invalid.
//
// A handle stays valid as long as its run is part of the tree. Runs may grow
// by merging and shrink by removal; a run which is cut by an insertion keeps
// its leading part under the handle.
type Element[V comparable] struct {
	n *node[V]
}

// Valid reports whether the handle refers to a run which is still part of a
// tree.
func (e Element[V]) Valid() bool {
	return e.n != nil && e.n.size > 0
}

// Value returns the value of the run. It returns the zero value for
// placeholder runs, see HasValue.
func (e Element[V]) Value() V {
	if e.n == nil {
		var zero V
		return zero
	}
	return e.n.value
}

// HasValue reports whether a value has been assigned to the run.
func (e Element[V]) HasValue() bool {
	return e.n != nil && e.n.hasValue
}

// SetValue assigns a value to all elements of the run. The run is not merged
// with neighbouring runs carrying the same value.
func (e Element[V]) SetValue(value V) {
	if e.n == nil {
		return
	}
	e.n.value = value
	e.n.hasValue = true
}

// Tag returns the single-tag mask of the run.
func (e Element[V]) Tag() tags.Mask {
	if e.n == nil {
		return 0
	}
	return e.n.tagMask()
}

// RunLength returns the number of elements represented by the run.
func (e Element[V]) RunLength() int {
	if e.n == nil {
		return 0
	}
	return e.n.size
}
