package colortree

import (
	"fmt"

	"github.com/npillmayer/colortree/tags"
)

// Cursor moves forward through the elements of a tree.
//
// A cursor keeps running per-tag counts of the elements it has passed, so
// stepping to the next element of some view is O(1) within a run and
// proportional to the number of runs skipped otherwise, instead of a fresh
// O(log n) lookup per step.
//
// A cursor is positioned either before the first element or on a current
// element. Any mutation of the tree invalidates the cursor: Next then returns
// false and Err reports ErrConcurrentModification.
type Cursor[V comparable] struct {
	tree   *Tree[V]
	node   *node[V] // current run, nil before the first element
	offset int      // offset of the current element within node
	counts [tags.MaxTags]int
	mods   uint64
	err    error
}

// Cursor returns a cursor positioned in front of element index of the view of
// mask, so that a subsequent Next(mask) moves to that element.
// index has to be in [0, Size(mask)].
func (t *Tree[V]) Cursor(index int, mask tags.Mask) (*Cursor[V], error) {
	if err := t.checkMask(mask); err != nil {
		return nil, err
	}
	if size := t.Size(mask); index < 0 || index > size {
		return nil, fmt.Errorf("%w: cursor at %d, view size is %d", ErrIndexOutOfBounds, index, size)
	}
	c := &Cursor[V]{tree: t, mods: t.mods}
	if index == 0 {
		return c, nil
	}
	n, offset := t.locate(index-1, mask)
	c.node, c.offset = n, offset
	c.counts = n.prefixCounts()
	c.counts[n.tag] += offset + 1
	return c, nil
}

// Copy returns an independent cursor at the same position.
func (c *Cursor[V]) Copy() *Cursor[V] {
	cc := *c
	return &cc
}

// Err returns the error which stopped the cursor, if any.
func (c *Cursor[V]) Err() error {
	return c.err
}

func (c *Cursor[V]) valid() bool {
	if c.err != nil {
		return false
	}
	if c.mods != c.tree.mods {
		c.err = ErrConcurrentModification
		return false
	}
	return true
}

// seen is the number of elements of mask up to and including the current
// element.
func (c *Cursor[V]) seen(mask tags.Mask) int {
	sum := 0
	(mask & c.tree.cfg.Coder.All()).Each(func(i int) {
		sum += c.counts[i]
	})
	return sum
}

// HasNext reports whether an element of mask follows the current position.
func (c *Cursor[V]) HasNext(mask tags.Mask) bool {
	if !c.valid() {
		return false
	}
	return c.seen(mask) < c.tree.Size(mask)
}

// Next moves to the next element with a tag in mask. It returns false if
// there is no such element or the cursor has been invalidated.
func (c *Cursor[V]) Next(mask tags.Mask) bool {
	if !c.HasNext(mask) {
		return false
	}
	if c.node != nil && mask.Has(c.node.tagMask()) && c.offset < c.node.size-1 {
		c.offset++
		c.counts[c.node.tag]++
		return true
	}
	c.nextRun(mask)
	return true
}

// HasNextRun reports whether a run of mask follows the current run.
func (c *Cursor[V]) HasNextRun(mask tags.Mask) bool {
	if !c.valid() {
		return false
	}
	seen := c.seen(mask)
	if c.node != nil && mask.Has(c.node.tagMask()) {
		seen += c.node.size - 1 - c.offset
	}
	return seen < c.tree.Size(mask)
}

// NextRun moves to the first element of the next run with a tag in mask,
// skipping the rest of the current run.
func (c *Cursor[V]) NextRun(mask tags.Mask) bool {
	if !c.HasNextRun(mask) {
		return false
	}
	c.nextRun(mask)
	return true
}

// nextRun moves to the start of the following run of mask, which must exist.
func (c *Cursor[V]) nextRun(mask tags.Mask) {
	var n *node[V]
	if c.node == nil {
		n = c.tree.firstNode()
	} else {
		c.counts[c.node.tag] += c.node.size - 1 - c.offset
		n = c.node.next()
	}
	for !mask.Has(n.tagMask()) {
		c.counts[n.tag] += n.size
		n = n.next()
	}
	c.node, c.offset = n, 0
	c.counts[n.tag]++
}

// Index returns the index of the current element in the view of mask. If the
// current element is not part of the view, the index of the last preceding
// element of the view is returned. Before the first element Index returns -1.
func (c *Cursor[V]) Index(mask tags.Mask) int {
	return c.seen(mask) - 1
}

// Element returns a handle for the run of the current element.
func (c *Cursor[V]) Element() Element[V] {
	return Element[V]{n: c.node}
}

// Value returns the value of the current element.
func (c *Cursor[V]) Value() V {
	return c.Element().Value()
}

// Tag returns the tag of the current element, or 0 before the first element.
func (c *Cursor[V]) Tag() tags.Mask {
	return c.Element().Tag()
}

// Offset returns the offset of the current element within its run.
func (c *Cursor[V]) Offset() int {
	return c.offset
}
