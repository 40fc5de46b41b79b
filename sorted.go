package colortree

import (
	"fmt"

	"github.com/npillmayer/colortree/tags"
)

// Sorted mode.
//
// Trees configured with a comparator may be used as sorted multisets: values
// are inserted by comparison instead of by index. Index-addressed mutations
// are still possible, but it is up to the client to keep the order intact.

// AddSorted inserts length elements of tag and value behind all elements
// comparing less than or equal to value. An adjacent run with equal tag and
// value is extended.
func (t *Tree[V]) AddSorted(tag tags.Mask, value V, length int) (Element[V], error) {
	if t.cfg.Comparator == nil {
		return Element[V]{}, ErrNoComparator
	}
	all := t.cfg.Coder.All()
	index := 0
	for n := t.root; n != nil; {
		if t.cfg.Comparator(value, n.value) < 0 {
			n = n.left
			continue
		}
		index += n.left.sizeFor(all) + n.size
		n = n.right
	}
	return t.Add(index, all, tag, value, length)
}

// IndexOfValue searches for value by comparison and returns an index in the
// view of mask.
//
// With first set, the index of the first equal element is returned,
// otherwise the index of the last one. If no element compares equal, the
// result is the insertion point for value if simulate is set, and -1
// otherwise.
func (t *Tree[V]) IndexOfValue(value V, first, simulate bool, mask tags.Mask) (int, error) {
	if t.cfg.Comparator == nil {
		return -1, ErrNoComparator
	}
	if err := t.checkMask(mask); err != nil {
		return -1, fmt.Errorf("index of value: %w", err)
	}
	index, match, found := 0, -1, false
	for n := t.root; n != nil; {
		c := t.cfg.Comparator(value, n.value)
		switch {
		case c < 0:
			n = n.left
		case c > 0:
			index += n.left.sizeFor(mask) + n.runSizeFor(mask)
			n = n.right
		case first:
			match, found = index+n.left.sizeFor(mask), true
			n = n.left
		default:
			index += n.left.sizeFor(mask) + n.runSizeFor(mask)
			match, found = index-1, true
			n = n.right
		}
	}
	if found {
		return match, nil
	}
	if !simulate {
		return -1, nil
	}
	return index, nil
}
