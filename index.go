package colortree

import (
	"fmt"

	"github.com/npillmayer/colortree/tags"
)

// ConvertIndex translates a position in the view of from to the
// corresponding position in the view of to.
//
// If the element at index carries a tag in to, the result is that element's
// index in to. Otherwise the result is the number of to-elements in front of
// it, i.e. the position where it would appear in to. index may equal
// Size(from), which converts to Size(to).
func (t *Tree[V]) ConvertIndex(index int, from, to tags.Mask) (int, error) {
	result, _, err := t.convert(index, from, to)
	return result, err
}

// ConvertIndexStrict is like ConvertIndex, but returns -1 if the element at
// index carries a tag outside of to. Converting Size(from) yields Size(to).
func (t *Tree[V]) ConvertIndexStrict(index int, from, to tags.Mask) (int, error) {
	result, included, err := t.convert(index, from, to)
	if err != nil {
		return result, err
	}
	if !included {
		return -1, nil
	}
	return result, nil
}

func (t *Tree[V]) convert(index int, from, to tags.Mask) (int, bool, error) {
	if err := t.checkMask(from); err != nil {
		return 0, false, err
	}
	if err := t.checkMask(to); err != nil {
		return 0, false, err
	}
	size := t.Size(from)
	if index < 0 || index > size {
		return 0, false, fmt.Errorf("%w: convert %d, view size is %d", ErrIndexOutOfBounds, index, size)
	}
	if index == size {
		return t.Size(to), true, nil
	}
	result := 0
	n := t.root
	for n != nil {
		leftSize := n.left.sizeFor(from)
		if index < leftSize {
			n = n.left
			continue
		}
		result += n.left.sizeFor(to)
		index -= leftSize
		own := n.runSizeFor(from)
		if index < own {
			if to.Has(n.tagMask()) {
				return result + index, true, nil
			}
			return result, false, nil
		}
		index -= own
		result += n.runSizeFor(to)
		n = n.right
	}
	assert(false, "convert: index routing exceeded tree size")
	return 0, false, nil
}

// IndexOf returns the index of the first element of elem's run in the view of
// to. If elem's tag is not in to, the result is the number of to-elements
// in front of the run.
func (t *Tree[V]) IndexOf(elem Element[V], to tags.Mask) (int, error) {
	if err := t.checkMask(to); err != nil {
		return 0, err
	}
	if !elem.Valid() {
		return 0, ErrStaleElement
	}
	n := elem.n
	index := n.left.sizeFor(to)
	child := n
	for p := n.parent; p != nil; child, p = p, p.parent {
		if p.right == child {
			index += p.left.sizeFor(to) + p.runSizeFor(to)
		}
	}
	if child != t.root {
		return 0, fmt.Errorf("%w: element belongs to a different tree", ErrStaleElement)
	}
	return index, nil
}
