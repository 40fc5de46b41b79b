package colortree

import (
	"iter"
	"strings"

	"github.com/npillmayer/colortree/tags"
)

// Runs returns an iterator over all runs with a tag in mask, in order.
// The tree must not be mutated during iteration.
func (t *Tree[V]) Runs(mask tags.Mask) iter.Seq[Element[V]] {
	return func(yield func(Element[V]) bool) {
		if t == nil {
			return
		}
		for n := t.firstNode(); n != nil; n = n.next() {
			if !mask.Has(n.tagMask()) {
				continue
			}
			if !yield(Element[V]{n: n}) {
				return
			}
		}
	}
}

// String renders the sequence of tags, one letter per element: the first
// tag of the palette is 'a', the second 'b', and so on.
func (t *Tree[V]) String() string {
	if t == nil {
		return ""
	}
	var sb strings.Builder
	for n := t.firstNode(); n != nil; n = n.next() {
		sb.WriteString(strings.Repeat(string(rune('a'+n.tag)), n.size))
	}
	return sb.String()
}
