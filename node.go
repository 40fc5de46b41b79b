package colortree

import (
	"math/bits"

	"github.com/npillmayer/colortree/tags"
)

// node is a run of size logically identical elements. All elements of a run
// share tag and value. Children are owned by their parent; parent is a
// back-reference used for upward propagation and rebalancing.
type node[V comparable] struct {
	parent, left, right *node[V]
	tag                 uint8 // bit position of the tag, see tags.Mask.Index
	size                int   // run length, >= 1 for nodes linked into a tree
	height              int   // AVL height, 1 for a leaf
	value               V
	hasValue            bool
	// counts[t] is the total run length of tag t in this subtree
	counts [tags.MaxTags]int
}

func newNode[V comparable](parent *node[V], tag uint8, size int, value V, hasValue bool) *node[V] {
	n := &node[V]{
		parent:   parent,
		tag:      tag,
		size:     size,
		height:   1,
		value:    value,
		hasValue: hasValue,
	}
	n.counts[tag] = size
	return n
}

func (n *node[V]) tagMask() tags.Mask {
	return tags.Of(int(n.tag))
}

// sizeFor sums the per-tag subtree counts over all tags in mask. Nil nodes
// have size 0.
func (n *node[V]) sizeFor(mask tags.Mask) int {
	if n == nil {
		return 0
	}
	if mask == 0xff {
		return n.total()
	}
	sum := 0
	for v := uint8(mask); v != 0; v &= v - 1 {
		sum += n.counts[bits.TrailingZeros8(v)]
	}
	return sum
}

func (n *node[V]) total() int {
	sum := 0
	for _, c := range n.counts {
		sum += c
	}
	return sum
}

// runSizeFor is the run length of n if its tag is in mask, 0 otherwise.
func (n *node[V]) runSizeFor(mask tags.Mask) int {
	if mask.Has(n.tagMask()) {
		return n.size
	}
	return 0
}

func (n *node[V]) heightOf() int {
	if n == nil {
		return 0
	}
	return n.height
}

// balance is left height minus right height.
func (n *node[V]) balance() int {
	return n.left.heightOf() - n.right.heightOf()
}

// refresh recomputes counts and height from the children and the node's
// own run. Children are expected to be up to date.
func (n *node[V]) refresh() {
	var counts [tags.MaxTags]int
	if n.left != nil {
		counts = n.left.counts
	}
	if n.right != nil {
		for i, c := range n.right.counts {
			counts[i] += c
		}
	}
	counts[n.tag] += n.size
	n.counts = counts
	n.height = 1 + max(n.left.heightOf(), n.right.heightOf())
}

// mergeable reports whether a run of tag/value may be folded into n.
// Nodes without a value never merge.
func (n *node[V]) mergeable(tag uint8, value V, hasValue bool) bool {
	return hasValue && n.hasValue && n.tag == tag && n.value == value
}

// fixCountsToRoot adds delta to the count of tag from n up to the root.
func (n *node[V]) fixCountsToRoot(tag uint8, delta int) {
	for p := n; p != nil; p = p.parent {
		p.counts[tag] += delta
	}
}

func (n *node[V]) first() *node[V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func (n *node[V]) last() *node[V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// next returns the in-order successor of n, or nil.
func (n *node[V]) next() *node[V] {
	if n.right != nil {
		return n.right.first()
	}
	child, p := n, n.parent
	for p != nil && p.right == child {
		child, p = p, p.parent
	}
	return p
}

// prefixCounts returns, per tag, the number of elements in front of n's run.
func (n *node[V]) prefixCounts() [tags.MaxTags]int {
	var counts [tags.MaxTags]int
	if n.left != nil {
		counts = n.left.counts
	}
	for child, p := n, n.parent; p != nil; child, p = p, p.parent {
		if p.right != child {
			continue
		}
		if p.left != nil {
			for i, c := range p.left.counts {
				counts[i] += c
			}
		}
		counts[p.tag] += p.size
	}
	return counts
}
