package colortree

import (
	"fmt"
	"math"

	"github.com/npillmayer/colortree/tags"
)

// Validate checks the structural invariants of the tree: parent/child
// symmetry, positive run lengths, per-tag counts, AVL heights and balance,
// and, in sorted mode, the order of values.
//
// Validate is meant for tests and debugging; it is never called on the
// mutation path.
func (t *Tree[V]) Validate() error {
	if t == nil {
		return fmt.Errorf("%w: nil tree", ErrIllegalArguments)
	}
	if t.root == nil {
		return nil
	}
	if t.root.parent != nil {
		return t.violation("root has a parent")
	}
	if _, err := t.checkNode(t.root); err != nil {
		return err
	}
	runs := t.NodeCount()
	if bound := 1.4405*math.Log2(float64(runs)+2) - 0.3277; float64(t.root.height) > bound {
		return t.violation("height %d exceeds AVL bound %.2f for %d runs", t.root.height, bound, runs)
	}
	if t.cfg.Comparator != nil {
		return t.checkOrder()
	}
	return nil
}

func (t *Tree[V]) violation(format string, args ...any) error {
	err := fmt.Errorf("%w: "+format, append([]any{ErrInvariantViolation}, args...)...)
	T().Errorf("colortree: %v", err)
	return err
}

// checkNode verifies the subtree at n and returns its freshly computed
// per-tag counts.
func (t *Tree[V]) checkNode(n *node[V]) ([tags.MaxTags]int, error) {
	var counts [tags.MaxTags]int
	if n.size <= 0 {
		return counts, t.violation("run of length %d", n.size)
	}
	if int(n.tag) >= t.cfg.Coder.Len() {
		return counts, t.violation("tag #%d outside palette", n.tag)
	}
	for _, child := range []*node[V]{n.left, n.right} {
		if child == nil {
			continue
		}
		if child.parent != n {
			return counts, t.violation("child does not point back to its parent")
		}
		childCounts, err := t.checkNode(child)
		if err != nil {
			return counts, err
		}
		for i, c := range childCounts {
			counts[i] += c
		}
	}
	counts[n.tag] += n.size
	if counts != n.counts {
		return counts, t.violation("counts %v, expected %v", n.counts, counts)
	}
	lh, rh := n.left.heightOf(), n.right.heightOf()
	if n.height != 1+max(lh, rh) {
		return counts, t.violation("height %d with children of height %d/%d", n.height, lh, rh)
	}
	if lh-rh > 1 || rh-lh > 1 {
		return counts, t.violation("unbalanced node, children of height %d/%d", lh, rh)
	}
	return counts, nil
}

func (t *Tree[V]) checkOrder() error {
	var prev *node[V]
	for n := t.root.first(); n != nil; n = n.next() {
		if !n.hasValue {
			return t.violation("sorted tree holds a run without value")
		}
		if prev != nil && t.cfg.Comparator(prev.value, n.value) > 0 {
			return t.violation("values out of order: %v > %v", prev.value, n.value)
		}
		prev = n
	}
	return nil
}
