package colortree

import (
	"fmt"

	"github.com/npillmayer/colortree/tags"
)

// Remove deletes length elements starting at index, both in the view of
// indexMask. Elements with tags outside indexMask which lie between removed
// elements are kept. The range has to lie within [0, Size(indexMask)].
//
// Removal is done in two phases: first all affected runs are shrunk, then
// runs which dropped to zero length are unlinked. Neighbouring runs are not
// re-merged, even if they end up with equal tag and value.
func (t *Tree[V]) Remove(index int, indexMask tags.Mask, length int) error {
	if err := t.checkMask(indexMask); err != nil {
		return err
	}
	if length < 0 {
		return fmt.Errorf("%w: negative length %d", ErrIllegalArguments, length)
	}
	if size := t.Size(indexMask); index < 0 || index > size || length > size-index {
		return fmt.Errorf("%w: remove %d elements at %d, view size is %d",
			ErrIndexOutOfBounds, length, index, size)
	}
	if length == 0 {
		return nil
	}
	t.mods++
	t.shrink(t.root, index, indexMask, length)
	if len(t.zeroQueue) > 1 {
		T().Debugf("colortree: unlinking %d emptied runs", len(t.zeroQueue))
	}
	for i, n := range t.zeroQueue {
		t.unlink(n)
		t.zeroQueue[i] = nil
	}
	t.zeroQueue = t.zeroQueue[:0]
	return nil
}

// shrink removes length elements at index from the subtree at n, adjusting
// run lengths and counts only. Runs reaching length 0 are queued.
func (t *Tree[V]) shrink(n *node[V], index int, indexMask tags.Mask, length int) {
	for length > 0 {
		assert(n != nil, "shrink: range exceeds subtree")
		leftSize := n.left.sizeFor(indexMask)
		if index < leftSize {
			if index+length <= leftSize {
				t.shrink(n.left, index, indexMask, length)
				return
			}
			part := leftSize - index
			t.shrink(n.left, index, indexMask, part)
			length -= part
			leftSize -= part
		}
		rightStart := leftSize + n.runSizeFor(indexMask)
		if index < rightStart {
			part := min(rightStart-index, length)
			n.size -= part
			n.fixCountsToRoot(n.tag, -part)
			if n.size == 0 {
				t.zeroQueue = append(t.zeroQueue, n)
			}
			length -= part
			rightStart -= part
			if length == 0 {
				return
			}
		}
		index -= rightStart
		n = n.right
	}
}

// unlink removes an empty run from the tree structure and rebalances up to
// the root.
func (t *Tree[V]) unlink(n *node[V]) {
	assert(n.size == 0, "unlink: run is not empty")
	var start *node[V]
	switch {
	case n.left == nil || n.right == nil:
		child := n.left
		if child == nil {
			child = n.right
		}
		start = n.parent
		t.replaceChild(n, child)
	default:
		// replace n by its in-order predecessor, which has no right child
		pred := n.left.last()
		start = pred.parent
		if start == n {
			start = pred
		} else {
			t.replaceChild(pred, pred.left)
			pred.left = n.left
			pred.left.parent = pred
		}
		pred.right = n.right
		pred.right.parent = pred
		t.replaceChild(n, pred)
		pred.height = n.height
	}
	n.parent, n.left, n.right = nil, nil, nil
	t.rebalance(start, true)
}
