package colortree

import (
	"fmt"

	"github.com/npillmayer/colortree/tags"
)

// Tree is a run-length compressed AVL tree of tagged elements, indexable
// through arbitrary tag masks.
//
// A tree created by New is empty. Trees are mutated in place; all mutations
// complete, including rebalancing, before returning.
type Tree[V comparable] struct {
	cfg  Config[V]
	root *node[V]
	mods uint64 // modification count, guards cursors
	// zeroQueue collects runs emptied during a Remove pass; they are
	// unlinked after the pass completes
	zeroQueue []*node[V]
}

// New creates an empty tree with validated configuration.
func New[V comparable](cfg Config[V]) (*Tree[V], error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Tree[V]{cfg: cfg.normalized()}, nil
}

// Config returns a copy of the effective tree configuration.
func (t *Tree[V]) Config() Config[V] {
	return t.cfg
}

// Coder returns the tag palette of the tree.
func (t *Tree[V]) Coder() *tags.Coder {
	return t.cfg.Coder
}

// IsEmpty reports whether the tree has no elements.
func (t *Tree[V]) IsEmpty() bool {
	return t == nil || t.root == nil
}

// Size returns the number of elements whose tag is in mask.
// Bits outside of the palette are ignored.
func (t *Tree[V]) Size(mask tags.Mask) int {
	if t == nil || t.root == nil {
		return 0
	}
	return t.root.sizeFor(mask & t.cfg.Coder.All())
}

// Height returns the AVL height of the tree, 0 for an empty tree.
func (t *Tree[V]) Height() int {
	if t == nil {
		return 0
	}
	return t.root.heightOf()
}

// NodeCount returns the number of runs (nodes) in the tree.
func (t *Tree[V]) NodeCount() int {
	if t == nil || t.root == nil {
		return 0
	}
	cnt := 0
	for n := t.root.first(); n != nil; n = n.next() {
		cnt++
	}
	return cnt
}

// Clear removes all elements. Outstanding element handles become stale.
func (t *Tree[V]) Clear() {
	for n := t.firstNode(); n != nil; {
		next := n.next()
		n.size = 0
		n = next
	}
	t.root = nil
	t.mods++
	T().Debugf("colortree: cleared")
}

func (t *Tree[V]) firstNode() *node[V] {
	if t.root == nil {
		return nil
	}
	return t.root.first()
}

// checkMask rejects masks outside of the palette.
func (t *Tree[V]) checkMask(mask tags.Mask) error {
	if err := t.cfg.Coder.Check(mask); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidTag, err)
	}
	return nil
}

// checkTag rejects anything but a single palette tag and returns its bit
// position.
func (t *Tree[V]) checkTag(tag tags.Mask) (uint8, error) {
	if !tag.IsSingle() {
		return 0, fmt.Errorf("%w: %08b is not a single tag", ErrInvalidTag, uint8(tag))
	}
	if err := t.checkMask(tag); err != nil {
		return 0, err
	}
	return uint8(tag.Index()), nil
}

// --- Insertion -------------------------------------------------------------

// Add inserts length elements of tag with value at index. The index is
// interpreted in the view of indexMask, i.e. as if only elements with a tag
// in indexMask existed, and has to be in [0, Size(indexMask)].
//
// If the new run is adjacent to a run of equal tag and value, that run is
// extended instead of creating a new node. Add returns a handle for the run
// holding the new elements. Adding zero elements is a no-op and returns an
// invalid handle.
func (t *Tree[V]) Add(index int, indexMask tags.Mask, tag tags.Mask, value V, length int) (Element[V], error) {
	return t.add(index, indexMask, tag, value, true, length)
}

// AddPlaceholder inserts length elements of tag without a value. Placeholder
// runs never merge with other runs, so clients may assign a value later
// using Element.SetValue.
func (t *Tree[V]) AddPlaceholder(index int, indexMask tags.Mask, tag tags.Mask, length int) (Element[V], error) {
	var zero V
	return t.add(index, indexMask, tag, zero, false, length)
}

func (t *Tree[V]) add(index int, indexMask tags.Mask, tag tags.Mask, value V, hasValue bool, length int) (Element[V], error) {
	tagIndex, err := t.checkTag(tag)
	if err != nil {
		return Element[V]{}, err
	}
	if err := t.checkMask(indexMask); err != nil {
		return Element[V]{}, err
	}
	if length < 0 {
		return Element[V]{}, fmt.Errorf("%w: negative length %d", ErrIllegalArguments, length)
	}
	if index < 0 || index > t.Size(indexMask) {
		return Element[V]{}, fmt.Errorf("%w: insert at %d, view size is %d",
			ErrIndexOutOfBounds, index, t.Size(indexMask))
	}
	if length == 0 {
		return Element[V]{}, nil
	}
	t.mods++
	if t.root == nil {
		t.root = newNode(nil, tagIndex, length, value, hasValue)
		return Element[V]{n: t.root}, nil
	}
	n := t.insertInto(t.root, index, indexMask, tagIndex, value, hasValue, length)
	return Element[V]{n: n}, nil
}

// insertInto places a run into the subtree at p, index being relative to
// that subtree in the view of indexMask. It returns the node holding the run.
func (t *Tree[V]) insertInto(p *node[V], index int, indexMask tags.Mask, tag uint8,
	value V, hasValue bool, length int) *node[V] {
	//
	for {
		leftSize := p.left.sizeFor(indexMask)
		rightStart := leftSize + p.runSizeFor(indexMask)
		// cheapest option first: extend this run
		if p.mergeable(tag, value, hasValue) && index >= leftSize && index <= rightStart {
			p.size += length
			p.fixCountsToRoot(tag, length)
			return p
		}
		if index <= leftSize {
			if p.left == nil {
				n := newNode(p, tag, length, value, hasValue)
				p.left = n
				p.fixCountsToRoot(tag, length)
				t.rebalance(p, false)
				return n
			}
			p = p.left
			continue
		}
		if index < rightStart {
			// the insertion point is inside p's run: cut it and re-insert the
			// tail as a placeholder directly behind p
			tail := rightStart - index
			p.size -= tail
			p.fixCountsToRoot(p.tag, -tail)
			var zero V
			rest := t.insertInto(p, index, indexMask, p.tag, zero, false, tail)
			rest.value, rest.hasValue = p.value, p.hasValue
			rightStart = index
		}
		if p.right == nil {
			n := newNode(p, tag, length, value, hasValue)
			p.right = n
			p.fixCountsToRoot(tag, length)
			t.rebalance(p, false)
			return n
		}
		// rotations may have re-shaped p's subtree during a cut; the position
		// directly behind p's run is always index 0 of p.right
		index -= rightStart
		p = p.right
	}
}

// --- Lookup ----------------------------------------------------------------

// Get returns the element at index in the view of indexMask.
func (t *Tree[V]) Get(index int, indexMask tags.Mask) (Element[V], error) {
	if err := t.checkMask(indexMask); err != nil {
		return Element[V]{}, err
	}
	if index < 0 || index >= t.Size(indexMask) {
		return Element[V]{}, fmt.Errorf("%w: get at %d, view size is %d",
			ErrIndexOutOfBounds, index, t.Size(indexMask))
	}
	n, _ := t.locate(index, indexMask)
	return Element[V]{n: n}, nil
}

// locate finds the node holding element index of the view of mask, together
// with the offset of the element within the node's run. index has to be
// valid.
func (t *Tree[V]) locate(index int, mask tags.Mask) (*node[V], int) {
	n := t.root
	for n != nil {
		leftSize := n.left.sizeFor(mask)
		if index < leftSize {
			n = n.left
			continue
		}
		index -= leftSize
		own := n.runSizeFor(mask)
		if index < own {
			return n, index
		}
		index -= own
		n = n.right
	}
	assert(false, "locate: index routing exceeded tree size")
	return nil, 0
}

// --- Replacement -----------------------------------------------------------

// Set replaces length elements at index in the view of indexMask by length
// elements of tag and value. It is equivalent to Remove followed by Add at
// the same position.
func (t *Tree[V]) Set(index int, indexMask tags.Mask, tag tags.Mask, value V, length int) (Element[V], error) {
	if _, err := t.checkTag(tag); err != nil {
		return Element[V]{}, err
	}
	if err := t.Remove(index, indexMask, length); err != nil {
		return Element[V]{}, err
	}
	return t.Add(index, indexMask, tag, value, length)
}
