package colortree

// AVL balancing.
//
// Rotations recompute counts and height of the two nodes changing roles from
// their (already correct) children; no subtree is re-scanned.
//
//	    |                   |
//	    n    rotateLeft     r
//	   / \   ---------->   / \
//	  x   r              n   z
//	     / \  <--------- / \
//	    y   z rotateRight x y

// rebalance walks from n up to the root, refreshing and rotating where a
// node's children differ in height by 2. With toRoot unset it stops at the
// first node whose height did not change, which is sufficient after an
// insertion since counts have already been propagated.
func (t *Tree[V]) rebalance(n *node[V], toRoot bool) {
	for n != nil {
		oldHeight := n.height
		switch b := n.balance(); {
		case b > 1:
			if n.left.balance() < 0 {
				t.rotateLeft(n.left)
			}
			n = t.rotateRight(n)
		case b < -1:
			if n.right.balance() > 0 {
				t.rotateRight(n.right)
			}
			n = t.rotateLeft(n)
		default:
			n.refresh()
		}
		if !toRoot && n.height == oldHeight {
			return
		}
		n = n.parent
	}
}

// rotateLeft lifts n.right into n's position and returns it.
func (t *Tree[V]) rotateLeft(n *node[V]) *node[V] {
	r := n.right
	assert(r != nil, "rotateLeft without right child")
	n.right = r.left
	if r.left != nil {
		r.left.parent = n
	}
	t.replaceChild(n, r)
	r.left = n
	n.parent = r
	n.refresh()
	r.refresh()
	return r
}

// rotateRight lifts n.left into n's position and returns it.
func (t *Tree[V]) rotateRight(n *node[V]) *node[V] {
	l := n.left
	assert(l != nil, "rotateRight without left child")
	n.left = l.right
	if l.right != nil {
		l.right.parent = n
	}
	t.replaceChild(n, l)
	l.right = n
	n.parent = l
	n.refresh()
	l.refresh()
	return l
}

// replaceChild links repl into old's position below old's parent (or as the
// root). old's own links are left untouched.
func (t *Tree[V]) replaceChild(old, repl *node[V]) {
	p := old.parent
	switch {
	case p == nil:
		t.root = repl
	case p.left == old:
		p.left = repl
	default:
		assert(p.right == old, "replaceChild: broken parent link")
		p.right = repl
	}
	if repl != nil {
		repl.parent = p
	}
}
