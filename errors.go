package colortree

// TreeError is an error type for the colortree module.
type TreeError string

func (e TreeError) Error() string {
	return string(e)
}

// ErrIndexOutOfBounds is flagged whenever an index or a range lies outside
// the view it refers to.
const ErrIndexOutOfBounds = TreeError("index out of bounds")

// ErrIllegalArguments is flagged whenever function parameters are invalid.
const ErrIllegalArguments = TreeError("illegal arguments")

// ErrInvalidTag is flagged for masks outside of a tree's palette, and for
// tags which do not denote exactly one palette entry.
const ErrInvalidTag = TreeError("invalid tag")

// ErrInvariantViolation is returned by Validate for inconsistent trees.
const ErrInvariantViolation = TreeError("tree invariant violated")

// ErrNoComparator signals use of sorted-mode operations on a tree configured
// without a comparator.
const ErrNoComparator = TreeError("tree has no comparator")

// ErrStaleElement is flagged for element handles which no longer belong to a
// tree.
const ErrStaleElement = TreeError("element has been removed")

// ErrConcurrentModification signals a cursor used after its tree has been
// mutated.
const ErrConcurrentModification = TreeError("tree modified during iteration")
