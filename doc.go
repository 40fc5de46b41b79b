/*
Package colortree implements a run-length compressed, multi-tag
order-statistics tree.

Colortree is the index engine for observable collections which have to
address one large mutable sequence through several views at once. Every
element of the sequence carries exactly one tag (sometimes called a
"color") from a small palette of at most eight tags, see package tags. A view
is a mask of tags: index i in view m is the i-th element whose tag is in m.
One tree serves all views simultaneously:

	coder, _ := tags.NewCoder("visible", "hidden")
	tree, _ := colortree.New(colortree.Config[string]{Coder: coder})
	all := coder.All()
	visible, _ := coder.Tag("visible")
	tree.Add(0, all, visible, "a", 3)
	hidden, _ := coder.Tag("hidden")
	tree.Add(1, visible, hidden, "x", 1)
	i, _ := tree.ConvertIndex(2, all, visible) // i == 1

The tree is an AVL tree. Each node represents a run of adjacent elements
sharing tag and value, and keeps the number of elements per tag within its
subtree. This makes insertion, removal, lookup and conversion of indices
between views O(log n), where n is the number of runs.

Operation complexity:

	Operation       |  Cost
	----------------+-------------------
	Add / Get       |  O(log n)
	Remove          |  O(log n + k), k runs touched
	ConvertIndex    |  O(log n)
	IndexOf         |  O(log n)
	Cursor.Next     |  O(1) amortized

Runs are merged on insertion only. Removing elements may leave adjacent runs
with identical tag and value; clients must not rely on runs being maximal.

Trees are not safe for concurrent use. Cursors are invalidated by any
mutation of their tree.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package colortree

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

func assert(condition bool, msg string) {
	if !condition {
		panic(msg)
	}
}
