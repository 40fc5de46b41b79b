/*
Package tags maps named element tags to compact bit masks.

A tree in package colortree partitions its elements by tag (sometimes called
a "color"). Every element carries exactly one tag, and index spaces are
selected by masks of tags. A Coder fixes the palette of at most MaxTags
named tags, and translates between names and masks:

	coder, _ := tags.NewCoder("visible", "selected")
	vis, _ := coder.Mask("visible")
	all := coder.All()

Bit i of a mask corresponds to the i-th name given to NewCoder.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package tags

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'colortree'
func tracer() tracing.Trace {
	return tracing.Select("colortree")
}
