package tags

import (
	"fmt"
	"math/bits"
	"strings"
)

// MaxTags is the upper bound for the number of distinct tags of a coder.
const MaxTags = 8

// Mask is a set of tags. A mask with exactly one bit set denotes a single tag.
type Mask uint8

// Has reports whether m and other share at least one tag.
func (m Mask) Has(other Mask) bool {
	return m&other != 0
}

// IsSingle reports whether m denotes exactly one tag.
func (m Mask) IsSingle() bool {
	return bits.OnesCount8(uint8(m)) == 1
}

// Count returns the number of tags in m.
func (m Mask) Count() int {
	return bits.OnesCount8(uint8(m))
}

// Index returns the bit position of a single-tag mask, or -1 if m is
// empty or holds more than one tag.
func (m Mask) Index() int {
	if !m.IsSingle() {
		return -1
	}
	return bits.TrailingZeros8(uint8(m))
}

// Of returns the single-tag mask for bit position i.
func Of(i int) Mask {
	if i < 0 || i >= MaxTags {
		return 0
	}
	return Mask(1 << i)
}

// Each calls f for every bit position set in m, in ascending order.
func (m Mask) Each(f func(i int)) {
	for v := uint8(m); v != 0; v &= v - 1 {
		f(bits.TrailingZeros8(v))
	}
}

// Coder is a palette of named tags. Coders are immutable after creation and
// may be shared between trees.
type Coder struct {
	names []string
	index map[string]int
}

// NewCoder creates a coder for the given tag names. Bit i of a mask will
// denote names[i]. At most MaxTags names are allowed, and names have to be
// unique and non-empty.
func NewCoder(names ...string) (*Coder, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: no tag names given", ErrEmptyPalette)
	}
	if len(names) > MaxTags {
		return nil, fmt.Errorf("%w: %d names, maximum is %d", ErrTooManyTags, len(names), MaxTags)
	}
	c := &Coder{
		names: make([]string, len(names)),
		index: make(map[string]int, len(names)),
	}
	for i, name := range names {
		if name == "" {
			return nil, fmt.Errorf("%w: empty name at position %d", ErrUnknownTag, i)
		}
		if _, dup := c.index[name]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTag, name)
		}
		c.names[i] = name
		c.index[name] = i
	}
	tracer().Debugf("tag coder created for %v", names)
	return c, nil
}

// Len returns the number of tags in the palette.
func (c *Coder) Len() int {
	return len(c.names)
}

// Names returns a copy of the palette in bit order.
func (c *Coder) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// All returns the mask containing every tag of the palette.
func (c *Coder) All() Mask {
	return Mask(uint16(1)<<len(c.names) - 1)
}

// Tag returns the single-tag mask for a name.
func (c *Coder) Tag(name string) (Mask, error) {
	i, ok := c.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownTag, name)
	}
	return Of(i), nil
}

// Mask returns the mask for a list of tag names. An empty list yields the
// empty mask.
func (c *Coder) Mask(names ...string) (Mask, error) {
	var m Mask
	for _, name := range names {
		t, err := c.Tag(name)
		if err != nil {
			return 0, err
		}
		m |= t
	}
	return m, nil
}

// Tags returns the names of all tags in m, in bit order. Bits outside the
// palette are rejected.
func (c *Coder) Tags(m Mask) ([]string, error) {
	if err := c.Check(m); err != nil {
		return nil, err
	}
	out := make([]string, 0, m.Count())
	m.Each(func(i int) {
		out = append(out, c.names[i])
	})
	return out, nil
}

// Name returns the name of a single-tag mask.
func (c *Coder) Name(t Mask) (string, error) {
	if !t.IsSingle() {
		return "", fmt.Errorf("%w: %08b is not a single tag", ErrInvalidMask, uint8(t))
	}
	if err := c.Check(t); err != nil {
		return "", err
	}
	return c.names[t.Index()], nil
}

// Check returns an error if m references bits outside the palette.
func (c *Coder) Check(m Mask) error {
	if m&^c.All() != 0 {
		return fmt.Errorf("%w: %08b exceeds palette of %d tags", ErrInvalidMask, uint8(m), len(c.names))
	}
	return nil
}

// Format renders a mask as "name1|name2". Unknown bits are rendered by
// position.
func (c *Coder) Format(m Mask) string {
	if m == 0 {
		return "-"
	}
	var parts []string
	m.Each(func(i int) {
		if i < len(c.names) {
			parts = append(parts, c.names[i])
		} else {
			parts = append(parts, fmt.Sprintf("#%d", i))
		}
	})
	return strings.Join(parts, "|")
}
