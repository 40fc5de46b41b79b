package colortree

import (
	"fmt"

	"github.com/npillmayer/colortree/tags"
)

// Config configures a tree.
type Config[V comparable] struct {
	// Coder is the tag palette of the tree. Required.
	Coder *tags.Coder
	// Comparator orders values for the sorted-insert mode. Optional; it is
	// unused for index-addressed operations.
	// The result is negative if a < b, zero if a == b, positive if a > b.
	Comparator func(a, b V) int
}

func (cfg Config[V]) normalized() Config[V] {
	return cfg
}

func (cfg Config[V]) validate() error {
	cfg = cfg.normalized()
	if cfg.Coder == nil {
		return fmt.Errorf("%w: tag coder is required", ErrIllegalArguments)
	}
	return nil
}
