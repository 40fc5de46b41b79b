package tags

import "errors"

var (
	// ErrTooManyTags signals a palette exceeding MaxTags entries.
	ErrTooManyTags = errors.New("tags: too many tags")
	// ErrUnknownTag signals a tag name not present in the coder.
	ErrUnknownTag = errors.New("tags: unknown tag")
	// ErrDuplicateTag signals a palette naming a tag twice.
	ErrDuplicateTag = errors.New("tags: duplicate tag")
	// ErrEmptyPalette signals a coder created without any tag names.
	ErrEmptyPalette = errors.New("tags: empty palette")
	// ErrInvalidMask signals a mask referencing bits outside the palette.
	ErrInvalidMask = errors.New("tags: invalid mask")
)
