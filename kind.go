package tuid

// Kind is the contract a kind enumeration satisfies so that its values can
// be embedded in, and recovered from, a typed identifier. The tag mapping
// must be a bijection: Tag assigns each kind value a distinct byte, and
// FromTag is its exact inverse, reporting false for any unassigned tag
// rather than guessing.
//
// FromTag must be callable on the zero value of K so that generic code can
// invert a tag without holding a kind value first.
type Kind[K any] interface {
	comparable

	// Tag returns the 8-bit tag assigned to this kind value. Tags are
	// positional: the n-th declared kind carries tag n, independent of any
	// numeric value the kind type may otherwise hold.
	Tag() uint8

	// Name returns the canonical lowercase, underscore-delimited display
	// label for this kind value.
	Name() string

	// FromTag recovers the kind value assigned the given tag, reporting
	// false when no kind claims it.
	FromTag(tag uint8) (K, bool)
}
