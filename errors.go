package tuid

import (
	"errors"
	"fmt"
)

// Sentinel errors for the run-time taxonomy. Callers match with errors.Is;
// the constructors below attach detail without losing the category.
var (
	// ErrUnknownTag reports a tag byte no kind claims. It can only occur
	// for bytes that did not originate from this package, e.g. a foreign
	// UUID.
	ErrUnknownTag = errors.New("unknown kind tag")

	// ErrInvalidFormat reports text that does not match the minimal
	// "{name}_{uuid}" shape.
	ErrInvalidFormat = errors.New("invalid identifier format")

	// ErrInvalidUUID reports a malformed 36-character identifier suffix.
	ErrInvalidUUID = errors.New("invalid uuid")

	// ErrPrefixMismatch reports a name portion that disagrees with the
	// canonical name of the kind the tag decodes to.
	ErrPrefixMismatch = errors.New("name prefix mismatch")
)

func NewUnknownTagError(tag uint8) error {
	return fmt.Errorf("%w: no kind assigned tag %d", ErrUnknownTag, tag)
}

func NewInvalidFormatError(input string) error {
	return fmt.Errorf("%w: expected {name}_{uuid}, got %q", ErrInvalidFormat, input)
}

func NewInvalidUUIDError(err error) error {
	return fmt.Errorf("%w: %v", ErrInvalidUUID, err)
}

func NewPrefixMismatchError(got, want string) error {
	return fmt.Errorf("%w: got %q, kind name is %q", ErrPrefixMismatch, got, want)
}
