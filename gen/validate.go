package gen

import (
	"errors"
	"fmt"
)

// Build-time validation taxonomy. Diagnostics start with the taxonomy
// token; tooling and tests key off that prefix.
var (
	ErrNotEnum             = errors.New("NotEnum")
	ErrEmptyEnum           = errors.New("EmptyEnum")
	ErrNonUnitVariant      = errors.New("NonUnitVariant")
	ErrTooManyVariants     = errors.New("TooManyVariants")
	ErrUnknownAttributeKey = errors.New("UnknownAttributeKey")
)

// maxMembers is the number of distinct kinds the 8-bit tag byte supports.
const maxMembers = 256

// attrName is the one recognized member attribute: a name override.
const attrName = "name"

// Validate checks that the declaration has a shape the identifier layout
// can support. Checks run in a fixed order and the first failure aborts
// generation for the declaration.
func Validate(decl *Declaration) error {
	if (decl.Kind != "" && decl.Kind != "enum") || len(decl.Fields) > 0 {
		return fmt.Errorf("%w: %s is not an enumeration type", ErrNotEnum, decl.Name)
	}
	if len(decl.Members) == 0 {
		return fmt.Errorf("%w: %s declares no members, at least one is required", ErrEmptyEnum, decl.Name)
	}
	for i := range decl.Members {
		if member := &decl.Members[i]; len(member.Fields) > 0 {
			return fmt.Errorf("%w: member %s of %s carries associated data", ErrNonUnitVariant, member.Ident, decl.Name)
		}
	}
	if len(decl.Members) > maxMembers {
		return fmt.Errorf("%w: %s declares %d members, the tag byte fits at most %d", ErrTooManyVariants, decl.Name, len(decl.Members), maxMembers)
	}
	for i := range decl.Members {
		member := &decl.Members[i]
		for _, attr := range member.Attrs {
			if attr.Key != attrName {
				return fmt.Errorf("%w: %s on member %s of %s, expected %q", ErrUnknownAttributeKey, attr.Key, member.Ident, decl.Name, attrName)
			}
		}
	}
	return nil
}
