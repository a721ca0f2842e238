package tuid

import (
	"github.com/google/uuid"
)

// Friendly is the human-readable projection of a typed identifier,
// pairing the kind's canonical name with the identifier's hyphenated text
// form: "{name}_{uuid}". It is derived, never authoritative; the binary ID
// remains the source of truth.
type Friendly[K Kind[K]] struct {
	name string
	id   ID[K]
}

// NewFriendly returns the friendly projection of a fresh identifier for
// the given kind.
func NewFriendly[K Kind[K]](kind K) Friendly[K] {
	return Friendly[K]{name: kind.Name(), id: New(kind)}
}

// From projects an existing identifier into its friendly form.
func From[K Kind[K]](id ID[K]) (Friendly[K], error) {
	kind, err := id.Kind()
	if err != nil {
		return Friendly[K]{}, err
	}
	return Friendly[K]{name: kind.Name(), id: id}, nil
}

// ID returns the underlying typed identifier.
func (f Friendly[K]) ID() ID[K] { return f.id }

// Name returns the kind name used as the text prefix.
func (f Friendly[K]) Name() string { return f.name }

// Kind returns the kind embedded in the underlying identifier.
func (f Friendly[K]) Kind() K { return f.id.MustKind() }

// String returns "{name}_{uuid}".
func (f Friendly[K]) String() string { return f.name + "_" + f.id.String() }

// ParseFriendly parses "{name}_{uuid}" back into a friendly identifier.
//
// The parse is anchored at the end of the input: kind names come from an
// open vocabulary and may themselves contain underscores (e.g.
// "http_server"), so splitting on the first underscore is ambiguous, while
// the 36-character UUID suffix has a fixed length. Checks run in order:
// minimal shape (ErrInvalidFormat), well-formed UUID suffix
// (ErrInvalidUUID), known tag (ErrUnknownTag), and finally the extracted
// name must equal the canonical name of the recovered kind
// (ErrPrefixMismatch) – the tag alone identifies the kind, but a
// hand-edited name would otherwise silently decode to a kind other than
// the one a reader assumes.
func ParseFriendly[K Kind[K]](s string) (Friendly[K], error) {
	// Minimum: one-character name, '_', 36-character uuid.
	if len(s) < uuidTextLen+2 || s[len(s)-uuidTextLen-1] != '_' {
		return Friendly[K]{}, NewInvalidFormatError(s)
	}
	u, err := uuid.Parse(s[len(s)-uuidTextLen:])
	if err != nil {
		return Friendly[K]{}, NewInvalidUUIDError(err)
	}
	id, err := FromUUID[K](u)
	if err != nil {
		return Friendly[K]{}, err
	}
	kind, _ := id.Kind()
	name := s[:len(s)-uuidTextLen-1]
	if expected := kind.Name(); name != expected {
		return Friendly[K]{}, NewPrefixMismatchError(name, expected)
	}
	return Friendly[K]{name: name, id: id}, nil
}

// MarshalText implements encoding.TextMarshaler over the friendly form.
func (f Friendly[K]) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler with full validation.
func (f *Friendly[K]) UnmarshalText(text []byte) error {
	parsed, err := ParseFriendly[K](string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}
