package tuid

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/viant/tuid/internal/entropy"
)

// ID is a 128-bit identifier with an embedded kind tag. It uses the UUID
// v8 (custom) layout: the version nibble of byte 6 is 8, the top two bits
// of byte 8 carry the RFC 4122 variant marker, byte 15 holds the kind tag
// and every other bit is random. The tag occupies the one byte free of
// control bits, so extracting it is a single byte read and ~121 bits of
// randomness remain.
//
// ID is a plain immutable value: equality, hashing and map keys work
// directly, and the binary form is authoritative for storage and indexing.
type ID[K Kind[K]] uuid.UUID

// uuidTextLen is the length of the canonical hyphenated UUID text form.
const uuidTextLen = 36

// New returns a fresh identifier for the given kind. It panics only if
// the system random source fails, mirroring uuid.New.
func New[K Kind[K]](kind K) ID[K] {
	var id ID[K]
	if err := entropy.Read(id[:]); err != nil {
		panic(fmt.Sprintf("tuid: random source failed: %v", err))
	}
	id[6] = 0x80 | id[6]&0x0f // version 8
	id[8] = 0x80 | id[8]&0x3f // RFC 4122 variant
	id[15] = kind.Tag()
	return id
}

// FromUUID builds a typed identifier from an existing UUID, validating
// that its tag byte maps to a known kind.
func FromUUID[K Kind[K]](u uuid.UUID) (ID[K], error) {
	id := ID[K](u)
	if _, err := id.Kind(); err != nil {
		return ID[K]{}, err
	}
	return id, nil
}

// FromBytes builds a typed identifier from its 16-byte binary form.
func FromBytes[K Kind[K]](data []byte) (ID[K], error) {
	u, err := uuid.FromBytes(data)
	if err != nil {
		return ID[K]{}, NewInvalidUUIDError(err)
	}
	return FromUUID[K](u)
}

// ParseID parses the canonical 36-character hyphenated text form and
// validates the embedded tag.
func ParseID[K Kind[K]](s string) (ID[K], error) {
	if len(s) != uuidTextLen {
		return ID[K]{}, NewInvalidUUIDError(fmt.Errorf("expected %d characters, got %d", uuidTextLen, len(s)))
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return ID[K]{}, NewInvalidUUIDError(err)
	}
	return FromUUID[K](u)
}

// Kind returns the kind embedded in the identifier's tag byte. It fails
// with ErrUnknownTag when the bytes did not originate from this package.
func (i ID[K]) Kind() (K, error) {
	var zero K
	kind, ok := zero.FromTag(i[15])
	if !ok {
		return zero, NewUnknownTagError(i[15])
	}
	return kind, nil
}

// MustKind is like Kind but panics on an unknown tag. Safe on any value
// produced by New.
func (i ID[K]) MustKind() K {
	kind, err := i.Kind()
	if err != nil {
		panic(err)
	}
	return kind
}

// Tag returns the raw tag byte.
func (i ID[K]) Tag() uint8 { return i[15] }

// UUID returns the identifier as a plain uuid.UUID.
func (i ID[K]) UUID() uuid.UUID { return uuid.UUID(i) }

// Bytes returns a copy of the 16-byte binary form.
func (i ID[K]) Bytes() [16]byte { return [16]byte(i) }

// IsZero reports whether the identifier is the zero value.
func (i ID[K]) IsZero() bool { return i == ID[K]{} }

// Compare orders identifiers by their raw bytes.
func (i ID[K]) Compare(other ID[K]) int { return bytes.Compare(i[:], other[:]) }

// String returns the canonical lowercase 8-4-4-4-12 text form.
func (i ID[K]) String() string { return uuid.UUID(i).String() }

// MarshalText implements encoding.TextMarshaler; encoding/json picks it
// up, so an ID serialises as its canonical text form.
func (i ID[K]) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating the tag.
func (i *ID[K]) UnmarshalText(text []byte) error {
	parsed, err := ParseID[K](string(text))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// MarshalBinary implements encoding.BinaryMarshaler (16 raw bytes).
func (i ID[K]) MarshalBinary() ([]byte, error) {
	b := [16]byte(i)
	return b[:], nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, validating the
// tag.
func (i *ID[K]) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes[K](data)
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}
