// Package tuid provides strongly typed UUIDs: 128-bit identifiers that
// carry the kind of the entity they identify in their own bytes, so the
// kind can be recovered from an identifier without a side table.
//
// An ID is a UUID v8 value whose final byte holds an 8-bit kind tag; the
// remaining bits (outside the standard version and variant markers) are
// random. Friendly is the human-readable projection used for logs and
// URLs, prefixing the identifier with the kind's name:
//
//	id := tuid.New(kinds.UserTypeRetail)
//	friendly, _ := tuid.From(id)
//	fmt.Println(friendly) // retail_550e8400-e29b-8d14-a716-446655440000
//
//	parsed, _ := tuid.ParseFriendly[kinds.UserType](friendly.String())
//	kind, _ := parsed.ID().Kind() // kinds.UserTypeRetail
//
// Kind implementations are typically emitted by the tuidgen generator
// (see the gen package and cmd/tuidgen) from a YAML manifest describing
// the closed set of kinds, but any hand-written type satisfying the Kind
// contract is interchangeable.
package tuid
