// Package members parses inline member declarations used in generator
// manifests, in the format: Identifier(key=value, ...). Attribute keys are
// collected verbatim; whether a key is recognized is decided by manifest
// validation, not here.
package members

import (
	"fmt"

	"github.com/viant/parsly"
)

// Member is a parsed member declaration.
type Member struct {
	Ident      string
	Attributes []Attribute
}

// Attribute is a single key=value pair attached to a member. Order is
// preserved so diagnostics are deterministic.
type Attribute struct {
	Key   string
	Value string
}

// Parse parses a member declaration in the format: Identifier(key=value, ...)
func Parse(input []byte) (*Member, error) {
	cursor := parsly.NewCursor("", input, 0)
	member := &Member{}

	// Match the member identifier
	matched := cursor.MatchAfterOptional(whitespaceToken, identifierToken)
	if matched.Code != identifierToken.Code {
		return nil, cursor.NewError(identifierToken)
	}
	member.Ident = matched.Text(cursor)

	// Attributes are optional
	matched = cursor.MatchAfterOptional(whitespaceToken, openParenToken)
	if matched.Code != openParenToken.Code {
		if err := expectEnd(cursor); err != nil {
			return nil, err
		}
		return member, nil
	}

	for {
		// Match the attribute key or the closing parenthesis
		matched = cursor.MatchAfterOptional(whitespaceToken, identifierToken, closeParenToken)
		switch matched.Code {
		case closeParenToken.Code:
			if err := expectEnd(cursor); err != nil {
				return nil, err
			}
			return member, nil
		case identifierToken.Code:
		default:
			return nil, cursor.NewError(identifierToken, closeParenToken)
		}
		key := matched.Text(cursor)

		matched = cursor.MatchAfterOptional(whitespaceToken, equalsToken)
		if matched.Code != equalsToken.Code {
			return nil, cursor.NewError(equalsToken)
		}

		matched = cursor.MatchAfterOptional(whitespaceToken, identifierToken)
		if matched.Code != identifierToken.Code {
			return nil, cursor.NewError(identifierToken)
		}
		member.Attributes = append(member.Attributes, Attribute{Key: key, Value: matched.Text(cursor)})

		matched = cursor.MatchAfterOptional(whitespaceToken, commaToken, closeParenToken)
		switch matched.Code {
		case commaToken.Code:
		case closeParenToken.Code:
			if err := expectEnd(cursor); err != nil {
				return nil, err
			}
			return member, nil
		default:
			return nil, cursor.NewError(commaToken, closeParenToken)
		}
	}
}

// expectEnd ensures nothing but whitespace trails the declaration.
func expectEnd(cursor *parsly.Cursor) error {
	cursor.MatchOne(whitespaceToken)
	if cursor.Pos < cursor.InputSize {
		return fmt.Errorf("unexpected trailing input at position %d: %s", cursor.Pos, cursor.Input[cursor.Pos:])
	}
	return nil
}
