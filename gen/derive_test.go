package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDerive(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect string
	}{
		{name: "single word", input: "Retail", expect: "retail"},
		{name: "single word business", input: "Business", expect: "business"},
		{name: "long single word", input: "Organization", expect: "organization"},
		{name: "leading acronym", input: "HTTPServer", expect: "http_server"},
		{name: "trailing acronym", input: "UserID", expect: "user_id"},
		{name: "single letter", input: "A", expect: "a"},
		{name: "acronym then word", input: "XMLParser", expect: "xml_parser"},
		{name: "mixed case start", input: "getUserID", expect: "get_user_id"},
		{name: "two words", input: "AccessToken", expect: "access_token"},
		{name: "digits trail token", input: "OAuth2Token", expect: "o_auth2_token"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expect, Derive(tc.input), tc.name)
	}
}
