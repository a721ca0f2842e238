package gen

import (
	"strings"
	"unicode"
)

// Derive converts a member identifier into its default display name:
// lowercase tokens joined with underscores, splitting acronyms correctly.
//
//	Retail     -> retail
//	HTTPServer -> http_server
//	UserID     -> user_id
//	A          -> a
//
// A boundary falls before an uppercase letter when the previous character
// is lowercase, or when the next one is – the latter ends an acronym run
// so its last letter starts the next token. Digits attach to the token
// they trail.
func Derive(ident string) string {
	runes := []rune(ident)
	var out strings.Builder
	out.Grow(len(ident) + 4)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			if i > 0 {
				prevLower := unicode.IsLower(runes[i-1])
				nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
				if prevLower || nextLower {
					out.WriteRune('_')
				}
			}
			out.WriteRune(unicode.ToLower(r))
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}
