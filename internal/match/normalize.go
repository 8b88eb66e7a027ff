package match

import (
	"go/token"
	"strings"
	"unicode"
)

// NormalizeIdent normalizes a name for fuzzy matching.
// The normalization pipeline:
// 1. Tokenize CamelCase and separators.
// 2. Case-fold to lower.
// 3. Join without separators.
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(tokenizeCamelCase(s), ""))
}

// Identifier converts a parameter type name into a lowerCamelCase Go identifier.
// Examples:
//   - "css-color" -> "cssColor"
//   - "big_decimal" -> "bigDecimal"
//   - "int" -> "int"
//   - "3d-point" -> "p3dPoint"
func Identifier(name string) string {
	var b strings.Builder

	for i, tok := range tokenizeCamelCase(name) {
		tok = strings.Map(func(r rune) rune {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				return r
			}

			return -1
		}, tok)
		if tok == "" {
			continue
		}

		if i == 0 || b.Len() == 0 {
			b.WriteString(strings.ToLower(tok))

			continue
		}

		runes := []rune(strings.ToLower(tok))
		runes[0] = unicode.ToUpper(runes[0])
		b.WriteString(string(runes))
	}

	ident := b.String()
	if ident == "" {
		return "arg"
	}

	if first := []rune(ident)[0]; !unicode.IsLetter(first) {
		ident = "p" + ident
	}

	return ident
}

// IsKeyword reports whether the identifier is a Go keyword and so cannot name
// a variable on its own.
func IsKeyword(ident string) bool {
	return token.IsKeyword(ident)
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "OrderID" -> ["Order", "ID"]
//   - "css-color" -> ["css", "color"]
//   - "XMLParser" -> ["XML", "Parser"]
//   - "getHTTPResponse" -> ["get", "HTTP", "Response"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	runes := []rune(s)
	for i := range runes {
		r := runes[i]

		if isSeparator(r) {
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) && current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}

		current.WriteRune(r)
	}

	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}

	return tokens
}

// isSeparator returns true if the rune separates words in a type name.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == '.' || unicode.IsSpace(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prevRune := runes[i-1]
	isUpper := unicode.IsUpper(r)
	isPrevUpper := unicode.IsUpper(prevRune)

	// "orderID" -> split before 'I'
	if isUpper && !isPrevUpper && !isSeparator(prevRune) {
		return true
	}

	// "XMLParser" -> "XML" + "Parser", split before 'P'
	hasNextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])

	return isUpper && isPrevUpper && hasNextLower
}
