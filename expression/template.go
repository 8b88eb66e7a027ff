package expression

import (
	"regexp"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokenText tokenKind = iota
	tokenSpace
	tokenSlash
	tokenOptional
	tokenParameter
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// tokenize splits a template into literal runs, whitespace, alternation
// slashes, optional text and placeholders. Escaped characters are literal.
func tokenize(template string) ([]token, error) {
	var tokens []token

	appendText := func(kind tokenKind, r rune, pos int) {
		if n := len(tokens); n > 0 && tokens[n-1].kind == kind {
			tokens[n-1].text += string(r)

			return
		}

		tokens = append(tokens, token{kind: kind, text: string(r), pos: pos})
	}

	runes := []rune(template)
	for i := 0; i < len(runes); i++ {
		r := runes[i]

		switch {
		case r == '\\':
			if i+1 == len(runes) {
				return nil, &SyntaxError{Expression: template, Pos: i, Msg: "escape at end of expression"}
			}

			i++
			appendText(tokenText, runes[i], i-1)

		case unicode.IsSpace(r):
			appendText(tokenSpace, r, i)

		case r == '/':
			tokens = append(tokens, token{kind: tokenSlash, text: "/", pos: i})

		case r == '{':
			end := indexRune(runes, '}', i+1)
			if end < 0 {
				return nil, &SyntaxError{Expression: template, Pos: i, Msg: "missing '}'"}
			}

			tokens = append(tokens, token{kind: tokenParameter, text: string(runes[i+1 : end]), pos: i})
			i = end

		case r == '(':
			text, end, err := optionalText(template, runes, i)
			if err != nil {
				return nil, err
			}

			tokens = append(tokens, token{kind: tokenOptional, text: text, pos: i})
			i = end

		default:
			appendText(tokenText, r, i)
		}
	}

	return tokens, nil
}

// optionalText reads the literal content of the optional opened at runes[open].
func optionalText(template string, runes []rune, open int) (string, int, error) {
	var b strings.Builder

	for i := open + 1; i < len(runes); i++ {
		switch runes[i] {
		case '\\':
			if i+1 == len(runes) {
				return "", 0, &SyntaxError{Expression: template, Pos: i, Msg: "escape at end of expression"}
			}

			i++
			b.WriteRune(runes[i])
		case '{':
			return "", 0, &SyntaxError{Expression: template, Pos: i, Msg: "parameter types cannot be optional"}
		case '(':
			return "", 0, &SyntaxError{Expression: template, Pos: i, Msg: "optional text cannot be nested"}
		case ')':
			if b.Len() == 0 {
				return "", 0, &SyntaxError{Expression: template, Pos: open, Msg: "optional text cannot be empty"}
			}

			return b.String(), i, nil
		default:
			b.WriteRune(runes[i])
		}
	}

	return "", 0, &SyntaxError{Expression: template, Pos: open, Msg: "missing ')'"}
}

func indexRune(runes []rune, r rune, from int) int {
	for i := from; i < len(runes); i++ {
		if runes[i] == r {
			return i
		}
	}

	return -1
}

// compileTemplate renders tokens as a regexp body. Words containing slashes
// become alternations; placeholders are rendered by param, in order.
func compileTemplate(template string, tokens []token, param func(tok token) (string, error)) (string, error) {
	var b strings.Builder

	for _, word := range splitWords(tokens) {
		if word[0].kind == tokenSpace {
			b.WriteString(regexp.QuoteMeta(word[0].text))

			continue
		}

		alternatives := splitAlternatives(word)
		if len(alternatives) == 1 {
			for _, tok := range word {
				s, err := renderToken(tok, param)
				if err != nil {
					return "", err
				}

				b.WriteString(s)
			}

			continue
		}

		parts := make([]string, len(alternatives))
		for i, alt := range alternatives {
			if len(alt) == 0 {
				return "", &SyntaxError{Expression: template, Pos: word[0].pos, Msg: "alternative may not be empty"}
			}

			var ab strings.Builder

			for _, tok := range alt {
				if tok.kind == tokenParameter {
					return "", &SyntaxError{Expression: template, Pos: tok.pos, Msg: "parameter types cannot be alternative"}
				}

				s, _ := renderToken(tok, nil)
				ab.WriteString(s)
			}

			parts[i] = ab.String()
		}

		b.WriteString("(?:" + strings.Join(parts, "|") + ")")
	}

	return b.String(), nil
}

func renderToken(tok token, param func(tok token) (string, error)) (string, error) {
	switch tok.kind {
	case tokenParameter:
		return param(tok)
	case tokenOptional:
		return "(?:" + regexp.QuoteMeta(tok.text) + ")?", nil
	default:
		return regexp.QuoteMeta(tok.text), nil
	}
}

// splitWords groups tokens into runs of whitespace and runs of everything else.
func splitWords(tokens []token) [][]token {
	var words [][]token

	for i, tok := range tokens {
		space := tok.kind == tokenSpace
		if i == 0 || space || tokens[i-1].kind == tokenSpace {
			words = append(words, []token{tok})

			continue
		}

		words[len(words)-1] = append(words[len(words)-1], tok)
	}

	return words
}

func splitAlternatives(word []token) [][]token {
	alternatives := [][]token{nil}

	for _, tok := range word {
		if tok.kind == tokenSlash {
			alternatives = append(alternatives, nil)

			continue
		}

		alternatives[len(alternatives)-1] = append(alternatives[len(alternatives)-1], tok)
	}

	return alternatives
}
