package expression

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := tokenize(`a {int} b/c (s) \{x\}`)
	require.NoError(t, err)

	kinds := make([]tokenKind, len(tokens))
	texts := make([]string, len(tokens))

	for i, tok := range tokens {
		kinds[i] = tok.kind
		texts[i] = tok.text
	}

	assert.Equal(t, []tokenKind{
		tokenText, tokenSpace, tokenParameter, tokenSpace,
		tokenText, tokenSlash, tokenText, tokenSpace,
		tokenOptional, tokenSpace, tokenText,
	}, kinds)
	assert.Equal(t, []string{"a", " ", "int", " ", "b", "/", "c", " ", "s", " ", "{x}"}, texts)
}

func TestCompileTemplate(t *testing.T) {
	tests := []struct {
		template string
		expected string
	}{
		{"I have {n} cuke(s)", `I have <n> cuke(?:s)?`},
		{"belly/stomach/gut now", `(?:belly|stomach|gut) now`},
		{"a (b)/c", `a (?:(?:b)?|c)`},
		{"1+1=2.", `1\+1=2\.`},
		{"tab\tseparated", "tab\tseparated"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			tokens, err := tokenize(tt.template)
			require.NoError(t, err)

			got, err := compileTemplate(tt.template, tokens, func(tok token) (string, error) {
				return "<" + tok.text + ">", nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
