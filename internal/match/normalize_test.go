package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"color", "color"},
		{"css-color", "csscolor"},
		{"css_color", "csscolor"},
		{"cssColor", "csscolor"},
		{"CSSColor", "csscolor"},
		{"big.decimal", "bigdecimal"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestIdentifier(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"int", "int"},
		{"currency", "currency"},
		{"css-color", "cssColor"},
		{"big_decimal", "bigDecimal"},
		{"XMLParser", "xmlParser"},
		{"3d-point", "p3dPoint"},
		{"café", "café"},
		{"--", "arg"},
		{"a+b", "ab"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Identifier(tt.input))
		})
	}
}

func TestIsKeyword(t *testing.T) {
	assert.True(t, IsKeyword("type"))
	assert.True(t, IsKeyword("func"))
	assert.False(t, IsKeyword("int"))
	assert.False(t, IsKeyword("color"))
}

func TestTokenizeCamelCase(t *testing.T) {
	assert.Equal(t, []string{"get", "HTTP", "Response"}, tokenizeCamelCase("getHTTPResponse"))
	assert.Equal(t, []string{"css", "color"}, tokenizeCamelCase("css-color"))
	assert.Nil(t, tokenizeCamelCase(""))
}
