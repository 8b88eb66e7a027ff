// Package locale parses decimal numbers the way a given language formats them.
package locale

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NumberParser converts localized decimal text into Go numbers.
//
// Separators are taken from CLDR data by formatting a sample value with
// golang.org/x/text/message, so no per-language table is kept here.
type NumberParser struct {
	tag     language.Tag
	decimal rune
	group   rune
}

// NewNumberParser returns a parser for the given language.
func NewNumberParser(tag language.Tag) *NumberParser {
	p := &NumberParser{tag: tag, decimal: '.', group: ','}

	sample := []rune(message.NewPrinter(tag).Sprintf("%.1f", 1234.5))

	var seps []rune

	for _, r := range sample {
		if !unicode.IsDigit(r) {
			seps = append(seps, r)
		}
	}

	switch len(seps) {
	case 1:
		p.decimal = seps[0]
		p.group = 0
	case 2:
		p.group = seps[0]
		p.decimal = seps[1]
	}

	if p.decimal == p.group {
		p.group = 0
	}

	return p
}

// Tag returns the language the parser was built for.
func (p *NumberParser) Tag() language.Tag { return p.tag }

// DecimalSeparator returns the locale's decimal separator.
func (p *NumberParser) DecimalSeparator() rune { return p.decimal }

// GroupingSeparator returns the locale's grouping separator, or 0 when it has none.
func (p *NumberParser) GroupingSeparator() rune { return p.group }

// Normalize rewrites localized number text into the form strconv accepts.
func (p *NumberParser) Normalize(text string) string {
	var b strings.Builder

	b.Grow(len(text))

	for _, r := range strings.TrimSpace(text) {
		switch {
		case r == p.decimal:
			b.WriteRune('.')
		case p.group != 0 && (r == p.group || unicode.IsSpace(p.group) && unicode.IsSpace(r)):
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ParseFloat64 parses text as a float64.
func (p *NumberParser) ParseFloat64(text string) (float64, error) {
	return p.parse(text, 64)
}

// ParseFloat32 parses text as a float32.
func (p *NumberParser) ParseFloat32(text string) (float32, error) {
	f, err := p.parse(text, 32)

	return float32(f), err
}

func (p *NumberParser) parse(text string, bits int) (float64, error) {
	f, err := strconv.ParseFloat(p.Normalize(text), bits)
	if err != nil {
		return 0, fmt.Errorf("cannot parse %q as a %s number: %w", text, p.tag, err)
	}

	return f, nil
}
