package generator

import (
	"log/slog"
	"slices"
	"sort"
	"strings"

	"cukexpr/internal/common"
	"cukexpr/parameter"
)

// MaxExpressions bounds the number of candidates GenerateExpressions
// returns. Text with many ambiguous matches yields the first MaxExpressions
// combinations in the usual order.
const MaxExpressions = 256

// Generator proposes expressions using the parameter types of a registry.
type Generator struct {
	registry *parameter.Registry
	logger   *slog.Logger
}

// New creates a generator reading from the given registry.
func New(registry *parameter.Registry) *Generator {
	return &Generator{
		registry: registry,
		logger:   registry.Logger(),
	}
}

// span is a matched region of the text and the types that matched exactly it.
type span struct {
	start, end int
	types      []*parameter.Type
}

// GenerateExpressions returns the candidate expressions for text, at most
// MaxExpressions of them. The result always has at least one element; text
// without any match yields the literal expression.
func (g *Generator) GenerateExpressions(text string) []*GeneratedExpression {
	found := g.findSpans(text)
	spans := prune(found)

	g.logger.Debug("generating expressions", "text", text, "matches", len(found), "placeholders", len(spans))

	choices := make([][]*parameter.Type, len(spans))
	for i, s := range spans {
		choices[i] = s.types
	}

	combinations := common.Product(choices, MaxExpressions)
	if len(combinations) == MaxExpressions {
		g.logger.Debug("expression candidates truncated", "text", text, "limit", MaxExpressions)
	}

	result := make([]*GeneratedExpression, 0, len(combinations))

	for _, types := range combinations {
		result = append(result, newGeneratedExpression(render(text, spans, types), types))
	}

	return result
}

// GenerateExpression returns the canonical (first) candidate for text.
func (g *Generator) GenerateExpression(text string) *GeneratedExpression {
	first, _ := common.First(g.GenerateExpressions(text))

	return first
}

// findSpans collects every non-empty match of every snippet type, grouped
// by bounds and ordered by start, widest first.
func (g *Generator) findSpans(text string) []*span {
	bySpan := make(map[[2]int]*span)

	var spans []*span

	for _, pt := range g.registry.ParameterTypes() {
		if !pt.UseForSnippets() || pt.Name() == "" {
			continue
		}

		for _, re := range pt.Patterns() {
			for _, loc := range re.FindAllStringIndex(text, -1) {
				if loc[0] == loc[1] {
					continue
				}

				key := [2]int{loc[0], loc[1]}

				s, ok := bySpan[key]
				if !ok {
					s = &span{start: loc[0], end: loc[1]}
					bySpan[key] = s
					spans = append(spans, s)
				}

				if !slices.Contains(s.types, pt) {
					s.types = append(s.types, pt)
				}
			}
		}
	}

	for _, s := range spans {
		sort.SliceStable(s.types, func(i, j int) bool {
			return g.registry.Less(s.types[i], s.types[j])
		})
	}

	sort.SliceStable(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}

		return spans[i].end > spans[j].end
	})

	return spans
}

// prune keeps the leftmost span and drops every span starting before the
// previously kept one ends. Input must be sorted by findSpans.
func prune(spans []*span) []*span {
	var kept []*span

	for _, s := range spans {
		if n := len(kept); n > 0 && s.start < kept[n-1].end {
			continue
		}

		kept = append(kept, s)
	}

	return kept
}

func render(text string, spans []*span, types []*parameter.Type) string {
	var b strings.Builder

	pos := 0

	for i, s := range spans {
		writeLiteral(&b, text[pos:s.start])
		b.WriteString("{" + types[i].Name() + "}")
		pos = s.end
	}

	writeLiteral(&b, text[pos:])

	return b.String()
}

// writeLiteral copies text, escaping the characters that have a meaning in
// cucumber expressions.
func writeLiteral(b *strings.Builder, text string) {
	for _, r := range text {
		if strings.ContainsRune(`\{}()/`, r) {
			b.WriteByte('\\')
		}

		b.WriteRune(r)
	}
}
