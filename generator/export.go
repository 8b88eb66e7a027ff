package generator

import (
	"gopkg.in/yaml.v3"
)

// SnippetFile is the YAML document produced by ExportSuggestions.
type SnippetFile struct {
	Version     string    `yaml:"version"`
	Text        string    `yaml:"text"`
	Expressions []Snippet `yaml:"expressions"`
}

// Snippet is one suggested expression with its parameters.
type Snippet struct {
	Expression string             `yaml:"expression"`
	Parameters []SnippetParameter `yaml:"parameters,omitempty"`
}

// SnippetParameter describes one placeholder of a Snippet.
type SnippetParameter struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	GoType string `yaml:"go_type,omitempty"`
}

// ExportSuggestions converts generated expressions into a snippet document
// that can be reviewed and pasted into step definitions.
func ExportSuggestions(text string, expressions []*GeneratedExpression) *SnippetFile {
	sf := &SnippetFile{
		Version:     "1",
		Text:        text,
		Expressions: make([]Snippet, 0, len(expressions)),
	}

	for _, ge := range expressions {
		snippet := Snippet{Expression: ge.Source()}

		for i, pt := range ge.parameterTypes {
			p := SnippetParameter{Name: ge.parameterNames[i], Type: pt.Name()}
			if st := pt.SemanticType(); st != nil {
				p.GoType = st.String()
			}

			snippet.Parameters = append(snippet.Parameters, p)
		}

		sf.Expressions = append(sf.Expressions, snippet)
	}

	return sf
}

// ExportSuggestionsYAML renders ExportSuggestions as YAML.
func ExportSuggestionsYAML(text string, expressions []*GeneratedExpression) ([]byte, error) {
	return yaml.Marshal(ExportSuggestions(text, expressions))
}
