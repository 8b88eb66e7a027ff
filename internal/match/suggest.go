package match

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// DefaultSuggestionThreshold is the minimum name similarity for a suggestion
// that is not also a fuzzy subsequence match.
const DefaultSuggestionThreshold = 0.6

// MaxSuggestions caps the number of names Suggest returns.
const MaxSuggestions = 3

// Suggestion is a known name that resembles an unknown one.
type Suggestion struct {
	Name  string
	Score float64
}

// SuggestionList is sorted by score descending, then by name.
type SuggestionList []Suggestion

// Len implements sort.Interface.
func (s SuggestionList) Len() int { return len(s) }

// Swap implements sort.Interface.
func (s SuggestionList) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// Less implements sort.Interface.
func (s SuggestionList) Less(i, j int) bool {
	if s[i].Score != s[j].Score {
		return s[i].Score > s[j].Score
	}

	return s[i].Name < s[j].Name
}

// Names returns the suggested names in rank order.
func (s SuggestionList) Names() []string {
	names := make([]string, len(s))
	for i := range s {
		names[i] = s[i].Name
	}

	return names
}

// Suggest ranks candidates that look like a misspelling of target.
// A candidate qualifies when one name is a case-insensitive fuzzy subsequence
// of the other, or when their normalized similarity reaches the threshold.
func Suggest(target string, candidates []string) SuggestionList {
	if target == "" {
		return nil
	}

	var result SuggestionList

	for _, c := range candidates {
		if c == target {
			continue
		}

		score := NameSimilarity(target, c)
		subsequence := fuzzy.MatchFold(target, c) || fuzzy.MatchFold(c, target)

		if score < DefaultSuggestionThreshold && !subsequence {
			continue
		}

		result = append(result, Suggestion{Name: c, Score: score})
	}

	sort.Sort(result)

	if len(result) > MaxSuggestions {
		result = result[:MaxSuggestions]
	}

	return result
}
