// Package match provides name normalization, Levenshtein distance calculation,
// and "did you mean" ranking for parameter type names.
//
// Key functions:
//   - NormalizeIdent: normalizes names for fuzzy matching
//   - Identifier: turns a parameter type name into a Go identifier
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names that resemble an unknown one
package match
