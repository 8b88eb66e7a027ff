// Package generator proposes cucumber expressions for undefined step text.
//
// Given literal text such as "I have 2 cukes and 1.5 euro", the generator
// finds every substring matched by a parameter type that is used for
// snippets, resolves overlapping matches and returns one GeneratedExpression
// per combination of candidate types:
//
//	I have {int} cukes and {double} euro
//
// # Overlaps
//
// Matches are taken left to right. A match that starts inside an earlier
// selected match is dropped; when several matches start at the same position
// only the widest survives. Matches with identical bounds are alternatives for
// the same placeholder.
//
// # Ordering
//
// Alternatives at one placeholder follow the registry order (preferential
// first, then definition order). Combinations are enumerated in lexicographic
// order with the first placeholder varying slowest, so the first result is the
// canonical suggestion returned by GenerateExpression.
//
// # Parameter names
//
// Each placeholder gets a Go identifier derived from its type name. Repeated
// names are numbered from the second occurrence (currency, currency2); names
// that are Go keywords are numbered on every occurrence.
package generator
