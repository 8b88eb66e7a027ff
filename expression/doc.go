// Package expression compiles step expressions and matches them against text.
//
// Two kinds of expression share the Expression interface:
//
//   - CucumberExpression: a template such as "I have {int} cuke(s)" whose
//     placeholders name parameter types of a registry.
//   - RegularExpression: a ready regexp whose capture groups are converted by
//     explicit Go types or by the parameter type indexed under the group's
//     source.
//
// Both match the whole text. Match returns one Argument per top-level capture
// group; an Argument converts its text only when Value is called, and does so
// on every call, so a failing transform reports the same error each time.
//
// Template syntax:
//
//	{name}     placeholder for the parameter type called name
//	(text)     optional literal text
//	a/b/c      alternative literal words
//	\x         the character x without its special meaning
package expression
