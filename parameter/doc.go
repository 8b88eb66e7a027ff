// Package parameter provides parameter types and the registry that indexes them.
//
// A parameter type is a named, typed matcher: one or more regular expressions
// plus a transform that turns matched text into a Go value. Types are defined
// in a Registry once, at setup, and then looked up three ways:
//
//   - by name, to resolve {name} placeholders in cucumber expressions
//   - by semantic type (reflect.Type), to honour explicit result types
//   - by regexp, to infer the type of a capture group in a regular expression
//
// # Ordering and ambiguity
//
// Several types may share a regexp. For each regexp the registry keeps its
// types in a stable order: the (single) preferential type first, then every
// other type in definition order. Defining a second preferential type for a
// regexp fails immediately. Sharing a regexp between non-preferential types is
// allowed; it only becomes an error when such a regexp is looked up, which
// LookupByRegexp reports as an AmbiguousError.
//
// # Built-in types
//
// NewRegistry defines, in order: bigint (*big.Int), bigdecimal (*big.Float),
// byte (uint8), short (int16), int (int, preferential), long (int64),
// float (float32) and double (float64, preferential). Decimal parsing follows
// the registry's language. Only int and double are used for snippets.
//
// # Concurrency
//
// Registration is not synchronized. Define every type before the registry is
// read from several goroutines; lookups are safe to run concurrently once
// registration is over.
package parameter
