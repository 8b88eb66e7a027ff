// Package config loads parameter type definitions from YAML files.
//
// A definition file names a locale and a list of custom parameter types:
//
//	version: "1"
//	locale: fr
//	parameter_types:
//	  - name: color
//	    regexps: red|blue|yellow
//	  - name: flavour
//	    regexps: [vanilla, chocolate]
//	    transform: enum
//	  - name: money
//	    regexps: '\d+ EUR'
//	    transform: factory
//	    type: example.Money
//
// Files are checked against an embedded JSON Schema before they are decoded.
// Applying a file defines every entry it can and reports the rest as coded
// diagnostics.
//
// Transforms:
//   - string (default): the matched text
//   - int, float: the text parsed as a number in the registry's locale
//   - enum: one of values (or of the regexps when values is omitted)
//   - factory: the construct.Registry factory registered for type
package config
