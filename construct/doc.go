// Package construct builds typed values from a single string through
// explicitly registered factory functions.
//
// It replaces constructor discovery: a type can only be constructed from text
// when a func(string) (T, error) has been registered for it. Asking for a type
// without a factory is a configuration error reported as a ConstructionError.
//
//	factories := construct.NewRegistry()
//	err := construct.Register(factories, func(s string) (Color, error) {
//		return Color{Name: s}, nil
//	})
//
// Registries are filled during setup and are read-only afterwards; they are
// not safe for concurrent registration.
package construct
