package expression

import (
	"cukexpr/parameter"
)

// Argument is the value of one top-level capture group of a match.
type Argument struct {
	group         *Group
	parameterType *parameter.Type
	transform     parameter.Transform
}

// Group returns the capture group the argument was taken from.
func (a *Argument) Group() *Group { return a.group }

// ParameterType returns the parameter type that produced the group's pattern,
// or nil for regexp groups not backed by a registered type.
func (a *Argument) ParameterType() *parameter.Type { return a.parameterType }

// Value converts the captured text. A group that did not participate yields
// (nil, nil) without running the transform. The transform runs on every call.
func (a *Argument) Value() (any, error) {
	text, ok := a.group.Text()
	if !ok {
		return nil, nil
	}

	if a.transform == nil {
		return text, nil
	}

	return a.transform(text)
}

func buildArguments(root *Group, converters []*converter) []*Argument {
	args := make([]*Argument, len(converters))
	for i, c := range converters {
		args[i] = &Argument{
			group:         root.Children[i],
			parameterType: c.parameterType,
			transform:     c.transform,
		}
	}

	return args
}
