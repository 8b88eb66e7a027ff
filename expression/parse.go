package expression

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"cukexpr/parameter"
)

// Parse builds the expression kind the source denotes: a RegularExpression
// when it is anchored with ^ or $ or written as /regexp/, a
// CucumberExpression otherwise.
func Parse(source string, types []reflect.Type, reg *parameter.Registry) (Expression, error) {
	src, isRegexp := regexpSource(source)
	if !isRegexp {
		return NewCucumberExpression(source, types, reg)
	}

	re, err := regexp.Compile(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidExpression, err)
	}

	return NewRegularExpression(re, types, reg)
}

func regexpSource(source string) (string, bool) {
	if strings.HasPrefix(source, "^") || strings.HasSuffix(source, "$") {
		return source, true
	}

	if len(source) >= 2 && strings.HasPrefix(source, "/") && strings.HasSuffix(source, "/") {
		return source[1 : len(source)-1], true
	}

	return "", false
}
