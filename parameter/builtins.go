package parameter

import (
	"fmt"
	"math/big"
	"reflect"

	"cukexpr/internal/numeric"
)

var (
	integerRegexps = []string{`-?\d+`, `\d+`}
	decimalRegexps = []string{`-?\d*[.,]\d+`}
	hexRegexps     = []string{`0[xX][0-9a-fA-F]{2}`}
)

// bigDecimalPrecision is the mantissa precision of bigdecimal values, in bits.
const bigDecimalPrecision = 256

func (r *Registry) defineBuiltins() {
	r.mustDefine("bigint", reflect.TypeOf((*big.Int)(nil)), integerRegexps, r.parseBigInt)
	r.mustDefine("bigdecimal", reflect.TypeOf((*big.Float)(nil)), integerRegexps, r.parseBigDecimal)
	r.mustDefine("byte", numeric.KindUint8.Type(), hexRegexps, r.coerce(numeric.KindUint8))
	r.mustDefine("short", numeric.KindInt16.Type(), integerRegexps, r.coerce(numeric.KindInt16))
	r.mustDefine("int", numeric.KindInt.Type(), integerRegexps, r.coerce(numeric.KindInt),
		Preferential(), UseForSnippets(true))
	r.mustDefine("long", numeric.KindInt64.Type(), integerRegexps, r.coerce(numeric.KindInt64))
	r.mustDefine("float", numeric.KindFloat32.Type(), decimalRegexps, r.coerce(numeric.KindFloat32))
	r.mustDefine("double", numeric.KindFloat64.Type(), decimalRegexps, r.coerce(numeric.KindFloat64),
		Preferential(), UseForSnippets(true))
}

// mustDefine defines a built-in. Built-ins are used for snippets only when
// the options say so.
func (r *Registry) mustDefine(name string, semantic reflect.Type, regexps []string, transform Transform, opts ...TypeOption) {
	opts = append([]TypeOption{UseForSnippets(false)}, opts...)

	t, err := New(name, regexps, semantic, transform, opts...)
	if err == nil {
		err = r.Define(t)
	}

	if err != nil {
		panic(fmt.Sprintf("built-in parameter type {%s}: %v", name, err))
	}

	r.builtins[t] = true
}

// Builtin reports whether t was defined by NewRegistry.
func (r *Registry) Builtin(t *Type) bool {
	return r.builtins[t]
}

func (r *Registry) coerce(kind numeric.Kind) Transform {
	return func(text string) (any, error) {
		return numeric.Coerce(text, kind, r.numbers)
	}
}

func (r *Registry) parseBigInt(text string) (any, error) {
	n, ok := new(big.Int).SetString(text, 0)
	if !ok {
		return nil, fmt.Errorf("cannot parse %q as a big integer", text)
	}

	return n, nil
}

func (r *Registry) parseBigDecimal(text string) (any, error) {
	f, _, err := big.ParseFloat(r.numbers.Normalize(text), 10, bigDecimalPrecision, big.ToNearestEven)
	if err != nil {
		return nil, fmt.Errorf("cannot parse %q as a big decimal: %w", text, err)
	}

	return f, nil
}
