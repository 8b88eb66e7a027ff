package numeric

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"cukexpr/internal/locale"
)

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// Coerce converts matched text into a value of the given kind.
//
// Integer kinds accept Go integer literals (base prefixes included) and fall
// back to localized decimal text rounded to the nearest integer, so "1.22"
// becomes 1 and "2.5" becomes 3.
func Coerce(text string, kind Kind, parser *locale.NumberParser) (any, error) {
	switch {
	case kind == KindFloat32:
		f, err := parser.ParseFloat32(text)
		if err != nil {
			return nil, err
		}

		return f, nil

	case kind == KindFloat64:
		f, err := parser.ParseFloat64(text)
		if err != nil {
			return nil, err
		}

		return f, nil

	case kind.IsSigned():
		n, err := strconv.ParseInt(text, 0, kind.Bits())
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("%q overflows %s: %w", text, kind.Type(), err)
			}

			r, rerr := roundedDecimal(text, kind, parser)
			if rerr != nil {
				return nil, rerr
			}

			n = int64(r)
		}

		return signed(n, kind), nil

	case kind.IsUnsigned():
		n, err := strconv.ParseUint(text, 0, kind.Bits())
		if err != nil {
			if errors.Is(err, strconv.ErrRange) {
				return nil, fmt.Errorf("%q overflows %s: %w", text, kind.Type(), err)
			}

			r, rerr := roundedDecimal(text, kind, parser)
			if rerr != nil {
				return nil, rerr
			}

			n = uint64(r)
		}

		return unsigned(n, kind), nil
	}

	return nil, fmt.Errorf("%s is not a numeric kind", kind)
}

func roundedDecimal(text string, kind Kind, parser *locale.NumberParser) (float64, error) {
	f, err := parser.ParseFloat64(text)
	if err != nil {
		return 0, fmt.Errorf("cannot convert %q to %s: %w", text, kind.Type(), err)
	}

	r := math.Round(f)

	// Upper bounds are exclusive: 2^bits is exactly representable, its predecessor is not.
	lo, hi := 0.0, math.Ldexp(1, kind.Bits())
	if kind.IsSigned() {
		lo, hi = -math.Ldexp(1, kind.Bits()-1), math.Ldexp(1, kind.Bits()-1)
	}

	if !IsInRange(lo, r, hi) || r == hi {
		return 0, fmt.Errorf("%q overflows %s", text, kind.Type())
	}

	return r, nil
}

func signed(n int64, kind Kind) any {
	switch kind {
	case KindInt8:
		return int8(n)
	case KindInt16:
		return int16(n)
	case KindInt32:
		return int32(n)
	case KindInt64:
		return n
	default:
		return int(n)
	}
}

func unsigned(n uint64, kind Kind) any {
	switch kind {
	case KindUint8:
		return uint8(n)
	case KindUint16:
		return uint16(n)
	case KindUint32:
		return uint32(n)
	case KindUint64:
		return n
	default:
		return uint(n)
	}
}
