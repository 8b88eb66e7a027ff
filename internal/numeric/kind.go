// Package numeric classifies Go numeric types and converts matched text into them.
package numeric

import (
	"math"
	"reflect"
)

//go:generate go tool stringer -type=Kind -output=kind_string.go

type Kind int

const (
	_ Kind = iota // skip zero value, use it as a default (invalid) value for Kind

	KindInt
	KindInt8
	KindInt16
	KindInt32
	KindInt64
	KindUint
	KindUint8
	KindUint16
	KindUint32
	KindUint64
	KindFloat32
	KindFloat64

	// KindTotal is a constant that represents the total number of kinds defined
	KindTotal = int(iota)
)

func (k Kind) IsNumber() bool {
	return k.IsInteger() || k.IsFloat()
}

func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

func (k Kind) IsFloat() bool {
	switch k {
	default:
		return false
	case KindFloat32, KindFloat64:
		return true
	}
}

func (k Kind) IsSigned() bool {
	switch k {
	default:
		return false
	case KindInt, KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
}

func (k Kind) IsUnsigned() bool {
	switch k {
	default:
		return false
	case KindUint, KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	}
}

func (k Kind) Bits() int {
	switch k {
	default:
		panic("only numeric kinds has meaningful bits amount, but requested for: " + k.String())
	case KindInt, KindUint:
		power := 0
		for n := uint(math.MaxUint); n > 0; n >>= 1 {
			power++
		}
		return power
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32, KindFloat32:
		return 32
	case KindInt64, KindUint64, KindFloat64:
		return 64
	}
}

var kindTypes = [...]reflect.Type{
	KindInt:     reflect.TypeOf(int(0)),
	KindInt8:    reflect.TypeOf(int8(0)),
	KindInt16:   reflect.TypeOf(int16(0)),
	KindInt32:   reflect.TypeOf(int32(0)),
	KindInt64:   reflect.TypeOf(int64(0)),
	KindUint:    reflect.TypeOf(uint(0)),
	KindUint8:   reflect.TypeOf(uint8(0)),
	KindUint16:  reflect.TypeOf(uint16(0)),
	KindUint32:  reflect.TypeOf(uint32(0)),
	KindUint64:  reflect.TypeOf(uint64(0)),
	KindFloat32: reflect.TypeOf(float32(0)),
	KindFloat64: reflect.TypeOf(float64(0)),
}

// Type returns the predeclared Go type of the kind, or nil for the invalid kind.
func (k Kind) Type() reflect.Type {
	if k <= 0 || int(k) >= KindTotal {
		return nil
	}

	return kindTypes[k]
}

// FromReflectType returns the kind of a predeclared numeric type.
// Named types such as time.Duration are not numeric kinds.
func FromReflectType(rtype reflect.Type) Kind {
	if rtype == nil {
		return 0
	}

	for k := KindInt; int(k) < KindTotal; k++ {
		if kindTypes[k] == rtype {
			return k
		}
	}

	return 0
}

// Boxed resolves a pointer to a predeclared numeric type to the numeric type
// itself. Every other type is returned unchanged.
func Boxed(rtype reflect.Type) reflect.Type {
	if rtype != nil && rtype.Kind() == reflect.Pointer && FromReflectType(rtype.Elem()) != 0 {
		return rtype.Elem()
	}

	return rtype
}
