package runtime

import (
	"fmt"
	"strconv"
)

// Kind identifies a value's dynamic type. STIMPL typing is discovered
// during evaluation, so the kind doubles as the runtime type tag: two
// types are equal iff their kinds are equal.
type Kind int

const (
	KindInteger Kind = iota
	KindFloat
	KindString
	KindBool
	KindUnit
)

func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "Integer"
	case KindFloat:
		return "FloatingPoint"
	case KindString:
		return "String"
	case KindBool:
		return "Boolean"
	case KindUnit:
		return "Unit"
	default:
		return fmt.Sprintf("unknown_kind_%d", int(k))
	}
}

// Type is the dynamic type threaded alongside every evaluated value.
type Type = Kind

// Value is the shared behaviour for all runtime values. Values are
// immutable once produced.
type Value interface {
	Kind() Kind
}

type IntegerValue struct {
	Val int64
}

func (v IntegerValue) Kind() Kind { return KindInteger }

type FloatValue struct {
	Val float64
}

func (v FloatValue) Kind() Kind { return KindFloat }

type StringValue struct {
	Val string
}

func (v StringValue) Kind() Kind { return KindString }

type BoolValue struct {
	Val bool
}

func (v BoolValue) Kind() Kind { return KindBool }

type UnitValue struct{}

func (UnitValue) Kind() Kind { return KindUnit }

// FormatValue renders a value the way print emits it. A nil value is the
// absent result of an empty sequence or a never-entered loop and renders
// like a unit.
func FormatValue(val Value) string {
	switch v := val.(type) {
	case nil:
		return "Unit"
	case IntegerValue:
		return strconv.FormatInt(v.Val, 10)
	case FloatValue:
		return strconv.FormatFloat(v.Val, 'g', -1, 64)
	case StringValue:
		return v.Val
	case BoolValue:
		return strconv.FormatBool(v.Val)
	case UnitValue:
		return "Unit"
	default:
		return fmt.Sprintf("unknown value %#v", val)
	}
}
