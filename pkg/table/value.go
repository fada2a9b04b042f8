package table

import (
	"math"
	"strconv"
	"strings"
)

// Kind classifies a cell value.
type Kind int

const (
	// KindNull marks a missing cell (a key absent from one log record).
	KindNull Kind = iota
	// KindInt is an integral number.
	KindInt
	// KindFloat is a non-integral or non-finite number.
	KindFloat
	// KindString is anything that does not parse as a number.
	KindString
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	default:
		return "null"
	}
}

// Value is a single table cell.
type Value struct {
	Kind  Kind
	Int   int64
	Float float64
	Str   string
}

// Null returns a missing cell.
func Null() Value { return Value{} }

// Int returns an integer cell.
func Int(v int64) Value { return Value{Kind: KindInt, Int: v} }

// Float returns a float cell.
func Float(v float64) Value { return Value{Kind: KindFloat, Float: v} }

// String returns a string cell.
func String(s string) Value { return Value{Kind: KindString, Str: s} }

// Number reports the cell as a float64. Strings and nulls are not numbers.
func (v Value) Number() (float64, bool) {
	switch v.Kind {
	case KindInt:
		return float64(v.Int), true
	case KindFloat:
		return v.Float, true
	default:
		return 0, false
	}
}

// IsNumber reports whether the cell holds an int or a float.
func (v Value) IsNumber() bool {
	return v.Kind == KindInt || v.Kind == KindFloat
}

// String formats the cell the way it was read.
func (v Value) String() string {
	switch v.Kind {
	case KindInt:
		return strconv.FormatInt(v.Int, 10)
	case KindFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case KindString:
		return v.Str
	default:
		return ""
	}
}

// Infer parses raw text into the narrowest cell kind.
//
// A value is an int when it parses as a number equal to its truncation
// ("3", "3.0", "1e3"), a float when it parses as any other number
// (including NaN and infinities), and a string otherwise. Blank text is
// null.
func Infer(raw string) Value {
	s := strings.TrimSpace(raw)
	if s == "" {
		return Null()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return String(raw)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Float(f)
	}
	if f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		return Int(int64(f))
	}
	return Float(f)
}
