// SPDX-License-Identifier: MIT

package primitive

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/katalvlaran/sketchrule/lexer"
)

// ValueKind tags the variant held by a Value.
type ValueKind int

const (
	NoneValue ValueKind = iota
	IntValue
	FloatValue
	StringValue
)

func (k ValueKind) String() string {
	switch k {
	case IntValue:
		return "int"
	case FloatValue:
		return "float"
	case StringValue:
		return "string"
	default:
		return "none"
	}
}

// Value is one primitive parameter. The zero Value is None.
type Value struct {
	kind ValueKind
	i    int
	f    float64
	s    string
}

// None returns the absent value.
func None() Value { return Value{} }

// Int wraps an integer.
func Int(v int) Value { return Value{kind: IntValue, i: v} }

// Float wraps a float.
func Float(v float64) Value { return Value{kind: FloatValue, f: v} }

// String wraps a symbolic or quoted string.
func String(v string) Value { return Value{kind: StringValue, s: v} }

// Number returns Int(v) when v is integral and fits, Float(v) otherwise.
func Number(v float64, integral bool) Value {
	if integral && v == math.Trunc(v) && math.Abs(v) < 1<<62 {
		return Int(int(v))
	}

	return Float(v)
}

// Kind returns the variant tag.
func (v Value) Kind() ValueKind { return v.kind }

// IsNone reports whether v is the absent value.
func (v Value) IsNone() bool { return v.kind == NoneValue }

// IsNumeric reports whether v is an Int or a Float.
func (v Value) IsNumeric() bool { return v.kind == IntValue || v.kind == FloatValue }

// Float64 returns the numeric value of an Int or Float.
func (v Value) Float64() (float64, bool) {
	switch v.kind {
	case IntValue:
		return float64(v.i), true
	case FloatValue:
		return v.f, true
	}

	return 0, false
}

// AsInt returns the integer payload; Floats are truncated, others give 0.
func (v Value) AsInt() int {
	switch v.kind {
	case IntValue:
		return v.i
	case FloatValue:
		return int(v.f)
	}

	return 0
}

// AsString returns the string payload, or "" for non-strings.
func (v Value) AsString() string {
	if v.kind == StringValue {
		return v.s
	}

	return ""
}

// Equal reports whether v and o hold the same variant and payload.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case IntValue:
		return v.i == o.i
	case FloatValue:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case StringValue:
		return v.s == o.s
	}

	return true
}

// String renders v in DSL form. Floats always carry a fractional part so they
// re-read as floats. Strings that are not identifiers are quoted; the DSL has
// no escapes, so a string holding '"' does not survive a round trip.
func (v Value) String() string {
	switch v.kind {
	case IntValue:
		return strconv.Itoa(v.i)
	case FloatValue:
		s := strconv.FormatFloat(v.f, 'f', -1, 64)
		if !strings.ContainsAny(s, ".IN") {
			s += ".0"
		}
		return s
	case StringValue:
		if lexer.IsIdentifier(v.s) {
			return v.s
		}
		return `"` + v.s + `"`
	}

	return "none"
}

// GoString makes %#v output readable in test failures.
func (v Value) GoString() string {
	return fmt.Sprintf("%s(%s)", v.kind, v)
}

// ValueFromToken converts an Int, Float, Identifier or String token text.
func ValueFromToken(kind lexer.Kind, text string) (Value, error) {
	switch kind {
	case lexer.Int:
		i, err := strconv.Atoi(text)
		if err != nil {
			return None(), fmt.Errorf("integer %q: %w", text, err)
		}
		return Int(i), nil
	case lexer.Float:
		f, err := strconv.ParseFloat(text, 64)
		if err != nil {
			return None(), fmt.Errorf("float %q: %w", text, err)
		}
		return Float(f), nil
	case lexer.Identifier, lexer.String:
		return String(text), nil
	}

	return None(), fmt.Errorf("unexpected %s", kind)
}
