package answer

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind tags the variant stored in a Value
type Kind int

const (
	KindEmpty Kind = iota
	KindBool
	KindNumber
	KindText
)

// String returns the type name used by question type declarations
func (k Kind) String() string {
	switch k {
	case KindEmpty:
		return "empty"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindText:
		return "string"
	default:
		return "unknown"
	}
}

// Value is a coerced reply. The zero Value is Empty.
type Value struct {
	kind Kind
	b    bool
	n    float64
	s    string
}

// Empty returns the value meaning "no reply given"
func Empty() Value { return Value{} }

// Bool wraps a boolean
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Number wraps a number
func Number(n float64) Value { return Value{kind: KindNumber, n: n} }

// Text wraps a string verbatim
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Kind reports which variant v holds
func (v Value) Kind() Kind { return v.kind }

// IsEmpty reports whether v is the Empty variant
func (v Value) IsEmpty() bool { return v.kind == KindEmpty }

// AsBool returns the boolean and whether v holds one
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsNumber returns the number and whether v holds one
func (v Value) AsNumber() (float64, bool) { return v.n, v.kind == KindNumber }

// AsText returns the string and whether v holds one
func (v Value) AsText() (string, bool) { return v.s, v.kind == KindText }

// Equal reports strict equality: same kind and same payload.
// A Number never equals a Text, even when they print the same.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindBool:
		return v.b == other.b
	case KindNumber:
		return v.n == other.n
	case KindText:
		return v.s == other.s
	default:
		return true
	}
}

// String renders v the way it is shown in prompts and matched by regexes.
// Empty renders as the empty string.
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindNumber:
		return formatNumber(v.n)
	case KindText:
		return v.s
	default:
		return ""
	}
}

// Interface returns v as a plain Go value (nil, bool, float64 or string)
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.n
	case KindText:
		return v.s
	default:
		return nil
	}
}

var (
	truePattern  = regexp.MustCompile(`(?i)^(true|y(es)?)$`)
	falsePattern = regexp.MustCompile(`(?i)^(false|no?)$`)
)

// Coerce guesses the type of a raw reply. Rules are checked in order and
// the first match wins: blank text is Empty, yes/no words are Bool, text
// that survives a numeric round trip is Number, everything else is Text.
func Coerce(raw string) Value {
	if strings.TrimSpace(raw) == "" {
		return Empty()
	}
	if truePattern.MatchString(raw) {
		return Bool(true)
	}
	if falsePattern.MatchString(raw) {
		return Bool(false)
	}
	if n, ok := parseNumber(raw); ok {
		return Number(n)
	}
	return Text(raw)
}

// parseNumber accepts raw only when formatting the parsed number reproduces
// raw exactly, so "007", "1.0" and "+1" stay text.
func parseNumber(raw string) (float64, bool) {
	n, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, formatNumber(n) == raw
}

// formatNumber prints n like a JavaScript Number: plain decimals between
// 1e-6 and 1e21, exponent form with an explicit sign outside that range.
func formatNumber(n float64) string {
	if n == 0 {
		return "0"
	}
	abs := math.Abs(n)
	if abs >= 1e-6 && abs < 1e21 {
		return strconv.FormatFloat(n, 'f', -1, 64)
	}

	s := strconv.FormatFloat(n, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	sign := exp[:1]
	digits := strings.TrimLeft(exp[1:], "0")
	if digits == "" {
		digits = "0"
	}
	return mantissa + "e" + sign + digits
}

// FromLiteral converts a configuration literal (as decoded from YAML or
// written in Go) into a Value. Strings are taken verbatim, not coerced.
func FromLiteral(lit any) (Value, error) {
	switch x := lit.(type) {
	case nil:
		return Empty(), nil
	case Value:
		return x, nil
	case bool:
		return Bool(x), nil
	case string:
		return Text(x), nil
	case int:
		return Number(float64(x)), nil
	case int8:
		return Number(float64(x)), nil
	case int16:
		return Number(float64(x)), nil
	case int32:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case uint:
		return Number(float64(x)), nil
	case uint8:
		return Number(float64(x)), nil
	case uint16:
		return Number(float64(x)), nil
	case uint32:
		return Number(float64(x)), nil
	case uint64:
		return Number(float64(x)), nil
	case float32:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case fmt.Stringer:
		return Text(x.String()), nil
	default:
		return Empty(), fmt.Errorf("unsupported literal type %T", lit)
	}
}

// MustLiteral is FromLiteral for values known to be supported.
// Unsupported types become Empty.
func MustLiteral(lit any) Value {
	v, err := FromLiteral(lit)
	if err != nil {
		return Empty()
	}
	return v
}
