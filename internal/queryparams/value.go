package queryparams

import (
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/GriffinCanCode/AgentOS/urls/internal/urls"
)

// ValueKind discriminates the shapes accepted as a parameter value
type ValueKind int

const (
	KindText ValueKind = iota
	KindBool
	KindAbsent
	KindOther
)

// Value is a parameter value before coercion to text.
type Value struct {
	kind ValueKind
	text string
	flag bool
}

// Text wraps a string value
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Bool wraps a boolean value, rendered as "true" or "false"
func Bool(b bool) Value { return Value{kind: KindBool, flag: b} }

// Absent is a missing value, rendered as ""
func Absent() Value { return Value{kind: KindAbsent} }

// Other wraps any value by its display form
func Other(display string) Value { return Value{kind: KindOther, text: display} }

// Kind returns the value's shape
func (v Value) Kind() ValueKind { return v.kind }

// String coerces the value to its query-string text
func (v Value) String() string {
	switch v.kind {
	case KindBool:
		return strconv.FormatBool(v.flag)
	case KindAbsent:
		return ""
	default:
		return v.text
	}
}

// Texts wraps each string as a Text value
func Texts(ss ...string) []Value {
	out := make([]Value, len(ss))
	for i, s := range ss {
		out[i] = Text(s)
	}
	return out
}

// ValueOf maps a dynamically typed scalar onto Value. Strings, booleans, nil,
// numbers, UTF-8 byte slices and fmt.Stringer are accepted; anything else is
// rejected rather than stringified.
func ValueOf(x interface{}) (Value, error) {
	switch v := x.(type) {
	case nil:
		return Absent(), nil
	case string:
		return Text(v), nil
	case bool:
		return Bool(v), nil
	case []byte:
		if !utf8.Valid(v) {
			return Value{}, urls.MalformedInput("value is not valid UTF-8")
		}
		return Text(string(v)), nil
	case int:
		return Other(strconv.Itoa(v)), nil
	case int8, int16, int32, int64:
		return Other(fmt.Sprintf("%d", v)), nil
	case uint, uint8, uint16, uint32, uint64:
		return Other(fmt.Sprintf("%d", v)), nil
	case float32:
		return Other(strconv.FormatFloat(float64(v), 'g', -1, 32)), nil
	case float64:
		return Other(strconv.FormatFloat(v, 'g', -1, 64)), nil
	case Value:
		return v, nil
	case fmt.Stringer:
		return Other(v.String()), nil
	default:
		return Value{}, urls.MalformedInput("unsupported query parameter value of type %T", x)
	}
}

// ValuesOf maps x onto a value list when it is a sequence, or a single value otherwise.
func ValuesOf(x interface{}) ([]Value, bool, error) {
	var items []interface{}
	switch v := x.(type) {
	case []interface{}:
		items = v
	case []string:
		return Texts(v...), true, nil
	default:
		val, err := ValueOf(x)
		if err != nil {
			return nil, false, err
		}
		return []Value{val}, false, nil
	}

	out := make([]Value, 0, len(items))
	for _, item := range items {
		val, err := ValueOf(item)
		if err != nil {
			return nil, true, err
		}
		out = append(out, val)
	}
	return out, true, nil
}
