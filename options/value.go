// Package options implements the per-writer configuration container: a set
// of named options restricted to a whitelist each writer declares up front,
// with overwrite and accumulate mutation semantics.
package options

// Name identifies an option. Each writer declares the names it supports.
type Name string

// Kind tags the variant stored in a Value.
type Kind int

const (
	KindNone Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
)

// Value is a tagged variant holding a single option value: a scalar of one
// of the known kinds or a list of such scalars. Lists appear when an option
// accumulates via Store.Add.
type Value struct {
	kind  Kind
	b     bool
	i     int64
	f     float64
	s     string
	items []Value
}

// Bool wraps a boolean scalar.
func Bool(v bool) Value { return Value{kind: KindBool, b: v} }

// Int wraps an integer scalar.
func Int(v int64) Value { return Value{kind: KindInt, i: v} }

// Float wraps a float scalar.
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }

// String wraps a string scalar.
func String(v string) Value { return Value{kind: KindString, s: v} }

// List wraps a list of values.
func List(items ...Value) Value {
	c := make([]Value, len(items))
	copy(c, items)
	return Value{kind: KindList, items: c}
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// Bool returns the boolean scalar, false for any other kind.
func (v Value) Bool() bool { return v.kind == KindBool && v.b }

// Int returns the integer scalar, 0 for any other kind.
func (v Value) Int() int64 {
	if v.kind != KindInt {
		return 0
	}
	return v.i
}

// Float returns the float scalar, promoting an integer scalar; 0 otherwise.
func (v Value) Float() float64 {
	switch v.kind {
	case KindFloat:
		return v.f
	case KindInt:
		return float64(v.i)
	default:
		return 0
	}
}

// String returns the string scalar, empty for any other kind.
func (v Value) String() string {
	if v.kind != KindString {
		return ""
	}
	return v.s
}

// Items returns list elements, nil for scalars.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	c := make([]Value, len(v.items))
	copy(c, v.items)
	return c
}

// appended returns a list holding the receiver's content plus next. A scalar
// receiver is promoted to a one-then-two element list. The receiver is never
// modified.
func (v Value) appended(next Value) Value {
	if v.kind != KindList {
		return List(v, next)
	}
	c := make([]Value, 0, len(v.items)+1)
	c = append(c, v.items...)
	c = append(c, next)
	return Value{kind: KindList, items: c}
}
