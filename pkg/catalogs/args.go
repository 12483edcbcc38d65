package catalogs

import (
	"maps"
	"slices"
	"strconv"
)

// Kind identifies which variant a Value holds.
type Kind uint8

// Value kinds.
const (
	KindString Kind = iota
	KindInt
	KindBool
)

// Value is a parameter value: a string, an integer or a boolean.
type Value struct {
	kind Kind
	s    string
	i    int64
	b    bool
}

// StringValue returns a string Value.
func StringValue(s string) Value {
	return Value{kind: KindString, s: s}
}

// IntValue returns an integer Value.
func IntValue(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// BoolValue returns a boolean Value.
func BoolValue(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// String formats v the way it is sent on the wire. Booleans are lowercase.
func (v Value) String() string {
	switch v.kind {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return v.s
}

// Args is an ordered set of named parameter values for one call.
// The zero value is ready to use.
type Args struct {
	keys   []string
	values map[string]Value
}

// NewArgs returns Args holding the given string values, ordered by key.
func NewArgs(values map[string]string) *Args {
	a := &Args{}
	for _, k := range slices.Sorted(maps.Keys(values)) {
		a.Set(k, StringValue(values[k]))
	}
	return a
}

// Set stores a value. Re-setting a key keeps its original position.
func (a *Args) Set(name string, v Value) *Args {
	if a.values == nil {
		a.values = make(map[string]Value)
	}
	if _, exists := a.values[name]; !exists {
		a.keys = append(a.keys, name)
	}
	a.values[name] = v
	return a
}

// SetString stores a string value.
func (a *Args) SetString(name, s string) *Args {
	return a.Set(name, StringValue(s))
}

// SetInt stores an integer value.
func (a *Args) SetInt(name string, i int64) *Args {
	return a.Set(name, IntValue(i))
}

// SetBool stores a boolean value.
func (a *Args) SetBool(name string, b bool) *Args {
	return a.Set(name, BoolValue(b))
}

// Get returns the value stored under name.
func (a *Args) Get(name string) (Value, bool) {
	if a == nil {
		return Value{}, false
	}
	v, ok := a.values[name]
	return v, ok
}

// Has reports whether name was supplied.
func (a *Args) Has(name string) bool {
	_, ok := a.Get(name)
	return ok
}

// Keys returns the supplied names in insertion order.
func (a *Args) Keys() []string {
	if a == nil {
		return nil
	}
	return slices.Clone(a.keys)
}

// Len returns the number of supplied values.
func (a *Args) Len() int {
	if a == nil {
		return 0
	}
	return len(a.keys)
}
