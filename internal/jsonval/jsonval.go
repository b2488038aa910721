// Package jsonval provides a small tagged JSON value type with accessors
// that fail with a typed error on shape mismatch instead of returning a
// zero value. It is used by the API layer to probe response bodies whose
// shape is only partially known, such as structured error payloads.
package jsonval

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind identifies the JSON type a Value holds.
type Kind int

const (
	// KindNull is a JSON null.
	KindNull Kind = iota
	// KindBool is a JSON boolean.
	KindBool
	// KindNumber is a JSON number.
	KindNumber
	// KindString is a JSON string.
	KindString
	// KindArray is a JSON array.
	KindArray
	// KindObject is a JSON object.
	KindObject
)

// String returns the JSON type name.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Value is an immutable tagged JSON value.
type Value struct {
	kind Kind
	b    bool
	n    json.Number
	s    string
	a    []Value
	o    map[string]Value
}

// TypeError reports an accessor applied to a value of the wrong kind.
type TypeError struct {
	Want Kind
	Got  Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("json value is %s, not %s", e.Got, e.Want)
}

// MissingMemberError reports a member lookup on an object that lacks the key.
type MissingMemberError struct {
	Name string
}

func (e *MissingMemberError) Error() string {
	return fmt.Sprintf("json object has no member %q", e.Name)
}

// Parse decodes data into a Value. Numbers are kept as json.Number so no
// precision is lost. Trailing non-whitespace after the value is an error.
func Parse(data []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw interface{}
	if err := dec.Decode(&raw); err != nil {
		return Value{}, err
	}
	if dec.More() {
		return Value{}, fmt.Errorf("trailing data after json value")
	}
	return fromInterface(raw), nil
}

func fromInterface(raw interface{}) Value {
	switch v := raw.(type) {
	case nil:
		return Value{kind: KindNull}
	case bool:
		return Value{kind: KindBool, b: v}
	case json.Number:
		return Value{kind: KindNumber, n: v}
	case string:
		return Value{kind: KindString, s: v}
	case []interface{}:
		a := make([]Value, len(v))
		for i, e := range v {
			a[i] = fromInterface(e)
		}
		return Value{kind: KindArray, a: a}
	case map[string]interface{}:
		o := make(map[string]Value, len(v))
		for k, e := range v {
			o[k] = fromInterface(e)
		}
		return Value{kind: KindObject, o: o}
	}
	// encoding/json produces no other types
	return Value{kind: KindNull}
}

// Kind returns the JSON type of the value.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether the value is JSON null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Bool returns the boolean value.
func (v Value) Bool() (bool, error) {
	if v.kind != KindBool {
		return false, &TypeError{Want: KindBool, Got: v.kind}
	}
	return v.b, nil
}

// String returns the string value.
func (v Value) String() (string, error) {
	if v.kind != KindString {
		return "", &TypeError{Want: KindString, Got: v.kind}
	}
	return v.s, nil
}

// Number returns the numeric value as a json.Number.
func (v Value) Number() (json.Number, error) {
	if v.kind != KindNumber {
		return "", &TypeError{Want: KindNumber, Got: v.kind}
	}
	return v.n, nil
}

// Int64 returns the numeric value as an int64.
func (v Value) Int64() (int64, error) {
	n, err := v.Number()
	if err != nil {
		return 0, err
	}
	return n.Int64()
}

// Float64 returns the numeric value as a float64.
func (v Value) Float64() (float64, error) {
	n, err := v.Number()
	if err != nil {
		return 0, err
	}
	return n.Float64()
}

// Array returns the element slice.
func (v Value) Array() ([]Value, error) {
	if v.kind != KindArray {
		return nil, &TypeError{Want: KindArray, Got: v.kind}
	}
	return v.a, nil
}

// Member returns the named object member. It fails with a TypeError if the
// value is not an object and a MissingMemberError if the key is absent.
func (v Value) Member(name string) (Value, error) {
	if v.kind != KindObject {
		return Value{}, &TypeError{Want: KindObject, Got: v.kind}
	}
	m, ok := v.o[name]
	if !ok {
		return Value{}, &MissingMemberError{Name: name}
	}
	return m, nil
}

// OptMember returns the named object member and whether it exists. A value
// that is not an object has no members.
func (v Value) OptMember(name string) (Value, bool) {
	if v.kind != KindObject {
		return Value{}, false
	}
	m, ok := v.o[name]
	return m, ok
}

// Len returns the number of elements or members for arrays and objects,
// and 0 for every other kind.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.a)
	case KindObject:
		return len(v.o)
	}
	return 0
}
