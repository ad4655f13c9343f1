package feature

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

/*
Value represents the content of a cell in a dataset. It is a sealed
interface: only Int, Label and Bool implement it.

Values are comparable with ==, two values being equal when they are
of the same variant and hold the same payload, so they can be used as
map keys.
*/
type Value interface {
	Kind() Kind
	String() string
	value()
}

// Int is an integer Value
type Int int64

// Label is a text Value
type Label string

// Bool is a boolean Value
type Bool bool

func (Int) value()   {}
func (Label) value() {}
func (Bool) value()  {}

// Kind returns KindInt
func (Int) Kind() Kind { return KindInt }

// Kind returns KindLabel
func (Label) Kind() Kind { return KindLabel }

// Kind returns KindBool
func (Bool) Kind() Kind { return KindBool }

func (i Int) String() string   { return strconv.FormatInt(int64(i), 10) }
func (l Label) String() string { return string(l) }
func (b Bool) String() string  { return strconv.FormatBool(bool(b)) }

/*
Compare takes two values and returns -1, 0 or 1 when the first one is
respectively lower, equal or greater than the second one.

Values of different kinds are ordered by kind (Int < Label < Bool), values
of the same kind by their payload, false being lower than true. The order
has no meaning in the domain, it only makes enumerations deterministic.
*/
func Compare(a, b Value) int {
	if a.Kind() != b.Kind() {
		if a.Kind() < b.Kind() {
			return -1
		}
		return 1
	}
	switch av := a.(type) {
	case Int:
		bv := b.(Int)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case Label:
		return strings.Compare(string(av), string(b.(Label)))
	case Bool:
		bv := b.(Bool)
		switch {
		case av == bv:
			return 0
		case !bool(av):
			return -1
		}
		return 1
	}
	return 0
}

/*
Parse takes a kind and a string and returns the Value of that kind
represented by the string or an error if it cannot be parsed.
Labels are taken verbatim but cannot be empty.
*/
func Parse(k Kind, s string) (Value, error) {
	switch k {
	case KindInt:
		i, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing int value %q: %v", s, err)
		}
		return Int(i), nil
	case KindLabel:
		if s == "" {
			return nil, fmt.Errorf("parsing label value: empty label")
		}
		return Label(s), nil
	case KindBool:
		b, err := strconv.ParseBool(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("parsing bool value %q: %v", s, err)
		}
		return Bool(b), nil
	}
	return nil, fmt.Errorf("parsing value %q: unknown kind %v", s, k)
}

// MarshalJSON encodes the Int as a JSON number
func (i Int) MarshalJSON() ([]byte, error) {
	return json.Marshal(int64(i))
}

// MarshalJSON encodes the Label as a JSON string
func (l Label) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(l))
}

// MarshalJSON encodes the Bool as a JSON boolean
func (b Bool) MarshalJSON() ([]byte, error) {
	return json.Marshal(bool(b))
}

/*
UnmarshalJSONValue takes a slice of bytes with a JSON number,
string or boolean and returns it as an Int, Label or Bool value
respectively. Non-integer numbers and any other JSON type are
rejected with an error.
*/
func UnmarshalJSONValue(b []byte) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding value: %v", err)
	}
	switch v := v.(type) {
	case json.Number:
		i, err := v.Int64()
		if err != nil {
			return nil, fmt.Errorf("decoding value: %s is not an integer", v)
		}
		return Int(i), nil
	case string:
		return Label(v), nil
	case bool:
		return Bool(v), nil
	}
	return nil, fmt.Errorf("decoding value: unsupported JSON value %s", b)
}
