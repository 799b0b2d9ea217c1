//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"encoding"
)

// Value is the caller-supplied content of one field.
//
// Data holds the payload exactly as it should appear on the wire.
// For array kinds, Count is the number of elements in Data;
// it's ignored for VarByteArray, whose count is just len(Data).
type Value struct {
	Data  []byte
	Count int
}

// Struct returns the Value of a FixedStruct field.
func Struct(b []byte) Value {
	return Value{Data: b, Count: 1}
}

// Bytes returns the Value of a VarByteArray field.
func Bytes(b []byte) Value {
	return Value{Data: b, Count: len(b)}
}

// Records returns the Value of an array holding n records packed in b.
func Records(b []byte, n int) Value {
	return Value{Data: b, Count: n}
}

// Array packs elements into the Value of a struct array.
// Each element is copied as is; the encoder checks that their
// combined length matches the field's element size.
func Array(elems ...[]byte) Value {
	n := 0
	for _, e := range elems {
		n += len(e)
	}

	b := make([]byte, 0, n)
	for _, e := range elems {
		b = append(b, e...)
	}
	return Value{Data: b, Count: len(elems)}
}

// Marshal returns the Value of a FixedStruct field
// built from a type that knows its own binary form.
func Marshal(m encoding.BinaryMarshaler) (Value, error) {
	b, err := m.MarshalBinary()
	if err != nil {
		return Value{}, err
	}
	return Struct(b), nil
}

// Values holds field values by name, for passing to an Encoder.
// Map order doesn't matter: the encoder always follows schema order.
type Values map[string]Value

// Set a field's value and return the Values, so calls can be chained.
func (v Values) Set(name string, val Value) Values {
	v[name] = val
	return v
}
