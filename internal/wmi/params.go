//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"encoding"
	"fmt"
	"github.com/pkg/errors"
)

// Param is the decoded view of one field.
type Param struct {
	Field *FieldDescriptor

	// Data is the field's payload.
	// Unless OwnsCopy is true, it aliases the receive buffer.
	Data []byte

	// Count is the number of elements: 1 for a FixedStruct,
	// the byte count for a VarByteArray, or the record count for arrays.
	Count int

	// OwnsCopy is true if Data was copied out of the receive buffer
	// to satisfy the field's alignment.
	OwnsCopy bool

	// Present is false if the sender left the field out.
	// An absent field is never the same as a present, empty one.
	Present bool

	// Offset is the payload's offset in the receive buffer.
	Offset int
}

// Elem returns the i-th element of the field.
func (p Param) Elem(i int) ([]byte, error) {
	if !p.Present {
		return nil, errors.Wrapf(ErrFieldAbsent, "%s", p.name())
	}

	if i < 0 || i >= p.Count {
		return nil, errors.Wrapf(ErrIndexOutOfRange, "%s[%d] of %d", p.name(), i, p.Count)
	}

	sz := int(p.Field.Kind.ElemSize())
	return p.Data[i*sz : (i+1)*sz : (i+1)*sz], nil
}

// Value returns the Param as a Value an Encoder accepts,
// which is convenient for relaying or re-encoding a message.
func (p Param) Value() Value {
	return Value{Data: p.Data, Count: p.Count}
}

func (p Param) name() string {
	if p.Field == nil {
		return "<unknown>"
	}
	return p.Field.Name
}

func (p Param) String() string {
	if !p.Present {
		return fmt.Sprintf("%s: absent", p.name())
	}
	return fmt.Sprintf("%s: %d element(s), %d bytes", p.name(), p.Count, len(p.Data))
}

// Skipped describes a TLV the Decoder ignored
// because its tag isn't part of the message's schema.
type Skipped struct {
	Tag    Tag
	Class  TagClass
	Known  bool // the tag is in the Decoder's TagSpace, just not in this schema
	Offset int
	Length uint32
}

// ParamSet is a decoded message: a Param for every field in its schema.
//
// It's only valid while the receive buffer is;
// call Release once done with it to drop the references.
type ParamSet struct {
	ID     MessageID
	Schema *MessageSchema

	params  []Param
	skipped []Skipped
}

// Param returns the named field.
//
// If the schema doesn't define the field, the error wraps ErrNoSuchField,
// which indicates a programming error.
// If the sender omitted it, the error wraps ErrFieldAbsent
// and the returned Param has Present set to false.
func (ps *ParamSet) Param(name string) (Param, error) {
	i := ps.Schema.FieldIndex(name)
	if i < 0 {
		return Param{}, errors.Wrapf(ErrNoSuchField, "%s has no field %q", ps.Schema.Name, name)
	}

	if i >= len(ps.params) || !ps.params[i].Present {
		return Param{Field: &ps.Schema.Fields[i]},
			errors.Wrapf(ErrFieldAbsent, "%s.%s", ps.Schema.Name, name)
	}

	return ps.params[i], nil
}

// Fixed returns the message's fixed parameter block,
// which every successfully decoded message has.
func (ps *ParamSet) Fixed() []byte {
	if len(ps.params) == 0 {
		return nil
	}
	return ps.params[0].Data
}

// Has returns true if the named field was present in the message.
func (ps *ParamSet) Has(name string) bool {
	p, err := ps.Param(name)
	return err == nil && p.Present
}

// Count returns the number of elements in the named field.
func (ps *ParamSet) Count(name string) (int, error) {
	p, err := ps.Param(name)
	if err != nil {
		return 0, err
	}
	return p.Count, nil
}

// Elem returns the i-th element of the named field.
func (ps *ParamSet) Elem(name string, i int) ([]byte, error) {
	p, err := ps.Param(name)
	if err != nil {
		return nil, err
	}
	return p.Elem(i)
}

// Unmarshal decodes the named field's payload into v.
func (ps *ParamSet) Unmarshal(name string, v encoding.BinaryUnmarshaler) error {
	p, err := ps.Param(name)
	if err != nil {
		return err
	}
	if err := v.UnmarshalBinary(p.Data); err != nil {
		return decodeErr(ps.ID, p.Field, p.Field.Tag, p.Offset, err, "")
	}
	return nil
}

// Present returns the number of fields present in the message.
// Because fields can only be left off the end, they're the first Present() fields.
func (ps *ParamSet) Present() int {
	n := 0
	for _, p := range ps.params {
		if !p.Present {
			break
		}
		n++
	}
	return n
}

// Each calls f with every present field, in schema order.
func (ps *ParamSet) Each(f func(p Param) error) error {
	for _, p := range ps.params {
		if !p.Present {
			break
		}
		if err := f(p); err != nil {
			return err
		}
	}
	return nil
}

// Values returns the present fields as Values,
// suitable for passing back to an Encoder.
func (ps *ParamSet) Values() Values {
	vals := make(Values, len(ps.params))
	_ = ps.Each(func(p Param) error {
		vals[p.Field.Name] = p.Value()
		return nil
	})
	return vals
}

// Skipped returns the TLVs the Decoder ignored, in wire order.
func (ps *ParamSet) Skipped() []Skipped {
	return ps.skipped
}

// Release drops the ParamSet's references to the receive buffer
// and any copies it owns. Every field reads as absent afterwards.
// The receive buffer may be reused once every ParamSet borrowing it is released.
func (ps *ParamSet) Release() {
	for i := range ps.params {
		ps.params[i] = Param{}
	}
	ps.params = nil
	ps.skipped = nil
}
