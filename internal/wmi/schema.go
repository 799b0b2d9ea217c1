//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"github.com/pkg/errors"
	"strings"
)

// MessageSchema is the ordered list of fields one message kind carries.
//
// Wire order must match schema order.
// The first field is always a mandatory FixedStruct (the fixed parameter block);
// later fields are optional unless marked Mandatory,
// and older senders may only omit them from the end.
type MessageSchema struct {
	ID     MessageID
	Name   string
	Fields []FieldDescriptor

	byTag  map[Tag]int
	byName map[string]int
	nMand  int // number of leading mandatory fields
}

// index prepares the lookup tables and validates the field list.
func (ms *MessageSchema) index() error {
	if len(ms.Fields) == 0 {
		return schemaErr(ms.ID, "", ErrEmptySchema, "")
	}

	if ms.Fields[0].Kind.Shape() != ShapeFixedStruct {
		return schemaErr(ms.ID, ms.Fields[0].Name, ErrFirstFieldNotFixed,
			"found %v", ms.Fields[0].Kind)
	}

	ms.byTag = make(map[Tag]int, len(ms.Fields))
	ms.byName = make(map[string]int, len(ms.Fields))
	ms.Fields[0].Mandatory = true
	ms.nMand = 0

	for i := range ms.Fields {
		fd := &ms.Fields[i]
		if err := fd.Kind.validate(); err != nil {
			return schemaErr(ms.ID, fd.Name, err, "")
		}

		if fd.Tag == TagInvalid {
			return schemaErr(ms.ID, fd.Name, ErrUnknownTag, "tag 0 is never valid")
		}

		if j, ok := ms.byTag[fd.Tag]; ok {
			return schemaErr(ms.ID, fd.Name, ErrDuplicateTag,
				"tag %d already used by %q", uint32(fd.Tag), ms.Fields[j].Name)
		}

		if fd.Name == "" {
			return schemaErr(ms.ID, "", errors.New("unnamed field"), "field %d", i)
		}

		if _, ok := ms.byName[fd.Name]; ok {
			return schemaErr(ms.ID, fd.Name, errors.New("duplicate field name"), "")
		}

		if fd.Mandatory {
			if ms.nMand != i {
				return schemaErr(ms.ID, fd.Name, errors.New("mandatory field follows an optional one"), "")
			}
			ms.nMand++
		}

		if fd.Align == 0 {
			fd.Align = defaultAlign(fd.Kind)
		}

		ms.byTag[fd.Tag] = i
		ms.byName[fd.Name] = i
	}

	return nil
}

// Field returns the descriptor with the given name.
func (ms *MessageSchema) Field(name string) (*FieldDescriptor, bool) {
	i, ok := ms.byName[name]
	if !ok {
		return nil, false
	}
	return &ms.Fields[i], true
}

// FieldIndex returns the index of the named field, or -1.
func (ms *MessageSchema) FieldIndex(name string) int {
	if i, ok := ms.byName[name]; ok {
		return i
	}
	return -1
}

// tagIndex returns the index of the field with the given tag, or -1.
func (ms *MessageSchema) tagIndex(t Tag) int {
	if i, ok := ms.byTag[t]; ok {
		return i
	}
	return -1
}

// MandatoryFields returns the number of leading fields every message must carry.
func (ms *MessageSchema) MandatoryFields() int {
	return ms.nMand
}

// Fixed returns the schema's fixed parameter block descriptor.
func (ms *MessageSchema) Fixed() *FieldDescriptor {
	return &ms.Fields[0]
}

func (ms *MessageSchema) String() string {
	sb := strings.Builder{}
	sb.WriteString(ms.Name)
	sb.WriteString("[")
	for i := range ms.Fields {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(ms.Fields[i].String())
	}
	sb.WriteString("]")
	return sb.String()
}

// defaultAlign returns the natural alignment of a field's records.
// Firmware structures are built from 32-bit words,
// so nothing needs more than 4 byte alignment.
func defaultAlign(k FieldKind) int {
	if k.Shape() == ShapeVarByteArray {
		return 1
	}

	a := uint32(4)
	for a > 1 && k.ElemSize()%a != 0 {
		a >>= 1
	}
	return int(a)
}

// SchemaBuilder assembles a MessageSchema.
//
// The builder records the first error it encounters
// and reports it from Build, so calls can be chained:
//
//	s, err := NewSchema(CmdVdevDelete, "vdev_delete").
//	    Fixed(TagVdevDeleteCmd, "fixed_param", 4).
//	    Build()
type SchemaBuilder struct {
	ms  MessageSchema
	err error
}

// NewSchema starts building the schema for a message ID.
func NewSchema(id MessageID, name string) *SchemaBuilder {
	return &SchemaBuilder{ms: MessageSchema{ID: id, Name: name}}
}

// Field appends a field of any kind.
func (b *SchemaBuilder) Field(t Tag, name string, k FieldKind) *SchemaBuilder {
	b.ms.Fields = append(b.ms.Fields, FieldDescriptor{Tag: t, Name: name, Kind: k})
	return b
}

// Fixed appends a FixedStruct field.
func (b *SchemaBuilder) Fixed(t Tag, name string, size uint32) *SchemaBuilder {
	return b.Field(t, name, FixedStruct(size))
}

// Bytes appends a VarByteArray field.
func (b *SchemaBuilder) Bytes(t Tag, name string) *SchemaBuilder {
	return b.Field(t, name, VarByteArray())
}

// Structs appends a VarStructArray field.
func (b *SchemaBuilder) Structs(t Tag, name string, elemSize uint32) *SchemaBuilder {
	return b.Field(t, name, VarStructArray(elemSize))
}

// Words appends a VarStructArray of 32-bit words.
func (b *SchemaBuilder) Words(t Tag, name string) *SchemaBuilder {
	return b.Field(t, name, VarStructArray(4))
}

// FixedArray appends a FixedCountArray field.
func (b *SchemaBuilder) FixedArray(t Tag, name string, elemSize, count uint32) *SchemaBuilder {
	return b.Field(t, name, FixedCountArray(elemSize, count))
}

// Mandatory marks the most recently added field mandatory.
func (b *SchemaBuilder) Mandatory() *SchemaBuilder {
	if n := len(b.ms.Fields); n > 0 {
		b.ms.Fields[n-1].Mandatory = true
	} else if b.err == nil {
		b.err = schemaErr(b.ms.ID, "", ErrEmptySchema, "Mandatory called before any field")
	}
	return b
}

// Aligned overrides the natural alignment of the most recently added field.
func (b *SchemaBuilder) Aligned(n int) *SchemaBuilder {
	if l := len(b.ms.Fields); l > 0 && n > 0 && n&(n-1) == 0 {
		b.ms.Fields[l-1].Align = n
	} else if b.err == nil {
		b.err = schemaErr(b.ms.ID, "", errors.Errorf("invalid alignment %d", n), "")
	}
	return b
}

// Build validates and returns the schema.
func (b *SchemaBuilder) Build() (*MessageSchema, error) {
	if b.err != nil {
		return nil, b.err
	}

	ms := b.ms
	ms.Fields = append([]FieldDescriptor(nil), b.ms.Fields...)
	if err := ms.index(); err != nil {
		return nil, err
	}
	return &ms, nil
}

// MustBuild is like Build, but panics if the schema is invalid.
// It's meant for package-level schema tables.
func (b *SchemaBuilder) MustBuild() *MessageSchema {
	ms, err := b.Build()
	if err != nil {
		panic(err)
	}
	return ms
}
