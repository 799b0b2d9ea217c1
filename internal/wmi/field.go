//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"fmt"
	"github.com/pkg/errors"
)

// Shape distinguishes the variants of FieldKind.
type Shape uint8

const (
	ShapeFixedStruct     Shape = iota + 1 // exactly one fixed-size record
	ShapeVarByteArray                     // any number of bytes
	ShapeVarStructArray                   // any number of fixed-size records
	ShapeFixedCountArray                  // a schema-fixed number of fixed-size records
)

func (s Shape) String() string {
	switch s {
	case ShapeFixedStruct:
		return "FixedStruct"
	case ShapeVarByteArray:
		return "VarByteArray"
	case ShapeVarStructArray:
		return "VarStructArray"
	case ShapeFixedCountArray:
		return "FixedCountArray"
	}
	return fmt.Sprintf("Shape(%d)", uint8(s))
}

// FieldKind describes the wire shape of a field.
// Use the FixedStruct, VarByteArray, VarStructArray, and FixedCountArray
// constructors; the zero value is invalid.
type FieldKind struct {
	shape    Shape
	elemSize uint32 // size of the struct, or of each array element
	count    uint32 // only for FixedCountArray
}

// FixedStruct is exactly one record of size bytes.
func FixedStruct(size uint32) FieldKind {
	return FieldKind{shape: ShapeFixedStruct, elemSize: size, count: 1}
}

// VarByteArray is a run of raw bytes whose length is only known at runtime.
func VarByteArray() FieldKind {
	return FieldKind{shape: ShapeVarByteArray, elemSize: 1}
}

// VarStructArray is a runtime-determined number of elemSize-byte records.
func VarStructArray(elemSize uint32) FieldKind {
	return FieldKind{shape: ShapeVarStructArray, elemSize: elemSize}
}

// FixedCountArray is exactly count records of elemSize bytes.
// The count is part of the schema and never carried on the wire.
func FixedCountArray(elemSize, count uint32) FieldKind {
	return FieldKind{shape: ShapeFixedCountArray, elemSize: elemSize, count: count}
}

func (k FieldKind) Shape() Shape     { return k.shape }
func (k FieldKind) ElemSize() uint32 { return k.elemSize }

// Count returns the schema-fixed element count,
// or 0 for the variable shapes.
func (k FieldKind) Count() uint32 {
	switch k.shape {
	case ShapeFixedStruct, ShapeFixedCountArray:
		return k.count
	}
	return 0
}

// IsFixed returns true if the wire length is known from the schema alone.
func (k FieldKind) IsFixed() bool {
	return k.shape == ShapeFixedStruct || k.shape == ShapeFixedCountArray
}

// IsArray returns true for every shape but FixedStruct.
func (k FieldKind) IsArray() bool {
	return k.shape != ShapeFixedStruct
}

// FixedLen returns the exact payload length of a fixed kind.
func (k FieldKind) FixedLen() uint64 {
	return uint64(k.elemSize) * uint64(k.count)
}

func (k FieldKind) String() string {
	switch k.shape {
	case ShapeFixedStruct:
		return fmt.Sprintf("FixedStruct{size: %d}", k.elemSize)
	case ShapeVarByteArray:
		return "VarByteArray"
	case ShapeVarStructArray:
		return fmt.Sprintf("VarStructArray{elem: %d}", k.elemSize)
	case ShapeFixedCountArray:
		return fmt.Sprintf("FixedCountArray{elem: %d, count: %d}", k.elemSize, k.count)
	}
	return "InvalidKind"
}

// validate checks the kind is well formed.
func (k FieldKind) validate() error {
	switch k.shape {
	case ShapeFixedStruct, ShapeVarStructArray:
		if k.elemSize == 0 {
			return errors.Errorf("%v must have a non-zero size", k.shape)
		}
	case ShapeVarByteArray:
	case ShapeFixedCountArray:
		if k.elemSize == 0 || k.count == 0 {
			return errors.Errorf("%v must have a non-zero element size and count", k.shape)
		}
	default:
		return errors.New("invalid field kind")
	}
	return nil
}

// elements returns the number of elements a payload of length n holds,
// or false if n isn't a legal length for the kind.
func (k FieldKind) elements(n uint32) (int, bool) {
	switch k.shape {
	case ShapeFixedStruct, ShapeFixedCountArray:
		if uint64(n) != k.FixedLen() {
			return 0, false
		}
		return int(k.count), true
	case ShapeVarByteArray:
		return int(n), true
	case ShapeVarStructArray:
		if n%k.elemSize != 0 {
			return 0, false
		}
		return int(n / k.elemSize), true
	}
	return 0, false
}

// FieldDescriptor is one field of a MessageSchema.
type FieldDescriptor struct {
	Tag  Tag
	Name string
	Kind FieldKind

	// Align is the natural alignment of the field's records.
	// The decoder uses it to decide if a payload needs to be copied.
	Align int

	// Mandatory fields must be present in every message;
	// they always form a prefix of the schema.
	Mandatory bool
}

func (fd FieldDescriptor) String() string {
	return fmt.Sprintf("%s (tag %d, %v)", fd.Name, uint32(fd.Tag), fd.Kind)
}
