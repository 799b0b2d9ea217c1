//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/hex"
	"fmt"
	"github.com/pkg/errors"
	"github.impcloud.net/RSP-Inventory-Suite/wmi-tlv-go/internal/wmi"
	"sort"
)

type fieldView struct {
	Name      string `json:"name"`
	Tag       uint32 `json:"tag"`
	Kind      string `json:"kind"`
	ElemSize  uint32 `json:"elemSize,omitempty"`
	Count     uint32 `json:"count,omitempty"`
	Align     int    `json:"align"`
	Mandatory bool   `json:"mandatory,omitempty"`
}

type schemaView struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Fields []fieldView `json:"fields"`
}

func newSchemaView(ms *wmi.MessageSchema) schemaView {
	sv := schemaView{
		ID:     hexID(ms.ID),
		Name:   ms.Name,
		Fields: make([]fieldView, len(ms.Fields)),
	}

	for i, fd := range ms.Fields {
		fv := fieldView{
			Name:      fd.Name,
			Tag:       uint32(fd.Tag),
			Kind:      fd.Kind.Shape().String(),
			Align:     fd.Align,
			Mandatory: fd.Mandatory,
		}
		if fd.Kind.Shape() != wmi.ShapeVarByteArray {
			fv.ElemSize = fd.Kind.ElemSize()
		}
		if fd.Kind.Shape() == wmi.ShapeFixedCountArray {
			fv.Count = fd.Kind.Count()
		}
		sv.Fields[i] = fv
	}
	return sv
}

type paramView struct {
	Name   string `json:"name"`
	Count  int    `json:"count"`
	Offset int    `json:"offset"`
	Copied bool   `json:"copied,omitempty"`
	Data   string `json:"data"`
}

type skippedView struct {
	Tag    uint32 `json:"tag"`
	Name   string `json:"name,omitempty"`
	Class  string `json:"class"`
	Offset int    `json:"offset"`
	Length uint32 `json:"length"`
}

type messageView struct {
	ID      string        `json:"id"`
	Name    string        `json:"name"`
	Fields  []paramView   `json:"fields"`
	Absent  []string      `json:"absent,omitempty"`
	Skipped []skippedView `json:"skipped,omitempty"`
}

func newMessageView(ps *wmi.ParamSet, ts *wmi.TagSpace) messageView {
	mv := messageView{
		ID:   hexID(ps.ID),
		Name: ps.Schema.Name,
	}

	_ = ps.Each(func(p wmi.Param) error {
		mv.Fields = append(mv.Fields, paramView{
			Name:   p.Field.Name,
			Count:  p.Count,
			Offset: p.Offset,
			Copied: p.OwnsCopy,
			Data:   hex.EncodeToString(p.Data),
		})
		return nil
	})

	for _, fd := range ps.Schema.Fields[ps.Present():] {
		mv.Absent = append(mv.Absent, fd.Name)
	}

	for _, s := range ps.Skipped() {
		sv := skippedView{
			Tag:    uint32(s.Tag),
			Class:  s.Class.String(),
			Offset: s.Offset,
			Length: s.Length,
		}
		if s.Known {
			sv.Name = ts.Name(s.Tag)
		}
		mv.Skipped = append(mv.Skipped, sv)
	}

	return mv
}

// parseValues turns a map of field names to hex strings into Values.
// Array counts are derived from the schema's element sizes.
func parseValues(ms *wmi.MessageSchema, hexVals map[string]string) (wmi.Values, error) {
	names := make([]string, 0, len(hexVals))
	for name := range hexVals {
		names = append(names, name)
	}
	sort.Strings(names)

	vals := make(wmi.Values, len(hexVals))
	for _, name := range names {
		b, err := hex.DecodeString(stripHex(hexVals[name]))
		if err != nil {
			return nil, errors.Wrapf(err, "field %q isn't valid hex", name)
		}

		fd, ok := ms.Field(name)
		if !ok {
			// let the encoder report it
			vals[name] = wmi.Bytes(b)
			continue
		}

		switch k := fd.Kind; k.Shape() {
		case wmi.ShapeFixedStruct:
			vals[name] = wmi.Struct(b)
		case wmi.ShapeVarByteArray:
			vals[name] = wmi.Bytes(b)
		case wmi.ShapeVarStructArray:
			if len(b)%int(k.ElemSize()) != 0 {
				return nil, errors.Errorf("field %q: %d bytes isn't a multiple of its %d byte records",
					name, len(b), k.ElemSize())
			}
			vals[name] = wmi.Records(b, len(b)/int(k.ElemSize()))
		case wmi.ShapeFixedCountArray:
			vals[name] = wmi.Records(b, int(k.Count()))
		}
	}
	return vals, nil
}

func hexID(id wmi.MessageID) string {
	return fmt.Sprintf("%#x", uint32(id))
}
