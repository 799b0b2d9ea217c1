//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"bytes"
	"math/rand"
	"testing"
)

// Message IDs used by test-only registries.
const (
	testMsgS  = MessageID(0x1001)
	testMsgS2 = MessageID(0x1002)
	testMsgS3 = MessageID(0x1003)
)

// newTestRegistry returns a frozen registry of small schemas:
//
//	S:  fixed(100, 8 bytes), bytes(200)
//	S2: fixed(1, 4 bytes), structs(2, 4 byte records)
//	S3: fixed(600, 12 bytes), words(20), fixed array(21, 2 x 6 bytes), fixed(601, 2 bytes)
func newTestRegistry(t testing.TB) *Registry {
	t.Helper()

	r := NewRegistry()
	schemas := []*SchemaBuilder{
		NewSchema(testMsgS, "s").
			Fixed(100, "fixed", 8).
			Bytes(200, "var"),
		NewSchema(testMsgS2, "s2").
			Fixed(1, "fixed", 4).
			Structs(2, "records", 4),
		NewSchema(testMsgS3, "s3").
			Fixed(600, "fixed", 12).
			Words(20, "words").
			FixedArray(21, "pairs", 6, 2).
			Fixed(601, "trailer", 2),
	}

	for _, b := range schemas {
		ms, err := b.Build()
		if err != nil {
			t.Fatalf("%+v", err)
		}
		if err := r.Register(ms.ID, ms); err != nil {
			t.Fatalf("%+v", err)
		}
	}

	r.Freeze()
	return r
}

func checkBytesEq(t testing.TB, want, got []byte) {
	t.Helper()
	if !bytes.Equal(want, got) {
		t.Errorf("\nwant %# 02x\n got %# 02x", want, got)
	}
}

// randomValues returns values for the first n fields of a schema.
func randomValues(rng *rand.Rand, ms *MessageSchema, n int) Values {
	vals := Values{}
	for i := 0; i < n && i < len(ms.Fields); i++ {
		fd := &ms.Fields[i]
		k := fd.Kind

		count := 1
		switch k.Shape() {
		case ShapeVarByteArray, ShapeVarStructArray:
			count = rng.Intn(5)
		case ShapeFixedCountArray:
			count = int(k.Count())
		}

		data := make([]byte, count*int(k.ElemSize()))
		rng.Read(data)
		vals[fd.Name] = Value{Data: data, Count: count}
	}
	return vals
}

// checkParamSet verifies the decoded fields match the values that were encoded.
func checkParamSet(t testing.TB, ps *ParamSet, vals Values) {
	t.Helper()

	if ps.Present() != len(vals) {
		t.Errorf("expected %d present fields, got %d", len(vals), ps.Present())
	}

	for name, v := range vals {
		p, err := ps.Param(name)
		if err != nil {
			t.Errorf("%s: %+v", name, err)
			continue
		}

		if p.Field.Kind.Shape() != ShapeVarByteArray && p.Count != v.Count {
			t.Errorf("%s: expected %d elements, got %d", name, v.Count, p.Count)
		}
		if !bytes.Equal(p.Data, v.Data) {
			t.Errorf("%s:\nwant %# 02x\n got %# 02x", name, v.Data, p.Data)
		}
	}
}
