//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"encoding/binary"
	"github.com/pkg/errors"
	"math"
	"testing"
	"unsafe"
)

// scenarioS is S with fixed = 1..8 and var = 9, 10, 11.
var scenarioS = []byte{
	0x64, 0x00, 0x00, 0x00, // tag 100
	0x08, 0x00, 0x00, 0x00, // length 8
	0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08,

	0xc8, 0x00, 0x00, 0x00, // tag 200
	0x03, 0x00, 0x00, 0x00, // length 3
	0x09, 0x0a, 0x0b,
}

func scenarioSValues() Values {
	return Values{
		"fixed": Struct([]byte{1, 2, 3, 4, 5, 6, 7, 8}),
		"var":   Bytes([]byte{9, 10, 11}),
	}
}

func TestEncoder_scenario(t *testing.T) {
	reg := newTestRegistry(t)
	enc := NewEncoder(reg)

	b, err := enc.Encode(testMsgS, scenarioSValues())
	if err != nil {
		t.Fatalf("%+v", err)
	}
	checkBytesEq(t, scenarioS, b)

	sz, err := enc.Size(testMsgS, scenarioSValues())
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if sz != len(scenarioS) {
		t.Errorf("expected size %d, got %d", len(scenarioS), sz)
	}
}

func TestEncoder_deterministic(t *testing.T) {
	reg := newTestRegistry(t)
	enc := NewEncoder(reg)

	first, err := enc.Encode(testMsgS, scenarioSValues())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	for i := 0; i < 10; i++ {
		b, err := enc.Encode(testMsgS, scenarioSValues())
		if err != nil {
			t.Fatalf("%+v", err)
		}
		checkBytesEq(t, first, b)
	}
}

func TestEncoder_encodeTo(t *testing.T) {
	reg := newTestRegistry(t)
	enc := NewEncoder(reg)

	prefix := []byte{0xaa, 0xbb}
	b, err := enc.EncodeTo(prefix, testMsgS, scenarioSValues())
	if err != nil {
		t.Fatalf("%+v", err)
	}
	checkBytesEq(t, append([]byte{0xaa, 0xbb}, scenarioS...), b)

	// on error, dst comes back untouched
	dst := make([]byte, 2, 64)
	out, err := enc.EncodeTo(dst, testMsgS, Values{"fixed": Struct([]byte{1})})
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %+v", err)
	}
	if len(out) != 2 {
		t.Errorf("expected dst to be unchanged, but its length is %d", len(out))
	}
}

func TestDecoder_scenario(t *testing.T) {
	reg := newTestRegistry(t)
	dec := NewDecoder(reg)

	ps, err := dec.Decode(testMsgS, scenarioS)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	checkBytesEq(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, ps.Fixed())

	n, err := ps.Count("var")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if n != 3 {
		t.Errorf("expected 3 elements, got %d", n)
	}

	p, err := ps.Param("var")
	if err != nil {
		t.Fatalf("%+v", err)
	}
	checkBytesEq(t, []byte{9, 10, 11}, p.Data)

	if p.Offset != 24 {
		t.Errorf("expected payload offset 24, got %d", p.Offset)
	}

	e, err := ps.Elem("var", 2)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	checkBytesEq(t, []byte{11}, e)

	if _, err := ps.Elem("var", 3); !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("expected ErrIndexOutOfRange, got %+v", err)
	}

	if len(ps.Skipped()) != 0 {
		t.Errorf("expected nothing skipped, got %+v", ps.Skipped())
	}
}

func TestDecoder_scenarioTruncated(t *testing.T) {
	reg := newTestRegistry(t)
	dec := NewDecoder(reg)

	tests := []struct {
		name   string
		length int
		err    error
		offset int
	}{
		{"into var header", 20, ErrTruncatedHeader, 16},
		{"into var payload", 25, ErrTruncatedPayload, 16},
		{"one byte short", 26, ErrTruncatedPayload, 16},
		{"into fixed header", 5, ErrTruncatedHeader, 0},
		{"into fixed payload", 12, ErrTruncatedPayload, 0},
		{"empty", 0, ErrMissingMandatoryField, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := dec.Decode(testMsgS, scenarioS[:tt.length])
			if ps != nil {
				t.Errorf("expected no partial result, got %+v", ps)
			}
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %+v", tt.err, err)
			}
			if !IsDecodeError(err) {
				t.Errorf("expected a decode error, got %+v", err)
			}

			var ce *CodecError
			if !errors.As(err, &ce) {
				t.Fatalf("expected a *CodecError, got %T", err)
			}
			if ce.Offset != tt.offset {
				t.Errorf("expected offset %d, got %d", tt.offset, ce.Offset)
			}
		})
	}
}

// Every truncation fails unless it falls exactly on a TLV boundary after
// the mandatory fields, where the result is a valid message from an older sender.
func TestDecoder_truncationEveryOffset(t *testing.T) {
	reg := newTestRegistry(t)
	dec := NewDecoder(reg)

	for n := 0; n < len(scenarioS); n++ {
		ps, err := dec.Decode(testMsgS, scenarioS[:n])
		switch n {
		case 0:
			if !errors.Is(err, ErrMissingMandatoryField) {
				t.Errorf("%d: expected ErrMissingMandatoryField, got %+v", n, err)
			}
		case 16:
			if err != nil {
				t.Errorf("%d: %+v", n, err)
			} else if ps.Has("var") {
				t.Errorf("%d: var should be absent", n)
			}
		default:
			if !errors.Is(err, ErrTruncatedHeader) && !errors.Is(err, ErrTruncatedPayload) {
				t.Errorf("%d: expected a truncation error, got %+v", n, err)
			}
		}
	}
}

func TestCodec_optionalOmission(t *testing.T) {
	reg := newTestRegistry(t)
	enc := NewEncoder(reg)
	dec := NewDecoder(reg)

	b, err := enc.Encode(testMsgS2, Values{"fixed": Struct([]byte{0xde, 0xad, 0xbe, 0xef})})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	checkBytesEq(t, []byte{
		0x01, 0x00, 0x00, 0x00, // tag 1
		0x04, 0x00, 0x00, 0x00, // length 4
		0xde, 0xad, 0xbe, 0xef,
	}, b)

	ps, err := dec.Decode(testMsgS2, b)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if !ps.Has("fixed") {
		t.Error("fixed should be present")
	}
	if ps.Has("records") {
		t.Error("records should be absent")
	}

	p, err := ps.Param("records")
	if !errors.Is(err, ErrFieldAbsent) {
		t.Errorf("expected ErrFieldAbsent, got %+v", err)
	}
	if p.Present || p.Field == nil || p.Field.Name != "records" {
		t.Errorf("expected an absent records Param, got %+v", p)
	}

	if _, err := ps.Param("no_such_field"); !errors.Is(err, ErrNoSuchField) {
		t.Errorf("expected ErrNoSuchField, got %+v", err)
	}

	if _, err := ps.Count("records"); !errors.Is(err, ErrFieldAbsent) {
		t.Errorf("expected ErrFieldAbsent, got %+v", err)
	}
}

func TestCodec_presentButEmpty(t *testing.T) {
	reg := newTestRegistry(t)
	enc := NewEncoder(reg)
	dec := NewDecoder(reg)

	b, err := enc.Encode(testMsgS2, Values{
		"fixed":   Struct([]byte{1, 2, 3, 4}),
		"records": Records(nil, 0),
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if len(b) != 20 {
		t.Fatalf("expected 20 bytes, got %d", len(b))
	}

	ps, err := dec.Decode(testMsgS2, b)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if !ps.Has("records") {
		t.Error("an empty array is still present")
	}
	if n, err := ps.Count("records"); err != nil || n != 0 {
		t.Errorf("expected 0 records, got %d (%v)", n, err)
	}
}

func TestDecoder_forwardCompatible(t *testing.T) {
	reg := newTestRegistry(t)
	dec := NewDecoder(reg)

	newer := append([]byte(nil), scenarioS...)
	newer = AppendTLV(newer, binary.LittleEndian, 9999, []byte{1, 2, 3, 4, 5})

	ps, err := dec.Decode(testMsgS, newer)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	checkBytesEq(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, ps.Fixed())
	if !ps.Has("var") {
		t.Error("var should be present")
	}

	sk := ps.Skipped()
	if len(sk) != 1 {
		t.Fatalf("expected 1 skipped TLV, got %+v", sk)
	}
	if sk[0].Tag != 9999 || sk[0].Length != 5 || sk[0].Offset != len(scenarioS) {
		t.Errorf("unexpected skipped TLV: %+v", sk[0])
	}
	if sk[0].Known || sk[0].Class != TagStructure {
		t.Errorf("expected an unknown structure tag, got %+v", sk[0])
	}
}

func TestDecoder_skipsNonSchemaTags(t *testing.T) {
	reg := newTestRegistry(t)
	dec := NewDecoder(reg)

	var b []byte
	b = AppendTLV(b, binary.LittleEndian, 100, []byte{1, 2, 3, 4, 5, 6, 7, 8})
	b = AppendTLV(b, binary.LittleEndian, TagChanList, []byte{0x6c, 0x09, 0, 0})
	b = AppendTLV(b, binary.LittleEndian, 200, []byte{9})

	ps, err := dec.Decode(testMsgS, b)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if !ps.Has("var") {
		t.Error("var should be present")
	}

	sk := ps.Skipped()
	if len(sk) != 1 || sk[0].Tag != TagChanList || !sk[0].Known || sk[0].Class != TagArray {
		t.Errorf("expected the known array tag to be skipped, got %+v", sk)
	}
}

func TestDecoder_violations(t *testing.T) {
	reg := newTestRegistry(t)
	dec := NewDecoder(reg)
	le := binary.LittleEndian

	fixedS3 := make([]byte, 12)
	pairs := make([]byte, 12)
	words := []byte{1, 0, 0, 0, 2, 0, 0, 0}

	tests := []struct {
		name string
		id   MessageID
		buf  []byte
		err  error
	}{
		{
			name: "swapped",
			id:   testMsgS,
			buf: AppendTLV(AppendTLV(nil, le, 200, []byte{9, 10, 11}),
				le, 100, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
			err: ErrOutOfOrderField,
		},
		{
			name: "swapped adjacent arrays",
			id:   testMsgS3,
			buf: AppendTLV(AppendTLV(AppendTLV(nil, le, 600, fixedS3),
				le, 21, pairs), le, 20, words),
			err: ErrOutOfOrderField,
		},
		{
			name: "repeated",
			id:   testMsgS,
			buf: AppendTLV(AppendTLV(nil, le, 100, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
				le, 100, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
			err: ErrOutOfOrderField,
		},
		{
			name: "interior field missing",
			id:   testMsgS3,
			buf: AppendTLV(AppendTLV(nil, le, 600, fixedS3),
				le, 21, pairs),
			err: ErrOutOfOrderField,
		},
		{
			name: "short fixed",
			id:   testMsgS,
			buf:  AppendTLV(nil, le, 100, []byte{1, 2, 3, 4, 5, 6, 7}),
			err:  ErrInvalidLength,
		},
		{
			name: "partial record",
			id:   testMsgS2,
			buf: AppendTLV(AppendTLV(nil, le, 1, []byte{1, 2, 3, 4}),
				le, 2, []byte{1, 2, 3, 4, 5, 6}),
			err: ErrInvalidLength,
		},
		{
			name: "wrong fixed array length",
			id:   testMsgS3,
			buf: AppendTLV(AppendTLV(AppendTLV(nil, le, 600, fixedS3),
				le, 20, words), le, 21, pairs[:6]),
			err: ErrInvalidLength,
		},
		{
			name: "only unknown tags",
			id:   testMsgS,
			buf:  AppendTLV(nil, le, 9999, []byte{1}),
			err:  ErrMissingMandatoryField,
		},
		{
			name: "tag zero",
			id:   testMsgS,
			buf:  AppendTLV(append([]byte(nil), scenarioS...), le, TagInvalid, []byte{1}),
			err:  ErrReservedTag,
		},
		{
			name: "reserved tag before the fixed block",
			id:   testMsgS3,
			buf:  AppendTLV(AppendTLV(nil, le, 7, nil), le, 600, fixedS3),
			err:  ErrReservedTag,
		},
		{
			name: "huge length",
			id:   testMsgS,
			buf:  []byte{0x64, 0, 0, 0, 0xff, 0xff, 0xff, 0xff, 1, 2, 3},
			err:  ErrTruncatedPayload,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ps, err := dec.Decode(tt.id, tt.buf)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %+v", tt.err, err)
			}
			if ps != nil {
				t.Errorf("expected no partial result, got %+v", ps)
			}
			if !IsDecodeError(err) || IsEncodeError(err) {
				t.Errorf("expected only a decode error, got %+v", err)
			}
		})
	}
}

func TestEncoder_errors(t *testing.T) {
	reg := newTestRegistry(t)
	enc := NewEncoder(reg)

	fixedS3 := Struct(make([]byte, 12))
	tests := []struct {
		name string
		id   MessageID
		vals Values
		err  error
	}{
		{
			name: "fixed size",
			id:   testMsgS,
			vals: Values{"fixed": Struct([]byte{1, 2, 3})},
			err:  ErrSizeMismatch,
		},
		{
			name: "records don't fill the buffer",
			id:   testMsgS2,
			vals: Values{"fixed": Struct(make([]byte, 4)), "records": Records(make([]byte, 8), 3)},
			err:  ErrSizeMismatch,
		},
		{
			name: "arity",
			id:   testMsgS3,
			vals: Values{
				"fixed": fixedS3,
				"words": Records(nil, 0),
				"pairs": Array(make([]byte, 6), make([]byte, 6), make([]byte, 6)),
			},
			err: ErrArityMismatch,
		},
		{
			name: "fixed array element size",
			id:   testMsgS3,
			vals: Values{
				"fixed": fixedS3,
				"words": Records(nil, 0),
				"pairs": Array(make([]byte, 4), make([]byte, 4)),
			},
			err: ErrSizeMismatch,
		},
		{
			name: "gap",
			id:   testMsgS3,
			vals: Values{"fixed": fixedS3, "pairs": Array(make([]byte, 6), make([]byte, 6))},
			err:  ErrFieldGap,
		},
		{
			name: "unknown field",
			id:   testMsgS,
			vals: Values{"fixed": Struct(make([]byte, 8)), "bogus": Bytes(nil)},
			err:  ErrUnknownField,
		},
		{
			name: "nothing",
			id:   testMsgS,
			vals: Values{},
			err:  ErrMissingMandatoryField,
		},
		{
			name: "unknown message",
			id:   MessageID(0xdead),
			vals: Values{},
			err:  ErrUnknownMessageID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b, err := enc.Encode(tt.id, tt.vals)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %+v", tt.err, err)
			}
			if b != nil {
				t.Errorf("expected no output, got %# 02x", b)
			}

			if tt.err == ErrUnknownMessageID {
				if !IsSchemaError(err) || IsEncodeError(err) {
					t.Errorf("expected only a schema error, got %+v", err)
				}
			} else if !IsEncodeError(err) || IsDecodeError(err) {
				t.Errorf("expected only an encode error, got %+v", err)
			}
		})
	}
}

func TestEncoder_maxMessageSize(t *testing.T) {
	reg := newTestRegistry(t)

	enc := NewEncoder(reg, WithMaxMessageSize(len(scenarioS)-1))
	if _, err := enc.Encode(testMsgS, scenarioSValues()); !errors.Is(err, ErrMessageTooLarge) {
		t.Fatalf("expected ErrMessageTooLarge, got %+v", err)
	} else if !IsEncodeError(err) {
		t.Errorf("expected an encode error, got %+v", err)
	}

	enc = NewEncoder(reg, WithMaxMessageSize(len(scenarioS)))
	if _, err := enc.Encode(testMsgS, scenarioSValues()); err != nil {
		t.Fatalf("%+v", err)
	}

	enc = NewEncoder(reg, WithMaxMessageSize(0))
	if enc.MaxMessageSize() != maxWireLen {
		t.Errorf("expected no practical limit, got %d", enc.MaxMessageSize())
	}

	if NewEncoder(reg).MaxMessageSize() != DefaultMaxMessageSize {
		t.Errorf("expected default max size %d", DefaultMaxMessageSize)
	}
}

func TestEncoder_sizeOverflow(t *testing.T) {
	tests := []struct {
		total, n, limit int
		want            int
		ok              bool
	}{
		{0, 8, 16, 16, true},
		{0, 9, 16, 0, false},
		{16, 3, 27, 27, true},
		{math.MaxInt32 - 8, 0, math.MaxInt32, math.MaxInt32, true},
		{16, math.MaxInt32 - 4, math.MaxInt32, 16, false},
		{math.MaxInt32 - 16, math.MaxInt32, math.MaxInt32, math.MaxInt32 - 16, false},
	}

	for _, tt := range tests {
		got, ok := growTotal(tt.total, tt.n, tt.limit)
		if ok != tt.ok || got != tt.want {
			t.Errorf("growTotal(%d, %d, %d): expected %d, %t; got %d, %t",
				tt.total, tt.n, tt.limit, tt.want, tt.ok, got, ok)
		}
	}
}

func TestDecoder_decodeIntoSizeMismatch(t *testing.T) {
	dec := NewDecoder(newTestRegistry(t))

	// S's fixed block is 8 bytes, far too small for a Channel
	var ch Channel
	ps, err := dec.DecodeInto(testMsgS, scenarioS, &ch)
	if !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("expected ErrSizeMismatch, got %+v", err)
	}
	if ps != nil {
		t.Errorf("expected no result, got %+v", ps)
	}
	if !IsDecodeError(err) || IsEncodeError(err) {
		t.Errorf("expected only a decode error, got %+v", err)
	}

	var ce *CodecError
	if !errors.As(err, &ce) || ce.Field != "fixed" || ce.Offset != tagHeaderSz {
		t.Errorf("unexpected error context %+v", ce)
	}

	ps, err = dec.Decode(testMsgS, scenarioS)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	err = ps.Unmarshal("var", &ch)
	if !errors.Is(err, ErrSizeMismatch) || !IsDecodeError(err) || IsEncodeError(err) {
		t.Errorf("expected a decode size mismatch, got %+v", err)
	}
}

func TestCodec_byteOrder(t *testing.T) {
	reg := newTestRegistry(t)
	enc := NewEncoder(reg, WithByteOrder(binary.BigEndian))
	dec := NewDecoder(reg, WithByteOrder(binary.BigEndian))

	b, err := enc.Encode(testMsgS, scenarioSValues())
	if err != nil {
		t.Fatalf("%+v", err)
	}

	checkBytesEq(t, []byte{
		0x00, 0x00, 0x00, 0x64,
		0x00, 0x00, 0x00, 0x08,
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07, 0x08, // payloads aren't converted
		0x00, 0x00, 0x00, 0xc8,
		0x00, 0x00, 0x00, 0x03,
		0x09, 0x0a, 0x0b,
	}, b)

	ps, err := dec.Decode(testMsgS, b)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	checkBytesEq(t, []byte{9, 10, 11}, ps.Values()["var"].Data)
}

func TestDecoder_alignment(t *testing.T) {
	reg := newTestRegistry(t)

	// shift the message by one byte so the fixed payload is misaligned
	backing := make([]byte, len(scenarioS)+1)
	buf := backing[1:]
	copy(buf, scenarioS)

	tests := []struct {
		policy AlignPolicy
		copied bool
	}{
		{AlignAlways, true},
		{AlignNever, false},
		{AlignAuto, !UnalignedOK()},
	}

	for _, tt := range tests {
		t.Run(tt.policy.String(), func(t *testing.T) {
			dec := NewDecoder(reg, WithAlignment(tt.policy))
			ps, err := dec.Decode(testMsgS, buf)
			if err != nil {
				t.Fatalf("%+v", err)
			}

			fixed, err := ps.Param("fixed")
			if err != nil {
				t.Fatalf("%+v", err)
			}

			if fixed.OwnsCopy != tt.copied {
				t.Errorf("expected OwnsCopy == %v", tt.copied)
			}
			checkBytesEq(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, fixed.Data)

			aliased := &fixed.Data[0] == &buf[8]
			if aliased == tt.copied {
				t.Errorf("expected the payload to alias the buffer: %v", !tt.copied)
			}
			if tt.copied && uintptr(unsafe.Pointer(&fixed.Data[0]))%uintptr(fixed.Field.Align) != 0 {
				t.Error("copied payload is still misaligned")
			}

			// byte arrays never need alignment
			v, err := ps.Param("var")
			if err != nil {
				t.Fatalf("%+v", err)
			}
			if v.OwnsCopy {
				t.Error("byte array shouldn't be copied")
			}
		})
	}
}

func TestParamSet_release(t *testing.T) {
	reg := newTestRegistry(t)
	dec := NewDecoder(reg)

	ps, err := dec.Decode(testMsgS, scenarioS)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	ps.Release()
	if ps.Has("fixed") || ps.Fixed() != nil || ps.Present() != 0 {
		t.Errorf("expected nothing after release, got %+v", ps)
	}
	if _, err := ps.Param("fixed"); !errors.Is(err, ErrFieldAbsent) {
		t.Errorf("expected ErrFieldAbsent, got %+v", err)
	}
}

func TestDecoder_unknownMessage(t *testing.T) {
	dec := NewDecoder(newTestRegistry(t))
	_, err := dec.Decode(CmdVdevCreate, scenarioS)
	if !errors.Is(err, ErrUnknownMessageID) {
		t.Fatalf("expected ErrUnknownMessageID, got %+v", err)
	}
	if !IsSchemaError(err) || IsDecodeError(err) {
		t.Errorf("expected only a schema error, got %+v", err)
	}
}

func BenchmarkEncoder_scenario(b *testing.B) {
	reg := newTestRegistry(b)
	enc := NewEncoder(reg)
	vals := scenarioSValues()
	buf := make([]byte, 0, 64)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := enc.EncodeTo(buf[:0], testMsgS, vals); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecoder_scenario(b *testing.B) {
	reg := newTestRegistry(b)
	dec := NewDecoder(reg)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ps, err := dec.Decode(testMsgS, scenarioS)
		if err != nil {
			b.Fatal(err)
		}
		ps.Release()
	}
}
