//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"bytes"
	"encoding/binary"
	"github.com/pkg/errors"
	"math/rand"
	"testing"
	"testing/quick"
)

// boundaries returns the offsets at which each TLV in b starts, plus len(b).
func boundaries(t testing.TB, b []byte) []int {
	t.Helper()
	var offs []int
	if err := Walk(b, binary.LittleEndian, func(w WireTLV) error {
		offs = append(offs, w.Offset)
		return nil
	}); err != nil {
		t.Fatalf("%+v", err)
	}
	return append(offs, len(b))
}

// swapTLVs returns a copy of b with the TLVs starting at offsets a and c swapped;
// c must be the TLV right after a.
func swapTLVs(b []byte, a, c, end int) []byte {
	out := make([]byte, 0, len(b))
	out = append(out, b[:a]...)
	out = append(out, b[c:end]...)
	out = append(out, b[a:c]...)
	return append(out, b[end:]...)
}

func TestDefault_roundTrip(t *testing.T) {
	reg := Default()
	enc := NewEncoder(reg, WithMaxMessageSize(0))
	dec := NewDecoder(reg)
	rng := rand.New(rand.NewSource(1))

	err := reg.Each(func(ms *MessageSchema) error {
		for n := ms.MandatoryFields(); n <= len(ms.Fields); n++ {
			vals := randomValues(rng, ms, n)
			b, err := enc.Encode(ms.ID, vals)
			if err != nil {
				t.Errorf("%v with %d fields: %+v", ms.ID, n, err)
				continue
			}

			ps, err := dec.Decode(ms.ID, b)
			if err != nil {
				t.Errorf("%v with %d fields: %+v", ms.ID, n, err)
				continue
			}
			checkParamSet(t, ps, vals)

			// re-encoding the decoded values reproduces the message
			again, err := enc.Encode(ms.ID, ps.Values())
			if err != nil {
				t.Errorf("%v: %+v", ms.ID, err)
			} else if !bytes.Equal(b, again) {
				t.Errorf("%v: re-encoded message differs", ms.ID)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}
}

func TestDefault_truncation(t *testing.T) {
	reg := Default()
	enc := NewEncoder(reg, WithMaxMessageSize(0))
	dec := NewDecoder(reg)
	rng := rand.New(rand.NewSource(2))

	err := reg.Each(func(ms *MessageSchema) error {
		vals := randomValues(rng, ms, len(ms.Fields))
		b, err := enc.Encode(ms.ID, vals)
		if err != nil {
			return err
		}

		// cutting at a boundary leaves a shorter, valid message
		// as long as the mandatory fields remain
		valid := map[int]bool{}
		for i, off := range boundaries(t, b) {
			if i >= ms.MandatoryFields() {
				valid[off] = true
			}
		}

		for n := 0; n < len(b); n++ {
			_, err := dec.Decode(ms.ID, b[:n])
			switch {
			case valid[n]:
				if err != nil {
					t.Errorf("%v cut at %d: %+v", ms.ID, n, err)
				}
			case n == 0:
				if !errors.Is(err, ErrMissingMandatoryField) {
					t.Errorf("%v cut at %d: expected ErrMissingMandatoryField, got %+v", ms.ID, n, err)
				}
			case errors.Is(err, ErrTruncatedHeader), errors.Is(err, ErrTruncatedPayload):
			case errors.Is(err, ErrMissingMandatoryField):
				// at a boundary inside the mandatory prefix
			default:
				t.Errorf("%v cut at %d: expected a truncation error, got %+v", ms.ID, n, err)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}
}

func TestDefault_forwardCompatAndOrder(t *testing.T) {
	reg := Default()
	enc := NewEncoder(reg, WithMaxMessageSize(0))
	dec := NewDecoder(reg)
	rng := rand.New(rand.NewSource(3))

	const futureTag = Tag(0xfff00)

	err := reg.Each(func(ms *MessageSchema) error {
		vals := randomValues(rng, ms, len(ms.Fields))
		b, err := enc.Encode(ms.ID, vals)
		if err != nil {
			return err
		}

		extra := make([]byte, rng.Intn(64))
		rng.Read(extra)
		newer := AppendTLV(append([]byte(nil), b...), binary.LittleEndian, futureTag, extra)

		ps, err := dec.Decode(ms.ID, newer)
		if err != nil {
			t.Errorf("%v with a trailing unknown TLV: %+v", ms.ID, err)
		} else {
			checkParamSet(t, ps, vals)
			if sk := ps.Skipped(); len(sk) != 1 || sk[0].Tag != futureTag || sk[0].Known {
				t.Errorf("%v: unexpected skipped list %+v", ms.ID, sk)
			}
		}

		offs := boundaries(t, b)
		for i := 0; i+2 < len(offs); i++ {
			swapped := swapTLVs(b, offs[i], offs[i+1], offs[i+2])
			if _, err := dec.Decode(ms.ID, swapped); !errors.Is(err, ErrOutOfOrderField) {
				t.Errorf("%v with fields %d and %d swapped: expected ErrOutOfOrderField, got %+v",
					ms.ID, i, i+1, err)
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}
}

func TestCodec_quick(t *testing.T) {
	reg := newTestRegistry(t)
	enc := NewEncoder(reg)
	dec := NewDecoder(reg)

	roundTrip := func(fixed [12]byte, words []uint32, pairs [12]byte, trailer [2]byte, n uint8) bool {
		wb := make([]byte, 4*len(words))
		for i, w := range words {
			binary.LittleEndian.PutUint32(wb[4*i:], w)
		}

		all := []struct {
			name string
			v    Value
		}{
			{"fixed", Struct(fixed[:])},
			{"words", Records(wb, len(words))},
			{"pairs", Array(pairs[:6], pairs[6:])},
			{"trailer", Struct(trailer[:])},
		}

		vals := Values{}
		for _, f := range all[:1+int(n)%len(all)] {
			vals[f.name] = f.v
		}

		b, err := enc.Encode(testMsgS3, vals)
		if err != nil {
			return errors.Is(err, ErrMessageTooLarge)
		}

		ps, err := dec.Decode(testMsgS3, b)
		if err != nil {
			t.Logf("%+v", err)
			return false
		}
		defer ps.Release()

		if ps.Present() != len(vals) {
			return false
		}
		for name, v := range vals {
			p, err := ps.Param(name)
			if err != nil || !bytes.Equal(p.Data, v.Data) || p.Count != v.Count {
				return false
			}
		}
		return true
	}

	if err := quick.Check(roundTrip, nil); err != nil {
		t.Error(err)
	}
}

func BenchmarkDecoder_default(b *testing.B) {
	reg := Default()
	enc := NewEncoder(reg)
	dec := NewDecoder(reg)

	ms, err := reg.Lookup(CmdStartScan)
	if err != nil {
		b.Fatal(err)
	}
	msg, err := enc.Encode(CmdStartScan, randomValues(rand.New(rand.NewSource(4)), ms, len(ms.Fields)))
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		ps, err := dec.Decode(CmdStartScan, msg)
		if err != nil {
			b.Fatal(err)
		}
		ps.Release()
	}
}
