//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"encoding"
	"encoding/binary"
)

// Decoder reconstructs messages from their wire form.
//
// Like an Encoder, a Decoder holds no per-call state
// and is safe for concurrent use once its Registry is frozen.
type Decoder struct {
	reg   *Registry
	tags  *TagSpace
	order binary.ByteOrder
	align AlignPolicy
}

// WithAlignment sets the Decoder's payload realignment policy.
func WithAlignment(p AlignPolicy) CodecOpt {
	return codecOpt{
		dec: func(d *Decoder) { d.align = p },
	}
}

// WithTagSpace sets the TagSpace a Decoder uses
// to describe TLVs it skips.
func WithTagSpace(ts *TagSpace) CodecOpt {
	return codecOpt{
		dec: func(d *Decoder) { d.tags = ts },
	}
}

// NewDecoder returns a Decoder for messages in the registry.
// Unless configured otherwise, it uses the builtin TagSpace.
func NewDecoder(reg *Registry, opts ...CodecOpt) *Decoder {
	d := &Decoder{
		reg:   reg,
		order: binary.LittleEndian,
		align: AlignAuto,
	}

	for _, opt := range opts {
		opt.decOpt(d)
	}

	if d.tags == nil {
		d.tags = Tags()
	}
	return d
}

// Decode parses a received message.
//
// The buffer is walked TLV by TLV, matching each against the next field the
// schema expects. TLVs whose tags aren't part of the schema are skipped,
// as they come from a newer sender; they're listed in the result's Skipped.
// A schema tag arriving before its turn, or again after it was seen,
// fails with ErrOutOfOrderField. Trailing optional fields may be absent.
// A reserved tag the schema doesn't use is never valid and fails with ErrReservedTag.
//
// On success, the returned ParamSet borrows buf unless a payload had to be
// copied for alignment, so buf must not be modified or reused until the
// caller is done with the ParamSet. On error, nothing is returned:
// a malformed message is never partially trusted.
func (d *Decoder) Decode(id MessageID, buf []byte) (*ParamSet, error) {
	ms, err := d.reg.Lookup(id)
	if err != nil {
		return nil, err
	}

	ps := &ParamSet{
		ID:     id,
		Schema: ms,
		params: make([]Param, len(ms.Fields)),
	}

	next := 0 // index of the next expected field
	for off := 0; off < len(buf); {
		w, err := readTLV(buf, off, d.order)
		if err != nil {
			var fd *FieldDescriptor
			if next < len(ms.Fields) {
				fd = &ms.Fields[next]
			}
			return nil, decodeErr(id, fd, w.Tag, off, err,
				"%d bytes remain", len(buf)-off)
		}

		switch idx := ms.tagIndex(w.Tag); {
		case idx == next:
			fd := &ms.Fields[idx]
			n, ok := fd.Kind.elements(w.Length)
			if !ok {
				return nil, decodeErr(id, fd, w.Tag, off, ErrInvalidLength,
					"%d bytes for %v", w.Length, fd.Kind)
			}

			p := Param{
				Field:   fd,
				Data:    w.Payload,
				Count:   n,
				Offset:  off + tagHeaderSz,
				Present: true,
			}
			if d.align.needsCopy(w.Payload, fd.Align) {
				p.Data = alignedCopy(w.Payload)
				p.OwnsCopy = true
			}

			ps.params[idx] = p
			next++

		case idx >= 0 && idx < next:
			return nil, decodeErr(id, &ms.Fields[idx], w.Tag, off, ErrOutOfOrderField,
				"%q already seen", ms.Fields[idx].Name)

		case idx > next:
			return nil, decodeErr(id, &ms.Fields[idx], w.Tag, off, ErrOutOfOrderField,
				"expected %q first", ms.Fields[next].Name)

		case w.Tag.rangeClass() == TagReserved:
			return nil, decodeErr(id, nil, w.Tag, off, ErrReservedTag, "")

		default:
			class, err := d.tags.Classify(w.Tag)
			ps.skipped = append(ps.skipped, Skipped{
				Tag:    w.Tag,
				Class:  class,
				Known:  err == nil,
				Offset: off,
				Length: w.Length,
			})
		}

		off += w.size()
	}

	if next < ms.MandatoryFields() {
		return nil, decodeErr(id, &ms.Fields[next], 0, len(buf), ErrMissingMandatoryField, "")
	}

	return ps, nil
}

// DecodeInto decodes a message and unmarshals its fixed parameter block into v.
func (d *Decoder) DecodeInto(id MessageID, buf []byte, v encoding.BinaryUnmarshaler) (*ParamSet, error) {
	ps, err := d.Decode(id, buf)
	if err != nil {
		return nil, err
	}

	if err := v.UnmarshalBinary(ps.Fixed()); err != nil {
		return nil, decodeErr(id, ps.Schema.Fixed(), ps.Schema.Fixed().Tag, ps.params[0].Offset, err, "")
	}
	return ps, nil
}
