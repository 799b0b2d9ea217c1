//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"encoding/binary"
	"github.com/pkg/errors"
	"math"
)

// DefaultMaxMessageSize is the transport's largest message
// unless an Encoder is told otherwise.
const DefaultMaxMessageSize = 2048

// maxWireLen bounds a message when no useful maximum is configured.
const maxWireLen = math.MaxInt32

// Encoder turns field values into the wire form of a message.
//
// An Encoder holds no per-call state,
// so it's safe for concurrent use once its Registry is frozen.
type Encoder struct {
	reg    *Registry
	order  binary.ByteOrder
	maxLen int
}

// CodecOpt modifies an Encoder or Decoder during construction.
type CodecOpt interface {
	encOpt(*Encoder)
	decOpt(*Decoder)
}

type codecOpt struct {
	enc func(*Encoder)
	dec func(*Decoder)
}

func (o codecOpt) encOpt(e *Encoder) {
	if o.enc != nil {
		o.enc(e)
	}
}

func (o codecOpt) decOpt(d *Decoder) {
	if o.dec != nil {
		o.dec(d)
	}
}

// WithByteOrder sets the byte order of TLV headers.
// Payloads are never converted.
// Both sides of a transport must agree; the default is little endian.
func WithByteOrder(order binary.ByteOrder) CodecOpt {
	return codecOpt{
		enc: func(e *Encoder) { e.order = order },
		dec: func(d *Decoder) { d.order = order },
	}
}

// WithMaxMessageSize sets the largest message, headers included,
// the transport will carry. Decoders ignore it.
func WithMaxMessageSize(n int) CodecOpt {
	return codecOpt{
		enc: func(e *Encoder) { e.maxLen = n },
	}
}

// NewEncoder returns an Encoder for messages in the registry.
func NewEncoder(reg *Registry, opts ...CodecOpt) *Encoder {
	e := &Encoder{
		reg:    reg,
		order:  binary.LittleEndian,
		maxLen: DefaultMaxMessageSize,
	}

	for _, opt := range opts {
		opt.encOpt(e)
	}

	if e.maxLen <= 0 || uint64(e.maxLen) > math.MaxUint32 {
		e.maxLen = maxWireLen
	}
	return e
}

// MaxMessageSize returns the largest message this Encoder will produce.
func (e *Encoder) MaxMessageSize() int {
	return e.maxLen
}

// Encode returns the wire form of a message.
func (e *Encoder) Encode(id MessageID, vals Values) ([]byte, error) {
	return e.EncodeTo(nil, id, vals)
}

// EncodeTo appends the wire form of a message to dst and returns the extended buffer.
//
// Fields are written in schema order.
// Trailing fields may be left out of vals to speak an older protocol revision,
// but supplying a field after an omitted one fails with ErrFieldGap.
// Every value is validated and the total size checked against the maximum
// before anything is appended, so on error dst is returned unchanged.
func (e *Encoder) EncodeTo(dst []byte, id MessageID, vals Values) ([]byte, error) {
	ms, err := e.reg.Lookup(id)
	if err != nil {
		return dst, err
	}

	plan, total, err := e.plan(ms, vals)
	if err != nil {
		return dst, err
	}

	out := dst
	if cap(out)-len(out) < total {
		out = make([]byte, len(dst), len(dst)+total)
		copy(out, dst)
	}

	for i, v := range plan {
		out = appendTLV(out, e.order, ms.Fields[i].Tag, v.Data)
	}

	return out, nil
}

// Size returns the encoded length of a message without encoding it.
func (e *Encoder) Size(id MessageID, vals Values) (int, error) {
	ms, err := e.reg.Lookup(id)
	if err != nil {
		return 0, err
	}

	_, total, err := e.plan(ms, vals)
	return total, err
}

// plan validates the values against the schema.
// It returns the values to emit, in order, and the total encoded size.
func (e *Encoder) plan(ms *MessageSchema, vals Values) ([]Value, int, error) {
	for name := range vals {
		if ms.FieldIndex(name) < 0 {
			return nil, 0, encodeErr(ms.ID, nil, ErrUnknownField, "%q", name)
		}
	}

	plan := make([]Value, 0, len(ms.Fields))
	total := 0
	for i := range ms.Fields {
		fd := &ms.Fields[i]
		v, ok := vals[fd.Name]
		if !ok {
			break
		}

		if err := checkValue(ms.ID, fd, v); err != nil {
			return nil, 0, err
		}

		next, ok := growTotal(total, len(v.Data), e.maxLen)
		if !ok {
			return nil, 0, encodeErr(ms.ID, fd, ErrMessageTooLarge,
				"%d byte payload after %d bytes exceeds the maximum of %d",
				len(v.Data), total, e.maxLen)
		}
		total = next

		plan = append(plan, v)
	}

	if len(plan) < len(vals) {
		missing := ms.Fields[len(plan)].Name
		for _, fd := range ms.Fields[len(plan):] {
			if _, ok := vals[fd.Name]; ok {
				return nil, 0, encodeErr(ms.ID, &fd, ErrFieldGap,
					"%q was omitted", missing)
			}
		}
	}

	if len(plan) < ms.MandatoryFields() {
		return nil, 0, encodeErr(ms.ID, &ms.Fields[len(plan)], ErrMissingMandatoryField, "")
	}

	return plan, total, nil
}

// growTotal adds a TLV with an n byte payload to a message of total bytes.
// It returns false if the result would exceed limit.
// The sum is done in 64 bits, as n may be near MaxInt on 32-bit targets.
func growTotal(total, n, limit int) (int, bool) {
	sz := uint64(total) + tagHeaderSz + uint64(n)
	if sz > uint64(limit) {
		return total, false
	}
	return int(sz), true
}

// checkValue validates a single value against its descriptor.
func checkValue(id MessageID, fd *FieldDescriptor, v Value) error {
	k := fd.Kind
	n := uint64(len(v.Data))
	if n > math.MaxUint32 {
		return encodeErr(id, fd, ErrMessageTooLarge, "%d byte payload", n)
	}

	switch k.Shape() {
	case ShapeFixedStruct:
		if n != k.FixedLen() {
			return encodeErr(id, fd, ErrSizeMismatch,
				"got %d bytes, want %d", n, k.FixedLen())
		}

	case ShapeVarByteArray:

	case ShapeVarStructArray:
		if v.Count < 0 || uint64(v.Count)*uint64(k.ElemSize()) != n {
			return encodeErr(id, fd, ErrSizeMismatch,
				"%d elements of %d bytes don't fill %d bytes", v.Count, k.ElemSize(), n)
		}

	case ShapeFixedCountArray:
		if v.Count != int(k.Count()) {
			return encodeErr(id, fd, ErrArityMismatch,
				"got %d elements, want %d", v.Count, k.Count())
		}
		if n != k.FixedLen() {
			return encodeErr(id, fd, ErrSizeMismatch,
				"got %d bytes, want %d", n, k.FixedLen())
		}

	default:
		return encodeErr(id, fd, errors.New("invalid field kind"), "")
	}

	return nil
}
