//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"encoding/binary"
	"fmt"
)

// WireTLV is a single Tag-Length-Value unit on the wire:
// a 4 byte tag, a 4 byte payload length, then length bytes of payload.
//
// Payload aliases the buffer the TLV was read from.
type WireTLV struct {
	Tag     Tag
	Length  uint32
	Payload []byte
	Offset  int // offset of the header within its buffer
}

func (w WireTLV) String() string {
	return fmt.Sprintf("{tag: %d, length: %d, offset: %d}", uint32(w.Tag), w.Length, w.Offset)
}

// size returns the number of bytes the TLV occupies, header included.
func (w WireTLV) size() int {
	return tagHeaderSz + int(w.Length)
}

// readTLV reads the TLV starting at buf[off:].
//
// If fewer than 8 bytes remain, it returns ErrTruncatedHeader;
// if the declared length runs past the end of buf, ErrTruncatedPayload.
// It never reads beyond len(buf).
func readTLV(buf []byte, off int, order binary.ByteOrder) (WireTLV, error) {
	rem := len(buf) - off
	if rem < tagHeaderSz {
		return WireTLV{Offset: off}, ErrTruncatedHeader
	}

	_ = buf[off+7] // bounds check hint: golang.org/issue/14808
	w := WireTLV{
		Tag:    Tag(order.Uint32(buf[off : off+4])),
		Length: order.Uint32(buf[off+4 : off+8]),
		Offset: off,
	}

	if uint64(w.Length) > uint64(rem-tagHeaderSz) {
		return w, ErrTruncatedPayload
	}

	start := off + tagHeaderSz
	end := start + int(w.Length)
	w.Payload = buf[start:end:end]
	return w, nil
}

// appendTLV appends a TLV header and payload to dst.
func appendTLV(dst []byte, order binary.ByteOrder, t Tag, payload []byte) []byte {
	var hdr [tagHeaderSz]byte
	order.PutUint32(hdr[0:4], uint32(t))
	order.PutUint32(hdr[4:8], uint32(len(payload)))
	dst = append(dst, hdr[:]...)
	return append(dst, payload...)
}

// AppendTLV appends a single TLV to dst.
// It's meant for tools and tests that need to build raw or malformed messages;
// use an Encoder to build messages from a schema.
func AppendTLV(dst []byte, order binary.ByteOrder, t Tag, payload []byte) []byte {
	return appendTLV(dst, order, t, payload)
}

// Walk calls f for each TLV in buf, in order, without consulting any schema.
// It stops at the first error, including a truncated header or payload.
func Walk(buf []byte, order binary.ByteOrder, f func(w WireTLV) error) error {
	for off := 0; off < len(buf); {
		w, err := readTLV(buf, off, order)
		if err != nil {
			return &CodecError{Op: "walk", Tag: w.Tag, Offset: off, Err: err}
		}

		if err := f(w); err != nil {
			return err
		}
		off += w.size()
	}
	return nil
}
