//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"encoding/binary"
	"github.com/pkg/errors"
	"testing"
)

func TestWalk(t *testing.T) {
	var seen []WireTLV
	err := Walk(scenarioS, binary.LittleEndian, func(w WireTLV) error {
		seen = append(seen, w)
		return nil
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if len(seen) != 2 {
		t.Fatalf("expected 2 TLVs, got %d", len(seen))
	}
	if seen[0].Tag != 100 || seen[0].Length != 8 || seen[0].Offset != 0 {
		t.Errorf("unexpected first TLV %v", seen[0])
	}
	if seen[1].Tag != 200 || seen[1].Length != 3 || seen[1].Offset != 16 {
		t.Errorf("unexpected second TLV %v", seen[1])
	}
	checkBytesEq(t, []byte{9, 10, 11}, seen[1].Payload)

	// payloads can't be extended into the next TLV
	if cap(seen[0].Payload) != 8 {
		t.Errorf("expected payload capacity 8, got %d", cap(seen[0].Payload))
	}
}

func TestWalk_errors(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Walk(scenarioS, binary.LittleEndian, func(w WireTLV) error {
		n++
		return stop
	})
	if err != stop || n != 1 {
		t.Errorf("expected the callback's error after 1 TLV, got %v after %d", err, n)
	}

	err = Walk(scenarioS[:3], binary.LittleEndian, func(WireTLV) error { return nil })
	if !errors.Is(err, ErrTruncatedHeader) {
		t.Errorf("expected ErrTruncatedHeader, got %+v", err)
	}

	err = Walk(scenarioS[:10], binary.LittleEndian, func(WireTLV) error { return nil })
	if !errors.Is(err, ErrTruncatedPayload) {
		t.Errorf("expected ErrTruncatedPayload, got %+v", err)
	}
}

func TestAppendTLV(t *testing.T) {
	b := AppendTLV(nil, binary.LittleEndian, TagFirstStruct, []byte{0xff})
	checkBytesEq(t, []byte{
		0x00, 0x02, 0x00, 0x00, // tag 512
		0x01, 0x00, 0x00, 0x00, // length 1
		0xff,
	}, b)

	b = AppendTLV(nil, binary.BigEndian, TagFirstStruct, nil)
	checkBytesEq(t, []byte{
		0x00, 0x00, 0x02, 0x00,
		0x00, 0x00, 0x00, 0x00,
	}, b)
}
