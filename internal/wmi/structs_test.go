//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"encoding"
	"encoding/binary"
	"github.com/pkg/errors"
	"net"
	"testing"
)

type binaryStruct interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// Each typed block must be exactly as large as the schema field it fills.
func TestStructs_matchSchemas(t *testing.T) {
	reg := Default()

	tests := []struct {
		id    MessageID
		field string
		v     binaryStruct
	}{
		{EvtReady, "fixed_param", &ReadyEvent{}},
		{EvtServiceReady, "fixed_param", &ServiceReadyEvent{}},
		{CmdVdevCreate, "fixed_param", &VdevCreateCmd{}},
		{CmdVdevStartRequest, "fixed_param", &VdevStartRequestCmd{}},
		{CmdVdevStartRequest, "channel", &Channel{}},
		{CmdVdevRestartRequest, "fixed_param", &VdevStartRequestCmd{}},
		{EvtVdevStartResp, "fixed_param", &VdevStartResponseEvent{}},
		{CmdVdevSetParam, "fixed_param", &SetParamCmd{}},
		{CmdPdevSetParam, "fixed_param", &SetParamCmd{}},
		{CmdVdevUp, "fixed_param", &VdevUpCmd{}},
		{CmdPeerCreate, "fixed_param", &PeerCreateCmd{}},
		{CmdPeerDelete, "fixed_param", &PeerDeleteCmd{}},
		{CmdPeerSetParam, "fixed_param", &PeerSetParamCmd{}},
		{CmdStopScan, "fixed_param", &StopScanCmd{}},
		{EvtMgmtRx, "fixed_param", &MgmtRxHeader{}},
		{CmdPdevSetChannel, "channel", &Channel{}},
	}

	for _, tt := range tests {
		ms, err := reg.Lookup(tt.id)
		if err != nil {
			t.Fatalf("%+v", err)
		}

		fd, ok := ms.Field(tt.field)
		if !ok {
			t.Fatalf("%v has no field %q", tt.id, tt.field)
		}

		if sz := binary.Size(tt.v); uint64(sz) != fd.Kind.FixedLen() {
			t.Errorf("%v.%s: %T is %d bytes, but the schema says %d",
				tt.id, tt.field, tt.v, sz, fd.Kind.FixedLen())
		}
	}
}

func TestStructs_vdevCreate(t *testing.T) {
	hw, _ := net.ParseMAC("02:00:00:0a:0b:0c")
	addr, err := NewMacAddr(hw)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	cmd := VdevCreateCmd{
		VdevID:           1,
		VdevType:         2,
		VdevSubtype:      0,
		MacAddr:          addr,
		NumCfgTxRxStream: 1,
		PdevID:           0,
		VdevStatsID:      7,
	}

	fixed, err := Marshal(&cmd)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	checkBytesEq(t, []byte{
		0x01, 0x00, 0x00, 0x00, // vdev ID
		0x02, 0x00, 0x00, 0x00, // type
		0x00, 0x00, 0x00, 0x00, // subtype
		0x02, 0x00, 0x00, 0x0a, 0x0b, 0x0c, 0x00, 0x00, // MAC and padding
		0x01, 0x00, 0x00, 0x00, // streams
		0x00, 0x00, 0x00, 0x00, // pdev ID
		0x07, 0x00, 0x00, 0x00, // stats ID
	}, fixed.Data)

	streams := make([]byte, 12)
	binary.LittleEndian.PutUint32(streams[0:], 1) // 2.4 GHz
	binary.LittleEndian.PutUint32(streams[4:], 2) // tx
	binary.LittleEndian.PutUint32(streams[8:], 2) // rx

	b, err := NewEncoder(Default()).Encode(CmdVdevCreate, Values{
		"fixed_param":  fixed,
		"txrx_streams": Array(streams),
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	var got VdevCreateCmd
	ps, err := NewDecoder(Default()).DecodeInto(CmdVdevCreate, b, &got)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if got != cmd {
		t.Errorf("mismatch: %+v != %+v", got, cmd)
	}
	if got.MacAddr.String() != "02:00:00:0a:0b:0c" {
		t.Errorf("unexpected MAC %v", got.MacAddr)
	}

	elem, err := ps.Elem("txrx_streams", 0)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	checkBytesEq(t, streams, elem)
}

func TestStructs_startRequest(t *testing.T) {
	ssid, err := NewSsid("intel-guest")
	if err != nil {
		t.Fatalf("%+v", err)
	}

	req := VdevStartRequestCmd{VdevID: 3, BeaconInterval: 100, DTIMPeriod: 1, SSID: ssid}
	ch := Channel{MHz: 5180, BandCenterFreq1: 5210}

	fixed, err := Marshal(&req)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	chv, err := Marshal(&ch)
	if err != nil {
		t.Fatalf("%+v", err)
	}

	b, err := NewEncoder(Default()).Encode(CmdVdevStartRequest, Values{
		"fixed_param": fixed,
		"channel":     chv,
	})
	if err != nil {
		t.Fatalf("%+v", err)
	}

	var gotReq VdevStartRequestCmd
	ps, err := NewDecoder(Default()).DecodeInto(CmdVdevStartRequest, b, &gotReq)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if gotReq != req || gotReq.SSID.String() != "intel-guest" {
		t.Errorf("mismatch: %+v != %+v", gotReq, req)
	}

	var gotCh Channel
	if err := ps.Unmarshal("channel", &gotCh); err != nil {
		t.Fatalf("%+v", err)
	}
	if gotCh != ch {
		t.Errorf("mismatch: %+v != %+v", gotCh, ch)
	}

	if ps.Has("noa_descriptors") {
		t.Error("noa_descriptors should be absent")
	}
	if err := ps.Unmarshal("noa_descriptors", &gotCh); !errors.Is(err, ErrFieldAbsent) {
		t.Errorf("expected ErrFieldAbsent, got %+v", err)
	}

	// the channel is mandatory
	_, err = NewEncoder(Default()).Encode(CmdVdevStartRequest, Values{"fixed_param": fixed})
	if !errors.Is(err, ErrMissingMandatoryField) {
		t.Errorf("expected ErrMissingMandatoryField, got %+v", err)
	}
}

func TestStructs_errors(t *testing.T) {
	var c Channel
	if err := c.UnmarshalBinary(make([]byte, 23)); !errors.Is(err, ErrSizeMismatch) {
		t.Errorf("expected ErrSizeMismatch, got %+v", err)
	}

	if _, err := NewMacAddr(net.HardwareAddr{1, 2, 3}); err == nil {
		t.Error("expected an error for a short MAC")
	}

	if _, err := NewSsid("this network name is far too long to fit"); err == nil {
		t.Error("expected an error for a long SSID")
	}
}
