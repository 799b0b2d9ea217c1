//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/binary"
	"encoding/hex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.impcloud.net/RSP-Inventory-Suite/wmi-tlv-go/internal/wmi"
	"strings"
	"testing"
)

func TestStripHex(t *testing.T) {
	assert.Equal(t, "0102ff", stripHex(" 0x01 02:ff\n"))
	assert.Equal(t, "", stripHex(""))
}

func TestParseValues_roundTrip(t *testing.T) {
	ms, err := wmi.Default().LookupName("vdev_create")
	require.NoError(t, err)

	fixed := strings.Repeat("01", 32)
	streams := strings.Repeat("02", 24)
	vals, err := parseValues(ms, map[string]string{
		"fixed_param":  fixed,
		"txrx_streams": streams,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, vals["fixed_param"].Count)
	assert.Equal(t, 2, vals["txrx_streams"].Count)

	b, err := wmi.NewEncoder(wmi.Default()).Encode(ms.ID, vals)
	require.NoError(t, err)

	ps, err := wmi.NewDecoder(wmi.Default()).Decode(ms.ID, b)
	require.NoError(t, err)

	mv := newMessageView(ps, wmi.Tags())
	assert.Equal(t, "vdev_create", mv.Name)
	require.Len(t, mv.Fields, 2)
	assert.Equal(t, fixed, mv.Fields[0].Data)
	assert.Equal(t, 8, mv.Fields[0].Offset)
	assert.Equal(t, streams, mv.Fields[1].Data)
	assert.Equal(t, 2, mv.Fields[1].Count)
	assert.Empty(t, mv.Absent)
	assert.Empty(t, mv.Skipped)
}

func TestParseValues_errors(t *testing.T) {
	ms, err := wmi.Default().LookupName("vdev_create")
	require.NoError(t, err)

	_, err = parseValues(ms, map[string]string{"fixed_param": "zz"})
	assert.Error(t, err)

	_, err = parseValues(ms, map[string]string{"txrx_streams": "0102"})
	assert.Error(t, err, "2 bytes can't hold 12 byte records")

	// unknown names are left for the encoder to reject
	vals, err := parseValues(ms, map[string]string{"bogus": "00"})
	require.NoError(t, err)
	_, err = wmi.NewEncoder(wmi.Default()).Encode(ms.ID, vals)
	assert.Error(t, err)
}

func TestMessageView_absentAndSkipped(t *testing.T) {
	ms, err := wmi.Default().LookupName("vdev_create")
	require.NoError(t, err)

	b := wmi.AppendTLV(nil, binary.LittleEndian, wmi.TagVdevCreateCmd, make([]byte, 32))
	b = wmi.AppendTLV(b, binary.LittleEndian, wmi.TagChanList, []byte{1, 2})

	ps, err := wmi.NewDecoder(wmi.Default()).Decode(ms.ID, b)
	require.NoError(t, err)

	mv := newMessageView(ps, wmi.Tags())
	require.Len(t, mv.Fields, 1)
	assert.Equal(t, []string{"txrx_streams"}, mv.Absent)
	require.Len(t, mv.Skipped, 1)
	assert.Equal(t, "chan_list", mv.Skipped[0].Name)
	assert.Equal(t, uint32(2), mv.Skipped[0].Length)
	assert.Equal(t, hex.EncodeToString(make([]byte, 32)), mv.Fields[0].Data)
}

func TestSchemaView(t *testing.T) {
	ms, err := wmi.Default().LookupName("vdev_start_request")
	require.NoError(t, err)

	sv := newSchemaView(ms)
	assert.Equal(t, "vdev_start_request", sv.Name)
	require.True(t, len(sv.Fields) >= 2)
	assert.Equal(t, "FixedStruct", sv.Fields[0].Kind)
	assert.True(t, sv.Fields[0].Mandatory)
	assert.Equal(t, "channel", sv.Fields[1].Name)
	assert.Equal(t, uint32(24), sv.Fields[1].ElemSize)
	assert.True(t, sv.Fields[1].Mandatory)
}
