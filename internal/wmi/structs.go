//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"bytes"
	"encoding/binary"
	"github.com/pkg/errors"
	"net"
)

// Typed fixed parameter blocks for the most used messages.
//
// The codec never converts payloads, so these use the firmware's byte order,
// which is little endian, and carry no implicit padding:
// every field is a 32-bit word or built from them.

// MacAddr is the firmware's 8 byte MAC address record:
// the 6 address bytes in order, followed by 2 bytes of padding.
type MacAddr [8]byte

// NewMacAddr returns the MacAddr of a 6 byte hardware address.
func NewMacAddr(hw net.HardwareAddr) (MacAddr, error) {
	var m MacAddr
	if len(hw) != 6 {
		return m, errors.Errorf("MAC address must be 6 bytes, not %d", len(hw))
	}
	copy(m[:6], hw)
	return m, nil
}

// HardwareAddr returns the address without its padding.
func (m MacAddr) HardwareAddr() net.HardwareAddr {
	hw := make(net.HardwareAddr, 6)
	copy(hw, m[:6])
	return hw
}

func (m MacAddr) String() string {
	return m.HardwareAddr().String()
}

// Ssid is a length-prefixed SSID.
type Ssid struct {
	Len  uint32
	SSID [32]byte
}

// NewSsid returns the Ssid record for a network name of at most 32 bytes.
func NewSsid(name string) (Ssid, error) {
	var s Ssid
	if len(name) > len(s.SSID) {
		return s, errors.Errorf("SSID %q is longer than %d bytes", name, len(s.SSID))
	}
	s.Len = uint32(len(name))
	copy(s.SSID[:], name)
	return s, nil
}

func (s Ssid) String() string {
	n := s.Len
	if n > uint32(len(s.SSID)) {
		n = uint32(len(s.SSID))
	}
	return string(s.SSID[:n])
}

// Channel describes an operating channel.
type Channel struct {
	MHz             uint32
	BandCenterFreq1 uint32
	BandCenterFreq2 uint32
	Info            uint32 // phy mode and flags
	RegInfo1        uint32 // min/max power and regulatory class
	RegInfo2        uint32 // antenna max and max tx power
}

// ReadyEvent is the fixed parameter block of EvtReady.
type ReadyEvent struct {
	FWVersion       uint32
	ABIVersion      uint32
	MacAddr         MacAddr
	Status          uint32
	NumDSCPTable    uint32
	NumExtraMacAddr uint32
	NumTotalPeers   uint32
	NumExtraPeers   uint32
}

// ServiceReadyEvent is the fixed parameter block of EvtServiceReady.
type ServiceReadyEvent struct {
	FWBuildVersion      uint32
	FWABIVersion        uint32
	PhyCapability       uint32
	MaxFragEntry        uint32
	NumRFChains         uint32
	HTCapInfo           uint32
	VHTCapInfo          uint32
	VHTSuppMCS          uint32
	HWMinTxPower        uint32
	HWMaxTxPower        uint32
	SysCapInfo          uint32
	MinPktSizeEnable    uint32
	MaxBcnIESize        uint32
	NumMemReqs          uint32
	MaxNumScanChannels  uint32
	HWBoardID           uint32
	HWBoardInfo         [5]uint32
	MaxSupportedMACs    uint32
	FWSubFeatCaps       uint32
	NumDBSHWModes       uint32
	TxRxChainMask       uint32
	DefaultDBSHWModeIdx uint32
	NumMSDUDesc         uint32
}

// VdevCreateCmd is the fixed parameter block of CmdVdevCreate.
type VdevCreateCmd struct {
	VdevID           uint32
	VdevType         uint32
	VdevSubtype      uint32
	MacAddr          MacAddr
	NumCfgTxRxStream uint32
	PdevID           uint32
	VdevStatsID      uint32
}

// VdevStartRequestCmd is the fixed parameter block of
// CmdVdevStartRequest and CmdVdevRestartRequest.
type VdevStartRequestCmd struct {
	VdevID             uint32
	RequestorID        uint32
	BeaconInterval     uint32
	DTIMPeriod         uint32
	Flags              uint32
	SSID               Ssid
	BcnTxRate          uint32
	BcnTxPower         uint32
	NumNoADescriptors  uint32
	DisableHWAck       uint32
	PreferredTxStreams uint32
	PreferredRxStreams uint32
}

// VdevStartResponseEvent is the fixed parameter block of EvtVdevStartResp.
type VdevStartResponseEvent struct {
	VdevID        uint32
	RequestorID   uint32
	RespType      uint32
	Status        uint32
	ChainMask     uint32
	SMPSMode      uint32
	MacID         uint32
	CfgdTxStreams uint32
	CfgdRxStreams uint32
}

// SetParamCmd is the fixed parameter block of CmdVdevSetParam and CmdPdevSetParam.
// ID is the vdev or pdev the parameter applies to.
type SetParamCmd struct {
	ID    uint32
	Param uint32
	Value uint32
}

// VdevUpCmd is the fixed parameter block of CmdVdevUp.
type VdevUpCmd struct {
	VdevID  uint32
	AssocID uint32
	BSSID   MacAddr
}

// PeerCreateCmd is the fixed parameter block of CmdPeerCreate.
type PeerCreateCmd struct {
	VdevID   uint32
	PeerAddr MacAddr
	PeerType uint32
}

// PeerDeleteCmd is the fixed parameter block of CmdPeerDelete.
type PeerDeleteCmd struct {
	VdevID   uint32
	PeerAddr MacAddr
}

// PeerSetParamCmd is the fixed parameter block of CmdPeerSetParam.
type PeerSetParamCmd struct {
	VdevID   uint32
	PeerAddr MacAddr
	Param    uint32
	Value    uint32
}

// StopScanCmd is the fixed parameter block of CmdStopScan.
type StopScanCmd struct {
	Requestor uint32
	ScanID    uint32
	ReqType   uint32
	VdevID    uint32
	PdevID    uint32
}

// MgmtRxHeader is the fixed parameter block of EvtMgmtRx.
// The frame itself follows in the "bufp" field.
type MgmtRxHeader struct {
	Channel  uint32
	SNR      uint32
	Rate     uint32
	PhyMode  uint32
	BufLen   uint32
	Status   uint32
	Flags    uint32
	RSSI     int32
	TSFDelta uint32
	PdevID   uint32
}

func marshalLE(v interface{}) ([]byte, error) {
	buf := bytes.Buffer{}
	buf.Grow(binary.Size(v))
	if err := binary.Write(&buf, binary.LittleEndian, v); err != nil {
		return nil, errors.Wrapf(err, "failed to marshal %T", v)
	}
	return buf.Bytes(), nil
}

func unmarshalLE(data []byte, v interface{}) error {
	if sz := binary.Size(v); sz != len(data) {
		return errors.Wrapf(ErrSizeMismatch, "%T needs %d bytes, but got %d", v, sz, len(data))
	}
	return errors.Wrapf(binary.Read(bytes.NewReader(data), binary.LittleEndian, v),
		"failed to unmarshal %T", v)
}

func (c *Channel) MarshalBinary() ([]byte, error)                { return marshalLE(c) }
func (c *Channel) UnmarshalBinary(data []byte) error             { return unmarshalLE(data, c) }
func (r *ReadyEvent) MarshalBinary() ([]byte, error)             { return marshalLE(r) }
func (r *ReadyEvent) UnmarshalBinary(data []byte) error          { return unmarshalLE(data, r) }
func (s *ServiceReadyEvent) MarshalBinary() ([]byte, error)      { return marshalLE(s) }
func (s *ServiceReadyEvent) UnmarshalBinary(data []byte) error   { return unmarshalLE(data, s) }
func (c *VdevCreateCmd) MarshalBinary() ([]byte, error)          { return marshalLE(c) }
func (c *VdevCreateCmd) UnmarshalBinary(data []byte) error       { return unmarshalLE(data, c) }
func (c *VdevStartRequestCmd) MarshalBinary() ([]byte, error)    { return marshalLE(c) }
func (c *VdevStartRequestCmd) UnmarshalBinary(data []byte) error { return unmarshalLE(data, c) }
func (e *VdevStartResponseEvent) MarshalBinary() ([]byte, error) { return marshalLE(e) }
func (e *VdevStartResponseEvent) UnmarshalBinary(data []byte) error {
	return unmarshalLE(data, e)
}
func (c *SetParamCmd) MarshalBinary() ([]byte, error)        { return marshalLE(c) }
func (c *SetParamCmd) UnmarshalBinary(data []byte) error     { return unmarshalLE(data, c) }
func (c *VdevUpCmd) MarshalBinary() ([]byte, error)          { return marshalLE(c) }
func (c *VdevUpCmd) UnmarshalBinary(data []byte) error       { return unmarshalLE(data, c) }
func (c *PeerCreateCmd) MarshalBinary() ([]byte, error)      { return marshalLE(c) }
func (c *PeerCreateCmd) UnmarshalBinary(data []byte) error   { return unmarshalLE(data, c) }
func (c *PeerDeleteCmd) MarshalBinary() ([]byte, error)      { return marshalLE(c) }
func (c *PeerDeleteCmd) UnmarshalBinary(data []byte) error   { return unmarshalLE(data, c) }
func (c *PeerSetParamCmd) MarshalBinary() ([]byte, error)    { return marshalLE(c) }
func (c *PeerSetParamCmd) UnmarshalBinary(data []byte) error { return unmarshalLE(data, c) }
func (c *StopScanCmd) MarshalBinary() ([]byte, error)        { return marshalLE(c) }
func (c *StopScanCmd) UnmarshalBinary(data []byte) error     { return unmarshalLE(data, c) }
func (h *MgmtRxHeader) MarshalBinary() ([]byte, error)       { return marshalLE(h) }
func (h *MgmtRxHeader) UnmarshalBinary(data []byte) error    { return unmarshalLE(data, h) }
