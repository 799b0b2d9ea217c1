//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"fmt"
)

// MessageID identifies a command (host to firmware) or event (firmware to host).
//
// IDs are grouped by subsystem: the upper bits hold the group,
// the low 12 bits the index within it.
// Command groups start at GrpStart; events use the same group numbering,
// offset by evtBase, so the two never collide.
type MessageID uint32

// Group is a message subsystem.
type Group uint32

// Direction tells which side sends a message.
type Direction uint8

const (
	DirCommand Direction = iota + 1 // host to firmware
	DirEvent                        // firmware to host

	grpShift = 12
	idxMask  = 1<<grpShift - 1
	evtBase  = MessageID(0x1 << 20)
)

func (d Direction) String() string {
	switch d {
	case DirCommand:
		return "command"
	case DirEvent:
		return "event"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Subsystem groups.
const (
	GrpStart Group = iota + 0x3
	GrpScan
	GrpPdev
	GrpVdev
	GrpPeer
	GrpMgmt
	GrpBaNeg
	GrpStaPs
	GrpDfs
	GrpRoam
	GrpOffload
	GrpWow
	GrpRtt
	GrpSpectral
	GrpStats
	GrpArpNsOfl
	GrpNlo
	GrpGtkOfl
	GrpCsumOfl
	GrpChatter
	GrpTid
	GrpVdevSta
	GrpMisc
	GrpGpio
	GrpFwTest
	GrpTdls
	GrpResmgr
	GrpP2p
	GrpBcnFilter
	GrpExtscan
	GrpCoex
	GrpBpf
	GrpTwt
	GrpMotionDet
)

var groupNames = map[Group]string{
	GrpStart: "start", GrpScan: "scan", GrpPdev: "pdev", GrpVdev: "vdev",
	GrpPeer: "peer", GrpMgmt: "mgmt", GrpBaNeg: "ba_neg", GrpStaPs: "sta_ps",
	GrpDfs: "dfs", GrpRoam: "roam", GrpOffload: "offload", GrpWow: "wow",
	GrpRtt: "rtt", GrpSpectral: "spectral", GrpStats: "stats", GrpArpNsOfl: "arp_ns_ofl",
	GrpNlo: "nlo", GrpGtkOfl: "gtk_ofl", GrpCsumOfl: "csum_ofl", GrpChatter: "chatter",
	GrpTid: "tid", GrpVdevSta: "vdev_sta", GrpMisc: "misc", GrpGpio: "gpio",
	GrpFwTest: "fwtest", GrpTdls: "tdls", GrpResmgr: "resmgr", GrpP2p: "p2p",
	GrpBcnFilter: "bcn_filter", GrpExtscan: "extscan", GrpCoex: "coex", GrpBpf: "bpf",
	GrpTwt: "twt", GrpMotionDet: "motion_det",
}

func (g Group) String() string {
	if n, ok := groupNames[g]; ok {
		return n
	}
	return fmt.Sprintf("Group(%#x)", uint32(g))
}

// First returns the first command ID of the group.
func (g Group) First() MessageID {
	return MessageID(g) << grpShift
}

// FirstEvent returns the first event ID of the group.
func (g Group) FirstEvent() MessageID {
	return evtBase | MessageID(g)<<grpShift
}

// Direction returns whether the message is a command or an event.
func (id MessageID) Direction() Direction {
	if id&evtBase != 0 {
		return DirEvent
	}
	return DirCommand
}

// Group returns the subsystem group of the message.
func (id MessageID) Group() Group {
	return Group((id &^ evtBase) >> grpShift)
}

// Index returns the position of the message within its group.
func (id MessageID) Index() uint32 {
	return uint32(id & idxMask)
}

// String returns the name of a builtin message,
// or a description of the ID if it isn't known.
func (id MessageID) String() string {
	if n, ok := messageNames[id]; ok {
		return n
	}
	return fmt.Sprintf("%v %v#%d (%#x)", id.Group(), id.Direction(), id.Index(), uint32(id))
}
