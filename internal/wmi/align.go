//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"fmt"
	"github.com/pkg/errors"
	"unsafe"
)

// AlignPolicy controls whether a Decoder copies payloads
// that aren't naturally aligned within the receive buffer.
//
// TLVs are packed on the wire with no padding,
// so a payload can start at any offset.
// Callers that reinterpret payload memory as structures
// need it aligned on strict-alignment architectures.
type AlignPolicy uint8

const (
	// AlignAuto copies misaligned payloads only when the
	// target architecture can't tolerate unaligned reads.
	AlignAuto AlignPolicy = iota
	// AlignAlways copies every misaligned payload.
	AlignAlways
	// AlignNever always returns views into the receive buffer.
	AlignNever
)

func (p AlignPolicy) String() string {
	switch p {
	case AlignAuto:
		return "auto"
	case AlignAlways:
		return "always"
	case AlignNever:
		return "never"
	}
	return fmt.Sprintf("AlignPolicy(%d)", uint8(p))
}

// ParseAlignPolicy converts the names returned by String back to an AlignPolicy.
func ParseAlignPolicy(s string) (AlignPolicy, error) {
	switch s {
	case "auto", "":
		return AlignAuto, nil
	case "always":
		return AlignAlways, nil
	case "never":
		return AlignNever, nil
	}
	return AlignAuto, errors.Errorf("unknown alignment policy %q", s)
}

// UnalignedOK reports whether this architecture tolerates unaligned loads.
func UnalignedOK() bool {
	return unalignedOK
}

// needsCopy returns true if the policy requires p to be copied
// to satisfy the given alignment.
func (p AlignPolicy) needsCopy(b []byte, align int) bool {
	switch p {
	case AlignNever:
		return false
	case AlignAuto:
		if unalignedOK {
			return false
		}
	}
	return isMisaligned(b, align)
}

// isMisaligned returns true if b's first byte isn't a multiple of align.
func isMisaligned(b []byte, align int) bool {
	if align <= 1 || len(b) == 0 {
		return false
	}
	return uintptr(unsafe.Pointer(&b[0]))%uintptr(align) != 0
}

// alignedCopy copies b into new memory aligned to 8 bytes,
// which satisfies every alignment a field can ask for.
func alignedCopy(b []byte) []byte {
	if len(b) == 0 {
		return []byte{}
	}
	words := make([]uint64, (len(b)+7)/8)
	c := unsafe.Slice((*byte)(unsafe.Pointer(&words[0])), len(b))
	copy(c, b)
	return c
}
