//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

//go:build 386 || amd64 || amd64p32 || arm64 || ppc64 || ppc64le || s390x

package wmi

const unalignedOK = true
