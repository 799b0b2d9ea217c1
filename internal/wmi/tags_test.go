//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"github.com/pkg/errors"
	"testing"
)

func TestTagSpace_classify(t *testing.T) {
	ts := NewTagSpace()
	for _, tc := range []struct {
		tag  Tag
		name string
	}{
		{16, "first_array"},
		{511, "last_array"},
		{512, "first_struct"},
		{70000, "far_struct"},
	} {
		if err := ts.Register(tc.tag, tc.name); err != nil {
			t.Fatalf("%+v", err)
		}
	}
	ts.Freeze()

	tests := []struct {
		tag   Tag
		class TagClass
		err   error
	}{
		{0, TagReserved, nil},
		{15, TagReserved, nil},
		{16, TagArray, nil},
		{511, TagArray, nil},
		{512, TagStructure, nil},
		{70000, TagStructure, nil},
		{17, TagArray, ErrUnknownTag},
		{513, TagStructure, ErrUnknownTag},
	}

	for _, tt := range tests {
		c, err := ts.Classify(tt.tag)
		if c != tt.class {
			t.Errorf("tag %d: expected %v, got %v", tt.tag, tt.class, c)
		}
		if tt.err == nil && err != nil {
			t.Errorf("tag %d: %+v", tt.tag, err)
		} else if tt.err != nil && !errors.Is(err, tt.err) {
			t.Errorf("tag %d: expected %v, got %+v", tt.tag, tt.err, err)
		}
	}

	if ts.Name(512) != "first_struct" || ts.Name(513) != "Tag(513)" {
		t.Errorf("unexpected names %q, %q", ts.Name(512), ts.Name(513))
	}
	if ts.Len() != 4 {
		t.Errorf("expected 4 tags, got %d", ts.Len())
	}
	if tags := ts.Tags(); len(tags) != 4 || tags[0] != 16 || tags[3] != 70000 {
		t.Errorf("unexpected tag list %v", tags)
	}
}

func TestTagSpace_register(t *testing.T) {
	ts := NewTagSpace()

	if err := ts.Register(7, "reserved"); err == nil {
		t.Error("expected an error registering a reserved tag")
	}

	if err := ts.Register(600, "a"); err != nil {
		t.Fatalf("%+v", err)
	}
	if err := ts.Register(600, "a"); err != nil {
		t.Errorf("registering the same name again should be allowed: %+v", err)
	}
	if err := ts.Register(600, "b"); err == nil {
		t.Error("expected an error reusing a tag for another name")
	}

	ts.Freeze()
	if err := ts.Register(601, "c"); !errors.Is(err, ErrRegistryFrozen) {
		t.Errorf("expected ErrRegistryFrozen, got %+v", err)
	}
}

func TestTags_builtin(t *testing.T) {
	ts := Tags()
	if ts != Tags() {
		t.Error("expected a single builtin tag space")
	}

	if ts.Len() != len(tagNames) {
		t.Errorf("expected %d tags, got %d", len(tagNames), ts.Len())
	}

	for _, tt := range []struct {
		tag   Tag
		class TagClass
		name  string
	}{
		{TagChanList, TagArray, "chan_list"},
		{TagChannel, TagStructure, "channel"},
		{TagVdevCreateCmd, TagStructure, "vdev_create_cmd_fixed_param"},
		{TagMgmtRxEvent, TagStructure, "mgmt_rx_event_fixed_param"},
	} {
		c, err := ts.Classify(tt.tag)
		if err != nil {
			t.Errorf("%s: %+v", tt.name, err)
		}
		if c != tt.class {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.class, c)
		}
		if ts.Name(tt.tag) != tt.name {
			t.Errorf("expected %q, got %q", tt.name, ts.Name(tt.tag))
		}
	}

	for _, tag := range ts.Tags() {
		if tag <= TagLastReserved {
			t.Errorf("builtin tag %d is reserved", tag)
		}
	}
}

func TestMessageID(t *testing.T) {
	if CmdVdevCreate.Direction() != DirCommand || CmdVdevCreate.Group() != GrpVdev {
		t.Errorf("unexpected layout of %v", CmdVdevCreate)
	}
	if CmdVdevCreate != GrpVdev.First() || CmdVdevCreate.Index() != 0 {
		t.Errorf("vdev_create should be the first vdev command")
	}
	if CmdVdevDelete.Index() != 1 {
		t.Errorf("expected index 1, got %d", CmdVdevDelete.Index())
	}

	if EvtVdevStartResp.Direction() != DirEvent || EvtVdevStartResp.Group() != GrpVdev {
		t.Errorf("unexpected layout of %v", EvtVdevStartResp)
	}
	if EvtVdevStartResp != GrpVdev.FirstEvent() {
		t.Errorf("vdev_start_resp should be the first vdev event")
	}

	if s := CmdVdevCreate.String(); s != "vdev_create" {
		t.Errorf("unexpected name %q", s)
	}
	if s := EvtEcho.String(); s != "echo_event" {
		t.Errorf("unexpected name %q", s)
	}

	unknown := GrpTwt.First() + 0x100
	if s := unknown.String(); s != "twt command#256 (0x23100)" {
		t.Errorf("unexpected name %q", s)
	}
}
