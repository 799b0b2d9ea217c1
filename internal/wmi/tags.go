//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"fmt"
	"github.com/pkg/errors"
	"sort"
	"sync"
)

// Tag identifies a field's semantic role on the wire.
//
// The tag space is flat and append-only:
// values are assigned once and never renumbered or reused for a different shape,
// which is what lets an older decoder skip fields it doesn't know.
// It's partitioned into three ranges:
//
//	0-15:     reserved (0 is never valid on the wire)
//	16-511:   variable or fixed-count arrays
//	512-:     fixed-size structures
type Tag uint32

// TagClass is the sub-range a Tag belongs to.
type TagClass uint8

const (
	TagReserved TagClass = iota
	TagArray
	TagStructure

	TagInvalid       = Tag(0)
	TagLastReserved  = Tag(15)
	TagFirstArray    = Tag(16)
	TagLastArray     = Tag(511)
	TagFirstStruct   = Tag(512)
	tagHeaderSz      = 8 // 4 byte tag, 4 byte length
	defaultTagSpaceN = 512
)

func (tc TagClass) String() string {
	switch tc {
	case TagReserved:
		return "reserved"
	case TagArray:
		return "array"
	case TagStructure:
		return "structure"
	}
	return fmt.Sprintf("TagClass(%d)", uint8(tc))
}

// rangeClass returns the class implied by a tag's value.
func (t Tag) rangeClass() TagClass {
	switch {
	case t <= TagLastReserved:
		return TagReserved
	case t <= TagLastArray:
		return TagArray
	default:
		return TagStructure
	}
}

// TagSpace records the tags known to one protocol revision.
//
// Register every tag before calling Freeze;
// after that, the TagSpace is read-only and safe for concurrent use.
type TagSpace struct {
	mu     sync.RWMutex
	names  map[Tag]string
	frozen bool
}

// NewTagSpace returns an empty, unfrozen TagSpace.
func NewTagSpace() *TagSpace {
	return &TagSpace{names: make(map[Tag]string, defaultTagSpaceN)}
}

// Register adds a tag to the space.
// Reserved tags can't be registered, and registering a value twice under
// a different name fails; registering the same name again is a no-op.
func (ts *TagSpace) Register(t Tag, name string) error {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	if ts.frozen {
		return errors.Wrapf(ErrRegistryFrozen, "can't register tag %d (%s)", uint32(t), name)
	}

	if t.rangeClass() == TagReserved {
		return errors.Errorf("tag %d (%s) is in the reserved range", uint32(t), name)
	}

	if prev, ok := ts.names[t]; ok {
		if prev == name {
			return nil
		}
		return errors.Errorf("tag %d already registered as %q; can't reuse it for %q",
			uint32(t), prev, name)
	}

	ts.names[t] = name
	return nil
}

// Freeze makes the TagSpace read-only.
func (ts *TagSpace) Freeze() {
	ts.mu.Lock()
	ts.frozen = true
	ts.mu.Unlock()
}

func (ts *TagSpace) lookup(t Tag) (string, bool) {
	if ts == nil {
		return "", false
	}
	ts.mu.RLock()
	name, ok := ts.names[t]
	ts.mu.RUnlock()
	return name, ok
}

// Classify returns the class of a tag.
//
// Reserved tags always classify as TagReserved.
// Other tags must have been registered; if not, this returns ErrUnknownTag,
// which for a decoder simply means the sender is newer than this code.
func (ts *TagSpace) Classify(t Tag) (TagClass, error) {
	c := t.rangeClass()
	if c == TagReserved {
		return c, nil
	}

	if _, ok := ts.lookup(t); !ok {
		return c, errors.Wrapf(ErrUnknownTag, "tag %d", uint32(t))
	}
	return c, nil
}

// Known returns true if the tag is registered.
func (ts *TagSpace) Known(t Tag) bool {
	_, ok := ts.lookup(t)
	return ok
}

// Name returns the registered name of the tag,
// or a numeric description if it isn't known.
func (ts *TagSpace) Name(t Tag) string {
	if name, ok := ts.lookup(t); ok {
		return name
	}
	return fmt.Sprintf("Tag(%d)", uint32(t))
}

// Len returns the number of registered tags.
func (ts *TagSpace) Len() int {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	return len(ts.names)
}

// Tags returns the registered tags in ascending order.
func (ts *TagSpace) Tags() []Tag {
	ts.mu.RLock()
	tags := make([]Tag, 0, len(ts.names))
	for t := range ts.names {
		tags = append(tags, t)
	}
	ts.mu.RUnlock()

	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}

var (
	builtinTags     *TagSpace
	builtinTagsOnce sync.Once
)

// Tags returns the frozen TagSpace holding every builtin tag.
func Tags() *TagSpace {
	builtinTagsOnce.Do(func() {
		ts := NewTagSpace()
		for t, name := range tagNames {
			if err := ts.Register(t, name); err != nil {
				panic(err)
			}
		}
		ts.Freeze()
		builtinTags = ts
	})
	return builtinTags
}
