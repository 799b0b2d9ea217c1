//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"github.com/pkg/errors"
	"sort"
	"sync"
	"sync/atomic"
)

// Registry maps message IDs to their schemas.
//
// Build it by registering every schema, then Freeze it.
// Once frozen, it's read-only and lookups take no locks,
// so a single Registry can be shared by any number of Encoders and Decoders.
type Registry struct {
	mu      sync.Mutex
	schemas map[MessageID]*MessageSchema
	names   map[string]MessageID
	frozen  uint32 // used atomically
}

// NewRegistry returns an empty, unfrozen Registry.
func NewRegistry() *Registry {
	return &Registry{
		schemas: make(map[MessageID]*MessageSchema),
		names:   make(map[string]MessageID),
	}
}

// Register adds the schema for a message ID.
//
// It returns an error wrapping ErrDuplicateRegistration if the ID is already known,
// ErrEmptySchema if the schema has no fields,
// or ErrFirstFieldNotFixed if the first field isn't a FixedStruct.
// The registry keeps its own copy of the schema.
func (r *Registry) Register(id MessageID, ms *MessageSchema) error {
	if ms == nil {
		return schemaErr(id, "", ErrEmptySchema, "nil schema")
	}

	cp := *ms
	cp.ID = id
	cp.Fields = append([]FieldDescriptor(nil), ms.Fields...)
	if err := cp.index(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isFrozen() {
		return schemaErr(id, "", ErrRegistryFrozen, "")
	}

	if prev, ok := r.schemas[id]; ok {
		return schemaErr(id, "", ErrDuplicateRegistration, "already registered as %q", prev.Name)
	}

	if cp.Name != "" {
		if other, ok := r.names[cp.Name]; ok {
			return schemaErr(id, "", ErrDuplicateRegistration,
				"name %q already used by %#x", cp.Name, uint32(other))
		}
		r.names[cp.Name] = id
	}

	r.schemas[id] = &cp
	return nil
}

// MustRegister is like Register, but panics on error.
func (r *Registry) MustRegister(schemas ...*MessageSchema) {
	for _, ms := range schemas {
		if err := r.Register(ms.ID, ms); err != nil {
			panic(err)
		}
	}
}

// Freeze makes the Registry read-only.
// It must happen before the Registry is shared across goroutines.
func (r *Registry) Freeze() {
	r.mu.Lock()
	atomic.StoreUint32(&r.frozen, 1)
	r.mu.Unlock()
}

func (r *Registry) isFrozen() bool {
	return atomic.LoadUint32(&r.frozen) == 1
}

// Frozen returns true if Freeze has been called.
func (r *Registry) Frozen() bool {
	return r.isFrozen()
}

// Lookup returns the schema for a message ID,
// or an error wrapping ErrUnknownMessageID.
//
// An unknown ID usually means host and firmware were built from different
// protocol revisions, so callers should report it rather than drop it quietly.
func (r *Registry) Lookup(id MessageID) (*MessageSchema, error) {
	var ms *MessageSchema
	var ok bool
	if r.isFrozen() {
		ms, ok = r.schemas[id]
	} else {
		r.mu.Lock()
		ms, ok = r.schemas[id]
		r.mu.Unlock()
	}

	if !ok {
		return nil, &CodecError{Op: "lookup", Message: id, Offset: -1, Err: ErrUnknownMessageID}
	}
	return ms, nil
}

// LookupName returns the schema registered under the given name.
func (r *Registry) LookupName(name string) (*MessageSchema, error) {
	if !r.isFrozen() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	id, ok := r.names[name]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownMessageID, "no message named %q", name)
	}
	return r.schemas[id], nil
}

// Len returns the number of registered schemas.
func (r *Registry) Len() int {
	if !r.isFrozen() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}
	return len(r.schemas)
}

// IDs returns the registered message IDs in ascending order.
func (r *Registry) IDs() []MessageID {
	if !r.isFrozen() {
		r.mu.Lock()
		defer r.mu.Unlock()
	}

	ids := make([]MessageID, 0, len(r.schemas))
	for id := range r.schemas {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Each calls f for every schema in ascending message ID order,
// stopping at the first error.
func (r *Registry) Each(f func(ms *MessageSchema) error) error {
	for _, id := range r.IDs() {
		ms, err := r.Lookup(id)
		if err != nil {
			return err
		}
		if err := f(ms); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every schema against a TagSpace:
// each tag must be registered, and its class must agree with the field kind,
// i.e., FixedStruct fields use structure tags and everything else uses array tags.
// A tag shared by several schemas must have the same kind in all of them.
func (r *Registry) Validate(ts *TagSpace) error {
	type use struct {
		kind FieldKind
		msg  MessageID
	}
	seen := make(map[Tag]use)

	return r.Each(func(ms *MessageSchema) error {
		for i := range ms.Fields {
			fd := &ms.Fields[i]
			class, err := ts.Classify(fd.Tag)
			if err != nil {
				return schemaErr(ms.ID, fd.Name, err, "")
			}

			want := TagStructure
			if fd.Kind.IsArray() {
				want = TagArray
			}

			if class != want {
				return schemaErr(ms.ID, fd.Name, ErrTagKindMismatch,
					"%v field uses %v tag %s", fd.Kind, class, ts.Name(fd.Tag))
			}

			if u, ok := seen[fd.Tag]; ok && u.kind != fd.Kind {
				return schemaErr(ms.ID, fd.Name, ErrTagKindMismatch,
					"%s is %v here but %v in %v", ts.Name(fd.Tag), fd.Kind, u.kind, u.msg)
			} else if !ok {
				seen[fd.Tag] = use{kind: fd.Kind, msg: ms.ID}
			}
		}
		return nil
	})
}

var (
	defaultReg     *Registry
	defaultRegOnce sync.Once
)

// Default returns the frozen Registry of every builtin command and event.
// It's built on first use.
func Default() *Registry {
	defaultRegOnce.Do(func() {
		r := NewRegistry()
		r.MustRegister(commandSchemas()...)
		r.MustRegister(eventSchemas()...)
		r.Freeze()
		defaultReg = r
	})
	return defaultReg
}
