//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"sync"
	"testing"
)

func TestRegistry_register(t *testing.T) {
	fixedOnly := func(id MessageID, name string) *MessageSchema {
		return NewSchema(id, name).Fixed(600, "fixed", 4).MustBuild()
	}

	t.Run("duplicate ID", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(1, fixedOnly(1, "a")))
		err := r.Register(1, fixedOnly(1, "b"))
		assert.True(t, errors.Is(err, ErrDuplicateRegistration), "%+v", err)
		assert.True(t, IsSchemaError(err))
	})

	t.Run("duplicate name", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(1, fixedOnly(1, "a")))
		err := r.Register(2, fixedOnly(2, "a"))
		assert.True(t, errors.Is(err, ErrDuplicateRegistration), "%+v", err)
	})

	t.Run("empty", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register(1, &MessageSchema{ID: 1, Name: "empty"})
		assert.True(t, errors.Is(err, ErrEmptySchema), "%+v", err)

		err = r.Register(1, nil)
		assert.True(t, errors.Is(err, ErrEmptySchema), "%+v", err)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("first not fixed", func(t *testing.T) {
		r := NewRegistry()
		err := r.Register(1, &MessageSchema{ID: 1, Name: "bad", Fields: []FieldDescriptor{
			{Tag: 20, Name: "bytes", Kind: VarByteArray()},
			{Tag: 600, Name: "fixed", Kind: FixedStruct(4)},
		}})
		assert.True(t, errors.Is(err, ErrFirstFieldNotFixed), "%+v", err)

		var ce *CodecError
		require.True(t, errors.As(err, &ce))
		assert.Equal(t, "bytes", ce.Field)
		assert.Equal(t, MessageID(1), ce.Message)
	})

	t.Run("frozen", func(t *testing.T) {
		r := NewRegistry()
		r.Freeze()
		assert.True(t, r.Frozen())
		err := r.Register(1, fixedOnly(1, "a"))
		assert.True(t, errors.Is(err, ErrRegistryFrozen), "%+v", err)
	})

	t.Run("copies the schema", func(t *testing.T) {
		r := NewRegistry()
		ms := fixedOnly(1, "a")
		require.NoError(t, r.Register(1, ms))
		ms.Fields[0].Kind = FixedStruct(99)

		got, err := r.Lookup(1)
		require.NoError(t, err)
		assert.Equal(t, uint64(4), got.Fixed().Kind.FixedLen())
	})
}

func TestSchemaBuilder_errors(t *testing.T) {
	tests := []struct {
		name string
		b    *SchemaBuilder
		err  error
	}{
		{"no fields", NewSchema(1, "x"), ErrEmptySchema},
		{"first is an array", NewSchema(1, "x").Bytes(20, "b"), ErrFirstFieldNotFixed},
		{"duplicate tag", NewSchema(1, "x").Fixed(600, "a", 4).Bytes(600, "b"), ErrDuplicateTag},
		{"tag zero", NewSchema(1, "x").Fixed(600, "a", 4).Bytes(0, "b"), ErrUnknownTag},
		{"mandatory first", NewSchema(1, "x").Mandatory(), ErrEmptySchema},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.Build()
			assert.True(t, errors.Is(err, tt.err), "expected %v, got %+v", tt.err, err)
		})
	}

	_, err := NewSchema(1, "x").Fixed(600, "a", 0).Build()
	assert.Error(t, err, "zero size struct")

	_, err = NewSchema(1, "x").Fixed(600, "a", 4).Bytes(20, "a").Build()
	assert.Error(t, err, "duplicate field name")

	_, err = NewSchema(1, "x").Fixed(600, "a", 4).Bytes(20, "b").Words(21, "c").Mandatory().Build()
	assert.Error(t, err, "mandatory after optional")

	_, err = NewSchema(1, "x").Fixed(600, "a", 4).Aligned(3).Build()
	assert.Error(t, err, "alignment must be a power of two")

	assert.Panics(t, func() { NewSchema(1, "x").MustBuild() })
}

func TestSchema_mandatoryPrefix(t *testing.T) {
	ms := NewSchema(1, "x").
		Fixed(600, "fixed", 4).
		Bytes(20, "frame").Mandatory().
		Words(21, "extra").
		MustBuild()

	assert.Equal(t, 2, ms.MandatoryFields())
	assert.True(t, ms.Fields[0].Mandatory)
	assert.False(t, ms.Fields[2].Mandatory)

	r := NewRegistry()
	r.MustRegister(ms)
	r.Freeze()

	enc := NewEncoder(r)
	_, err := enc.Encode(1, Values{"fixed": Struct(make([]byte, 4))})
	assert.True(t, errors.Is(err, ErrMissingMandatoryField), "%+v", err)

	dec := NewDecoder(r)
	_, err = dec.Decode(1, AppendTLV(nil, enc.order, 600, make([]byte, 4)))
	assert.True(t, errors.Is(err, ErrMissingMandatoryField), "%+v", err)
}

func TestSchema_defaultAlign(t *testing.T) {
	ms := NewSchema(1, "x").
		Fixed(600, "fixed", 12).
		Bytes(20, "bytes").
		Structs(21, "pairs", 6).
		FixedArray(22, "octets", 1, 8).
		Structs(23, "wide", 16).Aligned(8).
		MustBuild()

	want := []int{4, 1, 2, 1, 8}
	for i, a := range want {
		assert.Equal(t, a, ms.Fields[i].Align, ms.Fields[i].Name)
	}
}

func TestRegistry_lookup(t *testing.T) {
	r := newTestRegistry(t)

	ms, err := r.Lookup(testMsgS)
	require.NoError(t, err)
	assert.Equal(t, "s", ms.Name)

	_, err = r.Lookup(0x7777)
	assert.True(t, errors.Is(err, ErrUnknownMessageID), "%+v", err)

	ms, err = r.LookupName("s2")
	require.NoError(t, err)
	assert.Equal(t, testMsgS2, ms.ID)

	_, err = r.LookupName("nope")
	assert.True(t, errors.Is(err, ErrUnknownMessageID), "%+v", err)

	assert.Equal(t, []MessageID{testMsgS, testMsgS2, testMsgS3}, r.IDs())
	assert.Equal(t, 3, r.Len())

	var seen []string
	require.NoError(t, r.Each(func(ms *MessageSchema) error {
		seen = append(seen, ms.Name)
		return nil
	}))
	assert.Equal(t, []string{"s", "s2", "s3"}, seen)
}

func TestRegistry_validate(t *testing.T) {
	ts := NewTagSpace()
	require.NoError(t, ts.Register(600, "fixed"))
	require.NoError(t, ts.Register(20, "list"))
	require.NoError(t, ts.Register(601, "other"))
	ts.Freeze()

	build := func(b *SchemaBuilder) *Registry {
		r := NewRegistry()
		r.MustRegister(b.MustBuild())
		r.Freeze()
		return r
	}

	ok := build(NewSchema(1, "x").Fixed(600, "fixed", 4).Bytes(20, "list"))
	assert.NoError(t, ok.Validate(ts))

	err := build(NewSchema(1, "x").Fixed(600, "fixed", 4).Fixed(20, "list", 4)).Validate(ts)
	assert.True(t, errors.Is(err, ErrTagKindMismatch), "%+v", err)

	err = build(NewSchema(1, "x").Fixed(600, "fixed", 4).Bytes(601, "other")).Validate(ts)
	assert.True(t, errors.Is(err, ErrTagKindMismatch), "%+v", err)

	err = build(NewSchema(1, "x").Fixed(600, "fixed", 4).Bytes(30, "unregistered")).Validate(ts)
	assert.True(t, errors.Is(err, ErrUnknownTag), "%+v", err)

	r := NewRegistry()
	r.MustRegister(
		NewSchema(1, "x").Fixed(600, "fixed", 4).MustBuild(),
		NewSchema(2, "y").Fixed(600, "fixed", 8).MustBuild(),
	)
	err = r.Validate(ts)
	assert.True(t, errors.Is(err, ErrTagKindMismatch), "%+v", err)
}

func TestDefault(t *testing.T) {
	r := Default()
	require.True(t, r.Frozen())
	assert.Same(t, r, Default())
	assert.Greater(t, r.Len(), 380)

	require.NoError(t, r.Validate(Tags()))

	ms, err := r.Lookup(CmdVdevCreate)
	require.NoError(t, err)
	assert.Equal(t, "vdev_create", ms.Name)
	assert.Equal(t, TagVdevCreateCmd, ms.Fixed().Tag)

	ms, err = r.LookupName("mgmt_rx_event")
	require.NoError(t, err)
	assert.Equal(t, EvtMgmtRx, ms.ID)
	assert.Equal(t, 2, ms.MandatoryFields())

	// every builtin message has a name and every name is registered
	require.NoError(t, r.Each(func(ms *MessageSchema) error {
		assert.Equal(t, ms.Name, ms.ID.String())
		got, err := r.LookupName(ms.Name)
		if assert.NoError(t, err) {
			assert.Equal(t, ms.ID, got.ID)
		}
		assert.Equal(t, "fixed_param", ms.Fields[0].Name)
		return nil
	}))
	assert.Equal(t, len(messageNames), r.Len())
}

func TestDefault_concurrent(t *testing.T) {
	enc := NewEncoder(Default())
	dec := NewDecoder(Default())

	vals := Values{"fixed_param": Struct(make([]byte, 4))}
	want, err := enc.Encode(CmdVdevDelete, vals)
	require.NoError(t, err)

	wg := sync.WaitGroup{}
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				b, err := enc.Encode(CmdVdevDelete, vals)
				if err != nil {
					errs <- err
					return
				}
				if _, err := dec.Decode(CmdVdevDelete, b); err != nil {
					errs <- err
					return
				}
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("%+v", err)
	}
	assert.Len(t, want, 12)
}
