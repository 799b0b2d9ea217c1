//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/binary"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.impcloud.net/RSP-Inventory-Suite/wmi-tlv-go/internal/wmi"
	"strconv"
	"testing"
)

func testConfig() map[string]string {
	// NOTE: If you change this, you MUST update `TestNew`!
	return map[string]string{
		"MaxMessageSize": "4096",
		"ByteOrder":      "big",
		"Alignment":      "always",
		"LogLevel":       "warn",
	}
}

func TestNew(t *testing.T) {
	lc, _ := test.NewNullLogger()
	cfg, err := New(testConfig(), lc)
	require.NoError(t, err)

	assert.Equal(t, 4096, cfg.MaxMessageSize)
	assert.Equal(t, binary.BigEndian, cfg.Order())
	assert.Equal(t, wmi.AlignAlways, cfg.AlignPolicy())
	assert.Equal(t, logrus.WarnLevel, cfg.Level())
}

func TestEmptyConfigDefaults(t *testing.T) {
	lc, hook := test.NewNullLogger()
	cfg, err := New(map[string]string{}, lc)
	require.NoError(t, err)

	assert.Equal(t, defaultConfig["MaxMessageSize"], strconv.Itoa(cfg.MaxMessageSize))
	assert.Equal(t, defaultConfig["ByteOrder"], cfg.ByteOrder)
	assert.Equal(t, defaultConfig["Alignment"], cfg.Alignment)
	assert.Equal(t, defaultConfig["LogLevel"], cfg.LogLevel)
	assert.Equal(t, binary.LittleEndian, cfg.Order())

	// one message per defaulted key
	assert.Len(t, hook.AllEntries(), len(defaultConfig))
	assert.Equal(t, logrus.InfoLevel, hook.LastEntry().Level)

	assert.Equal(t, cfg, Default())
}

func TestMissingFieldDefaults(t *testing.T) {
	tests := []struct {
		key     string
		valueFn func(*Config) string
	}{
		{"MaxMessageSize", func(c *Config) string { return strconv.Itoa(c.MaxMessageSize) }},
		{"ByteOrder", func(c *Config) string { return c.ByteOrder }},
		{"Alignment", func(c *Config) string { return c.Alignment }},
		{"LogLevel", func(c *Config) string { return c.LogLevel }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			cfg := testConfig()
			// delete an item from the config to simulate missing keys/values
			delete(cfg, tt.key)

			lc, _ := testNullLogger()
			c, err := New(cfg, lc)
			require.NoError(t, err)
			assert.Equal(t, defaultConfig[tt.key], tt.valueFn(c))
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"MaxMessageSize", "lots"},
		{"MaxMessageSize", "-1"},
		{"ByteOrder", "middle"},
		{"Alignment", "sometimes"},
		{"LogLevel", "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			cfg := testConfig()
			cfg[tt.key] = tt.value

			lc, _ := testNullLogger()
			c, err := New(cfg, lc)
			assert.Nil(t, c)
			assert.True(t, errors.Is(err, ErrParsingConfigValue), "%+v", err)
		})
	}
}

func TestErrUnexpectedConfigItems(t *testing.T) {
	cfg := testConfig()
	cfg["foo"] = "bar"

	lc, hook := testNullLogger()
	c, err := New(cfg, lc)
	assert.True(t, errors.Is(err, ErrUnexpectedConfigItems), "%+v", err)
	require.NotNil(t, c, "the config is still usable")
	assert.Equal(t, 4096, c.MaxMessageSize)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

func TestLoad(t *testing.T) {
	lc, _ := testNullLogger()

	cfg, err := Load("testdata/codec.yaml", lc)
	require.NoError(t, err)
	assert.Equal(t, 4096, cfg.MaxMessageSize)
	assert.Equal(t, binary.LittleEndian, cfg.Order())
	assert.Equal(t, wmi.AlignAlways, cfg.AlignPolicy())
	assert.Equal(t, logrus.DebugLevel, cfg.Level())

	cfg, err = Load("testdata/codec.toml", lc)
	require.NoError(t, err)
	assert.Equal(t, 1536, cfg.MaxMessageSize)
	assert.Equal(t, binary.BigEndian, cfg.Order())
	assert.Equal(t, wmi.AlignNever, cfg.AlignPolicy())
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Len(t, cfg.CodecOptions(), 3)
}

func TestLoad_errors(t *testing.T) {
	lc, _ := testNullLogger()

	_, err := Load("testdata/unexpected.yaml", lc)
	assert.True(t, errors.Is(err, ErrUnexpectedConfigItems), "%+v", err)

	_, err = Load("testdata/nested.toml", lc)
	assert.True(t, errors.Is(err, ErrParsingConfigValue), "%+v", err)

	_, err = Load("testdata/bad_order.yaml", lc)
	assert.True(t, errors.Is(err, ErrParsingConfigValue), "%+v", err)

	_, err = Load("testdata/codec.ini", lc)
	assert.Error(t, err)

	_, err = Load("testdata/config.json", lc)
	assert.Error(t, err)
}

// The configured options produce a working codec.
func TestCodecOptions(t *testing.T) {
	lc, _ := testNullLogger()
	cfg, err := New(map[string]string{"MaxMessageSize": "16", "ByteOrder": "big"}, lc)
	require.NoError(t, err)

	enc := wmi.NewEncoder(wmi.Default(), cfg.CodecOptions()...)
	dec := wmi.NewDecoder(wmi.Default(), cfg.CodecOptions()...)
	assert.Equal(t, 16, enc.MaxMessageSize())

	b, err := enc.Encode(wmi.CmdVdevDelete, wmi.Values{"fixed_param": wmi.Struct([]byte{1, 0, 0, 0})})
	require.NoError(t, err)
	assert.Equal(t, uint32(wmi.TagVdevDeleteCmd), binary.BigEndian.Uint32(b[0:4]), "tag is big endian")

	ps, err := dec.Decode(wmi.CmdVdevDelete, b)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 0, 0, 0}, ps.Fixed())

	_, err = enc.Encode(wmi.CmdVdevSetParam, wmi.Values{"fixed_param": wmi.Struct(make([]byte, 12))})
	assert.True(t, errors.Is(err, wmi.ErrMessageTooLarge), "%+v", err)
}

func testNullLogger() (logrus.FieldLogger, *test.Hook) {
	return test.NewNullLogger()
}
