//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Package config loads the settings a codec needs to match its transport.
package config

import (
	"encoding/binary"
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.impcloud.net/RSP-Inventory-Suite/wmi-tlv-go/internal/wmi"
	"gopkg.in/yaml.v3"
	"io/ioutil"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Config holds the codec settings for one transport.
type Config struct {
	// MaxMessageSize is the largest message, TLV headers included,
	// the transport carries.
	MaxMessageSize int
	// ByteOrder of the TLV headers: "little" or "big".
	// Both ends of the transport must agree.
	ByteOrder string
	// Alignment is the decoder's payload realignment policy:
	// "auto", "always", or "never".
	Alignment string
	// LogLevel is the logrus level used by binaries.
	LogLevel string

	order binary.ByteOrder
	align wmi.AlignPolicy
	level logrus.Level
}

var (
	// defaultConfig holds default values for each configurable item in case
	// they are not present in the configuration
	defaultConfig = map[string]string{
		"MaxMessageSize": strconv.Itoa(wmi.DefaultMaxMessageSize),
		"ByteOrder":      "little",
		"Alignment":      "auto",
		"LogLevel":       "info",
	}

	// ErrUnexpectedConfigItems is returned when the input configuration map has extra keys
	// and values that are left over after parsing is complete
	ErrUnexpectedConfigItems = errors.New("unexpected config items")
	// ErrParsingConfigValue is returned when we are unable to parse the value for a config key
	ErrParsingConfigValue = errors.New("unable to parse config value for key")
	// ErrMissingRequiredKey is returned when a key has neither a value nor a default
	ErrMissingRequiredKey = errors.New("missing required key")
	// ErrUnsupportedFormat is returned for a file that is neither YAML nor TOML
	ErrUnsupportedFormat = errors.New("unsupported config file format")
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	lc := logrus.New()
	lc.SetOutput(ioutil.Discard)
	cfg, err := New(map[string]string{}, lc)
	if err != nil {
		panic(err) // the defaults must always parse
	}
	return cfg
}

// Load reads a YAML (.yaml, .yml) or TOML (.toml) file of flat key/value pairs.
//
// Like New, it may return a usable Config along with an error
// wrapping ErrUnexpectedConfigItems.
func Load(path string, lc logrus.FieldLogger) (*Config, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config")
	}

	raw := map[string]interface{}{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &raw)
	case ".toml":
		_, err = toml.Decode(string(data), &raw)
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q", ext)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse %s", path)
	}

	configMap, err := flatten(raw)
	if err != nil {
		return nil, errors.WithMessagef(err, "in %s", path)
	}

	lc.WithField("path", path).Debug("Loaded config file.")
	return New(configMap, lc)
}

// flatten turns scalar values into strings; the config has no nested sections.
func flatten(raw map[string]interface{}) (map[string]string, error) {
	configMap := make(map[string]string, len(raw))
	for k, v := range raw {
		switch v.(type) {
		case map[string]interface{}, []interface{}, nil:
			return nil, errors.Wrapf(ErrParsingConfigValue, "%s must be a scalar", k)
		}
		configMap[k] = fmt.Sprint(v)
	}
	return configMap, nil
}

// New creates a Config from a strings map.
//
// It returns an error wrapping ErrUnexpectedConfigItems if there are additional unused keys and
// values after parsing is complete; the Config is still valid in that case,
// so the error can be safely ignored using:
// `!errors.Is(err, ErrUnexpectedConfigItems)`
// It may also return an error wrapping ErrParsingConfigValue or ErrMissingRequiredKey.
func New(configMap map[string]string, lc logrus.FieldLogger) (*Config, error) {
	cfg := new(Config)
	if err := cfg.load(configMap, lc); err != nil {
		if errors.Is(err, ErrUnexpectedConfigItems) {
			return cfg, err
		}
		return nil, err
	}
	return cfg, nil
}

func (cfg *Config) load(configMap map[string]string, lc logrus.FieldLogger) error {
	cloneMap := make(map[string]string, len(configMap))
	for k, v := range configMap {
		cloneMap[k] = v
	}

	p := popper{m: cloneMap, lc: lc}
	var err error

	cfg.MaxMessageSize, err = p.popInt("MaxMessageSize")
	if err != nil {
		return wrapParseError(err, "MaxMessageSize")
	}
	if cfg.MaxMessageSize <= 0 {
		return wrapParseError(errors.Errorf("%d is not a positive size", cfg.MaxMessageSize), "MaxMessageSize")
	}

	cfg.ByteOrder, err = p.pop("ByteOrder")
	if err != nil {
		return wrapParseError(err, "ByteOrder")
	}
	switch strings.ToLower(cfg.ByteOrder) {
	case "little", "le":
		cfg.order = binary.LittleEndian
	case "big", "be":
		cfg.order = binary.BigEndian
	default:
		return wrapParseError(errors.Errorf("unknown byte order %q", cfg.ByteOrder), "ByteOrder")
	}

	cfg.Alignment, err = p.pop("Alignment")
	if err != nil {
		return wrapParseError(err, "Alignment")
	}
	if cfg.align, err = wmi.ParseAlignPolicy(strings.ToLower(cfg.Alignment)); err != nil {
		return wrapParseError(err, "Alignment")
	}

	cfg.LogLevel, err = p.pop("LogLevel")
	if err != nil {
		return wrapParseError(err, "LogLevel")
	}
	if cfg.level, err = logrus.ParseLevel(cfg.LogLevel); err != nil {
		return wrapParseError(err, "LogLevel")
	}

	// in this case there were extra fields that are not in our config map.
	// these could either be outdated config options or typos
	if len(cloneMap) > 0 {
		keys := make([]string, 0, len(cloneMap))
		for k := range cloneMap {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		lc.Warnf("Got unexpected config keys: %s", strings.Join(keys, ", "))
		return errors.Wrapf(ErrUnexpectedConfigItems, "config map: %+v", cloneMap)
	}
	return nil
}

// Order returns the TLV header byte order.
func (cfg *Config) Order() binary.ByteOrder {
	return cfg.order
}

// AlignPolicy returns the decoder's realignment policy.
func (cfg *Config) AlignPolicy() wmi.AlignPolicy {
	return cfg.align
}

// Level returns the configured log level.
func (cfg *Config) Level() logrus.Level {
	return cfg.level
}

// CodecOptions returns the options that configure
// an Encoder and Decoder for this transport.
func (cfg *Config) CodecOptions() []wmi.CodecOpt {
	return []wmi.CodecOpt{
		wmi.WithByteOrder(cfg.order),
		wmi.WithMaxMessageSize(cfg.MaxMessageSize),
		wmi.WithAlignment(cfg.align),
	}
}

// wrapParseError is a utility function to wrap an error parsing specified key
// with ErrParsingConfigValue
func wrapParseError(err error, key string) error {
	if errors.Is(err, ErrMissingRequiredKey) {
		return err
	}
	return errors.Wrapf(ErrParsingConfigValue, "%s: %v", key, err)
}

type popper struct {
	m  map[string]string
	lc logrus.FieldLogger
}

// pop retrieves the value stored for the specified key if it exists
// and deletes it from the map. If it does not exist, it uses the default value configured
// for that key. It will return an error wrapping `ErrMissingRequiredKey` if the key is
// missing and there is no default value specified for that key.
func (p popper) pop(key string) (string, error) {
	val, ok := p.m[key]
	if !ok {
		val, ok = defaultConfig[key]
		if !ok {
			return "", errors.Wrap(ErrMissingRequiredKey, key)
		}
		p.lc.Infof("Config is missing property '%s', value has been set to the default value of '%s'", key, val)
	}
	// delete each handled field to know if there are any un-handled ones left
	delete(p.m, key)
	return strings.TrimSpace(val), nil
}

// popInt functions the same way as pop, except it will attempt to convert the value to an int
func (p popper) popInt(key string) (int, error) {
	val, err := p.pop(key)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(val)
}
