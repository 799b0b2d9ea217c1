//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

// Command wmitlv inspects the builtin message schemas
// and encodes or decodes messages from the command line.
package main

import (
	"encoding/hex"
	"encoding/json"
	"flag"
	"fmt"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.impcloud.net/RSP-Inventory-Suite/wmi-tlv-go/internal/config"
	"github.impcloud.net/RSP-Inventory-Suite/wmi-tlv-go/internal/wmi"
	"io/ioutil"
	"os"
	"strings"
)

var configPath, schemaName, encodeName, decodeName, inPath string
var listSchemas, listTags, rawInput bool

func init() {
	flag.StringVar(&configPath, "config", "", "path to a YAML or TOML codec config; defaults are used if empty")
	flag.BoolVar(&listSchemas, "schemas", false, "list every registered message")
	flag.StringVar(&schemaName, "schema", "", "print the schema of the named message")
	flag.BoolVar(&listTags, "tags", false, "list every registered tag")
	flag.StringVar(&encodeName, "encode", "", "encode the named message from a JSON file of hex field values")
	flag.StringVar(&decodeName, "decode", "", "decode the named message from a hex (or -raw binary) file")
	flag.StringVar(&inPath, "in", "", "input file for -encode or -decode; stdin if empty")
	flag.BoolVar(&rawInput, "raw", false, "the -decode input is binary rather than hex")
}

func check(err error) {
	if err == nil {
		return
	}

	log.Errorf("%+v", err)
	os.Exit(1)
}

func checkf(f func() error) {
	check(f())
}

func logErr(err error) {
	if err == nil {
		return
	}

	log.Errorf("%v", err)
}

func checkFlags() error {
	flag.Parse()

	n := 0
	for _, set := range []bool{listSchemas, schemaName != "", listTags, encodeName != "", decodeName != ""} {
		if set {
			n++
		}
	}

	if n == 0 {
		return errors.New("nothing to do; use one of -schemas, -schema, -tags, -encode, or -decode")
	}
	if n > 1 {
		return errors.New("only one of -schemas, -schema, -tags, -encode, or -decode may be given")
	}
	return nil
}

func main() {
	checkf(checkFlags)

	cfg, err := getConfig()
	check(err)
	log.SetLevel(cfg.Level())

	reg := wmi.Default()
	check(reg.Validate(wmi.Tags()))

	switch {
	case listSchemas:
		check(reg.Each(func(ms *wmi.MessageSchema) error {
			fmt.Printf("%#07x\t%s\n", uint32(ms.ID), ms.Name)
			return nil
		}))

	case schemaName != "":
		ms, err := reg.LookupName(schemaName)
		check(err)
		prettyPrint(newSchemaView(ms))

	case listTags:
		ts := wmi.Tags()
		for _, t := range ts.Tags() {
			c, _ := ts.Classify(t)
			fmt.Printf("%d\t%v\t%s\n", uint32(t), c, ts.Name(t))
		}

	case encodeName != "":
		check(encode(reg, cfg, encodeName))

	case decodeName != "":
		check(decode(reg, cfg, decodeName))
	}
}

func getConfig() (*config.Config, error) {
	if configPath == "" {
		return config.Default(), nil
	}

	cfg, err := config.Load(configPath, log.StandardLogger())
	if errors.Is(err, config.ErrUnexpectedConfigItems) {
		logErr(err)
		return cfg, nil
	}
	return cfg, err
}

func readInput() ([]byte, error) {
	if inPath == "" {
		return ioutil.ReadAll(os.Stdin)
	}
	return ioutil.ReadFile(inPath)
}

func encode(reg *wmi.Registry, cfg *config.Config, name string) error {
	ms, err := reg.LookupName(name)
	if err != nil {
		return err
	}

	data, err := readInput()
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	hexVals := map[string]string{}
	if err := json.Unmarshal(data, &hexVals); err != nil {
		return errors.Wrap(err, "input must be a JSON object of field names to hex strings")
	}

	vals, err := parseValues(ms, hexVals)
	if err != nil {
		return err
	}

	b, err := wmi.NewEncoder(reg, cfg.CodecOptions()...).Encode(ms.ID, vals)
	if err != nil {
		return err
	}

	log.Debugf("encoded %v as %d bytes", ms.ID, len(b))
	fmt.Println(hex.EncodeToString(b))
	return nil
}

func decode(reg *wmi.Registry, cfg *config.Config, name string) error {
	ms, err := reg.LookupName(name)
	if err != nil {
		return err
	}

	data, err := readInput()
	if err != nil {
		return errors.Wrap(err, "failed to read input")
	}

	if !rawInput {
		if data, err = hex.DecodeString(stripHex(string(data))); err != nil {
			return errors.Wrap(err, "input isn't valid hex")
		}
	}

	dec := wmi.NewDecoder(reg, cfg.CodecOptions()...)
	ps, err := dec.Decode(ms.ID, data)
	if err != nil {
		return err
	}
	defer ps.Release()

	for _, s := range ps.Skipped() {
		log.WithFields(log.Fields{
			"tag":    uint32(s.Tag),
			"class":  s.Class.String(),
			"known":  s.Known,
			"offset": s.Offset,
		}).Debug("skipped TLV")
	}

	prettyPrint(newMessageView(ps, wmi.Tags()))
	return nil
}

// stripHex drops whitespace, colons, and a leading 0x,
// so hex dumps can be pasted as is.
func stripHex(s string) string {
	s = strings.TrimPrefix(strings.TrimSpace(s), "0x")
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\n', '\r', ':':
			return -1
		}
		return r
	}, s)
}

func prettyPrint(v interface{}) {
	if pretty, err := json.MarshalIndent(v, "", "\t"); err != nil {
		log.Errorf("can't pretty print %+v: %+v", v, err)
	} else {
		fmt.Printf("%s\n", pretty)
	}
}
