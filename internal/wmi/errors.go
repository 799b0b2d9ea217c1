//
// Copyright (C) 2020 Intel Corporation
//
// SPDX-License-Identifier: Apache-2.0

package wmi

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

var (
	// Schema errors indicate a mismatch between code and protocol definition.
	ErrDuplicateRegistration = errors.New("message ID already registered")
	ErrEmptySchema           = errors.New("schema has no fields")
	ErrFirstFieldNotFixed    = errors.New("first field is not a fixed structure")
	ErrUnknownMessageID      = errors.New("unknown message ID")
	ErrDuplicateTag          = errors.New("tag appears more than once in schema")
	ErrRegistryFrozen        = errors.New("registry is frozen")
	ErrTagKindMismatch       = errors.New("field kind does not match tag class")
	ErrUnknownTag            = errors.New("unknown tag")

	// Encode errors are caused by caller-supplied values.
	ErrSizeMismatch    = errors.New("value size does not match field")
	ErrArityMismatch   = errors.New("element count does not match fixed array")
	ErrMessageTooLarge = errors.New("message exceeds maximum size")
	ErrFieldGap        = errors.New("field supplied after an omitted field")
	ErrUnknownField    = errors.New("no such field in schema")

	// Decode errors reject the whole message.
	ErrTruncatedHeader       = errors.New("truncated TLV header")
	ErrTruncatedPayload      = errors.New("truncated TLV payload")
	ErrOutOfOrderField       = errors.New("field out of order")
	ErrMissingMandatoryField = errors.New("missing mandatory field")
	ErrInvalidLength         = errors.New("TLV length invalid for field kind")
	ErrReservedTag           = errors.New("reserved tag on the wire")

	// Accessor errors.
	ErrFieldAbsent     = errors.New("field absent from message")
	ErrNoSuchField     = errors.New("field not defined by schema")
	ErrIndexOutOfRange = errors.New("element index out of range")
)

var (
	schemaErrs = []error{ErrDuplicateRegistration, ErrEmptySchema, ErrFirstFieldNotFixed,
		ErrUnknownMessageID, ErrDuplicateTag, ErrRegistryFrozen, ErrTagKindMismatch}
	encodeErrs = []error{ErrSizeMismatch, ErrArityMismatch, ErrMessageTooLarge,
		ErrFieldGap, ErrUnknownField}
	decodeErrs = []error{ErrTruncatedHeader, ErrTruncatedPayload, ErrOutOfOrderField,
		ErrMissingMandatoryField, ErrInvalidLength, ErrReservedTag}
)

// CodecError holds the context of a failed codec operation.
// It wraps one of the package's sentinel errors,
// so use errors.Is to check the failure class.
type CodecError struct {
	Op      string    // "register", "lookup", "encode", "decode", "walk"
	Message MessageID // zero if not applicable
	Field   string    // empty if not tied to a field
	Tag     Tag       // zero if not tied to a TLV
	Offset  int       // byte offset in the buffer; -1 if not applicable
	Err     error
}

func (e *CodecError) Error() string {
	sb := strings.Builder{}
	sb.WriteString(e.Op)
	if e.Message != 0 {
		fmt.Fprintf(&sb, " %v", e.Message)
	}
	if e.Field != "" {
		fmt.Fprintf(&sb, " field %q", e.Field)
	}
	if e.Tag != 0 {
		fmt.Fprintf(&sb, " tag %d", uint32(e.Tag))
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&sb, " at offset %d", e.Offset)
	}
	sb.WriteString(": ")
	sb.WriteString(e.Err.Error())
	return sb.String()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// Cause implements the pkg/errors causer interface.
func (e *CodecError) Cause() error {
	return e.Err
}

func isOneOf(err error, targets []error) bool {
	for _, t := range targets {
		if errors.Is(err, t) {
			return true
		}
	}
	return false
}

// IsSchemaError returns true if err indicates a schema or registry problem.
func IsSchemaError(err error) bool {
	return isOneOf(err, schemaErrs)
}

// IsEncodeError returns true if err was caused by invalid values given to an Encoder.
//
// Some sentinels, such as ErrMissingMandatoryField, can come from either side;
// for a CodecError, the operation that failed decides.
func IsEncodeError(err error) bool {
	if op, ok := codecOp(err); ok {
		return op == "encode" && !IsSchemaError(err)
	}
	return isOneOf(err, encodeErrs)
}

// IsDecodeError returns true if err means a received message was rejected.
func IsDecodeError(err error) bool {
	if op, ok := codecOp(err); ok {
		return (op == "decode" || op == "walk") && !IsSchemaError(err)
	}
	return isOneOf(err, decodeErrs)
}

func codecOp(err error) (string, bool) {
	var ce *CodecError
	if errors.As(err, &ce) {
		return ce.Op, true
	}
	return "", false
}

func schemaErr(id MessageID, field string, err error, why string, v ...interface{}) error {
	if why != "" {
		err = errors.WithMessagef(err, why, v...)
	}
	return &CodecError{Op: "register", Message: id, Field: field, Offset: -1, Err: err}
}

func encodeErr(id MessageID, fd *FieldDescriptor, err error, why string, v ...interface{}) error {
	ce := &CodecError{Op: "encode", Message: id, Offset: -1, Err: err}
	if fd != nil {
		ce.Field, ce.Tag = fd.Name, fd.Tag
	}
	if why != "" {
		ce.Err = errors.WithMessagef(err, why, v...)
	}
	return ce
}

func decodeErr(id MessageID, fd *FieldDescriptor, tag Tag, offset int, err error, why string, v ...interface{}) error {
	ce := &CodecError{Op: "decode", Message: id, Tag: tag, Offset: offset, Err: err}
	if fd != nil {
		ce.Field = fd.Name
	}
	if why != "" {
		ce.Err = errors.WithMessagef(err, why, v...)
	}
	return ce
}
