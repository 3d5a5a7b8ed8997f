/**
 * Copyright (c) 2026, The GraphQL Compose Authors.
 *
 * Permission to use, copy, modify, and/or distribute this software for any
 * purpose with or without fee is hereby granted, provided that the above
 * copyright notice and this permission notice appear in all copies.
 *
 * THE SOFTWARE IS PROVIDED "AS IS" AND THE AUTHOR DISCLAIMS ALL WARRANTIES
 * WITH REGARD TO THIS SOFTWARE INCLUDING ALL IMPLIED WARRANTIES OF
 * MERCHANTABILITY AND FITNESS. IN NO EVENT SHALL THE AUTHOR BE LIABLE FOR
 * ANY SPECIAL, DIRECT, INDIRECT, OR CONSEQUENTIAL DAMAGES OR ANY DAMAGES
 * WHATSOEVER RESULTING FROM LOSS OF USE, DATA OR PROFITS, WHETHER IN AN
 * ACTION OF CONTRACT, NEGLIGENCE OR OTHER TORTIOUS ACTION, ARISING OUT OF
 * OR IN CONNECTION WITH THE USE OR PERFORMANCE OF THIS SOFTWARE.
 */

package graphql

import (
	"log"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

// Op describes an operation, usually as the package and method, such as "compose.MakeOptional".
type Op string

// ErrKind defines the kind of error this is.
type ErrKind uint8

// Enumeration of Kind
const (
	ErrKindOther           ErrKind = iota // Unclassified error. This value is not printed in the error message.
	ErrKindInvalidArgument                // An argument has an unsupported shape or value.
	ErrKindInvalidType                    // A type instance does not match the expected structural kind.
	ErrKindMissingArgument                // A required argument is absent.
	ErrKindAccess                         // An operation indexed a field that does not exist.
	ErrKindSyntax                         // Represent a syntax error in a type definition source.
)

func (k ErrKind) String() string {
	switch k {
	case ErrKindOther:
		return "other error"
	case ErrKindInvalidArgument:
		return "invalid argument"
	case ErrKindInvalidType:
		return "invalid type"
	case ErrKindMissingArgument:
		return "missing argument"
	case ErrKindAccess:
		return "access error"
	case ErrKindSyntax:
		return "syntax error"
	}
	return "unknown error kind"
}

// Error is the type that implements the error interface for this library. An Error value may leave
// some fields unset.
type Error struct {
	// Kind is the class of error.
	Kind ErrKind

	// Op is the operation being performed.
	Op Op

	// Message is the human-readable description for the error.
	Message string

	// Err is the underlying error that triggered this one, if any.
	Err error
}

var _ error = (*Error)(nil)

// NewError builds an error value from its arguments. The message argument comes first and is
// required; the remaining arguments may each be of the following types and are consumed in any
// order:
//
//	ErrKind  The class of error.
//	Op       The operation being performed.
//	error    The underlying error that triggered this one.
func NewError(message string, args ...interface{}) error {
	e := &Error{Message: message}
	for _, arg := range args {
		switch arg := arg.(type) {
		case ErrKind:
			e.Kind = arg
		case Op:
			e.Op = arg
		case *Error:
			e.Err = arg
			if e.Kind == ErrKindOther {
				e.Kind = arg.Kind
			}
		case error:
			e.Err = arg
		default:
			log.Printf("errors.NewError: bad call with unknown type %T, value %v", arg, arg)
		}
	}
	return e
}

// Error implements Go's error interface.
func (e *Error) Error() string {
	var b strings.Builder

	// pad appends str to the buffer if the buffer already has some data.
	pad := func(str string) {
		if b.Len() == 0 {
			return
		}
		b.WriteString(str)
	}

	if len(e.Op) > 0 {
		b.WriteString(string(e.Op))
	}

	if len(e.Message) > 0 {
		pad(": ")
		b.WriteString(e.Message)
	}

	if e.Kind != ErrKindOther {
		pad(": ")
		b.WriteString(e.Kind.String())
	}

	if e.Err != nil {
		if _, ok := e.Err.(*Error); ok {
			pad(":\n  ")
		} else {
			pad(": ")
		}
		b.WriteString(e.Err.Error())
	}

	if b.Len() == 0 {
		return "no error"
	}
	return b.String()
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// MarshalJSON implements json.Marshaler.
func (e *Error) MarshalJSON() ([]byte, error) {
	return jsoniter.Marshal(struct {
		Message string `json:"message"`
		Kind    string `json:"kind,omitempty"`
		Op      string `json:"op,omitempty"`
	}{
		Message: e.Message,
		Kind:    e.Kind.String(),
		Op:      string(e.Op),
	})
}

// ErrKindOf returns the kind of the given error, or ErrKindOther for errors that did not originate
// from this library. It unwraps as needed to find the first classified error.
func ErrKindOf(err error) ErrKind {
	for err != nil {
		e, ok := err.(*Error)
		if !ok {
			return ErrKindOther
		}
		if e.Kind != ErrKindOther {
			return e.Kind
		}
		err = e.Err
	}
	return ErrKindOther
}
