// Copyright 2025 The Tern Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package errors defines shared types for handling Tern errors.
//
// All errors reported by the scanner, parser, compiler, and encoders carry a
// source position. The normalization core itself never constructs errors; it
// is total on well-formed input and expresses failure as stuck terms.
package errors

import (
	"errors"
	"fmt"
	"io"
	"sort"

	"ternlang.org/go/tern/token"
)

// New is a convenience wrapper for errors.New in the core library.
func New(msg string) error { return errors.New(msg) }

// A Handler is a generic error handler used throughout Tern packages.
//
// The position points to the beginning of the offending value.
type Handler func(pos token.Position, msg string)

// Error is the common error interface. An Error reports its source position
// alongside the message.
type Error interface {
	Position() token.Position

	// Error reports the error message without position information.
	Error() string
}

// Newf creates an Error with the given position and formatted message.
func Newf(pos token.Position, format string, args ...interface{}) Error {
	return &posError{pos: pos, msg: fmt.Sprintf(format, args...)}
}

// Wrapf creates an Error wrapping err with the given position and formatted
// message prefix.
func Wrapf(err error, pos token.Position, format string, args ...interface{}) Error {
	return &posError{pos: pos, msg: fmt.Sprintf(format, args...), err: err}
}

// Promote converts a regular error to an Error, attaching the given
// position. If err is already an Error it is returned as is.
func Promote(err error, pos token.Position) Error {
	if e, ok := err.(Error); ok {
		return e
	}
	return &posError{pos: pos, msg: err.Error(), err: err}
}

// In a List, an error is represented by a *posError. The position, if
// valid, points to the beginning of the offending token, and the error
// condition is described by msg.
type posError struct {
	pos token.Position
	msg string

	// The underlying error that triggered this one, if any.
	err error
}

func (e *posError) Position() token.Position { return e.pos }

func (e *posError) Error() string { return e.msg }

func (e *posError) Unwrap() error { return e.err }

// Append combines two errors, flattening Lists as necessary.
func Append(a, b error) error {
	switch x := a.(type) {
	case nil:
		return b
	case List:
		x.Add(b)
		return x
	default:
		l := List{toErr(a)}
		l.Add(b)
		return l
	}
}

func toErr(err error) Error {
	if e, ok := err.(Error); ok {
		return e
	}
	return &posError{msg: err.Error(), err: err}
}

// List is a list of Errors.
// The zero value for a List is an empty List ready to use.
type List []Error

// AddNewf adds an Error with given position and formatted message to a List.
func (p *List) AddNewf(pos token.Position, format string, args ...interface{}) {
	*p = append(*p, Newf(pos, format, args...))
}

// Add adds an error to a List, flattening nested Lists.
func (p *List) Add(err error) {
	switch x := err.(type) {
	case nil:
	case List:
		*p = append(*p, x...)
	default:
		*p = append(*p, toErr(err))
	}
}

// Reset resets a List to no errors.
func (p *List) Reset() { *p = (*p)[:0] }

// List implements the sort Interface.
func (p List) Len() int      { return len(p) }
func (p List) Swap(i, j int) { p[i], p[j] = p[j], p[i] }

func (p List) Less(i, j int) bool {
	e := p[i].Position()
	f := p[j].Position()
	if e.Filename != f.Filename {
		return e.Filename < f.Filename
	}
	if e.Line != f.Line {
		return e.Line < f.Line
	}
	if e.Column != f.Column {
		return e.Column < f.Column
	}
	return p[i].Error() < p[j].Error()
}

// Sort sorts a List by position, with errors at the same position ordered
// by message.
func (p List) Sort() { sort.Sort(p) }

// Err returns an error equivalent to this error list.
// If the list is empty, Err returns nil.
func (p List) Err() error {
	if len(p) == 0 {
		return nil
	}
	return p
}

// Error implements the error interface.
func (p List) Error() string {
	switch len(p) {
	case 0:
		return "no errors"
	case 1:
		return p[0].Error()
	}
	return fmt.Sprintf("%s (and %d more errors)", p[0], len(p)-1)
}

// Errors reports the individual errors contained in err. If err is not a
// List, it is reported as a single error.
func Errors(err error) []Error {
	switch x := err.(type) {
	case nil:
		return nil
	case List:
		return x
	default:
		return []Error{toErr(err)}
	}
}

// Print is a utility function that prints the errors contained in err to w,
// one error per line. An error whose position is valid or names a file is
// prefixed with that position; any other error prints as its message only.
func Print(w io.Writer, err error) {
	for _, e := range Errors(err) {
		if pos := e.Position(); pos.IsValid() || pos.Filename != "" {
			fmt.Fprintf(w, "%s: %s\n", pos, e.Error())
		} else {
			fmt.Fprintf(w, "%s\n", e.Error())
		}
	}
}
