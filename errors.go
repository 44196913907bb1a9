// Copyright 2021 xgfone
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

package bencode

import (
	"errors"
	"fmt"
)

// The sentinel errors returned by the package.
var (
	// ErrInvalidKind is returned when constructing a Value of the kind
	// Invalid, or when encoding a tree that contains an Invalid node.
	ErrInvalidKind = errors.New("bencode: not a valid value kind")

	// ErrTruncated is returned, wrapped in a SyntaxError, when the end
	// of the input is reached while more bytes are expected.
	ErrTruncated = errors.New("bencode: truncated data")

	// ErrTooDeep is returned, wrapped in a SyntaxError, when the nesting
	// depth of the input exceeds the maximum of the decoder.
	ErrTooDeep = errors.New("bencode: exceeded the maximum nesting depth")

	// ErrUnsupportedType is returned by FromInterface for a Go value
	// that has no bencode representation.
	ErrUnsupportedType = errors.New("bencode: unsupported type")
)

// TypeError is returned by an accessor or a mutator invoked on a Value
// whose kind does not match the operation.
type TypeError struct {
	Op     string
	Expect Kind
	Actual Kind
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("bencode: %s: expect the %s value, but got %s", e.Op, e.Expect, e.Actual)
}

// KeyError is returned when reading a dictionary field by an absent key.
type KeyError struct {
	Key string
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("bencode: the dictionary key '%s' does not exist", e.Key)
}

// IndexError is returned when reading or writing a list element
// at an out-of-range index.
type IndexError struct {
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bencode: the list index %d is out of range [0, %d)", e.Index, e.Len)
}

// SyntaxError is returned by the decoder for malformed or truncated
// input, carrying the byte offset at which the failure occurred.
//
// For truncated input or too deeply nested input, Err is ErrTruncated
// or ErrTooDeep respectively; for a grammar violation, Err is nil and
// Msg describes the violation.
type SyntaxError struct {
	Offset int
	Msg    string
	Err    error
}

func (e *SyntaxError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s at offset %d", e.Err.Error(), e.Offset)
	}
	return fmt.Sprintf("bencode: %s at offset %d", e.Msg, e.Offset)
}

// Unwrap returns the wrapped error, which may be nil.
func (e *SyntaxError) Unwrap() error { return e.Err }
