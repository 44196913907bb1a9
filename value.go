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

import "bytes"

// Value represents a bencoded element, which is one of the integer,
// the byte string, the list or the dictionary.
//
// The zero Value is of the kind Invalid and cannot be encoded. Once a
// Value is constructed as a real kind, its kind is fixed, and only the
// accessors matching the kind succeed.
//
// The children of a list or a dictionary are owned by their parent, and
// a Value tree must not share a child between two parents.
type Value struct {
	kind Kind
	num  int64
	str  []byte
	list []*Value
	dict map[string]*Value
}

// New returns a new empty Value of the given kind, that's, the integer 0,
// the empty byte string, the empty list or the empty dictionary.
//
// It returns ErrInvalidKind for any other kind.
func New(kind Kind) (*Value, error) {
	switch kind {
	case Integer:
		return NewInteger(0), nil
	case ByteString:
		return NewBytes(nil), nil
	case List:
		return NewList(), nil
	case Dict:
		return NewDict(), nil
	}
	return nil, ErrInvalidKind
}

// NewInteger returns a new Value of the kind Integer with the value i.
func NewInteger(i int64) *Value {
	return &Value{kind: Integer, num: i}
}

// NewBytes returns a new Value of the kind ByteString with a copy of b.
func NewBytes(b []byte) *Value {
	return &Value{kind: ByteString, str: append([]byte{}, b...)}
}

// NewString is the same as NewBytes, but with a string.
func NewString(s string) *Value {
	return &Value{kind: ByteString, str: []byte(s)}
}

// NewList returns a new Value of the kind List containing the given
// elements in order.
func NewList(elems ...*Value) *Value {
	return &Value{kind: List, list: append([]*Value{}, elems...)}
}

// NewDict returns a new empty Value of the kind Dict.
func NewDict() *Value {
	return &Value{kind: Dict, dict: make(map[string]*Value)}
}

// Kind returns the kind of the value. For the nil Value, it returns Invalid.
func (v *Value) Kind() Kind {
	if v == nil {
		return Invalid
	}
	return v.kind
}

func (v *Value) check(op string, kind Kind) error {
	if v.Kind() != kind {
		return &TypeError{Op: op, Expect: kind, Actual: v.Kind()}
	}
	return nil
}

// Int64 returns the integer value.
//
// It returns a TypeError if the value is not of the kind Integer.
func (v *Value) Int64() (int64, error) {
	if err := v.check("Int64", Integer); err != nil {
		return 0, err
	}
	return v.num, nil
}

// Bytes returns the byte string content, which may be empty.
//
// It returns a TypeError if the value is not of the kind ByteString.
func (v *Value) Bytes() ([]byte, error) {
	if err := v.check("Bytes", ByteString); err != nil {
		return nil, err
	}
	return v.str, nil
}

// Len returns the number of the list elements, the dictionary entries
// or the byte string bytes.
//
// It returns a TypeError for any other kind.
func (v *Value) Len() (int, error) {
	switch v.Kind() {
	case ByteString:
		return len(v.str), nil
	case List:
		return len(v.list), nil
	case Dict:
		return len(v.dict), nil
	}
	return 0, &TypeError{Op: "Len", Expect: List, Actual: v.Kind()}
}

// Index returns the index-th element of the list.
//
// It returns a TypeError if the value is not of the kind List,
// or an IndexError if index is out of range.
func (v *Value) Index(index int) (*Value, error) {
	if err := v.check("Index", List); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(v.list) {
		return nil, &IndexError{Index: index, Len: len(v.list)}
	}
	return v.list[index], nil
}

// SetIndex replaces the index-th element of the list with elem.
//
// It returns a TypeError if the value is not of the kind List,
// or an IndexError if index is out of range.
func (v *Value) SetIndex(index int, elem *Value) error {
	if err := v.check("SetIndex", List); err != nil {
		return err
	}
	if index < 0 || index >= len(v.list) {
		return &IndexError{Index: index, Len: len(v.list)}
	}
	v.list[index] = elem
	return nil
}

// Append appends the element elem to the end of the list.
//
// It returns a TypeError if the value is not of the kind List.
func (v *Value) Append(elem *Value) error {
	if err := v.check("Append", List); err != nil {
		return err
	}
	v.list = append(v.list, elem)
	return nil
}

// AppendInt is the same as Append, but appends the raw integer i
// as a Value of the kind Integer.
func (v *Value) AppendInt(i int64) error {
	if err := v.check("AppendInt", List); err != nil {
		return err
	}
	v.list = append(v.list, NewInteger(i))
	return nil
}

// Field returns the value of the dictionary field named by key,
// which is compared with the stored keys byte-for-byte.
//
// It returns a TypeError if the value is not of the kind Dict,
// or a KeyError if the key does not exist.
func (v *Value) Field(key string) (*Value, error) {
	if err := v.check("Field", Dict); err != nil {
		return nil, err
	}
	field, ok := v.dict[key]
	if !ok {
		return nil, &KeyError{Key: key}
	}
	return field, nil
}

// SetField sets the dictionary field named by key to elem,
// adding the field if it does not exist.
//
// It returns a TypeError if the value is not of the kind Dict.
func (v *Value) SetField(key string, elem *Value) error {
	if err := v.check("SetField", Dict); err != nil {
		return err
	}
	v.dict[key] = elem
	return nil
}

// Keys returns all the keys of the dictionary sorted bytewise
// in the ascending order, that's, in the canonical encoding order.
//
// It returns a TypeError if the value is not of the kind Dict.
func (v *Value) Keys() ([]string, error) {
	if err := v.check("Keys", Dict); err != nil {
		return nil, err
	}
	return sortedKeys(v.dict), nil
}

// Equal reports whether v is structurally equal to other, that's,
// the same kind, the same scalar or byte content, the same list order,
// and the same dictionary key and value set.
func (v *Value) Equal(other *Value) bool {
	if v.Kind() != other.Kind() {
		return false
	}

	switch v.Kind() {
	case Integer:
		return v.num == other.num
	case ByteString:
		return bytes.Equal(v.str, other.str)
	case List:
		if len(v.list) != len(other.list) {
			return false
		}
		for i, elem := range v.list {
			if !elem.Equal(other.list[i]) {
				return false
			}
		}
	case Dict:
		if len(v.dict) != len(other.dict) {
			return false
		}
		for key, elem := range v.dict {
			if field, ok := other.dict[key]; !ok || !elem.Equal(field) {
				return false
			}
		}
	}

	return true
}
