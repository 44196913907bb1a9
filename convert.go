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
	"fmt"
	"math"
)

// FromInterface converts a native Go value to a Value tree.
//
// The signed and unsigned integers become Integer, string and []byte
// become ByteString, []interface{} becomes List, map[string]interface{}
// becomes Dict, and a *Value is returned as is. It returns an error
// wrapping ErrUnsupportedType for any other type, or for an unsigned
// integer out of the int64 range.
func FromInterface(x interface{}) (*Value, error) {
	switch t := x.(type) {
	case *Value:
		return t, nil

	case int:
		return NewInteger(int64(t)), nil
	case int8:
		return NewInteger(int64(t)), nil
	case int16:
		return NewInteger(int64(t)), nil
	case int32:
		return NewInteger(int64(t)), nil
	case int64:
		return NewInteger(t), nil

	case uint:
		return NewInteger(int64(t)), nil
	case uint8:
		return NewInteger(int64(t)), nil
	case uint16:
		return NewInteger(int64(t)), nil
	case uint32:
		return NewInteger(int64(t)), nil
	case uint64:
		if t > math.MaxInt64 {
			return nil, fmt.Errorf("%w: uint64 %d overflows int64", ErrUnsupportedType, t)
		}
		return NewInteger(int64(t)), nil

	case string:
		return NewString(t), nil
	case []byte:
		return NewBytes(t), nil

	case []interface{}:
		list := NewList()
		for _, x := range t {
			elem, err := FromInterface(x)
			if err != nil {
				return nil, err
			}
			list.list = append(list.list, elem)
		}
		return list, nil

	case map[string]interface{}:
		dict := NewDict()
		for key, x := range t {
			elem, err := FromInterface(x)
			if err != nil {
				return nil, err
			}
			dict.dict[key] = elem
		}
		return dict, nil
	}

	return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, x)
}

// Interface converts the Value tree to a native Go value, that's,
// Integer to int64, ByteString to string, List to []interface{},
// and Dict to map[string]interface{}. For the kind Invalid or the nil
// Value, it returns nil.
func (v *Value) Interface() interface{} {
	switch v.Kind() {
	case Integer:
		return v.num
	case ByteString:
		return string(v.str)
	case List:
		list := make([]interface{}, len(v.list))
		for i, elem := range v.list {
			list[i] = elem.Interface()
		}
		return list
	case Dict:
		dict := make(map[string]interface{}, len(v.dict))
		for key, elem := range v.dict {
			dict[key] = elem.Interface()
		}
		return dict
	}
	return nil
}
