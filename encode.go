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
	"bytes"
	"sort"
	"strconv"
)

// Encode encodes the Value tree v to the canonical bencoded bytes,
// that's, all the dictionary keys are sorted bytewise in the ascending
// order no matter how the dictionaries were built or decoded.
//
// It returns ErrInvalidKind if v, or any node of the tree, is of the
// kind Invalid, and no bytes are returned in that case.
func Encode(v *Value) ([]byte, error) {
	buf := new(bytes.Buffer)
	if err := encodeValue(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func encodeValue(buf *bytes.Buffer, v *Value) (err error) {
	switch v.Kind() {
	case Integer:
		buf.WriteByte('i')
		buf.Write(strconv.AppendInt(nil, v.num, 10))
		buf.WriteByte('e')

	case ByteString:
		encodeBytes(buf, v.str)

	case List:
		buf.WriteByte('l')
		for _, elem := range v.list {
			if err = encodeValue(buf, elem); err != nil {
				return
			}
		}
		buf.WriteByte('e')

	case Dict:
		buf.WriteByte('d')
		for _, key := range sortedKeys(v.dict) {
			encodeBytes(buf, []byte(key))
			if err = encodeValue(buf, v.dict[key]); err != nil {
				return
			}
		}
		buf.WriteByte('e')

	default:
		return ErrInvalidKind
	}

	return
}

func encodeBytes(buf *bytes.Buffer, b []byte) {
	buf.Write(strconv.AppendInt(nil, int64(len(b)), 10))
	buf.WriteByte(':')
	buf.Write(b)
}

// sortedKeys returns the keys of the dictionary sorted bytewise in the
// ascending order. The iteration order of the map is unspecified, so the
// canonical encoding must collect and sort the keys explicitly.
func sortedKeys(dict map[string]*Value) []string {
	keys := make([]string, 0, len(dict))
	for key := range dict {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
