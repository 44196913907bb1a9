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

import "fmt"

// Kind represents the kind of a bencoded value.
type Kind uint8

// The kinds of the bencoded values.
//
// Invalid is the kind of the zero Value, which is not a valid encoding
// target and only exists before a real kind is assigned.
const (
	Invalid Kind = iota
	Integer
	ByteString
	List
	Dict
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "invalid"
	case Integer:
		return "integer"
	case ByteString:
		return "bytestring"
	case List:
		return "list"
	case Dict:
		return "dict"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}
