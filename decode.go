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

// DefaultMaxDepth is the maximum nesting depth of the input used
// by the decoder when Decoder.MaxDepth is not set.
const DefaultMaxDepth = 4096

// Decode parses the first bencoded element in data and returns it
// as a Value tree, ignoring any trailing bytes after the element.
//
// It is equal to Decoder{}.Decode(data).
func Decode(data []byte) (*Value, error) {
	return Decoder{}.Decode(data)
}

// DecodePrefix is the same as Decode, but also returns the number of
// the bytes consumed by the element, so the caller may continue with
// the rest of the buffer.
func DecodePrefix(data []byte) (*Value, int, error) {
	return Decoder{}.DecodePrefix(data)
}

// Decoder is a bencode decoder with the configuration.
type Decoder struct {
	// MaxDepth is the maximum nesting depth of the lists and the
	// dictionaries in the input, which guards the decoder against the
	// stack exhaustion on an adversarially deep input.
	//
	// If it is not positive, use DefaultMaxDepth instead.
	MaxDepth int
}

// Decode parses the first bencoded element in data and returns it
// as a Value tree, ignoring any trailing bytes after the element.
//
// The decoded integer is accumulated in a signed 64-bit integer,
// so a value out of the int64 range wraps around silently.
//
// On a failure it returns a SyntaxError carrying the byte offset of
// the violation, which wraps ErrTruncated if the input ends where more
// bytes are expected, or ErrTooDeep if the nesting depth exceeds the
// maximum.
func (d Decoder) Decode(data []byte) (*Value, error) {
	v, _, err := d.DecodePrefix(data)
	return v, err
}

// DecodePrefix is the same as Decode, but also returns the number of
// the bytes consumed by the element.
func (d Decoder) DecodePrefix(data []byte) (*Value, int, error) {
	maxDepth := d.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	s := decodeState{data: data, maxDepth: maxDepth}
	v, err := s.decodeValue()
	if err != nil {
		return nil, 0, err
	}
	return v, s.off, nil
}

// decodeState is the cursor threaded through the recursive descent.
// Each production leaves off pointing one past the last byte it consumed.
type decodeState struct {
	data     []byte
	off      int
	depth    int
	maxDepth int
}

func (s *decodeState) peek() (byte, error) {
	if s.off >= len(s.data) {
		return 0, &SyntaxError{Offset: s.off, Err: ErrTruncated}
	}
	return s.data[s.off], nil
}

func (s *decodeState) decodeValue() (*Value, error) {
	c, err := s.peek()
	if err != nil {
		return nil, err
	}

	switch {
	case c == 'i':
		return s.decodeInteger()
	case c == 'l':
		return s.decodeList()
	case c == 'd':
		return s.decodeDict()
	case c >= '0' && c <= '9':
		return s.decodeByteString()
	}
	return nil, &SyntaxError{Offset: s.off, Msg: "invalid character"}
}

func (s *decodeState) decodeInteger() (*Value, error) {
	s.off++ // 'i'

	var negative bool
	if c, err := s.peek(); err != nil {
		return nil, err
	} else if c == '-' {
		negative = true
		s.off++
	}

	var n int64
	var ndigits int
	for {
		c, err := s.peek()
		if err != nil {
			return nil, err
		}
		if c == 'e' {
			break
		}
		if c < '0' || c > '9' {
			return nil, &SyntaxError{Offset: s.off, Msg: "expect a digit ('0'-'9')"}
		}
		// Out of the int64 range, the value wraps around silently.
		n = n*10 + int64(c-'0')
		ndigits++
		s.off++
	}
	if ndigits == 0 {
		return nil, &SyntaxError{Offset: s.off, Msg: "expect a digit ('0'-'9')"}
	}

	s.off++ // 'e'
	if negative {
		n = -n
	}
	return NewInteger(n), nil
}

func (s *decodeState) decodeByteString() (*Value, error) {
	var length int
	for {
		c, err := s.peek()
		if err != nil {
			return nil, err
		}
		if c == ':' {
			s.off++
			break
		}
		if c < '0' || c > '9' {
			return nil, &SyntaxError{Offset: s.off, Msg: "expect a digit ('0'-'9')"}
		}
		length = length*10 + int(c-'0')
		s.off++
	}

	// length < 0 means the declared length overflowed int.
	if length < 0 || length > len(s.data)-s.off {
		return nil, &SyntaxError{Offset: len(s.data), Err: ErrTruncated}
	}

	v := NewBytes(s.data[s.off : s.off+length])
	s.off += length
	return v, nil
}

func (s *decodeState) enter() error {
	if s.depth++; s.depth > s.maxDepth {
		return &SyntaxError{Offset: s.off, Err: ErrTooDeep}
	}
	return nil
}

func (s *decodeState) decodeList() (*Value, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	s.off++ // 'l'

	v := NewList()
	for {
		c, err := s.peek()
		if err != nil {
			return nil, err
		}
		if c == 'e' {
			s.off++
			break
		}

		elem, err := s.decodeValue()
		if err != nil {
			return nil, err
		}
		v.list = append(v.list, elem)
	}

	s.depth--
	return v, nil
}

func (s *decodeState) decodeDict() (*Value, error) {
	if err := s.enter(); err != nil {
		return nil, err
	}
	s.off++ // 'd'

	v := NewDict()
	for {
		c, err := s.peek()
		if err != nil {
			return nil, err
		}
		if c == 'e' {
			s.off++
			break
		}

		keyOff := s.off
		key, err := s.decodeValue()
		if err != nil {
			return nil, err
		}
		if key.kind != ByteString {
			return nil, &SyntaxError{Offset: keyOff, Msg: "the dictionary key is not a byte string"}
		}

		elem, err := s.decodeValue()
		if err != nil {
			return nil, err
		}

		// The duplicate key is overridden by the last occurrence.
		v.dict[string(key.str)] = elem
	}

	s.depth--
	return v, nil
}
