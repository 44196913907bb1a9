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

package bencode_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xgfone/bencode"
)

func TestDecodeInteger(t *testing.T) {
	tests := []struct {
		input  string
		expect int64
	}{
		{"i42e", 42},
		{"i-42e", -42},
		{"i0e", 0},
		{"i-0e", 0},  // lenient: minus zero decodes to zero
		{"i007e", 7}, // lenient: the redundant leading zeros are accepted
		{"i9223372036854775807e", math.MaxInt64},
		{"i-9223372036854775808e", math.MinInt64},
		// Out of the int64 range, the value wraps around.
		{"i9223372036854775808e", math.MinInt64},
	}

	for _, test := range tests {
		v, err := bencode.Decode([]byte(test.input))
		require.NoError(t, err, test.input)
		i, err := v.Int64()
		require.NoError(t, err, test.input)
		assert.Equal(t, test.expect, i, test.input)
	}
}

func TestDecodeByteString(t *testing.T) {
	v, err := bencode.Decode([]byte("4:spam"))
	require.NoError(t, err)
	b, err := v.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("spam"), b)

	v, err = bencode.Decode([]byte("0:"))
	require.NoError(t, err)
	b, err = v.Bytes()
	require.NoError(t, err)
	assert.Empty(t, b)

	// The content bytes are raw and not inspected.
	v, err = bencode.Decode([]byte("3:\x00ie"))
	require.NoError(t, err)
	b, err = v.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 'i', 'e'}, b)
}

func TestDecodeList(t *testing.T) {
	v, err := bencode.Decode([]byte("le"))
	require.NoError(t, err)
	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	v, err = bencode.Decode([]byte("li1ei2ee"))
	require.NoError(t, err)
	assert.True(t, v.Equal(bencode.NewList(bencode.NewInteger(1), bencode.NewInteger(2))))
}

func TestDecodeDict(t *testing.T) {
	v, err := bencode.Decode([]byte("de"))
	require.NoError(t, err)
	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	// d4:spamli-42e4:spamee is the dict {"spam": [-42, "spam"]}.
	v, err = bencode.Decode([]byte("d4:spamli-42e4:spamee"))
	require.NoError(t, err)
	require.Equal(t, bencode.Dict, v.Kind())

	list, err := v.Field("spam")
	require.NoError(t, err)
	require.Equal(t, bencode.List, list.Kind())
	n, err = list.Len()
	require.NoError(t, err)
	require.Equal(t, 2, n)

	elem, err := list.Index(0)
	require.NoError(t, err)
	i, err := elem.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(-42), i)

	elem, err = list.Index(1)
	require.NoError(t, err)
	b, err := elem.Bytes()
	require.NoError(t, err)
	assert.Equal(t, []byte("spam"), b)
}

func TestDecodeDictDuplicateKeys(t *testing.T) {
	v, err := bencode.Decode([]byte("d1:ai1e1:ai2ee"))
	require.NoError(t, err)

	n, err := v.Len()
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	field, err := v.Field("a")
	require.NoError(t, err)
	i, err := field.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(2), i) // the last occurrence wins
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		input  string
		offset int
		msg    string
	}{
		{"x", 0, "invalid character"},
		{"i4x2e", 2, "expect a digit ('0'-'9')"},
		{"i--42e", 2, "expect a digit ('0'-'9')"},
		{"ie", 1, "expect a digit ('0'-'9')"},
		{"4x:spam", 1, "expect a digit ('0'-'9')"},
		{"di1ei2ee", 1, "the dictionary key is not a byte string"},
		{"lxe", 1, "invalid character"},
	}

	for _, test := range tests {
		_, err := bencode.Decode([]byte(test.input))
		var serr *bencode.SyntaxError
		require.ErrorAs(t, err, &serr, test.input)
		assert.Equal(t, test.offset, serr.Offset, test.input)
		assert.Equal(t, test.msg, serr.Msg, test.input)
		assert.NotErrorIs(t, err, bencode.ErrTruncated, test.input)
	}
}

func TestDecodeTruncated(t *testing.T) {
	for _, input := range []string{
		"", "i", "i42", "3:sp", "4:", "l", "li1e", "d", "d4:spam", "d4:spami1e",
	} {
		_, err := bencode.Decode([]byte(input))
		require.ErrorIs(t, err, bencode.ErrTruncated, input)

		var serr *bencode.SyntaxError
		require.ErrorAs(t, err, &serr, input)
		assert.LessOrEqual(t, serr.Offset, len(input), input)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	// The trailing bytes after the first element are ignored.
	v, err := bencode.Decode([]byte("i42exyz"))
	require.NoError(t, err)
	i, err := v.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(42), i)

	data := []byte("4:spami1e")
	v, n, err := bencode.DecodePrefix(data)
	require.NoError(t, err)
	require.Equal(t, 6, n)
	assert.Equal(t, bencode.ByteString, v.Kind())

	// The rest of the buffer is decodable separately.
	v, err = bencode.Decode(data[n:])
	require.NoError(t, err)
	i, err = v.Int64()
	require.NoError(t, err)
	assert.Equal(t, int64(1), i)
}

func TestDecodeMaxDepth(t *testing.T) {
	deep := func(depth int) []byte {
		return []byte(strings.Repeat("l", depth) + strings.Repeat("e", depth))
	}

	decoder := bencode.Decoder{MaxDepth: 8}
	_, err := decoder.Decode(deep(8))
	require.NoError(t, err)

	_, err = decoder.Decode(deep(9))
	require.ErrorIs(t, err, bencode.ErrTooDeep)

	var serr *bencode.SyntaxError
	require.ErrorAs(t, err, &serr)
	assert.Equal(t, 8, serr.Offset)

	// The dict nesting is limited as well.
	_, err = bencode.Decoder{MaxDepth: 1}.Decode([]byte("d1:kdee"))
	assert.ErrorIs(t, err, bencode.ErrTooDeep)

	// The default limit still rejects an adversarially deep input.
	_, err = bencode.Decode(deep(bencode.DefaultMaxDepth + 1))
	assert.ErrorIs(t, err, bencode.ErrTooDeep)
}
