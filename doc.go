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

// Package bencode implements encoding and decoding of bencoded data,
// which is used by the BitTorrent protocol for the metainfo file and
// the tracker or DHT messages.
//
// A bencoded element is represented in memory as a Value, which is one
// of the integer, the byte string, the list or the dictionary. Decode
// parses a complete in-memory byte buffer into a Value tree, and Encode
// renders a Value tree back to bytes. Encode always emits the canonical
// form, that's, all the dictionary keys are sorted bytewise in the
// ascending order, so the encoded bytes of two structurally equal values
// are equal and may be used for the hash computation.
//
// Decode and Encode are pure functions without any shared state, so they
// may be called concurrently. A Value tree, however, is not synchronized
// internally, and must not be mutated by several goroutines at the same
// time without the external locking.
package bencode
