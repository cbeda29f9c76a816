/**
 * Copyright (c) 2019, The Artemis Authors.
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

package flatten

import (
	"encoding/json"

	"github.com/botobag/lazyseq/iterator"
	"github.com/botobag/lazyseq/seq"

	jsoniter "github.com/json-iterator/go"
)

var (
	_ json.Marshaler = (*Sequence)(nil)
	_ json.Marshaler = (*Collection)(nil)
)

// MarshalJSON encodes the flattened elements as a single JSON array. Elements are streamed into
// the encoder one at a time; the flattened contents are never gathered into an intermediate
// slice.
func (s *Sequence) MarshalJSON() ([]byte, error) {
	return marshalFlattened(s)
}

// MarshalJSON encodes the flattened elements as a single JSON array. See Sequence.MarshalJSON.
func (c *Collection) MarshalJSON() ([]byte, error) {
	return marshalFlattened(c)
}

func marshalFlattened(s seq.Sequence) ([]byte, error) {
	stream := jsoniter.ConfigCompatibleWithStandardLibrary.BorrowStream(nil)
	defer jsoniter.ConfigCompatibleWithStandardLibrary.ReturnStream(stream)

	stream.WriteArrayStart()
	it := s.Iterator()
	for numElements := 0; ; numElements++ {
		value, err := it.Next()
		if err == iterator.Done {
			break
		} else if err != nil {
			return nil, err
		}
		if numElements > 0 {
			stream.WriteMore()
		}
		stream.WriteVal(value)
	}
	stream.WriteArrayEnd()

	if err := stream.Error; err != nil {
		return nil, err
	}

	// The stream buffer is recycled on return; hand the caller a copy.
	buf := stream.Buffer()
	encoded := make([]byte, len(buf))
	copy(encoded, buf)
	return encoded, nil
}
