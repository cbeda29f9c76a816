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

package seq

import (
	"github.com/botobag/lazyseq/iterator"
)

// An Iterator provides serial access to the elements in a sequence. It follows the semantics
// defined by iterator package [0] which returns:
//
//	- (value, nil): return the next value in sequence.
//	- (<ignored>, iterator.Done): the iterator is past the end of the iterated sequence.
//	- (<ignored>, <error>): there's an error occurred when fetching the next value in sequence.
//
// [0]: github.com/botobag/lazyseq/iterator
type Iterator interface {
	Next() (interface{}, error)
}

// A Sequence defines iteration behavior. Each call to Iterator returns a fresh iterator positioned
// at the first element. Iterators are single-pass; a Sequence whose elements can be visited more
// than once should implement Collection instead.
type Sequence interface {
	// Iterator returns an iterator to loop over its values.
	Iterator() Iterator
}

// SizedSequence provides hint about size of a sequence.
type SizedSequence interface {
	Sequence

	// Size provides hint about number of values in the sequence. The hint may underestimate but
	// must never overestimate.
	Size() int
}

// A Collection is a Sequence that additionally supports addressable, multi-pass access to its
// elements. Elements are located by opaque position values ("indices") which only have meaning to
// the collection that produced them.
//
// Valid indices form a range from StartIndex up to, but not including, EndIndex. Every index in
// the range other than EndIndex addresses exactly one element via At; EndIndex is the canonical
// past-the-end position and is never dereferenceable.
type Collection interface {
	Sequence

	// StartIndex returns the position of the first element, or the same position as EndIndex when
	// the collection is empty.
	StartIndex() interface{}

	// EndIndex returns the past-the-end position; the position one greater than the last valid
	// index.
	EndIndex() interface{}

	// IndexAfter returns the position immediately after i. i must be a valid index of this
	// collection other than EndIndex.
	IndexAfter(i interface{}) interface{}

	// At returns the element at position i. i must be a valid index of this collection other than
	// EndIndex.
	At(i interface{}) interface{}

	// CompareIndex orders two indices of this collection: the result is negative if a is ordered
	// before b, zero if the two positions are the same, and positive if a is ordered after b.
	CompareIndex(a, b interface{}) int
}

// A BidirectionalCollection is a Collection whose indices can also be stepped backward.
type BidirectionalCollection interface {
	Collection

	// IndexBefore returns the position immediately before i. i must be a valid index of this
	// collection other than StartIndex.
	IndexBefore(i interface{}) interface{}
}

// ForEach applies body to every remaining element produced by it, in order. An error returned by
// body stops the iteration immediately and is propagated to the caller verbatim; so is any error
// (other than iterator.Done) reported by the iterator itself.
func ForEach(it Iterator, body func(interface{}) error) error {
	for {
		value, err := it.Next()
		if err == iterator.Done {
			return nil
		} else if err != nil {
			return err
		}
		if err := body(value); err != nil {
			return err
		}
	}
}

// Collect drains it and returns the collected elements. It is primarily useful in tests; it
// defeats the purpose of a lazy sequence everywhere else.
func Collect(it Iterator) ([]interface{}, error) {
	var values []interface{}
	err := ForEach(it, func(value interface{}) error {
		values = append(values, value)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return values, nil
}
