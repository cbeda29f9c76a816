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
	"fmt"
	"reflect"

	"github.com/botobag/lazyseq/iterator"
)

// SliceCollection wraps a Go slice (or array) into a BidirectionalCollection. Indices are the
// ordinary int element offsets; EndIndex is the slice length. Note that the wrapped slice should
// not be modified during use.
type SliceCollection struct {
	// The slice to be wrapped; Must be a Go slice or array.
	v reflect.Value
}

var _ BidirectionalCollection = SliceCollection{}

// OfSlice creates a SliceCollection wrapping s. It panics if s is not a Go slice or array.
func OfSlice(s interface{}) SliceCollection {
	v := reflect.ValueOf(s)
	// Mimic reflect.mustBe(Slice).
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		panic(&reflect.ValueError{
			Method: "github.com/botobag/lazyseq/seq.OfSlice",
			Kind:   v.Kind(),
		})
	}
	return SliceCollection{v}
}

// Iterator implements Sequence. Each call returns a fresh iterator positioned at element 0.
func (c SliceCollection) Iterator() Iterator {
	return &sliceIterator{v: c.v}
}

// Size implements SizedSequence. It returns the exact number of elements in the wrapped slice.
func (c SliceCollection) Size() int {
	return c.v.Len()
}

// StartIndex implements Collection.
func (c SliceCollection) StartIndex() interface{} {
	return 0
}

// EndIndex implements Collection.
func (c SliceCollection) EndIndex() interface{} {
	return c.v.Len()
}

// IndexAfter implements Collection. It panics when i is the end index.
func (c SliceCollection) IndexAfter(i interface{}) interface{} {
	offset := c.offset(i)
	if offset >= c.v.Len() {
		panic(fmt.Sprintf("seq: cannot advance slice index %d past the end index %d", offset, c.v.Len()))
	}
	return offset + 1
}

// IndexBefore implements BidirectionalCollection. It panics when i is the start index.
func (c SliceCollection) IndexBefore(i interface{}) interface{} {
	offset := c.offset(i)
	if offset <= 0 {
		panic("seq: cannot step slice index before the start index")
	}
	return offset - 1
}

// At implements Collection. It panics when i is out of the valid index range.
func (c SliceCollection) At(i interface{}) interface{} {
	return c.v.Index(c.offset(i)).Interface()
}

// CompareIndex implements Collection.
func (c SliceCollection) CompareIndex(a, b interface{}) int {
	return c.offset(a) - c.offset(b)
}

// ForEach visits every element in order without going through an index or iterator. An error
// returned by body stops the traversal and is propagated verbatim.
func (c SliceCollection) ForEach(body func(interface{}) error) error {
	for i, size := 0, c.v.Len(); i < size; i++ {
		if err := body(c.v.Index(i).Interface()); err != nil {
			return err
		}
	}
	return nil
}

func (c SliceCollection) offset(i interface{}) int {
	offset, ok := i.(int)
	if !ok {
		panic(fmt.Sprintf("seq: %v (%[1]T) is not an index of a SliceCollection", i))
	}
	return offset
}

// sliceIterator loops over the elements in a slice.
type sliceIterator struct {
	v reflect.Value
	// Offset of the element returned by the next Next call.
	i int
}

// Next implements Iterator.
func (it *sliceIterator) Next() (interface{}, error) {
	if it.i >= it.v.Len() {
		return nil, iterator.Done
	}
	value := it.v.Index(it.i).Interface()
	it.i++
	return value, nil
}
