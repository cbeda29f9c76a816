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
	"fmt"
)

// Index locates an element in a flattened Collection. It combines the position of an outer
// element within the base collection with a position inside that inner container.
//
// Index values are only produced by the navigation methods of Collection (StartIndex, EndIndex,
// IndexAfter, ...); there's no way to construct a dereferenceable Index by hand. Two Index values
// produced by the same Collection compare equal with == exactly when they address the same
// position.
type Index struct {
	// Position of the selected element in the base collection; when inner is nil, this is the
	// base's own past-the-end position.
	outer interface{}

	// Position within the inner container selected by outer. nil if and only if this Index is
	// the past-the-end index of the flattened view. No other combination with a nil inner is
	// representable: the constructors below are the only way to build an Index.
	inner interface{}
}

// newIndex creates an Index addressing the element at position inner within the inner container
// at position outer.
func newIndex(outer, inner interface{}) Index {
	if inner == nil {
		panic("flatten: an element index requires an inner position")
	}
	return Index{outer: outer, inner: inner}
}

// newEndIndex creates the canonical past-the-end Index. outer must be the base collection's end
// index.
func newEndIndex(outer interface{}) Index {
	return Index{outer: outer}
}

// Outer returns the position of the selected inner container within the base collection. For the
// past-the-end index it returns the base's end index.
func (i Index) Outer() interface{} {
	return i.outer
}

// Inner returns the position of the selected element within its inner container, or nil for the
// past-the-end index.
func (i Index) Inner() interface{} {
	return i.inner
}

// IsEnd reports whether i is the past-the-end index of the flattened view it was produced by.
func (i Index) IsEnd() bool {
	return i.inner == nil
}

// String implements fmt.Stringer to aid debugging and test failure messages.
func (i Index) String() string {
	if i.IsEnd() {
		return fmt.Sprintf("Index(end at %v)", i.outer)
	}
	return fmt.Sprintf("Index(%v, %v)", i.outer, i.inner)
}

// mustIndex asserts that a caller-supplied position is an Index produced by a flattened view.
func mustIndex(i interface{}) Index {
	index, ok := i.(Index)
	if !ok {
		panic(fmt.Sprintf("flatten: %v (%[1]T) is not an index of a flattened collection", i))
	}
	return index
}
