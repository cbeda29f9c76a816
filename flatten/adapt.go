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
	"reflect"

	"github.com/botobag/lazyseq/seq"
)

// asSequence presents an inner element of the base as a Sequence. Values implementing
// seq.Sequence are used as-is; bare Go slices and arrays are adapted via seq.OfSlice. Anything
// else is a fatal precondition: a flattened view only makes sense over a container of containers.
func asSequence(element interface{}) seq.Sequence {
	if s, ok := element.(seq.Sequence); ok {
		return s
	}
	return sliceOrPanic(element)
}

// asCollection is the addressable counterpart of asSequence. The element must either implement
// seq.Collection or be a bare Go slice or array.
func asCollection(element interface{}) seq.Collection {
	if c, ok := element.(seq.Collection); ok {
		return c
	}
	return sliceOrPanic(element)
}

// asBidirectional probes the element for backward navigation support and panics if there's none.
func asBidirectional(element interface{}) seq.BidirectionalCollection {
	c, ok := asCollection(element).(seq.BidirectionalCollection)
	if !ok {
		panic(fmt.Sprintf(
			"flatten: inner container %v (%[1]T) does not support backward navigation", element))
	}
	return c
}

func sliceOrPanic(element interface{}) seq.SliceCollection {
	if kind := reflect.ValueOf(element).Kind(); kind != reflect.Slice && kind != reflect.Array {
		panic(fmt.Sprintf("flatten: element %v (%[1]T) is not a container", element))
	}
	return seq.OfSlice(element)
}
