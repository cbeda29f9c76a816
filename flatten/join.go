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

// Join creates a lazy flattened view over base, picking the strongest capability tier base
// supports: a BidirectionalCollection for a bidirectional base, a Collection for an addressable
// base and a Sequence for anything that can only be iterated. Bare Go container values are
// adapted first: slices and arrays become addressable bases via seq.OfSlice, maps become
// forward-only bases over their values via seq.OfMapValues. Join panics when base is none of the
// above.
//
// The returned view can be inspected with a type assertion to reach the navigation methods of
// the stronger tiers.
func Join(base interface{}) seq.Sequence {
	switch b := adaptBase(base).(type) {
	case seq.BidirectionalCollection:
		return NewBidirectionalCollection(b)
	case seq.Collection:
		return NewCollection(b)
	default:
		return NewSequence(b)
	}
}

func adaptBase(base interface{}) seq.Sequence {
	if s, ok := base.(seq.Sequence); ok {
		return s
	}
	switch reflect.ValueOf(base).Kind() {
	case reflect.Slice, reflect.Array:
		return seq.OfSlice(base)
	case reflect.Map:
		return seq.OfMapValues(base)
	}
	panic(fmt.Sprintf("flatten: cannot join %v (%[1]T): not a container", base))
}
