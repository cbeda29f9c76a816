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
	"github.com/botobag/lazyseq/seq"
)

// BidirectionalCollection is a flattened view whose positions can also be stepped backward. It
// requires the base to be bidirectional at construction time; the inner containers are probed for
// backward support as backward navigation reaches them, and an inner container that cannot step
// backward fails the precondition at that point.
//
// All forward operations are shared with Collection.
type BidirectionalCollection struct {
	Collection
}

var _ seq.BidirectionalCollection = (*BidirectionalCollection)(nil)

// NewBidirectionalCollection creates a flattened bidirectional view over base.
func NewBidirectionalCollection(base seq.BidirectionalCollection) *BidirectionalCollection {
	return &BidirectionalCollection{Collection{base: base}}
}

// IndexBefore implements seq.BidirectionalCollection. If i is the end index, the outer position
// is stepped back first; runs of empty inner containers are then walked over backward until a
// non-empty one supplies the predecessor position. It panics when i is the start index.
func (c *BidirectionalCollection) IndexBefore(i interface{}) interface{} {
	return c.stepBack(mustIndex(i))
}
