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
	"github.com/botobag/lazyseq/iterator"
	"github.com/botobag/lazyseq/seq"
)

// Iterator is the single-pass iterator over the elements of a flattened view. It owns an iterator
// over the base sequence and, at any moment, at most one iterator over the inner container it is
// currently draining.
//
// An Iterator is a plain value: it is mutated only by its own Next calls and must not be shared
// between goroutines without external synchronization.
type Iterator struct {
	// Iterator over the outer base sequence.
	outer seq.Iterator

	// Iterator over the inner container currently being drained; nil before the first outer
	// element has been pulled and after each inner container is exhausted.
	inner seq.Iterator

	// Terminal state: iterator.Done once the base is exhausted, or the first error reported by
	// either level. Set once and never cleared; the base is not touched again afterwards.
	err error
}

var _ seq.Iterator = (*Iterator)(nil)

// newIterator creates an Iterator draining base.
func newIterator(base seq.Sequence) *Iterator {
	return &Iterator{outer: base.Iterator()}
}

// Next implements seq.Iterator. It returns the next inner element in outer-then-inner order,
// skipping any run of empty inner containers in a single call (O(k) for a run of length k).
func (it *Iterator) Next() (interface{}, error) {
	if it.err != nil {
		return nil, it.err
	}
	for {
		if it.inner != nil {
			value, err := it.inner.Next()
			if err == nil {
				return value, nil
			} else if err != iterator.Done {
				it.err = err
				return nil, err
			}
			// The current inner container is exhausted; refill from the outer level.
			it.inner = nil
		}

		element, err := it.outer.Next()
		if err != nil {
			// Either iterator.Done or a base failure; terminal in both cases.
			it.err = err
			return nil, err
		}
		it.inner = asSequence(element).Iterator()
	}
}
