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

// Sequence is a lazy flattened view over a forward-only base. It supports single-pass iteration
// and nothing else; wrap a seq.Collection with NewCollection to get addressable positions.
//
// A Sequence is immutable: it holds the base and never mutates it, and the same Sequence can hand
// out any number of independent iterators.
type Sequence struct {
	base seq.Sequence
}

var _ seq.SizedSequence = (*Sequence)(nil)

// NewSequence creates a flattened view over base. Elements of base must be containers acceptable
// to the seq package (values implementing seq.Sequence, or bare Go slices/arrays); an element
// that is not a container makes iteration panic when it is reached.
func NewSequence(base seq.Sequence) *Sequence {
	return &Sequence{base: base}
}

// Iterator implements seq.Sequence. Each call returns a fresh Iterator positioned before the
// first inner element.
func (s *Sequence) Iterator() seq.Iterator {
	return newIterator(s.base)
}

// Size implements seq.SizedSequence. It always reports 0: any tighter lower bound would require
// asking every inner container for its length, which is exactly the materialization this lazy
// view exists to avoid.
func (s *Sequence) Size() int {
	return 0
}

// ForEach visits every inner element in outer-then-inner order. An error returned by body stops
// the traversal immediately and is propagated to the caller verbatim.
func (s *Sequence) ForEach(body func(interface{}) error) error {
	return forEachFlattened(s.base, body)
}

// forEachFlattened drives the optimized traversal shared by Sequence and Collection: it loops
// over the outer container and delegates each inner container to its own ForEach when it has one,
// falling back to plain iteration otherwise. No composite Index values are built along the way.
func forEachFlattened(base seq.Sequence, body func(interface{}) error) error {
	it := base.Iterator()
	for {
		element, err := it.Next()
		if err == iterator.Done {
			return nil
		} else if err != nil {
			return err
		}

		inner := asSequence(element)
		if fast, ok := inner.(forEacher); ok {
			err = fast.ForEach(body)
		} else {
			err = seq.ForEach(inner.Iterator(), body)
		}
		if err != nil {
			return err
		}
	}
}

// forEacher is implemented by containers that can traverse their own elements faster than an
// iterator would (e.g., seq.SliceCollection and the flattened views themselves).
type forEacher interface {
	ForEach(body func(interface{}) error) error
}
