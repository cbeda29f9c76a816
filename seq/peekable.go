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
	"github.com/eapache/queue"
)

// PeekableIterator decorates an Iterator with lookahead. Peek fetches elements from the
// underlying iterator into an internal ring buffer without consuming them; Next drains the buffer
// before pulling from the underlying iterator again.
//
// A PeekableIterator takes ownership of the wrapped iterator. The wrapped iterator must not be
// advanced by anyone else afterwards.
type PeekableIterator struct {
	it Iterator

	// Elements fetched by PeekAhead but not yet returned by Next.
	buffered *queue.Queue

	// First error returned by the underlying iterator (including iterator.Done); onwards the
	// underlying iterator is never touched again.
	err error
}

var _ Iterator = (*PeekableIterator)(nil)

// NewPeekable creates a PeekableIterator wrapping it.
func NewPeekable(it Iterator) *PeekableIterator {
	return &PeekableIterator{
		it:       it,
		buffered: queue.New(),
	}
}

// Peek returns the element that the next call to Next will return, without consuming it. It
// returns iterator.Done when the underlying iterator is exhausted.
func (p *PeekableIterator) Peek() (interface{}, error) {
	if p.buffered.Length() > 0 {
		return p.buffered.Peek(), nil
	}
	if p.err != nil {
		return nil, p.err
	}
	value, err := p.it.Next()
	if err != nil {
		p.err = err
		return nil, err
	}
	p.buffered.Add(value)
	return value, nil
}

// Next implements Iterator.
func (p *PeekableIterator) Next() (interface{}, error) {
	if p.buffered.Length() > 0 {
		return p.buffered.Remove(), nil
	}
	if p.err != nil {
		return nil, p.err
	}
	value, err := p.it.Next()
	if err != nil {
		p.err = err
		return nil, err
	}
	return value, nil
}
