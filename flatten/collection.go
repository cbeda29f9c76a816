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

	"github.com/botobag/lazyseq/seq"
)

// Collection is a lazy flattened view over an addressable base whose elements are themselves
// addressable. It implements seq.Collection; its indices are Index values and all elements are
// resolved by double indirection into the base, so the view itself stores nothing.
//
// Positions of outer elements whose inner container is empty never appear in an Index; the
// navigation methods skip over them in both directions. As a consequence StartIndex costs O(k)
// where k is the number of leading empty inner containers, not O(1).
type Collection struct {
	base seq.Collection
}

var _ seq.Collection = (*Collection)(nil)

// NewCollection creates a flattened collection view over base. Elements of base must be
// addressable containers (values implementing seq.Collection, or bare Go slices/arrays);
// navigation panics when it reaches an element that is not.
func NewCollection(base seq.Collection) *Collection {
	return &Collection{base: base}
}

// Iterator implements seq.Sequence with the same composite iterator used by Sequence.
func (c *Collection) Iterator() seq.Iterator {
	return newIterator(c.base)
}

// Size implements seq.SizedSequence. See Sequence.Size for why this is always 0.
func (c *Collection) Size() int {
	return 0
}

// StartIndex implements seq.Collection. It returns the position of the first element in the
// first non-empty inner container, or EndIndex when every inner container is empty (including
// when the base itself is empty). This scans over leading empty inner containers and is therefore
// not O(1).
func (c *Collection) StartIndex() interface{} {
	return c.firstIndexFrom(c.base.StartIndex())
}

// EndIndex implements seq.Collection. It returns the canonical past-the-end Index, which
// combines the base's own end index with no inner position.
func (c *Collection) EndIndex() interface{} {
	return newEndIndex(c.base.EndIndex())
}

// firstIndexFrom returns the index of the first element at or after the outer position outer,
// skipping outer elements whose inner container is empty.
func (c *Collection) firstIndexFrom(outer interface{}) Index {
	base := c.base
	end := base.EndIndex()
	for base.CompareIndex(outer, end) != 0 {
		inner := asCollection(base.At(outer))
		if start := inner.StartIndex(); inner.CompareIndex(start, inner.EndIndex()) != 0 {
			return newIndex(outer, start)
		}
		outer = base.IndexAfter(outer)
	}
	return newEndIndex(end)
}

// IndexAfter implements seq.Collection. It advances within the current inner container when
// possible and otherwise resumes the forward scan over the base, skipping empty inner containers,
// returning EndIndex when the base is exhausted. It panics when i is the end index.
func (c *Collection) IndexAfter(i interface{}) interface{} {
	index := mustIndex(i)
	if index.IsEnd() {
		panic("flatten: cannot advance the end index")
	}
	inner := asCollection(c.base.At(index.outer))
	if next := inner.IndexAfter(index.inner); inner.CompareIndex(next, inner.EndIndex()) != 0 {
		return newIndex(index.outer, next)
	}
	return c.firstIndexFrom(c.base.IndexAfter(index.outer))
}

// At implements seq.Collection. It resolves i into base[i.Outer()][i.Inner()]. i must be a valid,
// previously returned index of this collection other than EndIndex; subscripting the end index
// panics.
func (c *Collection) At(i interface{}) interface{} {
	index := mustIndex(i)
	if index.IsEnd() {
		panic("flatten: cannot subscript the end index")
	}
	return asCollection(c.base.At(index.outer)).At(index.inner)
}

// CompareIndex implements seq.Collection with lexicographic order: outer positions are compared
// first and inner positions break the tie. Two past-the-end indices compare equal.
func (c *Collection) CompareIndex(a, b interface{}) int {
	ia, ib := mustIndex(a), mustIndex(b)
	if d := c.base.CompareIndex(ia.outer, ib.outer); d != 0 {
		return d
	}
	// Same outer position. By construction a nil inner only pairs with the base's end index, so
	// either both indices are past-the-end or both carry an inner position.
	switch {
	case ia.IsEnd() && ib.IsEnd():
		return 0
	case ia.IsEnd():
		return 1
	case ib.IsEnd():
		return -1
	}
	inner := asCollection(c.base.At(ia.outer))
	return inner.CompareIndex(ia.inner, ib.inner)
}

// Distance returns the number of single steps from from to to: negative when to is ordered
// before from, zero when they are the same position. It walks one step at a time; inner container
// lengths are not assumed to be O(1) to query, so the cost is O(|result|) plus the number of
// empty inner containers stepped over.
func (c *Collection) Distance(from, to interface{}) int {
	start, end := mustIndex(from), mustIndex(to)
	if c.CompareIndex(start, end) > 0 {
		// Counting forward from to back up to from needs no backward capability and yields the
		// same magnitude.
		return -c.forwardDistance(end, start)
	}
	return c.forwardDistance(start, end)
}

func (c *Collection) forwardDistance(from, to Index) int {
	distance := 0
	for i := interface{}(from); c.CompareIndex(i, to) != 0; i = c.IndexAfter(i) {
		distance++
	}
	return distance
}

// IndexOffsetBy returns the position n single steps away from i: forward for positive n,
// backward for negative n. Stepping backward requires both the base and the traversed inner
// containers to be bidirectional; it panics otherwise, as it does when the offset runs past
// EndIndex or before StartIndex.
func (c *Collection) IndexOffsetBy(i interface{}, n int) interface{} {
	index := mustIndex(i)
	for ; n > 0; n-- {
		index = mustIndex(c.IndexAfter(index))
	}
	for ; n < 0; n++ {
		index = c.stepBack(index)
	}
	return index
}

// IndexOffsetByLimited behaves like IndexOffsetBy but gives up as soon as limit is reached
// before the requested offset completes, returning ok == false (and no position) in that case.
// The limit must lie in the direction of travel: a limit behind i for a positive n (or ahead of
// i for a negative n) cannot bound anything and panics.
func (c *Collection) IndexOffsetByLimited(i interface{}, n int, limit interface{}) (interface{}, bool) {
	var (
		index = mustIndex(i)
		bound = mustIndex(limit)
	)
	if d := c.CompareIndex(bound, index); n != 0 &&
		((n > 0 && d < 0) || (n < 0 && d > 0)) {
		panic(fmt.Sprintf(
			"flatten: limit %v is in the direction opposite to the offset %d from %v", bound, n, index))
	}
	for ; n > 0; n-- {
		if c.CompareIndex(index, bound) == 0 {
			return nil, false
		}
		index = mustIndex(c.IndexAfter(index))
	}
	for ; n < 0; n++ {
		if c.CompareIndex(index, bound) == 0 {
			return nil, false
		}
		index = c.stepBack(index)
	}
	return index, true
}

// stepBack returns the position one step before i. It first probes that the base supports
// backward stepping at all; a forward-only base fails the precondition immediately rather than
// silently producing a wrong position. Inner containers are probed as they are reached.
func (c *Collection) stepBack(i Index) Index {
	base, ok := c.base.(seq.BidirectionalCollection)
	if !ok {
		panic(fmt.Sprintf(
			"flatten: base collection %T does not support backward navigation", c.base))
	}

	var (
		outer    interface{}
		inner    interface{}
		innerCol seq.BidirectionalCollection
	)
	if i.IsEnd() {
		// Step the outer position back first; on an empty base this trips the start-index check
		// below immediately.
		outer = c.backOrPanic(base, i.outer)
		innerCol = asBidirectional(base.At(outer))
		inner = innerCol.EndIndex()
	} else {
		outer = i.outer
		innerCol = asBidirectional(base.At(outer))
		inner = i.inner
	}

	// While sitting at the start of the current inner container, keep stepping the outer position
	// back and restart from that container's end. This walks backward over runs of empty inner
	// containers symmetrically to the forward scan.
	for innerCol.CompareIndex(inner, innerCol.StartIndex()) == 0 {
		outer = c.backOrPanic(base, outer)
		innerCol = asBidirectional(base.At(outer))
		inner = innerCol.EndIndex()
	}
	return newIndex(outer, innerCol.IndexBefore(inner))
}

func (c *Collection) backOrPanic(base seq.BidirectionalCollection, outer interface{}) interface{} {
	if base.CompareIndex(outer, base.StartIndex()) == 0 {
		panic("flatten: cannot step before the start index")
	}
	return base.IndexBefore(outer)
}

// ForEach visits every inner element in outer-then-inner order without constructing composite
// Index values, delegating to each inner container's own traversal. Prefer it over index-based
// loops whenever the position of an element is not needed. An error returned by body aborts the
// traversal and is propagated verbatim.
func (c *Collection) ForEach(body func(interface{}) error) error {
	return forEachFlattened(c.base, body)
}
