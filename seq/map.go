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
	"reflect"

	"github.com/botobag/lazyseq/internal/util"
	"github.com/botobag/lazyseq/iterator"
)

// MapValuesSequence wraps a Go map into a Sequence looping over the values in the map. Iteration
// order is unspecified, as it is for a Go range statement. Note that the wrapped map should not be
// modified during iteration.
//
// A map is not addressable: there's no meaningful position ordering to expose, so the wrapper
// stays at the Sequence tier.
type MapValuesSequence struct {
	// The map to be iterated; Must be a Go map.
	m interface{}
}

var _ SizedSequence = MapValuesSequence{}

// OfMapValues creates a MapValuesSequence wrapping m. It panics if m is not a Go map.
func OfMapValues(m interface{}) MapValuesSequence {
	if kind := reflect.ValueOf(m).Kind(); kind != reflect.Map {
		panic(&reflect.ValueError{
			Method: "github.com/botobag/lazyseq/seq.OfMapValues",
			Kind:   kind,
		})
	}
	return MapValuesSequence{m}
}

// Iterator implements Sequence. It returns an iterator looping over the map values.
func (s MapValuesSequence) Iterator() Iterator {
	return mapValuesIterator{util.NewImmutableMapIter(s.m)}
}

// Size implements SizedSequence. It returns the number of entries in the map.
func (s MapValuesSequence) Size() int {
	return reflect.ValueOf(s.m).Len()
}

// mapValuesIterator loops over the values in a map.
type mapValuesIterator struct {
	iter *util.ImmutableMapIter
}

// Next implements Iterator.
func (it mapValuesIterator) Next() (interface{}, error) {
	mapIter := it.iter
	if !mapIter.Next() {
		return nil, iterator.Done
	}
	return mapIter.Value().Interface(), nil
}
