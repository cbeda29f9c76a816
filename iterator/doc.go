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

// Package iterator defines the iteration protocol shared by every sequence and collection in this
// project. The protocol draws significant inspiration from the Iterator Guidelines established for
// Google Cloud Client Libraries for Go [0].
//
// An iterator has just one method Next for fetching individual elements. Next returns:
//
//  - (value, nil): the next element in the sequence;
//  - (<ignored>, iterator.Done): the iterator is past the end of the sequence;
//  - (<ignored>, <error>): an error occurred while fetching the next element.
//
// Once Next returns iterator.Done (or any other error), every subsequent call must keep returning
// the same error; an iterator never resumes producing elements after it has reported exhaustion.
//
// The consuming loop therefore always looks like,
//
//	it := s.Iterator()
//	for {
//		value, err := it.Next()
//		if err == iterator.Done {
//			break
//		} else if err != nil {
//			return err
//		}
//		process(value)
//	}
//
// An "iterable" value provides a method named Iterator which returns a fresh iterator positioned
// at its first element (see seq.Sequence). Each call yields an independent iterator; iterators are
// single-pass and are never restartable.
//
// [0]: https://github.com/googleapis/google-cloud-go/wiki/Iterator-Guidelines
package iterator
