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

// Package flatten provides lazy views that present a container of containers as one flat
// container, enumerating all inner elements in outer-then-inner order. No elements are ever
// copied; every access dereferences into the wrapped base.
//
// The view mirrors the capability tier of its base. Wrapping a seq.Sequence yields a Sequence
// which only supports single-pass iteration. Wrapping a seq.Collection yields a Collection whose
// positions are Index values combining an outer position with a position inside the selected
// inner container; a Collection supports forward navigation, offset arithmetic and distance
// computation. When both the base and its elements step backward, BidirectionalCollection adds
// backward navigation as well. Join picks the strongest tier its argument supports.
//
// Empty inner containers are skipped transparently in every direction; they contribute no
// elements and no positions. The cost shows up instead in navigation: stepping over a run of k
// empty inner containers is O(k), and StartIndex of a collection whose base begins with empty
// inner containers is not O(1).
//
// Inner elements may be anything the seq package can present as a container: values implementing
// the seq contracts are used as-is and bare Go slices or arrays are adapted on the fly.
package flatten
