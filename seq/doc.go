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

// Package seq defines the capability contracts implemented by ordered containers and provides
// adapters that present ordinary Go values (slices, arrays and maps) through those contracts.
//
// There are three capability tiers:
//
//	- Sequence: can produce a fresh single-pass Iterator on demand;
//	- Collection: additionally supports addressable, multi-pass access through opaque index
//	  values with a start index, a past-the-end index, forward stepping, element lookup and
//	  index ordering;
//	- BidirectionalCollection: additionally supports backward stepping.
//
// Since Go doesn't have generics, elements and indices travel as interface{} values. The
// reflection-based adapters (OfSlice, OfMapValues) pay the reflection tax once per accessed
// element; callers holding concrete container types can implement the contracts directly to
// avoid it.
package seq
