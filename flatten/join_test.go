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

package flatten_test

import (
	"github.com/botobag/lazyseq/flatten"
	"github.com/botobag/lazyseq/internal/testutil"
	"github.com/botobag/lazyseq/seq"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Join", func() {
	It("flattens a bare nested slice into a bidirectional view", func() {
		s := flatten.Join([][]int{{1, 2}, {}, {3}})
		Expect(s).Should(testutil.IterateAs(1, 2, 3))
		Expect(s).Should(BeAssignableToTypeOf(&flatten.BidirectionalCollection{}))
	})

	It("mirrors the capability tier of the base", func() {
		base := seq.OfSlice([][]int{{1}})

		Expect(flatten.Join(base)).Should(BeAssignableToTypeOf(&flatten.BidirectionalCollection{}))
		Expect(flatten.Join(forwardOnly(base))).Should(BeAssignableToTypeOf(&flatten.Collection{}))
		Expect(flatten.Join(iterateOnly(base))).Should(BeAssignableToTypeOf(&flatten.Sequence{}))
	})

	It("flattens the values of a bare map as a forward-only view", func() {
		s := flatten.Join(map[string][]int{"a": {1, 2}, "b": {3}})
		Expect(s).Should(BeAssignableToTypeOf(&flatten.Sequence{}))
		Expect(s).Should(testutil.IterateAsStringsInAnyOrder([]string{"1", "2", "3"}))
	})

	It("panics for a value that is not a container", func() {
		Expect(func() {
			flatten.Join(42)
		}).Should(Panic())
	})
})
