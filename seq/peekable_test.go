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

package seq_test

import (
	"github.com/botobag/lazyseq/internal/testutil"
	"github.com/botobag/lazyseq/iterator"
	"github.com/botobag/lazyseq/seq"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("PeekableIterator", func() {
	It("iterates like the wrapped iterator when Peek is never used", func() {
		it := seq.NewPeekable(seq.OfSlice([]int{1, 2, 3}).Iterator())
		Expect(it).Should(testutil.IterateAs(1, 2, 3))
	})

	It("peeks without consuming", func() {
		it := seq.NewPeekable(seq.OfSlice([]int{1, 2}).Iterator())

		value, err := it.Peek()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal(1))

		// Peek is idempotent.
		value, err = it.Peek()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(value).Should(Equal(1))

		// Next returns the peeked element first.
		Expect(it).Should(testutil.IterateAs(1, 2))
	})

	It("returns Done from Peek at the end of the sequence", func() {
		it := seq.NewPeekable(seq.OfSlice([]int{}).Iterator())
		_, err := it.Peek()
		Expect(err).Should(Equal(iterator.Done))
		_, err = it.Next()
		Expect(err).Should(Equal(iterator.Done))
	})

	It("keeps reporting Done once exhausted", func() {
		it := seq.NewPeekable(seq.OfSlice([]int{1}).Iterator())
		Expect(it).Should(testutil.IterateAs(1))
		for i := 0; i < 2; i++ {
			_, err := it.Next()
			Expect(err).Should(Equal(iterator.Done))
		}
	})
})

var _ = Describe("Collect", func() {
	It("drains an iterator into a slice", func() {
		values, err := seq.Collect(seq.OfSlice([]string{"a", "b"}).Iterator())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(values).Should(Equal([]interface{}{"a", "b"}))
	})

	It("returns no elements for an empty sequence", func() {
		values, err := seq.Collect(seq.OfSlice([]string{}).Iterator())
		Expect(err).ShouldNot(HaveOccurred())
		Expect(values).Should(BeEmpty())
	})
})
