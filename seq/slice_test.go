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
	"errors"

	"github.com/botobag/lazyseq/internal/testutil"
	"github.com/botobag/lazyseq/seq"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SliceCollection", func() {
	It("iterates elements in order", func() {
		c := seq.OfSlice([]int{1, 2, 3})
		Expect(c.Size()).Should(Equal(3))
		Expect(c.Iterator()).Should(testutil.IterateAs(1, 2, 3))
	})

	It("hands out independent iterators", func() {
		c := seq.OfSlice([]string{"a", "b"})
		Expect(c.Iterator()).Should(testutil.IterateAs("a", "b"))
		Expect(c.Iterator()).Should(testutil.IterateAs("a", "b"))
	})

	It("wraps an empty slice into an empty collection", func() {
		c := seq.OfSlice([]int{})
		Expect(c.Iterator()).Should(testutil.IterateAs())
		Expect(c.CompareIndex(c.StartIndex(), c.EndIndex())).Should(BeZero())
	})

	It("panics when wrapping a non-slice value", func() {
		Expect(func() {
			seq.OfSlice(42)
		}).Should(Panic())
	})

	Describe("index navigation", func() {
		c := seq.OfSlice([]int{10, 20, 30})

		It("addresses elements between the start and end indices", func() {
			i := c.StartIndex()
			Expect(c.At(i)).Should(Equal(10))

			i = c.IndexAfter(i)
			Expect(c.At(i)).Should(Equal(20))

			i = c.IndexAfter(i)
			Expect(c.At(i)).Should(Equal(30))

			i = c.IndexAfter(i)
			Expect(c.CompareIndex(i, c.EndIndex())).Should(BeZero())
		})

		It("steps indices backward", func() {
			i := c.IndexBefore(c.EndIndex())
			Expect(c.At(i)).Should(Equal(30))
			Expect(c.CompareIndex(c.IndexBefore(i), c.StartIndex())).ShouldNot(BeZero())
			Expect(c.CompareIndex(c.IndexBefore(c.IndexBefore(i)), c.StartIndex())).Should(BeZero())
		})

		It("orders indices by position", func() {
			Expect(c.CompareIndex(c.StartIndex(), c.EndIndex())).Should(BeNumerically("<", 0))
			Expect(c.CompareIndex(c.EndIndex(), c.StartIndex())).Should(BeNumerically(">", 0))
		})

		It("panics when advancing the end index", func() {
			Expect(func() {
				c.IndexAfter(c.EndIndex())
			}).Should(Panic())
		})

		It("panics when stepping before the start index", func() {
			Expect(func() {
				c.IndexBefore(c.StartIndex())
			}).Should(Panic())
		})
	})

	Describe("ForEach", func() {
		It("visits every element in order", func() {
			var visited []interface{}
			err := seq.OfSlice([]int{1, 2, 3}).ForEach(func(value interface{}) error {
				visited = append(visited, value)
				return nil
			})
			Expect(err).ShouldNot(HaveOccurred())
			Expect(visited).Should(Equal([]interface{}{1, 2, 3}))
		})

		It("propagates the error returned by the body and stops", func() {
			errStop := errors.New("stop")
			var visited []interface{}
			err := seq.OfSlice([]int{1, 2, 3}).ForEach(func(value interface{}) error {
				visited = append(visited, value)
				if len(visited) == 2 {
					return errStop
				}
				return nil
			})
			Expect(err).Should(MatchError(errStop))
			Expect(visited).Should(Equal([]interface{}{1, 2}))
		})
	})
})
