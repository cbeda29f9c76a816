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
	"encoding/json"
	"errors"

	"github.com/botobag/lazyseq/flatten"
	"github.com/botobag/lazyseq/seq"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("JSON encoding", func() {
	It("encodes a flattened sequence as one JSON array", func() {
		s := flatten.NewSequence(seq.OfSlice([][]int{{1, 2}, {}, {3}}))
		encoded, err := json.Marshal(s)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(encoded).Should(MatchJSON(`[1, 2, 3]`))
	})

	It("encodes a flattened collection as one JSON array", func() {
		c := flatten.NewCollection(seq.OfSlice([][]string{{"a"}, {"b", "c"}}))
		encoded, err := json.Marshal(c)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(encoded).Should(MatchJSON(`["a", "b", "c"]`))
	})

	It("encodes an empty view as an empty JSON array", func() {
		s := flatten.NewSequence(seq.OfSlice([][]int{{}, {}}))
		encoded, err := json.Marshal(s)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(encoded).Should(MatchJSON(`[]`))
	})

	It("reports a base failure instead of emitting partial output", func() {
		s := flatten.NewSequence(failingSequence{
			values: []interface{}{[]int{1}},
			err:    errors.New("base exploded"),
		})
		_, err := s.MarshalJSON()
		Expect(err).Should(HaveOccurred())
	})
})
