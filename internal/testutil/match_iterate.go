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

package testutil

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/botobag/lazyseq/seq"

	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

// iteratorFor accepts either a seq.Iterator or a seq.Sequence (in which case a fresh iterator is
// taken) as the actual value of an iteration matcher.
func iteratorFor(actual interface{}) (seq.Iterator, error) {
	switch actual := actual.(type) {
	case seq.Iterator:
		return actual, nil
	case seq.Sequence:
		return actual.Iterator(), nil
	}
	return nil, fmt.Errorf("matcher expects a seq.Iterator or a seq.Sequence but got %T", actual)
}

type iterateAsMatcher struct {
	expected []interface{}
	actual   []interface{}
}

// IterateAs returns a Gomega matcher that drains the actual iterator (or a fresh iterator of the
// actual sequence) and expects the produced elements to equal the given values, in order.
func IterateAs(expected ...interface{}) types.GomegaMatcher {
	return &iterateAsMatcher{expected: expected}
}

// Match implements types.GomegaMatcher.
func (matcher *iterateAsMatcher) Match(actual interface{}) (success bool, err error) {
	it, err := iteratorFor(actual)
	if err != nil {
		return false, fmt.Errorf("IterateAs %s", err)
	}

	got, err := seq.Collect(it)
	if err != nil {
		return false, err
	}
	matcher.actual = got

	if len(got) != len(matcher.expected) {
		return false, nil
	}
	for i, value := range got {
		if !reflect.DeepEqual(value, matcher.expected[i]) {
			return false, nil
		}
	}
	return true, nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *iterateAsMatcher) FailureMessage(actual interface{}) (message string) {
	return format.Message(matcher.actual, "to iterate as", matcher.expected)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *iterateAsMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return format.Message(matcher.actual, "not to iterate as", matcher.expected)
}

type iterateAsStringsInAnyOrderMatcher struct {
	expected []string
	actual   []string
}

// IterateAsStringsInAnyOrder returns a Gomega matcher that drains the actual iterator (or
// sequence), formats every element with %v and compares the sorted results against the sorted
// expected strings. It is meant for sequences without a specified order, such as iteration over
// map values.
func IterateAsStringsInAnyOrder(expected []string) types.GomegaMatcher {
	clone := make([]string, len(expected))
	copy(clone, expected)
	sort.Strings(clone)
	return &iterateAsStringsInAnyOrderMatcher{expected: clone}
}

// Match implements types.GomegaMatcher.
func (matcher *iterateAsStringsInAnyOrderMatcher) Match(actual interface{}) (success bool, err error) {
	it, err := iteratorFor(actual)
	if err != nil {
		return false, fmt.Errorf("IterateAsStringsInAnyOrder %s", err)
	}

	var got []string
	err = seq.ForEach(it, func(value interface{}) error {
		got = append(got, fmt.Sprintf("%v", value))
		return nil
	})
	if err != nil {
		return false, err
	}
	sort.Strings(got)
	matcher.actual = got
	return reflect.DeepEqual(got, matcher.expected), nil
}

// FailureMessage implements types.GomegaMatcher.
func (matcher *iterateAsStringsInAnyOrderMatcher) FailureMessage(actual interface{}) (message string) {
	return format.Message(matcher.actual, "to contain iterated elements", matcher.expected)
}

// NegatedFailureMessage implements types.GomegaMatcher.
func (matcher *iterateAsStringsInAnyOrderMatcher) NegatedFailureMessage(actual interface{}) (message string) {
	return format.Message(matcher.actual, "not to contain iterated elements", matcher.expected)
}
