/**
 * Copyright (c) 2026, The GraphQL Compose Authors.
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

package util_test

import (
	"github.com/petlack/graphql-compose/internal/util"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("SuggestionList", func() {
	It("returns no results when options are empty", func() {
		Expect(util.SuggestionList("input", nil)).Should(BeEmpty())
	})

	It("returns options with small lexical distance", func() {
		Expect(util.SuggestionList("emali", []string{"email", "firstName"})).Should(Equal([]string{"email"}))
	})

	It("treats a case change as one edit", func() {
		Expect(util.SuggestionList("EMAIL", []string{"email"})).Should(Equal([]string{"email"}))
	})

	It("sorts results by distance", func() {
		Expect(util.SuggestionList("fild", []string{"fields", "field"})).Should(Equal([]string{"field", "fields"}))
	})
})

var _ = Describe("QuotedOrList", func() {
	It("returns an empty string for no items", func() {
		Expect(util.QuotedOrList(nil, 5)).Should(Equal(""))
	})

	It("quotes a single item", func() {
		Expect(util.QuotedOrList([]string{"A"}, 5)).Should(Equal(`"A"`))
	})

	It("joins two items with or", func() {
		Expect(util.QuotedOrList([]string{"A", "B"}, 5)).Should(Equal(`"A" or "B"`))
	})

	It("joins three items with commas", func() {
		Expect(util.QuotedOrList([]string{"A", "B", "C"}, 5)).Should(Equal(`"A", "B", or "C"`))
	})

	It("truncates to the limit", func() {
		Expect(util.QuotedOrList([]string{"A", "B", "C"}, 2)).Should(Equal(`"A" or "B"`))
	})
})
