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

package util

import "strings"

// QuotedOrList transforms a string array like ["A", "B", "C"] into `"A", "B", or "C"`. If a
// positive limit is provided, only up to that number of items is included.
func QuotedOrList(items []string, limit int) string {
	if len(items) == 0 {
		return ""
	}

	numItems := len(items)
	if limit > 0 && numItems > limit {
		items = items[:limit]
		numItems = limit
	}

	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			if numItems > 2 {
				b.WriteString(", ")
			} else {
				b.WriteString(" ")
			}
			if i == numItems-1 {
				b.WriteString("or ")
			}
		}
		b.WriteString(`"`)
		b.WriteString(item)
		b.WriteString(`"`)
	}
	return b.String()
}
