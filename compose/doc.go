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

// Package compose provides ObjectComposer, a fluent builder over an object type that supports
// adding, removing, reordering and re-typing fields after initial construction. Schema assembly
// code mutates composers freely; the executing engine reads the finalized types once the schema
// is complete.
//
//	person := compose.MustCompose("Person")
//	_ = person.AddFields(graphql.Fields{
//		"name":  {Type: graphql.T(graphql.String())},
//		"email": {Type: graphql.T(graphql.String())},
//	})
//	_ = person.MakeRequired("email")
package compose
