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

// Package graphql provides the GraphQL type model consumed by the compose package: named object
// and input object types, NonNull and List modifiers, built-in scalars, and the field definition
// machinery.
//
// Deferred Fields
//
// An Object does not hold a materialized field map. It holds a thunk that produces one on demand,
// so a type may declare fields whose types are not defined yet at declaration time, including
// mutually recursive types, without a forward-declaration mechanism. The first read materializes
// the map and caches it; installing a new thunk drops the cache.
//
// Type References
//
// Field definitions carry TypeDefinition references rather than resolved types. A reference may
// wrap a constructed Type (T), refer to a type by name (Ref), or add a NonNull or List modifier
// (NonNullOf, ListOf). A NonNull-wrapped reference is what marks a field as required.
package graphql
