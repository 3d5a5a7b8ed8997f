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

package graphql_test

import (
	"github.com/petlack/graphql-compose/graphql"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("FieldDefinitionMap", func() {
	var m graphql.FieldDefinitionMap

	BeforeEach(func() {
		m = graphql.FieldDefinitionMap{}
		m.Set("a", graphql.FieldDefinition{Type: graphql.T(graphql.String())})
		m.Set("b", graphql.FieldDefinition{Type: graphql.T(graphql.Int())})
	})

	It("keeps insertion order", func() {
		m.Set("c", graphql.FieldDefinition{Type: graphql.T(graphql.ID())})
		Expect(m.Names()).Should(Equal([]string{"a", "b", "c"}))
		Expect(m.Len()).Should(Equal(3))
	})

	It("replaces in place, keeping position", func() {
		m.Set("a", graphql.FieldDefinition{Type: graphql.T(graphql.ID())})
		Expect(m.Names()).Should(Equal([]string{"a", "b"}))

		def, ok := m.Get("a")
		Expect(ok).Should(BeTrue())
		Expect(def.Type.String()).Should(Equal("ID"))
	})

	It("deletes by name, ignoring absent names", func() {
		m.Delete("a")
		m.Delete("nope")
		Expect(m.Names()).Should(Equal([]string{"b"}))
		Expect(m.Has("a")).Should(BeFalse())
	})

	It("clones independently of the original", func() {
		clone := m.Clone()
		clone.Delete("a")
		Expect(m.Has("a")).Should(BeTrue())
	})

	It("marshals to JSON in field order", func() {
		description := graphql.FieldDefinition{
			Type:        graphql.NonNullOf(graphql.T(graphql.String())),
			Description: "the b field",
		}
		m.Set("b", description)

		data, err := m.MarshalJSON()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(string(data)).Should(Equal(
			`{"a":{"type":"String"},"b":{"type":"String!","description":"the b field"}}`))
	})
})

var _ = Describe("BuildFieldDefinitionMap", func() {
	It("orders one batch alphabetically", func() {
		fieldMap, err := graphql.BuildFieldDefinitionMap(graphql.Fields{
			"b": {Type: graphql.T(graphql.String())},
			"a": {Type: graphql.T(graphql.String())},
			"c": {Type: graphql.T(graphql.String())},
		}, "Person")
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fieldMap.Names()).Should(Equal([]string{"a", "b", "c"}))
	})

	It("rejects a field without a type", func() {
		_, err := graphql.BuildFieldDefinitionMap(graphql.Fields{
			"name": {},
		}, "Person")
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("Person.name must provide type"))
	})

	It("rejects an invalid field name", func() {
		_, err := graphql.BuildFieldDefinitionMap(graphql.Fields{
			"not a name": {Type: graphql.T(graphql.String())},
		}, "Person")
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindInvalidArgument))
	})

	It("rejects an argument without a type", func() {
		_, err := graphql.BuildFieldDefinitionMap(graphql.Fields{
			"name": {
				Type: graphql.T(graphql.String()),
				Args: graphql.ArgumentConfigMap{
					"upper": {},
				},
			},
		}, "Person")
		Expect(err).Should(HaveOccurred())
		Expect(err.Error()).Should(ContainSubstring("Person.name(upper:) must provide type"))
	})
})

var _ = Describe("TypeDefinition", func() {
	It("marks required fields through NonNull references", func() {
		required := graphql.NonNullOf(graphql.T(graphql.String()))
		Expect(graphql.IsNonNullDefinition(required)).Should(BeTrue())
		Expect(graphql.IsNonNullDefinition(graphql.T(graphql.String()))).Should(BeFalse())
		Expect(required.String()).Should(Equal("String!"))
	})

	It("recognizes a wrapped NonNull type instance as required", func() {
		nonNull := graphql.MustNewNonNullOfType(graphql.String())
		Expect(graphql.IsNonNullDefinition(graphql.T(nonNull))).Should(BeTrue())

		unwrapped := graphql.NullableDefinitionOf(graphql.T(nonNull))
		t, ok := graphql.UnderlyingType(unwrapped)
		Expect(ok).Should(BeTrue())
		Expect(t).Should(BeIdenticalTo(graphql.String()))
	})

	It("unwraps nested modifiers down to the named reference", func() {
		def := graphql.NonNullOf(graphql.ListOf(graphql.T(graphql.Int())))
		Expect(def.String()).Should(Equal("[Int]!"))

		t, ok := graphql.UnderlyingType(def)
		Expect(ok).Should(BeTrue())
		Expect(t).Should(BeIdenticalTo(graphql.Int()))
	})

	It("resolves name references to built-in scalars", func() {
		ref := graphql.Ref("String")
		Expect(ref.String()).Should(Equal("String"))

		t, ok := graphql.UnderlyingType(ref)
		Expect(ok).Should(BeTrue())
		Expect(t).Should(BeIdenticalTo(graphql.String()))

		t, ok = graphql.UnderlyingType(graphql.NonNullOf(graphql.Ref("Int")))
		Expect(ok).Should(BeTrue())
		Expect(t).Should(BeIdenticalTo(graphql.Int()))
	})

	It("keeps references to unknown names unresolved", func() {
		ref := graphql.Ref("Person")
		Expect(ref.String()).Should(Equal("Person"))

		_, ok := graphql.UnderlyingType(ref)
		Expect(ok).Should(BeFalse())
	})
})
