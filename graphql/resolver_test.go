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

var _ = Describe("TypeResolver", func() {
	var resolver *graphql.TypeResolver

	BeforeEach(func() {
		resolver = graphql.MustNewTypeResolver()
	})

	It("constructs an object type from an SDL definition", func() {
		t, err := resolver.Resolve(`type Person { name: String!, age: Int }`)
		Expect(err).ShouldNot(HaveOccurred())

		object, ok := t.(*graphql.Object)
		Expect(ok).Should(BeTrue())
		Expect(object.Name()).Should(Equal("Person"))

		fields, err := object.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fields.Names()).Should(ConsistOf("name", "age"))

		name, _ := fields.Get("name")
		Expect(graphql.IsNonNullDefinition(name.Type)).Should(BeTrue())

		scalar, ok := graphql.UnderlyingType(name.Type)
		Expect(ok).Should(BeTrue())
		Expect(scalar).Should(BeIdenticalTo(graphql.String()))
	})

	It("constructs independent instances for each call", func() {
		const source = `type Person { name: String }`

		first, err := resolver.Resolve(source)
		Expect(err).ShouldNot(HaveOccurred())
		second, err := resolver.Resolve(source)
		Expect(err).ShouldNot(HaveOccurred())
		Expect(first).ShouldNot(BeIdenticalTo(second))

		// Mutating one resolved type must not show through the other, including on the
		// cache-hit path.
		object := first.(*graphql.Object)
		fields, err := object.Fields()
		Expect(err).ShouldNot(HaveOccurred())

		updated := fields.Clone()
		updated.Set("age", graphql.FieldDefinition{Type: graphql.T(graphql.Int())})
		Expect(object.SetFieldDefinitions(updated)).Should(Succeed())

		otherFields, err := second.(*graphql.Object).Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(otherFields.Has("age")).Should(BeFalse())

		third, err := resolver.Resolve(source)
		Expect(err).ShouldNot(HaveOccurred())
		thirdFields, err := third.(*graphql.Object).Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(thirdFields.Names()).Should(Equal([]string{"name"}))
	})

	It("resolves types declared in the same source against each other", func() {
		t, err := resolver.Resolve(`
			type Person { address: Address! }
			type Address { city: String }
		`)
		Expect(err).ShouldNot(HaveOccurred())

		person := t.(*graphql.Object)
		Expect(person.Name()).Should(Equal("Person"))

		fields, err := person.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		address, ok := fields.Get("address")
		Expect(ok).Should(BeTrue())

		addressType, ok := graphql.UnderlyingType(address.Type)
		Expect(ok).Should(BeTrue())
		Expect(addressType.(*graphql.Object).Name()).Should(Equal("Address"))
	})

	It("resolves self-referential declarations", func() {
		t, err := resolver.Resolve(`type Person { bestFriend: Person }`)
		Expect(err).ShouldNot(HaveOccurred())

		person := t.(*graphql.Object)
		fields, err := person.Fields()
		Expect(err).ShouldNot(HaveOccurred())

		bestFriend, _ := fields.Get("bestFriend")
		friendType, ok := graphql.UnderlyingType(bestFriend.Type)
		Expect(ok).Should(BeTrue())
		Expect(friendType).Should(BeIdenticalTo(person))
	})

	It("constructs input object types", func() {
		t, err := resolver.Resolve(`input PersonFilter { nameLike: String }`)
		Expect(err).ShouldNot(HaveOccurred())

		input, ok := t.(*graphql.InputObject)
		Expect(ok).Should(BeTrue())
		Expect(input.Name()).Should(Equal("PersonFilter"))
	})

	It("fails on syntax errors", func() {
		_, err := resolver.Resolve(`type Person {`)
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindSyntax))
	})

	It("fails on unsupported declaration kinds", func() {
		_, err := resolver.Resolve(`enum Color { RED, GREEN }`)
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindInvalidType))
	})
})
