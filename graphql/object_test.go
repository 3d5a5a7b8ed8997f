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

var _ = Describe("Object", func() {
	It("requires a name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{})
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindMissingArgument))
	})

	It("rejects an invalid name", func() {
		_, err := graphql.NewObject(&graphql.ObjectConfig{Name: "Not a name"})
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindInvalidArgument))
	})

	It("materializes fields from the config", func() {
		object, err := graphql.NewObject(&graphql.ObjectConfig{
			Name: "Person",
			Fields: graphql.Fields{
				"name": {Type: graphql.T(graphql.String())},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())

		fields, err := object.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fields.Names()).Should(Equal([]string{"name"}))
	})

	It("does not force the field thunk until fields are read", func() {
		forced := false
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Person",
			FieldsThunk: func() graphql.Fields {
				forced = true
				return graphql.Fields{
					"name": {Type: graphql.T(graphql.String())},
				}
			},
		})
		Expect(forced).Should(BeFalse())

		_, err := object.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(forced).Should(BeTrue())
	})

	It("caches the materialized map until a new thunk is installed", func() {
		calls := 0
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Person",
			FieldsThunk: func() graphql.Fields {
				calls++
				return graphql.Fields{
					"name": {Type: graphql.T(graphql.String())},
				}
			},
		})

		_, err := object.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		_, err = object.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(calls).Should(Equal(1))

		object.InvalidateFields()
		_, err = object.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(calls).Should(Equal(2))
	})

	It("supports mutually recursive declarations through thunks", func() {
		var person, pet *graphql.Object

		person = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Person",
			FieldsThunk: func() graphql.Fields {
				return graphql.Fields{
					"pet": {Type: graphql.T(pet)},
				}
			},
		})
		pet = graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Pet",
			FieldsThunk: func() graphql.Fields {
				return graphql.Fields{
					"owner": {Type: graphql.T(person)},
				}
			},
		})

		personFields, err := person.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		petField, ok := personFields.Get("pet")
		Expect(ok).Should(BeTrue())

		petType, ok := graphql.UnderlyingType(petField.Type)
		Expect(ok).Should(BeTrue())
		Expect(petType).Should(BeIdenticalTo(pet))

		petFields, err := pet.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		ownerField, ok := petFields.Get("owner")
		Expect(ok).Should(BeTrue())

		ownerType, ok := graphql.UnderlyingType(ownerField.Type)
		Expect(ok).Should(BeTrue())
		Expect(ownerType).Should(BeIdenticalTo(person))
	})

	It("surfaces normalization errors when forcing a bad thunk", func() {
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Person",
			FieldsThunk: func() graphql.Fields {
				return graphql.Fields{
					"broken": {},
				}
			},
		})

		_, err := object.Fields()
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindInvalidArgument))
		Expect(err.Error()).Should(ContainSubstring("Person.broken"))
	})

	It("drops the cache when definitions are replaced", func() {
		object := graphql.MustNewObject(&graphql.ObjectConfig{
			Name: "Person",
			Fields: graphql.Fields{
				"name": {Type: graphql.T(graphql.String())},
			},
		})

		fields, err := object.Fields()
		Expect(err).ShouldNot(HaveOccurred())

		updated := fields.Clone()
		updated.Set("age", graphql.FieldDefinition{Type: graphql.T(graphql.Int())})
		Expect(object.SetFieldDefinitions(updated)).Should(Succeed())

		fields, err = object.Fields()
		Expect(err).ShouldNot(HaveOccurred())
		Expect(fields.Names()).Should(Equal([]string{"name", "age"}))
	})
})

var _ = Describe("InputObject", func() {
	It("rejects input fields with arguments", func() {
		_, err := graphql.NewInputObject(&graphql.InputObjectConfig{
			Name: "PersonInput",
			Fields: graphql.Fields{
				"name": {
					Type: graphql.T(graphql.String()),
					Args: graphql.ArgumentConfigMap{
						"upper": {Type: graphql.T(graphql.Boolean())},
					},
				},
			},
		})
		Expect(err).Should(HaveOccurred())
		Expect(graphql.ErrKindOf(err)).Should(Equal(graphql.ErrKindInvalidArgument))
	})

	It("builds a named input type", func() {
		input, err := graphql.NewInputObject(&graphql.InputObjectConfig{
			Name:        "PersonInput",
			Description: "Input for a person",
			Fields: graphql.Fields{
				"name": {Type: graphql.T(graphql.String())},
			},
		})
		Expect(err).ShouldNot(HaveOccurred())
		Expect(input.Name()).Should(Equal("PersonInput"))
		Expect(input.Description()).Should(Equal("Input for a person"))
		Expect(input.String()).Should(Equal("PersonInput"))
		Expect(input.Fields().Has("name")).Should(BeTrue())
	})
})
