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

package graphql

// Scalar Type Definition
//
// The leaf values of any request and input values to arguments are Scalars (or Enums) and are
// defined with a name. Coercion of scalar values belongs to the executing engine and is out of
// scope for this library.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Scalars
type Scalar struct {
	name        string
	description string
}

var (
	_ Type                = (*Scalar)(nil)
	_ TypeWithName        = (*Scalar)(nil)
	_ TypeWithDescription = (*Scalar)(nil)
)

// NewScalar defines a Scalar type with the given name.
func NewScalar(name string, description string) (*Scalar, error) {
	if !IsValidName(name) {
		return nil, NewError("Must provide a valid name for Scalar.", ErrKindInvalidArgument)
	}
	return &Scalar{
		name:        name,
		description: description,
	}, nil
}

// graphqlType implements Type.
func (*Scalar) graphqlType() {}

// String implements Type.
func (s *Scalar) String() string {
	return s.name
}

// Name implements TypeWithName.
func (s *Scalar) Name() string {
	return s.name
}

// Description implements TypeWithDescription.
func (s *Scalar) Description() string {
	return s.description
}

var (
	stringType = &Scalar{
		name: "String",
		description: "The `String` scalar type represents textual data, represented as UTF-8 " +
			"character sequences. The String type is most often used by GraphQL to represent free-form " +
			"human-readable text.",
	}

	intType = &Scalar{
		name: "Int",
		description: "The `Int` scalar type represents non-fractional signed whole numeric values. " +
			"Int can represent values between -(2^31) and 2^31 - 1.",
	}

	floatType = &Scalar{
		name: "Float",
		description: "The `Float` scalar type represents signed double-precision fractional values " +
			"as specified by IEEE 754.",
	}

	booleanType = &Scalar{
		name:        "Boolean",
		description: "The `Boolean` scalar type represents `true` or `false`.",
	}

	idType = &Scalar{
		name: "ID",
		description: "The `ID` scalar type represents a unique identifier, often used to refetch an " +
			"object or as key for a cache.",
	}
)

// String returns the GraphQL builtin String type.
func String() *Scalar {
	return stringType
}

// Int returns the GraphQL builtin Int type.
func Int() *Scalar {
	return intType
}

// Float returns the GraphQL builtin Float type.
func Float() *Scalar {
	return floatType
}

// Boolean returns the GraphQL builtin Boolean type.
func Boolean() *Scalar {
	return booleanType
}

// ID returns the GraphQL builtin ID type.
func ID() *Scalar {
	return idType
}

// BuiltinScalar returns the builtin scalar type with the given name, if there is one.
func BuiltinScalar(name string) (*Scalar, bool) {
	switch name {
	case "String":
		return stringType, true
	case "Int":
		return intType, true
	case "Float":
		return floatType, true
	case "Boolean":
		return booleanType, true
	case "ID":
		return idType, true
	}
	return nil, false
}
