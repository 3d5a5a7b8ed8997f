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

import "fmt"

// TypeDefinition is a reference to a type in a field definition. It may carry a constructed Type
// instance directly (see T), refer to a type by name to be resolved later (see Ref), or wrap
// another reference in a NonNull or List modifier (see NonNullOf and ListOf). Keeping references
// instead of resolved types in field definitions is what allows two types to refer to each other
// before both exist.
type TypeDefinition interface {
	// String representation when printing the reference, e.g. "Person!" or "[Int]".
	fmt.Stringer

	// ThisIsGraphQLTypeDefinition puts a special mark for TypeDefinition objects.
	ThisIsGraphQLTypeDefinition()
}

// ThisIsTypeDefinition is a marker struct intended to be embedded in every TypeDefinition
// implementation.
type ThisIsTypeDefinition struct{}

// ThisIsGraphQLTypeDefinition implements TypeDefinition.
func (ThisIsTypeDefinition) ThisIsGraphQLTypeDefinition() {}

//===----------------------------------------------------------------------------------------====//
// T Function
//===----------------------------------------------------------------------------------------====//

// typeWrapperTypeDefinition is a wrapper for Type which implements TypeDefinition. This makes a
// constructed Type able to act as a TypeDefinition.
type typeWrapperTypeDefinition struct {
	ThisIsTypeDefinition
	t Type
}

var _ TypeDefinition = typeWrapperTypeDefinition{}

// Type returns the wrapped Type instance.
func (typeDef typeWrapperTypeDefinition) Type() Type {
	return typeDef.t
}

// String implements fmt.Stringer.
func (typeDef typeWrapperTypeDefinition) String() string {
	if typeDef.t == nil {
		return "<nil>"
	}
	return typeDef.t.String()
}

// T converts a Type into TypeDefinition.
func T(t Type) TypeDefinition {
	return typeWrapperTypeDefinition{t: t}
}

//===----------------------------------------------------------------------------------------====//
// Ref Function
//===----------------------------------------------------------------------------------------====//

// nameRefTypeDefinition refers to a type by name. Built-in scalar names resolve through
// UnderlyingType; any other name stays unresolved until the consumer of the field definition maps
// it to a Type, so a field may name a type that is declared later.
type nameRefTypeDefinition struct {
	ThisIsTypeDefinition
	name string
}

var _ TypeDefinition = nameRefTypeDefinition{}

// TypeName returns the referenced type name.
func (typeDef nameRefTypeDefinition) TypeName() string {
	return typeDef.name
}

// String implements fmt.Stringer.
func (typeDef nameRefTypeDefinition) String() string {
	return typeDef.name
}

// Ref creates a TypeDefinition that references a type by name.
func Ref(name string) TypeDefinition {
	return nameRefTypeDefinition{name: name}
}

//===----------------------------------------------------------------------------------------====//
// NonNull and List Modifiers
//===----------------------------------------------------------------------------------------====//

// NonNullTypeDefinition marks its element reference as non-null.
type NonNullTypeDefinition struct {
	ThisIsTypeDefinition
	elementTypeDef TypeDefinition
}

var _ TypeDefinition = NonNullTypeDefinition{}

// ElementType returns the TypeDefinition of the wrapped element type.
func (typeDef NonNullTypeDefinition) ElementType() TypeDefinition {
	return typeDef.elementTypeDef
}

// String implements fmt.Stringer.
func (typeDef NonNullTypeDefinition) String() string {
	return typeDef.elementTypeDef.String() + "!"
}

// NonNullOf returns a NonNullTypeDefinition wrapping the given TypeDefinition.
func NonNullOf(elementTypeDef TypeDefinition) NonNullTypeDefinition {
	return NonNullTypeDefinition{elementTypeDef: elementTypeDef}
}

// NonNullOfType returns a NonNullTypeDefinition wrapping the given Type.
func NonNullOfType(elementType Type) NonNullTypeDefinition {
	return NonNullOf(T(elementType))
}

// ListTypeDefinition wraps its element reference in a list modifier.
type ListTypeDefinition struct {
	ThisIsTypeDefinition
	elementTypeDef TypeDefinition
}

var _ TypeDefinition = ListTypeDefinition{}

// ElementType returns the TypeDefinition of the list element type.
func (typeDef ListTypeDefinition) ElementType() TypeDefinition {
	return typeDef.elementTypeDef
}

// String implements fmt.Stringer.
func (typeDef ListTypeDefinition) String() string {
	return "[" + typeDef.elementTypeDef.String() + "]"
}

// ListOf returns a ListTypeDefinition wrapping the given TypeDefinition.
func ListOf(elementTypeDef TypeDefinition) ListTypeDefinition {
	return ListTypeDefinition{elementTypeDef: elementTypeDef}
}

// ListOfType returns a ListTypeDefinition wrapping the given Type.
func ListOfType(elementType Type) ListTypeDefinition {
	return ListOf(T(elementType))
}

//===----------------------------------------------------------------------------------------====//
// Definition Predication
//===----------------------------------------------------------------------------------------====//

// IsNonNullDefinition returns true if the given reference is marked non-null, either through
// NonNullOf or by wrapping a constructed *NonNull type.
func IsNonNullDefinition(typeDef TypeDefinition) bool {
	switch typeDef := typeDef.(type) {
	case NonNullTypeDefinition:
		return true
	case typeWrapperTypeDefinition:
		return IsNonNullType(typeDef.t)
	}
	return false
}

// NullableDefinitionOf strips a non-null marker from the given reference, whichever form it takes.
// References that are already nullable are returned unchanged.
func NullableDefinitionOf(typeDef TypeDefinition) TypeDefinition {
	switch typeDef := typeDef.(type) {
	case NonNullTypeDefinition:
		return typeDef.ElementType()
	case typeWrapperTypeDefinition:
		if nonNull, ok := typeDef.t.(*NonNull); ok {
			return T(nonNull.InnerType())
		}
	}
	return typeDef
}

// NamedDefinitionOf strips all NonNull and List modifiers from the given reference.
func NamedDefinitionOf(typeDef TypeDefinition) TypeDefinition {
	for {
		switch def := typeDef.(type) {
		case NonNullTypeDefinition:
			typeDef = def.ElementType()
		case ListTypeDefinition:
			typeDef = def.ElementType()
		case typeWrapperTypeDefinition:
			if IsNamedType(def.t) {
				return typeDef
			}
			typeDef = T(NamedTypeOf(def.t))
		default:
			return typeDef
		}
	}
}

// UnderlyingType returns the constructed Type behind the given reference, if there is one. It
// unwraps NonNull and List modifiers. Name references resolve against the built-in scalars;
// references to any other name return false since they carry no instance.
func UnderlyingType(typeDef TypeDefinition) (Type, bool) {
	switch named := NamedDefinitionOf(typeDef).(type) {
	case typeWrapperTypeDefinition:
		if named.t != nil {
			return named.t, true
		}
	case nameRefTypeDefinition:
		if builtin, ok := BuiltinScalar(named.name); ok {
			return builtin, true
		}
	}
	return nil, false
}
