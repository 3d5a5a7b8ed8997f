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

import (
	"context"
	"sort"
)

// FieldResolver resolves field value during execution. It is carried on field definitions verbatim
// and is never invoked by this library.
type FieldResolver interface {
	Resolve(ctx context.Context, source interface{}) (interface{}, error)
}

// FieldResolverFunc is an adapter to allow the use of ordinary functions as FieldResolver.
type FieldResolverFunc func(ctx context.Context, source interface{}) (interface{}, error)

// Resolve calls f(ctx, source).
func (f FieldResolverFunc) Resolve(ctx context.Context, source interface{}) (interface{}, error) {
	return f(ctx, source)
}

var _ FieldResolver = FieldResolverFunc(nil)

// Fields maps field name to its config. In general, this should be named as "FieldConfigMap".
// However, this type is used frequently so we try to make it shorter to save some typing efforts.
//
// Go maps carry no order, so the relative order of fields supplied in one Fields value is their
// alphabetical order. Order across successive writes is insertion order; see
// FieldDefinitionMap and compose.ObjectComposer.ReorderFields.
type Fields map[string]FieldConfig

// FieldsThunk returns a Fields map on demand. Field configs are stored behind thunks so a type may
// reference types that are declared after it.
type FieldsThunk func() Fields

// FieldConfig provides definition of a field when defining an object.
type FieldConfig struct {
	// Type of value yielded by the field. Required.
	Type TypeDefinition

	// Description of the defining field
	Description string

	// DefaultValue to be assigned when no value is supplied for the field.
	DefaultValue interface{}

	// Argument configuration of the field
	Args ArgumentConfigMap

	// Resolver for resolving field value during execution
	Resolver FieldResolver

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation

	// Extensions carries arbitrary metadata attached to the field. It is opaque to this library and
	// preserved verbatim across mutations.
	Extensions map[string]interface{}
}

// FieldDefinition is the normalized form of a FieldConfig as stored in a FieldDefinitionMap.
type FieldDefinition struct {
	// Type of value yielded by the field. NonNull-wrapped references mark the field as required.
	Type TypeDefinition

	// Description of the field
	Description string

	// DefaultValue to be assigned when no value is supplied for the field.
	DefaultValue interface{}

	// Args specifies the definitions of arguments being taken when querying this field.
	Args ArgumentConfigMap

	// Resolver determines the result value for the field. Never invoked by this library.
	Resolver FieldResolver

	// Deprecation is non-nil when the field is tagged as deprecated.
	Deprecation *Deprecation

	// Extensions carries arbitrary metadata attached to the field.
	Extensions map[string]interface{}
}

// ArgumentConfigMap maps argument name to its definition.
type ArgumentConfigMap map[string]ArgumentConfig

// ArgumentConfig provides definition for defining an argument in a field.
type ArgumentConfig struct {
	// Description fo the argument
	Description string

	// Type of the value that can be given to the argument
	Type TypeDefinition

	// DefaultValue specified the value to be assigned to the argument when no value is provided.
	DefaultValue interface{}
}

//===----------------------------------------------------------------------------------------====//
// FieldDefinitionMap
//===----------------------------------------------------------------------------------------====//

// FieldDefinitionMap is an insertion-ordered mapping from field name to FieldDefinition. The zero
// value is an empty map ready for use. Field order is significant: it controls serialization and
// display order and survives mutation unless explicitly reordered.
type FieldDefinitionMap struct {
	names []string
	defs  map[string]FieldDefinition
}

// Len returns the number of fields in the map.
func (m FieldDefinitionMap) Len() int {
	return len(m.names)
}

// Names returns field names in insertion order. The returned slice is a copy.
func (m FieldDefinitionMap) Names() []string {
	names := make([]string, len(m.names))
	copy(names, m.names)
	return names
}

// Has returns true if the map contains a field with the given name.
func (m FieldDefinitionMap) Has(name string) bool {
	_, ok := m.defs[name]
	return ok
}

// Get returns the definition for the named field. The second return value is false if there is no
// such field.
func (m FieldDefinitionMap) Get(name string) (FieldDefinition, bool) {
	def, ok := m.defs[name]
	return def, ok
}

// Set stores a definition under the given name. An existing field is replaced in place, keeping
// its position; a new field is appended at the end.
func (m *FieldDefinitionMap) Set(name string, def FieldDefinition) {
	if m.defs == nil {
		m.defs = make(map[string]FieldDefinition)
	}
	if _, exists := m.defs[name]; !exists {
		m.names = append(m.names, name)
	}
	m.defs[name] = def
}

// Delete removes the named field. Deleting an absent name is a no-op.
func (m *FieldDefinitionMap) Delete(name string) {
	if _, exists := m.defs[name]; !exists {
		return
	}
	delete(m.defs, name)
	for i, n := range m.names {
		if n == name {
			m.names = append(m.names[:i], m.names[i+1:]...)
			break
		}
	}
}

// Clone returns an independent copy of the map. Each FieldDefinition value is copied; structures
// nested inside a definition (Args, Extensions contents) are shared with the original.
func (m FieldDefinitionMap) Clone() FieldDefinitionMap {
	clone := FieldDefinitionMap{
		names: make([]string, len(m.names)),
		defs:  make(map[string]FieldDefinition, len(m.defs)),
	}
	copy(clone.names, m.names)
	for name, def := range m.defs {
		clone.defs[name] = def
	}
	return clone
}

//===----------------------------------------------------------------------------------------====//
// Normalization
//===----------------------------------------------------------------------------------------====//

// BuildFieldDefinitionMap normalizes a Fields config map into a FieldDefinitionMap. Every write
// path goes through here so that field configs are validated uniformly whether they were supplied
// at construction time or through a later mutation. Fields from one batch are inserted in
// alphabetical order. typeName is the owning type's name, used in error messages.
func BuildFieldDefinitionMap(fieldConfigMap Fields, typeName string) (FieldDefinitionMap, error) {
	var fieldMap FieldDefinitionMap

	names := make([]string, 0, len(fieldConfigMap))
	for name := range fieldConfigMap {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		def, err := normalizeFieldConfig(name, fieldConfigMap[name], typeName)
		if err != nil {
			return FieldDefinitionMap{}, err
		}
		fieldMap.Set(name, def)
	}

	return fieldMap, nil
}

// ValidateFieldDefinitionMap re-checks an already-normalized map. Mutations that assemble a
// FieldDefinitionMap directly pass through here before the map is installed on a type.
func ValidateFieldDefinitionMap(fieldMap FieldDefinitionMap, typeName string) error {
	for _, name := range fieldMap.names {
		def := fieldMap.defs[name]
		if err := validateFieldDefinition(name, def, typeName); err != nil {
			return err
		}
	}
	return nil
}

func normalizeFieldConfig(name string, config FieldConfig, typeName string) (FieldDefinition, error) {
	def := FieldDefinition{
		Type:         config.Type,
		Description:  config.Description,
		DefaultValue: config.DefaultValue,
		Args:         config.Args,
		Resolver:     config.Resolver,
		Deprecation:  config.Deprecation,
		Extensions:   config.Extensions,
	}
	if err := validateFieldDefinition(name, def, typeName); err != nil {
		return FieldDefinition{}, err
	}
	return def, nil
}

func validateFieldDefinition(name string, def FieldDefinition, typeName string) error {
	if !IsValidName(name) {
		return NewError(`Field name "`+name+`" in type `+typeName+` is not a valid identifier.`, ErrKindInvalidArgument)
	}
	if def.Type == nil {
		return NewError("Field "+typeName+"."+name+" must provide type.", ErrKindInvalidArgument)
	}
	for argName, arg := range def.Args {
		if !IsValidName(argName) {
			return NewError(`Argument name "`+argName+`" on field `+typeName+"."+name+" is not a valid identifier.", ErrKindInvalidArgument)
		}
		if arg.Type == nil {
			return NewError("Argument "+typeName+"."+name+"("+argName+":) must provide type.", ErrKindInvalidArgument)
		}
	}
	return nil
}
