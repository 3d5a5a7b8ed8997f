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

package compose

import (
	"sort"
	"strings"

	"github.com/petlack/graphql-compose/graphql"
	"github.com/petlack/graphql-compose/internal/util"
)

// typeResolver resolves SDL type-definition strings passed to Compose. The parse is memoized,
// but each call constructs fresh types, so composers built from the same definition never share
// state.
var typeResolver = graphql.MustNewTypeResolver()

// ObjectComposer is a stateful wrapper around one Object type that lets callers mutate its field
// set, nullability, description and identity after initial construction. The wrapped Object keeps
// its fields behind a thunk; every mutation materializes the current fields, transforms them, and
// installs a fresh thunk, invalidating any field map the Object had already cached.
//
// An ObjectComposer is the exclusive owner of its Object. Read accessors hand out copies of the
// field map; a copy obtained before a mutation is stale afterwards and must be discarded.
type ObjectComposer struct {
	object *graphql.Object
}

// NewObjectComposer wraps an already-constructed Object type. This is the strict constructor;
// Compose is the permissive factory.
func NewObjectComposer(object *graphql.Object) (*ObjectComposer, error) {
	if object == nil {
		return nil, graphql.NewError(
			"Must provide a constructed Object type to wrap.",
			graphql.ErrKindInvalidArgument, graphql.Op("compose.NewObjectComposer"))
	}
	return &ObjectComposer{object: object}, nil
}

// Compose creates an ObjectComposer from one of the following:
//
//   - a bare type name, e.g. "Person": a new empty Object with that name;
//   - an SDL type-definition string, e.g. "type Person { name: String }": the declared type,
//     which must be an object type;
//   - a *graphql.ObjectConfig: an Object built with its fields applied through AddFields, so
//     initial fields go through the same normalization as later ones;
//   - a *graphql.Object: wrapped directly.
//
// Anything else fails with an invalid-argument error.
func Compose(v interface{}) (*ObjectComposer, error) {
	const op = graphql.Op("compose.Compose")

	switch v := v.(type) {
	case string:
		if graphql.IsValidName(v) {
			object, err := graphql.NewObject(&graphql.ObjectConfig{Name: v})
			if err != nil {
				return nil, err
			}
			return &ObjectComposer{object: object}, nil
		}

		t, err := typeResolver.Resolve(v)
		if err != nil {
			return nil, err
		}
		object, ok := t.(*graphql.Object)
		if !ok {
			return nil, graphql.NewError(
				"Type definition must declare an object type, got "+t.String()+".",
				graphql.ErrKindInvalidType, op)
		}
		return &ObjectComposer{object: object}, nil

	case *graphql.ObjectConfig:
		// Build the type with its field thunk emptied, then route initial fields through
		// AddFields so they are normalized like any later write.
		object, err := graphql.NewObject(&graphql.ObjectConfig{
			Name:        v.Name,
			Description: v.Description,
			Extensions:  v.Extensions,
		})
		if err != nil {
			return nil, err
		}
		composer := &ObjectComposer{object: object}

		switch {
		case v.FieldsThunk != nil:
			object.SetFieldsConfigThunk(v.FieldsThunk)
		case v.Fields != nil:
			if err := composer.AddFields(v.Fields); err != nil {
				return nil, err
			}
		}
		return composer, nil

	case *graphql.Object:
		return NewObjectComposer(v)
	}

	return nil, graphql.NewError(
		"Must provide a type name, a type definition string, a *graphql.ObjectConfig or a *graphql.Object.",
		graphql.ErrKindInvalidArgument, op)
}

// MustCompose is a convenience function equivalent to Compose but panics on failure instead of
// returning an error.
func MustCompose(v interface{}) *ObjectComposer {
	composer, err := Compose(v)
	if err != nil {
		panic(err)
	}
	return composer
}

//===----------------------------------------------------------------------------------------====//
// Field Access
//===----------------------------------------------------------------------------------------====//

// Fields materializes the field map and returns a copy of it. Mutating the returned map does not
// affect the composer; re-install it through SetFieldDefinitions if that is the intent. The copy
// is not refreshed by later mutations.
func (c *ObjectComposer) Fields() (graphql.FieldDefinitionMap, error) {
	fields, err := c.object.Fields()
	if err != nil {
		return graphql.FieldDefinitionMap{}, err
	}
	return fields.Clone(), nil
}

// FieldNames returns field names in insertion order. A field map that cannot be materialized reads
// as empty; the underlying error surfaces from Fields.
func (c *ObjectComposer) FieldNames() []string {
	fields, err := c.object.Fields()
	if err != nil {
		return nil
	}
	return fields.Names()
}

// HasField returns true if a field with the given name exists.
func (c *ObjectComposer) HasField(name string) bool {
	fields, err := c.object.Fields()
	if err != nil {
		return false
	}
	return fields.Has(name)
}

// Field returns the definition of the named field. The second return value is false if there is no
// such field.
func (c *ObjectComposer) Field(name string) (graphql.FieldDefinition, bool) {
	fields, err := c.object.Fields()
	if err != nil {
		return graphql.FieldDefinition{}, false
	}
	return fields.Get(name)
}

// FieldType returns the type reference of the named field. The second return value is false if
// there is no such field.
func (c *ObjectComposer) FieldType(name string) (graphql.TypeDefinition, bool) {
	def, ok := c.Field(name)
	if !ok {
		return nil, false
	}
	return def.Type, true
}

// IsRequired returns true if the named field exists and its type reference is non-null-wrapped.
func (c *ObjectComposer) IsRequired(name string) bool {
	def, ok := c.Field(name)
	return ok && graphql.IsNonNullDefinition(def.Type)
}

//===----------------------------------------------------------------------------------------====//
// Field Mutation
//===----------------------------------------------------------------------------------------====//

// SetFields replaces all fields with the given config map, normalized the same way construction
// normalizes fields. Fields in one batch are inserted in alphabetical order.
func (c *ObjectComposer) SetFields(fields graphql.Fields) error {
	fieldMap, err := graphql.BuildFieldDefinitionMap(fields, c.object.Name())
	if err != nil {
		return err
	}
	return c.object.SetFieldDefinitions(fieldMap)
}

// SetFieldDefinitions replaces all fields with an already-normalized map, re-validating it before
// install. This is the re-install path for a map obtained from Fields and modified by the caller.
func (c *ObjectComposer) SetFieldDefinitions(fieldMap graphql.FieldDefinitionMap) error {
	return c.object.SetFieldDefinitions(fieldMap)
}

// SetField adds or replaces one field. Equivalent to AddFields with a single-entry map.
func (c *ObjectComposer) SetField(name string, config graphql.FieldConfig) error {
	return c.AddFields(graphql.Fields{name: config})
}

// AddFields merges the given config map into the existing fields. New entries win on name
// collision, and a colliding name moves to the end of the field order.
func (c *ObjectComposer) AddFields(fields graphql.Fields) error {
	current, err := c.object.Fields()
	if err != nil {
		return err
	}

	batch, err := graphql.BuildFieldDefinitionMap(fields, c.object.Name())
	if err != nil {
		return err
	}

	merged := current.Clone()
	for _, name := range batch.Names() {
		def, _ := batch.Get(name)
		merged.Delete(name)
		merged.Set(name, def)
	}
	return c.object.SetFieldDefinitions(merged)
}

// RemoveField deletes the named field(s). Absent names are silently ignored.
func (c *ObjectComposer) RemoveField(names ...string) error {
	current, err := c.object.Fields()
	if err != nil {
		return err
	}

	remaining := current.Clone()
	for _, name := range names {
		remaining.Delete(name)
	}
	return c.object.SetFieldDefinitions(remaining)
}

// RemoveOtherFields keeps only the named field(s) and deletes everything else.
func (c *ObjectComposer) RemoveOtherFields(names ...string) error {
	current, err := c.object.Fields()
	if err != nil {
		return err
	}

	keep := make(map[string]bool, len(names))
	for _, name := range names {
		keep[name] = true
	}

	remaining := current.Clone()
	for _, name := range current.Names() {
		if !keep[name] {
			remaining.Delete(name)
		}
	}
	return c.object.SetFieldDefinitions(remaining)
}

// FieldExtension carries a partial field definition for ExtendField. Nil members leave the
// existing value in place; Extensions entries are merged key by key.
type FieldExtension struct {
	Type         graphql.TypeDefinition
	Description  *string
	DefaultValue interface{}
	Args         graphql.ArgumentConfigMap
	Resolver     graphql.FieldResolver
	Deprecation  *graphql.Deprecation
	Extensions   map[string]interface{}
}

// ExtendField shallow-merges the extension onto the existing definition of the named field, or
// onto an empty definition if the field does not exist yet, and writes the result back.
func (c *ObjectComposer) ExtendField(name string, extension FieldExtension) error {
	def, _ := c.Field(name)

	if extension.Type != nil {
		def.Type = extension.Type
	}
	if extension.Description != nil {
		def.Description = *extension.Description
	}
	if extension.DefaultValue != nil {
		def.DefaultValue = extension.DefaultValue
	}
	if extension.Args != nil {
		def.Args = extension.Args
	}
	if extension.Resolver != nil {
		def.Resolver = extension.Resolver
	}
	if extension.Deprecation != nil {
		def.Deprecation = extension.Deprecation
	}
	if extension.Extensions != nil {
		merged := make(map[string]interface{}, len(def.Extensions)+len(extension.Extensions))
		for k, v := range def.Extensions {
			merged[k] = v
		}
		for k, v := range extension.Extensions {
			merged[k] = v
		}
		def.Extensions = merged
	}

	return c.SetField(name, graphql.FieldConfig{
		Type:         def.Type,
		Description:  def.Description,
		DefaultValue: def.DefaultValue,
		Args:         def.Args,
		Resolver:     def.Resolver,
		Deprecation:  def.Deprecation,
		Extensions:   def.Extensions,
	})
}

// ReorderFields rebuilds the field order so that the named fields, in the given order, come first.
// Names that do not exist are skipped; remaining fields keep their prior relative order.
func (c *ObjectComposer) ReorderFields(names ...string) error {
	current, err := c.object.Fields()
	if err != nil {
		return err
	}

	var reordered graphql.FieldDefinitionMap
	for _, name := range names {
		if def, ok := current.Get(name); ok && !reordered.Has(name) {
			reordered.Set(name, def)
		}
	}
	for _, name := range current.Names() {
		if !reordered.Has(name) {
			def, _ := current.Get(name)
			reordered.Set(name, def)
		}
	}
	return c.object.SetFieldDefinitions(reordered)
}

// MakeRequired wraps the type of each named field in the non-null marker. Fields that are already
// required and names that do not exist are skipped.
func (c *ObjectComposer) MakeRequired(names ...string) error {
	current, err := c.object.Fields()
	if err != nil {
		return err
	}

	updated := current.Clone()
	for _, name := range names {
		def, ok := updated.Get(name)
		if !ok || graphql.IsNonNullDefinition(def.Type) {
			continue
		}
		def.Type = graphql.NonNullOf(def.Type)
		updated.Set(name, def)
	}
	return c.object.SetFieldDefinitions(updated)
}

// MakeOptional unwraps the non-null marker from each named field; fields that are already optional
// are left alone. Unlike the other mutators, naming a field that does not exist at all is an
// error.
func (c *ObjectComposer) MakeOptional(names ...string) error {
	current, err := c.object.Fields()
	if err != nil {
		return err
	}

	updated := current.Clone()
	for _, name := range names {
		def, ok := updated.Get(name)
		if !ok {
			return c.unknownFieldError("compose.MakeOptional", name, current.Names())
		}
		if !graphql.IsNonNullDefinition(def.Type) {
			continue
		}
		def.Type = graphql.NullableDefinitionOf(def.Type)
		updated.Set(name, def)
	}
	return c.object.SetFieldDefinitions(updated)
}

// DeprecateFields marks each named field as deprecated with the given reason. Naming a field that
// does not exist is an error.
func (c *ObjectComposer) DeprecateFields(reasons map[string]string) error {
	current, err := c.object.Fields()
	if err != nil {
		return err
	}

	// Apply in sorted name order so the reported unknown field is stable.
	names := make([]string, 0, len(reasons))
	for name := range reasons {
		names = append(names, name)
	}
	sort.Strings(names)

	updated := current.Clone()
	for _, name := range names {
		def, ok := updated.Get(name)
		if !ok {
			return c.unknownFieldError("compose.DeprecateFields", name, current.Names())
		}
		def.Deprecation = &graphql.Deprecation{Reason: reasons[name]}
		updated.Set(name, def)
	}
	return c.object.SetFieldDefinitions(updated)
}

func (c *ObjectComposer) unknownFieldError(op graphql.Op, name string, known []string) error {
	message := `Field "` + name + `" does not exist on type ` + c.object.Name() + "."
	if suggestions := util.SuggestionList(name, known); len(suggestions) > 0 {
		message += " Did you mean " + util.QuotedOrList(suggestions, 5) + "?"
	}
	return graphql.NewError(message, graphql.ErrKindAccess, op)
}

//===----------------------------------------------------------------------------------------====//
// Identity & Metadata
//===----------------------------------------------------------------------------------------====//

// TypeName returns the name of the wrapped type.
func (c *ObjectComposer) TypeName() string {
	return c.object.Name()
}

// SetTypeName renames the wrapped type. The name must be a valid identifier.
func (c *ObjectComposer) SetTypeName(name string) error {
	if !graphql.IsValidName(name) {
		return graphql.NewError(
			`Name "`+name+`" is not a valid Object type name.`,
			graphql.ErrKindInvalidArgument, graphql.Op("compose.SetTypeName"))
	}
	c.object.SetName(name)
	return nil
}

// Description returns the description of the wrapped type.
func (c *ObjectComposer) Description() string {
	return c.object.Description()
}

// SetDescription updates the description of the wrapped type.
func (c *ObjectComposer) SetDescription(description string) {
	c.object.SetDescription(description)
}

// Type returns the wrapped type instance.
func (c *ObjectComposer) Type() *graphql.Object {
	return c.object
}

// TypeAsRequired returns the wrapped type in a non-null wrapper. The wrapper is freshly built on
// every call.
func (c *ObjectComposer) TypeAsRequired() *graphql.NonNull {
	return graphql.MustNewNonNullOfType(c.object)
}

//===----------------------------------------------------------------------------------------====//
// Cloning
//===----------------------------------------------------------------------------------------====//

// Clone produces a composer over a new type named newName with a copy of every current field.
// Field definitions are copied one level deep: mutating a field on the clone never affects the
// original, but structures nested inside a definition (Args, Extensions contents) are shared and
// must be treated as copy-on-write.
func (c *ObjectComposer) Clone(newName string) (*ObjectComposer, error) {
	if len(newName) == 0 {
		return nil, graphql.NewError(
			"Must provide a new name for the cloned type.",
			graphql.ErrKindMissingArgument, graphql.Op("compose.Clone"))
	}

	fields, err := c.object.Fields()
	if err != nil {
		return nil, err
	}

	object, err := graphql.NewObject(&graphql.ObjectConfig{
		Name:        newName,
		Description: c.object.Description(),
		Extensions:  c.object.Extensions(),
	})
	if err != nil {
		return nil, err
	}
	if err := object.SetFieldDefinitions(fields.Clone()); err != nil {
		return nil, err
	}
	return &ObjectComposer{object: object}, nil
}

//===----------------------------------------------------------------------------------------====//
// Dotted-Path Lookup
//===----------------------------------------------------------------------------------------====//

// Get navigates from this composer through nested field types along a dotted path such as
// "address.city", unwrapping NonNull and List markers as needed. The terminus is returned as an
// *ObjectComposer when the path ends on a field of object type, and as a graphql.FieldDefinition
// otherwise. Any segment that does not resolve returns ok=false; Get never errors and never
// mutates stored state.
func (c *ObjectComposer) Get(path string) (interface{}, bool) {
	return c.GetPath(strings.Split(path, ".")...)
}

// GetPath is Get with the path pre-split into segments.
func (c *ObjectComposer) GetPath(segments ...string) (interface{}, bool) {
	if len(segments) == 0 {
		return c, true
	}

	current := c
	for i, segment := range segments {
		def, ok := current.Field(segment)
		if !ok {
			return nil, false
		}

		t, hasType := graphql.UnderlyingType(def.Type)
		object, isObject := t.(*graphql.Object)

		if i == len(segments)-1 {
			if hasType && isObject {
				return &ObjectComposer{object: object}, true
			}
			return def, true
		}

		if !hasType || !isObject {
			return nil, false
		}
		current = &ObjectComposer{object: object}
	}
	return nil, false
}
