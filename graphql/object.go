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

// ObjectConfig provides specification to define an Object type.
type ObjectConfig struct {
	// Name of the defining Object. Required.
	Name string

	// Description for the Object type
	Description string

	// Fields in the object. Ignored when FieldsThunk is set.
	Fields Fields

	// FieldsThunk supplies fields on demand. Use a thunk when field types refer to types that are
	// not defined yet at the point the config is written.
	FieldsThunk FieldsThunk

	// Extensions carries arbitrary metadata attached to the type. Opaque to this library.
	Extensions map[string]interface{}
}

// Object Type Definition
//
// GraphQL queries are hierarchical and composed, describing a tree of information. While Scalar
// types describe the leaf values of these hierarchical queries, Objects describe the intermediate
// levels.
//
// Fields are held behind a thunk and only materialized on demand. The materialized map is cached;
// installing a new thunk via SetFieldsConfigThunk or SetFieldDefinitions drops the cache so the next
// read recomputes.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Objects
type Object struct {
	name        string
	description string
	extensions  map[string]interface{}

	// thunk produces the normalized field map on demand.
	thunk func() (FieldDefinitionMap, error)

	// fields is the materialized cache; valid tells whether it holds the result of the current
	// thunk.
	fields FieldDefinitionMap
	valid  bool
}

var (
	_ Type                = (*Object)(nil)
	_ TypeWithName        = (*Object)(nil)
	_ TypeWithDescription = (*Object)(nil)
)

// NewObject defines an Object type from an ObjectConfig.
func NewObject(config *ObjectConfig) (*Object, error) {
	if config == nil {
		return nil, NewError("Must provide a config for Object.", ErrKindInvalidArgument)
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for Object.", ErrKindMissingArgument)
	}
	if !IsValidName(config.Name) {
		return nil, NewError(`Name "`+config.Name+`" is not a valid Object type name.`, ErrKindInvalidArgument)
	}

	o := &Object{
		name:        config.Name,
		description: config.Description,
		extensions:  config.Extensions,
	}

	switch {
	case config.FieldsThunk != nil:
		o.SetFieldsConfigThunk(config.FieldsThunk)
	default:
		fields := config.Fields
		o.SetFieldsConfigThunk(func() Fields { return fields })
	}

	return o, nil
}

// MustNewObject is a convenience function equivalent to NewObject but panics on failure instead of
// returning an error.
func MustNewObject(config *ObjectConfig) *Object {
	o, err := NewObject(config)
	if err != nil {
		panic(err)
	}
	return o
}

// graphqlType implements Type.
func (*Object) graphqlType() {}

// String implements Type.
func (o *Object) String() string {
	return o.name
}

// Name implements TypeWithName.
func (o *Object) Name() string {
	return o.name
}

// SetName renames the type.
func (o *Object) SetName(name string) {
	o.name = name
}

// Description implements TypeWithDescription.
func (o *Object) Description() string {
	return o.description
}

// SetDescription updates the type description.
func (o *Object) SetDescription(description string) {
	o.description = description
}

// Extensions returns arbitrary metadata attached to the type at construction.
func (o *Object) Extensions() map[string]interface{} {
	return o.extensions
}

// Fields materializes and returns the field map. The result is cached until the thunk is replaced.
// The returned map is the internal one; callers that intend to mutate it must work on a copy (see
// FieldDefinitionMap.Clone).
func (o *Object) Fields() (FieldDefinitionMap, error) {
	if !o.valid {
		fields, err := o.thunk()
		if err != nil {
			return FieldDefinitionMap{}, err
		}
		o.fields = fields
		o.valid = true
	}
	return o.fields, nil
}

// SetFieldsConfigThunk installs a thunk producing a raw Fields config map. The map is run through
// BuildFieldDefinitionMap when first materialized. Any cached field map is dropped.
func (o *Object) SetFieldsConfigThunk(thunk FieldsThunk) {
	o.thunk = func() (FieldDefinitionMap, error) {
		return BuildFieldDefinitionMap(thunk(), o.name)
	}
	o.InvalidateFields()
}

// SetFieldDefinitions validates the given normalized map and installs a thunk resolving to it. Any
// cached field map is dropped so a previously finalized schema recomputes fields on next access.
func (o *Object) SetFieldDefinitions(fieldMap FieldDefinitionMap) error {
	if err := ValidateFieldDefinitionMap(fieldMap, o.name); err != nil {
		return err
	}
	o.thunk = func() (FieldDefinitionMap, error) {
		return fieldMap, nil
	}
	o.InvalidateFields()
	return nil
}

// InvalidateFields drops the materialized field cache. The next call to Fields re-forces the
// thunk.
func (o *Object) InvalidateFields() {
	o.fields = FieldDefinitionMap{}
	o.valid = false
}
