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

// InputObjectConfig provides specification to define an InputObject type.
type InputObjectConfig struct {
	// Name of the defining InputObject. Required.
	Name string

	// Description for the InputObject type
	Description string

	// Fields in the input object. Argument and resolver configs are rejected here since input
	// fields cannot carry them.
	Fields Fields
}

// InputObject Type Definition
//
// An input object defines a structured collection of fields which may be supplied to a field
// argument. It is essentially an Object type but with some constraints on the fields so it can be
// used as an input argument.
//
// Reference: https://facebook.github.io/graphql/June2018/#sec-Input-Objects
type InputObject struct {
	name        string
	description string
	fields      FieldDefinitionMap
}

var (
	_ Type                = (*InputObject)(nil)
	_ TypeWithName        = (*InputObject)(nil)
	_ TypeWithDescription = (*InputObject)(nil)
)

// NewInputObject defines an InputObject type from an InputObjectConfig.
func NewInputObject(config *InputObjectConfig) (*InputObject, error) {
	if config == nil {
		return nil, NewError("Must provide a config for InputObject.", ErrKindInvalidArgument)
	}
	if len(config.Name) == 0 {
		return nil, NewError("Must provide name for InputObject.", ErrKindMissingArgument)
	}
	if !IsValidName(config.Name) {
		return nil, NewError(`Name "`+config.Name+`" is not a valid InputObject type name.`, ErrKindInvalidArgument)
	}

	for name, fieldConfig := range config.Fields {
		if fieldConfig.Args != nil {
			return nil, NewError("Input field "+config.Name+"."+name+" cannot define arguments.", ErrKindInvalidArgument)
		}
		if fieldConfig.Resolver != nil {
			return nil, NewError("Input field "+config.Name+"."+name+" cannot define a resolver.", ErrKindInvalidArgument)
		}
	}

	fields, err := BuildFieldDefinitionMap(config.Fields, config.Name)
	if err != nil {
		return nil, err
	}

	return &InputObject{
		name:        config.Name,
		description: config.Description,
		fields:      fields,
	}, nil
}

// graphqlType implements Type.
func (*InputObject) graphqlType() {}

// String implements Type.
func (o *InputObject) String() string {
	return o.name
}

// Name implements TypeWithName.
func (o *InputObject) Name() string {
	return o.name
}

// Description implements TypeWithDescription.
func (o *InputObject) Description() string {
	return o.description
}

// Fields returns the input field map.
func (o *InputObject) Fields() FieldDefinitionMap {
	return o.fields
}
