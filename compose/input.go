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
	"github.com/huandu/xstrings"

	"github.com/petlack/graphql-compose/graphql"
)

// ToInputObject derives an InputObject type from the current fields, named "<TypeName>Input".
// Argument and resolver configs cannot appear on input fields and are dropped; type references,
// including NonNull and List wrappers, carry over as-is.
func (c *ObjectComposer) ToInputObject() (*graphql.InputObject, error) {
	fields, err := c.object.Fields()
	if err != nil {
		return nil, err
	}

	inputFields := make(graphql.Fields, fields.Len())
	for _, name := range fields.Names() {
		def, _ := fields.Get(name)
		inputFields[name] = graphql.FieldConfig{
			Type:         def.Type,
			Description:  def.Description,
			DefaultValue: def.DefaultValue,
			Deprecation:  def.Deprecation,
			Extensions:   def.Extensions,
		}
	}

	return graphql.NewInputObject(&graphql.InputObjectConfig{
		Name:        xstrings.FirstRuneToUpper(c.object.Name()) + "Input",
		Description: c.object.Description(),
		Fields:      inputFields,
	})
}
