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
	"github.com/dolmen-go/jsonmap"
	jsoniter "github.com/json-iterator/go"
)

// MarshalJSON implements json.Marshaler. Fields are emitted in insertion order.
func (m FieldDefinitionMap) MarshalJSON() ([]byte, error) {
	ordered := jsonmap.Ordered{
		Order: make([]string, 0, len(m.names)),
		Data:  make(map[string]interface{}, len(m.names)),
	}
	for _, name := range m.names {
		def := m.defs[name]

		field := jsonmap.Ordered{
			Order: []string{"type"},
			Data:  map[string]interface{}{"type": def.Type.String()},
		}
		if len(def.Description) > 0 {
			field.Order = append(field.Order, "description")
			field.Data["description"] = def.Description
		}
		if def.DefaultValue != nil {
			field.Order = append(field.Order, "defaultValue")
			field.Data["defaultValue"] = def.DefaultValue
		}
		if def.Deprecation.Defined() {
			field.Order = append(field.Order, "deprecationReason")
			field.Data["deprecationReason"] = def.Deprecation.Reason
		}

		ordered.Order = append(ordered.Order, name)
		ordered.Data[name] = field
	}
	return jsoniter.Marshal(ordered)
}

// MarshalJSON implements json.Marshaler. The field map is materialized for serialization; an
// unresolvable thunk surfaces as an error here.
func (o *Object) MarshalJSON() ([]byte, error) {
	fields, err := o.Fields()
	if err != nil {
		return nil, err
	}

	ordered := jsonmap.Ordered{
		Order: []string{"name"},
		Data:  map[string]interface{}{"name": o.name},
	}
	if len(o.description) > 0 {
		ordered.Order = append(ordered.Order, "description")
		ordered.Data["description"] = o.description
	}
	ordered.Order = append(ordered.Order, "fields")
	ordered.Data["fields"] = fields

	return jsoniter.Marshal(ordered)
}
