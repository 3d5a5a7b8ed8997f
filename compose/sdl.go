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
	"strconv"
	"strings"

	"github.com/petlack/graphql-compose/graphql"
)

// SDL renders the composed type as a GraphQL schema-definition-language block, with fields in
// their current order.
func SDL(c *ObjectComposer) (string, error) {
	fields, err := c.object.Fields()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if description := c.object.Description(); len(description) > 0 {
		writeDescription(&b, description, "")
	}
	b.WriteString("type ")
	b.WriteString(c.object.Name())
	b.WriteString(" {\n")
	for _, name := range fields.Names() {
		def, _ := fields.Get(name)
		writeField(&b, name, def)
	}
	b.WriteString("}\n")
	return b.String(), nil
}

func writeField(b *strings.Builder, name string, def graphql.FieldDefinition) {
	if len(def.Description) > 0 {
		writeDescription(b, def.Description, "  ")
	}
	b.WriteString("  ")
	b.WriteString(name)

	if len(def.Args) > 0 {
		argNames := make([]string, 0, len(def.Args))
		for argName := range def.Args {
			argNames = append(argNames, argName)
		}
		sort.Strings(argNames)

		b.WriteString("(")
		for i, argName := range argNames {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(argName)
			b.WriteString(": ")
			b.WriteString(def.Args[argName].Type.String())
		}
		b.WriteString(")")
	}

	b.WriteString(": ")
	b.WriteString(def.Type.String())

	if def.Deprecation.Defined() {
		b.WriteString(" @deprecated")
		if len(def.Deprecation.Reason) > 0 {
			b.WriteString("(reason: ")
			b.WriteString(strconv.Quote(def.Deprecation.Reason))
			b.WriteString(")")
		}
	}
	b.WriteString("\n")
}

func writeDescription(b *strings.Builder, description string, indent string) {
	// A literal """ would terminate the block string early.
	description = strings.ReplaceAll(description, `"""`, `\"""`)

	b.WriteString(indent)
	b.WriteString(`"""`)
	b.WriteString("\n")
	for _, line := range strings.Split(description, "\n") {
		b.WriteString(indent)
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString(indent)
	b.WriteString(`"""`)
	b.WriteString("\n")
}
