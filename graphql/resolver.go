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
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"
	gqlparser "github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
)

// defaultResolverCacheSize bounds the number of parsed definition strings remembered by a
// TypeResolver.
const defaultResolverCacheSize = 256

// TypeResolver constructs Type instances from GraphQL SDL type-definition strings, e.g.
//
//	type Person { name: String, nickName: String }
//
// The parse is memoized per definition string, but every call constructs fresh Type instances:
// each caller exclusively owns the types it gets back and may mutate them freely.
type TypeResolver struct {
	cache *lru.Cache[string, []*ast.Definition]
}

// TypeResolverOption configures a TypeResolver.
type TypeResolverOption func(*typeResolverConfig)

type typeResolverConfig struct {
	cacheSize int
}

// TypeResolverCacheSize sets the number of resolved definition strings kept in memory.
func TypeResolverCacheSize(size int) TypeResolverOption {
	return func(config *typeResolverConfig) {
		config.cacheSize = size
	}
}

// NewTypeResolver creates a TypeResolver.
func NewTypeResolver(opts ...TypeResolverOption) (*TypeResolver, error) {
	config := typeResolverConfig{
		cacheSize: defaultResolverCacheSize,
	}
	for _, opt := range opts {
		opt(&config)
	}

	cache, err := lru.New[string, []*ast.Definition](config.cacheSize)
	if err != nil {
		return nil, NewError("Failed to create resolver cache.", ErrKindInvalidArgument, err)
	}
	return &TypeResolver{cache: cache}, nil
}

// MustNewTypeResolver is a panic-on-fail version of NewTypeResolver.
func MustNewTypeResolver(opts ...TypeResolverOption) *TypeResolver {
	r, err := NewTypeResolver(opts...)
	if err != nil {
		panic(err)
	}
	return r
}

// Resolve parses the given SDL source and constructs the type it declares. When the source
// declares multiple types, the first declared type is returned and the others are reachable
// through its fields. Types declared in one source may reference each other freely; a reference to
// a name declared nowhere in the source fails.
//
// Each call returns newly constructed instances. Only the parsed definitions are cached;
// mutating a returned type never shows through later Resolve calls.
func (r *TypeResolver) Resolve(source string) (Type, error) {
	defs, ok := r.cache.Get(source)
	if !ok {
		parsed, err := parseDefinitions(source)
		if err != nil {
			return nil, err
		}
		defs = parsed
		r.cache.Add(source, defs)
	}

	types, err := constructTypes(defs)
	if err != nil {
		return nil, err
	}
	return types[defs[0].Name], nil
}

func parseDefinitions(source string) ([]*ast.Definition, error) {
	schema, gqlErr := gqlparser.LoadSchema(&ast.Source{
		Name:  "type definition",
		Input: source,
	})
	if gqlErr != nil {
		return nil, NewError("Failed to parse type definition: "+gqlErr.Message, ErrKindSyntax)
	}

	defs := make([]*ast.Definition, 0, len(schema.Types))
	for _, def := range schema.Types {
		if !def.BuiltIn {
			defs = append(defs, def)
		}
	}
	if len(defs) == 0 {
		return nil, NewError("Type definition source declares no types.", ErrKindInvalidArgument)
	}

	// Restore document order; schema.Types is an unordered map.
	sort.Slice(defs, func(i, j int) bool {
		return positionOf(defs[i]) < positionOf(defs[j])
	})
	return defs, nil
}

func positionOf(def *ast.Definition) int {
	if def.Position == nil {
		return 0
	}
	return def.Position.Start
}

// constructTypes builds all declared types. Objects are created first with their field thunks
// referencing the local set, so mutually recursive declarations work without forward declarations.
func constructTypes(defs []*ast.Definition) (map[string]Type, error) {
	types := make(map[string]Type, len(defs))

	// Objects first so input objects and field references can see them.
	for _, def := range defs {
		switch def.Kind {
		case ast.Object:
			o, err := NewObject(&ObjectConfig{
				Name:        def.Name,
				Description: def.Description,
			})
			if err != nil {
				return nil, err
			}
			types[def.Name] = o

		case ast.Scalar:
			s, err := NewScalar(def.Name, def.Description)
			if err != nil {
				return nil, err
			}
			types[def.Name] = s

		case ast.InputObject:
			// Constructed below once every named type exists.

		default:
			return nil, NewError(`Type "`+def.Name+`" is not an object, input object or scalar type.`, ErrKindInvalidType)
		}
	}

	// Input objects are constructed eagerly, so ones that depend on each other are built in
	// dependency order. Iterate until no further progress; anything left is part of an input
	// cycle, which input objects cannot express. They come before object field conversion since
	// field arguments may refer to them.
	pending := make([]*ast.Definition, 0, len(defs))
	for _, def := range defs {
		if def.Kind == ast.InputObject {
			pending = append(pending, def)
		}
	}
	for len(pending) > 0 {
		var (
			remaining []*ast.Definition
			lastErr   error
		)
		for _, def := range pending {
			fields, err := convertFieldList(def, types)
			if err != nil {
				remaining = append(remaining, def)
				lastErr = err
				continue
			}
			in, err := NewInputObject(&InputObjectConfig{
				Name:        def.Name,
				Description: def.Description,
				Fields:      fields,
			})
			if err != nil {
				return nil, err
			}
			types[def.Name] = in
		}
		if len(remaining) == len(pending) {
			return nil, lastErr
		}
		pending = remaining
	}

	for _, def := range defs {
		if def.Kind != ast.Object {
			continue
		}
		fields, err := convertFieldList(def, types)
		if err != nil {
			return nil, err
		}
		o := types[def.Name].(*Object)
		o.SetFieldsConfigThunk(func() Fields { return fields })
	}

	return types, nil
}

func convertFieldList(def *ast.Definition, types map[string]Type) (Fields, error) {
	fields := make(Fields, len(def.Fields))
	for _, field := range def.Fields {
		typeDef, err := convertTypeRef(field.Type, types)
		if err != nil {
			return nil, err
		}

		config := FieldConfig{
			Type:        typeDef,
			Description: field.Description,
		}

		if len(field.Arguments) > 0 {
			args := make(ArgumentConfigMap, len(field.Arguments))
			for _, arg := range field.Arguments {
				argType, err := convertTypeRef(arg.Type, types)
				if err != nil {
					return nil, err
				}
				args[arg.Name] = ArgumentConfig{
					Description: arg.Description,
					Type:        argType,
				}
			}
			config.Args = args
		}

		fields[field.Name] = config
	}
	return fields, nil
}

func convertTypeRef(t *ast.Type, types map[string]Type) (TypeDefinition, error) {
	var inner TypeDefinition
	switch {
	case t.Elem != nil:
		elem, err := convertTypeRef(t.Elem, types)
		if err != nil {
			return nil, err
		}
		inner = ListOf(elem)

	default:
		if _, ok := BuiltinScalar(t.NamedType); ok {
			// Built-in scalars are referenced by name; UnderlyingType resolves them.
			inner = Ref(t.NamedType)
		} else if local, ok := types[t.NamedType]; ok {
			inner = T(local)
		} else {
			return nil, NewError(`Unknown type "`+t.NamedType+`" referenced in type definition.`, ErrKindInvalidType)
		}
	}

	if t.NonNull {
		return NonNullOf(inner), nil
	}
	return inner, nil
}
