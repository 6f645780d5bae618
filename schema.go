// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphdoc

package graphdoc

import (
	"sort"
	"strings"
)

const (
	// KindScalar marks a leaf type without substructure.
	KindScalar TypeKind = "SCALAR"
	// KindObject marks a type with fields.
	KindObject TypeKind = "OBJECT"
	// KindInterface marks an abstract type with fields and possible types.
	KindInterface TypeKind = "INTERFACE"
	// KindUnion marks a type with member types and no own fields.
	KindUnion TypeKind = "UNION"
	// KindEnum marks a type with a closed value set.
	KindEnum TypeKind = "ENUM"
	// KindInputObject marks a type with input fields.
	KindInputObject TypeKind = "INPUT_OBJECT"
	// KindList wraps another type reference as a list.
	KindList TypeKind = "LIST"
	// KindNonNull wraps another type reference as non-nullable.
	KindNonNull TypeKind = "NON_NULL"
)

// TypeKind is the GraphQL introspection kind discriminator.
type TypeKind string

// TypeRef is a possibly wrapped reference to a named type. It holds only the
// name; resolution against the owning Schema happens at render time.
type TypeRef struct {
	OfType *TypeRef
	Kind   TypeKind
	Name   string
}

// Decorated renders the reference with GraphQL wrapper notation, for example
// [String!]!.
func (r *TypeRef) Decorated() string {
	if r == nil {
		return ""
	}

	switch r.Kind {
	case KindNonNull:
		return r.OfType.Decorated() + "!"
	case KindList:
		return "[" + r.OfType.Decorated() + "]"
	default:
		return r.Name
	}
}

// Unwrap returns the innermost named type, or empty string for a malformed chain.
func (r *TypeRef) Unwrap() string {
	for r != nil {
		if r.OfType == nil {
			return r.Name
		}

		r = r.OfType
	}

	return ""
}

// Field is one output field of an object or interface type.
type Field struct {
	Name              string
	Description       string
	DeprecationReason string
	Args              []InputValue
	Type              *TypeRef
	IsDeprecated      bool
}

// InputValue is one argument or input object field.
type InputValue struct {
	Type         *TypeRef
	Name         string
	Description  string
	DefaultValue string
}

// EnumValue is one declared value of an enum type.
type EnumValue struct {
	Name              string
	Description       string
	DeprecationReason string
	IsDeprecated      bool
}

// Directive is one directive declaration carried by the schema.
type Directive struct {
	Name        string
	Description string
	Locations   []string
	Args        []InputValue
}

// TypeDef is one named type declaration. Each GraphQL kind has its own
// variant struct so a variant carries only the members its kind allows.
type TypeDef interface {
	TypeName() string
	TypeKind() TypeKind
	TypeDescription() string
}

// ObjectDef is an OBJECT type declaration.
type ObjectDef struct {
	Name        string
	Description string
	Fields      []Field
	Interfaces  []string
}

func (d *ObjectDef) TypeName() string        { return d.Name }
func (d *ObjectDef) TypeKind() TypeKind      { return KindObject }
func (d *ObjectDef) TypeDescription() string { return d.Description }

// InterfaceDef is an INTERFACE type declaration.
type InterfaceDef struct {
	Name          string
	Description   string
	Fields        []Field
	PossibleTypes []string
}

func (d *InterfaceDef) TypeName() string        { return d.Name }
func (d *InterfaceDef) TypeKind() TypeKind      { return KindInterface }
func (d *InterfaceDef) TypeDescription() string { return d.Description }

// InputObjectDef is an INPUT_OBJECT type declaration.
type InputObjectDef struct {
	Name        string
	Description string
	InputFields []InputValue
}

func (d *InputObjectDef) TypeName() string        { return d.Name }
func (d *InputObjectDef) TypeKind() TypeKind      { return KindInputObject }
func (d *InputObjectDef) TypeDescription() string { return d.Description }

// EnumDef is an ENUM type declaration.
type EnumDef struct {
	Name        string
	Description string
	Values      []EnumValue
}

func (d *EnumDef) TypeName() string        { return d.Name }
func (d *EnumDef) TypeKind() TypeKind      { return KindEnum }
func (d *EnumDef) TypeDescription() string { return d.Description }

// UnionDef is a UNION type declaration.
type UnionDef struct {
	Name        string
	Description string
	Members     []string
}

func (d *UnionDef) TypeName() string        { return d.Name }
func (d *UnionDef) TypeKind() TypeKind      { return KindUnion }
func (d *UnionDef) TypeDescription() string { return d.Description }

// ScalarDef is a SCALAR type declaration.
type ScalarDef struct {
	Name        string
	Description string
}

func (d *ScalarDef) TypeName() string        { return d.Name }
func (d *ScalarDef) TypeKind() TypeKind      { return KindScalar }
func (d *ScalarDef) TypeDescription() string { return d.Description }

// Schema is the immutable typed model of one introspected GraphQL schema.
type Schema struct {
	byName map[string]TypeDef

	// QueryType, MutationType and SubscriptionType hold root operation type
	// names; empty string means the operation is unsupported by the API.
	QueryType        string
	MutationType     string
	SubscriptionType string

	// Types preserves introspection declaration order.
	Types      []TypeDef
	Directives []Directive
}

// TypeByName resolves a named type reference against the schema.
func (s *Schema) TypeByName(name string) (TypeDef, bool) {
	def, ok := s.byName[name]
	return def, ok
}

// TypesOfKind returns declared types of one kind sorted by name, skipping
// introspection meta types (names with a __ prefix).
func (s *Schema) TypesOfKind(kind TypeKind) []TypeDef {
	out := make([]TypeDef, 0, len(s.Types))
	for _, def := range s.Types {
		if def.TypeKind() != kind {
			continue
		}

		if strings.HasPrefix(def.TypeName(), "__") {
			continue
		}

		out = append(out, def)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].TypeName() < out[j].TypeName()
	})

	return out
}
