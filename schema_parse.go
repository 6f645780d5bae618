// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphdoc

package graphdoc

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// wireResponse matches the introspection envelope, either the full HTTP
// response shape {"data":{"__schema":{...}}} or a top-level __schema object.
type wireResponse struct {
	Data   *wireData   `json:"data"`
	Schema *wireSchema `json:"__schema"`
}

type wireData struct {
	Schema *wireSchema `json:"__schema"`
}

type wireSchema struct {
	QueryType        *wireTypeName   `json:"queryType"`
	MutationType     *wireTypeName   `json:"mutationType"`
	SubscriptionType *wireTypeName   `json:"subscriptionType"`
	Types            []wireType      `json:"types"`
	Directives       []wireDirective `json:"directives"`
}

type wireTypeName struct {
	Name *string `json:"name"`
}

type wireType struct {
	Kind          *string          `json:"kind"`
	Name          *string          `json:"name"`
	Description   string           `json:"description"`
	Fields        []wireField      `json:"fields"`
	InputFields   []wireInputValue `json:"inputFields"`
	Interfaces    []wireTypeRef    `json:"interfaces"`
	EnumValues    []wireEnumValue  `json:"enumValues"`
	PossibleTypes []wireTypeRef    `json:"possibleTypes"`
}

type wireField struct {
	Name              *string          `json:"name"`
	Description       string           `json:"description"`
	Args              []wireInputValue `json:"args"`
	Type              *wireTypeRef     `json:"type"`
	IsDeprecated      bool             `json:"isDeprecated"`
	DeprecationReason string           `json:"deprecationReason"`
}

type wireInputValue struct {
	Name         *string      `json:"name"`
	Description  string       `json:"description"`
	Type         *wireTypeRef `json:"type"`
	DefaultValue string       `json:"defaultValue"`
}

type wireEnumValue struct {
	Name              *string `json:"name"`
	Description       string  `json:"description"`
	IsDeprecated      bool    `json:"isDeprecated"`
	DeprecationReason string  `json:"deprecationReason"`
}

type wireTypeRef struct {
	Kind   *string      `json:"kind"`
	Name   string       `json:"name"`
	OfType *wireTypeRef `json:"ofType"`
}

type wireDirective struct {
	Name        *string          `json:"name"`
	Description string           `json:"description"`
	Locations   []string         `json:"locations"`
	Args        []wireInputValue `json:"args"`
}

// ParseSchema decodes one introspection JSON payload into an immutable Schema.
// Payloads missing required members fail with ErrParseSchema naming the
// offending field path; no partial Schema is returned.
func ParseSchema(raw []byte) (*Schema, error) {
	var response wireResponse
	if err := json.Unmarshal(raw, &response); err != nil {
		return nil, fmt.Errorf("%w: decode payload: %w", ErrParseSchema, err)
	}

	wire := response.Schema
	if wire == nil && response.Data != nil {
		wire = response.Data.Schema
	}

	if wire == nil {
		return nil, fmt.Errorf("%w: missing __schema object", ErrParseSchema)
	}

	if wire.Types == nil {
		return nil, fmt.Errorf("%w: missing __schema.types", ErrParseSchema)
	}

	schema := &Schema{
		QueryType:        rootTypeName(wire.QueryType),
		MutationType:     rootTypeName(wire.MutationType),
		SubscriptionType: rootTypeName(wire.SubscriptionType),
		Types:            make([]TypeDef, 0, len(wire.Types)),
		byName:           make(map[string]TypeDef, len(wire.Types)),
	}

	for index, rawType := range wire.Types {
		def, err := buildTypeDef(rawType, index)
		if err != nil {
			return nil, err
		}

		schema.Types = append(schema.Types, def)
		if _, exists := schema.byName[def.TypeName()]; !exists {
			schema.byName[def.TypeName()] = def
		}
	}

	directives, err := buildDirectives(wire.Directives)
	if err != nil {
		return nil, err
	}

	schema.Directives = directives
	return schema, nil
}

// rootTypeName extracts an optional root operation type name.
func rootTypeName(wire *wireTypeName) string {
	if wire == nil || wire.Name == nil {
		return ""
	}

	return *wire.Name
}

// buildTypeDef converts one wire type into its kind variant.
func buildTypeDef(wire wireType, index int) (TypeDef, error) {
	if wire.Name == nil || *wire.Name == "" {
		return nil, fmt.Errorf("%w: missing __schema.types[%d].name", ErrParseSchema, index)
	}

	name := *wire.Name
	if wire.Kind == nil || *wire.Kind == "" {
		return nil, fmt.Errorf("%w: missing __schema.types[%d].kind (type %q)", ErrParseSchema, index, name)
	}

	switch TypeKind(*wire.Kind) {
	case KindObject:
		fields, err := buildFields(wire.Fields, index)
		if err != nil {
			return nil, err
		}

		return &ObjectDef{
			Name:        name,
			Description: wire.Description,
			Fields:      fields,
			Interfaces:  typeRefNames(wire.Interfaces),
		}, nil
	case KindInterface:
		fields, err := buildFields(wire.Fields, index)
		if err != nil {
			return nil, err
		}

		return &InterfaceDef{
			Name:          name,
			Description:   wire.Description,
			Fields:        fields,
			PossibleTypes: typeRefNames(wire.PossibleTypes),
		}, nil
	case KindInputObject:
		inputs, err := buildInputValues(wire.InputFields, fmt.Sprintf("__schema.types[%d].inputFields", index))
		if err != nil {
			return nil, err
		}

		return &InputObjectDef{
			Name:        name,
			Description: wire.Description,
			InputFields: inputs,
		}, nil
	case KindEnum:
		values, err := buildEnumValues(wire.EnumValues, index)
		if err != nil {
			return nil, err
		}

		return &EnumDef{
			Name:        name,
			Description: wire.Description,
			Values:      values,
		}, nil
	case KindUnion:
		return &UnionDef{
			Name:        name,
			Description: wire.Description,
			Members:     typeRefNames(wire.PossibleTypes),
		}, nil
	case KindScalar:
		return &ScalarDef{
			Name:        name,
			Description: wire.Description,
		}, nil
	default:
		return nil, fmt.Errorf("%w: invalid __schema.types[%d].kind %q (type %q)", ErrParseSchema, index, *wire.Kind, name)
	}
}

// buildFields converts wire fields for one type, validating member names.
func buildFields(wire []wireField, typeIndex int) ([]Field, error) {
	if len(wire) == 0 {
		return nil, nil
	}

	out := make([]Field, 0, len(wire))
	for fieldIndex, raw := range wire {
		if raw.Name == nil || *raw.Name == "" {
			return nil, fmt.Errorf("%w: missing __schema.types[%d].fields[%d].name", ErrParseSchema, typeIndex, fieldIndex)
		}

		args, err := buildInputValues(raw.Args, fmt.Sprintf("__schema.types[%d].fields[%d].args", typeIndex, fieldIndex))
		if err != nil {
			return nil, err
		}

		out = append(out, Field{
			Name:              *raw.Name,
			Description:       raw.Description,
			Args:              args,
			Type:              buildTypeRef(raw.Type),
			IsDeprecated:      raw.IsDeprecated,
			DeprecationReason: raw.DeprecationReason,
		})
	}

	return out, nil
}

// buildInputValues converts wire input values at the given field path.
func buildInputValues(wire []wireInputValue, path string) ([]InputValue, error) {
	if len(wire) == 0 {
		return nil, nil
	}

	out := make([]InputValue, 0, len(wire))
	for index, raw := range wire {
		if raw.Name == nil || *raw.Name == "" {
			return nil, fmt.Errorf("%w: missing %s[%d].name", ErrParseSchema, path, index)
		}

		out = append(out, InputValue{
			Name:         *raw.Name,
			Description:  raw.Description,
			Type:         buildTypeRef(raw.Type),
			DefaultValue: raw.DefaultValue,
		})
	}

	return out, nil
}

// buildEnumValues converts wire enum values for one type.
func buildEnumValues(wire []wireEnumValue, typeIndex int) ([]EnumValue, error) {
	if len(wire) == 0 {
		return nil, nil
	}

	out := make([]EnumValue, 0, len(wire))
	for index, raw := range wire {
		if raw.Name == nil || *raw.Name == "" {
			return nil, fmt.Errorf("%w: missing __schema.types[%d].enumValues[%d].name", ErrParseSchema, typeIndex, index)
		}

		out = append(out, EnumValue{
			Name:              *raw.Name,
			Description:       raw.Description,
			IsDeprecated:      raw.IsDeprecated,
			DeprecationReason: raw.DeprecationReason,
		})
	}

	return out, nil
}

// buildDirectives converts schema directive declarations.
func buildDirectives(wire []wireDirective) ([]Directive, error) {
	if len(wire) == 0 {
		return nil, nil
	}

	out := make([]Directive, 0, len(wire))
	for index, raw := range wire {
		if raw.Name == nil || *raw.Name == "" {
			return nil, fmt.Errorf("%w: missing __schema.directives[%d].name", ErrParseSchema, index)
		}

		args, err := buildInputValues(raw.Args, fmt.Sprintf("__schema.directives[%d].args", index))
		if err != nil {
			return nil, err
		}

		out = append(out, Directive{
			Name:        *raw.Name,
			Description: raw.Description,
			Locations:   raw.Locations,
			Args:        args,
		})
	}

	return out, nil
}

// buildTypeRef converts one wire ofType chain.
func buildTypeRef(wire *wireTypeRef) *TypeRef {
	if wire == nil {
		return nil
	}

	kind := TypeKind("")
	if wire.Kind != nil {
		kind = TypeKind(*wire.Kind)
	}

	return &TypeRef{
		Kind:   kind,
		Name:   wire.Name,
		OfType: buildTypeRef(wire.OfType),
	}
}

// typeRefNames collects named references, skipping unnamed entries.
func typeRefNames(wire []wireTypeRef) []string {
	if len(wire) == 0 {
		return nil
	}

	out := make([]string, 0, len(wire))
	for _, raw := range wire {
		if raw.Name == "" {
			continue
		}

		out = append(out, raw.Name)
	}

	return out
}
