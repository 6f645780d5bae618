// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphdoc

package graphdoc

import (
	"sort"
	"strings"
)

// renderUnit renders one entity kind, returning empty text when the schema
// has no entities of that kind.
func renderUnit(schema *Schema, unit string, split bool) (string, error) {
	switch unit {
	case UnitQueries:
		return renderOperations(schema, schema.QueryType, unit, split)
	case UnitMutations:
		return renderOperations(schema, schema.MutationType, unit, split)
	case UnitSubscriptions:
		return renderOperations(schema, schema.SubscriptionType, unit, split)
	default:
		return renderTypeSections(schema, unit, split)
	}
}

// renderOperations renders the operation fields of one root type. A missing
// root type name, an unresolved root type or a root type without fields all
// omit the unit entirely.
func renderOperations(schema *Schema, rootName, unit string, split bool) (string, error) {
	if rootName == "" {
		return "", nil
	}

	def, ok := schema.TypeByName(rootName)
	if !ok {
		return "", nil
	}

	root, ok := def.(*ObjectDef)
	if !ok || len(root.Fields) == 0 {
		return "", nil
	}

	fields := make([]Field, len(root.Fields))
	copy(fields, root.Fields)
	sort.Slice(fields, func(i, j int) bool { return fields[i].Name < fields[j].Name })

	var out strings.Builder
	out.WriteString(Heading(1, TitleCase(unit)))
	if root.Description != "" {
		out.WriteString(Description(root.Description))
	}

	for _, field := range fields {
		out.WriteString(Heading(2, field.Name))
		if field.IsDeprecated {
			out.WriteString(Notice(strings.TrimSpace(deprecationSuffix(field.IsDeprecated, field.DeprecationReason))))
		}

		if field.Description != "" {
			out.WriteString(Description(field.Description))
		}

		if field.Type != nil {
			out.WriteString(Label("Type", typeCell(schema, field.Type, split)))
		}

		if len(field.Args) > 0 {
			out.WriteString(Heading(3, "Arguments"))
			table, err := inputValueTable(schema, field.Args, split)
			if err != nil {
				return "", err
			}

			out.WriteString(table)
		}
	}

	return out.String(), nil
}

// renderTypeSections renders all declared types of one kind sorted by name.
func renderTypeSections(schema *Schema, unit string, split bool) (string, error) {
	defs := schema.TypesOfKind(unitTypeKinds[unit])
	if len(defs) == 0 {
		return "", nil
	}

	var out strings.Builder
	out.WriteString(Heading(1, TitleCase(unit)))

	for _, def := range defs {
		section, err := renderTypeDef(schema, def, split)
		if err != nil {
			return "", err
		}

		out.WriteString(section)
	}

	return out.String(), nil
}

// renderTypeDef renders one type section with its kind-specific members.
func renderTypeDef(schema *Schema, def TypeDef, split bool) (string, error) {
	var out strings.Builder
	out.WriteString(Heading(2, def.TypeName()))
	if description := def.TypeDescription(); description != "" {
		out.WriteString(Description(description))
	}

	switch typed := def.(type) {
	case *ObjectDef:
		if len(typed.Interfaces) > 0 {
			out.WriteString(Heading(3, "Implements"))
			out.WriteString(List(linkedNames(schema, typed.Interfaces, split)))
		}

		if len(typed.Fields) > 0 {
			out.WriteString(Heading(3, "Fields"))
			table, err := fieldTable(schema, typed.Fields, split)
			if err != nil {
				return "", err
			}

			out.WriteString(table)
		}
	case *InterfaceDef:
		if len(typed.Fields) > 0 {
			out.WriteString(Heading(3, "Fields"))
			table, err := fieldTable(schema, typed.Fields, split)
			if err != nil {
				return "", err
			}

			out.WriteString(table)
		}

		if len(typed.PossibleTypes) > 0 {
			out.WriteString(Heading(3, "Implemented by"))
			out.WriteString(List(linkedNames(schema, typed.PossibleTypes, split)))
		}
	case *InputObjectDef:
		if len(typed.InputFields) > 0 {
			out.WriteString(Heading(3, "Input fields"))
			table, err := inputValueTable(schema, typed.InputFields, split)
			if err != nil {
				return "", err
			}

			out.WriteString(table)
		}
	case *EnumDef:
		if len(typed.Values) > 0 {
			out.WriteString(Heading(3, "Values"))
			table, err := enumValueTable(typed.Values)
			if err != nil {
				return "", err
			}

			out.WriteString(table)
		}
	case *UnionDef:
		if len(typed.Members) > 0 {
			out.WriteString(Heading(3, "Possible types"))
			out.WriteString(List(linkedNames(schema, typed.Members, split)))
		}
	case *ScalarDef:
		// scalars carry no substructure
	}

	return out.String(), nil
}

// fieldTable renders object and interface fields as a member table.
func fieldTable(schema *Schema, fields []Field, split bool) (string, error) {
	rows := make([][]string, 0, len(fields))
	for _, field := range fields {
		rows = append(rows, []string{
			InlineCode(field.Name) + deprecationSuffix(field.IsDeprecated, field.DeprecationReason),
			typeCell(schema, field.Type, split),
			sanitizeCell(field.Description),
		})
	}

	return Table([]string{"Name", "Type", "Description"}, rows)
}

// inputValueTable renders arguments and input object fields as a member table.
func inputValueTable(schema *Schema, values []InputValue, split bool) (string, error) {
	rows := make([][]string, 0, len(values))
	for _, value := range values {
		rows = append(rows, []string{
			InlineCode(value.Name),
			typeCell(schema, value.Type, split),
			sanitizeCell(value.Description),
			InlineCode(value.DefaultValue),
		})
	}

	return Table([]string{"Name", "Type", "Description", "Default"}, rows)
}

// enumValueTable renders enum values as a member table.
func enumValueTable(values []EnumValue) (string, error) {
	rows := make([][]string, 0, len(values))
	for _, value := range values {
		rows = append(rows, []string{
			InlineCode(value.Name) + deprecationSuffix(value.IsDeprecated, value.DeprecationReason),
			sanitizeCell(value.Description),
		})
	}

	return Table([]string{"Name", "Description"}, rows)
}

// typeCell renders one type reference, linking the innermost named type when
// it resolves within the schema and degrading to plain inline code otherwise.
func typeCell(schema *Schema, ref *TypeRef, split bool) string {
	label := InlineCode(ref.Decorated())
	if label == "" {
		return ""
	}

	def, ok := schema.TypeByName(ref.Unwrap())
	if !ok {
		return label
	}

	return Link(label, linkTarget(def, split))
}

// linkTarget builds the anchor reference for one resolved type definition.
func linkTarget(def TypeDef, split bool) string {
	anchor := AnchorName(def.TypeName())
	if split {
		return unitForTypeKind(def.TypeKind()) + ".md#" + anchor
	}

	return "#" + anchor
}

// linkedNames renders type name lists, linking every resolvable name.
func linkedNames(schema *Schema, names []string, split bool) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		label := InlineCode(name)
		if def, ok := schema.TypeByName(name); ok {
			label = Link(label, linkTarget(def, split))
		}

		out = append(out, label)
	}

	return out
}

// deprecationSuffix annotates deprecated members, with the reason when known.
func deprecationSuffix(deprecated bool, reason string) string {
	if !deprecated {
		return ""
	}

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return " (deprecated)"
	}

	return " (deprecated: " + reason + ")"
}
