// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphdoc

package graphdoc

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// UnitQueries holds the query root type's operation fields.
	UnitQueries = "queries"
	// UnitMutations holds the mutation root type's operation fields.
	UnitMutations = "mutations"
	// UnitSubscriptions holds the subscription root type's operation fields.
	UnitSubscriptions = "subscriptions"
	// UnitObjects holds OBJECT type sections.
	UnitObjects = "objects"
	// UnitInputs holds INPUT_OBJECT type sections.
	UnitInputs = "inputs"
	// UnitInterfaces holds INTERFACE type sections.
	UnitInterfaces = "interfaces"
	// UnitEnums holds ENUM type sections.
	UnitEnums = "enums"
	// UnitUnions holds UNION type sections.
	UnitUnions = "unions"
	// UnitScalars holds SCALAR type sections.
	UnitScalars = "scalars"
)

// unitOrder fixes the canonical output order of entity kinds.
var unitOrder = []string{
	UnitQueries,
	UnitMutations,
	UnitSubscriptions,
	UnitObjects,
	UnitInputs,
	UnitInterfaces,
	UnitEnums,
	UnitUnions,
	UnitScalars,
}

// unitTypeKinds maps type-section units to their introspection kind.
var unitTypeKinds = map[string]TypeKind{
	UnitObjects:    KindObject,
	UnitInputs:     KindInputObject,
	UnitInterfaces: KindInterface,
	UnitEnums:      KindEnum,
	UnitUnions:     KindUnion,
	UnitScalars:    KindScalar,
}

// unitForTypeKind returns the output unit that documents one type kind.
func unitForTypeKind(kind TypeKind) string {
	for unit, typeKind := range unitTypeKinds {
		if typeKind == kind {
			return unit
		}
	}

	return ""
}

// FrontMatterEntry is one ordered key/value pair of the front matter block.
type FrontMatterEntry struct {
	Key   string
	Value string
}

// Options configures markdown generation.
type Options struct {
	// FrontMatter entries prefix every output unit in given order.
	FrontMatter []FrontMatterEntry
	// SplitByKind selects per-kind files; cross-references then link through
	// <kind>.md#anchor instead of intra-document #anchor targets.
	SplitByKind bool
}

// Document is the rendered markdown, one unit per present entity kind.
// Kinds without entities have no unit at all.
type Document struct {
	units       map[string]string
	order       []string
	frontMatter string
}

// Kinds returns present entity kinds in canonical order.
func (d *Document) Kinds() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// Unit returns the markdown text of one entity kind with the front matter
// block applied, suitable for writing as a standalone <kind>.md file.
func (d *Document) Unit(kind string) (string, bool) {
	text, ok := d.units[kind]
	if !ok {
		return "", false
	}

	return d.frontMatter + text, true
}

// Units returns all per-kind markdown texts keyed by entity kind.
func (d *Document) Units() map[string]string {
	out := make(map[string]string, len(d.units))
	for _, kind := range d.order {
		out[kind], _ = d.Unit(kind)
	}

	return out
}

// Combined returns all units joined in canonical order, separated by
// horizontal rules, with the front matter block applied exactly once.
func (d *Document) Combined() string {
	if len(d.order) == 0 {
		return ""
	}

	parts := make([]string, 0, len(d.order))
	for _, kind := range d.order {
		parts = append(parts, d.units[kind])
	}

	return ensureTrailingNewline(d.frontMatter + strings.Join(parts, "\n---\n\n"))
}

// Generate parses one introspection payload and renders its documentation.
func Generate(raw []byte, opt Options) (*Document, error) {
	schema, err := ParseSchema(raw)
	if err != nil {
		return nil, err
	}

	return Render(schema, opt)
}

// Render converts a schema into deterministic markdown units. It never fails
// for a well-formed Schema; unresolved type references degrade to plain text.
func Render(schema *Schema, opt Options) (*Document, error) {
	frontMatter, err := renderFrontMatter(opt.FrontMatter)
	if err != nil {
		return nil, err
	}

	doc := &Document{
		units:       make(map[string]string, len(unitOrder)),
		frontMatter: frontMatter,
	}

	for _, unit := range unitOrder {
		text, err := renderUnit(schema, unit, opt.SplitByKind)
		if err != nil {
			return nil, err
		}

		if text == "" {
			continue
		}

		doc.units[unit] = ensureTrailingNewline(text)
		doc.order = append(doc.order, unit)
	}

	return doc, nil
}

// renderFrontMatter encodes ordered entries as a fenced key: value block.
func renderFrontMatter(entries []FrontMatterEntry) (string, error) {
	if len(entries) == 0 {
		return "", nil
	}

	mapping := &yaml.Node{Kind: yaml.MappingNode}
	for _, entry := range entries {
		mapping.Content = append(mapping.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Key},
			&yaml.Node{Kind: yaml.ScalarNode, Value: entry.Value},
		)
	}

	data, err := yaml.Marshal(mapping)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncodeFrontMatter, err)
	}

	return "---\n" + string(data) + "---\n\n", nil
}
