// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphdoc

package graphdoc

import (
	"strings"
	"testing"
)

func generateFixture(t *testing.T, opt Options) *Document {
	t.Helper()

	doc, err := Generate(readFixture(t), opt)
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	return doc
}

func assertContains(t *testing.T, text, want string) {
	t.Helper()

	if !strings.Contains(text, want) {
		t.Fatalf("output does not contain %q:\n%s", want, text)
	}
}

func assertOrdered(t *testing.T, text string, first, second string) {
	t.Helper()

	firstIndex := strings.Index(text, first)
	secondIndex := strings.Index(text, second)
	if firstIndex < 0 || secondIndex < 0 {
		t.Fatalf("output missing %q or %q:\n%s", first, second, text)
	}

	if firstIndex > secondIndex {
		t.Fatalf("%q appears after %q", first, second)
	}
}

func TestGenerateDeterministic(t *testing.T) {
	t.Parallel()

	opt := Options{FrontMatter: []FrontMatterEntry{{Key: "layout", Value: "docs"}}}
	first := generateFixture(t, opt)
	second := generateFixture(t, opt)

	if first.Combined() != second.Combined() {
		t.Fatal("combined output differs between runs")
	}

	for _, kind := range first.Kinds() {
		firstUnit, _ := first.Unit(kind)
		secondUnit, _ := second.Unit(kind)
		if firstUnit != secondUnit {
			t.Fatalf("unit %q differs between runs", kind)
		}
	}
}

func TestRenderKindsInCanonicalOrder(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})
	got := strings.Join(doc.Kinds(), ",")
	want := "queries,mutations,objects,inputs,interfaces,enums,unions,scalars"
	if got != want {
		t.Fatalf("kinds = %q, want %q", got, want)
	}

	combined := doc.Combined()
	assertOrdered(t, combined, "# Queries", "# Mutations")
	assertOrdered(t, combined, "# Mutations", "# Objects")
	assertOrdered(t, combined, "# Objects", "# Inputs")
	assertOrdered(t, combined, "# Unions", "# Scalars")
}

func TestRenderEntitiesSortedByName(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})
	objects, ok := doc.Unit(UnitObjects)
	if !ok {
		t.Fatal("objects unit missing")
	}

	assertOrdered(t, objects, "## Author", "## Book")
	assertOrdered(t, objects, "## Book", "## Mutation")
	assertOrdered(t, objects, "## Mutation", "## Query")

	queries, ok := doc.Unit(UnitQueries)
	if !ok {
		t.Fatal("queries unit missing")
	}

	assertOrdered(t, queries, "## book\n", "## books\n")
	assertOrdered(t, queries, "## books\n", "## search\n")
}

func TestRenderOmitsAbsentKinds(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})
	if _, ok := doc.Unit(UnitSubscriptions); ok {
		t.Fatal("subscriptions unit present for schema without subscription root")
	}

	noEnums, err := Generate([]byte(`{"__schema":{"types":[
		{"kind":"SCALAR","name":"ID","description":null}
	]}}`), Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if _, ok := noEnums.Unit(UnitEnums); ok {
		t.Fatal("enums unit present for schema without enum types")
	}

	if _, ok := noEnums.Unit(UnitMutations); ok {
		t.Fatal("mutations unit present for schema without mutation root")
	}
}

func TestRenderOmitsOperationsWhenRootTypeUnresolved(t *testing.T) {
	t.Parallel()

	doc, err := Generate([]byte(`{"__schema":{"queryType":{"name":"Query"},"types":[]}}`), Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if len(doc.Kinds()) != 0 {
		t.Fatalf("kinds = %v, want none", doc.Kinds())
	}

	if doc.Combined() != "" {
		t.Fatalf("combined = %q, want empty", doc.Combined())
	}
}

func TestRenderFrontMatterOrderPreserved(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{
		SplitByKind: true,
		FrontMatter: []FrontMatterEntry{
			{Key: "key1", Value: "value1"},
			{Key: "key2", Value: "value2"},
		},
	})

	objects, ok := doc.Unit(UnitObjects)
	if !ok {
		t.Fatal("objects unit missing")
	}

	prefix := "---\nkey1: value1\nkey2: value2\n---\n\n"
	if !strings.HasPrefix(objects, prefix) {
		t.Fatalf("unit does not start with front matter block:\n%s", objects)
	}
}

func TestRenderFrontMatterAppliedOncePerOutput(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{
		FrontMatter: []FrontMatterEntry{{Key: "layout", Value: "docs"}},
	})

	combined := doc.Combined()
	if !strings.HasPrefix(combined, "---\nlayout: docs\n---\n\n") {
		t.Fatalf("combined does not start with front matter:\n%.80s", combined)
	}

	if count := strings.Count(combined, "layout: docs"); count != 1 {
		t.Fatalf("front matter appears %d times in combined output", count)
	}

	for _, kind := range doc.Kinds() {
		unit, _ := doc.Unit(kind)
		if !strings.HasPrefix(unit, "---\nlayout: docs\n---\n\n") {
			t.Fatalf("unit %q missing front matter", kind)
		}
	}
}

func TestRenderDeprecationSuffixWithReason(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})
	objects, _ := doc.Unit(UnitObjects)
	assertContains(t, objects, "`name` (deprecated: use title)")

	enums, _ := doc.Unit(UnitEnums)
	assertContains(t, enums, "`POETRY` (deprecated: no longer stocked)")
}

func TestRenderDeprecationSuffixWithoutReason(t *testing.T) {
	t.Parallel()

	doc, err := Generate([]byte(`{"__schema":{"types":[
		{"kind":"OBJECT","name":"Thing","fields":[
			{"name":"old","args":[],"type":{"kind":"SCALAR","name":"String"},"isDeprecated":true}
		]}
	]}}`), Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	objects, _ := doc.Unit(UnitObjects)
	assertContains(t, objects, "`old` (deprecated) |")
}

func TestRenderWrapperComposition(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})
	queries, _ := doc.Unit(UnitQueries)
	assertContains(t, queries, "**Type:** [`[Book!]!`](#book)")

	objects, _ := doc.Unit(UnitObjects)
	assertContains(t, objects, "`[Book!]`")
}

func TestRenderLinksUseSplitTargets(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{SplitByKind: true})
	objects, _ := doc.Unit(UnitObjects)
	assertContains(t, objects, "[`Author`](objects.md#author)")
	assertContains(t, objects, "[`Genre`](enums.md#genre)")
	assertContains(t, objects, "[`Date`](scalars.md#date)")

	queries, _ := doc.Unit(UnitQueries)
	assertContains(t, queries, "[`[SearchResult]`](unions.md#searchresult)")
}

func TestRenderLinksUseAnchorTargetsWhenCombined(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})
	combined := doc.Combined()
	assertContains(t, combined, "[`Author`](#author)")
	assertContains(t, combined, "## Author")

	// heading slug and link anchor come from the same derivation
	if AnchorName("Author") != "author" {
		t.Fatalf("AnchorName(Author) = %q", AnchorName("Author"))
	}
}

func TestRenderUnresolvedTypeDegradesToPlainText(t *testing.T) {
	t.Parallel()

	doc, err := Generate([]byte(`{"__schema":{"types":[
		{"kind":"OBJECT","name":"Thing","fields":[
			{"name":"ghost","args":[],"type":{"kind":"OBJECT","name":"Missing"},"isDeprecated":false}
		]}
	]}}`), Options{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	objects, _ := doc.Unit(UnitObjects)
	assertContains(t, objects, "| `Missing` |")
	if strings.Contains(objects, "](#missing)") {
		t.Fatalf("unresolved reference was linked:\n%s", objects)
	}
}

func TestRenderArgumentsTable(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})
	queries, _ := doc.Unit(UnitQueries)
	assertContains(t, queries, "### Arguments")
	assertContains(t, queries, "| Name | Type | Description | Default |")
	assertContains(t, queries, "| `limit` |")
	assertContains(t, queries, "| `10` |")
}

func TestRenderInterfaceAndUnionSections(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})

	interfaces, ok := doc.Unit(UnitInterfaces)
	if !ok {
		t.Fatal("interfaces unit missing")
	}

	assertContains(t, interfaces, "## Node")
	assertContains(t, interfaces, "### Implemented by")
	assertContains(t, interfaces, "[`Book`](#book)")

	unions, ok := doc.Unit(UnitUnions)
	if !ok {
		t.Fatal("unions unit missing")
	}

	assertContains(t, unions, "## SearchResult")
	assertContains(t, unions, "### Possible types")

	objects, _ := doc.Unit(UnitObjects)
	assertContains(t, objects, "### Implements")
	assertContains(t, objects, "[`Node`](#node)")
}

func TestRenderSkipsIntrospectionMetaTypes(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})
	objects, _ := doc.Unit(UnitObjects)
	if strings.Contains(objects, "__Schema") {
		t.Fatalf("meta type rendered:\n%s", objects)
	}
}

func TestRenderCombinedSeparatesUnitsWithRules(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})
	combined := doc.Combined()
	if count := strings.Count(combined, "\n---\n\n"); count != len(doc.Kinds())-1 {
		t.Fatalf("rule count = %d, want %d", count, len(doc.Kinds())-1)
	}
}

func TestGenerateEndToEndSplitObjects(t *testing.T) {
	t.Parallel()

	doc, err := Generate([]byte(`{"data":{"__schema":{"types":[
		{"kind":"OBJECT","name":"Book","fields":[
			{"name":"title","args":[],"type":{"kind":"NON_NULL","ofType":{"kind":"SCALAR","name":"String"}},"isDeprecated":false},
			{"name":"author","args":[],"type":{"kind":"OBJECT","name":"Author"},"isDeprecated":false}
		]},
		{"kind":"OBJECT","name":"Author","fields":[
			{"name":"name","args":[],"type":{"kind":"NON_NULL","ofType":{"kind":"SCALAR","name":"String"}},"isDeprecated":false}
		]}
	]}}}`), Options{SplitByKind: true})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	if got := strings.Join(doc.Kinds(), ","); got != "objects" {
		t.Fatalf("kinds = %q, want objects only", got)
	}

	objects, ok := doc.Unit(UnitObjects)
	if !ok {
		t.Fatal("objects unit missing")
	}

	assertOrdered(t, objects, "## Author", "## Book")
	assertContains(t, objects, "[`Author`](objects.md#author)")
	assertContains(t, objects, "| `String!` |")
}

func TestRenderUnitsNeverEmpty(t *testing.T) {
	t.Parallel()

	doc := generateFixture(t, Options{})
	units := doc.Units()
	if len(units) != len(doc.Kinds()) {
		t.Fatalf("units = %d, kinds = %d", len(units), len(doc.Kinds()))
	}

	for kind, unit := range units {
		if strings.TrimSpace(unit) == "" {
			t.Fatalf("unit %q is empty", kind)
		}
	}
}
