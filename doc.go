// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphdoc

/*
Package graphdoc renders markdown documentation from GraphQL introspection
responses.

The package focuses on deterministic markdown output: types are grouped into
entity kinds (queries, mutations, subscriptions, objects, inputs, interfaces,
enums, unions, scalars), entities within a kind are sorted by name, and named
type references are cross-linked through stable heading anchors.

Render one combined document from introspection bytes:

	raw, err := os.ReadFile("introspection.json")
	if err != nil {
		return err
	}

	doc, err := graphdoc.Generate(raw, graphdoc.Options{})
	if err != nil {
		return err
	}

	fmt.Println(doc.Combined())

Split output into one markdown unit per entity kind:

	doc, err := graphdoc.Generate(raw, graphdoc.Options{SplitByKind: true})
	if err != nil {
		return err
	}

	for _, kind := range doc.Kinds() {
		text, _ := doc.Unit(kind)
		if err := os.WriteFile(kind+".md", []byte(text), 0o600); err != nil {
			return err
		}
	}

Prefix units with a front matter block (order preserved):

	doc, err := graphdoc.Generate(raw, graphdoc.Options{
		FrontMatter: []graphdoc.FrontMatterEntry{
			{Key: "layout", Value: "docs"},
			{Key: "section", Value: "api"},
		},
	})
	if err != nil {
		return err
	}

	fmt.Println(doc.Combined())

Work with the typed schema model directly:

	schema, err := graphdoc.ParseSchema(raw)
	if err != nil {
		return err
	}

	if def, ok := schema.TypeByName("Book"); ok {
		fmt.Println(def.TypeKind(), def.TypeDescription())
	}

The package performs no network or file IO; callers fetch introspection
bytes themselves, for example by POSTing graphdoc.IntrospectionQuery to a
GraphQL endpoint, and persist the returned markdown.
*/
package graphdoc
