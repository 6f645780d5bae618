// SPDX-License-Identifier: AGPL-3.0-only
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphdoc

package graphdoc_test

import (
	"fmt"

	"github.com/woozymasta/graphdoc"
)

func ExampleGenerate() {
	raw := []byte(`{"__schema":{"types":[
		{"kind":"SCALAR","name":"Date","description":"An ISO-8601 calendar date."}
	]}}`)

	doc, err := graphdoc.Generate(raw, graphdoc.Options{})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Print(doc.Combined())
	// Output:
	// # Scalars
	//
	// ## Date
	//
	// > An ISO-8601 calendar date.
}

func ExampleGenerate_splitByKind() {
	raw := []byte(`{"__schema":{"types":[
		{"kind":"SCALAR","name":"Date","description":"An ISO-8601 calendar date."},
		{"kind":"ENUM","name":"Color","enumValues":[
			{"name":"RED","description":"","isDeprecated":false}
		]}
	]}}`)

	doc, err := graphdoc.Generate(raw, graphdoc.Options{SplitByKind: true})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, kind := range doc.Kinds() {
		fmt.Println(kind + ".md")
	}
	// Output:
	// enums.md
	// scalars.md
}

func ExampleAnchorName() {
	fmt.Println(graphdoc.AnchorName("SearchResult"))
	fmt.Println(graphdoc.AnchorName("Search Result"))
	// Output:
	// searchresult
	// search-result
}
