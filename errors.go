// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphdoc

package graphdoc

import "errors"

var (
	// ErrParseSchema is returned when introspection JSON is missing required members or cannot be decoded.
	ErrParseSchema = errors.New("parse introspection schema")
	// ErrFormat is returned when markdown assembly receives inconsistent table data.
	ErrFormat = errors.New("markdown format")
	// ErrEncodeFrontMatter is returned when front matter YAML encoding fails.
	ErrEncodeFrontMatter = errors.New("encode front matter")
	// ErrUnsupportedSource is returned when a declared schema source has no builder yet.
	ErrUnsupportedSource = errors.New("unsupported schema source")
)
