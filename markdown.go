// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/graphdoc

package graphdoc

import (
	"fmt"
	"strings"
	"unicode"
)

// Heading returns a markdown ATX heading. Levels outside 1..6 are clamped.
func Heading(level int, text string) string {
	if level < 1 {
		level = 1
	}

	if level > 6 {
		level = 6
	}

	return strings.Repeat("#", level) + " " + text + "\n\n"
}

// Description returns text as a markdown blockquote paragraph.
func Description(text string) string {
	return "> " + text + "\n\n"
}

// InlineCode wraps non-empty text in backticks.
func InlineCode(text string) string {
	if text == "" {
		return ""
	}

	return "`" + escapeInline(text) + "`"
}

// Label returns a bold name/value pair paragraph.
func Label(name, value string) string {
	return "**" + name + ":** " + value + "\n\n"
}

// Link returns a markdown link; an empty label collapses to empty output.
func Link(label, target string) string {
	if label == "" {
		return ""
	}

	if target == "" {
		return label
	}

	return "[" + label + "](" + target + ")"
}

// List returns a markdown unordered list block.
func List(items []string) string {
	var out strings.Builder
	for _, item := range items {
		out.WriteString("* " + item + "\n")
	}

	out.WriteString("\n")
	return out.String()
}

// Notice returns emphasized standalone text.
func Notice(text string) string {
	return "_" + text + "_\n\n"
}

// CodeFence wraps text in a fenced code block with an optional language tag.
func CodeFence(language, text string) string {
	return "```" + language + "\n" + strings.TrimRight(text, "\n") + "\n```\n\n"
}

// Table returns a markdown table block. Every row must have exactly as many
// cells as there are headers; a mismatch is a caller defect reported as
// ErrFormat.
func Table(headers []string, rows [][]string) (string, error) {
	var out strings.Builder
	out.WriteString(tableRow(headers))
	out.WriteString(tableSeparator(len(headers)))

	for index, row := range rows {
		if len(row) != len(headers) {
			return "", fmt.Errorf("%w: row %d has %d cells, want %d", ErrFormat, index, len(row), len(headers))
		}

		out.WriteString(tableRow(row))
	}

	out.WriteString("\n")
	return out.String(), nil
}

// tableRow renders one pipe-delimited table row.
func tableRow(cells []string) string {
	return "| " + strings.Join(cells, " | ") + " |\n"
}

// tableSeparator renders the header separator row.
func tableSeparator(columns int) string {
	cells := make([]string, columns)
	for index := range cells {
		cells[index] = "---"
	}

	return tableRow(cells)
}

// TitleCase capitalizes the first letter of each word and lowers the rest,
// so machine-case identifiers become section headings (SCALAR -> Scalar).
func TitleCase(text string) string {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return r == ' ' || r == '_' || r == '-'
	})

	for index, word := range words {
		runes := []rune(strings.ToLower(word))
		runes[0] = unicode.ToUpper(runes[0])
		words[index] = string(runes)
	}

	return strings.Join(words, " ")
}

// AnchorName derives the heading anchor slug for a type name. The renderer
// uses it both when emitting a heading and when emitting a reference, so
// generated links never dangle.
func AnchorName(text string) string {
	trimmed := strings.TrimSpace(strings.ToLower(text))
	if trimmed == "" {
		return ""
	}

	var out strings.Builder
	out.Grow(len(trimmed))

	lastDash := false
	for _, r := range trimmed {
		switch {
		case unicode.IsLetter(r), unicode.IsDigit(r):
			out.WriteRune(r)
			lastDash = false
		case unicode.IsSpace(r), r == '-', r == '_':
			if lastDash || out.Len() == 0 {
				continue
			}

			out.WriteByte('-')
			lastDash = true
		}
	}

	return strings.Trim(out.String(), "-")
}

// sanitizeCell flattens text into a single table-safe line.
func sanitizeCell(text string) string {
	text = strings.ReplaceAll(text, "|", "\\|")
	return strings.Join(strings.Fields(text), " ")
}

// escapeInline escapes backticks in inline code segments.
func escapeInline(value string) string {
	return strings.ReplaceAll(value, "`", "\\`")
}

// ensureTrailingNewline guarantees exactly one trailing newline in output.
func ensureTrailingNewline(value string) string {
	value = strings.TrimRight(value, "\n")
	return value + "\n"
}
