/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/orien/stackctl/internal/stack"
)

// longTextWidth is the wrap column for free-form text properties
const longTextWidth = 55

// StackDetail renders a single stack as a property/value table. Long text
// properties are wrapped, structured properties are pretty-printed as JSON
// and links are listed one href per line. Rows are sorted by property name.
func StackDetail(s *stack.Stack) string {
	return renderStackDetail(s, NewStyles(ShouldUseColour()))
}

func renderStackDetail(s *stack.Stack, styles *Styles) string {
	properties := map[string]string{
		"id":            s.ID,
		"stack_name":    s.Name,
		"stack_status":  s.Status,
		"creation_time": formatTime(s.CreationTime),
	}

	if s.StatusReason != "" {
		properties["stack_status_reason"] = wrapText(s.StatusReason, longTextWidth)
	}
	if s.UpdatedTime != nil {
		properties["updated_time"] = formatTime(*s.UpdatedTime)
	}
	if s.Description != "" {
		properties["description"] = wrapText(s.Description, longTextWidth)
	}
	if s.TemplateDescription != "" {
		properties["template_description"] = wrapText(s.TemplateDescription, longTextWidth)
	}
	if s.TimeoutMins > 0 {
		properties["timeout_mins"] = strconv.Itoa(s.TimeoutMins)
	}
	if s.Parameters != nil {
		properties["parameters"] = indentJSONValue(s.Parameters)
	}
	if len(s.Outputs) > 0 {
		properties["outputs"] = indentJSON(s.Outputs)
	}
	if len(s.Links) > 0 {
		hrefs := make([]string, len(s.Links))
		for i, link := range s.Links {
			hrefs[i] = link.Href
		}
		properties["links"] = strings.Join(hrefs, "\n")
	}

	names := make([]string, 0, len(properties))
	for name := range properties {
		names = append(names, name)
	}
	sort.Strings(names)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		}).
		Headers("Property", "Value")

	for _, name := range names {
		t.Row(name, properties[name])
	}

	return t.String()
}

// indentJSONValue marshals a value as indented JSON, returning an empty
// string if it cannot be represented
func indentJSONValue(v any) string {
	encoded, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return ""
	}
	return string(encoded)
}

// indentJSON re-indents a raw JSON document
func indentJSON(raw json.RawMessage) string {
	var buf bytes.Buffer
	if err := json.Indent(&buf, raw, "", "  "); err != nil {
		return string(raw)
	}
	return buf.String()
}

// wrapText greedily wraps text at word boundaries to the given width
func wrapText(text string, width int) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	lines = append(lines, line)

	return strings.Join(lines, "\n")
}
