/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/
package output

import (
	"sort"
	"time"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/orien/stackctl/internal/stack"
)

// StackTable renders stacks as a three-column table (Name/ID, Status,
// Created), sorted ascending by creation time
func StackTable(stacks []*stack.Stack) string {
	return renderStackTable(stacks, NewStyles(ShouldUseColour()))
}

func renderStackTable(stacks []*stack.Stack, styles *Styles) string {
	sorted := make([]*stack.Stack, len(stacks))
	copy(sorted, stacks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreationTime.Before(sorted[j].CreationTime)
	})

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styles.Border).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styles.Header
			}
			return styles.Cell
		}).
		Headers("Name/ID", "Status", "Created")

	for _, s := range sorted {
		t.Row(s.NameID(), styles.StatusStyle(s.Status).Render(s.Status), formatTime(s.CreationTime))
	}

	return t.String()
}

// formatTime formats time in a human-readable format
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02 15:04:05 MST")
}
