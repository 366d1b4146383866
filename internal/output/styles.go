/*
Copyright © 2025 Stackctl Contributors
SPDX-License-Identifier: BSD-3-Clause
*/

// Package output renders stack records as tables for the terminal.
package output

import (
	"os"
	"strings"

	"charm.land/lipgloss/v2"
)

// Styles contains the styles used for table rendering
type Styles struct {
	Header lipgloss.Style
	Cell   lipgloss.Style
	Border lipgloss.Style

	// Status styles keyed by outcome
	StatusOK         lipgloss.Style
	StatusFailed     lipgloss.Style
	StatusInProgress lipgloss.Style

	UseColour bool
}

// NewStyles creates the table styles, optionally with colour
func NewStyles(useColour bool) *Styles {
	s := &Styles{UseColour: useColour}

	if useColour {
		s.Header = lipgloss.NewStyle().Bold(true).Padding(0, 1)
		s.Cell = lipgloss.NewStyle().Padding(0, 1)
		s.Border = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
		s.StatusOK = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
		s.StatusFailed = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
		s.StatusInProgress = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	} else {
		plain := lipgloss.NewStyle()
		s.Header = plain.Padding(0, 1)
		s.Cell = plain.Padding(0, 1)
		s.Border = plain
		s.StatusOK = plain
		s.StatusFailed = plain
		s.StatusInProgress = plain
	}

	return s
}

// StatusStyle picks the style matching a stack status string
func (s *Styles) StatusStyle(status string) lipgloss.Style {
	switch {
	case strings.HasSuffix(status, "_FAILED"):
		return s.StatusFailed
	case strings.HasSuffix(status, "_IN_PROGRESS"):
		return s.StatusInProgress
	default:
		return s.StatusOK
	}
}

// ShouldUseColour determines if colour output should be used
func ShouldUseColour() bool {
	// Check NO_COLOR environment variable (https://no-color.org/)
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	// Check TERM environment variable
	term := os.Getenv("TERM")
	if term == "dumb" || term == "" {
		return false
	}

	// Check if stdout is a terminal
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	// Check if it's a character device (terminal)
	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
