package ui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

const (
	themeAuto  = "auto"
	themeDark  = "dark"
	themeLight = "light"
)

type theme struct {
	title  lipgloss.Style
	mode   lipgloss.Style
	grid   lipgloss.Style
	markX  lipgloss.Style
	markO  lipgloss.Style
	empty  lipgloss.Style
	cursor lipgloss.Style
	status lipgloss.Style
	score  lipgloss.Style
	help   lipgloss.Style
}

// newTheme - picks the palette from config; "auto" probes the terminal
// background the way termenv does.
func newTheme(name string) theme {
	dark := name == themeDark
	if name == themeAuto {
		dark = termenv.HasDarkBackground()
	}

	fg := lipgloss.Color("235")
	faint := lipgloss.Color("245")
	if dark {
		fg = lipgloss.Color("252")
		faint = lipgloss.Color("243")
	}

	cell := lipgloss.NewStyle().Width(3).Align(lipgloss.Center)

	return theme{
		title:  lipgloss.NewStyle().Bold(true).Foreground(fg),
		mode:   lipgloss.NewStyle().Foreground(faint),
		grid:   lipgloss.NewStyle().Foreground(faint),
		markX:  cell.Foreground(lipgloss.Color("203")).Bold(true),
		markO:  cell.Foreground(lipgloss.Color("75")).Bold(true),
		empty:  cell.Foreground(faint),
		cursor: lipgloss.NewStyle().Reverse(true),
		status: lipgloss.NewStyle().Foreground(fg),
		score:  lipgloss.NewStyle().Foreground(fg),
		help:   lipgloss.NewStyle().Foreground(faint),
	}
}
