// Package tui provides an interactive terminal UI for olelo.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // titles, consonants
	ColorSecondary = lipgloss.Color("#4ecdc4") // pronunciations
	ColorAccent    = lipgloss.Color("#ffe66d") // vowels, selection
	ColorMuted     = lipgloss.Color("#666666") // help text
	ColorText      = lipgloss.Color("#f1faee")
	ColorBg        = lipgloss.Color("#1a1a2e")
	ColorBgAlt     = lipgloss.Color("#2d3436")
	ColorBorder    = lipgloss.Color("#3d5a80")
)

// Sidebar styles
var (
	SidebarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderRight(true).
			BorderForeground(ColorBorder).
			Padding(1, 1)

	SidebarTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Background(ColorBg).
				Padding(0, 1).
				MarginBottom(1)

	SidebarItemStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				Padding(0, 1)

	SidebarItemActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorAccent).
				Background(ColorBgAlt).
				Padding(0, 1)

	SidebarHelpStyle = lipgloss.NewStyle().
				Foreground(ColorMuted).
				MarginTop(1).
				Padding(0, 1)
)

// Content area style
var ContentStyle = lipgloss.NewStyle().
	Padding(1, 2)

// Status line styles
var (
	StatusStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorPrimary).
				Bold(true)
)
