package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	LineNum       lipgloss.Style
	LineNumActive lipgloss.Style
	Text          lipgloss.Style
	Cursor        lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
}

func defaultStyles() styles {
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	return styles{
		LineNum:       gutter,
		LineNumActive: lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true),
		Text:          lipgloss.NewStyle(),
		Cursor:        lipgloss.NewStyle().Reverse(true),
		Status:        lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("236")),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Background(lipgloss.Color("236")),
	}
}
