package main

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Field   lipgloss.Style
	Counter lipgloss.Style
	Full    lipgloss.Style
	Help    lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Field:   lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1),
		Counter: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Full:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Help:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
