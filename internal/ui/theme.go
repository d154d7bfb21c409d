package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + borders.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error, Price lipgloss.Style
	Selected, Active, Disabled, Dimmed          lipgloss.Style
	Border                                      lipgloss.Border
	BorderColor                                 lipgloss.TerminalColor
	SymOK, SymFail, SymCart                     string
}

var current = classic()

// Themes lists the accepted theme names.
func Themes() []string { return []string{"classic", "neon", "mono"} }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("201")),
			Muted:       lipgloss.NewStyle().Faint(true),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
			Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
			Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
			Active:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(lipgloss.Color("51")).Padding(0, 1),
			Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Italic(true),
			Dimmed:      lipgloss.NewStyle().Faint(true),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("201"),
			SymOK:       "✔", SymFail: "✖", SymCart: "🛒",
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Price: plain,
			Selected: plain.Reverse(true), Active: plain.Underline(true).Padding(0, 1),
			Disabled: plain, Dimmed: plain,
			Border:      lipgloss.ASCIIBorder(),
			BorderColor: lipgloss.NoColor{},
			SymOK:       "ok", SymFail: "error:", SymCart: "cart",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Price:       lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Active:      lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("15")).Background(lipgloss.Color("12")).Padding(0, 1),
		Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Italic(true),
		Dimmed:      lipgloss.NewStyle().Faint(true),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymOK:       "✔", SymFail: "✖", SymCart: "🛒",
	}
}

// Expose what renderers need
func Current() Theme { return current }
