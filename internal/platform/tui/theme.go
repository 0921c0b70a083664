package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles shared by every screen.
type Theme struct {
	// HUD styles
	Title    lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style
	Lives    lipgloss.Style

	// Question area
	Question lipgloss.Style
	Entry    lipgloss.Style

	// Answer options
	Option       lipgloss.Style
	OptionActive lipgloss.Style

	// Feedback
	Correct lipgloss.Style
	Wrong   lipgloss.Style
	LevelUp lipgloss.Style

	// Bubbles
	Bubble       lipgloss.Style
	BubbleActive lipgloss.Style

	// Memory cards
	CardHidden  lipgloss.Style
	CardUp      lipgloss.Style
	CardMatched lipgloss.Style
	CardCursor  lipgloss.Style

	// Overlay and menu styles
	Overlay        lipgloss.Style
	MenuItemNormal lipgloss.Style
	MenuItemActive lipgloss.Style
	Dim            lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)

	return Theme{
		Title:    lipgloss.NewStyle().Foreground(lipgloss.Color("213")).Bold(true),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true),
		Lives:    lipgloss.NewStyle().Foreground(lipgloss.Color("197")),

		Question: lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Bold(true).MarginBottom(1),
		Entry:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),

		Option:       box.BorderForeground(lipgloss.Color("240")),
		OptionActive: box.BorderForeground(lipgloss.Color("226")).Foreground(lipgloss.Color("226")).Bold(true),

		Correct: lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true),
		Wrong:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		LevelUp: lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true),

		Bubble:       box.BorderForeground(lipgloss.Color("39")).Foreground(lipgloss.Color("117")),
		BubbleActive: box.BorderForeground(lipgloss.Color("226")).Foreground(lipgloss.Color("226")).Bold(true),

		CardHidden:  box.BorderForeground(lipgloss.Color("60")).Foreground(lipgloss.Color("60")),
		CardUp:      box.BorderForeground(lipgloss.Color("255")),
		CardMatched: box.BorderForeground(lipgloss.Color("28")).Faint(true),
		CardCursor:  box.BorderForeground(lipgloss.Color("226")),

		Overlay: lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("213")).
			Padding(1, 3),
		MenuItemNormal: lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive: lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		Dim:            lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}

// PastelTheme returns a softer theme.
func PastelTheme() Theme {
	theme := DefaultTheme()
	theme.Title = theme.Title.Foreground(lipgloss.Color("218"))
	theme.Question = theme.Question.Foreground(lipgloss.Color("229"))
	theme.Correct = theme.Correct.Foreground(lipgloss.Color("157"))
	theme.Wrong = theme.Wrong.Foreground(lipgloss.Color("217"))
	theme.Bubble = theme.Bubble.BorderForeground(lipgloss.Color("123")).Foreground(lipgloss.Color("123"))
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	gray := lipgloss.Color("250")
	theme.Title = theme.Title.Foreground(gray)
	theme.Lives = theme.Lives.Foreground(gray)
	theme.Correct = theme.Correct.Foreground(lipgloss.Color("255"))
	theme.Wrong = theme.Wrong.Foreground(lipgloss.Color("245"))
	theme.OptionActive = theme.OptionActive.Foreground(lipgloss.Color("255")).BorderForeground(lipgloss.Color("255"))
	theme.Bubble = theme.Bubble.Foreground(gray).BorderForeground(gray)
	return theme
}

// ThemeByName returns a theme by name, falling back to the default.
func ThemeByName(name string) Theme {
	switch name {
	case "pastel":
		return PastelTheme()
	case "mono", "monochrome":
		return MonochromeTheme()
	default:
		return DefaultTheme()
	}
}

// Global theme variable (can be changed at runtime)
var currentTheme = DefaultTheme()

// SetTheme sets the global theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// CurrentTheme returns the current global theme.
func CurrentTheme() Theme {
	return currentTheme
}
