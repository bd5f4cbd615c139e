package main

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains all the colors used throughout the application.
type Theme struct {
	Primary       lipgloss.Color
	Error         lipgloss.Color
	Success       lipgloss.Color
	Warning       lipgloss.Color
	Income        lipgloss.Color
	Expense       lipgloss.Color
	SecondaryText lipgloss.Color
}

func defaultTheme() Theme {
	return Theme{
		Primary:       lipgloss.Color("#ffd644"),
		Error:         lipgloss.Color("#ff0000"),
		Success:       lipgloss.Color("#22ba46"),
		Warning:       lipgloss.Color("#e05951"),
		Income:        lipgloss.Color("#00ff00"),
		Expense:       lipgloss.Color("#ff0000"),
		SecondaryText: lipgloss.Color("#888888"),
	}
}

type styles struct {
	titleStyle   lipgloss.Style
	errorStyle   lipgloss.Style
	successStyle lipgloss.Style
	warningStyle lipgloss.Style
	mutedStyle   lipgloss.Style
	incomeStyle  lipgloss.Style
	expenseStyle lipgloss.Style
}

func createStyles(theme Theme) styles {
	return styles{
		titleStyle: lipgloss.NewStyle().Foreground(
			lipgloss.AdaptiveColor{Light: "#000000", Dark: string(theme.Primary)},
		).Bold(true),
		errorStyle:   lipgloss.NewStyle().Foreground(theme.Error).Bold(true),
		successStyle: lipgloss.NewStyle().Foreground(theme.Success).Bold(true),
		warningStyle: lipgloss.NewStyle().Foreground(theme.Warning),
		mutedStyle:   lipgloss.NewStyle().Foreground(theme.SecondaryText),
		incomeStyle:  lipgloss.NewStyle().Foreground(theme.Income),
		expenseStyle: lipgloss.NewStyle().Foreground(theme.Expense),
	}
}

// typeStyle colors a value by transaction type.
func (s styles) typeStyle(transactionType string) lipgloss.Style {
	switch transactionType {
	case "income":
		return s.incomeStyle
	case "expense":
		return s.expenseStyle
	}
	return lipgloss.NewStyle()
}
