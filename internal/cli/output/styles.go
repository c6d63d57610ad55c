package output

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles shared by text-mode rendering.
type Styles struct {
	Title  lipgloss.Style
	Header lipgloss.Style
	Label  lipgloss.Style
	Value  lipgloss.Style
	Muted  lipgloss.Style
	Error  lipgloss.Style
}

// NewStyles builds the style set. With colored false, all styles render
// plain text so piped output stays free of ANSI codes.
func NewStyles(colored bool) *Styles {
	if !colored {
		plain := lipgloss.NewStyle()
		return &Styles{
			Title:  plain,
			Header: plain,
			Label:  plain,
			Value:  plain,
			Muted:  plain,
			Error:  plain,
		}
	}

	return &Styles{
		Title:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Header: lipgloss.NewStyle().Bold(true).Underline(true),
		Label:  lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:  lipgloss.NewStyle().Bold(true),
		Muted:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}
