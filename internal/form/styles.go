package form

import "github.com/charmbracelet/lipgloss"

const (
	colorPrimary       = lipgloss.Color("#7c3aed")
	colorTextSecondary = lipgloss.Color("#9ca3af")
	colorBorderSoft    = lipgloss.Color("#4b5563")
	colorSuccess       = lipgloss.Color("#22c55e")
	colorError         = lipgloss.Color("#dc2626")
)

// Styles holds the lipgloss styles used by the form and the result preview.
type Styles struct {
	Banner           lipgloss.Style
	Question         lipgloss.Style
	Answered         lipgloss.Style
	ListItem         lipgloss.Style
	ListItemSelected lipgloss.Style
	Error            lipgloss.Style
	Help             lipgloss.Style
	Success          lipgloss.Style
	Preview          lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		Banner: lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			Border(lipgloss.DoubleBorder(), true, false).
			BorderForeground(colorPrimary).
			Padding(0, 2),
		Question: lipgloss.NewStyle().Bold(true),
		Answered: lipgloss.NewStyle().Foreground(colorTextSecondary),
		ListItem: lipgloss.NewStyle().PaddingLeft(2),
		ListItemSelected: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colorError),
		Help:    lipgloss.NewStyle().Foreground(colorTextSecondary),
		Success: lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
		Preview: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorderSoft).
			Padding(0, 1),
	}
}

// RenderPreview frames a README excerpt for terminal output.
func (s Styles) RenderPreview(title, content string) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		s.Question.Render(title),
		s.Preview.Render(content),
	)
}
