package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Pane is a rounded frame with the title set into the top border.
type Pane struct {
	Title   string
	Content string
	Busy    bool
}

func (p Pane) Render(width, height int) string {
	if width < 4 || height < 3 {
		return ""
	}

	border := lipgloss.Color("#6c7086")
	if p.Busy {
		border = lipgloss.Color("#f9e2af")
	}
	borderStyle := lipgloss.NewStyle().Foreground(border)
	titleStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#cdd6f4")).Bold(true)

	innerWidth := width - 2
	contentWidth := max(1, innerWidth-2)

	titleText := " " + strings.TrimSpace(p.Title) + " "
	if ansi.StringWidth(titleText) > innerWidth-1 {
		titleText = ansi.Truncate(titleText, max(0, innerWidth-1), "")
	}
	rightDash := max(0, innerWidth-1-ansi.StringWidth(titleText))

	rows := make([]string, 0, height)
	rows = append(rows, borderStyle.Render("╭─")+titleStyle.Render(titleText)+borderStyle.Render(strings.Repeat("─", rightDash)+"╮"))

	v := borderStyle.Render("│")
	content := strings.Split(p.Content, "\n")
	for i := 0; i < height-2; i++ {
		line := ""
		if i < len(content) {
			line = content[i]
		}
		rows = append(rows, v+" "+padRightANSI(line, contentWidth)+" "+v)
	}
	rows = append(rows, borderStyle.Render("╰"+strings.Repeat("─", innerWidth)+"╯"))
	return strings.Join(rows, "\n")
}

// Checkbox renders a two-state box.
func Checkbox(checked bool) string {
	if checked {
		return "[x]"
	}
	return "[ ]"
}
