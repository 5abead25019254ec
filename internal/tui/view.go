package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Adaptive colors for light/dark terminal backgrounds
	accentColor = lipgloss.AdaptiveColor{Light: "#D6249F", Dark: "#FF79C6"}
	greenColor  = lipgloss.AdaptiveColor{Light: "#116620", Dark: "#50FA7B"}
	redColor    = lipgloss.AdaptiveColor{Light: "#B31D28", Dark: "#FF5555"}
	dimColor    = lipgloss.AdaptiveColor{Light: "#777777", Dark: "#6272A4"}
	hlBgColor   = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#333333"}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accentColor).
			PaddingLeft(1)

	headerStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	cursorStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
				Background(hlBgColor)

	runningStyle = lipgloss.NewStyle().
			Foreground(greenColor)

	stoppedStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(redColor).
			PaddingLeft(1)

	confirmLabelStyle = lipgloss.NewStyle().
				Foreground(redColor).
				Bold(true).
				PaddingLeft(1)

	helpStyle = lipgloss.NewStyle().
			Foreground(dimColor).
			PaddingLeft(1)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			PaddingLeft(1)
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("tmux-startup"))
	b.WriteString("\n\n")

	nameW, sessW := len("NAME"), len("SESSION")
	for _, c := range m.filtered {
		nameW = max(nameW, len(c.Name))
		sessW = max(sessW, len(c.Session))
	}

	b.WriteString(headerStyle.Render(fmt.Sprintf("    %-*s  %-*s  %-6s  %s", nameW, "NAME", sessW, "SESSION", "PANES", "COMMAND")))
	b.WriteString("\n")

	if len(m.filtered) == 0 {
		b.WriteString(helpStyle.Render("No commands registered. Add one with: tmux-startup add <session> <name> <command>"))
		b.WriteString("\n")
	}

	for i, c := range m.filtered {
		pids := m.live[c.Name]
		dot := stoppedStyle.Render("○")
		if len(pids) > 0 {
			dot = runningStyle.Render("●")
		}

		row := fmt.Sprintf("%-*s  %-*s  %-6d  %s", nameW, c.Name, sessW, c.Session, len(pids), c.Command)
		if m.width > 6 && lipgloss.Width(row) > m.width-6 {
			row = row[:m.width-6]
		}

		cursor := "  "
		if i == m.cursor {
			cursor = cursorStyle.Render("> ")
			row = selectedRowStyle.Render(row)
		}
		b.WriteString(" " + cursor + dot + " " + row + "\n")
	}

	b.WriteString("\n")
	b.WriteString(inputLabelStyle.Render("/ ") + m.input.View())
	b.WriteString("\n")

	switch {
	case m.confirmKill != nil:
		b.WriteString(confirmLabelStyle.Render(fmt.Sprintf("Kill window %q? enter to confirm, any key to cancel", m.confirmKill.Name)))
	case m.err != nil:
		b.WriteString(errorStyle.Render("Error: " + m.err.Error()))
	case m.status != "":
		b.WriteString(helpStyle.Render(m.status))
	}
	b.WriteString("\n")

	b.WriteString(helpStyle.Render("enter start · ctrl+x stop · ctrl+k kill · esc clear/quit"))
	return b.String()
}
