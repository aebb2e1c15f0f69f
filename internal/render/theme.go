// Package render draws game state for a terminal with lipgloss
package render

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Richard10-cpu/termux-telegram-rpg/internal/errors"
)

var (
	cPrimary = lipgloss.Color("63")  // blue
	cAccent  = lipgloss.Color("205") // magenta
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cMana    = lipgloss.Color("39")  // cyan
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	headStyle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	mutedStyle = lipgloss.NewStyle().Foreground(cMuted)
	goodStyle  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	warnStyle  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	badStyle   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	goldStyle  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	hpStyle    = lipgloss.NewStyle().Foreground(cBad)
	manaStyle  = lipgloss.NewStyle().Foreground(cMana)

	panelStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(cMuted).
			Padding(0, 1)
)

// BarWidth is the number of cells in hp and mana bars
const BarWidth = 20

// bar draws cur/maxVal as a filled gauge
func bar(cur, maxVal int, style lipgloss.Style) string {
	if maxVal <= 0 {
		maxVal = 1
	}
	cur = min(max(cur, 0), maxVal)
	filled := cur * BarWidth / maxVal
	if cur > 0 && filled == 0 {
		filled = 1
	}
	return style.Render(strings.Repeat("█", filled)) + mutedStyle.Render(strings.Repeat("░", BarWidth-filled))
}

func panel(title string, lines ...string) string {
	body := make([]string, 0, len(lines)+1)
	if title != "" {
		body = append(body, titleStyle.Render(title))
	}
	body = append(body, lines...)
	return panelStyle.Render(lipgloss.JoinVertical(lipgloss.Left, body...))
}

// Message renders a plain informational line
func Message(text string) string {
	return headStyle.Render(text)
}

// Warning renders a declined action
func Warning(text string) string {
	return warnStyle.Render("! " + text)
}

// Error renders a failure. Declined actions read as warnings.
func Error(err error) string {
	if err == nil {
		return ""
	}
	if errors.IsDeclined(err) {
		return Warning(errors.GetMessage(err))
	}
	return badStyle.Render("x " + errors.GetMessage(err))
}
