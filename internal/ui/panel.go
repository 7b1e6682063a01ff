package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar with purchased/total counts.
func ProgressBar(t Theme, done, total, width int) string {
	if width < 5 {
		width = 5
	}
	filled := 0
	if total > 0 {
		filled = int(float64(done) / float64(total) * float64(width))
	}
	if filled > width {
		filled = width
	}
	bar := strings.Repeat(t.BarFilled, filled) + strings.Repeat(t.BarEmpty, width-filled)
	return fmt.Sprintf("%s %d/%d", bar, done, total)
}

// Panel frames lines in the theme's border.
func Panel(t Theme, lines []string) string {
	return PanelString(t, strings.Join(lines, "\n"))
}

func PanelString(t Theme, inner string) string {
	return lipgloss.NewStyle().
		Border(t.Border).
		BorderForeground(t.BorderColor).
		Padding(0, 1).
		Render(inner)
}

// Header is the title line with purchased / pending / total counts.
func Header(t Theme, title string, purchased, pending int) string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		t.Title.Render(title),
		t.Success.Render(t.SymPurchased), purchased,
		t.Pending.Render(t.SymPending), pending,
		t.Accent.Render("Total"), purchased+pending,
	)
}
