package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles styles, symbols and the panel border.
// Helpers that take no theme argument use Current().
type Theme struct {
	Name string

	Title, Muted, Accent, Success, Error, Pending lipgloss.Style
	Selected, Purchased, Help                     lipgloss.Style

	BoxUnchecked, BoxChecked string
	SymPurchased, SymPending string
	SymEditing, SymCursor    string
	BarFilled, BarEmpty      string

	Border      lipgloss.Border
	BorderColor lipgloss.TerminalColor
}

// ThemeNames lists the themes accepted by SetTheme.
var ThemeNames = []string{"classic", "neon", "mono"}

var current = Lookup("classic")

// Lookup returns the named theme; unknown names get classic.
func Lookup(name string) Theme {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "neon":
		return Theme{
			Name:      "neon",
			Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Muted:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
			Selected:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
			Purchased: lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:      lipgloss.NewStyle().Faint(true),

			BoxUnchecked: "◻", BoxChecked: "◼",
			SymPurchased: "✔", SymPending: "•",
			SymEditing: "✎", SymCursor: "❯",
			BarFilled: "█", BarEmpty: "░",

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("13"),
		}
	case "mono":
		plain := lipgloss.NewStyle()
		return Theme{
			Name:  "mono",
			Title: plain, Muted: plain, Accent: plain,
			Success: plain, Error: plain, Pending: plain,
			Selected: plain, Purchased: plain, Help: plain,

			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymPurchased: "x", SymPending: "-",
			SymEditing: "*", SymCursor: ">",
			BarFilled: "#", BarEmpty: ".",

			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
		}
	default: // classic
		return Theme{
			Name:      "classic",
			Title:     lipgloss.NewStyle().Bold(true),
			Muted:     lipgloss.NewStyle().Faint(true),
			Accent:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			Success:   lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
			Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
			Pending:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
			Selected:  lipgloss.NewStyle().Bold(true).Reverse(true),
			Purchased: lipgloss.NewStyle().Faint(true).Strikethrough(true),
			Help:      lipgloss.NewStyle().Faint(true),

			BoxUnchecked: "☐", BoxChecked: "☑",
			SymPurchased: "✔", SymPending: "•",
			SymEditing: "✎", SymCursor: ">",
			BarFilled: "█", BarEmpty: "░",

			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("8"),
		}
	}
}

func SetTheme(name string) { current = Lookup(name) }

func Current() Theme { return current }
