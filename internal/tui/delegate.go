package tui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/ui"
)

// listItem adapts model.Item to bubbles/list.Item.
type listItem struct {
	model.Item
	editing bool
}

func (i listItem) Title() string       { return i.Name }
func (i listItem) Description() string { return fmt.Sprintf("Qty: %d", i.Quantity) }
func (i listItem) FilterValue() string { return i.Name }

// itemDelegate renders one item per line: cursor, checkbox, name, quantity.
type itemDelegate struct {
	theme ui.Theme
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	fmt.Fprint(w, d.line(it, index == m.Index()))
}

func (d itemDelegate) line(it listItem, selected bool) string {
	t := d.theme
	box := t.Muted.Render(t.BoxUnchecked)
	name := it.Name
	qty := t.Muted.Render(it.Description())
	if it.Purchased {
		box = t.Success.Render(t.BoxChecked)
		name = t.Purchased.Render(name)
		qty = t.Purchased.Render(it.Description())
	}

	prefix := "  "
	if selected {
		prefix = t.Selected.Render(t.SymCursor) + " "
	}
	suffix := ""
	if it.editing {
		suffix = " " + t.Accent.Render(t.SymEditing)
	}
	return fmt.Sprintf("%s%s %s  %s%s", prefix, box, name, qty, suffix)
}
