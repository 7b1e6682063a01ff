package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/idilsaglam/shoplist/internal/model"
	"github.com/idilsaglam/shoplist/internal/store"
	"github.com/idilsaglam/shoplist/internal/ui"
)

const listTitle = "Shopping List"

// Options tune the interactive list.
type Options struct {
	Theme     ui.Theme
	ShowHelp  bool
	CharLimit int
	Logger    *zap.Logger
}

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

const (
	fieldName = iota
	fieldQuantity
)

// Model is the Bubble Tea model for the shopping list screen. Every change
// goes through the store; the visible list is rebuilt from store.State().
type Model struct {
	store *store.Store
	theme ui.Theme
	keys  keyMap
	log   *zap.Logger

	list list.Model

	mode    mode
	editID  int
	name    textinput.Model
	qty     textinput.Model
	focus   int
	formErr string

	width, height int
}

// New builds the model over s. Run is the usual entrypoint; New is exposed
// for embedding and tests.
func New(s *store.Store, opt Options) Model {
	if opt.Logger == nil {
		opt.Logger = zap.NewNop()
	}
	if opt.CharLimit <= 0 {
		opt.CharLimit = 120
	}
	if opt.Theme.Name == "" {
		opt.Theme = ui.Current()
	}
	keys := defaultKeyMap()

	l := list.New(nil, itemDelegate{theme: opt.Theme}, 80, 20)
	l.Title = listTitle
	l.SetShowTitle(true)
	l.SetShowHelp(opt.ShowHelp)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = opt.Theme.Title
	l.Styles.HelpStyle = opt.Theme.Help
	l.Styles.PaginationStyle = opt.Theme.Help
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.listHelp

	m := Model{
		store: s,
		theme: opt.Theme,
		keys:  keys,
		log:   opt.Logger,
		list:  l,
		name:  newInput("Item name", opt.CharLimit),
		qty:   newInput("Quantity", 9),
		width: 80, height: 24,
	}
	m.refresh()
	return m
}

func newInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 30
	return ti
}

// Run starts the program in the alternate screen and blocks until quit.
func Run(s *store.Store, opt Options) error {
	p := tea.NewProgram(New(s, opt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd, modeEdit:
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}
	var cmd tea.Cmd
	if m.mode != modeList {
		if m.focus == fieldName {
			m.name, cmd = m.name.Update(msg)
		} else {
			m.qty, cmd = m.qty.Update(msg)
		}
		return m, cmd
	}
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.log.Debug("quit requested", zap.Int("items", m.store.State().Len()))
		return m, tea.Quit
	case key.Matches(msg, m.keys.Add):
		return m.openForm(modeAdd, model.Item{})
	case key.Matches(msg, m.keys.Toggle):
		if it, ok := m.selected(); ok {
			m.dispatch(model.TogglePurchased(it.ID))
		}
		return m, nil
	case key.Matches(msg, m.keys.Edit):
		it, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.dispatch(model.BeginEdit(it.ID))
		return m.openForm(modeEdit, it.Item)
	case key.Matches(msg, m.keys.Delete):
		if it, ok := m.selected(); ok {
			m.dispatch(model.Delete(it.ID))
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		m.log.Debug("quit requested from form", zap.Int("items", m.store.State().Len()))
		return m, tea.Quit
	case key.Matches(msg, m.keys.Cancel):
		if m.mode == modeEdit {
			m.dispatch(model.CancelEdit())
		}
		m.closeForm()
		return m, nil
	case key.Matches(msg, m.keys.NextField), key.Matches(msg, m.keys.PrevField):
		cmd := m.focusField(1 - m.focus)
		return m, cmd
	case key.Matches(msg, m.keys.Submit):
		return m.submit()
	}

	var cmd tea.Cmd
	if m.focus == fieldName {
		m.name, cmd = m.name.Update(msg)
	} else {
		m.qty, cmd = m.qty.Update(msg)
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	name, qty := m.name.Value(), m.qty.Value()
	if m.mode == modeEdit {
		m.dispatch(model.CompleteEdit(m.editID, name, qty))
		m.closeForm()
		return m, nil
	}

	before := m.store.State().Len()
	if err := m.dispatch(model.Add(name, qty)); err != nil {
		if errors.Is(err, model.ErrInvalidQuantity) {
			m.formErr = "Quantity must be a whole number above zero"
			cmd := m.focusField(fieldQuantity)
			return m, cmd
		}
		m.formErr = err.Error()
		return m, nil
	}
	if m.store.State().Len() == before {
		// blank name: nothing added, keep the form open
		cmd := m.focusField(fieldName)
		return m, cmd
	}
	m.closeForm()
	m.list.Select(len(m.list.Items()) - 1)
	return m, nil
}

func (m Model) openForm(md mode, it model.Item) (tea.Model, tea.Cmd) {
	m.mode = md
	m.formErr = ""
	m.editID = it.ID
	m.name.SetValue(it.Name)
	m.qty.SetValue("")
	if md == modeEdit {
		m.qty.SetValue(fmt.Sprint(it.Quantity))
	}
	m.name.CursorEnd()
	m.qty.CursorEnd()
	m.resize()
	m.log.Debug("form opened", zap.Bool("edit", md == modeEdit), zap.Int("id", it.ID))
	cmd := m.focusField(fieldName)
	return m, cmd
}

func (m *Model) closeForm() {
	m.mode = modeList
	m.editID = 0
	m.formErr = ""
	m.name.SetValue("")
	m.qty.SetValue("")
	m.name.Blur()
	m.qty.Blur()
	m.resize()
}

func (m *Model) focusField(f int) tea.Cmd {
	m.focus = f
	if f == fieldName {
		m.qty.Blur()
		return m.name.Focus()
	}
	m.name.Blur()
	return m.qty.Focus()
}

func (m *Model) dispatch(a model.Action) error {
	err := m.store.Dispatch(a)
	m.refresh()
	return err
}

// refresh rebuilds the visible rows from the store, keeping the cursor in range.
func (m *Model) refresh() {
	state := m.store.State()
	rows := make([]list.Item, 0, state.Len())
	for _, it := range state.Items {
		rows = append(rows, listItem{Item: it, editing: state.IsEditing(it.ID)})
	}
	idx := m.list.Index()
	m.list.SetItems(rows)
	if idx >= len(rows) {
		idx = len(rows) - 1
	}
	if idx >= 0 {
		m.list.Select(idx)
	}
	purchased, pending := state.Stats()
	m.list.Title = ui.Header(m.theme, listTitle, purchased, pending)
}

func (m Model) selected() (listItem, bool) {
	it, ok := m.list.SelectedItem().(listItem)
	return it, ok
}

func (m *Model) resize() {
	h := m.height - 6
	if m.mode != modeList {
		h -= 6
	}
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 20 {
		w = 20
	}
	m.list.SetSize(w, h)
}

func (m Model) View() string {
	t := m.theme
	state := m.store.State()
	purchased, _ := state.Stats()

	var b strings.Builder
	if state.Len() == 0 {
		b.WriteString(t.Title.Render(listTitle))
		b.WriteString("\n\n")
		b.WriteString(t.Muted.Render("Nothing on the list yet. Press a to add an item."))
	} else {
		b.WriteString(m.list.View())
		b.WriteString("\n")
		b.WriteString(t.Muted.Render(ui.ProgressBar(t, purchased, state.Len(), 24)))
	}

	if m.mode != modeList {
		b.WriteString("\n")
		b.WriteString(m.formView())
	}
	return ui.PanelString(t, b.String())
}

func (m Model) formView() string {
	t := m.theme
	title := "Add item"
	action := "enter add"
	if m.mode == modeEdit {
		title = fmt.Sprintf("Edit item #%d", m.editID)
		action = "enter save"
	}
	lines := []string{
		t.Title.Render(title),
		"Name     " + m.name.View(),
		"Quantity " + m.qty.View(),
	}
	if m.formErr != "" {
		lines = append(lines, t.Error.Render(m.formErr))
	}
	lines = append(lines, t.Help.Render(action+" • tab switch field • esc cancel"))
	return ui.Panel(t, lines)
}
