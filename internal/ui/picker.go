package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lowkeylabs/applenotes-mcp/internal/notes"
)

var pickerTitleStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)

// noteItem implements list.Item for notes.Ref.
type noteItem struct {
	ref notes.Ref
}

func (n noteItem) Title() string       { return n.ref.Title }
func (n noteItem) Description() string { return n.ref.ID }
func (n noteItem) FilterValue() string { return n.ref.Title }

// pickerModel is a single-screen note selector.
type pickerModel struct {
	list     list.Model
	selected *notes.Ref
	quit     bool
}

func newPickerModel(refs []notes.Ref) pickerModel {
	items := make([]list.Item, len(refs))
	for i, r := range refs {
		items[i] = noteItem{ref: r}
	}

	l := list.New(items, list.NewDefaultDelegate(), 0, 0)
	l.Title = "Select a note"
	l.Styles.Title = pickerTitleStyle
	l.SetShowStatusBar(false)

	return pickerModel{list: l}
}

func (m pickerModel) Init() tea.Cmd { return nil }

func (m pickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		// Ignore keys while the list filter input is active.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(noteItem); ok {
				m.selected = &item.ref
			}
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.quit = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m pickerModel) View() string {
	return m.list.View()
}

// PickNote runs an interactive selector over refs and returns the chosen
// note. Returns nil when the user cancels.
func PickNote(refs []notes.Ref) (*notes.Ref, error) {
	if len(refs) == 0 {
		return nil, fmt.Errorf("no notes to pick from")
	}

	final, err := tea.NewProgram(newPickerModel(refs), tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	m, ok := final.(pickerModel)
	if !ok || m.quit {
		return nil, nil
	}
	return m.selected, nil
}
