package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type SectionEditorModel struct {
	BaseModel
	Tab    Tab
	Fields []Field
}

func NewSectionEditorModel(env *Env, tab Tab) SectionEditorModel {
	model := SectionEditorModel{
		BaseModel: BaseModel{Env: env},
		Tab:       tab,
	}
	model.title = string(tab)
	model.help = "  ↑/↓ — navigation\n  ←/→ — change option\n  Enter — edit\n  Esc — back\n"
	model.refresh()
	return model
}

// refresh rebuilds the field list from the current tree, keeping the cursor
// in range.
func (m *SectionEditorModel) refresh() {
	m.Fields = FieldsFor(m.Tab, m.Env.Controls.Manager().Configuration())
	m.Options = make([]string, len(m.Fields))
	for i, f := range m.Fields {
		m.Options[i] = f.Name
	}
	m.cursor = min(m.cursor, max(0, len(m.Fields)-1))
}

func (m SectionEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return NewMainMenuModel(m.Env), nil
		case "enter":
			return m.handleEnter()
		case "left", "h":
			m.cycle(-1)
		case "right", "l":
			m.cycle(1)
		case "down", "j":
			m.navigateDown()
		case "up", "k":
			m.navigateUp()
		}
	case changeMsg:
		m.refresh()
	}
	return m, nil
}

func (m *SectionEditorModel) cycle(step int) {
	if m.cursor >= len(m.Fields) {
		return
	}
	f := m.Fields[m.cursor]
	if !f.IsEnum() {
		return
	}
	f.Cycle(m.Env.Controls, m.Env.Controls.Manager().Configuration(), step)
	m.refresh()
	m.setMessage("")
}

func (m SectionEditorModel) handleEnter() (tea.Model, tea.Cmd) {
	if m.cursor >= len(m.Fields) {
		return m, nil
	}
	if m.Fields[m.cursor].IsEnum() {
		m.cycle(1)
		return m, nil
	}
	editor := NewFieldEditorModel(m)
	return editor, editor.Init()
}

func (m SectionEditorModel) View() string {
	return m.renderInner(func(s *strings.Builder) *strings.Builder {
		return renderFields(s, m)
	})
}
