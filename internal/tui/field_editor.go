package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type FieldEditorModel struct {
	BaseModel
	textInput textinput.Model
	EditField Field
	parent    SectionEditorModel
}

func NewFieldEditorModel(parent SectionEditorModel) FieldEditorModel {
	field := parent.Fields[parent.cursor]
	current := field.Get(parent.Env.Controls.Manager().Configuration())

	ti := textinput.New()
	ti.Placeholder = current
	ti.Width = 30
	ti.Prompt = "> "
	ti.SetValue(current)
	ti.CursorEnd()
	ti.Focus()
	return FieldEditorModel{
		BaseModel: BaseModel{
			Env:   parent.Env,
			title: "Field Editor",
		},
		textInput: ti,
		EditField: field,
		parent:    parent,
	}
}

func (m FieldEditorModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m FieldEditorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			return m.goBack(), nil
		case "enter":
			return m.handleEnter()
		}
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m FieldEditorModel) View() string {
	var s strings.Builder

	s.WriteString(Styles.Title.Render(" "+m.title+" ") + "\n\n")
	if m.err != nil {
		s.WriteString(Styles.Error.Render(m.err.Error()) + "\n\n")
	}

	fmt.Fprintf(&s, "Field: %s\n", Styles.Selected.Render(m.EditField.Name))
	fmt.Fprintf(&s, "Current value: %s\n\n",
		Styles.Normal.Render(m.EditField.Get(m.Env.Controls.Manager().Configuration())))

	s.WriteString("New value:\n")
	s.WriteString(m.textInput.View() + "\n\n")

	s.WriteString(Styles.Normal.Render("Press ") +
		Styles.Selected.Render("Enter") +
		Styles.Normal.Render(" to save, ") +
		Styles.Selected.Render("Esc") +
		Styles.Normal.Render(" to cancel"))

	return s.String()
}

func (m FieldEditorModel) goBack() tea.Model {
	m.textInput.Blur()
	parent := m.parent
	parent.refresh()
	parent.setMessage("")
	return parent
}

func (m FieldEditorModel) handleEnter() (tea.Model, tea.Cmd) {
	if err := m.EditField.Set(m.Env.Controls, m.textInput.Value()); err != nil {
		m.setError(err)
		return m, nil
	}
	m.textInput.Blur()
	parent := m.parent
	parent.refresh()
	parent.setMessage(m.EditField.Name + " updated")
	return parent, nil
}
