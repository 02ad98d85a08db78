package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// BaseModel содержит общие поля и методы для всех моделей
type BaseModel struct {
	Env     *Env
	Options []string

	cursor  int
	title   string
	message string
	err     error
	help    string
}

func (m BaseModel) Init() tea.Cmd {
	return nil
}

func (m *BaseModel) navigateUp() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *BaseModel) navigateDown() {
	if m.cursor < m.getMaxCursor() {
		m.cursor++
	}
}

func (m *BaseModel) setMessage(msg string) {
	m.message = msg
	m.err = nil
}

func (m *BaseModel) setError(err error) {
	m.err = err
	m.message = ""
}

func (m BaseModel) renderInner(
	f func(*strings.Builder) *strings.Builder,
) string {
	var s strings.Builder
	if m.title != "" {
		s.WriteString(Styles.Title.Render(" "+m.title+" ") + "\n\n")
	}

	if m.message != "" {
		s.WriteString(Styles.Success.Render(m.message) + "\n\n")
	}

	if m.err != nil {
		s.WriteString(Styles.Error.Render(m.err.Error()) + "\n\n")
	}

	s = *f(&s)

	help := m.help
	if help == "" {
		help = "  ↑/↓ — navigation\n  Enter — select\n  Esc — back\n  Ctrl+C — quit\n"
	}
	s.WriteString("\n\n" + Styles.Help.Render(help))

	return s.String()
}

func (m BaseModel) getMaxCursor() int {
	return len(m.Options) - 1
}
