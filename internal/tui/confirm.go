package tui

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

var errInvalidFile = errors.New("import failed: invalid configuration file")

type ConfirmResetModel struct {
	BaseModel
}

func NewConfirmResetModel(env *Env) ConfirmResetModel {
	model := ConfirmResetModel{
		BaseModel: BaseModel{Env: env, title: "Reset"},
	}
	model.help = "  y — reset\n  n/Esc — keep\n"
	return model
}

func (m ConfirmResetModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		menu := NewMainMenuModel(m.Env)
		menu.cursor = menuReset
		switch msg.String() {
		case "y", "Y":
			m.Env.Controls.Manager().Reset()
			menu.setMessage("Configuration reset to defaults")
			return menu, nil
		case "n", "N", "esc":
			return menu, nil
		}
	}
	return m, nil
}

func (m ConfirmResetModel) View() string {
	return m.renderInner(func(s *strings.Builder) *strings.Builder {
		s.WriteString(Styles.Normal.Render("Discard every change and restore the defaults? (y/n)") + "\n")
		return s
	})
}
