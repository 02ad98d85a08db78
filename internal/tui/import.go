package tui

import (
	"context"
	"strings"
	"time"

	"github.com/kiltia/showroom/pkg/log"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const loadTimeout = 30 * time.Second

// ImportModel asks for a path or URL, reads it through the source loader
// and hands the text to the store.
type ImportModel struct {
	BaseModel
	textInput textinput.Model
	loading   bool
}

func NewImportModel(env *Env) ImportModel {
	ti := textinput.New()
	ti.Placeholder = "path/to/ui-config.json or https://..."
	ti.Width = 50
	ti.Prompt = "> "
	ti.Focus()
	model := ImportModel{
		BaseModel: BaseModel{Env: env, title: "Import"},
		textInput: ti,
	}
	model.help = "  Enter — import\n  Ctrl+F — pick a file\n  Esc — back\n"
	return model
}

func (m ImportModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m ImportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return NewMainMenuModel(m.Env), nil
		case "enter":
			return m.startLoad(m.textInput.Value())
		case "ctrl+f":
			return SelectFile(m, ActionImport)
		}
	case FileSelectedMsg:
		if msg.Error != nil {
			m.setError(msg.Error)
			return m, nil
		}
		if msg.Path == "" {
			return m, nil
		}
		m.textInput.SetValue(msg.Path)
		return m.startLoad(msg.Path)
	case loadedMsg:
		return m.handleLoaded(msg), nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m ImportModel) startLoad(location string) (tea.Model, tea.Cmd) {
	location = strings.TrimSpace(location)
	if location == "" || m.loading {
		return m, nil
	}
	m.loading = true
	m.setMessage("Loading " + location + "...")
	loader := m.Env.Loader
	return m, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()
		text, err := loader.Load(ctx, location)
		return loadedMsg{Location: location, Text: text, Err: err}
	}
}

func (m ImportModel) handleLoaded(msg loadedMsg) tea.Model {
	m.loading = false
	if msg.Err != nil {
		m.Env.Logger.Warn(
			"reading import location failed",
			log.L().Tag(log.LogTagSource).Error(msg.Err).Add("location", msg.Location),
		)
		m.setError(msg.Err)
		return m
	}
	if !m.Env.Controls.Manager().Import(msg.Text) {
		m.setMessage("")
		m.err = errInvalidFile
		return m
	}
	menu := NewMainMenuModel(m.Env)
	menu.cursor = menuImport
	menu.setMessage("Configuration imported from " + msg.Location)
	return menu
}

func (m ImportModel) View() string {
	return m.renderInner(func(s *strings.Builder) *strings.Builder {
		s.WriteString("Path or URL of an exported configuration:\n")
		s.WriteString(m.textInput.View() + "\n")
		return s
	})
}
