package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kiltia/showroom/pkg/log"

	tea "github.com/charmbracelet/bubbletea"
)

type MainMenuModel struct {
	BaseModel
}

func NewMainMenuModel(env *Env) MainMenuModel {
	return MainMenuModel{
		BaseModel: BaseModel{
			Env:     env,
			Options: mainMenuOptions,
			title:   "Showroom Editor",
		},
	}
}

func (m MainMenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "enter":
			return m.handleEnter()
		case "down", "j":
			m.navigateDown()
		case "up", "k":
			m.navigateUp()
		}
	}
	return m, nil
}

func (m MainMenuModel) View() string {
	return m.renderInner(func(s *strings.Builder) *strings.Builder {
		return renderMenu(s, m.cursor, m.Options)
	})
}

func (m MainMenuModel) handleEnter() (tea.Model, tea.Cmd) {
	switch m.cursor {
	case menuDesign:
		return NewSectionEditorModel(m.Env, TabDesign), nil
	case menuTypography:
		return NewSectionEditorModel(m.Env, TabTypography), nil
	case menuProduct:
		return NewSectionEditorModel(m.Env, TabProduct), nil
	case menuImport:
		model := NewImportModel(m.Env)
		return model, model.Init()
	case menuExport:
		path, err := m.export()
		if err != nil {
			m.setError(fmt.Errorf("export failed: %w", err))
		} else {
			m.setMessage("Exported to " + path)
		}
		return m, nil
	case menuReset:
		return NewConfirmResetModel(m.Env), nil
	case menuQuit:
		return m, tea.Quit
	}
	return m, nil
}

// export writes the current document into the export directory under its
// dated file name.
func (m MainMenuModel) export() (string, error) {
	name, doc, err := m.Env.Controls.Manager().ExportFile()
	if err != nil {
		return "", err
	}
	dir := m.Env.Editor.ExportDir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return "", err
	}
	m.Env.Logger.Info(
		"configuration exported",
		log.L().Tag(log.LogTagExport).Add("path", path),
	)
	return path, nil
}
