package tui

import (
	"time"

	"github.com/kiltia/showroom"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AppModel hosts the active screen next to the live preview. Store writes
// reach it through a subscription and light up the preview for
// Editor.FlashDuration.
type AppModel struct {
	env    *Env
	screen tea.Model

	changes     chan showroom.Change
	unsubscribe func()

	flashing bool
	flashRev uint64
	width    int
}

func NewAppModel(env *Env) AppModel {
	changes := make(chan showroom.Change, 1)
	unsubscribe := env.Controls.Store().Subscribe(func(ch showroom.Change) {
		// Keep only the newest change; the preview always redraws from the
		// store anyway.
		select {
		case <-changes:
		default:
		}
		select {
		case changes <- ch:
		default:
		}
	})
	return AppModel{
		env:         env,
		screen:      NewMainMenuModel(env),
		changes:     changes,
		unsubscribe: unsubscribe,
	}
}

// Close detaches the model from the store.
func (m AppModel) Close() {
	m.unsubscribe()
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.screen.Init(), waitForChange(m.changes))
}

func waitForChange(changes <-chan showroom.Change) tea.Cmd {
	return func() tea.Msg {
		return changeMsg(<-changes)
	}
}

func (m AppModel) flashFor() time.Duration {
	if m.env.Editor.FlashDuration > 0 {
		return m.env.Editor.FlashDuration
	}
	return 1500 * time.Millisecond
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case changeMsg:
		m.flashing = true
		m.flashRev = msg.Revision
		rev := msg.Revision
		cmds = append(cmds,
			waitForChange(m.changes),
			tea.Tick(m.flashFor(), func(time.Time) tea.Msg {
				return flashDoneMsg{Revision: rev}
			}),
		)
	case flashDoneMsg:
		if msg.Revision == m.flashRev {
			m.flashing = false
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.screen, cmd = m.screen.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m AppModel) previewWidth() int {
	w := m.env.Editor.PreviewWidth
	if w <= 0 {
		w = 48
	}
	if m.width > 0 {
		w = min(w, max(m.width/2, 24))
	}
	return w
}

func (m AppModel) View() string {
	cfg := m.env.Controls.Manager().Configuration()
	left := lipgloss.NewStyle().MarginRight(4).Render(m.screen.View())
	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		left,
		RenderPreview(cfg, m.previewWidth(), m.flashing),
	)
}

// Screen returns the active screen, mostly for tests.
func (m AppModel) Screen() tea.Model {
	return m.screen
}

func (m AppModel) Flashing() bool {
	return m.flashing
}
