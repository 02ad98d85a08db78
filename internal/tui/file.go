package tui

import (
	"errors"
	"os"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// SelectFile suspends the editor and lets the user pick a path with fzf.
// The result arrives as a [FileSelectedMsg]; an empty Path means the pick
// was cancelled.
func SelectFile(m tea.Model, action Action) (tea.Model, tea.Cmd) {
	tmpFile, err := os.CreateTemp("", "fzf_output_*")
	if err != nil {
		return m, func() tea.Msg {
			return FileSelectedMsg{Action: action, Error: err}
		}
	}
	tmpPath := tmpFile.Name()
	if err := tmpFile.Close(); err != nil {
		return m, func() tea.Msg {
			return FileSelectedMsg{Action: action, Error: err}
		}
	}
	cmd := exec.Command("sh", "-c", "fzf --print-query --prompt='Import from: ' > "+tmpPath)

	return m, tea.ExecProcess(cmd, func(err error) tea.Msg {
		defer func() {
			_ = os.Remove(tmpPath)
		}()

		var exitError *exec.ExitError
		if err != nil && !errors.As(err, &exitError) {
			return FileSelectedMsg{Action: action, Error: err}
		}
		// 1 means no match and 130 an aborted pick; both still print the
		// query, which is handled below.
		if exitError != nil && exitError.ExitCode() == 2 {
			return FileSelectedMsg{Action: action, Error: err}
		}

		output, readErr := os.ReadFile(tmpPath)
		if readErr != nil {
			return FileSelectedMsg{Action: action, Error: readErr}
		}
		return FileSelectedMsg{Path: pickedPath(string(output)), Action: action}
	})
}

// pickedPath reads fzf --print-query output: the query on the first line,
// the selection, if any, on the second.
func pickedPath(output string) string {
	lines := strings.Split(strings.TrimSpace(output), "\n")
	if len(lines) > 1 && lines[1] != "" {
		return strings.TrimSpace(lines[1])
	}
	return strings.TrimSpace(lines[0])
}
