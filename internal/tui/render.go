package tui

import (
	"fmt"
	"strings"
)

func renderFields(
	s *strings.Builder,
	m SectionEditorModel,
) *strings.Builder {
	cfg := m.Env.Controls.Manager().Configuration()
	for i, f := range m.Fields {
		value := f.Get(cfg)
		if f.IsEnum() {
			value = "‹ " + value + " ›"
		}
		display := fmt.Sprintf("%s: %s", f.Name, value)

		if i == m.cursor {
			fmt.Fprintf(s, "→ %s\n", Styles.Selected.Render(display))
		} else {
			fmt.Fprintf(s, "  %s: %s\n",
				Styles.FieldName.Render(f.Name),
				Styles.FieldValue.Render(value))
		}
	}

	return s
}

func renderMenu(
	s *strings.Builder,
	cursor int,
	options []string,
) *strings.Builder {
	for i, option := range options {
		if i == cursor {
			fmt.Fprintf(s, "→ %s\n", Styles.Selected.Render(option))
		} else {
			fmt.Fprintf(s, "  %s\n", Styles.Normal.Render(option))
		}
	}

	return s
}
