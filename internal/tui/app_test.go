package tui

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/kiltia/showroom"
	"github.com/kiltia/showroom/config"
	"github.com/kiltia/showroom/internal/source"
	"github.com/kiltia/showroom/pkg/log"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap/zaptest"
)

var fixedNow = time.Date(2024, 3, 9, 8, 0, 0, 0, time.UTC)

func newEnv(t *testing.T) *Env {
	t.Helper()
	logger := log.Wrap(zaptest.NewLogger(t).Sugar())
	store := showroom.NewStore(
		showroom.WithLogger(logger),
		showroom.WithClock(func() time.Time { return fixedNow }),
	)
	loader := source.New(config.Default().Source)
	t.Cleanup(func() { _ = loader.Close() })
	return &Env{
		Controls: showroom.NewControls(store),
		Loader:   loader,
		Editor: config.EditorConfig{
			ExportDir:     t.TempDir(),
			FlashDuration: 10 * time.Millisecond,
			PreviewWidth:  60,
		},
		Logger: logger,
	}
}

func key(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func press(t *testing.T, m tea.Model, keys ...string) tea.Model {
	t.Helper()
	for _, k := range keys {
		m, _ = m.Update(key(k))
	}
	return m
}

func down(n int) []string {
	keys := make([]string, n)
	for i := range keys {
		keys[i] = "down"
	}
	return keys
}

func TestMainMenuOpensTabs(t *testing.T) {
	env := newEnv(t)
	cases := []struct {
		cursor int
		tab    Tab
	}{
		{menuDesign, TabDesign},
		{menuTypography, TabTypography},
		{menuProduct, TabProduct},
	}
	for _, tc := range cases {
		m := press(t, NewMainMenuModel(env), append(down(tc.cursor), "enter")...)
		editor, ok := m.(SectionEditorModel)
		if !ok {
			t.Fatalf("cursor %d opened %T", tc.cursor, m)
		}
		if editor.Tab != tc.tab {
			t.Errorf("cursor %d opened tab %s, want %s", tc.cursor, editor.Tab, tc.tab)
		}
		if _, ok := press(t, editor, "esc").(MainMenuModel); !ok {
			t.Errorf("esc from %s did not return to the menu", tc.tab)
		}
	}
}

func TestEnumFieldsCycle(t *testing.T) {
	env := newEnv(t)
	store := env.Controls.Store()

	m := press(t, NewSectionEditorModel(env, TabTypography), "right")
	if got := store.Typography().FontFamily; got != showroom.FontPoppins {
		t.Errorf("after right: %s, want Poppins", got)
	}
	press(t, m, "left", "left")
	if got := store.Typography().FontFamily; got != showroom.FontRoboto {
		t.Errorf("after left twice: %s, want Roboto", got)
	}

	press(t, NewSectionEditorModel(env, TabDesign), "enter")
	if got := store.CurrentLayout(); got != showroom.Layout2 {
		t.Errorf("layout = %s, want layout2", got)
	}
}

func TestProductSlotsCycle(t *testing.T) {
	env := newEnv(t)
	store := env.Controls.Store()

	m := press(t, NewSectionEditorModel(env, TabProduct), "right")
	if got := store.Product().Customization.Arms.Selected; got != "oak-natural" {
		t.Errorf("arms = %q, want oak-natural", got)
	}
	press(t, m, "down", "left")
	if got := store.Product().Customization.Fabric.Selected; got != "green-fabric" {
		t.Errorf("fabric = %q, want green-fabric", got)
	}
}

func TestFieldEditorClampsNumbers(t *testing.T) {
	env := newEnv(t)
	m := press(t, NewSectionEditorModel(env, TabTypography), "down", "down", "enter")
	fe, ok := m.(FieldEditorModel)
	if !ok {
		t.Fatalf("enter on font size opened %T", m)
	}
	fe.textInput.SetValue("99")

	m, _ = fe.Update(key("enter"))
	editor, ok := m.(SectionEditorModel)
	if !ok {
		t.Fatalf("saving returned %T", m)
	}
	if got := env.Controls.Store().Typography().FontSize; got != showroom.MaxFontSize {
		t.Errorf("font size = %d, want %d", got, showroom.MaxFontSize)
	}
	if editor.message != "Font size updated" || editor.cursor != 2 {
		t.Errorf("editor state after save: %q cursor %d", editor.message, editor.cursor)
	}
}

func TestFieldEditorRejectsInvalidInput(t *testing.T) {
	env := newEnv(t)
	store := env.Controls.Store()
	before := store.Configuration()
	rev := store.Revision()

	m := press(t, NewSectionEditorModel(env, TabDesign), append(down(3), "enter")...)
	fe := m.(FieldEditorModel)
	if fe.EditField.Name != "Section background" {
		t.Fatalf("editing %q", fe.EditField.Name)
	}
	fe.textInput.SetValue("blue")
	m, _ = fe.Update(key("enter"))
	fe, ok := m.(FieldEditorModel)
	if !ok {
		t.Fatalf("invalid color left the editor: %T", m)
	}
	if !errors.Is(fe.err, errBadColor) {
		t.Errorf("err = %v", fe.err)
	}
	if store.Revision() != rev || store.Layout() != before.Layout {
		t.Error("invalid color reached the store")
	}

	m = press(t, fe, "esc")
	if _, ok := m.(SectionEditorModel); !ok {
		t.Errorf("esc returned %T", m)
	}

	m = press(t, NewSectionEditorModel(env, TabDesign), append(down(1), "enter")...)
	fe = m.(FieldEditorModel)
	fe.textInput.SetValue("twelve")
	m, _ = fe.Update(key("enter"))
	if fe, ok := m.(FieldEditorModel); !ok || !errors.Is(fe.err, errNotNumber) {
		t.Errorf("non-number accepted: %T", m)
	}
}

func TestResetAsksForConfirmation(t *testing.T) {
	env := newEnv(t)
	store := env.Controls.Store()
	env.Controls.Layout().SwitchLayout(showroom.Layout2)

	m := press(t, NewMainMenuModel(env), append(down(menuReset), "enter")...)
	if _, ok := m.(ConfirmResetModel); !ok {
		t.Fatalf("reset opened %T", m)
	}
	m = press(t, m, "n")
	if store.CurrentLayout() != showroom.Layout2 {
		t.Error("declined reset changed the store")
	}
	menu, ok := m.(MainMenuModel)
	if !ok || menu.cursor != menuReset {
		t.Fatalf("declining returned %T", m)
	}

	press(t, menu, "enter", "y")
	if store.CurrentLayout() != showroom.Layout1 {
		t.Error("confirmed reset did not restore defaults")
	}
}

func TestExportWritesDatedFile(t *testing.T) {
	env := newEnv(t)
	m := press(t, NewMainMenuModel(env), append(down(menuExport), "enter")...)

	path := filepath.Join(env.Editor.ExportDir, "ui-config-2024-03-09.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading export: %v", err)
	}
	if !strings.Contains(string(data), `"version": "1.0.0"`) {
		t.Errorf("unexpected export:\n%s", data)
	}
	if menu := m.(MainMenuModel); !strings.Contains(menu.message, path) {
		t.Errorf("message = %q", menu.message)
	}
}

func TestImportFromFile(t *testing.T) {
	env := newEnv(t)
	store := env.Controls.Store()

	env.Controls.Layout().SwitchLayout(showroom.Layout2)
	doc, err := store.ExportConfiguration()
	if err != nil {
		t.Fatal(err)
	}
	store.Reset()
	path := filepath.Join(t.TempDir(), "saved.json")
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatal(err)
	}

	m := press(t, NewMainMenuModel(env), append(down(menuImport), "enter")...)
	im, ok := m.(ImportModel)
	if !ok {
		t.Fatalf("import opened %T", m)
	}
	im.textInput.SetValue(path)
	m, cmd := im.Update(key("enter"))
	if cmd == nil {
		t.Fatal("enter did not start loading")
	}
	m, _ = m.Update(cmd())

	menu, ok := m.(MainMenuModel)
	if !ok {
		t.Fatalf("successful import returned %T", m)
	}
	if !strings.Contains(menu.message, "imported") {
		t.Errorf("message = %q", menu.message)
	}
	if store.CurrentLayout() != showroom.Layout2 {
		t.Error("import did not reach the store")
	}
}

func TestImportRejectsInvalidDocument(t *testing.T) {
	env := newEnv(t)
	rev := env.Controls.Store().Revision()

	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte(`{"configuration":{"typography":{}}}`), 0o644); err != nil {
		t.Fatal(err)
	}
	m, _ := NewImportModel(env).Update(loadedMsg{Location: path, Text: `{"configuration":{"typography":{}}}`})
	im, ok := m.(ImportModel)
	if !ok || !errors.Is(im.err, errInvalidFile) {
		t.Fatalf("got %T", m)
	}

	m, _ = im.Update(loadedMsg{Location: "missing.json", Err: os.ErrNotExist})
	if im := m.(ImportModel); !errors.Is(im.err, os.ErrNotExist) {
		t.Errorf("err = %v", im.err)
	}
	if env.Controls.Store().Revision() != rev {
		t.Error("failed import changed the store")
	}
}

func TestPreviewFlashesAfterChange(t *testing.T) {
	env := newEnv(t)
	app := NewAppModel(env)
	defer app.Close()

	env.Controls.Button().UpdateShadow(showroom.ShadowLarge)
	msg := waitForChange(app.changes)()
	m, cmd := app.Update(msg)
	app = m.(AppModel)
	if cmd == nil {
		t.Fatal("change did not schedule the flash timeout")
	}
	if !app.Flashing() || !strings.Contains(app.View(), flashText) {
		t.Fatal("preview is not flashing after a change")
	}

	m, _ = app.Update(flashDoneMsg{Revision: app.flashRev - 1})
	app = m.(AppModel)
	if !app.Flashing() {
		t.Error("stale timeout ended the flash")
	}

	m, _ = app.Update(flashDoneMsg{Revision: app.flashRev})
	app = m.(AppModel)
	if app.Flashing() || strings.Contains(app.View(), flashText) {
		t.Error("flash did not end")
	}
}

func TestAppDelegatesToScreen(t *testing.T) {
	env := newEnv(t)
	app := NewAppModel(env)
	defer app.Close()

	var m tea.Model = app
	m = press(t, m, "down", "enter")
	if _, ok := m.(AppModel).Screen().(SectionEditorModel); !ok {
		t.Fatalf("screen = %T", m.(AppModel).Screen())
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC}); cmd == nil {
		t.Error("ctrl+c did not quit")
	}
}

func TestRenderPreview(t *testing.T) {
	cfg := showroom.DefaultConfiguration()
	out := RenderPreview(cfg, 60, false)
	for _, want := range []string{"Layout 1", "Cozy Longe Chair", "★1", "$200", "Add to Cart"} {
		if !strings.Contains(out, want) {
			t.Errorf("preview lacks %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, flashText) {
		t.Error("preview flashes without a change")
	}

	cfg.CurrentLayout = showroom.Layout2
	cfg.Product.Images = nil
	out = RenderPreview(cfg, 60, true)
	for _, want := range []string{"Layout 2", "no image", flashText} {
		if !strings.Contains(out, want) {
			t.Errorf("preview lacks %q:\n%s", want, out)
		}
	}
}

func TestPickedPath(t *testing.T) {
	cases := map[string]string{
		"query\n/tmp/a.json\n": "/tmp/a.json",
		"/tmp/typed.json\n":    "/tmp/typed.json",
		"query\n\n":            "query",
		"":                     "",
	}
	for in, want := range cases {
		if got := pickedPath(in); got != want {
			t.Errorf("pickedPath(%q) = %q, want %q", in, got, want)
		}
	}
}
