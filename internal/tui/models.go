package tui

import (
	"github.com/kiltia/showroom"
	"github.com/kiltia/showroom/config"
	"github.com/kiltia/showroom/internal/source"
	"github.com/kiltia/showroom/pkg/log"
)

// Env is shared by every screen of the editor.
type Env struct {
	Controls showroom.Controls
	Loader   *source.Loader
	Editor   config.EditorConfig
	Logger   log.Logger
}

var mainMenuOptions = []string{
	"Design",
	"Typography",
	"Product",
	"Import",
	"Export",
	"Reset",
	"Quit",
}

const (
	menuDesign = iota
	menuTypography
	menuProduct
	menuImport
	menuExport
	menuReset
	menuQuit
)

type Tab string

const (
	TabDesign     Tab = "Design"
	TabTypography Tab = "Typography"
	TabProduct    Tab = "Product"
)

type Action string

const ActionImport Action = "import"

type FileSelectedMsg struct {
	Path   string
	Action Action
	Error  error
}

// loadedMsg carries the result of reading an import location.
type loadedMsg struct {
	Location string
	Text     string
	Err      error
}

// changeMsg is emitted for every store write seen by the subscription.
type changeMsg showroom.Change

type flashDoneMsg struct {
	Revision uint64
}
