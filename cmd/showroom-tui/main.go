package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/kiltia/showroom"
	"github.com/kiltia/showroom/config"
	"github.com/kiltia/showroom/internal"
	"github.com/kiltia/showroom/internal/source"
	"github.com/kiltia/showroom/internal/tui"
	"github.com/kiltia/showroom/pkg/log"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	cfg, err := config.Load(context.Background())
	if err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}

	// Logging to the terminal would tear the editor screen.
	if cfg.Log.OutputPath == "" {
		cfg.Log.OutputPath = "showroom-tui.log"
	}
	logger, err := log.Init(cfg.Log)
	if err != nil {
		fmt.Printf("initializing logger: %v\n", err)
		os.Exit(1)
	}

	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("editor panicked: %v\n", r)
			fmt.Println("stack trace:")
			fmt.Println(string(debug.Stack()))
			os.Exit(1)
		}
	}()

	loader := source.New(cfg.Source)
	defer loader.Close()

	store := internal.NewStore(context.Background(), cfg, logger, loader)
	model := tui.NewAppModel(&tui.Env{
		Controls: showroom.NewControls(store),
		Loader:   loader,
		Editor:   cfg.Editor,
		Logger:   logger,
	})
	defer model.Close()

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
		os.Exit(1)
	}
}
