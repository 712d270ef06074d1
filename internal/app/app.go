package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/gridmenu/internal/backend"
	"github.com/atomicstack/gridmenu/internal/logging/events"
	"github.com/atomicstack/gridmenu/internal/orders"
	"github.com/atomicstack/gridmenu/internal/store"
	"github.com/atomicstack/gridmenu/internal/ui"
	"github.com/atomicstack/gridmenu/internal/views"
)

// Config describes user-provided application options.
type Config struct {
	DBPath string
	// Seed generates that many synthetic orders for an empty database
	// instead of the five demo orders.
	Seed            int
	Width           int
	Height          int
	Overscan        int
	PageSize        int
	ViewsDir        string
	ExportDir       string
	ShowFooter      bool
	Verbose         bool
	RefreshInterval time.Duration
	View            string
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	ctx := context.Background()
	st, err := store.Open(ctx, cfg.DBPath)
	if err != nil {
		return err
	}
	defer st.Close()

	if _, err := st.SeedIfEmpty(ctx, seedRows(cfg.Seed)); err != nil {
		return fmt.Errorf("seed orders: %w", err)
	}

	var startView *views.View
	if cfg.View != "" {
		v, err := views.Load(cfg.ViewsDir, cfg.View)
		if err != nil {
			if names, _ := views.List(cfg.ViewsDir); len(names) > 0 {
				return fmt.Errorf("load view (saved views: %s): %w", strings.Join(names, ", "), err)
			}
			return fmt.Errorf("load view: %w", err)
		}
		startView = &v
	}

	watcher := backend.NewWatcher(st, cfg.RefreshInterval)
	defer watcher.Stop()

	model := ui.NewModel(ui.Options{
		Width:      cfg.Width,
		Height:     cfg.Height,
		Overscan:   cfg.Overscan,
		PageSize:   cfg.PageSize,
		ShowFooter: cfg.ShowFooter,
		Verbose:    cfg.Verbose,
		Watcher:    watcher,
		Service:    NewService(st, cfg.ExportDir, cfg.ViewsDir),
		View:       startView,
	})
	defer model.Close()

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err = program.Run()
	events.App.Stop("exit")
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

func seedRows(n int) []orders.Order {
	if n > 0 {
		return orders.Generate(n)
	}
	return orders.Seed()
}
