package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/atomicstack/grid-menu/internal/backend"
	"github.com/atomicstack/grid-menu/internal/format/table"
	"github.com/atomicstack/grid-menu/internal/layout"
	"github.com/atomicstack/grid-menu/internal/menu"
	"github.com/atomicstack/grid-menu/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	LayoutPath string
	Menu       string
	User       string
	Width      int
	Height     int
	// TermWidth and TermHeight hold the terminal size detected at startup.
	TermWidth  int
	TermHeight int
	Refresh    time.Duration
	ShowFooter bool
	List       bool
}

// Run loads the configured layout and hands it to RunCatalog.
func Run(cfg Config) error {
	catalog, err := LoadCatalog(cfg.LayoutPath)
	if err != nil {
		return err
	}
	return RunCatalog(cfg, catalog)
}

// RunCatalog executes the Bubble Tea program on catalog, or prints its menus
// when List is set.
func RunCatalog(cfg Config, catalog *layout.Catalog) error {
	if cfg.List {
		return List(os.Stdout, catalog)
	}
	ticker := backend.NewTicker(cfg.Refresh)
	defer ticker.Stop()
	model, err := ui.NewModel(ui.Options{
		Catalog:       catalog,
		Start:         cfg.Menu,
		User:          menu.User(cfg.User),
		Width:         cfg.Width,
		Height:        cfg.Height,
		InitialWidth:  cfg.TermWidth,
		InitialHeight: cfg.TermHeight,
		ShowFooter:    cfg.ShowFooter,
		Ticker:        ticker,
	})
	if err != nil {
		return fmt.Errorf("open menu: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// LoadCatalog reads the layout at path, or the built-in layout when path is
// empty.
func LoadCatalog(path string) (*layout.Catalog, error) {
	if path == "" {
		return layout.Default(), nil
	}
	catalog, err := layout.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load layout: %w", err)
	}
	return catalog, nil
}

// List writes a table of the catalog's menus.
func List(w io.Writer, catalog *layout.Catalog) error {
	alignments := []table.Alignment{table.AlignLeft, table.AlignLeft, table.AlignRight, table.AlignRight}
	return table.Write(w, catalog.Rows(), alignments)
}
