package main

import (
	"fmt"
	"os"

	"github.com/atomicstack/grid-menu/internal/app"
	"github.com/atomicstack/grid-menu/internal/config"
	"github.com/atomicstack/grid-menu/internal/layout"
	"github.com/atomicstack/grid-menu/internal/logging"
	"github.com/atomicstack/grid-menu/internal/logging/events"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	terminal := inspectTerminal()
	runtimeCfg.App = applyTerminalSize(runtimeCfg.App, terminal)

	catalog, err := app.LoadCatalog(runtimeCfg.App.LayoutPath)
	if err != nil {
		fail(err)
	}
	if !runtimeCfg.App.List {
		name, err := resolveStartMenu(catalog, runtimeCfg.App.Menu)
		if err != nil {
			fail(err)
		}
		runtimeCfg.App.Menu = name
	}

	events.App.Start(startupTracePayload(runtimeCfg, catalog, terminal))

	if err := app.RunCatalog(runtimeCfg.App, catalog); err != nil {
		fail(err)
	}
}

func fail(err error) {
	logging.Error(err)
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

// applyTerminalSize records the detected terminal size as the initial viewport.
// Explicit -width and -height values still pin the view.
func applyTerminalSize(cfg app.Config, terminal terminalInfo) app.Config {
	if terminal.Size == nil {
		return cfg
	}
	if cfg.TermWidth <= 0 {
		cfg.TermWidth = terminal.Size.Width
	}
	if cfg.TermHeight <= 0 {
		cfg.TermHeight = terminal.Size.Height
	}
	return cfg
}

// resolveStartMenu turns the -menu query into the exact name of the menu
// that will be opened first.
func resolveStartMenu(catalog *layout.Catalog, query string) (string, error) {
	_, name, err := catalog.Find(query)
	if err != nil {
		return "", fmt.Errorf("resolve menu: %w", err)
	}
	return name, nil
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg config.Config, catalog *layout.Catalog, terminal terminalInfo) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	flags["trace"] = cfg.Logging.Trace
	flags["logFile"] = cfg.Logging.FilePath
	source := cfg.App.LayoutPath
	if source == "" {
		source = "default"
	}
	payload := map[string]interface{}{
		"argv":     cfg.Args,
		"flags":    flags,
		"config":   cfg,
		"layout":   source,
		"user":     cfg.App.User,
		"terminal": terminal,
		"viewport": map[string]interface{}{
			"width":  cfg.App.Width,
			"height": cfg.App.Height,
			"term":   fmt.Sprintf("%dx%d", cfg.App.TermWidth, cfg.App.TermHeight),
		},
	}
	if !cfg.App.List {
		payload["menu"] = cfg.App.Menu
	}
	if catalog != nil {
		payload["menus"] = catalog.Names()
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	return payload
}

// terminalInfo describes the standard descriptors and the first usable
// terminal size found among them.
type terminalInfo struct {
	Size        *terminalSize    `json:"size,omitempty"`
	Descriptors []descriptorInfo `json:"descriptors"`
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptorInfo struct {
	Name     string `json:"name"`
	Terminal bool   `json:"terminal"`
	Width    int    `json:"width,omitempty"`
	Height   int    `json:"height,omitempty"`
	Error    string `json:"error,omitempty"`
}

// inspectTerminal checks stdout first since that is where the grid is drawn.
func inspectTerminal() terminalInfo {
	files := []struct {
		name string
		file *os.File
	}{
		{"stdout", os.Stdout},
		{"stderr", os.Stderr},
		{"stdin", os.Stdin},
	}
	info := terminalInfo{Descriptors: make([]descriptorInfo, 0, len(files))}
	for _, f := range files {
		d := describeDescriptor(f.name, f.file)
		if info.Size == nil && d.Width > 0 && d.Height > 0 {
			info.Size = &terminalSize{Source: d.Name, Width: d.Width, Height: d.Height}
		}
		info.Descriptors = append(info.Descriptors, d)
	}
	return info
}

func describeDescriptor(name string, f *os.File) descriptorInfo {
	d := descriptorInfo{Name: name}
	if f == nil {
		return d
	}
	fd := int(f.Fd())
	if fd < 0 || !term.IsTerminal(fd) {
		return d
	}
	d.Terminal = true
	width, height, err := term.GetSize(fd)
	if err != nil {
		d.Error = err.Error()
		return d
	}
	d.Width, d.Height = width, height
	return d
}
