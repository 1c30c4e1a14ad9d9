package ui

import (
	"reflect"
	"time"

	"github.com/atomicstack/grid-menu/internal/backend"
	"github.com/atomicstack/grid-menu/internal/layout"
	"github.com/atomicstack/grid-menu/internal/logging/events"
	"github.com/atomicstack/grid-menu/internal/menu"
	"github.com/atomicstack/grid-menu/internal/theme"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
)

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Catalog    *layout.Catalog
	Start      string
	User       menu.User
	Width      int
	Height     int
	// InitialWidth and InitialHeight size the view until the first resize
	// when Width or Height is unset.
	InitialWidth  int
	InitialHeight int
	ShowFooter    bool
	Ticker        *backend.Ticker
}

// Model implements the Bubble Tea model for a single grid menu user.
type Model struct {
	catalog  *layout.Catalog
	host     *Host
	registry *menu.Registry
	ticker   *backend.Ticker

	width       int
	height      int
	fixedWidth  bool
	fixedHeight bool
	showFooter  bool

	selected int
	marked   []int

	pressSlot   int
	pressing    bool
	dragSlots   []int
	lastClick   int
	lastClickAt time.Time
	now         func() time.Time

	errMsg     string
	infoMsg    string
	infoExpire time.Time
	quitting   bool

	keys keyMap
	help help.Model

	handlers map[reflect.Type]msgHandler
}

// NewModel opens the starting menu for the user and returns the model that
// drives it.
func NewModel(opts Options) (*Model, error) {
	catalog := opts.Catalog
	if catalog == nil {
		catalog = layout.Default()
	}
	start, _, err := catalog.Find(opts.Start)
	if err != nil {
		return nil, err
	}
	user := opts.User
	if user == "" {
		user = "player"
	}
	host := NewHost(user)
	registry := menu.NewRegistry(host)
	host.Attach(registry)

	m := &Model{
		catalog:    catalog,
		host:       host,
		registry:   registry,
		ticker:     opts.Ticker,
		showFooter: opts.ShowFooter,
		lastClick:  outsideSlot,
		now:        time.Now,
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	} else {
		m.width = max(opts.InitialWidth, 0)
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	} else {
		m.height = max(opts.InitialHeight, 0)
	}
	m.registerHandlers()
	registry.Open(start, user)
	return m, nil
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.ticker == nil {
		return nil
	}
	return waitForTick(m.ticker)
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if handler := m.handlerFor(msg); handler != nil {
		cmd = handler(msg)
	}
	return m, m.finishUpdate(cmd)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):        m.handleKeyMsg,
		reflect.TypeOf(tea.MouseMsg{}):      m.handleMouseMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}): m.handleWindowSizeMsg,
		reflect.TypeOf(tickMsg{}):           m.handleTickMsg,
		reflect.TypeOf(tickDoneMsg{}):       m.handleTickDoneMsg,
	}
}

func (m *Model) handlerFor(msg tea.Msg) msgHandler {
	if msg == nil || m.handlers == nil {
		return nil
	}
	t := reflect.TypeOf(msg)
	if handler, ok := m.handlers[t]; ok {
		return handler
	}
	if t.Kind() == reflect.Ptr {
		if handler, ok := m.handlers[t.Elem()]; ok {
			return handler
		}
	}
	return nil
}

// finishUpdate quits once no surface is left on screen.
func (m *Model) finishUpdate(cmd tea.Cmd) tea.Cmd {
	if m.quitting {
		return cmd
	}
	if m.host.Active() != 0 {
		m.clampSelection()
		return cmd
	}
	m.quitting = true
	m.shutdown()
	return tea.Quit
}

func (m *Model) shutdown() {
	open := m.registry.Len()
	m.host.Shutdown()
	if m.ticker != nil {
		m.ticker.Stop()
	}
	events.App.Shutdown(open)
}

// Registry exposes the session registry behind the model.
func (m *Model) Registry() *menu.Registry {
	return m.registry
}

// Host exposes the in-memory host behind the model.
func (m *Model) Host() *Host {
	return m.host
}

func (m *Model) handleWindowSizeMsg(msg tea.Msg) tea.Cmd {
	resize, ok := msg.(tea.WindowSizeMsg)
	if !ok {
		return nil
	}
	if !m.fixedWidth {
		m.width = resize.Width
	}
	if !m.fixedHeight {
		m.height = resize.Height
	}
	m.help.Width = m.width
	return nil
}

func (m *Model) setInfo(message string) {
	m.infoMsg = message
	m.infoExpire = m.now().Add(5 * time.Second)
}

func (m *Model) currentInfo() string {
	if m.infoMsg != "" && !m.infoExpire.IsZero() && m.now().After(m.infoExpire) {
		m.infoMsg = ""
		m.infoExpire = time.Time{}
	}
	return m.infoMsg
}
