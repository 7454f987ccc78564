package ui

import (
	"reflect"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/action"
	"github.com/karpador/trombone/internal/backend"
	"github.com/karpador/trombone/internal/data/dispatcher"
	"github.com/karpador/trombone/internal/logging/events"
	"github.com/karpador/trombone/internal/place"
	"github.com/karpador/trombone/internal/sidebar"
	"github.com/karpador/trombone/internal/state"
	"github.com/karpador/trombone/internal/theme"
	"github.com/karpador/trombone/internal/ui/command"
	uistate "github.com/karpador/trombone/internal/ui/state"
)

type Mode int

const (
	ModeSidebar Mode = iota
	ModeMenu
	ModeAccounts
	ModeFind
	ModeHelp
)

const defaultSidebarWidth = 28

var styles = theme.Default()

type msgHandler func(tea.Msg) tea.Cmd

// Options configures a Model.
type Options struct {
	Width        int
	Height       int
	SidebarWidth int
	ShowFooter   bool
	Verbose      bool
	Start        place.StaticKind
	Lists        []sidebar.ListEntry
	Accounts     []state.Account
	Watcher      *backend.Watcher
}

// Model implements the Bubble Tea model for the Trombone sidebar shell.
type Model struct {
	sidebar  *sidebar.Sidebar
	outbox   []sidebar.Output
	registry *action.Registry
	actions  *action.Dispatcher
	bus      *command.Bus
	keys     KeyMap
	accels   []accelerator
	accounts state.AccountStore

	backend        *backend.Watcher
	backendState   map[backend.Kind]error
	backendLastErr string
	dispatcher     *dispatcher.Dispatcher
	followRequests uint64

	rows          uistate.Cursor
	menuRows      uistate.Cursor
	accountRows   uistate.Cursor
	find          textinput.Model
	findOrigin    int
	content       place.Place
	mode          Mode
	width         int
	height        int
	sidebarWidth  int
	fixedWidth    bool
	fixedHeight   bool
	showFooter    bool
	verbose       bool
	errMsg        string
	infoMsg       string
	infoExpire    time.Time
	quitRequested bool

	handlers map[reflect.Type]msgHandler
}

// NewModel initialises the UI state with the sidebar highlighting the start
// place.
func NewModel(opts Options) *Model {
	registry, menu := action.MustDefault()
	lists := opts.Lists
	if lists == nil {
		lists = sidebar.PlaceholderLists()
	}
	m := &Model{
		registry:     registry,
		actions:      action.NewDispatcher(registry),
		keys:         DefaultKeyMap,
		accels:       acceleratorsFor(registry),
		accounts:     state.NewAccountStore(opts.Accounts),
		backend:      opts.Watcher,
		backendState: map[backend.Kind]error{},
		showFooter:   opts.ShowFooter,
		verbose:      opts.Verbose,
		sidebarWidth: opts.SidebarWidth,
		mode:         ModeSidebar,
		find:         newFindInput(),
	}
	if m.sidebarWidth <= 0 {
		m.sidebarWidth = defaultSidebarWidth
	}
	m.sidebar = sidebar.New(opts.Start, lists, menu, m.enqueueOutput)
	m.dispatcher = dispatcher.New(m.sidebar)
	m.bus = command.New(m.actions)
	m.content = m.sidebar.Current()
	m.rows = uistate.NewCursor(m.sidebar.Len(), m.sidebar.CurrentIndex())
	m.menuRows = uistate.NewCursor(len(menu.Entries()), 0)
	if opts.Width > 0 {
		m.width = opts.Width
		m.fixedWidth = true
	}
	if opts.Height > 0 {
		m.height = opts.Height
		m.fixedHeight = true
	}
	m.bindActions()
	m.registerHandlers()
	return m
}

// Init is part of the tea.Model interface.
func (m *Model) Init() tea.Cmd {
	if m.backend != nil {
		return waitForBackendEvent(m.backend)
	}
	return nil
}

// Update responds to Bubble Tea messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmds := make([]tea.Cmd, 0, 4)
	if handler := m.handlerFor(msg); handler != nil {
		if cmd := handler(msg); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return m, m.finishUpdate(cmds)
}

func (m *Model) registerHandlers() {
	m.handlers = map[reflect.Type]msgHandler{
		reflect.TypeOf(tea.KeyMsg{}):            m.handleKeyMsg,
		reflect.TypeOf(tea.WindowSizeMsg{}):     m.handleWindowSizeMsg,
		reflect.TypeOf(outputMsg{}):             m.handleOutputMsg,
		reflect.TypeOf(command.Unimplemented{}): m.handleUnimplementedMsg,
		reflect.TypeOf(command.Failed{}):        m.handleFailedMsg,
		reflect.TypeOf(backendEventMsg{}):       m.handleBackendEventMsg,
		reflect.TypeOf(backendDoneMsg{}):        m.handleBackendDoneMsg,
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

// finishUpdate appends the sidebar outputs raised during this update, in
// gesture order, after the handler commands.
func (m *Model) finishUpdate(cmds []tea.Cmd) tea.Cmd {
	if len(m.outbox) > 0 {
		deliveries := make([]tea.Cmd, 0, len(m.outbox))
		for _, out := range m.outbox {
			deliveries = append(deliveries, deliverOutput(out))
		}
		m.outbox = m.outbox[:0]
		cmds = append(cmds, tea.Sequence(deliveries...))
	}
	switch len(cmds) {
	case 0:
		return nil
	case 1:
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// Sidebar exposes the sidebar controller.
func (m *Model) Sidebar() *sidebar.Sidebar {
	return m.sidebar
}

// Accounts exposes the account store.
func (m *Model) Accounts() state.AccountStore {
	return m.accounts
}

// Mode reports the active interaction mode.
func (m *Model) Mode() Mode {
	return m.mode
}

// Content returns the place shown in the content area.
func (m *Model) Content() place.Place {
	return m.content
}

// QuitRequested reports whether the quit action ran.
func (m *Model) QuitRequested() bool {
	return m.quitRequested
}

func (m *Model) setMode(mode Mode) {
	if m.mode == mode {
		return
	}
	if prev := modeOverlayName(m.mode); prev != "" {
		events.UI.Overlay(prev, false)
	}
	m.mode = mode
	if next := modeOverlayName(mode); next != "" {
		events.UI.Overlay(next, true)
	}
}

func modeOverlayName(mode Mode) string {
	switch mode {
	case ModeMenu:
		return "menu"
	case ModeAccounts:
		return "accounts"
	case ModeFind:
		return "find"
	case ModeHelp:
		return "help"
	default:
		return ""
	}
}
