package app

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/karpador/trombone/internal/action"
	"github.com/karpador/trombone/internal/backend"
	"github.com/karpador/trombone/internal/format/table"
	"github.com/karpador/trombone/internal/place"
	"github.com/karpador/trombone/internal/sidebar"
	"github.com/karpador/trombone/internal/state"
	"github.com/karpador/trombone/internal/ui"
)

// Config describes user-provided application options.
type Config struct {
	StartPlace   place.StaticKind
	Width        int
	Height       int
	SidebarWidth int
	FeedPath     string
	PollInterval time.Duration
	ShowFooter   bool
	Verbose      bool
	Lists        []sidebar.ListEntry
	Accounts     []state.Account
	Badges       map[string]uint64
}

// NewSource picks the collaborator that feeds lists and badges: the feed
// file when one is configured, otherwise the configured lists and badges.
func NewSource(cfg Config) backend.Source {
	if strings.TrimSpace(cfg.FeedPath) != "" {
		return backend.NewFileSource(cfg.FeedPath)
	}
	lists := cfg.Lists
	if lists == nil {
		lists = sidebar.PlaceholderLists()
	}
	return backend.NewStaticSource(lists, cfg.Badges)
}

// Options maps the configuration onto the UI model options.
func Options(cfg Config, watcher *backend.Watcher) ui.Options {
	lists := cfg.Lists
	if strings.TrimSpace(cfg.FeedPath) != "" {
		// Lists arrive with the first feed poll.
		lists = []sidebar.ListEntry{}
	}
	return ui.Options{
		Width:        cfg.Width,
		Height:       cfg.Height,
		SidebarWidth: cfg.SidebarWidth,
		ShowFooter:   cfg.ShowFooter,
		Verbose:      cfg.Verbose,
		Start:        cfg.StartPlace,
		Lists:        lists,
		Accounts:     cfg.Accounts,
		Watcher:      watcher,
	}
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	interval := cfg.PollInterval
	if interval <= 0 {
		interval = 30 * time.Second
	}
	watcher := backend.NewWatcher(NewSource(cfg), interval)
	defer watcher.Stop()
	model := ui.NewModel(Options(cfg, watcher))
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}

// PrintActions writes the action table: qualified name, label and
// accelerator, in registration order.
func PrintActions(w io.Writer) error {
	registry, _, err := action.Default()
	if err != nil {
		return fmt.Errorf("build actions: %w", err)
	}
	rows := make([][]string, 0, len(registry.All()))
	for _, a := range registry.All() {
		rows = append(rows, []string{a.QualifiedName(), a.Label, a.Accelerator})
	}
	for _, line := range table.Format(rows, nil) {
		if _, err := fmt.Fprintln(w, strings.TrimRight(line, " ")); err != nil {
			return err
		}
	}
	return nil
}
