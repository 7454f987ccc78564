package main

import (
	"errors"
	"testing"
	"time"

	"github.com/karpador/trombone/internal/app"
	"github.com/karpador/trombone/internal/config"
	"github.com/karpador/trombone/internal/place"
	"github.com/karpador/trombone/internal/sidebar"
	"github.com/karpador/trombone/internal/state"
)

func fixedSize(width, height int, err error) func(int) (int, int, error) {
	return func(int) (int, int, error) {
		return width, height, err
	}
}

func TestDetectTerminalPrefersFirstTerminal(t *testing.T) {
	descriptors := []descriptor{
		{name: "stdout", fd: 1, size: fixedSize(0, 0, errors.New("not a terminal"))},
		{name: "stdin", fd: 0, size: fixedSize(120, 40, nil)},
		{name: "stderr", fd: 2, size: fixedSize(80, 24, nil)},
	}
	got, ok := detectTerminal(descriptors)
	if !ok {
		t.Fatalf("expected a terminal to be detected")
	}
	if got.Source != "stdin" || got.Width != 120 || got.Height != 40 {
		t.Fatalf("unexpected terminal %#v", got)
	}
}

func TestDetectTerminalWithoutTerminal(t *testing.T) {
	descriptors := []descriptor{
		{name: "stdout", fd: 1, size: fixedSize(0, 0, errors.New("not a terminal"))},
	}
	if _, ok := detectTerminal(descriptors); ok {
		t.Fatalf("expected no terminal")
	}
}

func TestNarrowTerminal(t *testing.T) {
	cfg := app.Config{SidebarWidth: 28}
	if !narrowTerminal(cfg, terminalSize{Width: 28}) {
		t.Fatalf("expected 28 columns to leave no room for content")
	}
	if narrowTerminal(cfg, terminalSize{Width: 100}) {
		t.Fatalf("expected 100 columns to fit")
	}
	cfg.Width = 20
	if !narrowTerminal(cfg, terminalSize{Width: 100}) {
		t.Fatalf("expected fixed width to take precedence")
	}
}

func TestStartupTracePayloadDescribesClient(t *testing.T) {
	cfg := config.Config{
		App: app.Config{
			StartPlace:   place.Bookmarks,
			SidebarWidth: 30,
			FeedPath:     "feed.toml",
			PollInterval: 15 * time.Second,
			Lists:        []sidebar.ListEntry{{ID: "1", Name: "frens"}},
			Accounts:     []state.Account{{ID: "a", Name: "alice"}, {ID: "b", Name: "bob"}},
		},
		Logging: config.Logging{FilePath: "trace.log", Trace: true},
		Flags:   map[string]string{"startPlace": "bookmarks"},
		Args:    []string{"--start-place", "bookmarks"},
	}

	payload := startupTracePayload(cfg, terminalSize{Source: "stdout", Width: 100, Height: 30}, true)

	checks := map[string]interface{}{
		"startPlace":   "bookmarks",
		"source":       "feed",
		"feed":         "feed.toml",
		"pollInterval": "15s",
		"lists":        1,
		"accounts":     2,
		"sidebarWidth": 30,
		"logFile":      "trace.log",
		"trace":        true,
	}
	for k, want := range checks {
		if payload[k] != want {
			t.Fatalf("payload[%q]: expected %v, got %v", k, want, payload[k])
		}
	}
	if term, ok := payload["terminal"].(terminalSize); !ok || term.Width != 100 {
		t.Fatalf("expected terminal size in payload, got %v", payload["terminal"])
	}
	flags, ok := payload["flags"].(map[string]string)
	if !ok || flags["startPlace"] != "bookmarks" {
		t.Fatalf("expected flags in payload, got %v", payload["flags"])
	}
}

func TestStartupTracePayloadStaticSource(t *testing.T) {
	payload := startupTracePayload(config.Config{}, terminalSize{}, false)
	if payload["source"] != "static" {
		t.Fatalf("expected static source, got %v", payload["source"])
	}
	if _, ok := payload["terminal"]; ok {
		t.Fatalf("expected no terminal entry when none was detected")
	}
}
