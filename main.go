package main

import (
	"fmt"
	"os"

	"github.com/karpador/trombone/internal/app"
	"github.com/karpador/trombone/internal/config"
	"github.com/karpador/trombone/internal/logging"
	"github.com/karpador/trombone/internal/logging/events"
	"github.com/karpador/trombone/internal/place"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	runtimeCfg := config.MustLoad()
	if err := config.Validate(runtimeCfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	if runtimeCfg.Features.ListActions {
		if err := app.PrintActions(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}
	logging.Configure(runtimeCfg.Logging.FilePath)
	defer logging.Sync()
	logging.SetTraceEnabled(runtimeCfg.Logging.Trace)

	terminal, ok := detectTerminal(standardDescriptors())
	if ok && narrowTerminal(runtimeCfg.App, terminal) {
		logging.Warn("terminal narrower than sidebar",
			zap.Int("terminalWidth", terminal.Width),
			zap.Int("sidebarWidth", runtimeCfg.App.SidebarWidth))
	}
	events.App.Start(startupTracePayload(runtimeCfg, terminal, ok))

	if err := app.Run(runtimeCfg.App); err != nil {
		logging.Error(err)
		logging.Sync()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// startupTracePayload records what the client starts with: where it opens,
// where lists and badges come from and the terminal it was given.
func startupTracePayload(cfg config.Config, terminal terminalSize, detected bool) map[string]interface{} {
	source := "static"
	if cfg.App.FeedPath != "" {
		source = "feed"
	}
	payload := map[string]interface{}{
		"argv":         cfg.Args,
		"flags":        cfg.Flags,
		"configFile":   cfg.File,
		"startPlace":   place.Static(cfg.App.StartPlace).Key(),
		"source":       source,
		"feed":         cfg.App.FeedPath,
		"pollInterval": cfg.App.PollInterval.String(),
		"lists":        len(cfg.App.Lists),
		"accounts":     len(cfg.App.Accounts),
		"sidebarWidth": cfg.App.SidebarWidth,
		"logFile":      cfg.Logging.FilePath,
		"trace":        cfg.Logging.Trace,
	}
	if detected {
		payload["terminal"] = terminal
	}
	return payload
}

type terminalSize struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type descriptor struct {
	name string
	fd   int
	size func(fd int) (int, int, error)
}

func standardDescriptors() []descriptor {
	size := func(fd int) (int, int, error) {
		if !term.IsTerminal(fd) {
			return 0, 0, fmt.Errorf("fd %d is not a terminal", fd)
		}
		return term.GetSize(fd)
	}
	return []descriptor{
		{name: "stdout", fd: int(os.Stdout.Fd()), size: size},
		{name: "stdin", fd: int(os.Stdin.Fd()), size: size},
		{name: "stderr", fd: int(os.Stderr.Fd()), size: size},
	}
}

// detectTerminal returns the size of the first descriptor attached to a
// terminal.
func detectTerminal(descriptors []descriptor) (terminalSize, bool) {
	for _, d := range descriptors {
		width, height, err := d.size(d.fd)
		if err != nil || width <= 0 {
			continue
		}
		return terminalSize{Source: d.name, Width: width, Height: height}, true
	}
	return terminalSize{}, false
}

// narrowTerminal reports whether a fixed or detected width leaves no room
// for the content column next to the sidebar.
func narrowTerminal(cfg app.Config, terminal terminalSize) bool {
	width := terminal.Width
	if cfg.Width > 0 {
		width = cfg.Width
	}
	return width <= cfg.SidebarWidth
}
