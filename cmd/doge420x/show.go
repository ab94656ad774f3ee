package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/doge420x/internal/clipboard"
	"github.com/vovakirdan/doge420x/internal/links"
	"github.com/vovakirdan/doge420x/internal/platform/tui"
)

var (
	flagFPS     int
	flagLogFile string
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the landing page",
	Long: `Show the landing page in this terminal.

Controls:
  C/Enter    - Copy the contract address
  B          - Buy
  T/X/D      - Telegram, X, chart
  Tab        - Move focus
  ?          - More help
  Q/Ctrl+C   - Quit

The contract address is copied with OSC 52, which most modern terminals
(and tmux with set-clipboard on) support.

Examples:
  doge420x show
  doge420x show --fps 30
  doge420x show --log-file ./doge.log --log-level debug`,
	Run: runShow,
}

func init() {
	showCmd.Flags().IntVar(&flagFPS, "fps", 60, "Animation frame rate")
	showCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (the terminal belongs to the page)")
}

func runShow(_ *cobra.Command, _ []string) {
	if err := show(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// show runs the page and returns once every resource it opened is closed.
func show() error {
	cfg := loadConfig()

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	logOut, closeLog, err := openLogOutput(flagLogFile)
	if err != nil {
		return err
	}
	defer closeLog()
	logger := newLogger(logOut, "doge420x")

	rt := tui.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
	}
	out := clipboard.NewOutput(os.Stdout)
	deps := tui.Deps{
		Clipboard: clipboard.New(out, clipboard.DetectMultiplexer(os.Getenv)),
		Opener:    links.NewBrowserOpener(),
		Logger:    logger,
	}

	logger.Info("showing landing page", "width", width, "height", height, "fps", flagFPS)
	if err := tui.Run(cfg, rt, deps, tea.WithOutput(out)); err != nil {
		logger.Error("landing page failed", "error", err)
		return err
	}
	return nil
}

// openLogOutput opens path for appending. An empty path discards logs.
func openLogOutput(path string) (io.Writer, func() error, error) {
	if path == "" {
		return io.Discard, func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file: %w", err)
	}
	return f, f.Close, nil
}
