package tui

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/doge420x/internal/anim"
	"github.com/vovakirdan/doge420x/internal/backdrop"
	"github.com/vovakirdan/doge420x/internal/config"
	"github.com/vovakirdan/doge420x/internal/links"
	"github.com/vovakirdan/doge420x/internal/shade"
)

// maxFrameStep bounds how much animation time a single frame may consume,
// so a stalled terminal does not make springs jump.
const maxFrameStep = 250 * time.Millisecond

// RuntimeConfig carries the terminal facts of one session.
type RuntimeConfig struct {
	ScreenW  int // Screen width in characters
	ScreenH  int // Screen height in characters
	TickRate int // Animation frames per second
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// Clipboard receives the contract address on copy.
type Clipboard interface {
	Copy(text string) error
}

// Deps are the side-effecting collaborators of a LandingModel.
// Nil fields get harmless defaults.
type Deps struct {
	Renderer  *lipgloss.Renderer
	Clipboard Clipboard
	Opener    links.Opener
	Logger    *log.Logger
}

// focus targets, in tab order. Social links follow focusBuy.
const (
	focusContract = iota
	focusBuy
	focusFirstSocial
)

// LandingModel is the Bubble Tea model of the landing page.
type LandingModel struct {
	cfg      config.LandingConfig
	runtime  RuntimeConfig
	renderer *lipgloss.Renderer
	clip     Clipboard
	opener   links.Opener
	logger   *log.Logger
	keys     LandingKeyMap
	help     help.Model

	rotation shade.Rotation
	intro    anim.Spring // 0 = hidden and shrunk, 1 = fully shown
	popup    anim.Spring // 0 = hidden below, 1 = shown
	pulse    anim.Pulse
	scroll   anim.Scroll
	screen   *backdrop.Screen
	tile     backdrop.Tile

	elapsed   time.Duration
	lastFrame time.Time

	focus        int
	popupVisible bool
	popupSeq     int
	notice       string

	gen      int  // Timer generation; bumped on stop
	running  bool // Whether timers are re-armed
	quitting bool
}

// NewLandingModel creates the landing page model with its timers armed.
func NewLandingModel(cfg config.LandingConfig, rt RuntimeConfig, deps Deps) LandingModel {
	if rt.TickRate <= 0 {
		rt.TickRate = 60
	}
	if deps.Renderer == nil {
		deps.Renderer = lipgloss.DefaultRenderer()
	}
	if deps.Opener == nil {
		deps.Opener = links.NoopOpener{}
	}
	if deps.Logger == nil {
		deps.Logger = log.New(io.Discard)
	}

	tile := backdrop.DogeTile()
	pulse := anim.NewPulse(1, cfg.Animation.PulseScale, cfg.Animation.PulseLeg())
	pulse.Start()

	h := help.New()
	h.ShowAll = false

	return LandingModel{
		cfg:      cfg,
		runtime:  rt,
		renderer: deps.Renderer,
		clip:     deps.Clipboard,
		opener:   deps.Opener,
		logger:   deps.Logger,
		keys:     NewLandingKeyMap(cfg.Socials),
		help:     h,
		rotation: shade.NewRotation(cfg.Palette()),
		intro:    anim.NewSpring(anim.Wobbly, rt.TickRate, 0, 1),
		popup:    anim.NewSpring(anim.Popup, rt.TickRate, 0, 0),
		pulse:    pulse,
		scroll: anim.Scroll{
			Distance: tile.Width() * cfg.Animation.ScrollTiles,
			Period:   cfg.Animation.ScrollPeriod(),
		},
		screen:  backdrop.NewScreen(rt.ScreenW, rt.ScreenH),
		tile:    tile,
		gen:     1,
		running: true,
	}
}

// Init starts the shade rotation and the animation loop.
func (m LandingModel) Init() tea.Cmd {
	return tea.Batch(
		shadeTickCmd(m.cfg.Shades.Interval(), m.gen),
		frameCmd(m.runtime.TickRate, m.gen),
	)
}

// Update handles messages and updates the model state.
func (m LandingModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.runtime.ScreenW = msg.Width
		m.runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case ShadeTickMsg:
		if !m.running || msg.Gen != m.gen {
			return m, nil
		}
		m.rotation.Advance()
		return m, shadeTickCmd(m.cfg.Shades.Interval(), m.gen)

	case FrameMsg:
		if !m.running || msg.Gen != m.gen {
			return m, nil
		}
		m.advanceFrame(msg.Time)
		return m, frameCmd(m.runtime.TickRate, m.gen)

	case PopupExpiredMsg:
		if msg.Seq == m.popupSeq {
			m.popupVisible = false
			m.popup.SetTarget(0)
		}
		return m, nil

	case CopyResultMsg:
		if msg.Err != nil {
			m.logger.Warn("clipboard copy failed", "error", msg.Err)
			return m.showNotice(fmt.Sprintf("Copy failed: %v", msg.Err))
		}
		m.logger.Debug("contract address copied")
		return m.showNotice(m.cfg.Token.CopiedMessage)

	case OpenResultMsg:
		if msg.Err == nil {
			m.logger.Debug("opened link", "name", msg.Name, "url", msg.URL)
			return m, nil
		}
		if errors.Is(msg.Err, links.ErrNoBrowser) {
			return m.showNotice(fmt.Sprintf("%s: %s", msg.Name, msg.URL))
		}
		m.logger.Warn("cannot open link", "name", msg.Name, "error", msg.Err)
		return m.showNotice(fmt.Sprintf("Could not open %s", msg.Name))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m LandingModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stop()
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Copy):
		m.focus = focusContract
		return m, m.copyCmd()

	case key.Matches(msg, m.keys.Buy):
		m.focus = focusBuy
		return m, m.openCmd("Buy", m.cfg.Token.BuyURL)

	case key.Matches(msg, m.keys.Next):
		m.focus = (m.focus + 1) % m.focusCount()
		return m, nil

	case key.Matches(msg, m.keys.Prev):
		m.focus = (m.focus - 1 + m.focusCount()) % m.focusCount()
		return m, nil

	case key.Matches(msg, m.keys.Activate):
		return m, m.activate()
	}

	for i, b := range m.keys.Socials {
		if key.Matches(msg, b) {
			m.focus = focusFirstSocial + i
			s := m.cfg.Socials[i]
			return m, m.openCmd(s.Name, s.URL)
		}
	}

	return m, nil
}

// activate runs the action of the focused element.
func (m LandingModel) activate() tea.Cmd {
	switch {
	case m.focus == focusContract:
		return m.copyCmd()
	case m.focus == focusBuy:
		return m.openCmd("Buy", m.cfg.Token.BuyURL)
	case m.focus-focusFirstSocial < len(m.cfg.Socials):
		s := m.cfg.Socials[m.focus-focusFirstSocial]
		return m.openCmd(s.Name, s.URL)
	}
	return nil
}

func (m LandingModel) focusCount() int {
	return focusFirstSocial + len(m.cfg.Socials)
}

// copyCmd writes the contract address to the clipboard off the update loop.
func (m LandingModel) copyCmd() tea.Cmd {
	clip, text := m.clip, m.cfg.Token.ContractAddress
	return func() tea.Msg {
		if clip == nil {
			return CopyResultMsg{Err: errors.New("clipboard unavailable")}
		}
		return CopyResultMsg{Err: clip.Copy(text)}
	}
}

// openCmd navigates to url off the update loop.
func (m LandingModel) openCmd(name, url string) tea.Cmd {
	opener := m.opener
	return func() tea.Msg {
		return OpenResultMsg{Name: name, URL: url, Err: opener.Open(url)}
	}
}

// showNotice raises the popup with text and restarts its expiry timer.
func (m LandingModel) showNotice(text string) (tea.Model, tea.Cmd) {
	m.notice = text
	m.popupVisible = true
	m.popupSeq++
	m.popup.SetTarget(1)
	return m, popupTimerCmd(m.cfg.Animation.PopupDuration(), m.popupSeq)
}

// advanceFrame steps every animation driver to now.
func (m *LandingModel) advanceFrame(now time.Time) {
	dt := time.Second / time.Duration(m.runtime.TickRate)
	if !m.lastFrame.IsZero() && now.After(m.lastFrame) {
		dt = min(now.Sub(m.lastFrame), maxFrameStep)
	}
	m.lastFrame = now

	m.elapsed += dt
	m.intro.Step()
	m.popup.Step()
	m.pulse.Advance(dt)
}

// stop halts the timers. Only the first call has an effect.
func (m *LandingModel) stop() {
	if !m.running {
		return
	}
	m.running = false
	m.gen++
	m.pulse.Stop()
}

// ShadeIndex returns the position of the current background shade.
func (m LandingModel) ShadeIndex() int {
	return m.rotation.Index()
}

// CurrentShade returns the background shade being shown.
func (m LandingModel) CurrentShade() shade.Color {
	return m.rotation.Current()
}

// ContrastColor returns the foreground legible on the current shade.
func (m LandingModel) ContrastColor() shade.Color {
	return shade.Contrast(m.rotation.Current())
}

// PopupVisible reports whether the copy notice is up.
func (m LandingModel) PopupVisible() bool {
	return m.popupVisible
}

// Notice returns the text of the latest popup.
func (m LandingModel) Notice() string {
	return m.notice
}

// Running reports whether the timers are still armed.
func (m LandingModel) Running() bool {
	return m.running
}

// IsQuitting returns true if the visitor asked to leave.
func (m LandingModel) IsQuitting() bool {
	return m.quitting
}

// Run starts a local Bubble Tea program showing the landing page.
// When the clipboard shares the terminal with the program, pass
// tea.WithOutput with the same serialized writer.
func Run(cfg config.LandingConfig, rt RuntimeConfig, deps Deps, opts ...tea.ProgramOption) error {
	model := NewLandingModel(cfg, rt, deps)

	p := tea.NewProgram(
		model,
		append([]tea.ProgramOption{
			tea.WithAltScreen(), // Use alternate screen buffer
		}, opts...)...,
	)

	_, err := p.Run()
	return err
}
