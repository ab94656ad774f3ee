package tui

import (
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/doge420x/internal/config"
	"github.com/vovakirdan/doge420x/internal/links"
)

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	f.copied = append(f.copied, text)
	return f.err
}

type fakeOpener struct {
	opened []string
	err    error
}

func (f *fakeOpener) Open(url string) error {
	f.opened = append(f.opened, url)
	return f.err
}

func newTestModel(t *testing.T) (LandingModel, *fakeClipboard, *fakeOpener) {
	t.Helper()
	clip := &fakeClipboard{}
	opener := &fakeOpener{}
	m := NewLandingModel(config.DefaultLandingConfig(), RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60}, Deps{
		Renderer:  lipgloss.NewRenderer(io.Discard),
		Clipboard: clip,
		Opener:    opener,
	})
	return m, clip, opener
}

func update(t *testing.T, m LandingModel, msg tea.Msg) (LandingModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	lm, ok := next.(LandingModel)
	if !ok {
		t.Fatalf("Update returned %T, expected LandingModel", next)
	}
	return lm, cmd
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestShadeRotationWrapsAfterFullCycle(t *testing.T) {
	m, _, _ := newTestModel(t)

	if m.ShadeIndex() != 0 {
		t.Fatalf("initial shade index = %d, expected 0", m.ShadeIndex())
	}

	for i := 1; i <= 20; i++ {
		var cmd tea.Cmd
		m, cmd = update(t, m, ShadeTickMsg{Gen: m.gen})
		if cmd == nil {
			t.Fatalf("tick %d did not re-arm the timer", i)
		}
		if want := i % 20; m.ShadeIndex() != want {
			t.Errorf("after %d ticks index = %d, expected %d", i, m.ShadeIndex(), want)
		}
	}
}

func TestContrastTracksCurrentShade(t *testing.T) {
	m, _, _ := newTestModel(t)
	// The default palette is derived from #CB9800 and never gets brighter than #5a5a5a.
	for range 20 {
		if m.ContrastColor() != "#FFFFFF" {
			t.Errorf("contrast on %s = %s, expected #FFFFFF", m.CurrentShade(), m.ContrastColor())
		}
		m, _ = update(t, m, ShadeTickMsg{Gen: m.gen})
	}
}

func TestStaleShadeTickIgnored(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, cmd := update(t, m, ShadeTickMsg{Gen: m.gen + 7})
	if cmd != nil || m.ShadeIndex() != 0 {
		t.Error("tick from another generation should be dropped")
	}
}

func TestQuitStopsTimers(t *testing.T) {
	m, _, _ := newTestModel(t)
	gen := m.gen

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("quit should return tea.Quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("quit command should produce tea.QuitMsg")
	}
	if m.Running() || !m.IsQuitting() {
		t.Error("model should be stopped and quitting")
	}

	// A tick already in flight when the page was torn down must not land.
	m, cmd = update(t, m, ShadeTickMsg{Gen: gen})
	if cmd != nil || m.ShadeIndex() != 0 {
		t.Error("shade tick after teardown should be ignored")
	}
	m, cmd = update(t, m, FrameMsg{Gen: gen, Time: time.Now()})
	if cmd != nil {
		t.Error("frame after teardown should not re-arm")
	}

	// Stopping twice keeps the generation stable.
	after := m.gen
	m.stop()
	if m.gen != after {
		t.Error("second stop should be a no-op")
	}

	if m.View() != "" {
		t.Error("View() should be empty once quitting")
	}
}

func TestCopyShowsPopupThenExpires(t *testing.T) {
	m, clip, _ := newTestModel(t)
	cfg := config.DefaultLandingConfig()

	m, cmd := update(t, m, keyRune('c'))
	if cmd == nil {
		t.Fatal("copy key should return a command")
	}
	result := cmd()
	if len(clip.copied) != 1 || clip.copied[0] != cfg.Token.ContractAddress {
		t.Fatalf("clipboard got %v, expected the contract address", clip.copied)
	}

	m, cmd = update(t, m, result)
	if !m.PopupVisible() {
		t.Fatal("popup should be visible after a copy")
	}
	if m.Notice() != cfg.Token.CopiedMessage {
		t.Errorf("Notice() = %q, expected %q", m.Notice(), cfg.Token.CopiedMessage)
	}
	if cmd == nil {
		t.Error("popup should schedule its expiry")
	}

	m, _ = update(t, m, PopupExpiredMsg{Seq: m.popupSeq})
	if m.PopupVisible() {
		t.Error("popup should hide when its timer fires")
	}
}

func TestRepeatedCopyRestartsPopupWindow(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, CopyResultMsg{})
	first := m.popupSeq
	m, _ = update(t, m, CopyResultMsg{})

	// The first timer fires, but the second copy is still being shown.
	m, _ = update(t, m, PopupExpiredMsg{Seq: first})
	if !m.PopupVisible() {
		t.Error("expiry of an earlier copy should not hide the popup")
	}

	m, _ = update(t, m, PopupExpiredMsg{Seq: m.popupSeq})
	if m.PopupVisible() {
		t.Error("expiry of the latest copy should hide the popup")
	}
}

func TestCopyFailureIsReported(t *testing.T) {
	m, clip, _ := newTestModel(t)
	clip.err = errors.New("no terminal")

	m, cmd := update(t, m, keyRune('c'))
	m, _ = update(t, m, cmd())

	if !m.PopupVisible() || !strings.Contains(m.Notice(), "no terminal") {
		t.Errorf("Notice() = %q, expected the copy error", m.Notice())
	}
}

func TestBuyOpensTradingSite(t *testing.T) {
	m, _, opener := newTestModel(t)

	m, cmd := update(t, m, keyRune('b'))
	if cmd == nil {
		t.Fatal("buy key should return a command")
	}
	msg := cmd()
	if len(opener.opened) != 1 || opener.opened[0] != config.DefaultLandingConfig().Token.BuyURL {
		t.Fatalf("opened %v, expected the buy URL", opener.opened)
	}

	m, _ = update(t, m, msg)
	if m.PopupVisible() {
		t.Error("successful open should not raise the popup")
	}
}

func TestSocialShortcuts(t *testing.T) {
	cfg := config.DefaultLandingConfig()

	for i, s := range cfg.Socials {
		m, _, opener := newTestModel(t)
		m, cmd := update(t, m, keyRune(rune(s.Key[0])))
		if cmd == nil {
			t.Fatalf("%s: shortcut %q returned no command", s.Name, s.Key)
		}
		cmd()
		if len(opener.opened) != 1 || opener.opened[0] != s.URL {
			t.Errorf("%s: opened %v, expected %s", s.Name, opener.opened, s.URL)
		}
		if m.focus != focusFirstSocial+i {
			t.Errorf("%s: focus = %d, expected %d", s.Name, m.focus, focusFirstSocial+i)
		}
	}
}

func TestNoBrowserShowsURL(t *testing.T) {
	m, _, opener := newTestModel(t)
	opener.err = links.ErrNoBrowser

	m, cmd := update(t, m, keyRune('t'))
	m, _ = update(t, m, cmd())

	if !m.PopupVisible() || !strings.Contains(m.Notice(), "https://t.me/doge420x") {
		t.Errorf("Notice() = %q, expected the Telegram URL", m.Notice())
	}
}

func TestFocusCycleAndActivate(t *testing.T) {
	m, clip, opener := newTestModel(t)
	count := focusFirstSocial + len(config.DefaultLandingConfig().Socials)

	// Enter on the initial focus copies.
	_, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	cmd()
	if len(clip.copied) != 1 {
		t.Fatal("enter on the contract field should copy")
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.focus != focusBuy {
		t.Fatalf("focus after tab = %d, expected buy", m.focus)
	}
	_, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	cmd()
	if len(opener.opened) != 1 {
		t.Fatal("enter on the buy button should open the buy URL")
	}

	for range count - 1 {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyTab})
	}
	if m.focus != focusContract {
		t.Errorf("focus should wrap to the contract field, got %d", m.focus)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focus != count-1 {
		t.Errorf("shift+tab from the first element should wrap to %d, got %d", count-1, m.focus)
	}
}

func TestHelpToggle(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, keyRune('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	m, _ = update(t, m, keyRune('?'))
	if m.help.ShowAll {
		t.Error("? should collapse the help again")
	}
}

func TestFramesSettleIntroAndPulse(t *testing.T) {
	m, _, _ := newTestModel(t)
	start := time.Now()

	for i := 1; i <= 600; i++ {
		m, _ = update(t, m, FrameMsg{Gen: m.gen, Time: start.Add(time.Duration(i) * time.Second / 60)})
	}

	if !m.intro.Settled() {
		t.Errorf("intro spring not settled after 10s: %f", m.intro.Value())
	}
	if m.elapsed < 9*time.Second {
		t.Errorf("elapsed = %v, expected about 10s", m.elapsed)
	}
	if !m.pulse.Running() {
		t.Error("buy button pulse should be running")
	}
}

func TestViewShowsCard(t *testing.T) {
	m, _, _ := newTestModel(t)
	cfg := config.DefaultLandingConfig()
	start := time.Now()
	for i := 1; i <= 600; i++ {
		m, _ = update(t, m, FrameMsg{Gen: m.gen, Time: start.Add(time.Duration(i) * time.Second / 60)})
	}

	view := m.View()
	for _, want := range []string{cfg.Token.Name, cfg.Token.Tagline, cfg.Token.ContractAddress, cfg.Token.BuyLabel, "Telegram", "Chart"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}

	if lines := strings.Count(view, "\n") + 1; lines != 30 {
		t.Errorf("View() has %d rows, expected 30", lines)
	}
}

func TestViewShowsPopup(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, CopyResultMsg{})
	start := time.Now()
	for i := 1; i <= 120; i++ {
		m, _ = update(t, m, FrameMsg{Gen: m.gen, Time: start.Add(time.Duration(i) * time.Second / 60)})
	}

	if !strings.Contains(m.View(), "Copied CA to Clipboard") {
		t.Error("View() should show the copy popup")
	}
}

func TestWindowResize(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})

	if m.screen.Width() != 120 || m.screen.Height() != 40 {
		t.Errorf("backdrop size = %dx%d, expected 120x40", m.screen.Width(), m.screen.Height())
	}
	if got := strings.Count(m.View(), "\n") + 1; got != 40 {
		t.Errorf("View() has %d rows after resize, expected 40", got)
	}
}

func TestCardWidthFollowsIntro(t *testing.T) {
	m, _, _ := newTestModel(t)
	initial := m.cardWidth()

	start := time.Now()
	for i := 1; i <= 600; i++ {
		m, _ = update(t, m, FrameMsg{Gen: m.gen, Time: start.Add(time.Duration(i) * time.Second / 60)})
	}

	if initial >= m.cardWidth() {
		t.Errorf("card should grow during the intro: %d -> %d", initial, m.cardWidth())
	}
	if m.cardWidth() != cardMaxWidth {
		t.Errorf("settled card width = %d, expected %d", m.cardWidth(), cardMaxWidth)
	}
}
