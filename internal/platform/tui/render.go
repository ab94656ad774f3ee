package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/doge420x/internal/backdrop"
	"github.com/vovakirdan/doge420x/internal/links"
)

// Card layout constants
const (
	cardMaxWidth  = 58  // Fits the contract address unabridged
	cardMinWidth  = 24  // Below this the card stops shrinking
	cardScreenPct = 0.9 // Share of the screen width the card may take
	cardChrome    = 6   // Border (2) plus horizontal padding (4)
	introScale    = 0.8 // Card scale at the start of the intro
	popupTravel   = 2   // Rows the popup slides up when shown
)

// View renders the page.
func (m LandingModel) View() string {
	if m.quitting {
		return ""
	}

	theme := NewTheme(m.renderer, m.cfg.Colors, m.rotation.Current(), clamp01(m.intro.Value()))
	block := lipgloss.JoinVertical(lipgloss.Center,
		m.renderCard(theme),
		theme.Help.Render(m.help.View(m.keys)),
	)

	if m.screen.Width() == 0 || m.screen.Height() == 0 {
		return block
	}

	backdrop.Paint(m.screen, m.tile, m.scroll.Offset(m.elapsed))
	return m.compose(theme, block)
}

// renderCard draws the card and everything on it.
func (m LandingModel) renderCard(theme Theme) string {
	inner := m.cardWidth() - cardChrome
	tok := m.cfg.Token

	title := theme.Title.Render(tok.Name)
	shadow := theme.TitleShadow.Render(strings.Repeat("─", lipgloss.Width(title)))
	tagline := theme.Tagline.Render(tok.Tagline)

	fieldStyle := theme.Field
	if m.focus == focusContract {
		fieldStyle = theme.FieldFocused
	}
	address := tok.ContractAddress
	if address == "" {
		address = tok.ContractPlaceholder
	}
	// The field border takes 2 cells and its padding 2 more.
	field := fieldStyle.Width(inner - 2).Render(ansi.Truncate(address, max(inner-4, 1), "…"))

	buttonStyle := theme.Button
	if m.focus == focusBuy {
		buttonStyle = theme.ButtonFocused
	}
	button := buttonStyle.Padding(0, 2+m.pulseExtra()).Render(tok.BuyLabel)

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		shadow,
		"",
		tagline,
		"",
		field,
		"",
		button,
		"",
		m.renderSocials(theme),
	)
	return theme.Card.Width(inner + cardChrome - 2).Render(content)
}

// renderSocials draws the row of social buttons, each an OSC 8 hyperlink.
func (m LandingModel) renderSocials(theme Theme) string {
	buttons := make([]string, 0, 2*len(m.cfg.Socials))
	for i, s := range m.cfg.Socials {
		style := theme.Social
		if m.focus == focusFirstSocial+i {
			style = theme.SocialFocused
		}
		if i > 0 {
			buttons = append(buttons, " ")
		}
		buttons = append(buttons, links.Hyperlink(style.Render(s.Icon+" "+s.Name), s.URL))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, buttons...)
}

// cardWidth returns the outer card width for the current intro scale.
func (m LandingModel) cardWidth() int {
	base := cardMaxWidth
	if w := m.screen.Width(); w > 0 {
		base = min(base, int(float64(w)*cardScreenPct))
	}
	scale := introScale + (1-introScale)*m.intro.Value()
	w := int(math.Round(float64(base) * scale))

	upper := cardMaxWidth
	if sw := m.screen.Width(); sw > 0 {
		upper = max(sw, cardMinWidth)
	}
	return max(cardMinWidth, min(w, upper))
}

// pulseExtra returns the extra horizontal padding of the buy button at the
// current pulse position.
func (m LandingModel) pulseExtra() int {
	labelW := lipgloss.Width(m.cfg.Token.BuyLabel) + 4
	maxExtra := max(1, int(math.Round(float64(labelW)*(m.cfg.Animation.PulseScale-1))))
	return int(math.Round(m.pulse.Progress() * float64(maxExtra)))
}

// compose lays block over the backdrop, centred, and adds the popup row.
func (m LandingModel) compose(theme Theme, block string) string {
	lines := strings.Split(block, "\n")
	h := m.screen.Height()
	y0 := max((h-len(lines))/2, 0)

	popup, popupY := m.popupLine(theme)

	var sb strings.Builder
	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}
		switch {
		case popup != "" && y == popupY:
			sb.WriteString(m.overlay(theme, y, popup))
		case y >= y0 && y < y0+len(lines):
			sb.WriteString(m.overlay(theme, y, lines[y-y0]))
		default:
			sb.WriteString(theme.Backdrop.Render(m.screen.Row(y)))
		}
	}
	return sb.String()
}

// overlay centres line on backdrop row y.
func (m LandingModel) overlay(theme Theme, y int, line string) string {
	w := m.screen.Width()
	lw := ansi.StringWidth(line)
	if lw > w {
		line = ansi.Truncate(line, w, "")
		lw = w
	}
	x := (w - lw) / 2

	var sb strings.Builder
	if x > 0 {
		sb.WriteString(theme.Backdrop.Render(m.screen.Slice(y, 0, x)))
	}
	sb.WriteString(line)
	if x+lw < w {
		sb.WriteString(theme.Backdrop.Render(m.screen.Slice(y, x+lw, w)))
	}
	return sb.String()
}

// popupLine returns the rendered popup and the row it sits on, or "" when
// it is fully hidden.
func (m LandingModel) popupLine(theme Theme) (string, int) {
	v := clamp01(m.popup.Value())
	if !m.popupVisible && v < 0.05 {
		return "", -1
	}
	y := m.screen.Height() - 2 + int(math.Round((1-v)*popupTravel))
	if y < 0 || y >= m.screen.Height() {
		return "", -1
	}
	return theme.Popup.Render(m.notice), y
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
