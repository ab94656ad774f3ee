package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/doge420x/internal/config"
	"github.com/vovakirdan/doge420x/internal/shade"
)

// Blend weights approximating the translucent layers of the page.
const (
	patternWeight = 0.3 // Backdrop pattern: shade toward its contrast color
	cardTint      = 0.2 // Card body: shade toward the primary color
	fieldTint     = 0.2 // Contract field: shade toward the accent color
)

// Theme contains the styles of one rendered frame. Every color depends on
// the current background shade, so a theme is rebuilt per frame.
type Theme struct {
	Backdrop lipgloss.Style

	Card        lipgloss.Style
	Title       lipgloss.Style
	TitleShadow lipgloss.Style
	Tagline     lipgloss.Style

	Field        lipgloss.Style
	FieldFocused lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style

	Social        lipgloss.Style
	SocialFocused lipgloss.Style

	Popup lipgloss.Style
	Help  lipgloss.Style
}

// NewTheme builds the styles for a frame. opacity in [0, 1] fades the card
// in from the background during the intro.
func NewTheme(r *lipgloss.Renderer, colors config.ColorsConfig, current shade.Color, opacity float64) Theme {
	contrast := shade.Contrast(current)
	primary := shade.Color(colors.Primary)
	secondary := shade.Color(colors.Secondary)
	accent := shade.Color(colors.Accent)
	text := shade.Color(colors.Text)

	fade := func(target shade.Color) lipgloss.Color {
		return lc(shade.Blend(current, target, opacity))
	}
	cardBg := lc(shade.Blend(current, primary, cardTint*opacity))

	field := r.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(fade(contrast)).
		Foreground(fade(contrast)).
		Background(lc(shade.Blend(current, accent, fieldTint*opacity))).
		Padding(0, 1).
		Align(lipgloss.Center)

	button := r.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(fade(contrast)).
		Background(lc(current)).
		Foreground(lc(contrast)).
		Bold(true)

	social := r.NewStyle().
		Background(lc(current)).
		Foreground(lc(contrast)).
		Padding(0, 1)

	return Theme{
		Backdrop: r.NewStyle().
			Background(lc(current)).
			Foreground(lc(shade.Blend(current, contrast, patternWeight))),

		Card: r.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(fade(accent)).
			Background(cardBg).
			Foreground(fade(text)).
			Padding(1, 2).
			Align(lipgloss.Center),
		Title:       r.NewStyle().Bold(true).Foreground(fade(primary)).Background(cardBg),
		TitleShadow: r.NewStyle().Foreground(fade(contrast)).Background(cardBg),
		Tagline:     r.NewStyle().Italic(true).Foreground(fade(contrast)).Background(cardBg),

		Field:        field,
		FieldFocused: field.Border(lipgloss.ThickBorder()),

		Button:        button,
		ButtonFocused: button.Underline(true).BorderForeground(lc(accent)),

		Social:        social,
		SocialFocused: social.Background(lc(accent)).Foreground(lc(secondary)),

		Popup: r.NewStyle().
			Background(lc(secondary)).
			Foreground(lc(text)).
			Padding(0, 2),
		Help: r.NewStyle().Foreground(lc(contrast)).Background(lc(current)),
	}
}

// lc converts a shade color to a lipgloss color.
func lc(c shade.Color) lipgloss.Color {
	return lipgloss.Color(string(c))
}
