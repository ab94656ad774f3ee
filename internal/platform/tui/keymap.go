package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/vovakirdan/doge420x/internal/config"
)

// LandingKeyMap defines the key bindings of the landing page.
type LandingKeyMap struct {
	Copy     key.Binding
	Buy      key.Binding
	Next     key.Binding
	Prev     key.Binding
	Activate key.Binding
	Help     key.Binding
	Quit     key.Binding
	Socials  []key.Binding // Parallel to config.LandingConfig.Socials
}

// ShortHelp returns key bindings for the short help view.
func (k LandingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Copy, k.Buy, k.Next, k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k LandingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Copy, k.Buy, k.Activate},
		{k.Next, k.Prev},
		k.Socials,
		{k.Help, k.Quit},
	}
}

// NewLandingKeyMap returns the default bindings plus one per social link.
func NewLandingKeyMap(socials []config.SocialLink) LandingKeyMap {
	km := LandingKeyMap{
		Copy: key.NewBinding(
			key.WithKeys("c", "y"),
			key.WithHelp("c", "copy CA"),
		),
		Buy: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "buy"),
		),
		Next: key.NewBinding(
			key.WithKeys("tab", "right", "l"),
			key.WithHelp("tab", "next"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "left", "h"),
			key.WithHelp("S-tab", "prev"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "activate"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}

	for _, s := range socials {
		km.Socials = append(km.Socials, key.NewBinding(
			key.WithKeys(s.Key),
			key.WithHelp(s.Key, strings.ToLower(s.Name)),
		))
	}
	return km
}
