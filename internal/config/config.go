// Package config provides YAML-based configuration for the landing page:
// what the card says, which colors it uses and how fast it animates.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/doge420x/internal/links"
	"github.com/vovakirdan/doge420x/internal/shade"
)

// LandingConfig contains everything the landing page renders.
type LandingConfig struct {
	Token     TokenConfig     `yaml:"token"`
	Colors    ColorsConfig    `yaml:"colors"`
	Shades    ShadesConfig    `yaml:"shades"`
	Animation AnimationConfig `yaml:"animation"`
	Socials   []SocialLink    `yaml:"socials"`
}

// TokenConfig holds the card text and the call to action.
type TokenConfig struct {
	Name                string `yaml:"name"`
	Tagline             string `yaml:"tagline"`
	ContractAddress     string `yaml:"contract_address"`
	ContractPlaceholder string `yaml:"contract_placeholder"`
	BuyLabel            string `yaml:"buy_label"`
	BuyURL              string `yaml:"buy_url"`
	CopiedMessage       string `yaml:"copied_message"`
}

// ColorsConfig holds the brand colors as "#rrggbb" strings.
type ColorsConfig struct {
	Primary    string `yaml:"primary"`
	Secondary  string `yaml:"secondary"`
	Accent     string `yaml:"accent"`
	Text       string `yaml:"text"`
	Background string `yaml:"background"`
}

// ShadesConfig controls the rotating background palette.
type ShadesConfig struct {
	Base       string `yaml:"base"` // Empty means Colors.Primary
	Count      int    `yaml:"count"`
	Step       int    `yaml:"step"`
	IntervalMS int    `yaml:"interval_ms"`
}

// AnimationConfig controls the cosmetic animations.
type AnimationConfig struct {
	PopupMS        int     `yaml:"popup_ms"`         // How long the copy notice stays up
	PulseLegMS     int     `yaml:"pulse_leg_ms"`     // Half a buy-button pulse
	PulseScale     float64 `yaml:"pulse_scale"`      // Peak buy-button scale
	ScrollPeriodMS int     `yaml:"scroll_period_ms"` // Time for one backdrop scroll loop
	ScrollTiles    int     `yaml:"scroll_tiles"`     // Tiles travelled per loop
}

// SocialLink is one round button under the buy button.
type SocialLink struct {
	Name string `yaml:"name"`
	Key  string `yaml:"key"` // Single-key shortcut
	Icon string `yaml:"icon"`
	URL  string `yaml:"url"`
}

// BaseColor returns the color the palette is generated from.
func (c LandingConfig) BaseColor() shade.Color {
	if c.Shades.Base != "" {
		return shade.Color(c.Shades.Base)
	}
	return shade.Color(c.Colors.Primary)
}

// Palette generates the background shades described by the config.
func (c LandingConfig) Palette() []shade.Color {
	return shade.GeneratePaletteStep(c.BaseColor(), c.Shades.Count, c.Shades.Step)
}

// Interval returns the shade rotation period.
func (s ShadesConfig) Interval() time.Duration {
	return time.Duration(s.IntervalMS) * time.Millisecond
}

// PopupDuration returns how long the copy notice is shown.
func (a AnimationConfig) PopupDuration() time.Duration {
	return time.Duration(a.PopupMS) * time.Millisecond
}

// PulseLeg returns the duration of half a pulse.
func (a AnimationConfig) PulseLeg() time.Duration {
	return time.Duration(a.PulseLegMS) * time.Millisecond
}

// ScrollPeriod returns the duration of one backdrop scroll loop.
func (a AnimationConfig) ScrollPeriod() time.Duration {
	return time.Duration(a.ScrollPeriodMS) * time.Millisecond
}

// MaxShades bounds shades.count. The gray ramp has only 256 distinct values.
const MaxShades = 256

// reservedKeys are taken by the page's own bindings.
const reservedKeys = "cybhlq? "

// Validate reports the first problem that would break rendering.
func (c LandingConfig) Validate() error {
	if c.Token.Name == "" {
		return fmt.Errorf("config: token.name is required")
	}
	if c.Token.ContractAddress == "" {
		return fmt.Errorf("config: token.contract_address is required")
	}
	if err := links.Validate(c.Token.BuyURL); err != nil {
		return fmt.Errorf("config: token.buy_url: %w", err)
	}

	colors := []struct {
		field string
		value string
	}{
		{"colors.primary", c.Colors.Primary},
		{"colors.secondary", c.Colors.Secondary},
		{"colors.accent", c.Colors.Accent},
		{"colors.text", c.Colors.Text},
		{"colors.background", c.Colors.Background},
	}
	if c.Shades.Base != "" {
		colors = append(colors, struct {
			field string
			value string
		}{"shades.base", c.Shades.Base})
	}
	for _, col := range colors {
		if _, err := shade.ParseColor(col.value); err != nil {
			return fmt.Errorf("config: %s: %w", col.field, err)
		}
	}

	if c.Shades.Count <= 0 || c.Shades.Count > MaxShades {
		return fmt.Errorf("config: shades.count must be in 1..%d, got %d", MaxShades, c.Shades.Count)
	}
	if c.Shades.Step <= 0 {
		return fmt.Errorf("config: shades.step must be positive, got %d", c.Shades.Step)
	}
	if c.Shades.IntervalMS <= 0 {
		return fmt.Errorf("config: shades.interval_ms must be positive, got %d", c.Shades.IntervalMS)
	}
	if c.Animation.PopupMS <= 0 {
		return fmt.Errorf("config: animation.popup_ms must be positive, got %d", c.Animation.PopupMS)
	}
	if c.Animation.PulseLegMS <= 0 {
		return fmt.Errorf("config: animation.pulse_leg_ms must be positive, got %d", c.Animation.PulseLegMS)
	}
	if c.Animation.ScrollPeriodMS <= 0 {
		return fmt.Errorf("config: animation.scroll_period_ms must be positive, got %d", c.Animation.ScrollPeriodMS)
	}
	if c.Animation.ScrollTiles <= 0 {
		return fmt.Errorf("config: animation.scroll_tiles must be positive, got %d", c.Animation.ScrollTiles)
	}
	if c.Animation.PulseScale < 1 {
		return fmt.Errorf("config: animation.pulse_scale must be at least 1, got %g", c.Animation.PulseScale)
	}

	seen := make(map[string]string, len(c.Socials))
	for i, s := range c.Socials {
		if s.Name == "" {
			return fmt.Errorf("config: socials[%d].name is required", i)
		}
		if err := links.Validate(s.URL); err != nil {
			return fmt.Errorf("config: socials[%d].url: %w", i, err)
		}
		if len(s.Key) != 1 {
			return fmt.Errorf("config: socials[%d].key must be a single character, got %q", i, s.Key)
		}
		if strings.Contains(reservedKeys, s.Key) {
			return fmt.Errorf("config: socials[%d].key %q is reserved", i, s.Key)
		}
		if other, dup := seen[s.Key]; dup {
			return fmt.Errorf("config: socials[%d].key %q already used by %s", i, s.Key, other)
		}
		seen[s.Key] = s.Name
	}
	return nil
}
