package config

import (
	_ "embed"
)

//go:embed defaults/landing.yaml
var defaultLandingYAML []byte

// DefaultLandingConfig returns the built-in landing page configuration.
func DefaultLandingConfig() LandingConfig {
	return LandingConfig{
		Token: TokenConfig{
			Name:                "420X DOGE",
			Tagline:             "Much Gains, Very Solana",
			ContractAddress:     "7EYnhQoR9YM3N7UoaKRoA44Uy8JeaZV3qyouov87awMs",
			ContractPlaceholder: "Click to copy contract address",
			BuyLabel:            "Buy 420X DOGE",
			BuyURL:              "https://pump.fun/Hr2F4H15pS3Gprx2QuYkBhVfW7nvoaVtqBnQwFSupump",
			CopiedMessage:       "Copied CA to Clipboard",
		},
		Colors: ColorsConfig{
			Primary:    "#CB9800",
			Secondary:  "#B59D26",
			Accent:     "#FFD700",
			Text:       "#000000",
			Background: "#F4A460",
		},
		Shades: ShadesConfig{
			Count:      20,
			Step:       10,
			IntervalMS: 500,
		},
		Animation: AnimationConfig{
			PopupMS:        2000,
			PulseLegMS:     1000,
			PulseScale:     1.05,
			ScrollPeriodMS: 10000,
			ScrollTiles:    4,
		},
		Socials: []SocialLink{
			{Name: "Telegram", Key: "t", Icon: "✈", URL: "https://t.me/doge420x"},
			{Name: "X", Key: "x", Icon: "𝕏", URL: "https://x.com/doge420x"},
			{Name: "Chart", Key: "d", Icon: "▥", URL: "https://pump.fun/Hr2F4H15pS3Gprx2QuYkBhVfW7nvoaVtqBnQwFSupump"},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultLandingYAML
}
