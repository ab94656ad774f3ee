package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/doge420x/internal/links"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Print the contract address and links",
	Long:  `Shows the token facts from the landing page without starting it.`,
	Run:   runInfo,
}

func runInfo(_ *cobra.Command, _ []string) {
	cfg := loadConfig()
	tty := term.IsTerminal(int(os.Stdout.Fd()))

	link := func(text, url string) string {
		if tty {
			return links.Hyperlink(text, url)
		}
		return text
	}

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(cfg.Colors.Primary))
	fmt.Println(title.Render(cfg.Token.Name))
	fmt.Println(cfg.Token.Tagline)
	fmt.Println()

	// Calculate column widths
	rows := [][2]string{
		{"Contract", cfg.Token.ContractAddress},
		{"Buy", link(cfg.Token.BuyURL, cfg.Token.BuyURL)},
	}
	for _, s := range cfg.Socials {
		rows = append(rows, [2]string{s.Name, link(s.URL, s.URL)})
	}
	maxLabel := 0
	for _, r := range rows {
		maxLabel = max(maxLabel, len(r[0]))
	}

	for _, r := range rows {
		fmt.Printf("  %-*s  %s\n", maxLabel, r[0], r[1])
	}

	fmt.Println()
	fmt.Println("Run 'doge420x show' to open the page.")
}
