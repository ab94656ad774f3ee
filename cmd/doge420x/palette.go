package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/doge420x/internal/config"
	"github.com/vovakirdan/doge420x/internal/shade"
)

var (
	flagBase  string
	flagCount int
	flagWatch bool
)

var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Print the background shade palette",
	Long: `Print the shades the landing page background rotates through, each
with the text color picked for it.

Without --base the configured base color is used (the primary brand
color unless shades.base is set).

Examples:
  doge420x palette
  doge420x palette --base "#808080"
  doge420x palette --count 10 --watch`,
	Run: runPalette,
}

func init() {
	paletteCmd.Flags().StringVar(&flagBase, "base", "", "Base color as #rrggbb (default: from config)")
	paletteCmd.Flags().IntVar(&flagCount, "count", 0, "Number of shades (default: from config)")
	paletteCmd.Flags().BoolVar(&flagWatch, "watch", false, "Rotate through the shades like the page does")
}

func runPalette(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	base := cfg.BaseColor()
	if flagBase != "" {
		parsed, err := shade.ParseColor(flagBase)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: --base: %v\n", err)
			os.Exit(1)
		}
		base = parsed
	}
	count := cfg.Shades.Count
	if flagCount != 0 {
		count = flagCount
	}
	if count <= 0 || count > config.MaxShades {
		fmt.Fprintf(os.Stderr, "Error: --count must be in 1..%d, got %d\n", config.MaxShades, count)
		os.Exit(1)
	}

	shades := shade.GeneratePaletteStep(base, count, cfg.Shades.Step)

	if !flagWatch {
		fmt.Printf("Palette from %s (%d shades):\n\n", base, len(shades))
		for i, c := range shades {
			fmt.Println("  " + swatch(i, c))
		}
		return
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: --watch needs a terminal")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	fmt.Printf("Rotating %d shades every %s, Ctrl+C to stop\n", len(shades), cfg.Shades.Interval())
	fmt.Print("\r" + swatch(0, shades[0]))

	rotator := shade.NewRotator(shades, cfg.Shades.Interval(), func(i int, c shade.Color) {
		fmt.Print("\r" + swatch(i, c))
	})
	rotator.Start(ctx)

	<-ctx.Done()
	rotator.Stop()
	fmt.Println()
}

// swatch renders one shade in its own background with its contrast text.
func swatch(i int, c shade.Color) string {
	contrast := shade.Contrast(c)
	style := lipgloss.NewStyle().
		Background(lipgloss.Color(c.String())).
		Foreground(lipgloss.Color(contrast.String())).
		Padding(0, 1)
	return style.Render(fmt.Sprintf("%2d  %s  luma %5.1f  text %s", i, c, shade.Luma(c), contrast))
}
