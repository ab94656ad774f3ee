// doge420x shows the 420X DOGE landing page in the terminal.
//
// Usage:
//
//	doge420x show            - Show the landing page locally
//	doge420x serve           - Serve the landing page over SSH
//	doge420x palette         - Print the background shade palette
//	doge420x info            - Print the token facts and links
//
// Global flags:
//
//	--config <path>     - Landing page config YAML
//	--log-level <level> - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/doge420x/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "doge420x",
	Short: "420X DOGE - Much Gains, Very Solana",
	Long: `doge420x renders the 420X DOGE landing page in your terminal.

Available commands:
  show     - Show the landing page in this terminal
  serve    - Serve the landing page over SSH
  palette  - Print the rotating background shades
  info     - Print the contract address and links

Examples:
  doge420x show
  doge420x serve --ssh :23420
  doge420x palette --base "#808080" --count 10
  doge420x info --config ./my-landing.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to landing page config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(paletteCmd)
	rootCmd.AddCommand(infoCmd)
}

// loadConfig loads the landing config or exits with an error.
func loadConfig() config.LandingConfig {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// newLogger returns a logger writing to w at the level from --log-level.
func newLogger(w io.Writer, prefix string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using info\n", err)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
