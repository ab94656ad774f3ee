// Package links handles outbound navigation from the landing page: the buy
// button and the social links.
package links

import (
	"errors"
	"fmt"
	"net/url"
	"os/exec"
	"runtime"

	"github.com/charmbracelet/x/ansi"
)

// ErrNoBrowser is returned by openers that cannot launch anything, such as
// the one used for SSH visitors.
var ErrNoBrowser = errors.New("links: no browser available")

// Opener navigates to a URL.
type Opener interface {
	Open(rawURL string) error
}

// Validate checks that rawURL is an absolute http or https URL.
func Validate(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("links: invalid url %q: %w", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("links: unsupported scheme in %q", rawURL)
	}
	if u.Host == "" {
		return fmt.Errorf("links: missing host in %q", rawURL)
	}
	return nil
}

// BrowserOpener launches the platform's default browser.
type BrowserOpener struct {
	goos  string
	start func(name string, args ...string) error
}

// NewBrowserOpener returns an opener for the running OS.
func NewBrowserOpener() *BrowserOpener {
	return &BrowserOpener{
		goos: runtime.GOOS,
		start: func(name string, args ...string) error {
			cmd := exec.Command(name, args...)
			if err := cmd.Start(); err != nil {
				return err
			}
			// Reap in the background; the browser outlives us.
			go cmd.Wait() //nolint:errcheck
			return nil
		},
	}
}

// Command returns the program and arguments that open rawURL.
func (o *BrowserOpener) Command(rawURL string) (string, []string) {
	switch o.goos {
	case "darwin":
		return "open", []string{rawURL}
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler", rawURL}
	default:
		return "xdg-open", []string{rawURL}
	}
}

// Open launches the browser on rawURL after validating it.
func (o *BrowserOpener) Open(rawURL string) error {
	if err := Validate(rawURL); err != nil {
		return err
	}
	name, args := o.Command(rawURL)
	if err := o.start(name, args...); err != nil {
		return fmt.Errorf("links: cannot start %s: %w", name, err)
	}
	return nil
}

// NoopOpener never opens anything. Callers fall back to showing the URL.
type NoopOpener struct{}

// Open always returns ErrNoBrowser.
func (NoopOpener) Open(string) error {
	return ErrNoBrowser
}

// Hyperlink wraps text in an OSC 8 hyperlink to rawURL. Terminals without
// hyperlink support show text unchanged.
func Hyperlink(text, rawURL string) string {
	return ansi.SetHyperlink(rawURL) + text + ansi.ResetHyperlink()
}
