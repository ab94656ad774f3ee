package links

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

const buyURL = "https://pump.fun/Hr2F4H15pS3Gprx2QuYkBhVfW7nvoaVtqBnQwFSupump"

func TestValidate(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{url: buyURL, wantErr: false},
		{url: "https://t.me/doge420x", wantErr: false},
		{url: "http://example.com", wantErr: false},
		{url: "javascript:alert(1)", wantErr: true},
		{url: "file:///etc/passwd", wantErr: true},
		{url: "https://", wantErr: true},
		{url: "not a url", wantErr: true},
		{url: "", wantErr: true},
	}
	for _, tc := range tests {
		err := Validate(tc.url)
		if (err != nil) != tc.wantErr {
			t.Errorf("Validate(%q) error = %v, wantErr %v", tc.url, err, tc.wantErr)
		}
	}
}

func TestBrowserOpenerCommand(t *testing.T) {
	tests := []struct {
		goos string
		name string
	}{
		{goos: "linux", name: "xdg-open"},
		{goos: "freebsd", name: "xdg-open"},
		{goos: "darwin", name: "open"},
		{goos: "windows", name: "rundll32"},
	}
	for _, tc := range tests {
		o := &BrowserOpener{goos: tc.goos}
		name, args := o.Command(buyURL)
		if name != tc.name {
			t.Errorf("%s: Command() name = %q, expected %q", tc.goos, name, tc.name)
		}
		if args[len(args)-1] != buyURL {
			t.Errorf("%s: URL should be the last argument, got %v", tc.goos, args)
		}
	}
}

func TestBrowserOpenerOpen(t *testing.T) {
	var gotName string
	var gotArgs []string
	o := &BrowserOpener{
		goos: "linux",
		start: func(name string, args ...string) error {
			gotName, gotArgs = name, args
			return nil
		},
	}

	if err := o.Open(buyURL); err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if gotName != "xdg-open" || len(gotArgs) != 1 || gotArgs[0] != buyURL {
		t.Errorf("Open() ran %s %v", gotName, gotArgs)
	}

	gotName = ""
	if err := o.Open("file:///etc/passwd"); err == nil {
		t.Error("Open() should reject non-http URLs")
	}
	if gotName != "" {
		t.Error("rejected URL should not launch anything")
	}

	o.start = func(string, ...string) error { return errors.New("not found") }
	if err := o.Open(buyURL); err == nil {
		t.Error("Open() should surface launch errors")
	}
}

func TestNoopOpener(t *testing.T) {
	if err := (NoopOpener{}).Open(buyURL); !errors.Is(err, ErrNoBrowser) {
		t.Errorf("NoopOpener.Open() = %v, expected ErrNoBrowser", err)
	}
}

func TestHyperlink(t *testing.T) {
	got := Hyperlink("Telegram", "https://t.me/doge420x")
	if !strings.HasPrefix(got, ansi.SetHyperlink("https://t.me/doge420x")) {
		t.Errorf("Hyperlink() = %q, missing OSC 8 opener", got)
	}
	if !strings.Contains(got, "Telegram") {
		t.Errorf("Hyperlink() = %q, missing text", got)
	}
	if !strings.HasSuffix(got, ansi.ResetHyperlink()) {
		t.Errorf("Hyperlink() = %q, missing OSC 8 closer", got)
	}
}
