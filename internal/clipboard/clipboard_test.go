package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"strings"
	"testing"
)

const contract = "7EYnhQoR9YM3N7UoaKRoA44Uy8JeaZV3qyouov87awMs"

func TestCopyWritesOSC52(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, MultiplexerNone)

	if err := c.Copy(contract); err != nil {
		t.Fatalf("Copy() failed: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "\x1b]52;") {
		t.Errorf("output %q does not start with OSC 52", out)
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(contract))
	if !strings.Contains(out, encoded) {
		t.Errorf("output %q does not carry the base64 payload", out)
	}
	if out != c.Sequence(contract) {
		t.Error("Copy() and Sequence() disagree")
	}
}

func TestCopyWrapsForTmux(t *testing.T) {
	var buf bytes.Buffer
	c := New(&buf, MultiplexerTmux)

	if err := c.Copy(contract); err != nil {
		t.Fatalf("Copy() failed: %v", err)
	}
	if !strings.HasPrefix(buf.String(), "\x1bPtmux;") {
		t.Errorf("tmux output %q should be DCS wrapped", buf.String())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken pipe")
}

func TestCopyErrors(t *testing.T) {
	if err := New(failingWriter{}, MultiplexerNone).Copy("x"); err == nil {
		t.Error("Copy() to failing writer should fail")
	}

	var nilCopier *Copier
	if err := nilCopier.Copy("x"); err == nil {
		t.Error("Copy() on nil copier should fail")
	}
}

func TestDetectMultiplexer(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want Multiplexer
	}{
		{name: "plain xterm", env: map[string]string{"TERM": "xterm-256color"}, want: MultiplexerNone},
		{name: "tmux env", env: map[string]string{"TMUX": "/tmp/tmux-1000/default,1,0", "TERM": "screen"}, want: MultiplexerTmux},
		{name: "tmux term", env: map[string]string{"TERM": "tmux-256color"}, want: MultiplexerTmux},
		{name: "gnu screen", env: map[string]string{"TERM": "screen.xterm-256color"}, want: MultiplexerScreen},
		{name: "empty", env: map[string]string{}, want: MultiplexerNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DetectMultiplexer(func(k string) string { return tc.env[k] })
			if got != tc.want {
				t.Errorf("DetectMultiplexer() = %v, expected %v", got, tc.want)
			}
		})
	}
}
