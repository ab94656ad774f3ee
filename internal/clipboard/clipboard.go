// Package clipboard copies text to the visitor's clipboard with the OSC 52
// terminal escape. It works the same for a local terminal and for an SSH
// session, since the sequence travels on the output stream.
package clipboard

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/aymanbagabas/go-osc52/v2"
)

// Multiplexer identifies a terminal multiplexer that needs the sequence wrapped.
type Multiplexer int

const (
	MultiplexerNone Multiplexer = iota
	MultiplexerTmux
	MultiplexerScreen
)

// DetectMultiplexer inspects environment values (TMUX, TERM) for a multiplexer.
func DetectMultiplexer(getenv func(string) string) Multiplexer {
	if getenv("TMUX") != "" {
		return MultiplexerTmux
	}
	term := getenv("TERM")
	if strings.HasPrefix(term, "screen") {
		return MultiplexerScreen
	}
	if strings.HasPrefix(term, "tmux") {
		return MultiplexerTmux
	}
	return MultiplexerNone
}

// Copier writes clipboard sequences to a terminal output.
type Copier struct {
	mu  sync.Mutex
	out io.Writer
	mux Multiplexer
}

// New creates a copier writing to out.
func New(out io.Writer, mux Multiplexer) *Copier {
	return &Copier{out: out, mux: mux}
}

// Sequence returns the escape sequence that sets the clipboard to text.
func (c *Copier) Sequence(text string) string {
	return c.sequence(text).String()
}

// Copy writes the sequence for text to the output.
func (c *Copier) Copy(text string) error {
	if c == nil || c.out == nil {
		return fmt.Errorf("clipboard: no output")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.sequence(text).WriteTo(c.out); err != nil {
		return fmt.Errorf("clipboard: cannot write sequence: %w", err)
	}
	return nil
}

func (c *Copier) sequence(text string) osc52.Sequence {
	seq := osc52.New(text)
	switch c.mux {
	case MultiplexerTmux:
		seq = seq.Tmux()
	case MultiplexerScreen:
		seq = seq.Screen()
	}
	return seq
}
