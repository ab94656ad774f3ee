package clipboard

import (
	"io"
	"sync"
)

// Output serializes writes to a terminal stream that both the UI renderer
// and a Copier write to. Each Write reaches the stream whole, so a clipboard
// sequence lands between two frames and never inside one.
type Output struct {
	mu sync.Mutex
	w  io.Writer
}

// Write writes p to the underlying stream while holding the output lock.
func (o *Output) Write(p []byte) (int, error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.w.Write(p)
}

// terminalFile is what Bubble Tea looks for to treat its output as a TTY.
type terminalFile interface {
	io.ReadWriteCloser
	Fd() uintptr
}

// FileOutput is an Output over a terminal file. It keeps the file's
// descriptor visible so raw mode and size detection still work.
type FileOutput struct {
	*Output
	f terminalFile
}

// Read reads from the file.
func (o *FileOutput) Read(p []byte) (int, error) {
	return o.f.Read(p)
}

// Close closes the file.
func (o *FileOutput) Close() error {
	return o.f.Close()
}

// Fd returns the file descriptor.
func (o *FileOutput) Fd() uintptr {
	return o.f.Fd()
}

// NewOutput wraps w for shared use. Terminal files come back as a
// *FileOutput, anything else as an *Output.
func NewOutput(w io.Writer) io.Writer {
	out := &Output{w: w}
	if f, ok := w.(terminalFile); ok {
		return &FileOutput{Output: out, f: f}
	}
	return out
}
