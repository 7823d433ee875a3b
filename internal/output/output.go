// Package output provides the informational and error writers a command
// writes to while it runs.
package output

import (
	"bytes"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// Output yields the two sinks of a run. The runner asks for them once per run.
type Output interface {
	InfoWriter() io.Writer
	ErrorWriter() io.Writer
}

type null struct{}

func (null) InfoWriter() io.Writer  { return io.Discard }
func (null) ErrorWriter() io.Writer { return io.Discard }

// Null returns an Output that drops everything. The runner still records what
// was written in its result, so nothing is lost for callers that inspect it.
func Null() Output {
	return null{}
}

type writers struct {
	info, err io.Writer
}

func (w writers) InfoWriter() io.Writer  { return w.info }
func (w writers) ErrorWriter() io.Writer { return w.err }

// Writers returns an Output that always hands out the given writers.
func Writers(info, err io.Writer) Output {
	return writers{info: info, err: err}
}

// Console writes informational output to stdout and error output to stderr,
// coloring the latter red. Coloring follows color.NoColor, and is turned off
// when stderr is a file that is not a terminal.
func Console(stdout, stderr io.Writer) Output {
	c := color.New(color.FgRed)
	if f, ok := stderr.(*os.File); ok && !isTerminal(f) {
		c.DisableColor()
	}
	return writers{
		info: stdout,
		err:  &colorWriter{c: c, w: stderr},
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type colorWriter struct {
	c *color.Color
	w io.Writer
}

func (cw *colorWriter) Write(p []byte) (int, error) {
	if _, err := cw.c.Fprint(cw.w, string(p)); err != nil {
		return 0, err
	}
	return len(p), nil
}

// SafeBuffer is a bytes.Buffer guarded by a mutex.
type SafeBuffer struct {
	b  bytes.Buffer
	mu sync.Mutex
}

// Write implements the io.Writer interface for SafeBuffer.
func (b *SafeBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.Write(p)
}

// String implements the fmt.Stringer interface for SafeBuffer.
func (b *SafeBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.b.String()
}

// Buffer accumulates the output of every run it serves.
type Buffer struct {
	Info  SafeBuffer
	Error SafeBuffer
}

// NewBuffer returns an empty Buffer.
func NewBuffer() *Buffer {
	return &Buffer{}
}

// InfoWriter implements Output.
func (b *Buffer) InfoWriter() io.Writer { return &b.Info }

// ErrorWriter implements Output.
func (b *Buffer) ErrorWriter() io.Writer { return &b.Error }
