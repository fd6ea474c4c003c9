package logutils

import (
	"bytes"
	"io"
	"sync"
)

// DeferredWriter passes writes through to an underlying writer, except while
// held: then output is buffered until Release. Used to keep log lines off the
// terminal while a full-screen program owns it.
type DeferredWriter struct {
	mu   sync.Mutex
	out  io.Writer
	buf  bytes.Buffer
	held bool
}

// NewDeferredWriter creates a DeferredWriter writing to out.
func NewDeferredWriter(out io.Writer) *DeferredWriter {
	return &DeferredWriter{out: out}
}

// Write forwards p, or buffers it while held.
func (d *DeferredWriter) Write(p []byte) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.held {
		return d.buf.Write(p)
	}
	return d.out.Write(p)
}

// Hold starts buffering writes.
func (d *DeferredWriter) Hold() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.held = true
}

// Release flushes buffered output and resumes pass-through writes.
func (d *DeferredWriter) Release() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.held = false
	if d.buf.Len() == 0 {
		return nil
	}
	_, err := d.buf.WriteTo(d.out)
	return err
}
