package hal

import (
	"fmt"
	"io"
	"sync"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

// NewLogger returns a Logger writing to w.
func NewLogger(w io.Writer) Logger {
	if w == nil {
		w = io.Discard
	}
	return &lineLogger{w: w}
}

// Discard is a Logger that drops every line.
var Discard Logger = NewLogger(io.Discard)

type lineLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lineLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *lineLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}
