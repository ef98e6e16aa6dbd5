package log

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// RawLogger writes byte-level device traffic for debugging. Implementations
// must tolerate concurrent callers and nil-safe disposal of output.
type RawLogger interface {
	// Event records one raw event from the named source.
	Event(source string, data []byte)
}

// NewRaw returns a RawLogger writing hexdumps to w. A nil writer yields a
// no-op logger.
func NewRaw(w io.Writer) RawLogger {
	if w == nil {
		return nopRaw{}
	}
	return &rawLogger{w: w}
}

type nopRaw struct{}

func (nopRaw) Event(string, []byte) {}

type rawLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (r *rawLogger) Event(source string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, "%s %s % x\n", time.Now().Format("15:04:05.000000"), source, data)
}
