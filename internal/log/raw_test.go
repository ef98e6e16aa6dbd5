package log_test

import (
	"bytes"
	"testing"

	"github.com/glowgrid/joypad/internal/log"

	"github.com/stretchr/testify/assert"
)

func TestNewRawNilWriterIsNoop(t *testing.T) {
	r := log.NewRaw(nil)
	assert.NotPanics(t, func() {
		r.Event("/dev/input/js0", []byte{0x01, 0x02})
	})
}

func TestRawLoggerWritesHexdump(t *testing.T) {
	var buf bytes.Buffer
	r := log.NewRaw(&buf)
	r.Event("/dev/input/js0", []byte{0xde, 0xad})

	out := buf.String()
	assert.Contains(t, out, "/dev/input/js0")
	assert.Contains(t, out, "de ad")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, log.LevelTrace, log.ParseLevel("trace"))
	assert.Equal(t, log.ParseLevel(""), log.ParseLevel("info"))
	assert.Equal(t, log.ParseLevel("info"), log.ParseLevel("bogus"))
}
