package keypad_test

import (
	"testing"

	"github.com/glowgrid/joypad/internal/input/keypad"

	"github.com/stretchr/testify/assert"
)

func TestHistoryPushOrder(t *testing.T) {
	var h keypad.History
	h.Push(keypad.Up)
	h.Push(keypad.Down)
	h.Push(keypad.A)

	assert.Equal(t, keypad.A, h.At(0), "newest press is at position 0")
	assert.Equal(t, keypad.Down, h.At(1))
	assert.Equal(t, keypad.Up, h.At(2))
	for i := 3; i < keypad.HistorySize; i++ {
		assert.Equal(t, keypad.None, h.At(i))
	}
}

func TestHistoryDropsOldest(t *testing.T) {
	var h keypad.History
	for i := 0; i < keypad.HistorySize; i++ {
		h.Push(keypad.B)
	}
	h.Push(keypad.A)

	assert.Equal(t, keypad.A, h.At(0))
	for i := 1; i < keypad.HistorySize; i++ {
		assert.Equal(t, keypad.B, h.At(i))
	}
}

func TestHistoryAtOutOfRange(t *testing.T) {
	var h keypad.History
	h.Push(keypad.A)
	assert.Equal(t, keypad.None, h.At(-1))
	assert.Equal(t, keypad.None, h.At(keypad.HistorySize))
}

func TestHistoryReset(t *testing.T) {
	var h keypad.History
	h.Push(keypad.Start)
	h.Reset()
	assert.Equal(t, keypad.None, h.At(0))
}

func TestMatchesChronological(t *testing.T) {
	// Presses arrive oldest first: B, then A, then Start. History is
	// newest-first: [start, a, b].
	var h keypad.History
	h.Push(keypad.B)
	h.Push(keypad.A)
	h.Push(keypad.Start)

	tests := []struct {
		name string
		seq  []keypad.Signal
		want bool
	}{
		{
			name: "chronological order matches",
			seq:  []keypad.Signal{keypad.B, keypad.A, keypad.Start},
			want: true,
		},
		{
			name: "newest-first order does not match",
			seq:  []keypad.Signal{keypad.Start, keypad.A, keypad.B},
			want: false,
		},
		{
			name: "suffix ending at newest matches",
			seq:  []keypad.Signal{keypad.A, keypad.Start},
			want: true,
		},
		{
			name: "single newest press matches",
			seq:  []keypad.Signal{keypad.Start},
			want: true,
		},
		{
			name: "single older press does not match",
			seq:  []keypad.Signal{keypad.A},
			want: false,
		},
		{
			name: "empty sequence matches trivially",
			seq:  nil,
			want: true,
		},
		{
			name: "longer than history never matches",
			seq:  make([]keypad.Signal, keypad.HistorySize+1),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Matches(tt.seq))
		})
	}
}

func TestMatchesFullCapacity(t *testing.T) {
	var h keypad.History
	seq := make([]keypad.Signal, keypad.HistorySize)
	for i := range seq {
		sig := keypad.Left
		if i%2 == 1 {
			sig = keypad.Right
		}
		seq[i] = sig
		h.Push(sig)
	}
	assert.True(t, h.Matches(seq))

	seq[0] = keypad.Up
	assert.False(t, h.Matches(seq))
}
