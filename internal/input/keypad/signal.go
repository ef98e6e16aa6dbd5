// Package keypad translates raw joystick button/axis events into a small
// fixed vocabulary of directional and action signals, tracks which signals
// are currently held per controller, and keeps a short history of recent
// presses for sequence detection.
package keypad

import (
	"fmt"
	"strings"
)

// Signal is one of the fixed keypad symbols. Signals are bit flags so a
// set of held signals can be stored as a single mask.
type Signal uint16

const (
	None   Signal = 0
	Left   Signal = 0x01
	Right  Signal = 0x02
	Up     Signal = 0x04
	Down   Signal = 0x08
	Select Signal = 0x10
	Start  Signal = 0x20
	B      Signal = 0x40
	A      Signal = 0x80
)

var signalNames = map[Signal]string{
	None:   "none",
	Left:   "left",
	Right:  "right",
	Up:     "up",
	Down:   "down",
	Select: "select",
	Start:  "start",
	B:      "b",
	A:      "a",
}

func (s Signal) String() string {
	if name, ok := signalNames[s]; ok {
		return name
	}
	return fmt.Sprintf("signal(0x%02x)", uint16(s))
}

// ParseSignal parses a single signal name. Names are case-insensitive.
func ParseSignal(name string) (Signal, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for sig, sname := range signalNames {
		if sname == n && sig != None {
			return sig, nil
		}
	}
	return None, fmt.Errorf("keypad: unknown signal %q", name)
}

// ParseSequence parses a comma-separated list of signal names into a
// sequence in chronological order.
func ParseSequence(s string) ([]Signal, error) {
	parts := strings.Split(s, ",")
	seq := make([]Signal, 0, len(parts))
	for _, p := range parts {
		sig, err := ParseSignal(p)
		if err != nil {
			return nil, err
		}
		seq = append(seq, sig)
	}
	return seq, nil
}
