package input

import (
	"github.com/glowgrid/joypad/internal/input/joydev"
	"github.com/glowgrid/joypad/internal/input/keypad"
)

// device is the handle a controller record owns. *joydev.Joystick
// satisfies it; tests substitute fakes.
type device interface {
	Version() (uint32, error)
	Axes() (int, error)
	Buttons() (int, error)
	Name() (string, error)
	ReadEvent() (joydev.Event, bool, error)
	Close() error
}

// Controller is one open controller slot. A nil device handle marks the
// slot as closed and eligible for reuse.
type Controller struct {
	dev     device
	path    string
	devID   uint64
	axes    int
	buttons int
	name    string
	player  int

	state   keypad.State
	history keypad.History
}

func (c *Controller) open() bool { return c != nil && c.dev != nil }

// Player returns the assigned player number, starting at 1. Unique among
// open controllers; not stable across disconnect/reconnect.
func (c *Controller) Player() int { return c.player }

// Path returns the device node the controller was opened from.
func (c *Controller) Path() string { return c.path }

// Name returns the device display name, possibly empty.
func (c *Controller) Name() string { return c.name }

// Axes returns the reported axis count, possibly zero.
func (c *Controller) Axes() int { return c.axes }

// Buttons returns the reported button count, possibly zero.
func (c *Controller) Buttons() int { return c.buttons }

// State returns a copy of the live translated state: held signals plus
// the most recently emitted signal and its press flag.
func (c *Controller) State() keypad.State { return c.state }

// Matches reports whether the controller's most recent presses equal seq
// in chronological order ending at the newest press.
func (c *Controller) Matches(seq []keypad.Signal) bool {
	if c == nil {
		return false
	}
	return c.history.Matches(seq)
}

// translate applies one raw event to the controller's live state and, for
// presses, records the signal in the history.
func (c *Controller) translate(ev joydev.Event) {
	switch ev.Kind() {
	case joydev.EventButton:
		c.state.Button(ev.Number, ev.Value)
	case joydev.EventAxis:
		c.state.Axis(ev.Number, ev.Value)
	default:
		c.state.ClearLast()
	}

	if c.state.Pressed && c.state.Last != keypad.None {
		c.history.Push(c.state.Last)
	}
}
