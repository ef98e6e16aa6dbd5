package keypad

// AxisThreshold is the raw axis magnitude at which a reading counts as a
// directional press. Readings strictly inside (-AxisThreshold,
// +AxisThreshold) are the deadzone and release the axis directions.
const AxisThreshold = 1024

// Button indices with a keypad meaning. All other indices produce no
// signal.
const (
	buttonB      = 0
	buttonA      = 1
	buttonSelect = 8
	buttonStart  = 9
)

// State is the live translated state of one controller: the set of
// currently held signals plus the most recently emitted signal and whether
// it was a press (true) or a release/no-signal (false).
type State struct {
	Held    Signal
	Last    Signal
	Pressed bool
}

// Button applies a raw button event. A nonzero value is a press, zero a
// release. Unrecognized button indices emit no signal and leave the held
// mask untouched.
func (s *State) Button(number uint8, value int16) {
	var sig Signal
	switch number {
	case buttonSelect:
		sig = Select
	case buttonStart:
		sig = Start
	case buttonB:
		sig = B
	case buttonA:
		sig = A
	default:
		s.ClearLast()
		return
	}

	s.Last = sig
	s.Pressed = value != 0
	if s.Pressed {
		s.Held |= sig
	} else {
		s.Held &^= sig
	}
}

// Axis applies a raw axis event. Axis 0 governs left/right, axis 1
// up/down. A reading at or beyond a threshold presses that direction and
// clears the opposing one; a deadzone reading releases whichever direction
// of the axis was held, if any.
func (s *State) Axis(number uint8, value int16) {
	var neg, pos Signal
	switch number {
	case 0:
		neg, pos = Left, Right
	case 1:
		neg, pos = Up, Down
	default:
		s.ClearLast()
		return
	}

	switch {
	case value <= -AxisThreshold:
		s.Last = neg
		s.Pressed = true
		s.Held |= neg
		s.Held &^= pos
	case value >= AxisThreshold:
		s.Last = pos
		s.Pressed = true
		s.Held |= pos
		s.Held &^= neg
	default:
		switch {
		case s.Held&neg != 0:
			s.Last = neg
		case s.Held&pos != 0:
			s.Last = pos
		default:
			s.Last = None
		}
		s.Pressed = false
		s.Held &^= neg | pos
	}
}

// ClearLast resets the transient last-signal to none without touching the
// held mask. Used for raw events that carry no keypad meaning.
func (s *State) ClearLast() {
	s.Last = None
	s.Pressed = false
}
