package input

import "errors"

// MaxControllers is the number of simultaneously open controllers the
// registry tracks.
const MaxControllers = 8

var (
	// ErrCapacity is returned when the registry already holds the
	// maximum number of open controllers.
	ErrCapacity = errors.New("input: controller capacity reached")

	// ErrNotJoystick is returned when strict validation rejects a
	// device node as not a real controller.
	ErrNotJoystick = errors.New("input: not a joystick device")
)

// freeSlot returns a closed slot for reuse, growing the table only when no
// closed slot exists and the capacity allows it.
func (s *Subsystem) freeSlot() (*Controller, error) {
	for _, c := range s.slots {
		if !c.open() {
			return c, nil
		}
	}
	if len(s.slots) < MaxControllers {
		c := &Controller{}
		s.slots = append(s.slots, c)
		return c, nil
	}
	return nil, ErrCapacity
}

// OpenCount returns the number of currently open controllers.
func (s *Subsystem) OpenCount() int {
	n := 0
	for _, c := range s.slots {
		if c.open() {
			n++
		}
	}
	return n
}

func (s *Subsystem) findByDevID(id uint64) *Controller {
	for _, c := range s.slots {
		if c.open() && c.devID == id {
			return c
		}
	}
	return nil
}

func (s *Subsystem) findByPath(path string) *Controller {
	for _, c := range s.slots {
		if c.open() && c.path == path {
			return c
		}
	}
	return nil
}

// nextPlayer returns the smallest positive player number not held by any
// open controller.
func (s *Subsystem) nextPlayer() int {
	for player := 1; ; player++ {
		taken := false
		for _, c := range s.slots {
			if c.open() && c.player == player {
				taken = true
				break
			}
		}
		if !taken {
			return player
		}
	}
}
