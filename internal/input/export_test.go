package input

type Device = device

type Notifier = notifier

// SetSeams swaps the notifier and the device opener/identifier for fakes.
func (s *Subsystem) SetSeams(mon Notifier, openDev func(string) (Device, error), devID func(string) (uint64, error)) {
	s.mon = mon
	s.openDev = openDev
	s.devID = devID
}

func (s *Subsystem) FindByPath(path string) *Controller { return s.findByPath(path) }

func (s *Subsystem) SlotCount() int { return len(s.slots) }
