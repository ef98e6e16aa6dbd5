// Package input manages physical game-controller input: a bounded registry
// of open controllers with stable player numbers, udev-driven hot-plug,
// and per-tick translation of raw joystick events into keypad signals with
// a rolling press history per controller.
//
// The subsystem is single-threaded and poll-driven: the caller's loop
// invokes ReadNext once per tick and nothing ever blocks.
package input

import (
	"fmt"
	"log/slog"

	"github.com/glowgrid/joypad/internal/input/hotplug"
	"github.com/glowgrid/joypad/internal/input/joydev"
	"github.com/glowgrid/joypad/internal/log"
)

// notifier is the slice of the hotplug monitor the subsystem consumes.
// *hotplug.Monitor satisfies it; tests substitute fakes.
type notifier interface {
	Enumerate() ([]hotplug.Event, error)
	Pending() []hotplug.Event
	Close()
}

// Subsystem owns the controller registry and the hotplug monitor. Not safe
// for concurrent use: all methods must be called from the same loop.
type Subsystem struct {
	logger *slog.Logger
	raw    log.RawLogger

	slots []*Controller
	mon   notifier

	// seams for tests
	openDev func(path string) (device, error)
	devID   func(path string) (uint64, error)
}

// New creates an uninitialized subsystem. Call Init before use.
func New(logger *slog.Logger, raw log.RawLogger) *Subsystem {
	return &Subsystem{
		logger:  logger,
		raw:     raw,
		openDev: func(path string) (device, error) { return joydev.Open(path) },
		devID:   joydev.DevID,
	}
}

// Init connects to the device-notification service and opens every
// controller already present. An error here means device discovery cannot
// work at all; callers treat it as fatal.
func (s *Subsystem) Init() error {
	if s.mon == nil {
		s.mon = hotplug.New(s.logger)
	}
	events, err := s.mon.Enumerate()
	if err != nil {
		return err
	}
	for _, ev := range events {
		s.addDevice(ev.Devnode)
	}
	return nil
}

// OpenExplicit opens a user-specified device node without strict
// validation. Any failure is returned to the caller, which treats it as
// fatal: a device the user named must not be silently skipped.
func (s *Subsystem) OpenExplicit(path string) error {
	s.logger.Info("opening configured controller", "path", path)
	id, err := s.devID(path)
	if err != nil {
		return err
	}
	if err := s.open(path, id, false); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	return nil
}

// ReadNext performs one tick: pending hotplug notifications are applied,
// then the open controllers are scanned for the first one with an event
// immediately available. That event is translated and the controller
// returned. The second result is false when no controller had data, the
// common case.
func (s *Subsystem) ReadNext() (*Controller, bool) {
	s.pollHotplug()

	for _, c := range s.slots {
		if !c.open() {
			continue
		}
		ev, ok, err := c.dev.ReadEvent()
		if err != nil {
			// Read errors alone never close a slot; removal is
			// signaled through the notification service.
			s.logger.Debug("controller read failed", "path", c.path, "error", err)
			continue
		}
		if !ok {
			continue
		}
		s.raw.Event(c.path, ev.Encode())
		c.translate(ev)
		return c, true
	}
	return nil, false
}

// Reset closes every open controller and releases the notification
// listener, leaving the subsystem empty. Idempotent, and safe as a prelude
// to re-initialization.
func (s *Subsystem) Reset() {
	for _, c := range s.slots {
		if c.open() {
			if err := c.dev.Close(); err != nil {
				s.logger.Debug("controller close failed", "path", c.path, "error", err)
			}
			c.dev = nil
		}
	}
	s.slots = nil
	if s.mon != nil {
		s.mon.Close()
		s.mon = nil
	}
}

// pollHotplug drains all immediately pending notifications and applies
// them to the registry.
func (s *Subsystem) pollHotplug() {
	if s.mon == nil {
		return
	}
	for _, ev := range s.mon.Pending() {
		switch ev.Action {
		case hotplug.ActionAdd:
			s.addDevice(ev.Devnode)
		case hotplug.ActionRemove:
			s.removeDevice(ev.Devnode)
		case hotplug.ActionChange:
			// Re-enumeration without a physical replug.
			s.removeDevice(ev.Devnode)
			s.addDevice(ev.Devnode)
		}
	}
}

// addDevice opens an auto-discovered device node with strict validation,
// guarding against double-opening the same physical unit. All failures are
// recoverable: the device is skipped and logged.
func (s *Subsystem) addDevice(path string) {
	id, err := s.devID(path)
	if err != nil {
		s.logger.Warn("cannot stat device", "path", path, "error", err)
		return
	}
	if c := s.findByDevID(id); c != nil {
		s.logger.Debug("device already open", "path", path, "player", c.player)
		return
	}
	if err := s.open(path, id, true); err != nil {
		s.logger.Warn("skipping device", "path", path, "error", err)
	}
}

// removeDevice closes any open controller matching the device node path.
func (s *Subsystem) removeDevice(path string) {
	for _, c := range s.slots {
		if !c.open() || c.path != path {
			continue
		}
		if err := c.dev.Close(); err != nil {
			s.logger.Debug("controller close failed", "path", c.path, "error", err)
		}
		c.dev = nil
		s.logger.Info("controller removed", "path", path, "player", c.player)
	}
}

// open validates a device node, queries its capabilities and fills a
// registry slot. With strict set, a failed or zero protocol version
// rejects the node as not a real controller; without it (explicitly
// configured devices) the version query is best-effort like the other
// capability queries.
func (s *Subsystem) open(path string, devID uint64, strict bool) error {
	dev, err := s.openDev(path)
	if err != nil {
		return err
	}

	version, err := dev.Version()
	if strict {
		if err != nil || version == 0 {
			_ = dev.Close()
			return ErrNotJoystick
		}
	} else if err != nil {
		version = 0
	}

	// Capability queries are best-effort: absent info defaults to
	// zero/empty, never fails the open.
	axes, err := dev.Axes()
	if err != nil {
		axes = 0
	}
	buttons, err := dev.Buttons()
	if err != nil {
		buttons = 0
	}
	name, err := dev.Name()
	if err != nil {
		name = ""
	}

	c, err := s.freeSlot()
	if err != nil {
		_ = dev.Close()
		return err
	}

	player := s.nextPlayer()
	*c = Controller{
		dev:     dev,
		path:    path,
		devID:   devID,
		axes:    axes,
		buttons: buttons,
		name:    name,
		player:  player,
	}

	s.logger.Info("controller opened",
		"path", path,
		"player", player,
		"axes", axes,
		"buttons", buttons,
		"name", name,
		"version", version,
	)
	return nil
}
