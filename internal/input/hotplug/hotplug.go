// Package hotplug bridges the udev device-notification service: a one-shot
// enumeration of joystick devices present at startup, plus a netlink
// monitor whose pending events can be drained without blocking.
package hotplug

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jochenvg/go-udev"
)

// Device actions reported by udev.
const (
	ActionAdd    = "add"
	ActionRemove = "remove"
	ActionChange = "change"
)

// Property marking a device as a game controller.
const joystickProperty = "ID_INPUT_JOYSTICK"

// Subsystem the monitor and the enumeration are scoped to.
const inputSubsystem = "input"

// Event is one device notification.
type Event struct {
	Action  string
	Devnode string
}

// Monitor owns the udev context and the live netlink listener. When the
// listener cannot be created the monitor degrades to enumeration only and
// Pending always returns nothing.
type Monitor struct {
	u      *udev.Udev
	cancel context.CancelFunc
	events <-chan *udev.Device
	logger *slog.Logger
}

// netlinkMonitor is the slice of *udev.Monitor that New consumes; a seam
// for tests.
type netlinkMonitor interface {
	FilterAddMatchSubsystemDevtype(subsystem, devtype string) error
	DeviceChan(ctx context.Context) (<-chan *udev.Device, error)
}

var newNetlinkMonitor = func(u *udev.Udev) netlinkMonitor {
	if m := u.NewMonitorFromNetlink("udev"); m != nil {
		return m
	}
	return nil
}

// New creates the udev context and subscribes to input-subsystem events.
// Listener setup failure is not fatal: it is logged and hot-plug is
// disabled, leaving startup enumeration as the only discovery path.
func New(logger *slog.Logger) *Monitor {
	m := &Monitor{u: &udev.Udev{}, logger: logger}

	mon := newNetlinkMonitor(m.u)
	if mon == nil {
		logger.Warn("udev monitor unavailable, hotplug disabled")
		return m
	}

	// Scope the netlink socket to input events before receiving starts;
	// without the kernel-side filter every uevent system-wide wakes us.
	if err := mon.FilterAddMatchSubsystemDevtype(inputSubsystem, ""); err != nil {
		logger.Warn("udev monitor unavailable, hotplug disabled", "error", err)
		return m
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch, err := mon.DeviceChan(ctx)
	if err != nil {
		cancel()
		logger.Warn("udev monitor unavailable, hotplug disabled", "error", err)
		return m
	}

	m.cancel = cancel
	m.events = ch
	return m
}

// Enumerate lists the device nodes of all currently present devices tagged
// as game controllers. Failure here means device discovery cannot work at
// all and is treated as fatal by the caller.
func (m *Monitor) Enumerate() ([]Event, error) {
	if m.u == nil {
		return nil, errors.New("hotplug: monitor is closed")
	}
	e := m.u.NewEnumerate()
	if e == nil {
		return nil, errors.New("hotplug: enumerate context unavailable")
	}
	if err := e.AddMatchSubsystem(inputSubsystem); err != nil {
		return nil, fmt.Errorf("hotplug: subsystem match: %w", err)
	}
	if err := e.AddMatchProperty(joystickProperty, "1"); err != nil {
		return nil, fmt.Errorf("hotplug: property match: %w", err)
	}

	devices, err := e.Devices()
	if err != nil {
		return nil, fmt.Errorf("hotplug: enumerate devices: %w", err)
	}

	var out []Event
	for _, d := range devices {
		if node := d.Devnode(); node != "" {
			out = append(out, Event{Action: ActionAdd, Devnode: node})
		}
	}
	return out, nil
}

// Pending drains and returns all immediately available notifications.
// It never blocks: as soon as the listener has nothing queued it returns.
// Events without a device node, without a recognized action, or for
// devices not tagged as game controllers are dropped.
func (m *Monitor) Pending() []Event {
	var out []Event
	for m.events != nil {
		select {
		case d, ok := <-m.events:
			if !ok {
				m.events = nil
				return out
			}
			if ev, ok := translate(d); ok {
				out = append(out, ev)
			}
		default:
			return out
		}
	}
	return out
}

// Close stops the listener and releases the udev context. Idempotent.
func (m *Monitor) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.events = nil
	m.u = nil
}

func translate(d *udev.Device) (Event, bool) {
	if d == nil {
		return Event{}, false
	}
	return classify(d.Action(), d.Devnode(), d.PropertyValue(joystickProperty))
}

// classify applies the drop rules to one notification: devices not tagged
// as game controllers, events without a device node, and unrecognized
// actions are all ignored without error.
func classify(action, devnode, joystick string) (Event, bool) {
	if joystick != "1" {
		return Event{}, false
	}
	switch action {
	case ActionAdd, ActionRemove, ActionChange:
	default:
		return Event{}, false
	}
	if devnode == "" {
		return Event{}, false
	}
	return Event{Action: action, Devnode: devnode}, true
}
