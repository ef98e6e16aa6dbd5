package hotplug

import "github.com/jochenvg/go-udev"

var Classify = classify

type NetlinkMonitor = netlinkMonitor

// SwapNetlinkMonitor replaces the monitor constructor and returns a
// restore function.
func SwapNetlinkMonitor(f func(u *udev.Udev) NetlinkMonitor) func() {
	old := newNetlinkMonitor
	newNetlinkMonitor = f
	return func() { newNetlinkMonitor = old }
}

// HasListener reports whether the live listener is receiving.
func (m *Monitor) HasListener() bool { return m.events != nil }
