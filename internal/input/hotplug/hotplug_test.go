package hotplug_test

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/glowgrid/joypad/internal/input/hotplug"

	"github.com/jochenvg/go-udev"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeMonitor struct {
	filtered   []string
	filterErr  error
	chanCalled bool
}

func (f *fakeMonitor) FilterAddMatchSubsystemDevtype(subsystem, devtype string) error {
	f.filtered = append(f.filtered, subsystem)
	return f.filterErr
}

func (f *fakeMonitor) DeviceChan(ctx context.Context) (<-chan *udev.Device, error) {
	f.chanCalled = true
	return make(chan *udev.Device), nil
}

func TestNewFiltersInputSubsystemBeforeReceiving(t *testing.T) {
	fake := &fakeMonitor{}
	restore := hotplug.SwapNetlinkMonitor(func(*udev.Udev) hotplug.NetlinkMonitor { return fake })
	defer restore()

	m := hotplug.New(slog.Default())
	defer m.Close()

	require.Equal(t, []string{"input"}, fake.filtered,
		"listener must be scoped to the input subsystem")
	assert.True(t, fake.chanCalled)
	assert.True(t, m.HasListener())
}

func TestNewDegradesWhenFilterFails(t *testing.T) {
	fake := &fakeMonitor{filterErr: errors.New("netlink gone")}
	restore := hotplug.SwapNetlinkMonitor(func(*udev.Udev) hotplug.NetlinkMonitor { return fake })
	defer restore()

	m := hotplug.New(slog.Default())
	defer m.Close()

	assert.False(t, fake.chanCalled, "receiving must not start on an unfiltered socket")
	assert.False(t, m.HasListener())
	assert.Empty(t, m.Pending())
}

func TestNewDegradesWithoutMonitor(t *testing.T) {
	restore := hotplug.SwapNetlinkMonitor(func(*udev.Udev) hotplug.NetlinkMonitor { return nil })
	defer restore()

	m := hotplug.New(slog.Default())
	defer m.Close()

	assert.False(t, m.HasListener())
	assert.Empty(t, m.Pending())
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name     string
		action   string
		devnode  string
		joystick string
		want     hotplug.Event
		wantOK   bool
	}{
		{
			name:     "tagged add with devnode",
			action:   "add",
			devnode:  "/dev/input/js0",
			joystick: "1",
			want:     hotplug.Event{Action: hotplug.ActionAdd, Devnode: "/dev/input/js0"},
			wantOK:   true,
		},
		{
			name:     "remove and change pass through",
			action:   "remove",
			devnode:  "/dev/input/js0",
			joystick: "1",
			want:     hotplug.Event{Action: hotplug.ActionRemove, Devnode: "/dev/input/js0"},
			wantOK:   true,
		},
		{
			name:     "untagged device dropped",
			action:   "add",
			devnode:  "/dev/sda1",
			joystick: "",
			wantOK:   false,
		},
		{
			name:     "unrecognized action dropped",
			action:   "bind",
			devnode:  "/dev/input/js0",
			joystick: "1",
			wantOK:   false,
		},
		{
			name:     "missing devnode dropped",
			action:   "add",
			devnode:  "",
			joystick: "1",
			wantOK:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, ok := hotplug.Classify(tt.action, tt.devnode, tt.joystick)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, ev)
			}
		})
	}
}
