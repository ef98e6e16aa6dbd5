package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/glowgrid/joypad/internal/input/hotplug"
	"github.com/glowgrid/joypad/internal/input/joydev"

	"gopkg.in/yaml.v3"
)

type List struct {
	Output string `help:"Output format" default:"text" enum:"text,yaml" env:"JOYPAD_LIST_OUTPUT"`
}

type listEntry struct {
	Path    string `yaml:"path"`
	Name    string `yaml:"name"`
	Axes    int    `yaml:"axes"`
	Buttons int    `yaml:"buttons"`
}

// Run is called by Kong when the list command is executed.
func (l *List) Run(logger *slog.Logger) error {
	mon := hotplug.New(logger)
	defer mon.Close()

	events, err := mon.Enumerate()
	if err != nil {
		return err
	}

	entries := make([]listEntry, 0, len(events))
	for _, ev := range events {
		e, ok := probe(ev.Devnode, logger)
		if ok {
			entries = append(entries, e)
		}
	}

	if l.Output == "yaml" {
		b, err := yaml.Marshal(entries)
		if err != nil {
			return err
		}
		_, err = os.Stdout.Write(b)
		return err
	}

	if len(entries) == 0 {
		fmt.Println("no game controllers found")
		return nil
	}
	for _, e := range entries {
		fmt.Printf("%s\t%s (axes: %d, buttons: %d)\n", e.Path, e.Name, e.Axes, e.Buttons)
	}
	return nil
}

// probe opens a device node just long enough to read its capabilities.
// Nodes that are not joystick-interface devices are skipped.
func probe(path string, logger *slog.Logger) (listEntry, bool) {
	j, err := joydev.Open(path)
	if err != nil {
		logger.Debug("skipping device", "path", path, "error", err)
		return listEntry{}, false
	}
	defer func() { _ = j.Close() }()

	if v, err := j.Version(); err != nil || v == 0 {
		return listEntry{}, false
	}

	e := listEntry{Path: path}
	e.Name, _ = j.Name()
	e.Axes, _ = j.Axes()
	e.Buttons, _ = j.Buttons()
	return e, true
}
