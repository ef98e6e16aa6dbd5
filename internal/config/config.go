// Package config defines the CLI structure and configuration for joypad.
package config

import (
	"github.com/glowgrid/joypad/internal/cmd"
)

type Log struct {
	Level   string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"JOYPAD_LOG_LEVEL"`
	File    string `help:"Log file path (default: none; logs only to console)" env:"JOYPAD_LOG_FILE"`
	RawFile string `help:"Raw joystick event log file path (default: none)" env:"JOYPAD_LOG_RAW_FILE"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log `embed:"" prefix:"log."`

	Watch cmd.Watch `cmd:"" help:"Poll controllers and report translated keypad signals"`
	List  cmd.List  `cmd:"" help:"List game controllers currently present"`
}
