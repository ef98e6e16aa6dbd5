// Package cmd implements the joypad CLI commands.
package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glowgrid/joypad/internal/input"
	"github.com/glowgrid/joypad/internal/input/keypad"
	"github.com/glowgrid/joypad/internal/log"
)

type Watch struct {
	Device   string        `help:"Explicit joystick device node to open at startup" env:"JOYPAD_DEVICE"`
	Interval time.Duration `help:"Polling interval" default:"16ms" env:"JOYPAD_INTERVAL"`
	Sequence string        `help:"Comma-separated signal sequence to detect" default:"up,up,down,down,left,right,left,right,b,a" env:"JOYPAD_SEQUENCE"`
}

// Run is called by Kong when the watch command is executed.
func (w *Watch) Run(logger *slog.Logger, rawLogger log.RawLogger) error {
	seq, err := keypad.ParseSequence(w.Sequence)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sub := input.New(logger, rawLogger)
	if err := sub.Init(); err != nil {
		return err
	}
	defer sub.Reset()

	if w.Device != "" {
		if err := sub.OpenExplicit(w.Device); err != nil {
			return err
		}
	}

	logger.Info("watching for input",
		"controllers", sub.OpenCount(),
		"sequence", w.Sequence,
		"interval", w.Interval,
	)

	ticker := time.NewTicker(w.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		case <-ticker.C:
			w.tick(sub, seq, logger)
		}
	}
}

// tick consumes every event already pending so slow polling intervals
// cannot back up the device queues.
func (w *Watch) tick(sub *input.Subsystem, seq []keypad.Signal, logger *slog.Logger) {
	for {
		c, ok := sub.ReadNext()
		if !ok {
			return
		}
		st := c.State()
		if st.Last != keypad.None {
			logger.Debug("signal",
				"player", c.Player(),
				"signal", st.Last.String(),
				"pressed", st.Pressed,
			)
		}
		if st.Pressed && c.Matches(seq) {
			logger.Info("sequence matched", "player", c.Player(), "name", c.Name())
		}
	}
}
