package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jzynonet/warner-music-guardian/pkg/client"
)

func (c console) scheduleView(ctx context.Context) error {
	var cfg *client.ScheduleConfig
	err := runWithSpinner("Loading schedule", func() error {
		var loadErr error
		cfg, loadErr = c.api.GetSchedule(ctx)
		return loadErr
	})
	if err != nil {
		return err
	}

	if cfg.Enabled {
		notice("Automatic search is ON, every %d hours", cfg.IntervalHours)
	} else {
		notice("Automatic search is OFF")
	}

	enabled := cfg.Enabled
	interval := strconv.Itoa(cfg.IntervalHours)
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Run searches automatically?").
				Value(&enabled),
			huh.NewInput().
				Title("Interval in hours (1-168)").
				Value(&interval).
				Validate(func(s string) error {
					n, err := strconv.Atoi(strings.TrimSpace(s))
					if err != nil || n < 1 || n > 168 {
						return fmt.Errorf("must be between 1 and 168")
					}
					return nil
				}),
		),
	).Run()
	if err != nil {
		return err
	}

	hours, _ := strconv.Atoi(strings.TrimSpace(interval))
	updated, err := c.api.SetSchedule(ctx, enabled, hours)
	if err != nil {
		return err
	}
	if updated.Enabled {
		success("Schedule saved: every %d hours", updated.IntervalHours)
	} else {
		success("Schedule saved: automatic search disabled")
	}
	return nil
}
