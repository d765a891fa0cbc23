package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jzynonet/warner-music-guardian/pkg/client"
)

type autoUpdateAction int

const (
	auEnable autoUpdateAction = iota
	auDisable
	auRunOne
	auRunAll
	auBack
)

func (c console) autoUpdateView(ctx context.Context) error {
	for {
		var status *client.AutoUpdateStatus
		err := runWithSpinner("Loading auto-update status", func() error {
			var loadErr error
			status, loadErr = c.api.AutoUpdateStatus(ctx)
			return loadErr
		})
		if err != nil {
			return err
		}

		notice("%d artists: %d enabled, %d disabled, %d due for update",
			status.TotalArtists, status.Enabled, status.Disabled, status.NeedsUpdate)
		for _, cfg := range status.Artists {
			state := successStyle.Render(onOff(cfg.Enabled))
			if !cfg.Enabled {
				state = warnStyle.Render(onOff(cfg.Enabled))
			}
			due := ""
			if cfg.NeedsUpdate {
				due = warnStyle.Render("due")
			}
			fmt.Printf("%s %s %s/%s %d songs %s\n",
				pad(cfg.ArtistName, 32), state, cfg.Frequency, cfg.Source, cfg.SongsCount, due)
		}

		action := auBack
		if err := huh.NewSelect[autoUpdateAction]().
			Title("Auto-update").
			Options(
				huh.NewOption("Enable for an artist", auEnable),
				huh.NewOption("Disable for an artist", auDisable),
				huh.NewOption("Run now for an artist", auRunOne),
				huh.NewOption("Run all due updates", auRunAll),
				huh.NewOption("Back", auBack),
			).
			Value(&action).
			Run(); err != nil {
			return err
		}

		switch action {
		case auEnable:
			if err := c.enableAutoUpdate(ctx); err != nil {
				return err
			}
		case auDisable:
			id, err := c.pickConfiguredArtist("Disable auto-update for?", status.Artists)
			if err != nil || id == 0 {
				if err != nil {
					return err
				}
				continue
			}
			if err := c.api.DisableAutoUpdate(ctx, id); err != nil {
				return err
			}
			success("Auto-update disabled")
		case auRunOne:
			id, err := c.pickConfiguredArtist("Refresh catalog for?", status.Artists)
			if err != nil || id == 0 {
				if err != nil {
					return err
				}
				continue
			}
			var result *client.AutoUpdateResult
			err = runWithSpinner("Refreshing catalog", func() error {
				var runErr error
				result, runErr = c.api.RunAutoUpdate(ctx, id)
				return runErr
			})
			if err != nil {
				return err
			}
			success("%s via %s: %d new songs, %d total",
				result.Artist, result.Source, result.NewSongs, result.TotalSongs)
		case auRunAll:
			var resp *client.AutoUpdateRunAllResponse
			err := runWithSpinner("Running all due updates", func() error {
				var runErr error
				resp, runErr = c.api.RunAllAutoUpdates(ctx)
				return runErr
			})
			if err != nil {
				return err
			}
			success("Updated %d artists, %d new songs", resp.TotalArtistsUpdated, resp.TotalNewSongs)
			for _, u := range resp.Updates {
				line := fmt.Sprintf("  %s: %d new", u.Artist, u.NewSongs)
				if u.Error != "" {
					line = "  " + u.Artist + ": " + u.Error
					fmt.Println(errorStyle.Render(line))
					continue
				}
				fmt.Println(line)
			}
		case auBack:
			return nil
		}
	}
}

func (c console) enableAutoUpdate(ctx context.Context) error {
	var artists []client.Artist
	err := runWithSpinner("Loading artists", func() error {
		var loadErr error
		artists, loadErr = c.api.Artists(ctx)
		return loadErr
	})
	if err != nil {
		return err
	}

	id, err := pickArtist("Enable auto-update for?", artists)
	if err != nil || id == 0 {
		return err
	}

	frequency := "weekly"
	source := "spotify"
	if !c.api.Capabilities().SpotifyConfigured {
		source = "musicbrainz"
	}
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Check frequency").
				Options(
					huh.NewOption("Daily", "daily"),
					huh.NewOption("Weekly", "weekly"),
					huh.NewOption("Monthly", "monthly"),
				).
				Value(&frequency),
			huh.NewSelect[string]().
				Title("Catalog source").
				Options(
					huh.NewOption("Spotify", "spotify"),
					huh.NewOption("MusicBrainz", "musicbrainz"),
				).
				Value(&source),
		),
	).Run()
	if err != nil {
		return err
	}

	if err := c.api.EnableAutoUpdate(ctx, id, frequency, source); err != nil {
		return err
	}
	success("Auto-update enabled (%s via %s)", frequency, source)
	return nil
}

func (c console) pickConfiguredArtist(title string, configs []client.AutoUpdateConfig) (int64, error) {
	if len(configs) == 0 {
		notice("No auto-update configs yet")
		return 0, nil
	}
	options := make([]huh.Option[int64], 0, len(configs))
	for _, cfg := range configs {
		options = append(options, huh.NewOption(cfg.ArtistName, cfg.ArtistID))
	}
	var id int64
	err := huh.NewSelect[int64]().
		Title(title).
		Options(options...).
		Value(&id).
		Run()
	return id, err
}
