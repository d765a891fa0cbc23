package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jzynonet/warner-music-guardian/pkg/client"
)

type songAction int

const (
	songAdd songAction = iota
	songImport
	songDelete
	songClear
	songBack
)

func (c console) songsView(ctx context.Context) error {
	for {
		var songs []client.Song
		err := runWithSpinner("Loading songs", func() error {
			var loadErr error
			songs, loadErr = c.api.Songs(ctx, 0)
			return loadErr
		})
		if err != nil {
			return err
		}

		for _, s := range songs {
			flag := " "
			if s.AutoFlag {
				flag = warnStyle.Render("⚑")
			}
			fmt.Printf("%s %s %s %s\n",
				flag, pad(s.SongName, 40), pad(s.ArtistName, 28), s.Priority)
		}

		action := songBack
		if err := huh.NewSelect[songAction]().
			Title(fmt.Sprintf("Songs (%d)", len(songs))).
			Options(
				huh.NewOption("Add song", songAdd),
				huh.NewOption("Import artist catalog from Spotify", songImport),
				huh.NewOption("Delete song", songDelete),
				huh.NewOption("Clear all songs", songClear),
				huh.NewOption("Back", songBack),
			).
			Value(&action).
			Run(); err != nil {
			return err
		}

		switch action {
		case songAdd:
			if err := c.addSong(ctx); err != nil {
				return err
			}
		case songImport:
			if err := c.importCatalog(ctx); err != nil {
				return err
			}
		case songDelete:
			if err := c.deleteSong(ctx, songs); err != nil {
				return err
			}
		case songClear:
			deleted, err := c.api.ClearSongs(ctx, 0, huhConfirmer())
			switch err {
			case nil:
				success("Deleted %d songs", deleted)
			case client.ErrCancelled:
				notice("Clear cancelled")
			default:
				return err
			}
		case songBack:
			return nil
		}
	}
}

func (c console) addSong(ctx context.Context) error {
	var song, artist string
	priority := client.PriorityMedium
	autoFlag := false
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Song name").
				Value(&song).
				Validate(required("Song name")),
			huh.NewInput().
				Title("Artist name").
				Value(&artist).
				Validate(required("Artist name")),
			prioritySelect("Priority", &priority),
			huh.NewConfirm().
				Title("Auto-flag matches?").
				Value(&autoFlag),
		),
	).Run()
	if err != nil {
		return err
	}

	err = c.api.CreateSong(ctx, client.SongRequest{
		SongName:   song,
		ArtistName: artist,
		Priority:   priority,
		AutoFlag:   autoFlag,
	})
	if err != nil {
		return err
	}
	success("Added %s by %s", song, artist)
	return nil
}

func (c console) deleteSong(ctx context.Context, songs []client.Song) error {
	if len(songs) == 0 {
		notice("No songs yet")
		return nil
	}
	options := make([]huh.Option[int64], 0, len(songs))
	for _, s := range songs {
		options = append(options, huh.NewOption(s.SongName+" - "+s.ArtistName, s.ID))
	}
	var id int64
	if err := huh.NewSelect[int64]().
		Title("Delete which song?").
		Options(options...).
		Value(&id).
		Run(); err != nil {
		return err
	}
	if err := c.api.DeleteSong(ctx, id); err != nil {
		return err
	}
	success("Song deleted")
	return nil
}

// importCatalog runs the preview/select/import flow against Spotify.
func (c console) importCatalog(ctx context.Context) error {
	var spotifyURL string
	if err := huh.NewInput().
		Title("Spotify artist URL").
		Placeholder("https://open.spotify.com/artist/…").
		Value(&spotifyURL).
		Validate(required("Spotify artist URL")).
		Run(); err != nil {
		return err
	}

	var preview *client.PreviewResponse
	err := runWithSpinner("Fetching catalog", func() error {
		var previewErr error
		preview, previewErr = c.api.PreviewSpotify(ctx, spotifyURL)
		return previewErr
	})
	if err != nil {
		return err
	}
	notice("%s: %d main songs, %d featured, %d albums",
		preview.ArtistInfo.Name, len(preview.MainSongs), len(preview.FeaturedSongs), preview.Albums)

	sel := client.NewSelection(preview)

	// Main songs start selected, featured deselected; the multiselect shows
	// the same defaults.
	options := make([]huh.Option[string], 0, len(preview.MainSongs)+len(preview.FeaturedSongs))
	chosen := make([]string, 0, len(preview.MainSongs))
	for _, s := range preview.MainSongs {
		options = append(options, huh.NewOption(s.Name, s.Name))
		chosen = append(chosen, s.Name)
	}
	for _, s := range preview.FeaturedSongs {
		options = append(options, huh.NewOption(s.Name+" (featured)", s.Name))
	}
	if err := huh.NewMultiSelect[string]().
		Title("Songs to import").
		Options(options...).
		Value(&chosen).
		Run(); err != nil {
		return err
	}

	sel.SetAll(preview.MainSongs, false)
	sel.SetAll(preview.FeaturedSongs, false)
	for _, name := range chosen {
		sel.Toggle(name)
	}

	priority := client.PriorityMedium
	autoFlag := false
	confirmed := false
	err = huh.NewForm(
		huh.NewGroup(
			prioritySelect("Priority for imported songs", &priority),
			huh.NewConfirm().
				Title("Auto-flag matches?").
				Value(&autoFlag),
			huh.NewConfirm().
				Title(fmt.Sprintf("Import %d songs for %s?", sel.Count(), preview.ArtistInfo.Name)).
				Value(&confirmed),
		),
	).Run()
	if err != nil {
		return err
	}
	if !confirmed {
		notice("Import cancelled")
		return nil
	}

	var resp *client.ImportResponse
	err = runWithSpinner("Importing", func() error {
		var importErr error
		resp, importErr = c.api.ImportSelection(ctx, sel, autoFlag, priority)
		return importErr
	})
	if err == client.ErrNothingSelected {
		notice("No songs selected, nothing imported")
		return nil
	}
	if err != nil {
		return err
	}
	success("Imported %d songs for %s (%d already tracked)",
		resp.SongsAdded, resp.ArtistName, resp.SongsSkipped)
	return nil
}
