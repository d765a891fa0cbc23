package main

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jzynonet/warner-music-guardian/pkg/client"
)

type artistAction int

const (
	artistAdd artistAction = iota
	artistEdit
	artistDelete
	artistBack
)

func (c console) artistsView(ctx context.Context) error {
	for {
		var artists []client.Artist
		err := runWithSpinner("Loading artists", func() error {
			var loadErr error
			artists, loadErr = c.api.Artists(ctx)
			return loadErr
		})
		if err != nil {
			return err
		}

		for _, a := range artists {
			state := successStyle.Render("active")
			if !a.Active {
				state = warnStyle.Render("inactive")
			}
			fmt.Printf("%s %s  %s  %s\n",
				pad(a.Name, 32), state,
				pad(strOr(a.Email, "-"), 28), strOr(a.ContactPerson, ""))
		}

		action := artistBack
		if err := huh.NewSelect[artistAction]().
			Title(fmt.Sprintf("Artists (%d)", len(artists))).
			Options(
				huh.NewOption("Add artist", artistAdd),
				huh.NewOption("Edit artist", artistEdit),
				huh.NewOption("Delete artist", artistDelete),
				huh.NewOption("Back", artistBack),
			).
			Value(&action).
			Run(); err != nil {
			return err
		}

		switch action {
		case artistAdd:
			if err := c.addArtist(ctx); err != nil {
				return err
			}
		case artistEdit:
			if err := c.editArtist(ctx, artists); err != nil {
				return err
			}
		case artistDelete:
			id, err := pickArtist("Delete which artist?", artists)
			if err != nil {
				return err
			}
			if id == 0 {
				continue
			}
			ok, err := huhConfirmer().Confirm(ctx, "Delete this artist and its auto-update config?")
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if err := c.api.DeleteArtist(ctx, id); err != nil {
				return err
			}
			success("Artist deleted")
		case artistBack:
			return nil
		}
	}
}

func (c console) addArtist(ctx context.Context) error {
	var name, email, contact, notes string
	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&name).
				Validate(required("Name")),
			huh.NewInput().
				Title("Email (optional)").
				Value(&email),
			huh.NewInput().
				Title("Contact person (optional)").
				Value(&contact),
			huh.NewInput().
				Title("Notes (optional)").
				Value(&notes),
		),
	).Run()
	if err != nil {
		return err
	}

	req := client.ArtistRequest{Name: name}
	if email != "" {
		req.Email = &email
	}
	if contact != "" {
		req.ContactPerson = &contact
	}
	if notes != "" {
		req.Notes = &notes
	}
	if err := c.api.CreateArtist(ctx, req); err != nil {
		return err
	}
	success("Added %s", name)
	return nil
}

func (c console) editArtist(ctx context.Context, artists []client.Artist) error {
	id, err := pickArtist("Edit which artist?", artists)
	if err != nil || id == 0 {
		return err
	}

	var current client.Artist
	for _, a := range artists {
		if a.ID == id {
			current = a
		}
	}

	name := current.Name
	email := strOr(current.Email, "")
	contact := strOr(current.ContactPerson, "")
	active := current.Active
	err = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&name).
				Validate(required("Name")),
			huh.NewInput().
				Title("Email").
				Value(&email),
			huh.NewInput().
				Title("Contact person").
				Value(&contact),
			huh.NewConfirm().
				Title("Active?").
				Value(&active),
		),
	).Run()
	if err != nil {
		return err
	}

	req := client.ArtistRequest{Name: name, Active: &active}
	if email != "" {
		req.Email = &email
	}
	if contact != "" {
		req.ContactPerson = &contact
	}
	if err := c.api.UpdateArtist(ctx, id, req); err != nil {
		return err
	}
	success("Updated %s", name)
	return nil
}
