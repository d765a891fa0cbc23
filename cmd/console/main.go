package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/jzynonet/warner-music-guardian/pkg/client"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

type view int

const (
	viewDashboard view = iota
	viewVideos
	viewArtists
	viewSongs
	viewKeywords
	viewRules
	viewAutoUpdate
	viewSchedule
	viewQuit
)

type console struct {
	api *client.Client
}

func main() {
	_ = godotenv.Load()

	base := os.Getenv("GUARDIAN_API_URL")
	if base == "" {
		base = "http://localhost:8080"
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	c := console{api: client.New(base)}

	fmt.Println(titleStyle.Render("🎵 Music Guardian Console"))
	printCapabilities(c.api.Capabilities())

	if err := c.loginGate(ctx); err != nil {
		if !canceled(ctx, err) {
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
			os.Exit(1)
		}
		return
	}

	for {
		choice := viewDashboard
		err := huh.NewSelect[view]().
			Title("View").
			Options(
				huh.NewOption("Dashboard", viewDashboard),
				huh.NewOption("Videos", viewVideos),
				huh.NewOption("Artists", viewArtists),
				huh.NewOption("Songs", viewSongs),
				huh.NewOption("Keywords", viewKeywords),
				huh.NewOption("Auto-flag rules", viewRules),
				huh.NewOption("Auto-update", viewAutoUpdate),
				huh.NewOption("Schedule", viewSchedule),
				huh.NewOption("Quit", viewQuit),
			).
			Value(&choice).
			Run()
		if err != nil || choice == viewQuit {
			return
		}

		// Each view fetches its own data fresh and drops all state on exit.
		if err := c.runView(ctx, choice); err != nil {
			if canceled(ctx, err) {
				return
			}
			fmt.Println(errorStyle.Render("✗ " + err.Error()))
		}
	}
}

func (c console) runView(ctx context.Context, v view) error {
	switch v {
	case viewDashboard:
		return c.dashboardView(ctx)
	case viewVideos:
		return c.videosView(ctx)
	case viewArtists:
		return c.artistsView(ctx)
	case viewSongs:
		return c.songsView(ctx)
	case viewKeywords:
		return c.keywordsView(ctx)
	case viewRules:
		return c.rulesView(ctx)
	case viewAutoUpdate:
		return c.autoUpdateView(ctx)
	case viewSchedule:
		return c.scheduleView(ctx)
	}
	return nil
}

func (c console) loginGate(ctx context.Context) error {
	if c.api.Authenticated() {
		fmt.Println(infoStyle.Render("Session restored from previous login"))
		return nil
	}

	for {
		var password string
		if err := huh.NewInput().
			Title("Admin password").
			EchoMode(huh.EchoModePassword).
			Value(&password).
			Run(); err != nil {
			return err
		}

		err := runWithSpinner("Signing in", func() error {
			return c.api.Login(ctx, password)
		})
		if err == nil {
			return nil
		}
		if canceled(ctx, err) {
			return err
		}
		fmt.Println(errorStyle.Render("✗ " + err.Error()))
	}
}

func printCapabilities(caps client.Capabilities) {
	if !caps.DatabaseOK {
		fmt.Println(warnStyle.Render("⚠ Server unreachable or database down"))
	}
	if !caps.APIConfigured {
		fmt.Println(warnStyle.Render("⚠ YouTube API not configured - searches disabled"))
	}
	if !caps.SpotifyConfigured {
		fmt.Println(warnStyle.Render("⚠ Spotify not configured - catalog imports fall back to MusicBrainz"))
	}
}

func canceled(ctx context.Context, err error) bool {
	return ctx.Err() != nil || errors.Is(err, context.Canceled) || errors.Is(err, huh.ErrUserAborted)
}
