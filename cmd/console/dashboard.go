package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/jzynonet/warner-music-guardian/pkg/client"
)

var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 2).
			MarginRight(1)
	activeCardStyle = cardStyle.
			BorderForeground(lipgloss.Color("212")).
			Bold(true)
)

type dashboardAction int

const (
	dashTogglePending dashboardAction = iota
	dashToggleReviewed
	dashToggleFlagged
	dashKeywordSearch
	dashSongSearch
	dashSmartScan
	dashExportCSV
	dashExportXLSX
	dashLogs
	dashBack
)

func (c console) dashboardView(ctx context.Context) error {
	stat := client.StatNone

	for {
		var d *client.Dashboard
		err := runWithSpinner("Loading dashboard", func() error {
			var loadErr error
			d, loadErr = c.api.LoadDashboard(ctx, client.Filters{}, stat)
			return loadErr
		})
		if err != nil {
			return err
		}

		renderStatCards(d.Stats, stat)
		notice("%d artists, %d songs tracked", len(d.Artists), len(d.Songs))
		renderVideoTable(d.Videos, 10)

		action := dashBack
		if err := huh.NewSelect[dashboardAction]().
			Title("Dashboard").
			Options(
				huh.NewOption("Filter: pending", dashTogglePending),
				huh.NewOption("Filter: reviewed", dashToggleReviewed),
				huh.NewOption("Filter: flagged", dashToggleFlagged),
				huh.NewOption("Run keyword search", dashKeywordSearch),
				huh.NewOption("Run song search", dashSongSearch),
				huh.NewOption("Smart scan pending videos", dashSmartScan),
				huh.NewOption("Export CSV", dashExportCSV),
				huh.NewOption("Export Excel", dashExportXLSX),
				huh.NewOption("Search logs", dashLogs),
				huh.NewOption("Back", dashBack),
			).
			Value(&action).
			Run(); err != nil {
			return err
		}

		switch action {
		case dashTogglePending:
			stat = stat.Toggle(client.StatPending)
		case dashToggleReviewed:
			stat = stat.Toggle(client.StatReviewed)
		case dashToggleFlagged:
			stat = stat.Toggle(client.StatFlagged)
		case dashKeywordSearch:
			if err := c.runSearch(ctx, "Searching keywords", func() (*client.SearchResponse, error) {
				return c.api.RunKeywordSearch(ctx, nil, nil)
			}); err != nil {
				return err
			}
		case dashSongSearch:
			if err := c.runSearch(ctx, "Searching songs", func() (*client.SearchResponse, error) {
				return c.api.RunSongSearch(ctx)
			}); err != nil {
				return err
			}
		case dashSmartScan:
			var scanned, flagged int
			err := runWithSpinner("Scanning pending videos", func() error {
				var scanErr error
				scanned, flagged, scanErr = c.api.SmartScan(ctx)
				return scanErr
			})
			if err != nil {
				return err
			}
			success("Scanned %d videos, flagged %d", scanned, flagged)
		case dashExportCSV:
			if err := c.export(ctx, stat, false); err != nil {
				return err
			}
		case dashExportXLSX:
			if err := c.export(ctx, stat, true); err != nil {
				return err
			}
		case dashLogs:
			if err := c.showSearchLogs(ctx); err != nil {
				return err
			}
		case dashBack:
			return nil
		}
	}
}

func renderStatCards(s *client.Stats, active client.StatFilter) {
	cards := []struct {
		label string
		count int
		stat  client.StatFilter
	}{
		{"Total", s.TotalVideos, client.StatNone},
		{"Pending", s.Pending, client.StatPending},
		{"Reviewed", s.Reviewed, client.StatReviewed},
		{"Flagged", s.Flagged, client.StatFlagged},
	}

	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		style := cardStyle
		if card.stat != client.StatNone && card.stat == active {
			style = activeCardStyle
		}
		rendered = append(rendered, style.Render(
			fmt.Sprintf("%s\n%d", card.label, card.count)))
	}
	fmt.Println(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))

	fmt.Printf("Priority: %d critical / %d high / %d medium / %d low · auto-flagged %d\n",
		s.PriorityCritical, s.PriorityHigh, s.PriorityMedium, s.PriorityLow, s.AutoFlagged)
	if s.LastSearch != nil {
		notice("Last search: %s", *s.LastSearch)
	}
}

func (c console) runSearch(ctx context.Context, title string, run func() (*client.SearchResponse, error)) error {
	var resp *client.SearchResponse
	err := runWithSpinner(title, func() error {
		var searchErr error
		resp, searchErr = run()
		return searchErr
	})
	if err != nil {
		return err
	}
	success("Found %d videos, %d new", resp.TotalFound, resp.TotalNew)
	for _, term := range append(resp.Keywords, resp.Songs...) {
		label := term.Keyword
		if label == "" {
			label = term.SongName + " - " + term.ArtistName
		}
		line := fmt.Sprintf("  %s: %d found, %d new", label, term.Found, term.New)
		if term.Error != "" {
			line += " (" + term.Error + ")"
		}
		fmt.Println(line)
	}
	return nil
}

func (c console) export(ctx context.Context, stat client.StatFilter, excel bool) error {
	var (
		data     []byte
		filename string
	)
	err := runWithSpinner("Exporting", func() error {
		var exportErr error
		if excel {
			data, filename, exportErr = c.api.ExportExcel(ctx, client.Filters{}, stat)
		} else {
			data, filename, exportErr = c.api.ExportCSV(ctx, client.Filters{}, stat)
		}
		return exportErr
	})
	if err != nil {
		return err
	}
	return saveDownload(data, filename)
}

func (c console) showSearchLogs(ctx context.Context) error {
	var logs []client.SearchLog
	err := runWithSpinner("Loading logs", func() error {
		var logErr error
		logs, logErr = c.api.SearchLogs(ctx, 25)
		return logErr
	})
	if err != nil {
		return err
	}
	if len(logs) == 0 {
		notice("No searches logged yet")
		return nil
	}
	for _, l := range logs {
		mark := successStyle.Render("✓")
		detail := strconv.Itoa(l.ResultsCount) + " results"
		if !l.Success {
			mark = errorStyle.Render("✗")
			detail = strOr(l.ErrorMessage, "failed")
		}
		fmt.Printf("%s %s  %s  %s\n",
			mark, l.Timestamp.Format("01-02 15:04"), pad(l.Keyword, 40), detail)
	}
	return nil
}
