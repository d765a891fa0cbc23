package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/jzynonet/warner-music-guardian/pkg/client"
)

type videoAction int

const (
	videoFilter videoAction = iota
	videoBatch
	videoClearAll
	videoBack
)

type batchAction int

const (
	batchReviewed batchAction = iota
	batchFlag
	batchPriority
	batchDelete
	batchCancel
)

func (c console) videosView(ctx context.Context) error {
	var (
		filters client.Filters
		stat    client.StatFilter
	)

	for {
		var videos []client.Video
		err := runWithSpinner("Loading videos", func() error {
			var loadErr error
			videos, loadErr = c.api.Videos(ctx, filters, stat)
			return loadErr
		})
		if err != nil {
			return err
		}
		renderVideoTable(videos, 25)

		action := videoBack
		if err := huh.NewSelect[videoAction]().
			Title(fmt.Sprintf("Videos (%d shown)", len(videos))).
			Options(
				huh.NewOption("Edit filters", videoFilter),
				huh.NewOption("Batch review", videoBatch),
				huh.NewOption("Clear ALL videos", videoClearAll),
				huh.NewOption("Back", videoBack),
			).
			Value(&action).
			Run(); err != nil {
			return err
		}

		switch action {
		case videoFilter:
			f, s, err := editFilters(filters, stat)
			if err != nil {
				return err
			}
			filters, stat = f, s
		case videoBatch:
			if err := c.batchReview(ctx, videos); err != nil {
				return err
			}
		case videoClearAll:
			deleted, err := c.api.ClearAllVideos(ctx, huhConfirmer())
			switch err {
			case nil:
				success("Deleted %d videos", deleted)
			case client.ErrCancelled:
				notice("Clear cancelled, nothing deleted")
			default:
				return err
			}
		case videoBack:
			return nil
		}
	}
}

func editFilters(f client.Filters, stat client.StatFilter) (client.Filters, client.StatFilter, error) {
	autoFlagged := "any"
	if f.AutoFlagged != nil {
		autoFlagged = strconv.FormatBool(*f.AutoFlagged)
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Matched keyword (exact)").
				Value(&f.Keyword),
			huh.NewSelect[string]().
				Title("Status").
				Options(
					huh.NewOption("Any", ""),
					huh.NewOption("Pending", client.StatusPending),
					huh.NewOption("Reviewed", client.StatusReviewed),
					huh.NewOption("Flagged for Takedown", client.StatusFlagged),
				).
				Value(&f.Status),
			huh.NewSelect[string]().
				Title("Priority").
				Options(
					huh.NewOption("Any", ""),
					huh.NewOption("Low", client.PriorityLow),
					huh.NewOption("Medium", client.PriorityMedium),
					huh.NewOption("High", client.PriorityHigh),
					huh.NewOption("Critical", client.PriorityCritical),
				).
				Value(&f.Priority),
			huh.NewSelect[string]().
				Title("Auto-flagged").
				Options(
					huh.NewOption("Any", "any"),
					huh.NewOption("Only auto-flagged", "true"),
					huh.NewOption("Only manual", "false"),
				).
				Value(&autoFlagged),
		),
	).Run()
	if err != nil {
		return f, stat, err
	}

	switch autoFlagged {
	case "true":
		yes := true
		f.AutoFlagged = &yes
	case "false":
		no := false
		f.AutoFlagged = &no
	default:
		f.AutoFlagged = nil
	}
	// An explicit status choice replaces any stat-card filter carried over.
	return f, client.StatNone, nil
}

func (c console) batchReview(ctx context.Context, videos []client.Video) error {
	if len(videos) == 0 {
		notice("Nothing to review")
		return nil
	}

	options := make([]huh.Option[int64], 0, len(videos))
	for _, v := range videos {
		label := fmt.Sprintf("[%s/%s] %s — %s",
			shortStatus(v.Status), v.Priority, pad(v.Title, 48), v.ChannelName)
		options = append(options, huh.NewOption(label, v.ID))
	}

	var ids []int64
	if err := huh.NewMultiSelect[int64]().
		Title("Select videos").
		Options(options...).
		Value(&ids).
		Run(); err != nil {
		return err
	}
	if len(ids) == 0 {
		notice("No videos selected")
		return nil
	}

	action := batchCancel
	if err := huh.NewSelect[batchAction]().
		Title(fmt.Sprintf("Action for %d videos", len(ids))).
		Options(
			huh.NewOption("Mark reviewed", batchReviewed),
			huh.NewOption("Flag for takedown", batchFlag),
			huh.NewOption("Set priority", batchPriority),
			huh.NewOption("Delete", batchDelete),
			huh.NewOption("Cancel", batchCancel),
		).
		Value(&action).
		Run(); err != nil {
		return err
	}

	switch action {
	case batchReviewed:
		updated, err := c.api.BatchUpdateVideos(ctx, ids, client.StatusReviewed, "")
		if err != nil {
			return err
		}
		success("Marked %d videos reviewed", updated)
	case batchFlag:
		updated, err := c.api.BatchUpdateVideos(ctx, ids, client.StatusFlagged, "")
		if err != nil {
			return err
		}
		success("Flagged %d videos for takedown", updated)
	case batchPriority:
		priority := client.PriorityMedium
		if err := prioritySelect("Priority", &priority).Run(); err != nil {
			return err
		}
		updated, err := c.api.BatchUpdateVideos(ctx, ids, "", priority)
		if err != nil {
			return err
		}
		success("Set priority %s on %d videos", priority, updated)
	case batchDelete:
		ok, err := huhConfirmer().Confirm(ctx, fmt.Sprintf("Delete %d videos?", len(ids)))
		if err != nil {
			return err
		}
		if !ok {
			notice("Delete cancelled")
			return nil
		}
		deleted, err := c.api.BatchDeleteVideos(ctx, ids)
		if err != nil {
			return err
		}
		success("Deleted %d videos", deleted)
	}
	return nil
}

func renderVideoTable(videos []client.Video, limit int) {
	if len(videos) == 0 {
		notice("No videos match the current filters")
		return
	}
	fmt.Printf("%s %s %s %s %s\n",
		pad("STATUS", 8), pad("PRI", 8), pad("TITLE", 50), pad("CHANNEL", 24), "MATCHED")
	shown := videos
	if len(shown) > limit {
		shown = shown[:limit]
	}
	for _, v := range shown {
		matched := v.MatchedKeyword
		if song, artist, isSong := client.SplitMatchedKeyword(v.MatchedKeyword); isSong {
			matched = fmt.Sprintf("%s by %s", song, artist)
		}
		line := fmt.Sprintf("%s %s %s %s %s",
			pad(shortStatus(v.Status), 8), pad(v.Priority, 8),
			pad(v.Title, 50), pad(v.ChannelName, 24), matched)
		if v.Status == client.StatusFlagged {
			line = errorStyle.Render(line)
		} else if v.AutoFlagged {
			line = warnStyle.Render(line)
		}
		fmt.Println(line)
	}
	if len(videos) > limit {
		notice("… and %d more", len(videos)-limit)
	}
}

func shortStatus(status string) string {
	if strings.HasPrefix(status, "Flagged") {
		return "Flagged"
	}
	return status
}
