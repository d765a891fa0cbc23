package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
)

var ErrSourceUnavailable = errors.New("catalog source is not available")

// CatalogSource fetches an artist's discography by name. Implemented by the
// Spotify and MusicBrainz clients.
type CatalogSource interface {
	FetchCatalogByName(ctx context.Context, name string) (*model.ArtistCatalog, error)
}

// AutoUpdateService keeps artist keyword lists in sync with their catalogs on
// a per-artist schedule.
type AutoUpdateService struct {
	configs  *repository.AutoUpdateRepo
	artists  *repository.ArtistRepo
	keywords *repository.KeywordRepo
	sources  map[string]CatalogSource
}

func NewAutoUpdateService(configs *repository.AutoUpdateRepo, artists *repository.ArtistRepo,
	keywords *repository.KeywordRepo, sources map[string]CatalogSource) *AutoUpdateService {
	return &AutoUpdateService{
		configs:  configs,
		artists:  artists,
		keywords: keywords,
		sources:  sources,
	}
}

// nextCheck derives the next refresh time from the last check and frequency.
// Unknown frequencies fall back to weekly.
func nextCheck(lastCheck time.Time, frequency string) time.Time {
	switch frequency {
	case model.FrequencyDaily:
		return lastCheck.AddDate(0, 0, 1)
	case model.FrequencyMonthly:
		return lastCheck.AddDate(0, 0, 30)
	default:
		return lastCheck.AddDate(0, 0, 7)
	}
}

// decorate fills the derived NextCheck and NeedsUpdate fields. An artist that
// was never checked is immediately due.
func decorate(c *model.AutoUpdateConfig, now time.Time) {
	if c.LastCheck == nil {
		c.NextCheck = nil
		c.NeedsUpdate = c.Enabled
		return
	}
	next := nextCheck(*c.LastCheck, c.Frequency)
	c.NextCheck = &next
	c.NeedsUpdate = c.Enabled && !now.Before(next)
}

// Status reports every artist's schedule with the system-wide counters.
func (s *AutoUpdateService) Status(ctx context.Context) (*model.AutoUpdateStatus, error) {
	configs, err := s.configs.List(ctx)
	if err != nil {
		return nil, err
	}
	total, err := s.artists.Count(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	status := &model.AutoUpdateStatus{TotalArtists: total, Artists: configs}
	for i := range status.Artists {
		decorate(&status.Artists[i], now)
		if status.Artists[i].Enabled {
			status.Enabled++
			if status.Artists[i].NeedsUpdate {
				status.NeedsUpdate++
			}
		}
	}
	status.Disabled = total - status.Enabled
	return status, nil
}

// Enable turns on auto-update for an artist. Defaults are weekly from Spotify.
func (s *AutoUpdateService) Enable(ctx context.Context, artistID int64, req model.AutoUpdateEnableRequest) error {
	frequency := req.Frequency
	if frequency == "" {
		frequency = model.FrequencyWeekly
	}
	source := req.Source
	if source == "" {
		source = model.SourceSpotify
	}
	if _, err := s.artists.Find(ctx, artistID); err != nil {
		return err
	}
	return s.configs.Enable(ctx, artistID, frequency, source)
}

func (s *AutoUpdateService) Disable(ctx context.Context, artistID int64) (bool, error) {
	return s.configs.Disable(ctx, artistID)
}

// RunArtist refreshes one artist now: fetch the catalog, add unseen song
// titles as artist-scoped keywords, and stamp the check.
func (s *AutoUpdateService) RunArtist(ctx context.Context, artistID int64) model.AutoUpdateResult {
	artist, err := s.artists.Find(ctx, artistID)
	if err != nil {
		return model.AutoUpdateResult{Error: "artist not found"}
	}

	source := model.SourceSpotify
	if cfg, err := s.configs.Find(ctx, artistID); err == nil {
		source = cfg.Source
	}

	client, ok := s.sources[source]
	if !ok || client == nil {
		return model.AutoUpdateResult{Artist: artist.Name, Source: source, Error: ErrSourceUnavailable.Error()}
	}

	catalog, err := client.FetchCatalogByName(ctx, artist.Name)
	if err != nil {
		return model.AutoUpdateResult{Artist: artist.Name, Source: source, Error: err.Error()}
	}

	added := 0
	for _, song := range catalog.MainSongs {
		id, err := s.keywords.Create(ctx, model.KeywordRequest{
			Keyword:  song.Name,
			ArtistID: &artistID,
			Priority: model.PriorityMedium,
		})
		if err != nil {
			log.Printf("auto-update: add keyword %q: %v", song.Name, err)
			continue
		}
		if id != 0 {
			added++
		}
	}

	total := len(catalog.MainSongs)
	if err := s.configs.MarkChecked(ctx, artistID, added, total); err != nil {
		log.Printf("auto-update: mark checked for artist %d: %v", artistID, err)
	}

	return model.AutoUpdateResult{
		Success:    true,
		Artist:     artist.Name,
		Source:     source,
		NewSongs:   added,
		TotalSongs: total,
	}
}

// RunAll refreshes every enabled artist that is due.
func (s *AutoUpdateService) RunAll(ctx context.Context) (*model.AutoUpdateRunAllResponse, error) {
	configs, err := s.configs.List(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	resp := &model.AutoUpdateRunAllResponse{Success: true}
	for i := range configs {
		decorate(&configs[i], now)
		if !configs[i].NeedsUpdate {
			continue
		}
		result := s.RunArtist(ctx, configs[i].ArtistID)
		resp.Updates = append(resp.Updates, result)
		if result.Success {
			resp.TotalArtistsUpdated++
			resp.TotalNewSongs += result.NewSongs
		}
	}
	return resp, nil
}
