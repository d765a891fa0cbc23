package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
)

var ErrNoSongsSelected = errors.New("no songs selected")

// ImportService runs the two-step catalog import: preview fetches the
// discography for operator selection, Import persists the chosen tracks.
type ImportService struct {
	spotify *SpotifyClient
	artists *repository.ArtistRepo
	songs   *repository.SongRepo
}

func NewImportService(spotify *SpotifyClient, artists *repository.ArtistRepo,
	songs *repository.SongRepo) *ImportService {
	return &ImportService{spotify: spotify, artists: artists, songs: songs}
}

// Preview fetches the full catalog behind a Spotify artist URL. Nothing is
// written; the response is the selection the operator confirms later.
func (s *ImportService) Preview(ctx context.Context, spotifyURL string) (*model.PreviewResponse, error) {
	if s.spotify == nil {
		return nil, ErrSpotifyDisabled
	}
	catalog, err := s.spotify.FetchCatalogByURL(ctx, spotifyURL)
	if err != nil {
		return nil, err
	}
	return &model.PreviewResponse{
		Success:            true,
		ArtistInfo:         catalog.Artist,
		MainSongs:          catalog.MainSongs,
		FeaturedSongs:      catalog.FeaturedSongs,
		TotalMainSongs:     len(catalog.MainSongs),
		TotalFeaturedSongs: len(catalog.FeaturedSongs),
		Albums:             catalog.Albums,
	}, nil
}

// Import persists the selected songs under the artist, creating the artist
// when it does not exist yet. Artist identity is the case-insensitive name.
func (s *ImportService) Import(ctx context.Context, req model.ImportRequest) (*model.ImportResponse, error) {
	if len(req.SelectedSongs) == 0 {
		return nil, ErrNoSongsSelected
	}

	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	if !model.ValidPriorities[priority] {
		return nil, fmt.Errorf("invalid priority %q", priority)
	}

	artistID, err := s.resolveArtist(ctx, req.ArtistInfo)
	if err != nil {
		return nil, err
	}

	added, skipped := 0, 0
	for _, song := range req.SelectedSongs {
		id, err := s.songs.Create(ctx, model.SongRequest{
			SongName:   song.Name,
			ArtistName: req.ArtistInfo.Name,
			ArtistID:   &artistID,
			AutoFlag:   req.AutoFlag,
			Priority:   priority,
			DurationMS: song.DurationMS,
		})
		if err != nil {
			return nil, err
		}
		if id == 0 {
			skipped++
		} else {
			added++
		}
	}

	return &model.ImportResponse{
		Success:            true,
		ArtistID:           artistID,
		ArtistName:         req.ArtistInfo.Name,
		SongsAdded:         added,
		SongsSkipped:       skipped,
		TotalSongsSelected: len(req.SelectedSongs),
		Message:            fmt.Sprintf("Imported %d songs for %s (%d already tracked)", added, req.ArtistInfo.Name, skipped),
	}, nil
}

func (s *ImportService) resolveArtist(ctx context.Context, info model.CatalogArtist) (int64, error) {
	if existing, err := s.artists.FindByName(ctx, info.Name); err == nil {
		return existing.ID, nil
	}
	notes := info.SpotifyURL
	id, err := s.artists.Create(ctx, model.ArtistRequest{Name: info.Name, Notes: &notes})
	if err != nil {
		return 0, err
	}
	if id == 0 {
		// Lost a race with a concurrent import. Look it up again.
		existing, err := s.artists.FindByName(ctx, info.Name)
		if err != nil {
			return 0, err
		}
		return existing.ID, nil
	}
	return id, nil
}
