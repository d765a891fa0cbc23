package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"golang.org/x/time/rate"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

const musicBrainzAPI = "https://musicbrainz.org/ws/2"

// MusicBrainzClient fetches discographies from the free MusicBrainz database.
// No credentials needed, but the API demands one request per second and a
// contact address in the User-Agent.
type MusicBrainzClient struct {
	http      *http.Client
	limiter   *rate.Limiter
	userAgent string
}

func NewMusicBrainzClient(contact string) *MusicBrainzClient {
	if contact == "" {
		contact = "ugc-monitor@example.com"
	}
	return &MusicBrainzClient{
		http:      &http.Client{},
		limiter:   rate.NewLimiter(rate.Limit(1), 1),
		userAgent: fmt.Sprintf("warner-music-guardian/1.0 (%s)", contact),
	}
}

func (c *MusicBrainzClient) get(ctx context.Context, endpoint string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}
	params.Set("fmt", "json")
	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		musicBrainzAPI+"/"+endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("musicbrainz %s: status %d", endpoint, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

type mbArtist struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SearchArtist resolves an artist name to its MusicBrainz entry.
func (c *MusicBrainzClient) SearchArtist(ctx context.Context, name string) (*mbArtist, error) {
	var result struct {
		Artists []mbArtist `json:"artists"`
	}
	params := url.Values{
		"query": {fmt.Sprintf("artist:%q", name)},
		"limit": {"1"},
	}
	if err := c.get(ctx, "artist", params, &result); err != nil {
		return nil, err
	}
	if len(result.Artists) == 0 {
		return nil, ErrArtistNotFound
	}
	return &result.Artists[0], nil
}

// recordings pages through an artist's recordings, capped at 500 titles.
func (c *MusicBrainzClient) recordings(ctx context.Context, artistID string) ([]string, error) {
	const limit = 500
	const batch = 100

	seen := map[string]bool{}
	for offset := 0; offset < limit; offset += batch {
		var result struct {
			Recordings []struct {
				Title string `json:"title"`
			} `json:"recordings"`
		}
		params := url.Values{
			"query":  {"arid:" + artistID},
			"limit":  {fmt.Sprint(batch)},
			"offset": {fmt.Sprint(offset)},
		}
		if err := c.get(ctx, "recording", params, &result); err != nil {
			return nil, err
		}
		if len(result.Recordings) == 0 {
			break
		}
		for _, rec := range result.Recordings {
			if rec.Title != "" {
				seen[rec.Title] = true
			}
		}
		if len(result.Recordings) < batch {
			break
		}
	}

	titles := make([]string, 0, len(seen))
	for title := range seen {
		titles = append(titles, title)
	}
	sort.Strings(titles)
	return titles, nil
}

// FetchCatalogByName returns an artist's recordings as a catalog. MusicBrainz
// has no main/featured split, so everything lands in MainSongs.
func (c *MusicBrainzClient) FetchCatalogByName(ctx context.Context, name string) (*model.ArtistCatalog, error) {
	artist, err := c.SearchArtist(ctx, name)
	if err != nil {
		return nil, err
	}
	titles, err := c.recordings(ctx, artist.ID)
	if err != nil {
		return nil, err
	}
	songs := make([]model.CatalogSong, len(titles))
	for i, title := range titles {
		songs[i] = model.CatalogSong{Name: title}
	}
	return &model.ArtistCatalog{
		Artist:    model.CatalogArtist{Name: artist.Name},
		MainSongs: songs,
	}, nil
}
