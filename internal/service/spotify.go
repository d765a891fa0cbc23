package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/oauth2/clientcredentials"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

const spotifyAPI = "https://api.spotify.com/v1"

var (
	ErrSpotifyDisabled = errors.New("spotify is not configured")
	ErrBadArtistURL    = errors.New("invalid spotify artist URL")
	ErrArtistNotFound  = errors.New("artist not found")
)

// SpotifyClient fetches artist discographies through the Web API using the
// client-credentials flow.
type SpotifyClient struct {
	http *http.Client
}

func NewSpotifyClient(ctx context.Context, clientID, clientSecret string) (*SpotifyClient, error) {
	if clientID == "" || clientSecret == "" {
		return nil, ErrSpotifyDisabled
	}
	cfg := clientcredentials.Config{
		ClientID:     clientID,
		ClientSecret: clientSecret,
		TokenURL:     "https://accounts.spotify.com/api/token",
	}
	return &SpotifyClient{http: cfg.Client(ctx)}, nil
}

var (
	artistURLPattern = regexp.MustCompile(`artist/([a-zA-Z0-9]+)`)
	artistURIPattern = regexp.MustCompile(`spotify:artist:([a-zA-Z0-9]+)`)
	bareIDPattern    = regexp.MustCompile(`^[a-zA-Z0-9]{22}$`)
)

// extractArtistID accepts an open.spotify.com URL, a spotify: URI or a bare
// 22-character ID.
func extractArtistID(input string) string {
	if m := artistURLPattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	if m := artistURIPattern.FindStringSubmatch(input); m != nil {
		return m[1]
	}
	if bareIDPattern.MatchString(input) {
		return input
	}
	return ""
}

type spotifyArtist struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Genres []string `json:"genres"`
	Images []struct {
		URL string `json:"url"`
	} `json:"images"`
	Followers struct {
		Total int `json:"total"`
	} `json:"followers"`
	ExternalURLs struct {
		Spotify string `json:"spotify"`
	} `json:"external_urls"`
}

type spotifyAlbum struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	ReleaseDate string `json:"release_date"`
	AlbumType   string `json:"album_type"`
}

type spotifyTrack struct {
	Name    string `json:"name"`
	Artists []struct {
		Name string `json:"name"`
	} `json:"artists"`
	DurationMS int64 `json:"duration_ms"`
}

func (c *SpotifyClient) get(ctx context.Context, path string, params url.Values, out any) error {
	u := spotifyAPI + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return ErrArtistNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("spotify %s: status %d", path, resp.StatusCode)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func catalogArtist(a *spotifyArtist) model.CatalogArtist {
	out := model.CatalogArtist{
		Name:       a.Name,
		SpotifyURL: a.ExternalURLs.Spotify,
		Followers:  a.Followers.Total,
		Genres:     a.Genres,
	}
	if len(a.Images) > 0 {
		out.ImageURL = a.Images[0].URL
	}
	return out
}

// SearchArtist resolves an artist by name, best match first.
func (c *SpotifyClient) SearchArtist(ctx context.Context, name string) (*model.CatalogArtist, error) {
	var result struct {
		Artists struct {
			Items []spotifyArtist `json:"items"`
		} `json:"artists"`
	}
	params := url.Values{"q": {name}, "type": {"artist"}, "limit": {"1"}}
	if err := c.get(ctx, "/search", params, &result); err != nil {
		return nil, err
	}
	if len(result.Artists.Items) == 0 {
		return nil, ErrArtistNotFound
	}
	a := catalogArtist(&result.Artists.Items[0])
	return &a, nil
}

func (c *SpotifyClient) artistByID(ctx context.Context, id string) (*spotifyArtist, error) {
	var a spotifyArtist
	if err := c.get(ctx, "/artists/"+id, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *SpotifyClient) artistAlbums(ctx context.Context, artistID string) ([]spotifyAlbum, error) {
	var albums []spotifyAlbum
	offset := 0
	for {
		var page struct {
			Items []spotifyAlbum `json:"items"`
		}
		params := url.Values{
			"include_groups": {"album,single"},
			"limit":          {"50"},
			"offset":         {fmt.Sprint(offset)},
		}
		if err := c.get(ctx, "/artists/"+artistID+"/albums", params, &page); err != nil {
			return nil, err
		}
		albums = append(albums, page.Items...)
		if len(page.Items) < 50 {
			return albums, nil
		}
		offset += 50
	}
}

func (c *SpotifyClient) albumTracks(ctx context.Context, albumID string) ([]spotifyTrack, error) {
	var tracks []spotifyTrack
	offset := 0
	for {
		var page struct {
			Items []spotifyTrack `json:"items"`
		}
		params := url.Values{"limit": {"50"}, "offset": {fmt.Sprint(offset)}}
		if err := c.get(ctx, "/albums/"+albumID+"/tracks", params, &page); err != nil {
			return nil, err
		}
		tracks = append(tracks, page.Items...)
		if len(page.Items) < 50 {
			return tracks, nil
		}
		offset += 50
	}
}

// FetchCatalogByURL builds the full catalog for the artist behind a Spotify
// URL, split into main and featured tracks. A track is "main" when the artist
// is listed first on it. The first release of a repeated track name wins.
func (c *SpotifyClient) FetchCatalogByURL(ctx context.Context, spotifyURL string) (*model.ArtistCatalog, error) {
	id := extractArtistID(spotifyURL)
	if id == "" {
		return nil, ErrBadArtistURL
	}
	artist, err := c.artistByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.fetchCatalog(ctx, artist)
}

func (c *SpotifyClient) fetchCatalog(ctx context.Context, artist *spotifyArtist) (*model.ArtistCatalog, error) {
	albums, err := c.artistAlbums(ctx, artist.ID)
	if err != nil {
		return nil, err
	}

	type entry struct {
		song    model.CatalogSong
		release string
	}
	mainSeen := map[string]entry{}
	featSeen := map[string]entry{}

	for _, album := range albums {
		tracks, err := c.albumTracks(ctx, album.ID)
		if err != nil {
			return nil, err
		}
		for _, track := range tracks {
			isMain := true
			if len(track.Artists) > 0 {
				isMain = strings.EqualFold(track.Artists[0].Name, artist.Name)
			}
			dur := track.DurationMS
			e := entry{
				song: model.CatalogSong{
					Name:       track.Name,
					Album:      album.Name,
					DurationMS: &dur,
				},
				release: album.ReleaseDate,
			}
			if isMain {
				if _, ok := mainSeen[track.Name]; !ok {
					mainSeen[track.Name] = e
				}
			} else {
				if _, ok := featSeen[track.Name]; !ok {
					featSeen[track.Name] = e
				}
			}
		}
	}

	collect := func(seen map[string]entry) []model.CatalogSong {
		entries := make([]entry, 0, len(seen))
		for _, e := range seen {
			entries = append(entries, e)
		}
		// Newest release first, then name for a stable order.
		sort.Slice(entries, func(i, j int) bool {
			if entries[i].release != entries[j].release {
				return entries[i].release > entries[j].release
			}
			return entries[i].song.Name > entries[j].song.Name
		})
		songs := make([]model.CatalogSong, len(entries))
		for i, e := range entries {
			songs[i] = e.song
		}
		return songs
	}

	return &model.ArtistCatalog{
		Artist:        catalogArtist(artist),
		MainSongs:     collect(mainSeen),
		FeaturedSongs: collect(featSeen),
		Albums:        len(albums),
	}, nil
}

// FetchCatalogByName resolves the artist by name search, then fetches the
// catalog the same way.
func (c *SpotifyClient) FetchCatalogByName(ctx context.Context, name string) (*model.ArtistCatalog, error) {
	var result struct {
		Artists struct {
			Items []spotifyArtist `json:"items"`
		} `json:"artists"`
	}
	params := url.Values{"q": {name}, "type": {"artist"}, "limit": {"1"}}
	if err := c.get(ctx, "/search", params, &result); err != nil {
		return nil, err
	}
	if len(result.Artists.Items) == 0 {
		return nil, ErrArtistNotFound
	}
	return c.fetchCatalog(ctx, &result.Artists.Items[0])
}

// TestCredentials checks that a token can be minted.
func (c *SpotifyClient) TestCredentials(ctx context.Context) bool {
	params := url.Values{"q": {"test"}, "type": {"artist"}, "limit": {"1"}}
	var out json.RawMessage
	return c.get(ctx, "/search", params, &out) == nil
}
