package model

// CatalogArtist describes an artist as returned by a catalog source
// (Spotify or MusicBrainz).
type CatalogArtist struct {
	Name       string   `json:"name"`
	SpotifyURL string   `json:"spotify_url,omitempty"`
	Followers  int      `json:"followers,omitempty"`
	Genres     []string `json:"genres,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
}

// CatalogSong is one track from a catalog source. No local id exists before
// import, so selection identity is the name string.
type CatalogSong struct {
	Name       string `json:"name"`
	Album      string `json:"album,omitempty"`
	DurationMS *int64 `json:"duration_ms,omitempty"`
}

// ArtistCatalog is the full fetch result for one artist.
type ArtistCatalog struct {
	Artist        CatalogArtist
	MainSongs     []CatalogSong
	FeaturedSongs []CatalogSong
	Albums        int
}

// PreviewResponse is the body of POST /api/songs/preview-from-spotify.
type PreviewResponse struct {
	Success            bool          `json:"success"`
	ArtistInfo         CatalogArtist `json:"artist_info"`
	MainSongs          []CatalogSong `json:"main_songs"`
	FeaturedSongs      []CatalogSong `json:"featured_songs"`
	TotalMainSongs     int           `json:"total_main_songs"`
	TotalFeaturedSongs int           `json:"total_featured_songs"`
	Albums             int           `json:"albums"`
}

// ImportRequest is the body of POST /api/songs/import-from-spotify.
type ImportRequest struct {
	ArtistInfo    CatalogArtist `json:"artist_info"`
	SelectedSongs []CatalogSong `json:"selected_songs"`
	AutoFlag      bool          `json:"auto_flag,omitempty"`
	Priority      string        `json:"priority,omitempty"`
}

// ImportResponse reports a confirmed catalog import.
type ImportResponse struct {
	Success            bool   `json:"success"`
	ArtistID           int64  `json:"artist_id"`
	ArtistName         string `json:"artist_name"`
	SongsAdded         int    `json:"songs_added"`
	SongsSkipped       int    `json:"songs_skipped"`
	TotalSongsSelected int    `json:"total_songs_selected"`
	Message            string `json:"message"`
}
