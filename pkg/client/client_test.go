package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL, WithStateFile(filepath.Join(t.TempDir(), "session")))
}

func TestLoginPersistsToken(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"status": "ok", "api_configured": true})
	})
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["password"] != "hunter2" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{"success": false, "message": "Invalid password"})
			return
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "token": "tok-123"})
	})

	c := newTestClient(t, mux)
	if c.Authenticated() {
		t.Fatal("fresh client should not be authenticated")
	}
	if !c.Capabilities().APIConfigured {
		t.Error("capability probe should record api_configured")
	}

	if err := c.Login(context.Background(), "wrong"); err == nil {
		t.Fatal("bad password should fail")
	} else if err.Error() != "Invalid password" {
		t.Errorf("error = %q, want server message", err)
	}

	if err := c.Login(context.Background(), "hunter2"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !c.Authenticated() {
		t.Fatal("client should be authenticated after login")
	}

	// A new client on the same state file restores the session.
	restored := New(c.baseURL, WithStateFile(c.stateFile))
	if !restored.Authenticated() {
		t.Error("session should survive a restart via the state file")
	}

	c.Logout()
	if c.Authenticated() {
		t.Error("logout should clear the session")
	}
}

func TestBatchUpdatePayload(t *testing.T) {
	var captured map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/videos/batch-update", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]any{"success": true, "updated": 3})
	})

	c := newTestClient(t, mux)
	updated, err := c.BatchUpdateVideos(context.Background(), []int64{4, 8, 15}, StatusFlagged, "")
	if err != nil {
		t.Fatalf("batch update: %v", err)
	}
	if updated != 3 {
		t.Errorf("updated = %d, want 3", updated)
	}

	ids, ok := captured["video_ids"].([]any)
	if !ok || len(ids) != 3 {
		t.Fatalf("payload video_ids = %v", captured["video_ids"])
	}
	if captured["status"] != "Flagged for Takedown" {
		t.Errorf("payload status = %v", captured["status"])
	}
	if _, present := captured["priority"]; present {
		t.Error("empty priority should be omitted from the payload")
	}
}

func TestBatchUpdateEmptySelectionSendsNothing(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/videos/batch-update", func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	c := newTestClient(t, mux)
	if _, err := c.BatchUpdateVideos(context.Background(), nil, StatusReviewed, ""); err != ErrNoSelection {
		t.Fatalf("err = %v, want ErrNoSelection", err)
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0", requests)
	}
}

// yesNo answers a scripted sequence of confirmations and counts the asks.
type yesNo struct {
	answers []bool
	asked   int
}

func (y *yesNo) Confirm(ctx context.Context, message string) (bool, error) {
	answer := y.answers[y.asked]
	y.asked++
	return answer, nil
}

func TestClearAllVideosDoubleConfirm(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/videos/clear-all", func(w http.ResponseWriter, r *http.Request) {
		requests++
		json.NewEncoder(w).Encode(map[string]any{"success": true, "deleted": 42})
	})

	tests := []struct {
		name      string
		answers   []bool
		wantAsks  int
		wantSends int
		wantErr   error
	}{
		{"decline first", []bool{false, true}, 1, 0, ErrCancelled},
		{"decline second", []bool{true, false}, 2, 0, ErrCancelled},
		{"confirm both", []bool{true, true}, 2, 1, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requests = 0
			gate := &yesNo{answers: tt.answers}

			c := newTestClient(t, mux)
			deleted, err := c.ClearAllVideos(context.Background(), gate)
			if err != tt.wantErr {
				t.Fatalf("err = %v, want %v", err, tt.wantErr)
			}
			if gate.asked != tt.wantAsks {
				t.Errorf("asked = %d, want %d", gate.asked, tt.wantAsks)
			}
			if requests != tt.wantSends {
				t.Errorf("requests = %d, want %d", requests, tt.wantSends)
			}
			if err == nil && deleted != 42 {
				t.Errorf("deleted = %d, want 42", deleted)
			}
		})
	}
}

func TestCreateRuleRejectsEmptyConditionsLocally(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auto-flag-rules", func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	c := newTestClient(t, mux)
	err := c.CreateRule(context.Background(), RuleRequest{Name: "Empty rule"})
	if err != ErrNoConditions {
		t.Fatalf("err = %v, want ErrNoConditions", err)
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0", requests)
	}
}

func TestImportFlowEndToEnd(t *testing.T) {
	var importBody struct {
		ArtistInfo    CatalogArtist `json:"artist_info"`
		SelectedSongs []CatalogSong `json:"selected_songs"`
		AutoFlag      bool          `json:"auto_flag"`
		Priority      string        `json:"priority"`
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/songs/preview-from-spotify", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(PreviewResponse{
			Success:    true,
			ArtistInfo: CatalogArtist{Name: "Dua Lipa", SpotifyURL: "https://open.spotify.com/artist/x"},
			MainSongs:  []CatalogSong{{Name: "Levitating"}, {Name: "Houdini"}},
			FeaturedSongs: []CatalogSong{
				{Name: "Cold Heart"},
			},
		})
	})
	mux.HandleFunc("POST /api/songs/import-from-spotify", func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&importBody)
		json.NewEncoder(w).Encode(ImportResponse{
			Success:    true,
			ArtistName: importBody.ArtistInfo.Name,
			SongsAdded: len(importBody.SelectedSongs),
		})
	})

	c := newTestClient(t, mux)
	ctx := context.Background()

	p, err := c.PreviewSpotify(ctx, "https://open.spotify.com/artist/x")
	if err != nil {
		t.Fatalf("preview: %v", err)
	}

	sel := NewSelection(p)
	sel.Toggle("Houdini") // drop one main song

	resp, err := c.ImportSelection(ctx, sel, true, PriorityHigh)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if resp.SongsAdded != 1 {
		t.Errorf("songs added = %d, want 1", resp.SongsAdded)
	}
	if len(importBody.SelectedSongs) != 1 || importBody.SelectedSongs[0].Name != "Levitating" {
		t.Errorf("selected songs sent = %v", importBody.SelectedSongs)
	}
	if importBody.ArtistInfo.Name != "Dua Lipa" {
		t.Errorf("artist info sent = %v", importBody.ArtistInfo)
	}
	if !importBody.AutoFlag || importBody.Priority != "High" {
		t.Errorf("options sent = autoFlag %v priority %q", importBody.AutoFlag, importBody.Priority)
	}
}

func TestImportNothingSelectedSendsNothing(t *testing.T) {
	requests := 0
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/songs/import-from-spotify", func(w http.ResponseWriter, r *http.Request) {
		requests++
	})

	c := newTestClient(t, mux)
	sel := NewSelection(&PreviewResponse{MainSongs: []CatalogSong{{Name: "Song"}}})
	sel.Toggle("Song")

	if _, err := c.ImportSelection(context.Background(), sel, false, ""); err != ErrNothingSelected {
		t.Fatalf("err = %v, want ErrNothingSelected", err)
	}
	if requests != 0 {
		t.Errorf("requests = %d, want 0", requests)
	}
}

func TestErrorEnvelopeExtraction(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/artists", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"code": "INVALID_FIELD", "message": "name is required"},
		})
	})
	mux.HandleFunc("GET /api/keywords", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		w.Write([]byte("not json"))
	})

	c := newTestClient(t, mux)

	_, err := c.Artists(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Code != "INVALID_FIELD" || apiErr.Message != "name is required" {
		t.Errorf("structured error = %+v", apiErr)
	}

	_, err = c.Keywords(context.Background())
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %T, want *APIError", err)
	}
	if apiErr.Error() != "HTTP 418" {
		t.Errorf("fallback error = %q, want HTTP status", apiErr.Error())
	}
}

func TestSplitMatchedKeyword(t *testing.T) {
	song, artist, isSong := SplitMatchedKeyword("Levitating - Dua Lipa")
	if !isSong || song != "Levitating" || artist != "Dua Lipa" {
		t.Errorf("got (%q, %q, %v)", song, artist, isSong)
	}

	if _, _, isSong := SplitMatchedKeyword("leaked album"); isSong {
		t.Error("bare keyword should not parse as a song")
	}

	// More than one separator means the value is not a song/artist pair.
	if song, artist, isSong := SplitMatchedKeyword("Back in Black - AC - DC"); isSong {
		t.Errorf("three-part value parsed as song (%q, %q); want plain keyword", song, artist)
	}
}
