package client

import (
	"testing"
)

func preview() *PreviewResponse {
	return &PreviewResponse{
		ArtistInfo: CatalogArtist{Name: "Dua Lipa"},
		MainSongs: []CatalogSong{
			{Name: "Levitating"},
			{Name: "Houdini"},
			{Name: "Physical"},
		},
		FeaturedSongs: []CatalogSong{
			{Name: "Cold Heart"},
		},
	}
}

func TestSelectionDefaults(t *testing.T) {
	s := NewSelection(preview())

	if s.Count() != 3 {
		t.Fatalf("default selection = %d songs, want all 3 main", s.Count())
	}
	for _, name := range []string{"Levitating", "Houdini", "Physical"} {
		if !s.IsSelected(name) {
			t.Errorf("main song %q should start selected", name)
		}
	}
	if s.IsSelected("Cold Heart") {
		t.Error("featured songs should start deselected")
	}
}

func TestSelectionToggle(t *testing.T) {
	s := NewSelection(preview())

	s.Toggle("Houdini")
	if s.IsSelected("Houdini") {
		t.Error("toggle should deselect a selected song")
	}
	s.Toggle("Cold Heart")
	if !s.IsSelected("Cold Heart") {
		t.Error("toggle should select a deselected song")
	}
	if s.Count() != 3 {
		t.Errorf("count = %d, want 3", s.Count())
	}
}

func TestSelectionSetAll(t *testing.T) {
	p := preview()
	s := NewSelection(p)

	s.SetAll(p.MainSongs, false)
	if s.Count() != 0 {
		t.Fatalf("count after deselect all = %d", s.Count())
	}
	s.SetAll(p.FeaturedSongs, true)
	if !s.IsSelected("Cold Heart") || s.Count() != 1 {
		t.Error("SetAll(true) should select the featured song")
	}
}

// Selection identity is the song name, so a re-fetched preview with reordered
// songs keeps the operator's choices.
func TestSelectionSurvivesReorderedRebuild(t *testing.T) {
	s := NewSelection(preview())
	s.Toggle("Physical")    // deselect
	s.Toggle("Cold Heart")  // select featured

	reordered := &PreviewResponse{
		ArtistInfo: CatalogArtist{Name: "Dua Lipa"},
		MainSongs: []CatalogSong{
			{Name: "Physical"},
			{Name: "Levitating"},
			{Name: "Houdini"},
		},
		FeaturedSongs: []CatalogSong{
			{Name: "Cold Heart"},
		},
	}
	s.Rebuild(reordered)

	if s.IsSelected("Physical") {
		t.Error("deselected song should stay deselected after rebuild")
	}
	if !s.IsSelected("Levitating") || !s.IsSelected("Houdini") {
		t.Error("selected main songs should survive rebuild")
	}
	if !s.IsSelected("Cold Heart") {
		t.Error("selected featured song should survive rebuild")
	}

	// Songs that vanished from the preview are dropped from the selection.
	shrunk := &PreviewResponse{
		ArtistInfo: CatalogArtist{Name: "Dua Lipa"},
		MainSongs:  []CatalogSong{{Name: "Levitating"}},
	}
	s.Rebuild(shrunk)
	if s.Count() != 1 || !s.IsSelected("Levitating") {
		t.Errorf("selection after shrink = %d songs", s.Count())
	}
}

func TestSelectionChosenOrder(t *testing.T) {
	s := NewSelection(preview())
	s.Toggle("Cold Heart")

	chosen := s.Chosen()
	want := []string{"Levitating", "Houdini", "Physical", "Cold Heart"}
	if len(chosen) != len(want) {
		t.Fatalf("chosen = %d songs, want %d", len(chosen), len(want))
	}
	for i, name := range want {
		if chosen[i].Name != name {
			t.Errorf("chosen[%d] = %q, want %q", i, chosen[i].Name, name)
		}
	}
}
