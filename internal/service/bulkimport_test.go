package service

import (
	"strings"
	"testing"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

func TestParseKeywordCSV(t *testing.T) {
	input := strings.Join([]string{
		"keyword,artist_name,auto_flag,priority",
		"Brand Name,Some Artist,true,High",
		"Other Term,,false,",
		",Ignored Artist,true,Low",
		"Numeric Flag,Artist,1,Critical",
	}, "\n")

	rows, err := ParseKeywordCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseKeywordCSV() error: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}

	want := []model.KeywordImportRow{
		{Keyword: "Brand Name", ArtistName: "Some Artist", AutoFlag: true, Priority: "High"},
		{Keyword: "Other Term", AutoFlag: false, Priority: "Medium"},
		{Keyword: "Numeric Flag", ArtistName: "Artist", AutoFlag: true, Priority: "Critical"},
	}
	for i, w := range want {
		if rows[i] != w {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], w)
		}
	}
}

func TestParseKeywordCSVMissingColumn(t *testing.T) {
	input := "name,value\na,b\n"
	if _, err := ParseKeywordCSV(strings.NewReader(input)); err == nil {
		t.Error("expected error for CSV without keyword column")
	}
}

func TestParseKeywordCSVColumnOrder(t *testing.T) {
	// Header order should not matter.
	input := "priority,keyword,auto_flag,artist_name\nLow,Term,yes,Artist\n"
	rows, err := ParseKeywordCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseKeywordCSV() error: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("len(rows) = %d, want 1", len(rows))
	}
	got := rows[0]
	if got.Keyword != "Term" || got.ArtistName != "Artist" || !got.AutoFlag || got.Priority != "Low" {
		t.Errorf("row = %+v", got)
	}
}

func TestKeywordTemplateCSV(t *testing.T) {
	content := string(KeywordTemplateCSV())
	if !strings.HasPrefix(content, "keyword,artist_name,auto_flag,priority") {
		t.Errorf("template header wrong: %q", content)
	}
	rows, err := ParseKeywordCSV(strings.NewReader(content))
	if err != nil {
		t.Fatalf("template does not round-trip: %v", err)
	}
	if len(rows) != 2 {
		t.Errorf("template rows = %d, want 2", len(rows))
	}
}
