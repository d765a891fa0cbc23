package service

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

// KeywordCSVHeader is the expected column order for keyword bulk imports.
var KeywordCSVHeader = []string{"keyword", "artist_name", "auto_flag", "priority"}

// ParseKeywordCSV reads rows of keyword,artist_name,auto_flag,priority.
// Rows with an empty keyword are dropped, missing columns take defaults.
func ParseKeywordCSV(r io.Reader) ([]model.KeywordImportRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	col := map[string]int{}
	for i, name := range header {
		col[strings.ToLower(strings.TrimSpace(name))] = i
	}
	if _, ok := col["keyword"]; !ok {
		return nil, fmt.Errorf("missing keyword column")
	}

	field := func(record []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []model.KeywordImportRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		keyword := field(record, "keyword")
		if keyword == "" {
			continue
		}
		priority := field(record, "priority")
		if priority == "" {
			priority = model.PriorityMedium
		}
		rows = append(rows, model.KeywordImportRow{
			Keyword:    keyword,
			ArtistName: field(record, "artist_name"),
			AutoFlag:   parseBoolish(field(record, "auto_flag")),
			Priority:   priority,
		})
	}
	return rows, nil
}

// parseBoolish accepts the loose truthy spellings seen in uploaded sheets.
func parseBoolish(s string) bool {
	switch strings.ToLower(s) {
	case "true", "1", "yes":
		return true
	default:
		return false
	}
}

// ParseKeywordXLSX reads the first sheet of an Excel upload with the same
// columns as the CSV format.
func ParseKeywordXLSX(r io.Reader) ([]model.KeywordImportRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	cells, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(cells) == 0 {
		return nil, fmt.Errorf("empty sheet")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	for _, row := range cells {
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return ParseKeywordCSV(&buf)
}

// KeywordTemplateCSV is the downloadable starter file for bulk imports.
func KeywordTemplateCSV() []byte {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Write(KeywordCSVHeader)
	w.Write([]string{"Example Brand Name", "Artist Name", "true", "High"})
	w.Write([]string{"Example Product", "Artist Name", "false", "Medium"})
	w.Flush()
	return buf.Bytes()
}
