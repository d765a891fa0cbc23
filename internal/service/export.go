package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
)

// ExportService renders filtered video lists as CSV or XLSX downloads.
type ExportService struct {
	videos *repository.VideoRepo
}

func NewExportService(videos *repository.VideoRepo) *ExportService {
	return &ExportService{videos: videos}
}

var exportHeader = []string{
	"ID", "Video ID", "Title", "Channel Name", "Channel ID",
	"Publish Date", "Video URL", "Matched Keyword", "Status",
	"Priority", "Auto-Flagged", "Created At",
}

func exportRow(v *model.Video) []string {
	autoFlagged := "No"
	if v.AutoFlagged {
		autoFlagged = "Yes"
	}
	return []string{
		strconv.FormatInt(v.ID, 10), v.VideoID, v.Title, v.ChannelName, v.ChannelID,
		v.PublishDate, v.VideoURL, v.MatchedKeyword, v.Status,
		v.Priority, autoFlagged, v.CreatedAt.Format(time.RFC3339),
	}
}

// Filename builds the timestamped download name, e.g. ugc_videos_20260301_120000.csv.
func Filename(ext string, now time.Time) string {
	return fmt.Sprintf("ugc_videos_%s.%s", now.Format("20060102_150405"), ext)
}

// CSV renders matching videos as a CSV document.
func (s *ExportService) CSV(ctx context.Context, filters model.VideoFilters) ([]byte, error) {
	videos, err := s.videos.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(exportHeader); err != nil {
		return nil, err
	}
	for i := range videos {
		if err := w.Write(exportRow(&videos[i])); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Excel renders matching videos as an XLSX workbook with one sheet.
func (s *ExportService) Excel(ctx context.Context, filters model.VideoFilters) ([]byte, error) {
	videos, err := s.videos.List(ctx, filters)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "UGC Videos"
	f.SetSheetName(f.GetSheetName(0), sheet)

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	for i := range videos {
		row := exportRow(&videos[i])
		cells := make([]any, len(row))
		for j, cell := range row {
			cells[j] = cell
		}
		addr, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, addr, &cells); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
