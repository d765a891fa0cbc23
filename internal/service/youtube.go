package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

const maxSearchResults = 50

var (
	ErrQuotaExceeded   = errors.New("search quota exceeded, wait or rotate the API key")
	ErrInvalidAPIKey   = errors.New("video search API key is invalid")
	ErrYouTubeDisabled = errors.New("video search is not configured")
)

// YouTubeClient wraps the Data API v3 for keyword and song searches.
type YouTubeClient struct {
	svc *youtube.Service
}

func NewYouTubeClient(ctx context.Context, apiKey string) (*YouTubeClient, error) {
	if apiKey == "" {
		return nil, ErrYouTubeDisabled
	}
	svc, err := youtube.NewService(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("init youtube service: %w", err)
	}
	return &YouTubeClient{svc: svc}, nil
}

func mapAPIError(err error) error {
	msg := err.Error()
	if strings.Contains(msg, "quotaExceeded") {
		return ErrQuotaExceeded
	}
	if strings.Contains(msg, "keyInvalid") {
		return ErrInvalidAPIKey
	}
	return err
}

// SearchKeyword returns the newest uploads matching a free-form keyword.
func (c *YouTubeClient) SearchKeyword(ctx context.Context, keyword string) ([]model.FoundVideo, error) {
	resp, err := c.svc.Search.List([]string{"id", "snippet"}).
		Q(keyword).
		MaxResults(maxSearchResults).
		Type("video").
		Order("date").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	var videos []model.FoundVideo
	for _, item := range resp.Items {
		if item.Id == nil || item.Id.VideoId == "" || item.Snippet == nil {
			continue
		}
		videos = append(videos, foundFromSearchSnippet(item.Id.VideoId, item.Snippet))
	}
	return videos, nil
}

// SearchSong looks for third-party re-uploads of one song. Both the song and
// artist name are quoted so the API requires each as a phrase. Results are
// filtered to plausible infringements and sorted best match first.
func (c *YouTubeClient) SearchSong(ctx context.Context, songName, artistName string, durationMS *int64) ([]SongHit, error) {
	query := fmt.Sprintf("%q %q", songName, artistName)
	resp, err := c.svc.Search.List([]string{"id", "snippet"}).
		Q(query).
		MaxResults(maxSearchResults).
		Type("video").
		Order("relevance").
		VideoDuration("medium").
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	var ids []string
	for _, item := range resp.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			ids = append(ids, item.Id.VideoId)
		}
	}
	if len(ids) == 0 {
		return nil, nil
	}

	details, err := c.svc.Videos.List([]string{"snippet", "contentDetails"}).
		Id(ids...).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError(err)
	}

	origDurationSec := 0
	if durationMS != nil {
		origDurationSec = int(*durationMS / 1000)
	}

	songLower := strings.ToLower(songName)
	artistLower := strings.ToLower(artistName)

	var hits []SongHit
	for _, item := range details.Items {
		if item.Snippet == nil || item.ContentDetails == nil {
			continue
		}
		durationSec := parseISODuration(item.ContentDetails.Duration)
		if durationSec < 60 {
			continue
		}
		// Clips noticeably shorter than the catalog track are not the
		// track. Longer is fine.
		if origDurationSec > 0 && origDurationSec-durationSec > 60 {
			continue
		}

		titleLower := strings.ToLower(item.Snippet.Title)
		channelLower := strings.ToLower(item.Snippet.ChannelTitle)

		if isOfficialChannel(channelLower, artistLower) {
			continue
		}
		if !strings.Contains(titleLower, songLower) || !strings.Contains(titleLower, artistLower) {
			continue
		}
		if hasUnwantedTerm(titleLower) {
			continue
		}
		if isFeaturedNotMain(item.Snippet.Title, artistName) {
			continue
		}

		score := matchScore(item.Snippet.Title, songName, artistName, durationSec, origDurationSec)
		if score < 50 {
			continue
		}

		v := foundFromVideoSnippet(item.Id, item.Snippet)
		v.DurationSec = durationSec
		hits = append(hits, SongHit{Video: v, Score: score, Priority: priorityForScore(score)})
	}

	sort.SliceStable(hits, func(i, j int) bool {
		if pi, pj := model.PriorityRank[hits[i].Priority], model.PriorityRank[hits[j].Priority]; pi != pj {
			return pi > pj
		}
		if hits[i].Score != hits[j].Score {
			return hits[i].Score > hits[j].Score
		}
		if origDurationSec > 0 {
			di := abs(hits[i].Video.DurationSec - origDurationSec)
			dj := abs(hits[j].Video.DurationSec - origDurationSec)
			return di < dj
		}
		return false
	})
	return hits, nil
}

// VideoDetails fetches one video's metadata for on-demand analysis.
func (c *YouTubeClient) VideoDetails(ctx context.Context, videoID string) (*model.FoundVideo, error) {
	resp, err := c.svc.Videos.List([]string{"snippet", "contentDetails"}).
		Id(videoID).
		Context(ctx).
		Do()
	if err != nil {
		return nil, mapAPIError(err)
	}
	if len(resp.Items) == 0 || resp.Items[0].Snippet == nil {
		return nil, nil
	}
	item := resp.Items[0]
	v := foundFromVideoSnippet(item.Id, item.Snippet)
	if item.ContentDetails != nil {
		v.DurationSec = parseISODuration(item.ContentDetails.Duration)
	}
	return &v, nil
}

// TestKey runs a minimal search to verify the configured key works.
func (c *YouTubeClient) TestKey(ctx context.Context) bool {
	_, err := c.svc.Search.List([]string{"id"}).Q("test").MaxResults(1).Context(ctx).Do()
	return err == nil
}

func foundFromSearchSnippet(videoID string, s *youtube.SearchResultSnippet) model.FoundVideo {
	thumb := ""
	if s.Thumbnails != nil && s.Thumbnails.Medium != nil {
		thumb = s.Thumbnails.Medium.Url
	}
	return model.FoundVideo{
		VideoID:      videoID,
		Title:        s.Title,
		ChannelName:  s.ChannelTitle,
		ChannelID:    s.ChannelId,
		PublishDate:  s.PublishedAt,
		ThumbnailURL: thumb,
		Description:  s.Description,
	}
}

func foundFromVideoSnippet(videoID string, s *youtube.VideoSnippet) model.FoundVideo {
	thumb := ""
	if s.Thumbnails != nil && s.Thumbnails.Medium != nil {
		thumb = s.Thumbnails.Medium.Url
	}
	return model.FoundVideo{
		VideoID:      videoID,
		Title:        s.Title,
		ChannelName:  s.ChannelTitle,
		ChannelID:    s.ChannelId,
		PublishDate:  s.PublishedAt,
		ThumbnailURL: thumb,
		Description:  s.Description,
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
