package service

import (
	"context"
	"log"
	"strings"

	"github.com/jzynonet/warner-music-guardian/internal/model"
	"github.com/jzynonet/warner-music-guardian/internal/repository"
)

// SearchService runs keyword and song searches, scores the hits, applies
// auto-flag rules and persists anything new.
type SearchService struct {
	youtube  *YouTubeClient
	detector *Detector
	rules    *RuleService
	videos   *repository.VideoRepo
	keywords *repository.KeywordRepo
	songs    *repository.SongRepo
	logs     *repository.SearchLogRepo
	cache    *CacheService
}

func NewSearchService(youtube *YouTubeClient, detector *Detector, rules *RuleService,
	videos *repository.VideoRepo, keywords *repository.KeywordRepo, songs *repository.SongRepo,
	logs *repository.SearchLogRepo, cache *CacheService) *SearchService {
	return &SearchService{
		youtube:  youtube,
		detector: detector,
		rules:    rules,
		videos:   videos,
		keywords: keywords,
		songs:    songs,
		logs:     logs,
		cache:    cache,
	}
}

// Enabled reports whether a search backend is configured.
func (s *SearchService) Enabled() bool {
	return s.youtube != nil
}

// SearchKeywords runs the keyword pipeline. With no explicit keywords every
// active keyword is searched. excludeKeywords drops terms from the run.
func (s *SearchService) SearchKeywords(ctx context.Context, req model.KeywordSearchRequest) (*model.SearchResponse, error) {
	if s.youtube == nil {
		return nil, ErrYouTubeDisabled
	}

	terms := req.Keywords
	if len(terms) == 0 {
		active, err := s.keywords.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		for _, k := range active {
			terms = append(terms, k.Keyword)
		}
	}

	excluded := map[string]bool{}
	for _, k := range req.ExcludeKeywords {
		excluded[strings.ToLower(k)] = true
	}

	resp := &model.SearchResponse{}
	for _, term := range terms {
		if excluded[strings.ToLower(term)] {
			continue
		}
		result := s.runKeyword(ctx, term)
		resp.Keywords = append(resp.Keywords, result)
		resp.TotalFound += result.Found
		resp.TotalNew += result.New
	}

	s.invalidateStats(ctx)
	return resp, nil
}

func (s *SearchService) runKeyword(ctx context.Context, term string) model.TermResult {
	result := model.TermResult{Keyword: term}

	found, err := s.youtube.SearchKeyword(ctx, term)
	if err != nil {
		result.Error = err.Error()
		s.logSearch(ctx, term, 0, false, err.Error())
		return result
	}
	result.Found = len(found)

	// Keyword settings drive the default flagging of its hits.
	var keyword *model.Keyword
	if k, err := s.keywords.FindByTerm(ctx, term); err == nil {
		keyword = k
	}

	for i := range found {
		video := s.buildVideo(ctx, &found[i], term, keyword)
		added, err := s.videos.Insert(ctx, video)
		if err != nil {
			log.Printf("search: insert video %s: %v", video.VideoID, err)
			continue
		}
		if added {
			result.New++
		}
	}

	s.logSearch(ctx, term, result.Found, true, "")
	return result
}

// buildVideo turns a raw hit into a row: detector verdict first, then keyword
// defaults, then rules. Rules see the final title/channel/keyword and win on
// conflicts.
func (s *SearchService) buildVideo(ctx context.Context, f *model.FoundVideo, term string, keyword *model.Keyword) *model.Video {
	v := &model.Video{
		VideoID:        f.VideoID,
		Title:          f.Title,
		ChannelName:    f.ChannelName,
		ChannelID:      f.ChannelID,
		PublishDate:    f.PublishDate,
		ThumbnailURL:   f.ThumbnailURL,
		VideoURL:       "https://www.youtube.com/watch?v=" + f.VideoID,
		MatchedKeyword: term,
		Status:         model.StatusPending,
		Priority:       model.PriorityMedium,
	}

	analysis := s.detector.Analyze(f.Title, f.ChannelName, f.Description, f.DurationSec)
	v.AIRiskScore = analysis.RiskScore
	v.AIRiskLevel = &analysis.RiskLevel
	reason := strings.Join(analysis.Indicators, "; ")
	if reason != "" {
		v.AIReason = &reason
	}
	if analysis.ShouldFlag {
		v.Status = model.StatusFlagged
		v.AutoFlagged = true
	}

	if keyword != nil {
		v.ArtistID = keyword.ArtistID
		if keyword.Priority != "" {
			v.Priority = mergePriority(v.Priority, keyword.Priority)
		}
		if keyword.AutoFlag {
			v.Status = model.StatusFlagged
			v.AutoFlagged = true
		}
	}

	if s.rules != nil {
		flag, priority, err := s.rules.Apply(ctx, v)
		if err != nil {
			log.Printf("search: apply rules to %s: %v", v.VideoID, err)
		} else {
			if flag {
				v.Status = model.StatusFlagged
				v.AutoFlagged = true
			}
			v.Priority = mergePriority(v.Priority, priority)
		}
	}
	return v
}

// mergePriority keeps whichever priority ranks higher.
func mergePriority(current, proposed string) string {
	if model.PriorityRank[proposed] > model.PriorityRank[current] {
		return proposed
	}
	return current
}

// SearchSongs runs the song pipeline. With no explicit songs every active
// catalog song is searched.
func (s *SearchService) SearchSongs(ctx context.Context, req model.SongSearchRequest) (*model.SearchResponse, error) {
	if s.youtube == nil {
		return nil, ErrYouTubeDisabled
	}

	terms := req.Songs
	if len(terms) == 0 {
		active, err := s.songs.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		for _, song := range active {
			terms = append(terms, model.SongSearchTerm{
				SongName:   song.SongName,
				ArtistName: song.ArtistName,
				DurationMS: song.DurationMS,
			})
		}
	}

	resp := &model.SearchResponse{}
	for _, term := range terms {
		result := s.runSong(ctx, term)
		resp.Songs = append(resp.Songs, result)
		resp.TotalFound += result.Found
		resp.TotalNew += result.New
	}

	s.invalidateStats(ctx)
	return resp, nil
}

func (s *SearchService) runSong(ctx context.Context, term model.SongSearchTerm) model.TermResult {
	result := model.TermResult{SongName: term.SongName, ArtistName: term.ArtistName}
	identifier := term.SongName + " - " + term.ArtistName

	hits, err := s.youtube.SearchSong(ctx, term.SongName, term.ArtistName, term.DurationMS)
	if err != nil {
		result.Error = err.Error()
		s.logSearch(ctx, identifier, 0, false, err.Error())
		return result
	}
	result.Found = len(hits)

	for i := range hits {
		video := s.buildVideo(ctx, &hits[i].Video, identifier, nil)
		// The song matcher's own priority outranks the defaults.
		video.Priority = mergePriority(video.Priority, hits[i].Priority)

		added, err := s.videos.Insert(ctx, video)
		if err != nil {
			log.Printf("search: insert video %s: %v", video.VideoID, err)
			continue
		}
		if added {
			result.New++
		}
	}

	s.logSearch(ctx, identifier, result.Found, true, "")
	return result
}

// AnalyzeVideoByID fetches one video and returns the detector verdict without
// persisting anything.
func (s *SearchService) AnalyzeVideoByID(ctx context.Context, videoID string) (*Analysis, error) {
	if s.youtube == nil {
		return nil, ErrYouTubeDisabled
	}
	found, err := s.youtube.VideoDetails(ctx, videoID)
	if err != nil {
		return nil, err
	}
	if found == nil {
		return nil, nil
	}
	analysis := s.detector.Analyze(found.Title, found.ChannelName, found.Description, found.DurationSec)
	return &analysis, nil
}

// RescanPending re-runs the detector and rules over every pending video.
// Returns how many were flagged.
func (s *SearchService) RescanPending(ctx context.Context) (int, int, error) {
	videos, err := s.videos.List(ctx, model.VideoFilters{Status: model.StatusPending})
	if err != nil {
		return 0, 0, err
	}

	flagged := 0
	for i := range videos {
		v := &videos[i]
		analysis := s.detector.Analyze(v.Title, v.ChannelName, "", 0)
		shouldFlag := analysis.ShouldFlag
		priority := v.Priority

		if s.rules != nil {
			ruleFlag, rulePriority, err := s.rules.Apply(ctx, v)
			if err == nil {
				shouldFlag = shouldFlag || ruleFlag
				priority = mergePriority(priority, rulePriority)
			}
		}

		if !shouldFlag && priority == v.Priority {
			continue
		}
		status := ""
		if shouldFlag {
			status = model.StatusFlagged
		}
		if _, err := s.videos.Update(ctx, v.ID, status, priority); err != nil {
			log.Printf("search: rescan update %d: %v", v.ID, err)
			continue
		}
		if shouldFlag {
			flagged++
		}
	}

	s.invalidateStats(ctx)
	return len(videos), flagged, nil
}

// Logs returns the most recent search log entries.
func (s *SearchService) Logs(ctx context.Context, limit int) ([]model.SearchLog, error) {
	return s.logs.List(ctx, limit)
}

func (s *SearchService) logSearch(ctx context.Context, term string, results int, success bool, errMsg string) {
	if err := s.logs.Insert(ctx, term, results, success, errMsg); err != nil {
		log.Printf("search: log %q: %v", term, err)
	}
}

func (s *SearchService) invalidateStats(ctx context.Context) {
	if s.cache != nil {
		if err := s.cache.InvalidateStats(ctx); err != nil {
			log.Printf("search: invalidate stats cache: %v", err)
		}
	}
}
