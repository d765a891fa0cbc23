package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

type VideoRepo struct {
	pool *pgxpool.Pool
}

func NewVideoRepo(pool *pgxpool.Pool) *VideoRepo {
	return &VideoRepo{pool: pool}
}

const videoColumns = `id, video_id, title, channel_name, channel_id, publish_date,
	thumbnail_url, video_url, matched_keyword, status, priority, artist_id,
	auto_flagged, ai_risk_score, ai_risk_level, ai_reason, created_at`

func scanVideo(row pgx.Row) (*model.Video, error) {
	var v model.Video
	err := row.Scan(
		&v.ID, &v.VideoID, &v.Title, &v.ChannelName, &v.ChannelID, &v.PublishDate,
		&v.ThumbnailURL, &v.VideoURL, &v.MatchedKeyword, &v.Status, &v.Priority, &v.ArtistID,
		&v.AutoFlagged, &v.AIRiskScore, &v.AIRiskLevel, &v.AIReason, &v.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// List returns videos matching the given filters, Critical first, newest
// within each priority.
func (r *VideoRepo) List(ctx context.Context, f model.VideoFilters) ([]model.Video, error) {
	var (
		conds  []string
		params []any
	)
	add := func(cond string, value any) {
		params = append(params, value)
		conds = append(conds, fmt.Sprintf(cond, len(params)))
	}

	if f.Keyword != "" {
		add("matched_keyword = $%d", f.Keyword)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.Priority != "" {
		add("priority = $%d", f.Priority)
	}
	if f.ArtistID != 0 {
		add("artist_id = $%d", f.ArtistID)
	}
	if f.AutoFlagged != nil {
		add("auto_flagged = $%d", *f.AutoFlagged)
	}
	if f.DateFrom != "" {
		add("publish_date >= $%d", f.DateFrom)
	}
	if f.DateTo != "" {
		add("publish_date <= $%d", f.DateTo)
	}

	query := `SELECT ` + videoColumns + ` FROM videos`
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += `
		ORDER BY CASE priority
			WHEN 'Critical' THEN 4
			WHEN 'High' THEN 3
			WHEN 'Medium' THEN 2
			WHEN 'Low' THEN 1
			ELSE 0
		END DESC, created_at DESC`

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var videos []model.Video
	for rows.Next() {
		v, err := scanVideo(rows)
		if err != nil {
			return nil, err
		}
		videos = append(videos, *v)
	}
	return videos, rows.Err()
}

// Insert stores a newly found video. Returns false when the video_id is
// already tracked (duplicate hits are silently skipped).
func (r *VideoRepo) Insert(ctx context.Context, v *model.Video) (bool, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO videos (video_id, title, channel_name, channel_id, publish_date,
			thumbnail_url, video_url, matched_keyword, status, priority, artist_id,
			auto_flagged, ai_risk_score, ai_risk_level, ai_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (video_id) DO NOTHING
		RETURNING id`,
		v.VideoID, v.Title, v.ChannelName, v.ChannelID, v.PublishDate,
		v.ThumbnailURL, v.VideoURL, v.MatchedKeyword, v.Status, v.Priority, v.ArtistID,
		v.AutoFlagged, v.AIRiskScore, v.AIRiskLevel, v.AIReason).Scan(&id)
	if err == pgx.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	v.ID = id
	return true, nil
}

// Update sets status and/or priority on one video. Returns false when no row
// matched.
func (r *VideoRepo) Update(ctx context.Context, id int64, status, priority string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE videos
		SET status   = COALESCE(NULLIF($2, ''), status),
		    priority = COALESCE(NULLIF($3, ''), priority)
		WHERE id = $1`,
		id, status, priority)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// BatchUpdate applies status and/or priority to the given ids, returning the
// number of rows touched.
func (r *VideoRepo) BatchUpdate(ctx context.Context, ids []int64, status, priority string) (int, error) {
	if len(ids) == 0 || (status == "" && priority == "") {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx, `
		UPDATE videos
		SET status   = COALESCE(NULLIF($2, ''), status),
		    priority = COALESCE(NULLIF($3, ''), priority)
		WHERE id = ANY($1)`,
		ids, status, priority)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// Delete removes one video.
func (r *VideoRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// BatchDelete removes the given ids, returning the number deleted.
func (r *VideoRepo) BatchDelete(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := r.pool.Exec(ctx, `DELETE FROM videos WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}

// ClearAll wipes every video and the search log, returning the number of
// videos removed.
func (r *VideoRepo) ClearAll(ctx context.Context) (int, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	var count int
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM videos`).Scan(&count); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM videos`); err != nil {
		return 0, err
	}
	if _, err := tx.Exec(ctx, `DELETE FROM search_logs`); err != nil {
		return 0, err
	}
	return count, tx.Commit(ctx)
}

// Find returns one video by its database id.
func (r *VideoRepo) Find(ctx context.Context, id int64) (*model.Video, error) {
	return scanVideo(r.pool.QueryRow(ctx, `
		SELECT `+videoColumns+` FROM videos WHERE id = $1`, id))
}
