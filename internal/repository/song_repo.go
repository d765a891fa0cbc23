package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

type SongRepo struct {
	pool *pgxpool.Pool
}

func NewSongRepo(pool *pgxpool.Pool) *SongRepo {
	return &SongRepo{pool: pool}
}

const songColumns = `id, song_name, artist_name, active, artist_id, auto_flag, priority, duration_ms, created_at`

func scanSong(row pgx.Row) (*model.Song, error) {
	var s model.Song
	err := row.Scan(&s.ID, &s.SongName, &s.ArtistName, &s.Active, &s.ArtistID,
		&s.AutoFlag, &s.Priority, &s.DurationMS, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

// List returns all songs, optionally scoped to one artist.
func (r *SongRepo) List(ctx context.Context, artistID int64) ([]model.Song, error) {
	query := `SELECT ` + songColumns + ` FROM songs`
	var params []any
	if artistID != 0 {
		query += ` WHERE artist_id = $1`
		params = append(params, artistID)
	}
	query += ` ORDER BY artist_name, song_name`

	rows, err := r.pool.Query(ctx, query, params...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []model.Song
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, *s)
	}
	return songs, rows.Err()
}

// ListActive returns the active songs used by the song search pipeline.
func (r *SongRepo) ListActive(ctx context.Context) ([]model.Song, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+songColumns+` FROM songs WHERE active = true ORDER BY artist_name, song_name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var songs []model.Song
	for rows.Next() {
		s, err := scanSong(rows)
		if err != nil {
			return nil, err
		}
		songs = append(songs, *s)
	}
	return songs, rows.Err()
}

// Create inserts a song. Returns 0 when the song/artist pair already exists.
func (r *SongRepo) Create(ctx context.Context, req model.SongRequest) (int64, error) {
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO songs (song_name, artist_name, artist_id, auto_flag, priority, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (song_name, artist_name) DO NOTHING
		RETURNING id`,
		strings.TrimSpace(req.SongName), strings.TrimSpace(req.ArtistName),
		req.ArtistID, req.AutoFlag, priority, req.DurationMS).Scan(&id)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	return id, err
}

// BulkCreate inserts many songs, counting duplicates as skipped.
func (r *SongRepo) BulkCreate(ctx context.Context, reqs []model.SongRequest) (model.BulkResult, error) {
	var res model.BulkResult
	for _, req := range reqs {
		id, err := r.Create(ctx, req)
		if err != nil {
			res.Errors = append(res.Errors, req.SongName+": "+err.Error())
			res.Skipped++
			continue
		}
		if id == 0 {
			res.Skipped++
			continue
		}
		res.Added++
	}
	return res, nil
}

// Update applies the non-nil fields of req.
func (r *SongRepo) Update(ctx context.Context, id int64, req model.SongUpdateRequest) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE songs
		SET active    = COALESCE($2, active),
		    auto_flag = COALESCE($3, auto_flag),
		    priority  = COALESCE($4, priority)
		WHERE id = $1`,
		id, req.Active, req.AutoFlag, req.Priority)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes one song.
func (r *SongRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM songs WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Clear removes all songs, or only one artist's when artistID is non-zero.
// Returns the number removed.
func (r *SongRepo) Clear(ctx context.Context, artistID int64) (int, error) {
	var (
		tag pgconn.CommandTag
		err error
	)
	if artistID != 0 {
		tag, err = r.pool.Exec(ctx, `DELETE FROM songs WHERE artist_id = $1`, artistID)
	} else {
		tag, err = r.pool.Exec(ctx, `DELETE FROM songs`)
	}
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
