package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

type AutoUpdateRepo struct {
	pool *pgxpool.Pool
}

func NewAutoUpdateRepo(pool *pgxpool.Pool) *AutoUpdateRepo {
	return &AutoUpdateRepo{pool: pool}
}

const autoUpdateColumns = `c.id, c.artist_id, a.name, c.enabled, c.frequency, c.source,
	c.last_check, c.last_update, c.songs_count`

func scanAutoUpdate(row pgx.Row) (*model.AutoUpdateConfig, error) {
	var c model.AutoUpdateConfig
	err := row.Scan(&c.ID, &c.ArtistID, &c.ArtistName, &c.Enabled, &c.Frequency,
		&c.Source, &c.LastCheck, &c.LastUpdate, &c.SongsCount)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// List returns every artist's auto-update config joined to the artist name.
func (r *AutoUpdateRepo) List(ctx context.Context) ([]model.AutoUpdateConfig, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+autoUpdateColumns+`
		FROM auto_update_config c
		JOIN artists a ON a.id = c.artist_id
		ORDER BY a.name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var configs []model.AutoUpdateConfig
	for rows.Next() {
		c, err := scanAutoUpdate(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, *c)
	}
	return configs, rows.Err()
}

// Find returns one artist's config.
func (r *AutoUpdateRepo) Find(ctx context.Context, artistID int64) (*model.AutoUpdateConfig, error) {
	return scanAutoUpdate(r.pool.QueryRow(ctx, `
		SELECT `+autoUpdateColumns+`
		FROM auto_update_config c
		JOIN artists a ON a.id = c.artist_id
		WHERE c.artist_id = $1`, artistID))
}

// Enable upserts the config for an artist, turning it on with the given
// frequency and source.
func (r *AutoUpdateRepo) Enable(ctx context.Context, artistID int64, frequency, source string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO auto_update_config (artist_id, enabled, frequency, source)
		VALUES ($1, true, $2, $3)
		ON CONFLICT (artist_id) DO UPDATE
		SET enabled = true, frequency = EXCLUDED.frequency, source = EXCLUDED.source`,
		artistID, frequency, source)
	return err
}

// Disable turns off auto-update for an artist. Returns false when the artist
// had no config.
func (r *AutoUpdateRepo) Disable(ctx context.Context, artistID int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE auto_update_config SET enabled = false WHERE artist_id = $1`, artistID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// MarkChecked records a completed refresh attempt. newSongs > 0 also bumps
// last_update and the stored song count.
func (r *AutoUpdateRepo) MarkChecked(ctx context.Context, artistID int64, newSongs, totalSongs int) error {
	now := time.Now()
	if newSongs > 0 {
		_, err := r.pool.Exec(ctx, `
			UPDATE auto_update_config
			SET last_check = $2, last_update = $2, songs_count = $3
			WHERE artist_id = $1`, artistID, now, totalSongs)
		return err
	}
	_, err := r.pool.Exec(ctx, `
		UPDATE auto_update_config SET last_check = $2 WHERE artist_id = $1`, artistID, now)
	return err
}
