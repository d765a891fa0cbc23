package db

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate applies the schema. Statements are idempotent so the service can
// run them on every boot.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS artists (
			id             BIGSERIAL PRIMARY KEY,
			name           TEXT NOT NULL UNIQUE,
			email          TEXT,
			contact_person TEXT,
			notes          TEXT,
			active         BOOLEAN NOT NULL DEFAULT true,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS songs (
			id          BIGSERIAL PRIMARY KEY,
			song_name   TEXT NOT NULL,
			artist_name TEXT NOT NULL,
			active      BOOLEAN NOT NULL DEFAULT true,
			artist_id   BIGINT REFERENCES artists(id) ON DELETE SET NULL,
			auto_flag   BOOLEAN NOT NULL DEFAULT false,
			priority    TEXT NOT NULL DEFAULT 'Medium',
			duration_ms BIGINT,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (song_name, artist_name)
		)`,
		`CREATE TABLE IF NOT EXISTS keywords (
			id         BIGSERIAL PRIMARY KEY,
			keyword    TEXT NOT NULL UNIQUE,
			active     BOOLEAN NOT NULL DEFAULT true,
			artist_id  BIGINT REFERENCES artists(id) ON DELETE SET NULL,
			auto_flag  BOOLEAN NOT NULL DEFAULT false,
			priority   TEXT NOT NULL DEFAULT 'Medium',
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS videos (
			id              BIGSERIAL PRIMARY KEY,
			video_id        TEXT NOT NULL UNIQUE,
			title           TEXT NOT NULL,
			channel_name    TEXT NOT NULL DEFAULT '',
			channel_id      TEXT NOT NULL DEFAULT '',
			publish_date    TEXT NOT NULL DEFAULT '',
			thumbnail_url   TEXT NOT NULL DEFAULT '',
			video_url       TEXT NOT NULL DEFAULT '',
			matched_keyword TEXT NOT NULL DEFAULT '',
			status          TEXT NOT NULL DEFAULT 'Pending',
			priority        TEXT NOT NULL DEFAULT 'Medium',
			artist_id       BIGINT REFERENCES artists(id) ON DELETE SET NULL,
			auto_flagged    BOOLEAN NOT NULL DEFAULT false,
			ai_risk_score   INT NOT NULL DEFAULT 0,
			ai_risk_level   TEXT,
			ai_reason       TEXT,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_videos_status ON videos (status)`,
		`CREATE INDEX IF NOT EXISTS idx_videos_artist ON videos (artist_id)`,
		`CREATE TABLE IF NOT EXISTS auto_flag_rules (
			id          BIGSERIAL PRIMARY KEY,
			name        TEXT NOT NULL UNIQUE,
			description TEXT,
			conditions  JSONB NOT NULL,
			action      TEXT NOT NULL DEFAULT 'flag',
			active      BOOLEAN NOT NULL DEFAULT true,
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS search_logs (
			id            BIGSERIAL PRIMARY KEY,
			keyword       TEXT NOT NULL,
			results_count INT NOT NULL DEFAULT 0,
			"timestamp"   TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			success       BOOLEAN NOT NULL DEFAULT true,
			error_message TEXT,
			artist_id     BIGINT
		)`,
		`CREATE TABLE IF NOT EXISTS auto_update_config (
			id          BIGSERIAL PRIMARY KEY,
			artist_id   BIGINT NOT NULL UNIQUE REFERENCES artists(id) ON DELETE CASCADE,
			enabled     BOOLEAN NOT NULL DEFAULT true,
			frequency   TEXT NOT NULL DEFAULT 'weekly',
			source      TEXT NOT NULL DEFAULT 'spotify',
			last_check  TIMESTAMPTZ,
			last_update TIMESTAMPTZ,
			songs_count INT NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS schedule_config (
			id             INT PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			enabled        BOOLEAN NOT NULL DEFAULT false,
			interval_hours INT NOT NULL DEFAULT 24,
			updated_at     TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
		`INSERT INTO schedule_config (id) VALUES (1) ON CONFLICT (id) DO NOTHING`,
	}

	for _, stmt := range stmts {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
