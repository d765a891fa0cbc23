package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

// StatsRepo computes the dashboard aggregate with a single round trip per
// table, leaning on FILTER clauses instead of one query per counter.
type StatsRepo struct {
	pool *pgxpool.Pool
}

func NewStatsRepo(pool *pgxpool.Pool) *StatsRepo {
	return &StatsRepo{pool: pool}
}

// Aggregate fills everything except last_search and the auto-update counters,
// which come from their own repositories.
func (r *StatsRepo) Aggregate(ctx context.Context) (*model.Stats, error) {
	var s model.Stats
	err := r.pool.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Pending'),
			COUNT(*) FILTER (WHERE status = 'Reviewed'),
			COUNT(*) FILTER (WHERE status = 'Flagged for Takedown'),
			COUNT(*) FILTER (WHERE priority = 'Low'),
			COUNT(*) FILTER (WHERE priority = 'Medium'),
			COUNT(*) FILTER (WHERE priority = 'High'),
			COUNT(*) FILTER (WHERE priority = 'Critical'),
			COUNT(*) FILTER (WHERE auto_flagged)
		FROM videos`).Scan(
		&s.TotalVideos, &s.Pending, &s.Reviewed, &s.Flagged,
		&s.PriorityLow, &s.PriorityMedium, &s.PriorityHigh, &s.PriorityCritical,
		&s.AutoFlagged)
	if err != nil {
		return nil, err
	}

	err = r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM artists`).Scan(&s.TotalArtists)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
