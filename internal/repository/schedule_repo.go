package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

// ScheduleRepo reads and writes the single global auto-search schedule row.
type ScheduleRepo struct {
	pool *pgxpool.Pool
}

func NewScheduleRepo(pool *pgxpool.Pool) *ScheduleRepo {
	return &ScheduleRepo{pool: pool}
}

// Get returns the current schedule.
func (r *ScheduleRepo) Get(ctx context.Context) (*model.ScheduleConfig, error) {
	var c model.ScheduleConfig
	err := r.pool.QueryRow(ctx, `
		SELECT enabled, interval_hours, updated_at FROM schedule_config WHERE id = 1`).
		Scan(&c.Enabled, &c.IntervalHours, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Set replaces the schedule.
func (r *ScheduleRepo) Set(ctx context.Context, enabled bool, intervalHours int) error {
	_, err := r.pool.Exec(ctx, `
		UPDATE schedule_config
		SET enabled = $1, interval_hours = $2, updated_at = NOW()
		WHERE id = 1`, enabled, intervalHours)
	return err
}
