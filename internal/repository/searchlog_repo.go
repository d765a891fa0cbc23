package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

type SearchLogRepo struct {
	pool *pgxpool.Pool
}

func NewSearchLogRepo(pool *pgxpool.Pool) *SearchLogRepo {
	return &SearchLogRepo{pool: pool}
}

// Insert records one executed search term.
func (r *SearchLogRepo) Insert(ctx context.Context, keyword string, results int, success bool, errMsg string) error {
	var msg *string
	if errMsg != "" {
		msg = &errMsg
	}
	_, err := r.pool.Exec(ctx, `
		INSERT INTO search_logs (keyword, results_count, success, error_message)
		VALUES ($1, $2, $3, $4)`,
		keyword, results, success, msg)
	return err
}

// List returns the most recent log entries, newest first.
func (r *SearchLogRepo) List(ctx context.Context, limit int) ([]model.SearchLog, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx, `
		SELECT id, keyword, results_count, "timestamp", success, error_message
		FROM search_logs
		ORDER BY "timestamp" DESC
		LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var logs []model.SearchLog
	for rows.Next() {
		var l model.SearchLog
		if err := rows.Scan(&l.ID, &l.Keyword, &l.ResultsCount, &l.Timestamp,
			&l.Success, &l.ErrorMessage); err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// LastSearch returns the most recent search timestamp, or nil when no search
// has run yet.
func (r *SearchLogRepo) LastSearch(ctx context.Context) (*time.Time, error) {
	var ts time.Time
	err := r.pool.QueryRow(ctx, `
		SELECT "timestamp" FROM search_logs ORDER BY "timestamp" DESC LIMIT 1`).Scan(&ts)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &ts, nil
}
