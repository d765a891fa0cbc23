package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

type KeywordRepo struct {
	pool *pgxpool.Pool
}

func NewKeywordRepo(pool *pgxpool.Pool) *KeywordRepo {
	return &KeywordRepo{pool: pool}
}

const keywordColumns = `id, keyword, active, artist_id, auto_flag, priority, created_at`

func scanKeyword(row pgx.Row) (*model.Keyword, error) {
	var k model.Keyword
	err := row.Scan(&k.ID, &k.Keyword, &k.Active, &k.ArtistID, &k.AutoFlag, &k.Priority, &k.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// List returns all keywords, newest first.
func (r *KeywordRepo) List(ctx context.Context) ([]model.Keyword, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+keywordColumns+` FROM keywords ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []model.Keyword
	for rows.Next() {
		k, err := scanKeyword(rows)
		if err != nil {
			return nil, err
		}
		keywords = append(keywords, *k)
	}
	return keywords, rows.Err()
}

// ListActive returns the keywords the search pipeline runs by default.
func (r *KeywordRepo) ListActive(ctx context.Context) ([]model.Keyword, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+keywordColumns+` FROM keywords WHERE active = true ORDER BY keyword`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var keywords []model.Keyword
	for rows.Next() {
		k, err := scanKeyword(rows)
		if err != nil {
			return nil, err
		}
		keywords = append(keywords, *k)
	}
	return keywords, rows.Err()
}

// FindByTerm returns a keyword by its exact term, used to attach flagging
// settings to search hits.
func (r *KeywordRepo) FindByTerm(ctx context.Context, term string) (*model.Keyword, error) {
	return scanKeyword(r.pool.QueryRow(ctx, `
		SELECT `+keywordColumns+` FROM keywords WHERE keyword = $1`, term))
}

// Create inserts a keyword. Returns 0 when the term already exists.
func (r *KeywordRepo) Create(ctx context.Context, req model.KeywordRequest) (int64, error) {
	priority := req.Priority
	if priority == "" {
		priority = model.PriorityMedium
	}
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO keywords (keyword, artist_id, auto_flag, priority)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (keyword) DO NOTHING
		RETURNING id`,
		strings.TrimSpace(req.Keyword), req.ArtistID, req.AutoFlag, priority).Scan(&id)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	return id, err
}

// BulkCreate inserts parsed CSV rows, counting duplicates as skipped. Rows
// naming an unknown artist import without the artist link.
func (r *KeywordRepo) BulkCreate(ctx context.Context, rows []model.KeywordImportRow, resolveArtist func(string) *int64) (model.BulkResult, error) {
	var res model.BulkResult
	for _, row := range rows {
		req := model.KeywordRequest{
			Keyword:  row.Keyword,
			AutoFlag: row.AutoFlag,
			Priority: row.Priority,
		}
		if row.ArtistName != "" && resolveArtist != nil {
			req.ArtistID = resolveArtist(row.ArtistName)
		}
		id, err := r.Create(ctx, req)
		if err != nil {
			res.Errors = append(res.Errors, row.Keyword+": "+err.Error())
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
func (r *KeywordRepo) Update(ctx context.Context, id int64, req model.KeywordUpdateRequest) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE keywords
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

// Delete removes one keyword.
func (r *KeywordRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM keywords WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Clear removes all keywords, or only one artist's when artistID is non-zero.
// Returns the number removed.
func (r *KeywordRepo) Clear(ctx context.Context, artistID int64) (int, error) {
	var (
		tag pgconn.CommandTag
		err error
	)
	if artistID != 0 {
		tag, err = r.pool.Exec(ctx, `DELETE FROM keywords WHERE artist_id = $1`, artistID)
	} else {
		tag, err = r.pool.Exec(ctx, `DELETE FROM keywords`)
	}
	if err != nil {
		return 0, err
	}
	return int(tag.RowsAffected()), nil
}
