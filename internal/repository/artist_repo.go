package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jzynonet/warner-music-guardian/internal/model"
)

type ArtistRepo struct {
	pool *pgxpool.Pool
}

func NewArtistRepo(pool *pgxpool.Pool) *ArtistRepo {
	return &ArtistRepo{pool: pool}
}

const artistColumns = `id, name, email, contact_person, notes, active, created_at`

func scanArtist(row pgx.Row) (*model.Artist, error) {
	var a model.Artist
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.ContactPerson, &a.Notes, &a.Active, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// List returns all artists, newest first.
func (r *ArtistRepo) List(ctx context.Context) ([]model.Artist, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT `+artistColumns+` FROM artists ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []model.Artist
	for rows.Next() {
		a, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		artists = append(artists, *a)
	}
	return artists, rows.Err()
}

// Find returns a single artist by id.
func (r *ArtistRepo) Find(ctx context.Context, id int64) (*model.Artist, error) {
	return scanArtist(r.pool.QueryRow(ctx, `
		SELECT `+artistColumns+` FROM artists WHERE id = $1`, id))
}

// FindByName matches artist names case-insensitively, the identity rule used
// by catalog imports.
func (r *ArtistRepo) FindByName(ctx context.Context, name string) (*model.Artist, error) {
	return scanArtist(r.pool.QueryRow(ctx, `
		SELECT `+artistColumns+` FROM artists WHERE LOWER(name) = LOWER($1)`, strings.TrimSpace(name)))
}

// Create inserts a new artist. Returns 0 when the name already exists.
func (r *ArtistRepo) Create(ctx context.Context, req model.ArtistRequest) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `
		INSERT INTO artists (name, email, contact_person, notes)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (name) DO NOTHING
		RETURNING id`,
		strings.TrimSpace(req.Name), req.Email, req.ContactPerson, req.Notes).Scan(&id)
	if err == pgx.ErrNoRows {
		return 0, nil
	}
	return id, err
}

// Update applies the non-nil fields of req. Returns false when no row matched.
func (r *ArtistRepo) Update(ctx context.Context, id int64, req model.ArtistRequest) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE artists
		SET name           = COALESCE(NULLIF($2, ''), name),
		    email          = COALESCE($3, email),
		    contact_person = COALESCE($4, contact_person),
		    notes          = COALESCE($5, notes),
		    active         = COALESCE($6, active)
		WHERE id = $1`,
		id, strings.TrimSpace(req.Name), req.Email, req.ContactPerson, req.Notes, req.Active)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Delete removes an artist. Returns false when no row matched.
func (r *ArtistRepo) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM artists WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Count returns the number of artists.
func (r *ArtistRepo) Count(ctx context.Context) (int, error) {
	var n int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM artists`).Scan(&n)
	return n, err
}
