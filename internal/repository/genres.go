package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// GenresRepository provides persistence helpers for genres.
type GenresRepository struct {
	db DBTX
}

// Create inserts a genre and returns it with its assigned id.
func (r *GenresRepository) Create(ctx context.Context, name string) (domain.Genre, error) {
	var genre domain.Genre
	err := r.db.QueryRow(ctx, `INSERT INTO genre (name) VALUES ($1) RETURNING id, name`, name).
		Scan(&genre.ID, &genre.Name)
	if err != nil {
		return domain.Genre{}, err
	}
	return genre, nil
}

// GetByID fetches a single genre.
func (r *GenresRepository) GetByID(ctx context.Context, id int64) (domain.Genre, error) {
	var genre domain.Genre
	err := r.db.QueryRow(ctx, `SELECT id, name FROM genre WHERE id = $1`, id).
		Scan(&genre.ID, &genre.Name)
	if err != nil {
		return domain.Genre{}, translateError(err)
	}
	return genre, nil
}

// List returns every genre in id order.
func (r *GenresRepository) List(ctx context.Context) ([]domain.Genre, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM genre ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Genre, error) {
		var g domain.Genre
		err := row.Scan(&g.ID, &g.Name)
		return g, err
	})
}

// Rename sets the genre's name. A nil name only checks that the row exists.
func (r *GenresRepository) Rename(ctx context.Context, id int64, name *string) error {
	tag, err := r.db.Exec(ctx, `UPDATE genre SET name = COALESCE($2, name) WHERE id = $1`, id, name)
	if err != nil {
		return err
	}
	return checkAffected(tag.RowsAffected())
}

// Delete removes a genre; movies pointing at it lose the reference.
func (r *GenresRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM genre WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
