package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// DirectorsRepository provides persistence helpers for directors.
type DirectorsRepository struct {
	db DBTX
}

// Create inserts a director and returns it with its assigned id.
func (r *DirectorsRepository) Create(ctx context.Context, name string) (domain.Director, error) {
	var director domain.Director
	err := r.db.QueryRow(ctx, `INSERT INTO director (name) VALUES ($1) RETURNING id, name`, name).
		Scan(&director.ID, &director.Name)
	if err != nil {
		return domain.Director{}, err
	}
	return director, nil
}

// GetByID fetches a single director.
func (r *DirectorsRepository) GetByID(ctx context.Context, id int64) (domain.Director, error) {
	var director domain.Director
	err := r.db.QueryRow(ctx, `SELECT id, name FROM director WHERE id = $1`, id).
		Scan(&director.ID, &director.Name)
	if err != nil {
		return domain.Director{}, translateError(err)
	}
	return director, nil
}

// List returns every director in id order.
func (r *DirectorsRepository) List(ctx context.Context) ([]domain.Director, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM director ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Director, error) {
		var d domain.Director
		err := row.Scan(&d.ID, &d.Name)
		return d, err
	})
}

// Rename sets the director's name. A nil name only checks that the row exists.
func (r *DirectorsRepository) Rename(ctx context.Context, id int64, name *string) error {
	tag, err := r.db.Exec(ctx, `UPDATE director SET name = COALESCE($2, name) WHERE id = $1`, id, name)
	if err != nil {
		return err
	}
	return checkAffected(tag.RowsAffected())
}

// Delete removes a director; movies pointing at it lose the reference.
func (r *DirectorsRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM director WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
