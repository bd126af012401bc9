package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/Clark-Hu/movie-catalog/internal/domain"
)

// MoviesRepository provides persistence helpers for movie entities.
type MoviesRepository struct {
	db DBTX
}

const movieColumns = `
    m.id,
    m.title,
    m.description,
    m.trailer,
    m.year,
    m.rating,
    m.director_id,
    d.name,
    m.genre_id,
    g.name
`

const movieJoins = `
    LEFT JOIN director d ON d.id = m.director_id
    LEFT JOIN genre g ON g.id = m.genre_id
`

// MovieCreateParams bundles the fields accepted when creating a movie.
// Zero values match the column defaults.
type MovieCreateParams struct {
	Title       string
	Description string
	Trailer     string
	Year        int
	Rating      float64
	DirectorID  *int64
	GenreID     *int64
}

// RefUpdate describes a change to a nullable foreign key. When Set is false the
// column is left alone; a nil ID clears it.
type RefUpdate struct {
	Set bool
	ID  *int64
}

// MovieUpdateParams holds a partial update; nil fields are left untouched.
type MovieUpdateParams struct {
	Title       *string
	Description *string
	Trailer     *string
	Year        *int
	Rating      *float64
	DirectorID  RefUpdate
	GenreID     RefUpdate
}

// Empty reports whether the update changes nothing.
func (p MovieUpdateParams) Empty() bool {
	return p.Title == nil && p.Description == nil && p.Trailer == nil &&
		p.Year == nil && p.Rating == nil && !p.DirectorID.Set && !p.GenreID.Set
}

// MovieListFilters narrows List by foreign keys. Nil filters match everything.
type MovieListFilters struct {
	DirectorID *int64
	GenreID    *int64
}

// Create inserts a new movie row and returns it with its relations resolved.
func (r *MoviesRepository) Create(ctx context.Context, params MovieCreateParams) (domain.Movie, error) {
	query := fmt.Sprintf(`
        WITH m AS (
            INSERT INTO movie (title, description, trailer, year, rating, director_id, genre_id)
            VALUES ($1,$2,$3,$4,$5,$6,$7)
            RETURNING *
        )
        SELECT %s FROM m %s
    `, movieColumns, movieJoins)

	row := r.db.QueryRow(ctx, query,
		params.Title, params.Description, params.Trailer, params.Year, params.Rating, params.DirectorID, params.GenreID)
	movie, err := scanMovie(row)
	if err != nil {
		return domain.Movie{}, translateError(err)
	}
	return movie, nil
}

// GetByID fetches a movie by its identifier.
func (r *MoviesRepository) GetByID(ctx context.Context, id int64) (domain.Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM movie m %s WHERE m.id = $1`, movieColumns, movieJoins)
	movie, err := scanMovie(r.db.QueryRow(ctx, query, id))
	if err != nil {
		return domain.Movie{}, translateError(err)
	}
	return movie, nil
}

// List returns the movies matching filters in id order.
func (r *MoviesRepository) List(ctx context.Context, filters MovieListFilters) ([]domain.Movie, error) {
	where := make([]string, 0, 2)
	args := make([]any, 0, 2)
	arg := func(value any) string {
		args = append(args, value)
		return fmt.Sprintf("$%d", len(args))
	}

	if filters.DirectorID != nil {
		where = append(where, "m.director_id = "+arg(*filters.DirectorID))
	}
	if filters.GenreID != nil {
		where = append(where, "m.genre_id = "+arg(*filters.GenreID))
	}

	var query strings.Builder
	query.WriteString("SELECT ")
	query.WriteString(movieColumns)
	query.WriteString(" FROM movie m ")
	query.WriteString(movieJoins)
	if len(where) > 0 {
		query.WriteString(" WHERE ")
		query.WriteString(strings.Join(where, " AND "))
	}
	query.WriteString(" ORDER BY m.id")

	rows, err := r.db.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Movie, 0)
	for rows.Next() {
		movie, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, movie)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

// Update applies the non-nil fields of params to the movie with the given id.
// It fails with ErrNotFound when no row matched and ErrNotUpdated when more
// than one did; callers running inside InTx get the change rolled back.
func (r *MoviesRepository) Update(ctx context.Context, id int64, params MovieUpdateParams) error {
	if params.Empty() {
		var exists bool
		if err := r.db.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM movie WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return nil
	}

	set := make([]string, 0, 7)
	args := []any{id}
	assign := func(column string, value any) {
		args = append(args, value)
		set = append(set, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if params.Title != nil {
		assign("title", *params.Title)
	}
	if params.Description != nil {
		assign("description", *params.Description)
	}
	if params.Trailer != nil {
		assign("trailer", *params.Trailer)
	}
	if params.Year != nil {
		assign("year", *params.Year)
	}
	if params.Rating != nil {
		assign("rating", *params.Rating)
	}
	if params.DirectorID.Set {
		assign("director_id", params.DirectorID.ID)
	}
	if params.GenreID.Set {
		assign("genre_id", params.GenreID.ID)
	}

	query := fmt.Sprintf(`UPDATE movie SET %s WHERE id = $1`, strings.Join(set, ", "))
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return translateError(err)
	}
	return checkAffected(tag.RowsAffected())
}

// Delete removes the movie with the given id.
func (r *MoviesRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM movie WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func checkAffected(n int64) error {
	switch {
	case n == 0:
		return ErrNotFound
	case n > 1:
		return fmt.Errorf("%w: %d rows affected", ErrNotUpdated, n)
	}
	return nil
}

func scanMovie(row pgx.Row) (domain.Movie, error) {
	var movie domain.Movie
	err := row.Scan(
		&movie.ID,
		&movie.Title,
		&movie.Description,
		&movie.Trailer,
		&movie.Year,
		&movie.Rating,
		&movie.DirectorID,
		&movie.Director,
		&movie.GenreID,
		&movie.Genre,
	)
	if err != nil {
		return domain.Movie{}, err
	}
	return movie, nil
}
