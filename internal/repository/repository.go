package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Clark-Hu/movie-catalog/internal/store"
)

var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("repository: not found")
	// ErrInvalidReference is returned when a movie points at a director or genre that does not exist.
	ErrInvalidReference = errors.New("repository: invalid reference")
	// ErrNotUpdated signals that an update touched an unexpected number of rows.
	ErrNotUpdated = errors.New("repository: not updated")
)

const foreignKeyViolation = "23503"

// DBTX is satisfied by both *pgxpool.Pool and pgx.Tx so repositories can run
// inside or outside a transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Repository aggregates all domain-specific repositories.
type Repository struct {
	db        DBTX
	Movies    *MoviesRepository
	Directors *DirectorsRepository
	Genres    *GenresRepository
}

// New constructs a Repository backed by the provided store.
func New(st *store.Store) *Repository {
	return NewWithPool(st.Pool())
}

// NewWithPool allows constructing repositories directly from a pgx pool.
func NewWithPool(pool *pgxpool.Pool) *Repository {
	return bind(pool)
}

func bind(db DBTX) *Repository {
	return &Repository{
		db:        db,
		Movies:    &MoviesRepository{db: db},
		Directors: &DirectorsRepository{db: db},
		Genres:    &GenresRepository{db: db},
	}
}

// InTx runs fn against repositories bound to a single transaction. The
// transaction commits when fn returns nil and rolls back on error or panic.
// Calling InTx on a transaction-bound Repository opens a savepoint.
func (r *Repository) InTx(ctx context.Context, fn func(tx *Repository) error) error {
	return pgx.BeginFunc(ctx, r.db, func(tx pgx.Tx) error {
		return fn(bind(tx))
	})
}

func translateError(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
		return ErrInvalidReference
	}
	return err
}
