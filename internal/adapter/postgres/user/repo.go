// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/issuetracker/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker/internal/domain"
)

const userColumns = "id, email, name, image, created_at"

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return &u, nil
}

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email))
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return &u, nil
}

// GetByIDs returns the users with the given IDs in no particular order.
// Missing IDs are silently skipped.
func (r *Repo) GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	if len(ids) == 0 {
		return []domain.User{}, nil
	}

	query, args, err := postgres.Builder().
		Select(userColumns).
		From("users").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build users by ids query: %w", err)
	}

	return r.query(ctx, query, args...)
}

// List returns every user ordered by name, then email.
func (r *Repo) List(ctx context.Context) ([]domain.User, error) {
	return r.query(ctx, `SELECT `+userColumns+` FROM users ORDER BY name NULLS LAST, email`)
}

// Upsert inserts a user keyed by email. An existing user is never changed,
// except that a missing name or image is filled in.
func (r *Repo) Upsert(ctx context.Context, email string, name, image *string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx,
		`INSERT INTO users (email, name, image) VALUES ($1, $2, $3)
		 ON CONFLICT (email) DO UPDATE SET
		     name  = COALESCE(users.name, EXCLUDED.name),
		     image = COALESCE(users.image, EXCLUDED.image)
		 RETURNING `+userColumns,
		email, name, image,
	)

	u, err := scanUser(row)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return &u, nil
}

// DeleteAll removes every user. Issues and comments must be removed first.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM users`)
	if err != nil {
		return 0, postgres.MapError(err, "user", 0)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}

	users, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.User, error) {
		return scanUser(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "user", 0)
	}
	return users, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.Image, &u.CreatedAt)
	return u, err
}
