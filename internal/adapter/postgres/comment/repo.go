// Package comment implements the Comment repository using PostgreSQL.
package comment

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/issuetracker/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker/internal/domain"
)

const commentColumns = "id, content, issue_id, author_id, created_at"

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// Create attaches a comment to an issue. A missing issue or author surfaces as
// a NotFoundError naming the missing entity.
func (r *Repo) Create(ctx context.Context, issueID, authorID int64, content string) (*domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanComment(q.QueryRow(ctx,
		`INSERT INTO comments (content, issue_id, author_id) VALUES ($1, $2, $3) RETURNING `+commentColumns,
		content, issueID, authorID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "comment", 0)
	}
	return &c, nil
}

// DeleteAll removes every comment.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM comments`)
	if err != nil {
		return 0, postgres.MapError(err, "comment", 0)
	}
	return tag.RowsAffected(), nil
}

// ListByIssue returns the issue's comments oldest first.
func (r *Repo) ListByIssue(ctx context.Context, issueID int64) ([]domain.Comment, error) {
	sql, args, err := postgres.Builder().
		Select(commentColumns).
		From("comments").
		Where(squirrel.Eq{"issue_id": issueID}).
		OrderBy("created_at", "id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build comments query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]domain.Comment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "comment", 0)
	}

	comments, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Comment, error) {
		return scanComment(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "comment", 0)
	}
	return comments, nil
}

func scanComment(row pgx.Row) (domain.Comment, error) {
	var c domain.Comment
	err := row.Scan(&c.ID, &c.Content, &c.IssueID, &c.AuthorID, &c.CreatedAt)
	return c, err
}
