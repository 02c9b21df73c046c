// Package issue implements the Issue repository using PostgreSQL.
package issue

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/issuetracker/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker/internal/domain"
)

// Repo provides issue persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new issue repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Reads
// ---------------------------------------------------------------------------

// GetByID returns an issue by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Issue, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	issue, err := scanIssue(q.QueryRow(ctx, `SELECT `+issueColumns+` FROM issues WHERE id = $1`, id))
	if err != nil {
		return nil, postgres.MapError(err, "issue", id)
	}
	return &issue, nil
}

// List returns the issues matching query in its requested order.
func (r *Repo) List(ctx context.Context, query domain.IssueQuery) ([]domain.Issue, error) {
	sql, args, err := buildListQuery(query).ToSql()
	if err != nil {
		return nil, fmt.Errorf("build issue list query: %w", err)
	}
	return r.query(ctx, sql, args...)
}

// Recent returns the most recently created issues, newest first.
func (r *Repo) Recent(ctx context.Context, limit int) ([]domain.Issue, error) {
	return r.query(ctx,
		`SELECT `+issueColumns+` FROM issues ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit,
	)
}

// Count returns the total number of issues.
func (r *Repo) Count(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var n int
	if err := q.QueryRow(ctx, `SELECT count(*) FROM issues`).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "issue", 0)
	}
	return n, nil
}

// CountByStatus returns one entry per status, including statuses with zero issues,
// in workflow order.
func (r *Repo) CountByStatus(ctx context.Context) ([]domain.StatusCount, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, `SELECT status, count(*) FROM issues GROUP BY status`)
	if err != nil {
		return nil, postgres.MapError(err, "issue", 0)
	}
	defer rows.Close()

	counts := make(map[domain.IssueStatus]int, len(domain.IssueStatuses))
	for rows.Next() {
		var (
			status string
			n      int
		)
		if err := rows.Scan(&status, &n); err != nil {
			return nil, postgres.MapError(err, "issue", 0)
		}
		counts[domain.IssueStatus(status)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "issue", 0)
	}

	out := make([]domain.StatusCount, 0, len(domain.IssueStatuses))
	for _, s := range domain.IssueStatuses {
		out = append(out, domain.StatusCount{Status: s, Count: counts[s]})
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Writes
// ---------------------------------------------------------------------------

// Create inserts a new issue authored by authorID.
func (r *Repo) Create(ctx context.Context, authorID int64, f domain.IssueFields) (*domain.Issue, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	issue, err := scanIssue(q.QueryRow(ctx,
		`INSERT INTO issues (title, description, status, priority, author_id, assignee_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+issueColumns,
		f.Title, f.Description, string(f.Status), string(f.Priority), authorID, f.AssigneeID,
	))
	if err != nil {
		return nil, postgres.MapError(err, "issue", 0)
	}
	return &issue, nil
}

// Update replaces every editable field of the issue.
func (r *Repo) Update(ctx context.Context, id int64, f domain.IssueFields) (*domain.Issue, error) {
	return r.updateReturning(ctx, id,
		`UPDATE issues SET title = $2, description = $3, status = $4, priority = $5, assignee_id = $6
		 WHERE id = $1 RETURNING `+issueColumns,
		f.Title, f.Description, string(f.Status), string(f.Priority), f.AssigneeID,
	)
}

// UpdateStatus sets only the status column.
func (r *Repo) UpdateStatus(ctx context.Context, id int64, status domain.IssueStatus) (*domain.Issue, error) {
	return r.updateReturning(ctx, id,
		`UPDATE issues SET status = $2 WHERE id = $1 RETURNING `+issueColumns,
		string(status),
	)
}

// UpdatePriority sets only the priority column.
func (r *Repo) UpdatePriority(ctx context.Context, id int64, priority domain.IssuePriority) (*domain.Issue, error) {
	return r.updateReturning(ctx, id,
		`UPDATE issues SET priority = $2 WHERE id = $1 RETURNING `+issueColumns,
		string(priority),
	)
}

// UpdateAssignee sets only the assignee column; nil clears it.
func (r *Repo) UpdateAssignee(ctx context.Context, id int64, assigneeID *int64) (*domain.Issue, error) {
	return r.updateReturning(ctx, id,
		`UPDATE issues SET assignee_id = $2 WHERE id = $1 RETURNING `+issueColumns,
		assigneeID,
	)
}

// Delete removes the issue; its comments go with it.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM issues WHERE id = $1`, id)
	if err != nil {
		return postgres.MapError(err, "issue", id)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("issue %d: %w", id, domain.ErrNotFound)
	}
	return nil
}

// DeleteAll removes every issue and, by cascade, every comment.
func (r *Repo) DeleteAll(ctx context.Context) (int64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, `DELETE FROM issues`)
	if err != nil {
		return 0, postgres.MapError(err, "issue", 0)
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) updateReturning(ctx context.Context, id int64, sql string, args ...any) (*domain.Issue, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	issue, err := scanIssue(q.QueryRow(ctx, sql, append([]any{id}, args...)...))
	if err != nil {
		return nil, postgres.MapError(err, "issue", id)
	}
	return &issue, nil
}

func (r *Repo) query(ctx context.Context, sql string, args ...any) ([]domain.Issue, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "issue", 0)
	}

	issues, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Issue, error) {
		return scanIssue(row)
	})
	if err != nil {
		return nil, postgres.MapError(err, "issue", 0)
	}
	return issues, nil
}

func scanIssue(row pgx.Row) (domain.Issue, error) {
	var (
		i        domain.Issue
		status   string
		priority string
	)
	err := row.Scan(&i.ID, &i.Title, &i.Description, &status, &priority,
		&i.AuthorID, &i.AssigneeID, &i.CreatedAt, &i.UpdatedAt)
	i.Status = domain.IssueStatus(status)
	i.Priority = domain.IssuePriority(priority)
	return i, err
}
