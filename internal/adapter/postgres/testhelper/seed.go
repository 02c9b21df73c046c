package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser inserts a user with a unique email and returns it.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := UniqueSuffix()
	name := "Test User " + suffix
	user := domain.User{
		Email: "testuser-" + suffix + "@example.com",
		Name:  &name,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (email, name) VALUES ($1, $2) RETURNING id, created_at`,
		user.Email, user.Name,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return user
}

// IssueOption customises a seeded issue.
type IssueOption func(*domain.Issue)

// WithStatus sets the seeded issue's status.
func WithStatus(s domain.IssueStatus) IssueOption {
	return func(i *domain.Issue) { i.Status = s }
}

// WithPriority sets the seeded issue's priority.
func WithPriority(p domain.IssuePriority) IssueOption {
	return func(i *domain.Issue) { i.Priority = p }
}

// WithAssignee sets the seeded issue's assignee.
func WithAssignee(id int64) IssueOption {
	return func(i *domain.Issue) { i.AssigneeID = &id }
}

// SeedIssue inserts an issue authored by authorID. Defaults: OPEN, MEDIUM, unassigned.
func SeedIssue(t *testing.T, pool *pgxpool.Pool, authorID int64, title string, opts ...IssueOption) domain.Issue {
	t.Helper()

	issue := domain.Issue{
		Title:    title,
		Status:   domain.IssueStatusOpen,
		Priority: domain.IssuePriorityMedium,
		AuthorID: authorID,
	}
	for _, opt := range opts {
		opt(&issue)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO issues (title, description, status, priority, author_id, assignee_id)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at, updated_at`,
		issue.Title, issue.Description, string(issue.Status), string(issue.Priority), issue.AuthorID, issue.AssigneeID,
	).Scan(&issue.ID, &issue.CreatedAt, &issue.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedIssue: %v", err)
	}

	return issue
}

// SeedComment inserts a comment on issueID by authorID.
func SeedComment(t *testing.T, pool *pgxpool.Pool, issueID, authorID int64, content string) domain.Comment {
	t.Helper()

	c := domain.Comment{Content: content, IssueID: issueID, AuthorID: authorID}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO comments (content, issue_id, author_id) VALUES ($1, $2, $3) RETURNING id, created_at`,
		c.Content, c.IssueID, c.AuthorID,
	).Scan(&c.ID, &c.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedComment: %v", err)
	}

	return c
}
