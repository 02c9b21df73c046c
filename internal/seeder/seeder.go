// Package seeder fills an empty database with the sample users, issues and
// comments used for demos and local development.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type userRepo interface {
	Upsert(ctx context.Context, email string, name, image *string) (*domain.User, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type issueRepo interface {
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, authorID int64, f domain.IssueFields) (*domain.Issue, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type commentRepo interface {
	Create(ctx context.Context, issueID, authorID int64, content string) (*domain.Comment, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// Result summarises one seeding run.
type Result struct {
	Cleared  bool
	Users    int
	Issues   int
	Comments int
	// Skipped is set when issues already existed and Reset was off.
	Skipped  bool
	Duration time.Duration
}

// Seeder writes the sample data set in a single transaction.
type Seeder struct {
	log      *slog.Logger
	tx       txManager
	users    userRepo
	issues   issueRepo
	comments commentRepo
	cfg      Config
}

// New creates a Seeder.
func New(log *slog.Logger, tx txManager, users userRepo, issues issueRepo, comments commentRepo, cfg Config) *Seeder {
	if cfg.MaxCommentsPerIssue <= 0 {
		cfg.MaxCommentsPerIssue = 3
	}
	return &Seeder{
		log:      log.With("component", "seeder"),
		tx:       tx,
		users:    users,
		issues:   issues,
		comments: comments,
		cfg:      cfg,
	}
}

// Run seeds the database. Without Reset it upserts the sample users and adds
// issues only when the issues table is empty, so it is safe to repeat.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	res := &Result{}

	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if s.cfg.Reset {
			if err := s.clear(ctx); err != nil {
				return err
			}
			res.Cleared = true
		}

		ids, err := s.seedUsers(ctx)
		if err != nil {
			return err
		}
		res.Users = len(ids)

		existing, err := s.issues.Count(ctx)
		if err != nil {
			return fmt.Errorf("count issues: %w", err)
		}
		if existing > 0 {
			res.Skipped = true
			return nil
		}

		res.Issues, res.Comments, err = s.seedIssues(ctx, ids)
		return err
	})
	if err != nil {
		return nil, err
	}

	res.Duration = time.Since(start)
	s.log.InfoContext(ctx, "seed completed",
		slog.Bool("cleared", res.Cleared),
		slog.Bool("skipped", res.Skipped),
		slog.Int("users", res.Users),
		slog.Int("issues", res.Issues),
		slog.Int("comments", res.Comments),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}

// clear deletes in foreign-key order.
func (s *Seeder) clear(ctx context.Context) error {
	comments, err := s.comments.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("clear comments: %w", err)
	}
	issues, err := s.issues.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("clear issues: %w", err)
	}
	users, err := s.users.DeleteAll(ctx)
	if err != nil {
		return fmt.Errorf("clear users: %w", err)
	}
	s.log.InfoContext(ctx, "cleared existing data",
		slog.Int64("comments", comments),
		slog.Int64("issues", issues),
		slog.Int64("users", users),
	)
	return nil
}

func (s *Seeder) seedUsers(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(sampleUsers))
	for _, su := range sampleUsers {
		name, image := su.name, su.image
		u, err := s.users.Upsert(ctx, su.email, &name, &image)
		if err != nil {
			return nil, fmt.Errorf("seed user %s: %w", su.email, err)
		}
		ids = append(ids, u.ID)
	}
	return ids, nil
}

func (s *Seeder) seedIssues(ctx context.Context, userIDs []int64) (issues, comments int, err error) {
	for idx, si := range sampleIssues {
		desc := si.description
		fields := domain.IssueFields{
			Title:       si.title,
			Description: &desc,
			Status:      si.status,
			Priority:    si.priority,
		}
		if si.assignee != nobody {
			aid := userIDs[si.assignee]
			fields.AssigneeID = &aid
		}

		created, err := s.issues.Create(ctx, userIDs[si.author], fields)
		if err != nil {
			return 0, 0, fmt.Errorf("seed issue %q: %w", si.title, err)
		}
		issues++

		for i := range idx%s.cfg.MaxCommentsPerIssue + 1 {
			content := commentTexts[(idx*3+i)%len(commentTexts)]
			if _, err := s.comments.Create(ctx, created.ID, userIDs[i%len(userIDs)], content); err != nil {
				return 0, 0, fmt.Errorf("seed comment on %d: %w", created.ID, err)
			}
			comments++
		}
	}
	return issues, comments, nil
}
