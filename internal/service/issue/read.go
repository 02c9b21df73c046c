package issue

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// IssueDetail is an issue with its comments, oldest first.
type IssueDetail struct {
	Issue    domain.Issue
	Comments []domain.Comment
}

// ListIssues compiles the raw parameters and returns the matching issues.
func (s *Service) ListIssues(ctx context.Context, params domain.IssueListParams) ([]domain.Issue, domain.IssueQuery, error) {
	if _, err := requireEmail(ctx); err != nil {
		return nil, domain.IssueQuery{}, err
	}

	query, err := CompileQuery(params)
	if err != nil {
		return nil, domain.IssueQuery{}, err
	}

	issues, err := s.issues.List(ctx, query)
	if err != nil {
		return nil, query, fmt.Errorf("list issues: %w", err)
	}
	return issues, query, nil
}

// GetIssue returns an issue and its comments.
func (s *Service) GetIssue(ctx context.Context, id int64) (*IssueDetail, error) {
	if _, err := requireEmail(ctx); err != nil {
		return nil, err
	}
	if err := collect(idErrors(id)); err != nil {
		return nil, err
	}

	issue, err := s.issues.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get issue: %w", asNotFound(err, "Issue"))
	}

	comments, err := s.comments.ListByIssue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("list comments: %w", err)
	}

	return &IssueDetail{Issue: *issue, Comments: comments}, nil
}

// Dashboard returns the issue total, per-status counts and the most recent issues.
func (s *Service) Dashboard(ctx context.Context) (*domain.Dashboard, error) {
	if _, err := requireEmail(ctx); err != nil {
		return nil, err
	}

	var d domain.Dashboard
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.issues.Count(gctx)
		if err != nil {
			return fmt.Errorf("count issues: %w", err)
		}
		d.Total = n
		return nil
	})
	g.Go(func() error {
		counts, err := s.issues.CountByStatus(gctx)
		if err != nil {
			return fmt.Errorf("count by status: %w", err)
		}
		d.ByStatus = counts
		return nil
	})
	g.Go(func() error {
		recent, err := s.issues.Recent(gctx, RecentLimit)
		if err != nil {
			return fmt.Errorf("recent issues: %w", err)
		}
		d.Recent = recent
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &d, nil
}
