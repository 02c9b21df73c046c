package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// CreateIssue creates an issue authored by the signed-in user.
func (s *Service) CreateIssue(ctx context.Context, input CreateIssueInput) (*ActionResult, error) {
	email, err := requireEmail(ctx)
	if err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	author, err := s.actor(ctx, email)
	if err != nil {
		return nil, err
	}

	created, err := s.issues.Create(context.WithoutCancel(ctx), author.ID, input.fields())
	if err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}

	s.log.InfoContext(ctx, "issue created",
		slog.Int64("issue_id", created.ID),
		slog.Int64("author_id", author.ID),
	)

	return s.finish(ctx, created.ID, domain.ViewKeyIssues, domain.ViewKeyDashboard), nil
}
