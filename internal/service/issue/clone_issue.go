package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// CloneIssue copies an issue's fields into a new issue authored by the
// signed-in user. The result carries the new issue's ID.
func (s *Service) CloneIssue(ctx context.Context, input CloneIssueInput) (*ActionResult, error) {
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

	source, err := s.issues.GetByID(ctx, input.ID)
	if err != nil {
		return nil, fmt.Errorf("get source issue: %w", asNotFound(err, "Issue"))
	}

	fields := source.Clone()
	if errs := titleErrors(fields.Title); len(errs) > 0 {
		return nil, domain.NewValidationErrors(errs)
	}

	clone, err := s.issues.Create(context.WithoutCancel(ctx), author.ID, fields)
	if err != nil {
		return nil, fmt.Errorf("create clone: %w", err)
	}

	s.log.InfoContext(ctx, "issue cloned",
		slog.Int64("source_id", source.ID),
		slog.Int64("issue_id", clone.ID),
	)

	return s.finish(ctx, clone.ID, domain.ViewKeyIssues, domain.ViewKeyDashboard), nil
}
