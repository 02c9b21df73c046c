package issue

import (
	"context"
	"fmt"
	"log/slog"
)

// DeleteIssue removes an issue and, by cascade, its comments.
func (s *Service) DeleteIssue(ctx context.Context, input DeleteIssueInput) (*ActionResult, error) {
	if _, err := requireEmail(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if err := s.issues.Delete(context.WithoutCancel(ctx), input.ID); err != nil {
		return nil, fmt.Errorf("delete issue: %w", asNotFound(err, "Issue"))
	}

	s.log.InfoContext(ctx, "issue deleted", slog.Int64("issue_id", input.ID))

	return s.finish(ctx, input.ID, listViews(input.ID)...), nil
}
