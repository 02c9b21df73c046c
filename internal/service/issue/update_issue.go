package issue

import (
	"context"
	"fmt"
	"log/slog"
)

// UpdateIssue replaces every editable field of an issue. Concurrent updates
// are last-write-wins.
func (s *Service) UpdateIssue(ctx context.Context, input UpdateIssueInput) (*ActionResult, error) {
	if _, err := requireEmail(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	updated, err := s.issues.Update(context.WithoutCancel(ctx), input.ID, input.fields())
	if err != nil {
		return nil, fmt.Errorf("update issue: %w", asNotFound(err, "Issue"))
	}

	s.log.InfoContext(ctx, "issue updated", slog.Int64("issue_id", updated.ID))

	return s.finish(ctx, updated.ID, listViews(updated.ID)...), nil
}
