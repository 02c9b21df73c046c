package issue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// AddComment appends a trimmed comment to an issue.
func (s *Service) AddComment(ctx context.Context, input AddCommentInput) (*ActionResult, error) {
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

	c, err := s.comments.Create(context.WithoutCancel(ctx), input.IssueID, author.ID, strings.TrimSpace(input.Content))
	if err != nil {
		return nil, fmt.Errorf("add comment: %w", asNotFound(err, "Issue"))
	}

	s.log.InfoContext(ctx, "comment added",
		slog.Int64("issue_id", input.IssueID),
		slog.Int64("comment_id", c.ID),
	)

	return s.finish(ctx, input.IssueID, domain.IssueDetailView(input.IssueID)), nil
}
