package issue

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// UpdateStatus sets the status of an issue and nothing else.
func (s *Service) UpdateStatus(ctx context.Context, input UpdateStatusInput) (*ActionResult, error) {
	if _, err := requireEmail(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	status := domain.IssueStatus(input.Status)
	if _, err := s.issues.UpdateStatus(context.WithoutCancel(ctx), input.ID, status); err != nil {
		return nil, fmt.Errorf("update status: %w", asNotFound(err, "Issue"))
	}

	s.log.InfoContext(ctx, "issue status updated",
		slog.Int64("issue_id", input.ID),
		slog.String("status", status.String()),
	)

	return s.finish(ctx, input.ID, listViews(input.ID)...), nil
}

// UpdatePriority sets the priority of an issue and nothing else.
func (s *Service) UpdatePriority(ctx context.Context, input UpdatePriorityInput) (*ActionResult, error) {
	if _, err := requireEmail(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	priority := domain.IssuePriority(input.Priority)
	if _, err := s.issues.UpdatePriority(context.WithoutCancel(ctx), input.ID, priority); err != nil {
		return nil, fmt.Errorf("update priority: %w", asNotFound(err, "Issue"))
	}

	s.log.InfoContext(ctx, "issue priority updated",
		slog.Int64("issue_id", input.ID),
		slog.String("priority", priority.String()),
	)

	return s.finish(ctx, input.ID, listViews(input.ID)...), nil
}

// UpdateAssignee sets or clears the assignee of an issue.
func (s *Service) UpdateAssignee(ctx context.Context, input UpdateAssigneeInput) (*ActionResult, error) {
	if _, err := requireEmail(ctx); err != nil {
		return nil, err
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.issues.UpdateAssignee(context.WithoutCancel(ctx), input.ID, input.AssigneeID); err != nil {
		return nil, fmt.Errorf("update assignee: %w", asNotFound(err, "Issue"))
	}

	attrs := []any{slog.Int64("issue_id", input.ID)}
	if input.AssigneeID != nil {
		attrs = append(attrs, slog.Int64("assignee_id", *input.AssigneeID))
	}
	s.log.InfoContext(ctx, "issue assignee updated", attrs...)

	return s.finish(ctx, input.ID, listViews(input.ID)...), nil
}
