// Package issue implements issue listing, detail, dashboard and every issue
// mutation action.
package issue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/issuetracker/internal/domain"
	"github.com/heartmarshall/issuetracker/pkg/ctxutil"
)

type issueRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.Issue, error)
	List(ctx context.Context, query domain.IssueQuery) ([]domain.Issue, error)
	Recent(ctx context.Context, limit int) ([]domain.Issue, error)
	Count(ctx context.Context) (int, error)
	CountByStatus(ctx context.Context) ([]domain.StatusCount, error)

	Create(ctx context.Context, authorID int64, f domain.IssueFields) (*domain.Issue, error)
	Update(ctx context.Context, id int64, f domain.IssueFields) (*domain.Issue, error)
	UpdateStatus(ctx context.Context, id int64, status domain.IssueStatus) (*domain.Issue, error)
	UpdatePriority(ctx context.Context, id int64, priority domain.IssuePriority) (*domain.Issue, error)
	UpdateAssignee(ctx context.Context, id int64, assigneeID *int64) (*domain.Issue, error)
	Delete(ctx context.Context, id int64) error
}

type commentRepo interface {
	Create(ctx context.Context, issueID, authorID int64, content string) (*domain.Comment, error)
	ListByIssue(ctx context.Context, issueID int64) ([]domain.Comment, error)
}

type userRepo interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// viewInvalidator drops cached renderings of the given views.
type viewInvalidator interface {
	Invalidate(ctx context.Context, keys ...domain.ViewKey) error
}

// RecentLimit is the number of issues shown on the dashboard.
const RecentLimit = 10

// Service implements the issue read model and mutation actions.
type Service struct {
	log      *slog.Logger
	issues   issueRepo
	comments commentRepo
	users    userRepo
	views    viewInvalidator
}

// NewService creates a new issue service.
func NewService(
	log *slog.Logger,
	issues issueRepo,
	comments commentRepo,
	users userRepo,
	views viewInvalidator,
) *Service {
	return &Service{
		log:      log.With("service", "issue"),
		issues:   issues,
		comments: comments,
		users:    users,
		views:    views,
	}
}

// ActionResult is the outcome of a successful mutation.
type ActionResult struct {
	IssueID     int64
	Invalidated []domain.ViewKey
}

// requireEmail returns the signed-in user's email or ErrUnauthorized.
func requireEmail(ctx context.Context) (string, error) {
	email, ok := ctxutil.UserEmailFromCtx(ctx)
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return email, nil
}

// actor loads the signed-in user's row.
func (s *Service) actor(ctx context.Context, email string) (*domain.User, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, asNotFound(err, "User")
	}
	return u, nil
}

// finish invalidates the touched views and builds the result. Invalidation
// failures are logged only.
func (s *Service) finish(ctx context.Context, issueID int64, keys ...domain.ViewKey) *ActionResult {
	if err := s.views.Invalidate(ctx, keys...); err != nil {
		s.log.WarnContext(ctx, "view invalidation failed",
			slog.Int64("issue_id", issueID),
			slog.Any("views", keys),
			slog.String("error", err.Error()),
		)
	}
	return &ActionResult{IssueID: issueID, Invalidated: keys}
}

// listViews are the views every change to list-visible issue data touches.
func listViews(id int64) []domain.ViewKey {
	return []domain.ViewKey{domain.ViewKeyIssues, domain.ViewKeyDashboard, domain.IssueDetailView(id)}
}

// asNotFound names the missing entity unless the error already carries one.
func asNotFound(err error, entity string) error {
	var nf *domain.NotFoundError
	if errors.As(err, &nf) {
		return err
	}
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %v", domain.NewNotFoundError(entity), err)
	}
	return err
}
