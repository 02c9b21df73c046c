package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/issuetracker/internal/domain"
	"github.com/heartmarshall/issuetracker/internal/service/issue"
	"github.com/heartmarshall/issuetracker/pkg/ctxutil"
)

// issueActions defines the mutations exposed by ActionHandler.
type issueActions interface {
	CreateIssue(ctx context.Context, input issue.CreateIssueInput) (*issue.ActionResult, error)
	UpdateIssue(ctx context.Context, input issue.UpdateIssueInput) (*issue.ActionResult, error)
	DeleteIssue(ctx context.Context, input issue.DeleteIssueInput) (*issue.ActionResult, error)
	CloneIssue(ctx context.Context, input issue.CloneIssueInput) (*issue.ActionResult, error)
	AddComment(ctx context.Context, input issue.AddCommentInput) (*issue.ActionResult, error)
	UpdateStatus(ctx context.Context, input issue.UpdateStatusInput) (*issue.ActionResult, error)
	UpdatePriority(ctx context.Context, input issue.UpdatePriorityInput) (*issue.ActionResult, error)
	UpdateAssignee(ctx context.Context, input issue.UpdateAssigneeInput) (*issue.ActionResult, error)
}

// ActionHandler serves POST /api/actions/*. Every action answers with
// {"success":true,...} or {"error":"..."}.
type ActionHandler struct {
	svc issueActions
	log *slog.Logger
}

// NewActionHandler creates an ActionHandler.
func NewActionHandler(svc issueActions, logger *slog.Logger) *ActionHandler {
	return &ActionHandler{svc: svc, log: logger.With("handler", "actions")}
}

// action names an endpoint and the messages shown when it is refused or fails.
type action struct {
	name    string
	verb    string
	failure string
}

var (
	actCreate   = action{"create-issue", "create issues", "Failed to create issue"}
	actUpdate   = action{"update-issue", "update issues", "Failed to update issue"}
	actDelete   = action{"delete-issue", "delete issues", "Failed to delete issue"}
	actClone    = action{"clone-issue", "clone issues", "Failed to clone issue"}
	actComment  = action{"add-comment", "comment", "Failed to add comment"}
	actStatus   = action{"update-issue-status", "update issues", "Failed to update status"}
	actPriority = action{"update-issue-priority", "update issues", "Failed to update priority"}
	actAssignee = action{"update-issue-assignee", "update issues", "Failed to update assignee"}
)

type actionResponse struct {
	Success     bool     `json:"success"`
	IssueID     int64    `json:"issueId"`
	Invalidated []string `json:"invalidated"`
}

// Routes registers every action on mux.
func (h *ActionHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/actions/create-issue", h.CreateIssue)
	mux.HandleFunc("POST /api/actions/update-issue/{id}", h.UpdateIssue)
	mux.HandleFunc("POST /api/actions/delete-issue/{id}", h.DeleteIssue)
	mux.HandleFunc("POST /api/actions/clone-issue/{id}", h.CloneIssue)
	mux.HandleFunc("POST /api/actions/add-comment/{id}", h.AddComment)
	mux.HandleFunc("POST /api/actions/update-issue-status/{id}", h.UpdateStatus)
	mux.HandleFunc("POST /api/actions/update-issue-priority/{id}", h.UpdatePriority)
	mux.HandleFunc("POST /api/actions/update-issue-assignee/{id}", h.UpdateAssignee)
}

// CreateIssue handles POST /api/actions/create-issue.
func (h *ActionHandler) CreateIssue(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, actCreate, func(ctx context.Context, p actionPayload) (*issue.ActionResult, error) {
		return h.svc.CreateIssue(ctx, issue.CreateIssueInput{IssueInput: p.issueInput()})
	})
}

// UpdateIssue handles POST /api/actions/update-issue/{id}.
func (h *ActionHandler) UpdateIssue(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, actUpdate, func(ctx context.Context, p actionPayload) (*issue.ActionResult, error) {
		return h.svc.UpdateIssue(ctx, issue.UpdateIssueInput{ID: pathID(r), IssueInput: p.issueInput()})
	})
}

// DeleteIssue handles POST /api/actions/delete-issue/{id}.
func (h *ActionHandler) DeleteIssue(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, actDelete, func(ctx context.Context, _ actionPayload) (*issue.ActionResult, error) {
		return h.svc.DeleteIssue(ctx, issue.DeleteIssueInput{ID: pathID(r)})
	})
}

// CloneIssue handles POST /api/actions/clone-issue/{id}.
func (h *ActionHandler) CloneIssue(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, actClone, func(ctx context.Context, _ actionPayload) (*issue.ActionResult, error) {
		return h.svc.CloneIssue(ctx, issue.CloneIssueInput{ID: pathID(r)})
	})
}

// AddComment handles POST /api/actions/add-comment/{id}.
func (h *ActionHandler) AddComment(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, actComment, func(ctx context.Context, p actionPayload) (*issue.ActionResult, error) {
		return h.svc.AddComment(ctx, issue.AddCommentInput{IssueID: pathID(r), Content: deref(p.Content)})
	})
}

// UpdateStatus handles POST /api/actions/update-issue-status/{id}.
func (h *ActionHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, actStatus, func(ctx context.Context, p actionPayload) (*issue.ActionResult, error) {
		return h.svc.UpdateStatus(ctx, issue.UpdateStatusInput{ID: pathID(r), Status: deref(p.Status)})
	})
}

// UpdatePriority handles POST /api/actions/update-issue-priority/{id}.
func (h *ActionHandler) UpdatePriority(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, actPriority, func(ctx context.Context, p actionPayload) (*issue.ActionResult, error) {
		return h.svc.UpdatePriority(ctx, issue.UpdatePriorityInput{ID: pathID(r), Priority: deref(p.Priority)})
	})
}

// UpdateAssignee handles POST /api/actions/update-issue-assignee/{id}.
func (h *ActionHandler) UpdateAssignee(w http.ResponseWriter, r *http.Request) {
	h.run(w, r, actAssignee, func(ctx context.Context, p actionPayload) (*issue.ActionResult, error) {
		return h.svc.UpdateAssignee(ctx, issue.UpdateAssigneeInput{ID: pathID(r), AssigneeID: p.AssigneeID.ID})
	})
}

func (h *ActionHandler) run(
	w http.ResponseWriter,
	r *http.Request,
	act action,
	call func(ctx context.Context, p actionPayload) (*issue.ActionResult, error),
) {
	if _, ok := ctxutil.UserEmailFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "You must be signed in to "+act.verb)
		return
	}

	p, err := decodePayload(w, r)
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, errUnsupportedMediaType) {
			status = http.StatusUnsupportedMediaType
		}
		writeError(w, status, "invalid request body")
		return
	}

	result, err := call(r.Context(), p)
	if err != nil {
		h.fail(w, r, act, err)
		return
	}

	views := make([]string, len(result.Invalidated))
	for i, k := range result.Invalidated {
		views[i] = k.String()
	}
	writeJSON(w, http.StatusOK, actionResponse{Success: true, IssueID: result.IssueID, Invalidated: views})
}

func (h *ActionHandler) fail(w http.ResponseWriter, r *http.Request, act action, err error) {
	var (
		verr *domain.ValidationError
		nf   *domain.NotFoundError
	)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "You must be signed in to "+act.verb)
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.First())
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, nf.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Issue not found")
	default:
		h.log.ErrorContext(r.Context(), "action failed",
			slog.String("action", act.name),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, act.failure)
	}
}

func (p actionPayload) issueInput() issue.IssueInput {
	return issue.IssueInput{
		Title:       deref(p.Title),
		Description: p.Description,
		Status:      deref(p.Status),
		Priority:    deref(p.Priority),
		AssigneeID:  p.AssigneeID.ID,
	}
}
