package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/issuetracker/internal/adapter/viewcache"
	"github.com/heartmarshall/issuetracker/internal/domain"
	"github.com/heartmarshall/issuetracker/internal/service/issue"
	"github.com/heartmarshall/issuetracker/internal/transport/dataloader"
	"github.com/heartmarshall/issuetracker/pkg/ctxutil"
)

// issueReader defines the read model needed by IssueHandler.
type issueReader interface {
	ListIssues(ctx context.Context, params domain.IssueListParams) ([]domain.Issue, domain.IssueQuery, error)
	GetIssue(ctx context.Context, id int64) (*issue.IssueDetail, error)
	Dashboard(ctx context.Context) (*domain.Dashboard, error)
}

type userLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

// viewCache stores rendered views. A nil viewCache disables caching.
type viewCache interface {
	Get(key string) (viewcache.Entry, bool)
	Set(key string, e viewcache.Entry)
}

// CacheHeader reports whether a read was served from the view cache.
const CacheHeader = "X-View-Cache"

// IssueHandler serves the read endpoints under /api.
type IssueHandler struct {
	svc   issueReader
	users userLister
	cache viewCache
	log   *slog.Logger
}

// NewIssueHandler creates an IssueHandler. cache may be nil.
func NewIssueHandler(svc issueReader, users userLister, cache viewCache, logger *slog.Logger) *IssueHandler {
	return &IssueHandler{svc: svc, users: users, cache: cache, log: logger.With("handler", "issues")}
}

// Routes registers the read endpoints on mux.
func (h *IssueHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/issues", h.List)
	mux.HandleFunc("GET /api/issues/{id}", h.Get)
	mux.HandleFunc("GET /api/dashboard", h.Dashboard)
	mux.HandleFunc("GET /api/users", h.Users)
}

// List handles GET /api/issues.
func (h *IssueHandler) List(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w, r) {
		return
	}

	q := r.URL.Query()
	params := domain.IssueListParams{
		Search:   q.Get("search"),
		Status:   q.Get("status"),
		Priority: q.Get("priority"),
		Assignee: q.Get("assignee"),
		SortBy:   q.Get("sortBy"),
		Order:    q.Get("order"),
	}
	query, err := issue.CompileQuery(params)
	if err != nil {
		h.fail(w, r, "Failed to load issues", err)
		return
	}

	h.serveView(w, r, viewcache.EntryKey(domain.ViewKeyIssues, query.Key()), "Failed to load issues",
		func(ctx context.Context) (any, error) {
			issues, compiled, err := h.svc.ListIssues(ctx, query.Params())
			if err != nil {
				return nil, err
			}
			users, err := dataloader.FromContext(ctx).LoadUsers(ctx, referencedUsers(issues, nil))
			if err != nil {
				return nil, err
			}
			return issueListResponse{
				Issues: toIssueResponses(issues, users),
				Query:  toQueryResponse(compiled),
			}, nil
		})
}

// Get handles GET /api/issues/{id}.
func (h *IssueHandler) Get(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w, r) {
		return
	}

	id := pathID(r)
	if id <= 0 {
		writeError(w, http.StatusNotFound, "Issue not found")
		return
	}

	h.serveView(w, r, viewcache.EntryKey(domain.IssueDetailView(id), ""), "Failed to load issue",
		func(ctx context.Context) (any, error) {
			detail, err := h.svc.GetIssue(ctx, id)
			if err != nil {
				return nil, err
			}
			users, err := dataloader.FromContext(ctx).LoadUsers(ctx,
				referencedUsers([]domain.Issue{detail.Issue}, detail.Comments))
			if err != nil {
				return nil, err
			}

			comments := make([]commentResponse, len(detail.Comments))
			for i, c := range detail.Comments {
				comments[i] = commentResponse{
					ID:        c.ID,
					Content:   c.Content,
					Author:    toUserRef(users[c.AuthorID]),
					CreatedAt: c.CreatedAt,
				}
			}
			return issueDetailResponse{
				issueResponse: toIssueResponse(detail.Issue, users),
				Comments:      comments,
			}, nil
		})
}

// Dashboard handles GET /api/dashboard.
func (h *IssueHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w, r) {
		return
	}

	h.serveView(w, r, viewcache.EntryKey(domain.ViewKeyDashboard, ""), "Failed to load dashboard",
		func(ctx context.Context) (any, error) {
			d, err := h.svc.Dashboard(ctx)
			if err != nil {
				return nil, err
			}
			users, err := dataloader.FromContext(ctx).LoadUsers(ctx, referencedUsers(d.Recent, nil))
			if err != nil {
				return nil, err
			}

			byStatus := make([]statusCountResponse, len(d.ByStatus))
			for i, sc := range d.ByStatus {
				byStatus[i] = statusCountResponse{enumValue: statusValue(sc.Status), Count: sc.Count}
			}
			return dashboardResponse{
				Total:    d.Total,
				ByStatus: byStatus,
				Recent:   toIssueResponses(d.Recent, users),
			}, nil
		})
}

// Users handles GET /api/users, the assignee picker source. Not cached:
// sign-in can add users at any time.
func (h *IssueHandler) Users(w http.ResponseWriter, r *http.Request) {
	if !h.requireSession(w, r) {
		return
	}

	users, err := h.users.List(r.Context())
	if err != nil {
		h.fail(w, r, "Failed to load users", err)
		return
	}

	out := make([]*userRef, len(users))
	for i := range users {
		out[i] = toUserRef(&users[i])
	}
	writeJSON(w, http.StatusOK, map[string]any{"users": out})
}

// serveView answers from the cache when possible, otherwise renders,
// stores and writes the view.
func (h *IssueHandler) serveView(
	w http.ResponseWriter,
	r *http.Request,
	key string,
	failure string,
	render func(ctx context.Context) (any, error),
) {
	if h.cache != nil {
		if e, ok := h.cache.Get(key); ok {
			w.Header().Set("Content-Type", e.ContentType)
			w.Header().Set(CacheHeader, "hit")
			w.WriteHeader(http.StatusOK)
			w.Write(e.Body) //nolint:errcheck
			return
		}
	}

	v, err := render(r.Context())
	if err != nil {
		h.fail(w, r, failure, err)
		return
	}

	body, err := json.Marshal(v)
	if err != nil {
		h.fail(w, r, failure, err)
		return
	}
	body = append(body, '\n')

	if h.cache != nil {
		h.cache.Set(key, viewcache.Entry{ContentType: "application/json", Body: body})
	}
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(CacheHeader, "miss")
	w.WriteHeader(http.StatusOK)
	w.Write(body) //nolint:errcheck
}

func (h *IssueHandler) requireSession(w http.ResponseWriter, r *http.Request) bool {
	if _, ok := ctxutil.UserEmailFromCtx(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "You must be signed in to view issues")
		return false
	}
	return true
}

func (h *IssueHandler) fail(w http.ResponseWriter, r *http.Request, failure string, err error) {
	var (
		verr *domain.ValidationError
		nf   *domain.NotFoundError
	)
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "You must be signed in to view issues")
	case errors.As(err, &verr):
		msg := verr.First()
		if len(verr.Errors) > 0 {
			msg = verr.Errors[0].Field + ": " + msg
		}
		writeError(w, http.StatusBadRequest, msg)
	case errors.As(err, &nf):
		writeError(w, http.StatusNotFound, nf.Error())
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "Issue not found")
	default:
		h.log.ErrorContext(r.Context(), "read failed",
			slog.String("path", r.URL.Path),
			slog.String("request_id", ctxutil.RequestIDFromCtx(r.Context())),
			slog.String("error", err.Error()),
		)
		writeError(w, http.StatusInternalServerError, failure)
	}
}
