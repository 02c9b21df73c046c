package app

import (
	"context"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/heartmarshall/issuetracker/internal/config"
	"github.com/heartmarshall/issuetracker/internal/domain"
	"github.com/heartmarshall/issuetracker/internal/transport/dataloader"
	"github.com/heartmarshall/issuetracker/internal/transport/middleware"
	"github.com/heartmarshall/issuetracker/internal/transport/rest"
)

type tokenValidator interface {
	ValidateAccessToken(token string) (string, error)
}

type usersByID interface {
	GetByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

// routerDeps is everything the HTTP surface is assembled from.
// Auth is nil when sign-in is disabled.
type routerDeps struct {
	Config  *config.Config
	Log     *slog.Logger
	Health  *rest.HealthHandler
	Auth    *rest.AuthHandler
	Issues  *rest.IssueHandler
	Actions *rest.ActionHandler
	Tokens  tokenValidator
	Users   usersByID
	Limiter *middleware.RateLimiter
}

func newRouter(d routerDeps) http.Handler {
	mux := http.NewServeMux()
	d.Health.Routes(mux)

	if d.Auth != nil {
		signin := d.Limiter.Limit("signin", d.Config.Auth.SignInRateLimit)(http.HandlerFunc(d.Auth.SignIn))
		mux.Handle("POST /auth/signin", signin)
	}

	api := http.NewServeMux()
	d.Issues.Routes(api)
	d.Actions.Routes(api)
	mux.Handle("/api/", dataloader.Middleware(d.Users)(api))

	chain := middleware.Chain(
		tracing(d.Config.Tracing),
		middleware.Recovery(d.Log),
		middleware.RequestID(),
		middleware.Logger(d.Log),
		middleware.CORS(d.Config.CORS),
		middleware.Auth(d.Tokens),
	)

	return chain(mux)
}

// tracing starts a server span per request, named "METHOD /path".
// It is nil, and so skipped by Chain, when no exporter is configured.
func tracing(cfg config.TracingConfig) middleware.Middleware {
	if !cfg.Enabled() {
		return nil
	}
	return func(next http.Handler) http.Handler {
		return otelhttp.NewHandler(next, "http.server",
			otelhttp.WithSpanNameFormatter(func(_ string, r *http.Request) string {
				return r.Method + " " + r.URL.Path
			}),
		)
	}
}
