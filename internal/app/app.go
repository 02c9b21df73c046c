package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/issuetracker/internal/adapter/broker"
	"github.com/heartmarshall/issuetracker/internal/adapter/postgres"
	"github.com/heartmarshall/issuetracker/internal/adapter/postgres/comment"
	issuerepo "github.com/heartmarshall/issuetracker/internal/adapter/postgres/issue"
	"github.com/heartmarshall/issuetracker/internal/adapter/postgres/user"
	"github.com/heartmarshall/issuetracker/internal/adapter/viewcache"
	"github.com/heartmarshall/issuetracker/internal/auth"
	"github.com/heartmarshall/issuetracker/internal/config"
	authsvc "github.com/heartmarshall/issuetracker/internal/service/auth"
	"github.com/heartmarshall/issuetracker/internal/service/issue"
	"github.com/heartmarshall/issuetracker/internal/transport/middleware"
	"github.com/heartmarshall/issuetracker/internal/transport/rest"
)

const applicationName = "issuetracker"

// Run loads configuration, wires every component and serves HTTP until ctx
// is cancelled, then shuts down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	shutdownTracing, err := setupTracing(ctx, cfg.Tracing, logger)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			logger.Warn("tracing shutdown", slog.String("error", err.Error()))
		}
	}()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := migrateUp(ctx, pool, logger); err != nil {
			return err
		}
	}

	var bus *broker.Broker
	if cfg.Broker.Enabled() {
		bus, err = broker.Dial(cfg.Broker.URL, cfg.Broker.Exchange, logger)
		if err != nil {
			return err
		}
		defer bus.Close() //nolint:errcheck
	}

	w := wire(cfg, logger, pool, bus)
	defer w.limiter.Stop()

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      w.handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		BaseContext:  func(net.Listener) context.Context { return ctx },
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")
		sctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(sctx)
	})

	if bus != nil && w.cache != nil {
		g.Go(func() error {
			return bus.Consume(gctx, w.cache)
		})
	}

	return g.Wait()
}

// wired is the assembled HTTP surface and the parts Run still has to manage.
type wired struct {
	handler http.Handler
	cache   *viewcache.Cache
	limiter *middleware.RateLimiter
}

// wire builds repositories, services and handlers over an open pool.
// bus may be nil. The caller stops the limiter.
func wire(cfg *config.Config, logger *slog.Logger, pool *pgxpool.Pool, bus *broker.Broker) *wired {
	users := user.New(pool)
	issues := issuerepo.New(pool)
	comments := comment.New(pool)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	var cache *viewcache.Cache
	if cfg.Cache.Enabled {
		cache = viewcache.New(cfg.Cache.Size, cfg.Cache.TTL, logger)
	}

	issueService := issue.NewService(logger, issues, comments, users, newInvalidator(cache, bus))

	health := []rest.Component{{Name: "database", Pinger: pool}}
	if bus != nil {
		health = append(health, rest.Component{Name: "broker", Pinger: bus})
	}

	limiter := middleware.NewRateLimiter(time.Minute)

	deps := routerDeps{
		Config:  cfg,
		Log:     logger,
		Health:  rest.NewHealthHandler(BuildVersion(), health...),
		Issues:  rest.NewIssueHandler(issueService, users, viewCacheOrNil(cache), logger),
		Actions: rest.NewActionHandler(issueService, logger),
		Tokens:  jwtManager,
		Users:   users,
		Limiter: limiter,
	}
	if cfg.Auth.SignInEnabled {
		deps.Auth = rest.NewAuthHandler(authsvc.NewService(logger, users, jwtManager), cfg.Auth.SignInSecret, logger)
	}

	return &wired{handler: newRouter(deps), cache: cache, limiter: limiter}
}

// newInvalidator avoids handing typed nils to interface parameters.
func newInvalidator(cache *viewcache.Cache, bus *broker.Broker) *viewcache.Invalidator {
	if bus == nil {
		return viewcache.NewInvalidator(cache, nil)
	}
	return viewcache.NewInvalidator(cache, bus)
}

type renderedViews interface {
	Get(key string) (viewcache.Entry, bool)
	Set(key string, e viewcache.Entry)
}

// viewCacheOrNil returns an untyped nil when caching is disabled.
func viewCacheOrNil(cache *viewcache.Cache) renderedViews {
	if cache == nil {
		return nil
	}
	return cache
}

func migrateUp(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) error {
	m, err := postgres.NewMigrator(pool, logger)
	if err != nil {
		return err
	}
	defer m.Close() //nolint:errcheck
	return m.Up(ctx)
}
