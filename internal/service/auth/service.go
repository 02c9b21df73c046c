// Package auth implements sign-in: it records the identity handed over by the
// session provider and issues an access token for it.
package auth

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// userRepo defines the user repository interface needed by auth service.
type userRepo interface {
	Upsert(ctx context.Context, email string, name, image *string) (*domain.User, error)
}

// tokenIssuer defines the JWT operations needed by auth service.
type tokenIssuer interface {
	GenerateAccessToken(email string) (string, error)
	TTL() time.Duration
}

// Service implements sign-in.
type Service struct {
	log    *slog.Logger
	users  userRepo
	tokens tokenIssuer
}

// NewService creates a new auth service instance.
func NewService(logger *slog.Logger, users userRepo, tokens tokenIssuer) *Service {
	return &Service{
		log:    logger.With("service", "auth"),
		users:  users,
		tokens: tokens,
	}
}
