package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
)

// SignIn upserts the user by email and returns an access token for it.
// A name or image supplied here fills in or replaces the stored profile;
// omitted values keep what is stored.
func (s *Service) SignIn(ctx context.Context, input SignInInput) (*AuthResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	email := input.normalizedEmail()

	user, err := s.users.Upsert(ctx, email, trimOrNil(input.Name), trimOrNil(input.Image))
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn upsert user: %w", err)
	}

	token, err := s.tokens.GenerateAccessToken(user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth.SignIn generate token: %w", err)
	}

	s.log.InfoContext(ctx, "user signed in",
		slog.Int64("user_id", user.ID),
		slog.String("email", user.Email),
	)

	return &AuthResult{AccessToken: token, ExpiresIn: s.tokens.TTL(), User: user}, nil
}

func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
