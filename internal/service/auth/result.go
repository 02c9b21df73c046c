package auth

import (
	"time"

	"github.com/heartmarshall/issuetracker/internal/domain"
)

// AuthResult is returned by SignIn.
type AuthResult struct {
	AccessToken string
	ExpiresIn   time.Duration
	User        *domain.User
}
