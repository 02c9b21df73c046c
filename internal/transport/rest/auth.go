package rest

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/issuetracker/internal/domain"
	"github.com/heartmarshall/issuetracker/internal/service/auth"
)

// authService defines the minimal interface needed by AuthHandler.
type authService interface {
	SignIn(ctx context.Context, input auth.SignInInput) (*auth.AuthResult, error)
}

// SignInSecretHeader carries the secret shared with the session provider.
const SignInSecretHeader = "X-Signin-Secret"

// AuthHandler serves the session hand-off endpoint. Only callers presenting
// the shared secret may exchange an identity for a token.
type AuthHandler struct {
	svc    authService
	secret []byte
	log    *slog.Logger
}

// NewAuthHandler creates an AuthHandler. An empty secret rejects every request.
func NewAuthHandler(svc authService, secret string, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{svc: svc, secret: []byte(secret), log: logger.With("handler", "auth")}
}

type signInRequest struct {
	Email string  `json:"email"`
	Name  *string `json:"name"`
	Image *string `json:"image"`
}

type signInResponse struct {
	AccessToken string   `json:"accessToken"`
	TokenType   string   `json:"tokenType"`
	ExpiresIn   int64    `json:"expiresIn"`
	User        *userRef `json:"user"`
}

// SignIn handles POST /auth/signin.
func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	if !h.trusted(r) {
		h.log.WarnContext(r.Context(), "sign-in without valid provider secret")
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req signInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.svc.SignIn(r.Context(), auth.SignInInput{
		Email: req.Email,
		Name:  req.Name,
		Image: req.Image,
	})
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, signInResponse{
		AccessToken: result.AccessToken,
		TokenType:   "Bearer",
		ExpiresIn:   int64(result.ExpiresIn.Seconds()),
		User:        toUserRef(result.User),
	})
}

func (h *AuthHandler) trusted(r *http.Request) bool {
	if len(h.secret) == 0 {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(r.Header.Get(SignInSecretHeader)), h.secret) == 1
}

func (h *AuthHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.First())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
