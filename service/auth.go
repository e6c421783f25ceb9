package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/guilhermerodrigues17/messages-backend/db"
	"github.com/guilhermerodrigues17/messages-backend/hashing"
	"github.com/guilhermerodrigues17/messages-backend/models"
)

// AuthService verifies credentials, exchanges refresh tokens and
// authenticates requests. Every failure it reports to callers is the
// generic models.ErrUnauthorized: unknown email, wrong password, inactive
// or deleted user and bad tokens are indistinguishable from the outside.
type AuthService struct {
	db     db.Database
	hasher hashing.Hasher
	tokens *TokenService
}

// NewAuthService creates a new AuthService instance
func NewAuthService(database db.Database, hasher hashing.Hasher, tokens *TokenService) *AuthService {
	return &AuthService{
		db:     database,
		hasher: hasher,
		tokens: tokens,
	}
}

// Login validates an email/password pair and mints a token pair.
func (s AuthService) Login(ctx context.Context, email, password string) (models.TokenPair, error) {
	var pair models.TokenPair

	user, err := s.db.FindByEmail(ctx, email)
	if err != nil {
		slog.Warn("login failed: user lookup", "email", email)
		return pair, models.ErrUnauthorized
	}

	if !user.Active {
		slog.Warn("login failed: inactive user", "user_id", user.ID.Hex())
		return pair, models.ErrUnauthorized
	}

	match, err := s.hasher.Compare(password, user.Password)
	if err != nil {
		slog.Error("failed to compare password hash", "error", err, "user_id", user.ID.Hex())
		return pair, fmt.Errorf("compare password: %w", err)
	}
	if !match {
		slog.Warn("login failed: invalid password", "user_id", user.ID.Hex())
		return pair, models.ErrUnauthorized
	}

	return s.tokens.MintPair(user)
}

// Refresh exchanges a valid refresh token for a new token pair. The old
// refresh token is not invalidated; it stays usable until its own expiry.
func (s AuthService) Refresh(ctx context.Context, refreshToken string) (models.TokenPair, error) {
	var pair models.TokenPair

	claims, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		slog.Warn("refresh failed: token verification", "error", err)
		return pair, models.ErrUnauthorized
	}

	userID, err := models.ParseUserID(claims.Subject)
	if err != nil {
		slog.Warn("refresh failed: malformed subject", "subject", claims.Subject)
		return pair, models.ErrUnauthorized
	}

	// Handles accounts deleted after the token was issued.
	user, err := s.db.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("refresh failed: user lookup", "user_id", claims.Subject)
		return pair, models.ErrUnauthorized
	}

	pair, err = s.tokens.MintPair(user)
	if err != nil {
		return pair, models.ErrUnauthorized
	}
	return pair, nil
}

// Authenticate extracts and verifies the bearer token of a request and
// re-checks that its subject is still an existing, active user.
func (s AuthService) Authenticate(ctx context.Context, r *http.Request) (*models.AccessClaims, error) {
	tokenString := ExtractToken(r)
	if tokenString == "" {
		return nil, models.ErrUnauthorized
	}

	claims, err := s.tokens.VerifyAccess(tokenString)
	if err != nil {
		slog.Warn("request authentication failed: token verification", "error", err)
		return nil, models.ErrUnauthorized
	}

	userID, err := models.ParseUserID(claims.Subject)
	if err != nil {
		return nil, models.ErrUnauthorized
	}

	user, err := s.db.FindByID(ctx, userID)
	if err != nil {
		slog.Warn("request authentication failed: user lookup", "user_id", claims.Subject)
		return nil, models.ErrUnauthorized
	}
	if !user.Active {
		slog.Warn("request authentication failed: inactive user", "user_id", claims.Subject)
		return nil, models.ErrUnauthorized
	}

	return claims, nil
}

// ExtractToken extracts the bearer token from the Authorization header.
// The scheme word is discarded without being validated; a header holding a
// single word is treated as the token itself.
func ExtractToken(r *http.Request) string {
	bearToken := r.Header.Get("Authorization")
	fields := strings.Fields(bearToken)
	switch len(fields) {
	case 0:
		return ""
	case 1:
		return fields[0]
	default:
		return fields[1]
	}
}
