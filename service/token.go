package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/guilhermerodrigues17/messages-backend/config"
	"github.com/guilhermerodrigues17/messages-backend/models"
	jwt "github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
)

// TokenService signs and verifies the two token kinds. Access and refresh
// tokens use separate secrets, so neither kind can verify in place of the
// other. The configuration is immutable for the process lifetime.
type TokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new TokenService instance with the provided configuration
func NewTokenService(cfg *config.Config) *TokenService {
	return &TokenService{cfg: cfg}
}

// MintPair generates an access and refresh token pair for the given user
func (s TokenService) MintPair(user models.User) (models.TokenPair, error) {
	var pair models.TokenPair
	now := time.Now()

	atClaims := models.AccessClaims{
		RegisteredClaims: s.registeredClaims(user.ID, now, s.cfg.AccessTokenTTL),
		Email:            user.Email,
	}
	at := jwt.NewWithClaims(jwt.SigningMethodHS256, atClaims)
	accessToken, err := at.SignedString([]byte(s.cfg.AccessSecret))
	if err != nil {
		slog.Error("failed to sign access token", "error", err, "user_id", user.ID.Hex())
		return pair, fmt.Errorf("sign access token: %w", err)
	}

	rtClaims := models.RefreshClaims{
		RegisteredClaims: s.registeredClaims(user.ID, now, s.cfg.RefreshTokenTTL),
	}
	rt := jwt.NewWithClaims(jwt.SigningMethodHS256, rtClaims)
	refreshToken, err := rt.SignedString([]byte(s.cfg.RefreshSecret))
	if err != nil {
		slog.Error("failed to sign refresh token", "error", err, "user_id", user.ID.Hex())
		return pair, fmt.Errorf("sign refresh token: %w", err)
	}

	pair.AccessToken = accessToken
	pair.RefreshToken = refreshToken
	return pair, nil
}

func (s TokenService) registeredClaims(userID models.UserID, now time.Time, ttl time.Duration) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Subject:   userID.Hex(),
		Issuer:    s.cfg.JWTIssuer,
		Audience:  jwt.ClaimStrings{s.cfg.JWTAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        uuid.New().String(),
	}
}

// VerifyAccess validates an access token and returns its claims. It returns
// models.ErrTokenExpired past the expiry and models.ErrTokenInvalid for any
// other failure, including issuer or audience mismatch.
func (s TokenService) VerifyAccess(tokenString string) (*models.AccessClaims, error) {
	claims := &models.AccessClaims{}
	if err := s.verify(tokenString, claims, s.cfg.AccessSecret); err != nil {
		return nil, err
	}

	if !claims.VerifyIssuer(s.cfg.JWTIssuer, true) || !claims.VerifyAudience(s.cfg.JWTAudience, true) {
		return nil, models.ErrTokenInvalid
	}

	return claims, nil
}

// VerifyRefresh validates a refresh token and returns its claims
func (s TokenService) VerifyRefresh(tokenString string) (*models.RefreshClaims, error) {
	claims := &models.RefreshClaims{}
	if err := s.verify(tokenString, claims, s.cfg.RefreshSecret); err != nil {
		return nil, err
	}

	if !claims.VerifyIssuer(s.cfg.JWTIssuer, true) || !claims.VerifyAudience(s.cfg.JWTAudience, true) {
		return nil, models.ErrTokenInvalid
	}

	return claims, nil
}

func (s TokenService) verify(tokenString string, claims jwt.Claims, secret string) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		// Make sure that the token method conform to "SigningMethodHMAC"
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.ErrTokenExpired
		}
		return models.ErrTokenInvalid
	}

	if !token.Valid {
		return models.ErrTokenInvalid
	}

	return nil
}
