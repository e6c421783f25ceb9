package models

import (
	jwt "github.com/golang-jwt/jwt/v4"
)

// TokenPair represents the JWT token pair returned to clients after a
// successful login or refresh
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// AccessClaims is the payload of an access token. The subject is the user id
// in hex form; the email claim lets handlers identify the caller without an
// extra lookup.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email,omitempty"`
}

// RefreshClaims is the payload of a refresh token. It carries the registered
// claims only, so a refresh token never satisfies the access-token claim
// shape.
type RefreshClaims struct {
	jwt.RegisteredClaims
}
