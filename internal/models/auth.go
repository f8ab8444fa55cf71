package models

import "github.com/golang-jwt/jwt/v5"

// TokenRequest holds the payload a client wants signed into a bearer token.
type TokenRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// TokenResponse returns the issued token.
type TokenResponse struct {
	Token string `json:"token"`
}

// JWTClaims represents the JWT payload for access tokens. The email claim is
// embedded verbatim from the issue request.
type JWTClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}
