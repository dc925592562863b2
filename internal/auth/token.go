package auth

import (
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"restaurant-api/internal/model"
)

// CookieName is the http-only cookie that carries the session token.
const CookieName = "token"

// TokenTTL is how long an issued session token remains valid. The server
// keeps no session store, so a token cannot be revoked before it expires;
// logout only clears the client-held cookie.
const TokenTTL = 1 * time.Hour

// Claims are the identity claims embedded in a session token.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HMAC-signed session tokens.
type TokenManager struct {
	secret []byte
	logger zerolog.Logger
	now    func() time.Time
}

// NewTokenManager creates a token manager signing with the given secret.
func NewTokenManager(secret string, logger zerolog.Logger) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		logger: logger.With().Str("component", "token-manager").Logger(),
		now:    time.Now,
	}
}

// Issue signs a session token for the given email, expiring after TokenTTL.
func (m *TokenManager) Issue(email string) (string, error) {
	now := m.now()
	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		m.logger.Error().Err(err).Str("email", email).Msg("failed to sign token")
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	m.logger.Debug().Str("email", email).Msg("session token issued")
	return signed, nil
}

// Verify parses and validates a session token. An empty token string means
// no token was presented and yields ErrUnauthenticated; a bad signature or
// an expired token yields ErrInvalidToken.
func (m *TokenManager) Verify(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, model.ErrUnauthenticated
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		m.logger.Warn().Err(err).Msg("token validation failed")
		return nil, model.ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, model.ErrInvalidToken
	}

	return claims, nil
}

// SetCookie stores the token in the session cookie. SameSite=None with
// Secure lets a browser frontend on a different origin send it back.
func SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TokenTTL / time.Second),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}

// ClearCookie instructs the client to discard the session cookie.
func ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteNoneMode,
	})
}
