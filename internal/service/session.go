// File: internal/service/session.go
package service

import (
	"fmt"
	"os"
	"time"

	"item-catalog/internal/model"

	"github.com/golang-jwt/jwt/v5"
)

// SessionCookieName is the browser cookie carrying the signed session.
const SessionCookieName = "catalog_session"

// SessionClaims is the signed-cookie session payload: who is logged in
// plus the provider access token needed to revoke on logout.
type SessionClaims struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	UserID        int    `json:"user_id"`
	ProviderToken string `json:"provider_token"`
	jwt.RegisteredClaims
}

// IssueSessionToken signs a session for the given user and provider token.
func IssueSessionToken(user model.User, providerToken string, ttl time.Duration) (string, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return "", fmt.Errorf("SESSION_SECRET not set")
	}

	now := time.Now()
	claims := SessionClaims{
		Name:          user.Name,
		Email:         user.Email,
		UserID:        user.ID,
		ProviderToken: providerToken,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprint(user.ID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// VerifySessionToken parses and validates a session cookie value.
func VerifySessionToken(tokenString string) (*SessionClaims, error) {
	secret := os.Getenv("SESSION_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SESSION_SECRET not set")
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid session token")
	}

	return claims, nil
}
