package middleware

import (
	"net/http"
	"net/url"

	"item-catalog/internal/service"

	"github.com/labstack/echo/v4"
)

const (
	ContextSessionKey = "session"
	flashCookieName   = "catalog_flash"
)

// verifySessionToken is overridable in tests.
var verifySessionToken = service.VerifySessionToken

func extractSession(c echo.Context) (*service.SessionClaims, error) {
	cookie, err := c.Cookie(service.SessionCookieName)
	if err != nil || cookie.Value == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing session")
	}
	claims, err := verifySessionToken(cookie.Value)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid session")
	}
	return claims, nil
}

// LoadSession attaches session claims when a valid cookie is present and
// lets the request through anonymously otherwise.
func LoadSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := extractSession(c); err == nil {
			c.Set(ContextSessionKey, claims)
		}
		return next(c)
	}
}

// RequireAuth redirects browser requests without a valid session to the
// catalog root instead of answering 401.
func RequireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := extractSession(c)
		if err != nil {
			return c.Redirect(http.StatusSeeOther, "/catalog/")
		}
		c.Set(ContextSessionKey, claims)
		return next(c)
	}
}

// SessionFromContext returns the claims set by LoadSession/RequireAuth,
// or nil for an anonymous request.
func SessionFromContext(c echo.Context) *service.SessionClaims {
	claims, _ := c.Get(ContextSessionKey).(*service.SessionClaims)
	return claims
}

// SetSessionCookie installs the signed session token on the response.
func SetSessionCookie(c echo.Context, token string, maxAge int) {
	c.SetCookie(&http.Cookie{
		Name:     service.SessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie.
func ClearSessionCookie(c echo.Context) {
	SetSessionCookie(c, "", -1)
}

// SetFlash stores a one-shot user-visible message for the next render.
func SetFlash(c echo.Context, message string) {
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(message),
		Path:     "/",
		MaxAge:   60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// TakeFlash returns the pending flash message, clearing it.
func TakeFlash(c echo.Context) string {
	cookie, err := c.Cookie(flashCookieName)
	if err != nil || cookie.Value == "" {
		return ""
	}
	c.SetCookie(&http.Cookie{
		Name:     flashCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	msg, err := url.QueryUnescape(cookie.Value)
	if err != nil {
		return ""
	}
	return msg
}
