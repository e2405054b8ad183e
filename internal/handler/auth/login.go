// File: internal/handler/auth/login.go
package auth

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"item-catalog/internal/cache"
	"item-catalog/internal/database"
	"item-catalog/internal/middleware"
	"item-catalog/internal/model"
	"item-catalog/internal/provider"
	"item-catalog/internal/service"
	"item-catalog/internal/store"
	"item-catalog/internal/view"

	"github.com/labstack/echo/v4"
)

const sessionTTL = 24 * time.Hour

var (
	issueLoginState   = service.IssueLoginState
	consumeLoginState = service.ConsumeLoginState
	issueSessionToken = service.IssueSessionToken
	getUserByEmail    = store.GetUserByEmail
	createUser        = store.CreateUser
)

// LoginHandler starts the provider login: already signed-in visitors go
// straight to the catalog, everyone else is redirected to the provider
// with a fresh one-shot state nonce.
func LoginHandler(rdb cache.Cache, p provider.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		if middleware.SessionFromContext(c) != nil {
			return c.Redirect(http.StatusSeeOther, "/catalog/")
		}
		state, err := issueLoginState(c.Request().Context(), rdb)
		if err != nil {
			return c.Render(http.StatusInternalServerError, "provider_error.html",
				view.MessagePage{Message: "Could not start the sign-in flow. Try again later."})
		}
		return c.Redirect(http.StatusFound, p.AuthCodeURL(state))
	}
}

// CallbackHandler finishes the provider login. A profile without a
// display name is rejected before any User row is created.
func CallbackHandler(db database.DB, rdb cache.Cache, p provider.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		if err := consumeLoginState(ctx, rdb, c.QueryParam("state")); err != nil {
			return c.Redirect(http.StatusSeeOther, "/catalog/")
		}
		code := c.QueryParam("code")
		if code == "" {
			return c.Redirect(http.StatusSeeOther, "/catalog/")
		}

		token, err := p.Exchange(ctx, code)
		if err != nil {
			middleware.ClearSessionCookie(c)
			return c.Render(http.StatusBadGateway, "provider_error.html",
				view.MessagePage{Message: "Could not complete the sign-in with Google."})
		}

		profile, err := p.FetchProfile(ctx, token)
		if err != nil {
			middleware.ClearSessionCookie(c)
			return c.Render(http.StatusBadGateway, "provider_error.html",
				view.MessagePage{Message: "Could not read your Google profile."})
		}

		if profile.Name == "" {
			// Unusable account: revoke, clear, and never create a row.
			_ = p.Revoke(ctx, token)
			middleware.ClearSessionCookie(c)
			return c.Render(http.StatusOK, "need_account.html", nil)
		}

		email := strings.ToLower(profile.Email)
		user, err := getUserByEmail(ctx, db, email)
		if err != nil {
			if !errors.Is(err, store.ErrNotFound) {
				return echo.NewHTTPError(http.StatusInternalServerError, "user lookup failed")
			}
			user, err = createUser(ctx, db, &model.User{Name: profile.Name, Email: email})
			if err != nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "user creation failed")
			}
		}

		sessionToken, err := issueSessionToken(*user, token, sessionTTL)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "session issue failed")
		}
		middleware.SetSessionCookie(c, sessionToken, int(sessionTTL.Seconds()))
		return c.Redirect(http.StatusSeeOther, "/catalog/")
	}
}

// LogoutHandler revokes the provider token and clears the session. The
// session is cleared even when revocation fails.
func LogoutHandler(p provider.Provider) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims := middleware.SessionFromContext(c)
		if claims == nil {
			return c.Redirect(http.StatusSeeOther, "/catalog/")
		}

		err := p.Revoke(c.Request().Context(), claims.ProviderToken)
		middleware.ClearSessionCookie(c)
		if err != nil {
			return c.Render(http.StatusBadGateway, "provider_error.html",
				view.MessagePage{Message: "You have been logged out, but Google did not confirm the token revocation."})
		}
		return c.Redirect(http.StatusSeeOther, "/logged_out")
	}
}

// LoggedOutHandler renders the goodbye page.
func LoggedOutHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.Render(http.StatusOK, "logged_out.html", nil)
	}
}
