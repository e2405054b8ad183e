// File: internal/handler/ping.go
package handler

import (
	"errors"
	"net/http"

	"item-catalog/internal/api"
	"item-catalog/internal/cache"
	"item-catalog/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// PingResponse is the health-check body.
type PingResponse struct {
	Message string `json:"message" example:"pong"`
}

// PingHandler reports whether the database and cache are reachable.
// @Summary     Health check
// @Description Returns pong when the database and cache respond
// @Tags        health
// @Produce     json
// @Success     200 {object} PingResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /ping [get]
func PingHandler(db database.DB, rdb cache.Cache) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := db.Ping(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "database unhealthy"})
		}
		// A missing key still proves the cache answers.
		if err := rdb.Get(ctx, "ping").Err(); err != nil && !errors.Is(err, redis.Nil) {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "cache unhealthy"})
		}
		return c.JSON(http.StatusOK, PingResponse{Message: "pong"})
	}
}
