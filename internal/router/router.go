// File: internal/router/router.go
package router

import (
	"item-catalog/internal/cache"
	"item-catalog/internal/database"
	"item-catalog/internal/handler"
	"item-catalog/internal/handler/auth"
	"item-catalog/internal/handler/catalog"
	"item-catalog/internal/middleware"
	"item-catalog/internal/provider"

	"github.com/labstack/echo/v4"
)

// Setup registers every route with its middleware.
func Setup(e *echo.Echo, db database.DB, rdb cache.Cache, p provider.Provider) {
	e.GET("/ping", handler.PingHandler(db, rdb))

	// Catalog pages
	e.GET("/", catalog.CatalogHandler(db), middleware.LoadSession)
	e.GET("/catalog/", catalog.CatalogHandler(db), middleware.LoadSession)
	e.GET("/catalog/:category_id", catalog.ItemsHandler(db), middleware.RequireAuth)

	// Item mutations (authenticated; ownership enforced in handlers)
	e.GET("/catalog/:category_id/new/", catalog.NewItemFormHandler(db), middleware.RequireAuth)
	e.POST("/catalog/:category_id/new/", catalog.CreateItemHandler(db), middleware.RequireAuth)
	e.GET("/catalog/:category_id/:item_id/edit/", catalog.EditItemFormHandler(db), middleware.RequireAuth)
	e.POST("/catalog/:category_id/:item_id/edit/", catalog.UpdateItemHandler(db), middleware.RequireAuth)
	e.GET("/catalog/:category_id/:item_id/delete/", catalog.DeleteItemFormHandler(db), middleware.RequireAuth)
	e.POST("/catalog/:category_id/:item_id/delete/", catalog.DeleteItemHandler(db), middleware.RequireAuth)

	// Public JSON endpoints
	e.GET("/catalog/JSON", catalog.CatalogJSONHandler(db))
	e.GET("/catalog/users/JSON", catalog.UsersJSONHandler(db))
	e.GET("/catalog/items/JSON", catalog.ItemsJSONHandler(db))
	e.GET("/catalog/:category_id/JSON", catalog.CategoryItemsJSONHandler(db))

	// Identity-provider flow
	e.GET("/google", auth.LoginHandler(rdb, p), middleware.LoadSession)
	e.GET("/google/callback", auth.CallbackHandler(db, rdb, p))
	e.GET("/logout", auth.LogoutHandler(p), middleware.LoadSession)
	e.GET("/logged_out", auth.LoggedOutHandler())
}
