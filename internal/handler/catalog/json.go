// File: internal/handler/catalog/json.go
package catalog

import (
	"net/http"
	"strconv"

	"item-catalog/internal/api"
	"item-catalog/internal/database"

	"github.com/labstack/echo/v4"
)

// CatalogJSONHandler lists every category.
// @Summary     List categories
// @Description Returns every catalog category
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string][]api.CategoryResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /catalog/JSON [get]
func CatalogJSONHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cats, err := listCategories(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "category listing failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"catalog": api.NewCategoryResponses(cats)})
	}
}

// UsersJSONHandler lists every user.
// @Summary     List users
// @Description Returns every registered user
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string][]api.UserResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /catalog/users/JSON [get]
func UsersJSONHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		users, err := listUsers(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "user listing failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"users": api.NewUserResponses(users)})
	}
}

// ItemsJSONHandler lists every item.
// @Summary     List items
// @Description Returns every item in the catalog
// @Tags        catalog
// @Produce     json
// @Success     200 {object} map[string][]api.ItemResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /catalog/items/JSON [get]
func ItemsJSONHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		items, err := listItems(c.Request().Context(), db)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "item listing failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": api.NewItemResponses(items)})
	}
}

// CategoryItemsJSONHandler lists the items of one category.
// @Summary     List items in a category
// @Description Returns the items belonging to the given category
// @Tags        catalog
// @Produce     json
// @Param       category_id path int true "Category ID"
// @Success     200 {object} map[string][]api.ItemResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /catalog/{category_id}/JSON [get]
func CategoryItemsJSONHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		categoryID, err := strconv.Atoi(c.Param("category_id"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "no such category"})
		}
		cat, err := getCategoryByID(ctx, db, categoryID)
		if err != nil {
			if isNotFound(err) {
				return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "no such category"})
			}
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "category lookup failed"})
		}

		items, err := listItemsByCategory(ctx, db, cat.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "item listing failed"})
		}
		return c.JSON(http.StatusOK, echo.Map{"items": api.NewItemResponses(items)})
	}
}
