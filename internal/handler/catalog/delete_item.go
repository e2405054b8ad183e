// File: internal/handler/catalog/delete_item.go
package catalog

import (
	"fmt"
	"net/http"

	"item-catalog/internal/database"
	"item-catalog/internal/middleware"
	"item-catalog/internal/view"

	"github.com/labstack/echo/v4"
)

// DeleteItemFormHandler shows the delete confirmation to the owner.
func DeleteItemFormHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cat, item, err := loadOwnedItem(c, db, "delete")
		if err != nil {
			return respondPreambleError(c, err)
		}
		return c.Render(http.StatusOK, "delete_item.html", view.ItemFormPage{Category: *cat, Item: *item})
	}
}

// DeleteItemHandler removes the item after the ownership check.
func DeleteItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cat, item, err := loadOwnedItem(c, db, "delete")
		if err != nil {
			return respondPreambleError(c, err)
		}

		if err := deleteItem(c.Request().Context(), db, item.ID); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "item deletion failed")
		}

		middleware.SetFlash(c, "Item Deleted Successfully")
		return c.Redirect(http.StatusSeeOther, fmt.Sprintf("/catalog/%d", cat.ID))
	}
}
