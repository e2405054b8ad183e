// File: internal/handler/catalog/new_item.go
package catalog

import (
	"fmt"
	"net/http"

	"item-catalog/internal/api"
	"item-catalog/internal/database"
	"item-catalog/internal/middleware"
	"item-catalog/internal/model"
	"item-catalog/internal/view"

	"github.com/labstack/echo/v4"
)

// NewItemFormHandler shows the create form.
func NewItemFormHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cat, _, err := loadCategoryAndRequester(c, db)
		if err != nil {
			return respondPreambleError(c, err)
		}
		return c.Render(http.StatusOK, "new_item.html", view.ItemFormPage{Category: *cat})
	}
}

// CreateItemHandler persists a new item owned by the requester. No
// ownership check applies here; the owner is the resolved requester by
// construction.
func CreateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cat, requester, err := loadCategoryAndRequester(c, db)
		if err != nil {
			return respondPreambleError(c, err)
		}
		listingURL := fmt.Sprintf("/catalog/%d", cat.ID)

		var form api.ItemForm
		if err := c.Bind(&form); err != nil {
			middleware.SetFlash(c, "Item not saved. Invalid form data.")
			return c.Redirect(http.StatusSeeOther, listingURL)
		}
		if err := c.Validate(&form); err != nil {
			middleware.SetFlash(c, "Item not saved. All fields must be filled in. Try again.")
			return c.Redirect(http.StatusSeeOther, listingURL)
		}

		_, err = createItem(c.Request().Context(), db, &model.Item{
			Name:        form.Name,
			Description: form.Description,
			CategoryID:  cat.ID,
			OwnerID:     requester.ID,
		})
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "item creation failed")
		}

		middleware.SetFlash(c, "New Item Successfully Created")
		return c.Redirect(http.StatusSeeOther, listingURL)
	}
}
