// File: internal/handler/catalog/edit_item.go
package catalog

import (
	"fmt"
	"net/http"

	"item-catalog/internal/api"
	"item-catalog/internal/database"
	"item-catalog/internal/middleware"
	"item-catalog/internal/model"
	"item-catalog/internal/service"
	"item-catalog/internal/view"

	"github.com/labstack/echo/v4"
)

// loadOwnedItem extends the preamble with the item lookup and the
// ownership check. Non-owners get an explicit 403, never a silent
// redirect or a no-op.
func loadOwnedItem(c echo.Context, db database.DB, action string) (*model.Category, *model.Item, error) {
	cat, requester, err := loadCategoryAndRequester(c, db)
	if err != nil {
		return nil, nil, err
	}

	itemID, err := itemParam(c)
	if err != nil {
		return nil, nil, err
	}
	item, err := getItemByID(c.Request().Context(), db, itemID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, echo.NewHTTPError(http.StatusNotFound, "no such item")
		}
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "item lookup failed")
	}

	if err := service.AuthorizeItemOwner(requester.ID, item); err != nil {
		return nil, nil, echo.NewHTTPError(http.StatusForbidden,
			fmt.Sprintf("You are not authorized to %s this item.", action))
	}
	return cat, item, nil
}

// EditItemFormHandler shows the edit form to the item's owner.
func EditItemFormHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cat, item, err := loadOwnedItem(c, db, "edit")
		if err != nil {
			return respondPreambleError(c, err)
		}
		return c.Render(http.StatusOK, "edit_item.html", view.ItemFormPage{Category: *cat, Item: *item})
	}
}

// UpdateItemHandler rewrites the item's name and description.
func UpdateItemHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		cat, item, err := loadOwnedItem(c, db, "edit")
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

		item.Name = form.Name
		item.Description = form.Description
		if err := updateItem(c.Request().Context(), db, item); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "item update failed")
		}

		middleware.SetFlash(c, "Item edited successfully!")
		return c.Redirect(http.StatusSeeOther, listingURL)
	}
}
