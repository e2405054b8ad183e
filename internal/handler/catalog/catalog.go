// File: internal/handler/catalog/catalog.go
package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"item-catalog/internal/database"
	"item-catalog/internal/middleware"
	"item-catalog/internal/model"
	"item-catalog/internal/service"
	"item-catalog/internal/store"
	"item-catalog/internal/view"

	"github.com/labstack/echo/v4"
)

// recentItemsLimit caps the home-page listing.
const recentItemsLimit = 10

var (
	listCategories              = store.ListCategories
	getCategoryByID             = store.GetCategoryByID
	listItems                   = store.ListItems
	listItemsByCategory         = store.ListItemsByCategory
	listItemsByCategoryAndOwner = store.ListItemsByCategoryAndOwner
	listItemsByOwner            = store.ListItemsByOwner
	listRecentItems             = store.ListRecentItems
	listUsers                   = store.ListUsers
	getItemByID                 = store.GetItemByID
	createItem                  = store.CreateItem
	updateItem                  = store.UpdateItem
	deleteItem                  = store.DeleteItem
	resolveRequester            = service.ResolveRequester
)

func categoryParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("category_id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "no such category")
	}
	return id, nil
}

func itemParam(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("item_id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusNotFound, "no such item")
	}
	return id, nil
}

// CatalogHandler serves the home page: every category plus the ten most
// recent items. Signed-in visitors see their own items; anonymous ones
// see everyone's. Whose items are shown is always explicit here.
func CatalogHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		cats, err := listCategories(ctx, db)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "category listing failed")
		}
		flash := middleware.TakeFlash(c)

		if claims := middleware.SessionFromContext(c); claims != nil {
			requester, err := resolveRequester(ctx, db, claims)
			if err == nil {
				items, err := listItemsByOwner(ctx, db, requester.ID, recentItemsLimit)
				if err != nil {
					return echo.NewHTTPError(http.StatusInternalServerError, "item listing failed")
				}
				return c.Render(http.StatusOK, "logged_in.html", view.CatalogPage{
					UserName:   requester.Name,
					Categories: cats,
					Items:      items,
					Flash:      flash,
				})
			}
			// Unresolvable session: treat as anonymous.
			middleware.ClearSessionCookie(c)
		}

		items, err := listRecentItems(ctx, db, recentItemsLimit)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "item listing failed")
		}
		return c.Render(http.StatusOK, "catalog.html", view.CatalogPage{
			Categories: cats,
			Items:      items,
			Flash:      flash,
		})
	}
}

// ItemsHandler lists the requester's items in one category.
func ItemsHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()

		categoryID, err := categoryParam(c)
		if err != nil {
			return err
		}
		cat, err := getCategoryByID(ctx, db, categoryID)
		if err != nil {
			if isNotFound(err) {
				return echo.NewHTTPError(http.StatusNotFound, "no such category")
			}
			return echo.NewHTTPError(http.StatusInternalServerError, "category lookup failed")
		}

		requester, err := resolveRequester(ctx, db, middleware.SessionFromContext(c))
		if err != nil {
			middleware.ClearSessionCookie(c)
			return c.Redirect(http.StatusSeeOther, "/catalog/")
		}

		items, err := listItemsByCategoryAndOwner(ctx, db, cat.ID, requester.ID)
		if err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, "item listing failed")
		}

		return c.Render(http.StatusOK, "items.html", view.ItemsPage{
			Category: *cat,
			Items:    items,
			Creator:  *requester,
			Flash:    middleware.TakeFlash(c),
		})
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, store.ErrNotFound)
}

// errUnauthenticated signals that the session email resolved to no
// user; callers answer with a redirect to the catalog root.
var errUnauthenticated = errors.New("requester not resolvable")

// loadCategoryAndRequester is the shared preamble of the mutation
// handlers: the category must exist and the requester must resolve
// (fail closed on any resolution error).
func loadCategoryAndRequester(c echo.Context, db database.DB) (*model.Category, *model.User, error) {
	ctx := c.Request().Context()

	categoryID, err := categoryParam(c)
	if err != nil {
		return nil, nil, err
	}
	cat, err := getCategoryByID(ctx, db, categoryID)
	if err != nil {
		if isNotFound(err) {
			return nil, nil, echo.NewHTTPError(http.StatusNotFound, "no such category")
		}
		return nil, nil, echo.NewHTTPError(http.StatusInternalServerError, "category lookup failed")
	}

	requester, err := resolveRequester(ctx, db, middleware.SessionFromContext(c))
	if err != nil {
		middleware.ClearSessionCookie(c)
		return nil, nil, errUnauthenticated
	}
	return cat, requester, nil
}

// respond maps loadCategoryAndRequester failures to their responses.
func respondPreambleError(c echo.Context, err error) error {
	if errors.Is(err, errUnauthenticated) {
		return c.Redirect(http.StatusSeeOther, "/catalog/")
	}
	return err
}
