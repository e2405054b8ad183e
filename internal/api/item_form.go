// File: internal/api/item_form.go
package api

// ItemForm carries a new-item or edit submission. Both fields are
// required; an empty one must never reach the store.
type ItemForm struct {
	Name        string `form:"name" validate:"required"`
	Description string `form:"description" validate:"required"`
}
