// File: internal/model/category.go
package model

// Category is static reference data seeded by migration; the UI never
// creates or edits rows.
type Category struct {
	ID   int    `db:"id" json:"id"`
	Name string `db:"name" json:"name"`
}
