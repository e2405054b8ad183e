// File: internal/model/item.go
package model

import "time"

// Item belongs to exactly one Category and one owning User. OwnerID is
// fixed at creation; there is no transfer of ownership.
type Item struct {
	ID          int       `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CategoryID  int       `db:"category_id" json:"category_id"`
	OwnerID     int       `db:"owner_id" json:"owner_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
