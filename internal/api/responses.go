// File: internal/api/responses.go
package api

import (
	"time"

	"item-catalog/internal/model"
)

// CategoryResponse is the JSON form of a category.
type CategoryResponse struct {
	ID   int    `json:"id" example:"1"`
	Name string `json:"name" example:"Soccer"`
}

// UserResponse is the JSON form of a user.
type UserResponse struct {
	ID        int       `json:"id" example:"1"`
	Name      string    `json:"name" example:"Alice"`
	Email     string    `json:"email" example:"alice@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

// ItemResponse is the JSON form of an item.
type ItemResponse struct {
	ID          int       `json:"id" example:"11"`
	Name        string    `json:"name" example:"Snowboard"`
	Description string    `json:"description" example:"Best for any terrain"`
	CategoryID  int       `json:"category_id" example:"3"`
	OwnerID     int       `json:"owner_id" example:"7"`
	CreatedAt   time.Time `json:"created_at" example:"2025-05-01T15:04:05Z"`
}

func NewCategoryResponse(cat model.Category) CategoryResponse {
	return CategoryResponse{ID: cat.ID, Name: cat.Name}
}

func NewCategoryResponses(cats []model.Category) []CategoryResponse {
	out := make([]CategoryResponse, 0, len(cats))
	for _, cat := range cats {
		out = append(out, NewCategoryResponse(cat))
	}
	return out
}

func NewUserResponses(users []model.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, UserResponse{ID: u.ID, Name: u.Name, Email: u.Email, CreatedAt: u.CreatedAt})
	}
	return out
}

func NewItemResponse(it model.Item) ItemResponse {
	return ItemResponse{
		ID:          it.ID,
		Name:        it.Name,
		Description: it.Description,
		CategoryID:  it.CategoryID,
		OwnerID:     it.OwnerID,
		CreatedAt:   it.CreatedAt,
	}
}

func NewItemResponses(items []model.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, NewItemResponse(it))
	}
	return out
}
