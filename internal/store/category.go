package store

import (
	"context"
	"errors"
	"fmt"

	"item-catalog/internal/database"
	"item-catalog/internal/model"

	"github.com/jackc/pgx/v5"
)

func GetCategoryByID(ctx context.Context, db database.DB, categoryID int) (*model.Category, error) {
	row := db.QueryRow(ctx,
		`SELECT id, name FROM categories WHERE id = $1`,
		categoryID,
	)
	cat := &model.Category{}
	if err := row.Scan(&cat.ID, &cat.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetCategoryByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetCategoryByID: %w", err)
	}
	return cat, nil
}

func ListCategories(ctx context.Context, db database.DB) ([]model.Category, error) {
	rows, err := db.Query(ctx,
		`SELECT id, name FROM categories ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	defer rows.Close()

	var cats []model.Category
	for rows.Next() {
		var cat model.Category
		if err := rows.Scan(&cat.ID, &cat.Name); err != nil {
			return nil, fmt.Errorf("ListCategories: %w", err)
		}
		cats = append(cats, cat)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListCategories: %w", err)
	}
	return cats, nil
}
