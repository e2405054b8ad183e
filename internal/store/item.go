package store

import (
	"context"
	"errors"
	"fmt"

	"item-catalog/internal/database"
	"item-catalog/internal/model"

	"github.com/jackc/pgx/v5"
)

const itemColumns = `id, name, description, category_id, owner_id, created_at`

func scanItem(row pgx.Row) (*model.Item, error) {
	it := &model.Item{}
	err := row.Scan(
		&it.ID,
		&it.Name,
		&it.Description,
		&it.CategoryID,
		&it.OwnerID,
		&it.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return it, nil
}

func collectItems(rows pgx.Rows) ([]model.Item, error) {
	defer rows.Close()
	var items []model.Item
	for rows.Next() {
		var it model.Item
		if err := rows.Scan(
			&it.ID,
			&it.Name,
			&it.Description,
			&it.CategoryID,
			&it.OwnerID,
			&it.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func GetItemByID(ctx context.Context, db database.DB, itemID int) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`SELECT `+itemColumns+` FROM items WHERE id = $1`,
		itemID,
	)
	it, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("GetItemByID: %w", ErrNotFound)
		}
		return nil, fmt.Errorf("GetItemByID: %w", err)
	}
	return it, nil
}

func ListItems(ctx context.Context, db database.DB) ([]model.Item, error) {
	rows, err := db.Query(ctx,
		`SELECT `+itemColumns+` FROM items ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, fmt.Errorf("ListItems: %w", err)
	}
	return items, nil
}

func ListItemsByCategory(ctx context.Context, db database.DB, categoryID int) ([]model.Item, error) {
	rows, err := db.Query(ctx,
		`SELECT `+itemColumns+` FROM items WHERE category_id = $1 ORDER BY id`,
		categoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListItemsByCategory: %w", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, fmt.Errorf("ListItemsByCategory: %w", err)
	}
	return items, nil
}

func ListItemsByCategoryAndOwner(ctx context.Context, db database.DB, categoryID, ownerID int) ([]model.Item, error) {
	rows, err := db.Query(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE category_id = $1 AND owner_id = $2 ORDER BY id`,
		categoryID,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListItemsByCategoryAndOwner: %w", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, fmt.Errorf("ListItemsByCategoryAndOwner: %w", err)
	}
	return items, nil
}

func ListItemsByOwner(ctx context.Context, db database.DB, ownerID, limit int) ([]model.Item, error) {
	rows, err := db.Query(ctx,
		`SELECT `+itemColumns+` FROM items
		 WHERE owner_id = $1 ORDER BY created_at DESC LIMIT $2`,
		ownerID,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListItemsByOwner: %w", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, fmt.Errorf("ListItemsByOwner: %w", err)
	}
	return items, nil
}

func ListRecentItems(ctx context.Context, db database.DB, limit int) ([]model.Item, error) {
	rows, err := db.Query(ctx,
		`SELECT `+itemColumns+` FROM items
		 ORDER BY created_at DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("ListRecentItems: %w", err)
	}
	items, err := collectItems(rows)
	if err != nil {
		return nil, fmt.Errorf("ListRecentItems: %w", err)
	}
	return items, nil
}

func CreateItem(ctx context.Context, db database.DB, it *model.Item) (*model.Item, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO items (name, description, category_id, owner_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		it.Name,
		it.Description,
		it.CategoryID,
		it.OwnerID,
	)
	if err := row.Scan(&it.ID, &it.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateItem: %w", err)
	}
	return it, nil
}

// UpdateItem rewrites name and description only; category and owner are
// fixed after creation.
func UpdateItem(ctx context.Context, db database.DB, it *model.Item) error {
	_, err := db.Exec(ctx,
		`UPDATE items SET name = $1, description = $2 WHERE id = $3`,
		it.Name,
		it.Description,
		it.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateItem: %w", err)
	}
	return nil
}

func DeleteItem(ctx context.Context, db database.DB, itemID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM items WHERE id = $1`,
		itemID,
	)
	if err != nil {
		return fmt.Errorf("DeleteItem: %w", err)
	}
	return nil
}
