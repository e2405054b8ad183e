package store

import (
	"context"
	"errors"
	"testing"

	"item-catalog/internal/database"
	"item-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeCategoryRow struct {
	scanErr error
	cat     *model.Category
}

func (r *fakeCategoryRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	*dest[0].(*int) = r.cat.ID
	*dest[1].(*string) = r.cat.Name
	return nil
}

type fakeCategoryRows struct {
	cats    []model.Category
	idx     int
	rowsErr error
}

func (r *fakeCategoryRows) Close()                                       {}
func (r *fakeCategoryRows) Err() error                                   { return r.rowsErr }
func (r *fakeCategoryRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeCategoryRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeCategoryRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeCategoryRows) RawValues() [][]byte                          { return nil }
func (r *fakeCategoryRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeCategoryRows) Next() bool { return r.idx < len(r.cats) }

func (r *fakeCategoryRows) Scan(dest ...any) error {
	cat := r.cats[r.idx]
	r.idx++
	*dest[0].(*int) = cat.ID
	*dest[1].(*string) = cat.Name
	return nil
}

func TestCategoryStore(t *testing.T) {
	sample := &model.Category{ID: 3, Name: "Snowboarding"}

	t.Run("GetCategoryByID success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCategoryRow{cat: sample}
			},
		}
		cat, err := GetCategoryByID(context.Background(), db, 3)
		require.NoError(t, err)
		require.Equal(t, "Snowboarding", cat.Name)
	})

	t.Run("GetCategoryByID not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeCategoryRow{scanErr: pgx.ErrNoRows}
			},
		}
		cat, err := GetCategoryByID(context.Background(), db, 404)
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, cat)
	})

	t.Run("ListCategories success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeCategoryRows{cats: []model.Category{
					{ID: 1, Name: "Soccer"},
					{ID: 2, Name: "Basketball"},
				}}, nil
			},
		}
		cats, err := ListCategories(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, cats, 2)
		require.Equal(t, "Soccer", cats[0].Name)
	})

	t.Run("ListCategories query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("down")
			},
		}
		_, err := ListCategories(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("ListCategories rows error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeCategoryRows{rowsErr: errors.New("late")}, nil
			},
		}
		_, err := ListCategories(context.Background(), db)
		require.Error(t, err)
	})
}
