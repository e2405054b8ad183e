// File: internal/store/user_test.go
package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"item-catalog/internal/database"
	"item-catalog/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeUserRow serves two Scan shapes:
// 1) len(dest)==4 -> GetUserByEmail
// 2) len(dest)==2 -> CreateUser (id, created_at)
type fakeUserRow struct {
	scanErr error
	user    *model.User
}

func (r *fakeUserRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.user
	switch len(dest) {
	case 4:
		*dest[0].(*int) = u.ID
		*dest[1].(*string) = u.Name
		*dest[2].(*string) = u.Email
		*dest[3].(*time.Time) = u.CreatedAt
	case 2:
		*dest[0].(*int) = u.ID
		*dest[1].(*time.Time) = u.CreatedAt
	default:
		panic("fakeUserRow.Scan: unexpected dest count")
	}
	return nil
}

// fakeUserRows feeds ListUsers.
type fakeUserRows struct {
	users   []model.User
	idx     int
	scanErr error
	rowsErr error
}

func (r *fakeUserRows) Close()                                       {}
func (r *fakeUserRows) Err() error                                   { return r.rowsErr }
func (r *fakeUserRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeUserRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeUserRows) Values() ([]any, error)                       { return nil, nil }
func (r *fakeUserRows) RawValues() [][]byte                          { return nil }
func (r *fakeUserRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeUserRows) Next() bool {
	return r.idx < len(r.users)
}

func (r *fakeUserRows) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.users[r.idx]
	r.idx++
	*dest[0].(*int) = u.ID
	*dest[1].(*string) = u.Name
	*dest[2].(*string) = u.Email
	*dest[3].(*time.Time) = u.CreatedAt
	return nil
}

func TestUserStore(t *testing.T) {
	now := time.Now().UTC()
	sample := &model.User{
		ID:        7,
		Name:      "Alice",
		Email:     "alice@example.com",
		CreatedAt: now,
	}

	t.Run("GetUserByEmail success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{user: sample}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, 7, u.ID)
		require.Equal(t, "Alice", u.Name)
	})

	t.Run("GetUserByEmail not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: pgx.ErrNoRows}
			},
		}
		u, err := GetUserByEmail(context.Background(), db, "ghost@example.com")
		require.ErrorIs(t, err, ErrNotFound)
		require.Nil(t, u)
	})

	t.Run("GetUserByEmail scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("boom")}
			},
		}
		_, err := GetUserByEmail(context.Background(), db, "alice@example.com")
		require.Error(t, err)
		require.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("CreateUser success", func(t *testing.T) {
		newUser := &model.User{Name: "Bob", Email: "bob@example.com"}
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				u := *newUser
				u.ID = 42
				u.CreatedAt = now
				return &fakeUserRow{user: &u}
			},
		}
		created, err := CreateUser(context.Background(), db, newUser)
		require.NoError(t, err)
		require.Equal(t, 42, created.ID)
		require.WithinDuration(t, now, created.CreatedAt, time.Second)
	})

	t.Run("CreateUser error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeUserRow{scanErr: errors.New("dup key")}
			},
		}
		_, err := CreateUser(context.Background(), db, &model.User{})
		require.Error(t, err)
	})

	t.Run("find then create then find is idempotent", func(t *testing.T) {
		// The table starts empty; after the create the same email lookup
		// must return exactly the created row.
		var saved *model.User
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				if len(args) == 2 {
					u := &model.User{Name: args[0].(string), Email: args[1].(string), ID: 9, CreatedAt: now}
					saved = u
					return &fakeUserRow{user: u}
				}
				if saved == nil || saved.Email != args[0].(string) {
					return &fakeUserRow{scanErr: pgx.ErrNoRows}
				}
				return &fakeUserRow{user: saved}
			},
		}
		_, err := GetUserByEmail(context.Background(), db, "carol@example.com")
		require.ErrorIs(t, err, ErrNotFound)

		created, err := CreateUser(context.Background(), db, &model.User{Name: "Carol", Email: "carol@example.com"})
		require.NoError(t, err)

		found, err := GetUserByEmail(context.Background(), db, "carol@example.com")
		require.NoError(t, err)
		require.Equal(t, created.ID, found.ID)
		require.Equal(t, created.Email, found.Email)
	})

	t.Run("ListUsers success", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeUserRows{users: []model.User{*sample}}, nil
			},
		}
		users, err := ListUsers(context.Background(), db)
		require.NoError(t, err)
		require.Len(t, users, 1)
		require.Equal(t, "alice@example.com", users[0].Email)
	})

	t.Run("ListUsers query error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return nil, errors.New("conn reset")
			},
		}
		_, err := ListUsers(context.Background(), db)
		require.Error(t, err)
	})

	t.Run("ListUsers scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryFn: func(_ context.Context, _ string, _ ...any) (pgx.Rows, error) {
				return &fakeUserRows{users: []model.User{*sample}, scanErr: errors.New("scan")}, nil
			},
		}
		_, err := ListUsers(context.Background(), db)
		require.Error(t, err)
	})
}
