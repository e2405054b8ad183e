package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"item-catalog/internal/cache"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func restoreState() {
	newStateNonce = uuid.NewString
}

func TestIssueLoginState(t *testing.T) {
	t.Cleanup(restoreState)
	newStateNonce = func() string { return "nonce-1" }

	var gotKey string
	var gotTTL time.Duration
	c := &cache.FakeCache{
		SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
			gotKey = key
			gotTTL = ttl
			return redis.NewStatusResult("OK", nil)
		},
	}
	state, err := IssueLoginState(context.Background(), c)
	require.NoError(t, err)
	require.Equal(t, "nonce-1", state)
	require.Equal(t, "login_state:nonce-1", gotKey)
	require.Equal(t, 10*time.Minute, gotTTL)
}

func TestIssueLoginStateError(t *testing.T) {
	c := &cache.FakeCache{
		SetFn: func(context.Context, string, any, time.Duration) *redis.StatusCmd {
			return redis.NewStatusResult("", errors.New("redis down"))
		},
	}
	_, err := IssueLoginState(context.Background(), c)
	require.Error(t, err)
}

func TestConsumeLoginState(t *testing.T) {
	t.Run("valid state is single use", func(t *testing.T) {
		stored := map[string]string{"login_state:nonce-1": "1"}
		c := &cache.FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				if v, ok := stored[key]; ok {
					return redis.NewStringResult(v, nil)
				}
				return redis.NewStringResult("", redis.Nil)
			},
			DelFn: func(_ context.Context, keys ...string) *redis.IntCmd {
				for _, k := range keys {
					delete(stored, k)
				}
				return redis.NewIntResult(1, nil)
			},
		}
		require.NoError(t, ConsumeLoginState(context.Background(), c, "nonce-1"))
		require.Error(t, ConsumeLoginState(context.Background(), c, "nonce-1"))
	})

	t.Run("empty state", func(t *testing.T) {
		require.Error(t, ConsumeLoginState(context.Background(), &cache.FakeCache{}, ""))
	})

	t.Run("unknown state", func(t *testing.T) {
		c := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
		}
		require.Error(t, ConsumeLoginState(context.Background(), c, "forged"))
	})

	t.Run("delete error", func(t *testing.T) {
		c := &cache.FakeCache{
			GetFn: func(context.Context, string) *redis.StringCmd {
				return redis.NewStringResult("1", nil)
			},
			DelFn: func(context.Context, ...string) *redis.IntCmd {
				return redis.NewIntResult(0, errors.New("redis down"))
			},
		}
		require.Error(t, ConsumeLoginState(context.Background(), c, "nonce-2"))
	})
}
