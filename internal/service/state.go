// File: internal/service/state.go
package service

import (
	"context"
	"fmt"
	"time"

	"item-catalog/internal/cache"

	"github.com/google/uuid"
)

// loginStateTTL bounds how long a login redirect may stay pending.
const loginStateTTL = 10 * time.Minute

// newStateNonce is overridable in tests.
var newStateNonce = uuid.NewString

func stateKey(state string) string {
	return "login_state:" + state
}

// IssueLoginState stores a fresh nonce in the cache and returns it. The
// nonce ties an OAuth callback to the login redirect that started it.
func IssueLoginState(ctx context.Context, c cache.Cache) (string, error) {
	state := newStateNonce()
	if err := c.Set(ctx, stateKey(state), "1", loginStateTTL).Err(); err != nil {
		return "", fmt.Errorf("IssueLoginState: %w", err)
	}
	return state, nil
}

// ConsumeLoginState validates a callback state and deletes it so it can
// be used at most once.
func ConsumeLoginState(ctx context.Context, c cache.Cache, state string) error {
	if state == "" {
		return fmt.Errorf("ConsumeLoginState: empty state")
	}
	if err := c.Get(ctx, stateKey(state)).Err(); err != nil {
		return fmt.Errorf("ConsumeLoginState: unknown state: %w", err)
	}
	if err := c.Del(ctx, stateKey(state)).Err(); err != nil {
		return fmt.Errorf("ConsumeLoginState: %w", err)
	}
	return nil
}
