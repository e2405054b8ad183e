// File: internal/service/policy.go
package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"item-catalog/internal/database"
	"item-catalog/internal/model"
	"item-catalog/internal/store"
)

// ErrNotOwner reports a mutation attempt by an authenticated user who
// does not own the item. Handlers answer it with an explicit 403.
var ErrNotOwner = errors.New("not the item owner")

// getUserByEmail is overridable in tests.
var getUserByEmail = store.GetUserByEmail

// AuthorizeItemOwner allows a mutation iff the requester owns the item.
// A zero requester id never matches; resolution failures upstream must
// not degrade into a match-everything owner.
func AuthorizeItemOwner(requesterID int, item *model.Item) error {
	if requesterID == 0 || item == nil || item.OwnerID != requesterID {
		return ErrNotOwner
	}
	return nil
}

// ResolveRequester maps the session email to its User row. Fails closed:
// any miss or store error means the requester is unknown, and the caller
// treats that as unauthenticated.
func ResolveRequester(ctx context.Context, db database.DB, claims *SessionClaims) (*model.User, error) {
	if claims == nil || claims.Email == "" {
		return nil, fmt.Errorf("ResolveRequester: no session")
	}
	user, err := getUserByEmail(ctx, db, strings.ToLower(claims.Email))
	if err != nil {
		return nil, fmt.Errorf("ResolveRequester: %w", err)
	}
	return user, nil
}
