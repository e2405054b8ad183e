// File: internal/provider/provider.go
package provider

import "context"

// Profile is what the catalog needs from the identity provider. A
// profile without a display name is unusable and must be rejected by
// the caller before any User row is created.
type Profile struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// Provider is the identity-provider adapter. It is the only seam that
// knows OAuth specifics; everything else sees redirects, profiles, and
// opaque access tokens.
type Provider interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (string, error)
	FetchProfile(ctx context.Context, accessToken string) (*Profile, error)
	Revoke(ctx context.Context, accessToken string) error
}

type FakeProvider struct {
	AuthCodeURLFn  func(state string) string
	ExchangeFn     func(ctx context.Context, code string) (string, error)
	FetchProfileFn func(ctx context.Context, accessToken string) (*Profile, error)
	RevokeFn       func(ctx context.Context, accessToken string) error
}

func (f *FakeProvider) AuthCodeURL(state string) string {
	if f.AuthCodeURLFn != nil {
		return f.AuthCodeURLFn(state)
	}
	panic("unexpected AuthCodeURL")
}

func (f *FakeProvider) Exchange(ctx context.Context, code string) (string, error) {
	if f.ExchangeFn != nil {
		return f.ExchangeFn(ctx, code)
	}
	panic("unexpected Exchange")
}

func (f *FakeProvider) FetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	if f.FetchProfileFn != nil {
		return f.FetchProfileFn(ctx, accessToken)
	}
	panic("unexpected FetchProfile")
}

func (f *FakeProvider) Revoke(ctx context.Context, accessToken string) error {
	if f.RevokeFn != nil {
		return f.RevokeFn(ctx, accessToken)
	}
	panic("unexpected Revoke")
}
