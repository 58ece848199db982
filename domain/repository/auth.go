package repository

import "context"

// ITokenProvider hands out a valid Microsoft Graph access token, refreshing
// or re-authenticating as needed. Graph callers never manage tokens
// themselves.
type ITokenProvider interface {
	GetAccessToken(ctx context.Context) (string, error)
	// AccountName returns the signed-in account for display, or "" when the
	// token carries no usable identity claim.
	AccountName(ctx context.Context) string
	// ClearCache deletes persisted token state, forcing interactive login on
	// the next acquisition.
	ClearCache() error
}
