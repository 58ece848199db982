package model

import "time"

// AuthToken is the persisted Microsoft identity credential pair.
type AuthToken struct {
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	TokenType    string    `json:"token_type"`
	Expiry       time.Time `json:"expiry"`
}

// expirySkew forces a refresh shortly before the real expiry so an access
// token never reaches Graph already expired.
const expirySkew = 5 * time.Minute

// Valid reports whether the access token can still be sent to Graph.
func (t *AuthToken) Valid() bool {
	if t == nil || t.AccessToken == "" {
		return false
	}
	if t.Expiry.IsZero() {
		return false
	}
	return time.Until(t.Expiry) > expirySkew
}

// Refreshable reports whether a silent refresh can be attempted.
func (t *AuthToken) Refreshable() bool {
	return t != nil && t.RefreshToken != ""
}
