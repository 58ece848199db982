package repository

import "youtube-summarizer/domain/model"

// ITokenStore persists the AuthToken between runs. Load returns (nil, nil)
// when no token has been stored yet.
type ITokenStore interface {
	Load() (*model.AuthToken, error)
	Save(token *model.AuthToken) error
	Clear() error
}
