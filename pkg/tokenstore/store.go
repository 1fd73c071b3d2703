// Package tokenstore persists token records in PostgreSQL.
package tokenstore

import (
	"context"
	"errors"

	"github.com/memeforge/memeforge/pkg/token"
)

// ErrTokenNotFound is returned when a token lookup finds no matching record.
var ErrTokenNotFound = errors.New("token not found")

// UpdateFields carries the columns of a partial token update. Nil pointers are
// left untouched; non-nil pointers are written even when they hold a zero value.
type UpdateFields struct {
	MintAddress            *string
	TransactionSignature   *string
	FreezeAuthorityRevoked *bool
	MintAuthorityRevoked   *bool
	UpdateAuthorityRevoked *bool
}

// Empty reports whether no columns would be written.
func (f *UpdateFields) Empty() bool {
	return f.MintAddress == nil &&
		f.TransactionSignature == nil &&
		f.FreezeAuthorityRevoked == nil &&
		f.MintAuthorityRevoked == nil &&
		f.UpdateAuthorityRevoked == nil
}

// Store defines the interface for token data persistence
type Store interface {
	CreateToken(ctx context.Context, tok *token.Token) error
	GetToken(ctx context.Context, id string) (*token.Token, error)
	// ListTokens returns all tokens owned by userID, newest first. An empty
	// network matches every network.
	ListTokens(ctx context.Context, userID, network string) ([]*token.Token, error)
	// UpdateToken applies the given fields and refreshes updated_at. It returns
	// ErrTokenNotFound when no row matches id.
	UpdateToken(ctx context.Context, id string, fields *UpdateFields) error
	// DeleteToken removes the row if present; deleting a missing id is not an error.
	DeleteToken(ctx context.Context, id string) error
}
