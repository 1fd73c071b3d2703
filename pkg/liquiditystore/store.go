// Package liquiditystore persists liquidity control records in PostgreSQL.
package liquiditystore

import (
	"context"
	"errors"

	"github.com/memeforge/memeforge/pkg/liquidity"
)

// ErrControlNotFound is returned when a liquidity control lookup finds no
// matching record.
var ErrControlNotFound = errors.New("liquidity control not found")

// Store defines the interface for liquidity control data persistence
type Store interface {
	// UpsertControl inserts the control or, when a row already exists for its
	// token, replaces the configured columns in place. The original row's id
	// and created_at are preserved. The operation is atomic with respect to the
	// unique constraint on token_id: concurrent upserts never produce duplicate
	// rows and the last writer wins.
	UpsertControl(ctx context.Context, ctl *liquidity.Control) error
	GetControl(ctx context.Context, tokenID string) (*liquidity.Control, error)
	// DeleteControlByTokenID removes the control row for a token if present;
	// deleting a missing row is not an error.
	DeleteControlByTokenID(ctx context.Context, tokenID string) error
}
