package liquiditystore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/memeforge/memeforge/pkg/liquidity"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the liquidity control store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) UpsertControl(ctx context.Context, ctl *liquidity.Control) error {
	dao := toControlDao(ctl)

	// Insert-or-replace keyed on the token_id unique constraint. The losing
	// writer of a concurrent pair merges into the existing row, so id and
	// created_at always come from the first insert.
	_, err := s.db.NewInsert().
		Model(dao).
		On("CONFLICT (token_id) DO UPDATE").
		Set("multi_sig_enabled = EXCLUDED.multi_sig_enabled").
		Set("required_signatures = EXCLUDED.required_signatures").
		Set("timelock_duration = EXCLUDED.timelock_duration").
		Set("withdrawal_addresses = EXCLUDED.withdrawal_addresses").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to upsert liquidity control: %w", err)
	}

	return nil
}

func (s *pgStore) GetControl(ctx context.Context, tokenID string) (*liquidity.Control, error) {
	dao := new(ControlDao)

	err := s.db.NewSelect().
		Model(dao).
		Where("token_id = ?", tokenID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrControlNotFound
		}
		return nil, fmt.Errorf("failed to get liquidity control: %w", err)
	}

	return toControl(dao), nil
}

func (s *pgStore) DeleteControlByTokenID(ctx context.Context, tokenID string) error {
	_, err := s.db.NewDelete().
		Model((*ControlDao)(nil)).
		Where("token_id = ?", tokenID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete liquidity control: %w", err)
	}
	return nil
}
