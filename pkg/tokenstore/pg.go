package tokenstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/memeforge/memeforge/pkg/token"
)

type pgStore struct {
	db *bun.DB
}

// NewStore creates a new postgres implementation of the token store
func NewStore(db *bun.DB) *pgStore {
	return &pgStore{db: db}
}

func (s *pgStore) CreateToken(ctx context.Context, tok *token.Token) error {
	dao := toTokenDao(tok)

	_, err := s.db.NewInsert().
		Model(dao).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to create token: %w", err)
	}

	return nil
}

func (s *pgStore) GetToken(ctx context.Context, id string) (*token.Token, error) {
	dao := new(TokenDao)

	err := s.db.NewSelect().
		Model(dao).
		Where("id = ?", id).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTokenNotFound
		}
		return nil, fmt.Errorf("failed to get token: %w", err)
	}

	return toToken(dao), nil
}

func (s *pgStore) ListTokens(ctx context.Context, userID, network string) ([]*token.Token, error) {
	var daos []TokenDao

	query := s.db.NewSelect().
		Model(&daos).
		Where("user_id = ?", userID)

	if network != "" {
		query = query.Where("network = ?", network)
	}

	err := query.Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	tokens := make([]*token.Token, len(daos))
	for i := range daos {
		tokens[i] = toToken(&daos[i])
	}
	return tokens, nil
}

func (s *pgStore) UpdateToken(ctx context.Context, id string, fields *UpdateFields) error {
	if fields == nil || fields.Empty() {
		return fmt.Errorf("no fields to update for token %s", id)
	}

	q := s.db.NewUpdate().
		Model((*TokenDao)(nil)).
		Where("id = ?", id).
		Set("updated_at = NOW()")

	if fields.MintAddress != nil {
		q = q.Set("mint_address = ?", *fields.MintAddress)
	}
	if fields.TransactionSignature != nil {
		q = q.Set("transaction_signature = ?", *fields.TransactionSignature)
	}
	if fields.FreezeAuthorityRevoked != nil {
		q = q.Set("freeze_authority_revoked = ?", *fields.FreezeAuthorityRevoked)
	}
	if fields.MintAuthorityRevoked != nil {
		q = q.Set("mint_authority_revoked = ?", *fields.MintAuthorityRevoked)
	}
	if fields.UpdateAuthorityRevoked != nil {
		q = q.Set("update_authority_revoked = ?", *fields.UpdateAuthorityRevoked)
	}

	res, err := q.Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to update token: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rows == 0 {
		return ErrTokenNotFound
	}
	return nil
}

func (s *pgStore) DeleteToken(ctx context.Context, id string) error {
	_, err := s.db.NewDelete().
		Model((*TokenDao)(nil)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}
