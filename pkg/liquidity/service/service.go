package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/memeforge/memeforge/pkg/app/errors"
	"github.com/memeforge/memeforge/pkg/liquidity"
	"github.com/memeforge/memeforge/pkg/liquiditystore"
)

// Store is the narrow data-access interface for the liquidity service.
type Store interface {
	UpsertControl(ctx context.Context, ctl *liquidity.Control) error
	GetControl(ctx context.Context, tokenID string) (*liquidity.Control, error)
}

// Service defines the interface for the liquidity control business logic
type Service interface {
	Upsert(ctx context.Context, req *liquidity.UpsertRequest) (*liquidity.Response, error)
	Get(ctx context.Context, tokenID string) (*liquidity.Response, error)
}

type liquidityService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new liquidity control service
func NewService(store Store, logger *zap.Logger) Service {
	return &liquidityService{
		store:  store,
		logger: logger,
	}
}

// Upsert creates the liquidity control for a token or replaces its settings in
// place. The row is read back after the write so the response carries the
// surviving id and created_at when an existing control was replaced.
func (s *liquidityService) Upsert(ctx context.Context, req *liquidity.UpsertRequest) (*liquidity.Response, error) {
	ctl := &liquidity.Control{
		ID:                  uuid.New().String(),
		TokenID:             req.TokenID,
		MultiSigEnabled:     req.MultiSigEnabled,
		RequiredSignatures:  req.RequiredSignatures,
		TimelockDuration:    req.TimelockDuration,
		WithdrawalAddresses: req.WithdrawalAddresses,
	}

	if err := s.store.UpsertControl(ctx, ctl); err != nil {
		return nil, fmt.Errorf("failed to save liquidity control: %w", err)
	}

	saved, err := s.store.GetControl(ctx, req.TokenID)
	if err != nil {
		if errors.Is(err, liquiditystore.ErrControlNotFound) {
			return nil, apperrors.GeneralError(fmt.Errorf("liquidity control for token %s missing after upsert", req.TokenID))
		}
		return nil, fmt.Errorf("failed to load saved liquidity control: %w", err)
	}

	resp := liquidity.ToResponse(saved)
	return &resp, nil
}

// Get returns the liquidity control configured for a token.
func (s *liquidityService) Get(ctx context.Context, tokenID string) (*liquidity.Response, error) {
	ctl, err := s.store.GetControl(ctx, tokenID)
	if err != nil {
		if errors.Is(err, liquiditystore.ErrControlNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "liquidity control not found")
		}
		return nil, fmt.Errorf("failed to load liquidity control: %w", err)
	}

	resp := liquidity.ToResponse(ctl)
	return &resp, nil
}
