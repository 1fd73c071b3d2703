package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	apperrors "github.com/memeforge/memeforge/pkg/app/errors"
	"github.com/memeforge/memeforge/pkg/token"
	"github.com/memeforge/memeforge/pkg/tokenstore"
)

var (
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)

// Store is the narrow data-access interface for the token service.
// Defined here to keep the token service decoupled from tokenstore implementation details.
type Store interface {
	CreateToken(ctx context.Context, tok *token.Token) error
	GetToken(ctx context.Context, id string) (*token.Token, error)
	ListTokens(ctx context.Context, userID, network string) ([]*token.Token, error)
	UpdateToken(ctx context.Context, id string, fields *tokenstore.UpdateFields) error
	DeleteToken(ctx context.Context, id string) error
}

// ControlStore is the slice of the liquidity store the token service needs to
// cascade deletes.
type ControlStore interface {
	DeleteControlByTokenID(ctx context.Context, tokenID string) error
}

// AddressGenerator produces placeholder mint addresses for tokens registered
// before on-chain creation.
type AddressGenerator interface {
	GenerateAddress() (string, error)
}

// Service defines the interface for the token registry business logic
type Service interface {
	Create(ctx context.Context, req *token.CreateRequest) (*token.Response, error)
	Get(ctx context.Context, id string) (*token.Response, error)
	List(ctx context.Context, userID, network string) (*token.ListResponse, error)
	Update(ctx context.Context, id string, req *token.UpdateRequest) (*token.Response, error)
	Delete(ctx context.Context, id string) error
}

type tokenService struct {
	store     Store
	controls  ControlStore
	addresses AddressGenerator
	logger    *zap.Logger
}

// NewService creates a new token service
func NewService(
	store Store,
	controls ControlStore,
	addresses AddressGenerator,
	logger *zap.Logger,
) Service {
	return &tokenService{
		store:     store,
		controls:  controls,
		addresses: addresses,
		logger:    logger,
	}
}

// Create registers a new token. When the request carries no mint address a
// placeholder address is generated so downstream tooling always has a
// syntactically valid value to display. The persisted row is read back and
// returned so the caller sees the database-assigned timestamps.
func (s *tokenService) Create(ctx context.Context, req *token.CreateRequest) (*token.Response, error) {
	mintAddress := req.MintAddress
	if mintAddress == "" {
		generated, err := s.addresses.GenerateAddress()
		if err != nil {
			return nil, fmt.Errorf("failed to generate mint address: %w", err)
		}
		mintAddress = generated
	}

	tok := &token.Token{
		ID:                   uuid.New().String(),
		UserID:               req.UserID,
		Name:                 req.Name,
		Symbol:               req.Symbol,
		Decimals:             req.Decimals,
		Supply:               req.Supply,
		Description:          req.Description,
		LogoURL:              req.LogoURL,
		MintAddress:          mintAddress,
		CreatorName:          req.CreatorName,
		CreatorWebsite:       req.CreatorWebsite,
		TwitterURL:           req.TwitterURL,
		TelegramURL:          req.TelegramURL,
		DiscordURL:           req.DiscordURL,
		CustomPageURL:        req.CustomPageURL,
		Network:              req.Network,
		TransactionSignature: req.TransactionSignature,
	}

	if err := s.store.CreateToken(ctx, tok); err != nil {
		return nil, fmt.Errorf("failed to save token: %w", err)
	}

	// Read back so the response carries database-assigned timestamps.
	created, err := s.store.GetToken(ctx, tok.ID)
	if err != nil {
		if errors.Is(err, tokenstore.ErrTokenNotFound) {
			return nil, apperrors.GeneralError(fmt.Errorf("token %s missing after insert", tok.ID))
		}
		return nil, fmt.Errorf("failed to load created token: %w", err)
	}

	resp := token.ToResponse(created)
	return &resp, nil
}

// Get returns a single token by id.
func (s *tokenService) Get(ctx context.Context, id string) (*token.Response, error) {
	tok, err := s.store.GetToken(ctx, id)
	if err != nil {
		if errors.Is(err, tokenstore.ErrTokenNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "Token not found")
		}
		return nil, fmt.Errorf("failed to load token: %w", err)
	}

	resp := token.ToResponse(tok)
	return &resp, nil
}

// List returns the tokens owned by userID, newest first, optionally filtered
// by network. An unknown user yields an empty list, not an error.
func (s *tokenService) List(ctx context.Context, userID, network string) (*token.ListResponse, error) {
	tokens, err := s.store.ListTokens(ctx, userID, network)
	if err != nil {
		return nil, fmt.Errorf("failed to list tokens: %w", err)
	}

	resp := &token.ListResponse{Tokens: make([]token.Response, 0, len(tokens))}
	for _, tok := range tokens {
		resp.Tokens = append(resp.Tokens, token.ToResponse(tok))
	}
	return resp, nil
}

// Update applies a partial update of blockchain-related fields and returns the
// refreshed token. An update with no fields is rejected rather than silently
// bumping updated_at.
func (s *tokenService) Update(ctx context.Context, id string, req *token.UpdateRequest) (*token.Response, error) {
	if req.Empty() {
		return nil, apperrors.BadRequestError(ErrNoFieldsToUpdate, "No fields to update")
	}

	fields := &tokenstore.UpdateFields{
		MintAddress:            req.MintAddress,
		TransactionSignature:   req.TransactionSignature,
		FreezeAuthorityRevoked: req.FreezeAuthorityRevoked,
		MintAuthorityRevoked:   req.MintAuthorityRevoked,
		UpdateAuthorityRevoked: req.UpdateAuthorityRevoked,
	}

	if err := s.store.UpdateToken(ctx, id, fields); err != nil {
		if errors.Is(err, tokenstore.ErrTokenNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "Token not found")
		}
		return nil, fmt.Errorf("failed to update token: %w", err)
	}

	updated, err := s.store.GetToken(ctx, id)
	if err != nil {
		if errors.Is(err, tokenstore.ErrTokenNotFound) {
			return nil, apperrors.GeneralError(fmt.Errorf("token %s missing after update", id))
		}
		return nil, fmt.Errorf("failed to load updated token: %w", err)
	}

	resp := token.ToResponse(updated)
	return &resp, nil
}

// Delete removes a token and its liquidity control, if one exists. Deleting a
// token that does not exist succeeds, so retried deletes are safe.
func (s *tokenService) Delete(ctx context.Context, id string) error {
	if err := s.store.DeleteToken(ctx, id); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}

	if err := s.controls.DeleteControlByTokenID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete liquidity control: %w", err)
	}

	return nil
}
