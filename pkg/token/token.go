// Package token defines the domain model for registered meme-coin tokens.
package token

import "time"

// Networks accepted at the API boundary.
const (
	NetworkDevnet  = "devnet"
	NetworkMainnet = "mainnet"
)

// Token represents the domain model for a registered token.
// A Token describes a user-defined asset's metadata, independent of whether it
// has actually been minted on-chain. Optional attributes are empty strings when unset.
type Token struct {
	ID                     string
	UserID                 string
	Name                   string
	Symbol                 string
	Decimals               int
	Supply                 int64
	Description            string
	LogoURL                string
	MintAddress            string
	FreezeAuthorityRevoked bool
	MintAuthorityRevoked   bool
	UpdateAuthorityRevoked bool
	CreatorName            string
	CreatorWebsite         string
	TwitterURL             string
	TelegramURL            string
	DiscordURL             string
	CustomPageURL          string
	Network                string
	TransactionSignature   string
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// CreateRequest carries the attributes for registering a new token.
// MintAddress is optional; when absent a placeholder address is generated.
type CreateRequest struct {
	UserID               string `json:"userId" validate:"required"`
	Name                 string `json:"name" validate:"required"`
	Symbol               string `json:"symbol" validate:"required,max=10"`
	Decimals             int    `json:"decimals" validate:"min=0,max=9"`
	Supply               int64  `json:"supply" validate:"required,min=1"`
	Description          string `json:"description,omitempty"`
	LogoURL              string `json:"logoUrl,omitempty"`
	MintAddress          string `json:"mintAddress,omitempty"`
	TransactionSignature string `json:"transactionSignature,omitempty"`
	CreatorName          string `json:"creatorName,omitempty"`
	CreatorWebsite       string `json:"creatorWebsite,omitempty"`
	TwitterURL           string `json:"twitterUrl,omitempty"`
	TelegramURL          string `json:"telegramUrl,omitempty"`
	DiscordURL           string `json:"discordUrl,omitempty"`
	CustomPageURL        string `json:"customPageUrl,omitempty"`
	Network              string `json:"network" validate:"required,oneof=devnet mainnet"`
}

// UpdateRequest carries a partial update of a token's blockchain-related fields.
// Pointer fields distinguish "absent" from an explicit zero value: a flag set to
// false must be applied, not skipped.
type UpdateRequest struct {
	MintAddress            *string `json:"mintAddress,omitempty"`
	TransactionSignature   *string `json:"transactionSignature,omitempty"`
	FreezeAuthorityRevoked *bool   `json:"freezeAuthorityRevoked,omitempty"`
	MintAuthorityRevoked   *bool   `json:"mintAuthorityRevoked,omitempty"`
	UpdateAuthorityRevoked *bool   `json:"updateAuthorityRevoked,omitempty"`
}

// Empty reports whether the request carries no updatable fields.
func (r *UpdateRequest) Empty() bool {
	return r.MintAddress == nil &&
		r.TransactionSignature == nil &&
		r.FreezeAuthorityRevoked == nil &&
		r.MintAuthorityRevoked == nil &&
		r.UpdateAuthorityRevoked == nil
}

// Response is the external JSON shape of a token.
type Response struct {
	ID                     string    `json:"id"`
	UserID                 string    `json:"userId"`
	Name                   string    `json:"name"`
	Symbol                 string    `json:"symbol"`
	Decimals               int       `json:"decimals"`
	Supply                 int64     `json:"supply"`
	Description            string    `json:"description,omitempty"`
	LogoURL                string    `json:"logoUrl,omitempty"`
	MintAddress            string    `json:"mintAddress,omitempty"`
	FreezeAuthorityRevoked bool      `json:"freezeAuthorityRevoked"`
	MintAuthorityRevoked   bool      `json:"mintAuthorityRevoked"`
	UpdateAuthorityRevoked bool      `json:"updateAuthorityRevoked"`
	CreatorName            string    `json:"creatorName,omitempty"`
	CreatorWebsite         string    `json:"creatorWebsite,omitempty"`
	TwitterURL             string    `json:"twitterUrl,omitempty"`
	TelegramURL            string    `json:"telegramUrl,omitempty"`
	DiscordURL             string    `json:"discordUrl,omitempty"`
	CustomPageURL          string    `json:"customPageUrl,omitempty"`
	Network                string    `json:"network"`
	TransactionSignature   string    `json:"transactionSignature,omitempty"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// ListResponse wraps the token list payload.
type ListResponse struct {
	Tokens []Response `json:"tokens"`
}

// ToResponse converts the domain model into its external JSON shape.
func ToResponse(t *Token) Response {
	return Response{
		ID:                     t.ID,
		UserID:                 t.UserID,
		Name:                   t.Name,
		Symbol:                 t.Symbol,
		Decimals:               t.Decimals,
		Supply:                 t.Supply,
		Description:            t.Description,
		LogoURL:                t.LogoURL,
		MintAddress:            t.MintAddress,
		FreezeAuthorityRevoked: t.FreezeAuthorityRevoked,
		MintAuthorityRevoked:   t.MintAuthorityRevoked,
		UpdateAuthorityRevoked: t.UpdateAuthorityRevoked,
		CreatorName:            t.CreatorName,
		CreatorWebsite:         t.CreatorWebsite,
		TwitterURL:             t.TwitterURL,
		TelegramURL:            t.TelegramURL,
		DiscordURL:             t.DiscordURL,
		CustomPageURL:          t.CustomPageURL,
		Network:                t.Network,
		TransactionSignature:   t.TransactionSignature,
		CreatedAt:              t.CreatedAt,
		UpdatedAt:              t.UpdatedAt,
	}
}
