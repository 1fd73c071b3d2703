package tokenstore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/memeforge/memeforge/pkg/token"
)

// TokenDao is a data access object that maps directly to the 'tokens' table in PostgreSQL.
type TokenDao struct {
	bun.BaseModel          `bun:"table:tokens,alias:t"`
	ID                     string    `bun:"id,pk,type:varchar(36)"`
	UserID                 string    `bun:"user_id,notnull,type:varchar(255)"`
	Name                   string    `bun:"name,notnull,type:varchar(255)"`
	Symbol                 string    `bun:"symbol,notnull,type:varchar(10)"`
	Decimals               int       `bun:"decimals,notnull"`
	Supply                 int64     `bun:"supply,notnull"`
	Description            *string   `bun:"description,type:text"`
	LogoURL                *string   `bun:"logo_url,type:text"`
	MintAddress            *string   `bun:"mint_address,type:varchar(64)"`
	FreezeAuthorityRevoked bool      `bun:"freeze_authority_revoked,notnull,default:false"`
	MintAuthorityRevoked   bool      `bun:"mint_authority_revoked,notnull,default:false"`
	UpdateAuthorityRevoked bool      `bun:"update_authority_revoked,notnull,default:false"`
	CreatorName            *string   `bun:"creator_name,type:varchar(255)"`
	CreatorWebsite         *string   `bun:"creator_website,type:text"`
	TwitterURL             *string   `bun:"twitter_url,type:text"`
	TelegramURL            *string   `bun:"telegram_url,type:text"`
	DiscordURL             *string   `bun:"discord_url,type:text"`
	CustomPageURL          *string   `bun:"custom_page_url,type:text"`
	Network                string    `bun:"network,notnull,type:varchar(16)"`
	TransactionSignature   *string   `bun:"transaction_signature,type:varchar(128)"`
	CreatedAt              time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
	UpdatedAt              time.Time `bun:"updated_at,nullzero,notnull,default:current_timestamp"`
}

// toTokenDao converts a token.Token to TokenDao.
func toTokenDao(tok *token.Token) *TokenDao {
	dao := &TokenDao{
		ID:                     tok.ID,
		UserID:                 tok.UserID,
		Name:                   tok.Name,
		Symbol:                 tok.Symbol,
		Decimals:               tok.Decimals,
		Supply:                 tok.Supply,
		FreezeAuthorityRevoked: tok.FreezeAuthorityRevoked,
		MintAuthorityRevoked:   tok.MintAuthorityRevoked,
		UpdateAuthorityRevoked: tok.UpdateAuthorityRevoked,
		Network:                tok.Network,
	}

	dao.Description = optional(tok.Description)
	dao.LogoURL = optional(tok.LogoURL)
	dao.MintAddress = optional(tok.MintAddress)
	dao.CreatorName = optional(tok.CreatorName)
	dao.CreatorWebsite = optional(tok.CreatorWebsite)
	dao.TwitterURL = optional(tok.TwitterURL)
	dao.TelegramURL = optional(tok.TelegramURL)
	dao.DiscordURL = optional(tok.DiscordURL)
	dao.CustomPageURL = optional(tok.CustomPageURL)
	dao.TransactionSignature = optional(tok.TransactionSignature)

	return dao
}

// toToken converts a TokenDao to token.Token.
func toToken(dao *TokenDao) *token.Token {
	tok := &token.Token{
		ID:                     dao.ID,
		UserID:                 dao.UserID,
		Name:                   dao.Name,
		Symbol:                 dao.Symbol,
		Decimals:               dao.Decimals,
		Supply:                 dao.Supply,
		FreezeAuthorityRevoked: dao.FreezeAuthorityRevoked,
		MintAuthorityRevoked:   dao.MintAuthorityRevoked,
		UpdateAuthorityRevoked: dao.UpdateAuthorityRevoked,
		Network:                dao.Network,
		CreatedAt:              dao.CreatedAt,
		UpdatedAt:              dao.UpdatedAt,
	}

	tok.Description = deref(dao.Description)
	tok.LogoURL = deref(dao.LogoURL)
	tok.MintAddress = deref(dao.MintAddress)
	tok.CreatorName = deref(dao.CreatorName)
	tok.CreatorWebsite = deref(dao.CreatorWebsite)
	tok.TwitterURL = deref(dao.TwitterURL)
	tok.TelegramURL = deref(dao.TelegramURL)
	tok.DiscordURL = deref(dao.DiscordURL)
	tok.CustomPageURL = deref(dao.CustomPageURL)
	tok.TransactionSignature = deref(dao.TransactionSignature)

	return tok
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
