package liquiditystore

import (
	"time"

	"github.com/uptrace/bun"

	"github.com/memeforge/memeforge/pkg/liquidity"
)

// ControlDao is a data access object that maps directly to the
// 'liquidity_controls' table in PostgreSQL.
type ControlDao struct {
	bun.BaseModel       `bun:"table:liquidity_controls,alias:lc"`
	ID                  string    `bun:"id,pk,type:varchar(36)"`
	TokenID             string    `bun:"token_id,unique,notnull,type:varchar(36)"`
	MultiSigEnabled     bool      `bun:"multi_sig_enabled,notnull,default:false"`
	RequiredSignatures  int       `bun:"required_signatures,notnull,default:0"`
	TimelockDuration    int       `bun:"timelock_duration,notnull,default:0"`
	WithdrawalAddresses []string  `bun:"withdrawal_addresses,array,type:text[]"`
	CreatedAt           time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

// toControlDao converts a liquidity.Control to ControlDao.
func toControlDao(ctl *liquidity.Control) *ControlDao {
	addresses := ctl.WithdrawalAddresses
	if addresses == nil {
		addresses = []string{}
	}
	return &ControlDao{
		ID:                  ctl.ID,
		TokenID:             ctl.TokenID,
		MultiSigEnabled:     ctl.MultiSigEnabled,
		RequiredSignatures:  ctl.RequiredSignatures,
		TimelockDuration:    ctl.TimelockDuration,
		WithdrawalAddresses: addresses,
	}
}

// toControl converts a ControlDao to liquidity.Control.
func toControl(dao *ControlDao) *liquidity.Control {
	addresses := dao.WithdrawalAddresses
	if addresses == nil {
		addresses = []string{}
	}
	return &liquidity.Control{
		ID:                  dao.ID,
		TokenID:             dao.TokenID,
		MultiSigEnabled:     dao.MultiSigEnabled,
		RequiredSignatures:  dao.RequiredSignatures,
		TimelockDuration:    dao.TimelockDuration,
		WithdrawalAddresses: addresses,
		CreatedAt:           dao.CreatedAt,
	}
}
