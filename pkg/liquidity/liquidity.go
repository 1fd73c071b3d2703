// Package liquidity defines the domain model for per-token liquidity
// withdrawal controls.
package liquidity

import "time"

// Control represents the withdrawal constraints configured for a token's
// liquidity pool: multi-signature requirement, timelock and an address
// allow-list. At most one Control exists per token.
type Control struct {
	ID                  string
	TokenID             string
	MultiSigEnabled     bool
	RequiredSignatures  int
	TimelockDuration    int // days; 0 disables the timelock
	WithdrawalAddresses []string
	CreatedAt           time.Time
}

// UpsertRequest carries the settings for creating or replacing a token's
// liquidity control.
type UpsertRequest struct {
	TokenID             string   `json:"tokenId" validate:"required"`
	MultiSigEnabled     bool     `json:"multiSigEnabled"`
	RequiredSignatures  int      `json:"requiredSignatures" validate:"min=0"`
	TimelockDuration    int      `json:"timelockDuration" validate:"min=0"`
	WithdrawalAddresses []string `json:"withdrawalAddresses"`
}

// Response is the external JSON shape of a liquidity control.
type Response struct {
	ID                  string    `json:"id"`
	TokenID             string    `json:"tokenId"`
	MultiSigEnabled     bool      `json:"multiSigEnabled"`
	RequiredSignatures  int       `json:"requiredSignatures"`
	TimelockDuration    int       `json:"timelockDuration"`
	WithdrawalAddresses []string  `json:"withdrawalAddresses"`
	CreatedAt           time.Time `json:"createdAt"`
}

// ToResponse converts the domain model into its external JSON shape.
func ToResponse(c *Control) Response {
	addresses := c.WithdrawalAddresses
	if addresses == nil {
		addresses = []string{}
	}
	return Response{
		ID:                  c.ID,
		TokenID:             c.TokenID,
		MultiSigEnabled:     c.MultiSigEnabled,
		RequiredSignatures:  c.RequiredSignatures,
		TimelockDuration:    c.TimelockDuration,
		WithdrawalAddresses: addresses,
		CreatedAt:           c.CreatedAt,
	}
}
